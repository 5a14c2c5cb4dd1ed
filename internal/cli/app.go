package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/accountbook/internal/config"
	"github.com/dmitrijs2005/accountbook/internal/logging"
	"github.com/dmitrijs2005/accountbook/internal/models"
	"golang.org/x/term"
)

// accountStore is the part of accounts.Store the CLI drives.
type accountStore interface {
	List() []models.AccountRecord
	Get(id string) (models.AccountRecord, bool)
	AddEmpty(ctx context.Context) (models.AccountRecord, error)
	Remove(ctx context.Context, id string) error
	UpsertFromInput(ctx context.Context, id string, in models.AccountFormInput) (models.AccountRecord, error)
	Reset(ctx context.Context) error
}

// namespaceCatalog sees every account document in the backend.
type namespaceCatalog interface {
	Namespaces(ctx context.Context) ([]string, error)
	Wipe(ctx context.Context) error
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	store     accountStore
	catalog   namespaceCatalog
	namespace string
	messages  models.Messages
	timeout   time.Duration
	reader    *bufio.Reader
	out       io.Writer
	// terminal is true when passwords can be read without echo.
	terminal bool
	logger   logging.Logger
}

// NewApp builds an App reading commands from in and writing to out. When in
// is os.Stdin attached to a terminal, passwords are read without echo.
func NewApp(store accountStore, catalog namespaceCatalog, cfg *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	msg, err := models.MessagesFor(cfg.Locale)
	if err != nil {
		return nil, err
	}

	terminal := false
	if f, ok := in.(*os.File); ok {
		terminal = isTerminal(int(f.Fd()))
	}

	return &App{
		store:     store,
		catalog:   catalog,
		namespace: cfg.StorageNamespace,
		messages:  msg,
		timeout:   cfg.StorageTimeout,
		reader:    bufio.NewReader(in),
		out:       out,
		terminal:  terminal,
		logger:    logger,
	}, nil
}

// Run prints a greeting and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	printf(a.out, "Welcome to accountbook (type 'help' for commands)\n")
	runREPL(ctx, a, a.reader, a.out)
}

// storageCtx bounds a single persistence call.
func (a *App) storageCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

// fail reports err to the user and the log, and returns it unchanged.
func (a *App) fail(ctx context.Context, op string, err error) error {
	printf(a.out, "error: %v\n", err)
	a.logger.Warn(ctx, "command failed", "op", op, "error", err)
	return err
}
