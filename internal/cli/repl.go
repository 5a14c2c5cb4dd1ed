package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Add(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	Namespaces(ctx context.Context) error
	Reset(ctx context.Context) error
	Wipe(ctx context.Context) error
}

const helpText = `Available commands:
  (l)ist         list accounts
  add            add an empty account and edit it
  new            fill in a new account
  edit <id>      edit an account
  show <id>      show an account
  delete <id>    delete an account
  namespaces     list namespaces with saved accounts
  reset          delete every account in this namespace
  wipe           delete everything in the storage backend
  exit | quit    leave the program`

// runREPL reads one command per line from r and dispatches it to a.
//
// Commands that take an id print a usage line when it is missing. Errors
// returned by handlers are ignored here; handlers report their own errors.
// The loop exits on end of input or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) {
	for {
		printf(w, "accounts> ")
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			printf(w, "\n")
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withID := func(run func(context.Context, string) error) {
			if len(args) == 0 {
				printf(w, "Usage: %s <id>\n", cmd)
				return
			}
			_ = run(ctx, args[0])
		}

		switch cmd {
		case "help":
			printf(w, "%s\n", helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "new":
			_ = a.New(ctx)

		case "edit":
			withID(a.Edit)

		case "show":
			withID(a.Show)

		case "delete":
			withID(a.Delete)

		case "namespaces", "ns":
			_ = a.Namespaces(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "wipe":
			_ = a.Wipe(ctx)

		case "exit", "quit":
			printf(w, "Bye!\n")
			return

		default:
			printf(w, "Unknown command: %s\n", cmd)
		}
	}
}
