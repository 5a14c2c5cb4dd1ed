package cli

import (
	"context"
	"errors"
	"strings"
)

var errNotConfirmed = errors.New("not confirmed")

// Namespaces lists every namespace that has saved accounts in the backend
// and marks the one in use.
func (a *App) Namespaces(ctx context.Context) error {
	sctx, cancel := a.storageCtx(ctx)
	defer cancel()

	names, err := a.catalog.Namespaces(sctx)
	if err != nil {
		return a.fail(ctx, "namespaces", err)
	}
	if len(names) == 0 {
		printf(a.out, "No saved accounts.\n")
		return nil
	}

	for _, ns := range names {
		mark := " "
		if ns == a.namespace {
			mark = "*"
		}
		if ns == "" {
			ns = "(default)"
		}
		printf(a.out, "%s %s\n", mark, ns)
	}
	return nil
}

// Reset deletes every account of the current namespace after confirmation.
func (a *App) Reset(ctx context.Context) error {
	if err := a.confirm("Delete all accounts in this namespace?"); err != nil {
		return err
	}

	sctx, cancel := a.storageCtx(ctx)
	defer cancel()
	if err := a.store.Reset(sctx); err != nil {
		return a.fail(ctx, "reset", err)
	}
	printf(a.out, "All accounts deleted.\n")
	return nil
}

// Wipe clears the whole backend, other namespaces included, after
// confirmation.
func (a *App) Wipe(ctx context.Context) error {
	if err := a.confirm("Delete ALL data in the storage backend, every namespace included?"); err != nil {
		return err
	}

	sctx, cancel := a.storageCtx(ctx)
	defer cancel()
	if err := a.catalog.Wipe(sctx); err != nil {
		return a.fail(ctx, "wipe", err)
	}
	if err := a.store.Reset(sctx); err != nil {
		return a.fail(ctx, "wipe", err)
	}
	printf(a.out, "Storage wiped.\n")
	return nil
}

// confirm returns nil only when the user types "yes".
func (a *App) confirm(question string) error {
	answer, err := GetSimpleText(a.reader, question+" Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		printf(a.out, "Cancelled.\n")
		return errNotConfirmed
	}
	return nil
}
