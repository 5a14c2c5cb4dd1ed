package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/accountbook/internal/common"
	"github.com/dmitrijs2005/accountbook/internal/models"
)

// List prints all accounts in stored order. Passwords are never listed.
func (a *App) List(ctx context.Context) error {
	records := a.store.List()
	if len(records) == 0 {
		printf(a.out, "No accounts.\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABELS\tTYPE\tLOGIN")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, models.JoinLabel(r.Label), typeName(r.Type), r.Login)
	}
	return tw.Flush()
}

// Add appends an empty account and opens the edit form for it. The empty
// row stays even when the form is abandoned or invalid.
func (a *App) Add(ctx context.Context) error {
	sctx, cancel := a.storageCtx(ctx)
	rec, err := a.store.AddEmpty(sctx)
	cancel()
	if err != nil {
		return a.fail(ctx, "add", err)
	}
	printf(a.out, "Added %s\n", rec.ID)
	return a.edit(ctx, rec)
}

// New fills a form first and stores the account only when it is valid.
func (a *App) New(ctx context.Context) error {
	in, err := a.fillForm(models.AccountFormInput{Type: models.AccountTypeLDAP})
	if err != nil {
		return a.fail(ctx, "new", err)
	}
	if err := a.checkForm(in); err != nil {
		return err
	}

	sctx, cancel := a.storageCtx(ctx)
	defer cancel()
	rec, err := a.store.UpsertFromInput(sctx, "", in)
	if err != nil {
		return a.fail(ctx, "new", err)
	}
	printf(a.out, "Saved %s\n", rec.ID)
	return nil
}

// Edit opens the form for an existing account.
func (a *App) Edit(ctx context.Context, id string) error {
	rec, ok := a.store.Get(id)
	if !ok {
		return a.notFound(id)
	}
	return a.edit(ctx, rec)
}

func (a *App) edit(ctx context.Context, rec models.AccountRecord) error {
	in, err := a.fillForm(rec.FormInput())
	if err != nil {
		return a.fail(ctx, "edit", err)
	}
	if err := a.checkForm(in); err != nil {
		return err
	}

	sctx, cancel := a.storageCtx(ctx)
	defer cancel()
	if _, err := a.store.UpsertFromInput(sctx, rec.ID, in); err != nil {
		return a.fail(ctx, "edit", err)
	}
	printf(a.out, "Saved %s\n", rec.ID)
	return nil
}

// Delete removes an account.
func (a *App) Delete(ctx context.Context, id string) error {
	if _, ok := a.store.Get(id); !ok {
		return a.notFound(id)
	}

	sctx, cancel := a.storageCtx(ctx)
	defer cancel()
	if err := a.store.Remove(sctx, id); err != nil {
		return a.fail(ctx, "delete", err)
	}
	printf(a.out, "Deleted %s\n", id)
	return nil
}

// Show prints one account, including the password of a local account.
func (a *App) Show(ctx context.Context, id string) error {
	rec, ok := a.store.Get(id)
	if !ok {
		return a.notFound(id)
	}

	printf(a.out, "ID:       %s\n", rec.ID)
	printf(a.out, "Labels:   %s\n", models.JoinLabel(rec.Label))
	printf(a.out, "Type:     %s\n", typeName(rec.Type))
	printf(a.out, "Login:    %s\n", rec.Login)
	if rec.Password != nil {
		printf(a.out, "Password: %s\n", *rec.Password)
	}
	return nil
}

func (a *App) notFound(id string) error {
	printf(a.out, "Account %s not found\n", id)
	return fmt.Errorf("account %s: %w", id, common.ErrorNotFound)
}
