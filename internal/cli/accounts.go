package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/models"
)

// errCanceled is returned by prompts the user backed out of with "c".
var errCanceled = errors.New("canceled by user")

// report logs err for the user and returns it. Cancellation is not an error.
func report(err error) error {
	if err == nil || errors.Is(err, errCanceled) {
		return nil
	}
	log.Printf("Error: %s", err.Error())
	return err
}

func (a *App) List(ctx context.Context) error {
	names, err := a.service.ListAccountNames(ctx)
	if err != nil {
		return report(err)
	}
	a.displayAccounts(names)
	return nil
}

func (a *App) displayAccounts(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No accounts yet. Use <n> to create one.")
		return
	}
	fmt.Fprintln(a.out, "Available accounts:")
	for _, name := range names {
		fmt.Fprintf(a.out, "\t%s\n", name)
	}
}

func (a *App) displayProperties(acct *models.Account) {
	fmt.Fprintln(a.out, "Available properties:")
	for _, f := range models.Fields {
		v, _ := acct.Get(f)
		fmt.Fprintf(a.out, "\t%-30s%s\n", f, v)
	}
}

// selectAccount lists the accounts and asks for a name until one matches
// or the user enters "c".
func (a *App) selectAccount(ctx context.Context) (*models.Account, error) {
	for {
		if err := a.List(ctx); err != nil {
			return nil, err
		}
		name, err := GetSimpleText(a.reader, "Enter account name", a.out)
		if err != nil {
			return nil, err
		}

		acct, err := a.service.GetAccount(ctx, name)
		if err == nil {
			return acct, nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}

		c, err := GetSimpleText(a.reader, fmt.Sprintf("Account <%s> not found. Enter <c> to cancel or press Enter to retry", name), a.out)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(c, "c") {
			return nil, errCanceled
		}
	}
}
