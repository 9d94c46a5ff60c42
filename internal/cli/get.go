package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/models"
)

func (a *App) Get(ctx context.Context) error {
	fmt.Fprintln(a.out, "Getting account info...")

	acct, err := a.selectAccount(ctx)
	if err != nil {
		return report(err)
	}

	if acct.Description != "" {
		fmt.Fprintf(a.out, "Description of <%s>: %s\n", acct.Name, acct.Description)
	}
	fmt.Fprintf(a.out, "URL for <%s> is: %s\n", acct.Name, acct.URL)
	a.deliver("Username", acct.Name, acct.User)

	if a.config.OpenBrowser && acct.URL != "" {
		ok, err := Confirm(a.reader, "Open the URL in a browser? Enter <y> to proceed or press Enter to continue", a.out)
		if err != nil {
			return report(err)
		}
		if ok {
			if err := openURL(acct.URL); err != nil {
				log.Printf("error opening browser: %v", err)
			}
		}
	}

	hw, err := a.derive(acct)
	if err != nil {
		return report(err)
	}
	a.deliver("Password", acct.Name, hw)
	return nil
}

// derive asks for the two runtime inputs and returns the hashword. Equal
// inputs are rejected and asked for again.
func (a *App) derive(acct *models.Account) (string, error) {
	for {
		i1, err := GetSecretNumber(a.reader, "first key", a.out)
		if err != nil {
			return "", err
		}
		i2, err := GetSecretNumber(a.reader, "second key", a.out)
		if err != nil {
			return "", err
		}

		hw, err := a.service.DerivePassword(acct, i1, i2)
		if errors.Is(err, common.ErrDegenerateInput) {
			fmt.Fprintln(a.out, "Error. The two keys must differ.")
			continue
		}
		return hw, err
	}
}

// deliver hands value to the user: copied to the clipboard when enabled and
// available, printed otherwise.
func (a *App) deliver(label, name, value string) {
	if a.config.ClipboardEnabled {
		err := clipboardWriteAll(value)
		if err == nil {
			fmt.Fprintf(a.out, "%s for <%s> has been copied to the clipboard.\n", label, name)
			return
		}
		log.Printf("clipboard unavailable: %v", err)
	}
	fmt.Fprintf(a.out, "%s for <%s>: %s\n", label, name, value)
}
