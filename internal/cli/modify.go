package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hashkeeper/internal/models"
)

func (a *App) Modify(ctx context.Context) error {
	fmt.Fprintln(a.out, "Modify existing account...")

	acct, err := a.selectAccount(ctx)
	if err != nil {
		return report(err)
	}

	field, err := a.selectField(acct)
	if err != nil {
		return report(err)
	}

	if field == models.FieldN {
		fmt.Fprintln(a.out, "Changing n generates new anchors; every hashword of this account will change.")
	}

	value, err := GetSimpleText(a.reader, fmt.Sprintf("Enter new value for %s", field), a.out)
	if err != nil {
		return report(err)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Save changes to <%s>? Enter <y> to confirm or press Enter to cancel", acct.Name), a.out)
	if err != nil || !ok {
		return report(err)
	}

	updated, err := a.service.UpdateField(ctx, acct, field, value)
	if err != nil {
		return report(err)
	}

	fmt.Fprintf(a.out, "<%s> account has been successfully modified.\n", updated.Name)
	return nil
}

func (a *App) selectField(acct *models.Account) (models.Field, error) {
	for {
		a.displayProperties(acct)
		prop, err := GetSimpleText(a.reader, "Enter property to modify (or <c> to cancel)", a.out)
		if err != nil {
			return "", err
		}
		if strings.EqualFold(prop, "c") {
			return "", errCanceled
		}

		field, err := models.ParseField(prop)
		if err == nil {
			return field, nil
		}
		fmt.Fprintf(a.out, "Unknown property %q.\n", prop)
	}
}
