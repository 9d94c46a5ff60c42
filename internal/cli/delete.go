package cli

import (
	"context"
	"fmt"
)

func (a *App) Delete(ctx context.Context) error {
	acct, err := a.selectAccount(ctx)
	if err != nil {
		return report(err)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Are you sure you wish to delete <%s>? Enter <y> to confirm or press Enter to cancel", acct.Name), a.out)
	if err != nil || !ok {
		return report(err)
	}

	if err := a.service.DeleteAccount(ctx, acct.Name); err != nil {
		return report(err)
	}

	fmt.Fprintf(a.out, "Account <%s> successfully deleted.\n", acct.Name)
	return nil
}
