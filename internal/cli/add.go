package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/models"
)

const newAccountPrompt = "Enter comma-separated account name, description, user, url, n and optional suffix (or <c> to cancel)"

func (a *App) New(ctx context.Context) error {
	for {
		line, err := GetSimpleText(a.reader, newAccountPrompt, a.out)
		if err != nil {
			return report(err)
		}
		if strings.EqualFold(line, "c") {
			return nil
		}

		na, err := models.ParseNewAccount(line)
		if err != nil {
			fmt.Fprintf(a.out, "Bad account parameters: %v\n", err)
			continue
		}

		acct, err := a.service.CreateAccount(ctx, na)
		if errors.Is(err, common.ErrDuplicateAccount) {
			fmt.Fprintf(a.out, "Account <%s> already exists.\n", na.Name)
			return err
		}
		if err != nil {
			return report(err)
		}

		fmt.Fprintf(a.out, "New account <%s> successfully added.\n", acct.Name)
		return nil
	}
}
