package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hashkeeper/internal/hashword"
	"github.com/dmitrijs2005/hashkeeper/internal/logging"
	"github.com/dmitrijs2005/hashkeeper/internal/models"
	"github.com/dmitrijs2005/hashkeeper/internal/repositories/accounts"
)

type AccountService interface {
	ListAccountNames(ctx context.Context) ([]string, error)
	GetAccount(ctx context.Context, name string) (*models.Account, error)
	CreateAccount(ctx context.Context, na models.NewAccount) (*models.Account, error)
	DerivePassword(acct *models.Account, input1, input2 int64) (string, error)
	UpdateField(ctx context.Context, acct *models.Account, field models.Field, value string) (*models.Account, error)
	DeleteAccount(ctx context.Context, name string) error
}

type accountService struct {
	repo   accounts.Repository
	logger logging.Logger
	rand   io.Reader
}

// NewAccountService returns an AccountService drawing anchors from
// crypto/rand.
func NewAccountService(repo accounts.Repository, logger logging.Logger) AccountService {
	return newAccountService(repo, logger, rand.Reader)
}

func newAccountService(repo accounts.Repository, logger logging.Logger, r io.Reader) *accountService {
	return &accountService{repo: repo, logger: logger, rand: r}
}

func (s *accountService) ListAccountNames(ctx context.Context) ([]string, error) {
	accts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}

	names := make([]string, 0, len(accts))
	for _, a := range accts {
		names = append(names, a.Name)
	}
	return names, nil
}

func (s *accountService) GetAccount(ctx context.Context, name string) (*models.Account, error) {
	acct, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}
	return acct, nil
}

func (s *accountService) CreateAccount(ctx context.Context, na models.NewAccount) (*models.Account, error) {
	if err := na.Validate(); err != nil {
		return nil, err
	}

	a1, a2, err := hashword.NewAnchors(s.rand, na.N)
	if err != nil {
		return nil, err
	}

	acct := &models.Account{
		Name:        na.Name,
		Description: na.Description,
		User:        na.User,
		URL:         na.URL,
		Anchor1:     a1,
		Anchor2:     a2,
		N:           na.N,
		Suffix:      na.Suffix,
	}

	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, fmt.Errorf("error saving account: %w", err)
	}

	s.logger.Info(ctx, "account created", "name", acct.Name)
	return acct, nil
}

func (s *accountService) DerivePassword(acct *models.Account, input1, input2 int64) (string, error) {
	return hashword.Derive(acct.Params(), input1, input2)
}

// UpdateField changes one field of acct and persists the whole record.
// A different n invalidates the stored anchors, so fresh ones are drawn. A new
// name goes through Rename and must not collide with another account.
// acct itself is not modified.
func (s *accountService) UpdateField(ctx context.Context, acct *models.Account, field models.Field, value string) (*models.Account, error) {
	updated := *acct
	if err := updated.Set(field, value); err != nil {
		return nil, err
	}

	if field == models.FieldN && updated.N != acct.N {
		a1, a2, err := hashword.NewAnchors(s.rand, updated.N)
		if err != nil {
			return nil, err
		}
		updated.Anchor1, updated.Anchor2 = a1, a2
	}

	var err error
	if field == models.FieldName {
		err = s.repo.Rename(ctx, acct.Name, &updated)
	} else {
		err = s.repo.Update(ctx, &updated)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating account: %w", err)
	}

	s.logger.Info(ctx, "account updated", "name", updated.Name, "field", string(field))
	return &updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}
	s.logger.Info(ctx, "account deleted", "name", name)
	return nil
}
