package accounts

import (
	"context"

	"github.com/dmitrijs2005/hashkeeper/internal/models"
)

// Repository describes the persistence operations on account records.
type Repository interface {
	// List returns every account sorted by name.
	List(ctx context.Context) ([]models.Account, error)

	// GetByName returns the account whose name matches case-insensitively.
	GetByName(ctx context.Context, name string) (*models.Account, error)

	// Create stores a new account. It fails with ErrDuplicateAccount if the
	// name is already taken.
	Create(ctx context.Context, acct *models.Account) error

	// Update replaces the stored account that has the same name.
	Update(ctx context.Context, acct *models.Account) error

	// Rename replaces the account stored under oldName with acct, whose name
	// may differ. The new name must not belong to another account.
	Rename(ctx context.Context, oldName string, acct *models.Account) error

	// Delete removes the account with the given name.
	Delete(ctx context.Context, name string) error

	// Close releases resources held by the repository.
	Close() error
}
