package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/dbx"
	"github.com/dmitrijs2005/hashkeeper/internal/models"
)

// SQLiteRepository implements Repository on an SQLite table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to db. The schema must be
// migrated beforehand (see store.RunMigrations).
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectColumns = `name, description, username, url, anchor1, anchor2, n, suffix`

func scanAccount(row interface{ Scan(...any) error }) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.Name, &a.Description, &a.User, &a.URL, &a.Anchor1, &a.Anchor2, &a.N, &a.Suffix)
	return a, err
}

// List returns all accounts ordered by name.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM accounts ORDER BY name, name_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	result := make([]models.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByName returns the account with the given name.
func (r *SQLiteRepository) GetByName(ctx context.Context, name string) (*models.Account, error) {
	return getByKey(ctx, r.db, models.Key(name), name)
}

func getByKey(ctx context.Context, db dbx.DBTX, key, name string) (*models.Account, error) {
	row := db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM accounts WHERE name_key = ?`, key)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %q: %w", name, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &a, nil
}

func exists(ctx context.Context, db dbx.DBTX, key string) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE name_key = ?`, key).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	return n > 0, nil
}

// Create inserts a new account.
func (r *SQLiteRepository) Create(ctx context.Context, acct *models.Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		found, err := exists(ctx, tx, acct.Key())
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("account %q: %w", acct.Name, common.ErrDuplicateAccount)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO accounts (name_key, name, description, username, url, anchor1, anchor2, n, suffix)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			acct.Key(), acct.Name, acct.Description, acct.User, acct.URL,
			acct.Anchor1, acct.Anchor2, acct.N, acct.Suffix)
		if err != nil {
			return fmt.Errorf("failed to insert account: %w", err)
		}
		return nil
	})
}

// Update replaces the account with the same name.
func (r *SQLiteRepository) Update(ctx context.Context, acct *models.Account) error {
	return r.Rename(ctx, acct.Name, acct)
}

// Rename replaces the account stored under oldName with acct.
func (r *SQLiteRepository) Rename(ctx context.Context, oldName string, acct *models.Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}
	oldKey := models.Key(oldName)
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if oldKey != acct.Key() {
			taken, err := exists(ctx, tx, acct.Key())
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("account %q: %w", acct.Name, common.ErrDuplicateAccount)
			}
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE accounts SET name_key = ?, name = ?, description = ?, username = ?, url = ?,
				anchor1 = ?, anchor2 = ?, n = ?, suffix = ?
			WHERE name_key = ?`,
			acct.Key(), acct.Name, acct.Description, acct.User, acct.URL,
			acct.Anchor1, acct.Anchor2, acct.N, acct.Suffix, oldKey)
		if err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}
		return expectOneRow(res, oldName)
	})
}

// Delete removes the account with the given name.
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE name_key = ?`, models.Key(name))
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return expectOneRow(res, name)
}

// Close closes the underlying database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func expectOneRow(res sql.Result, name string) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("account %q: %w", name, common.ErrorNotFound)
	}
	return nil
}
