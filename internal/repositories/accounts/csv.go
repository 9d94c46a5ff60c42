package accounts

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/filex"
	"github.com/dmitrijs2005/hashkeeper/internal/models"
)

// ErrMalformedStore is returned when the CSV file cannot be decoded.
var ErrMalformedStore = errors.New("malformed account store")

// Column order of a stored row.
const csvColumns = 8

// CSVRepository implements Repository on a single CSV file.
type CSVRepository struct {
	path     string
	lockPath string
	mu       sync.Mutex
}

// NewCSVRepository returns a repository backed by the file at path. The file
// does not need to exist; a missing file is an empty store.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path, lockPath: path + ".lock"}
}

// Path returns the location of the backing file.
func (r *CSVRepository) Path() string {
	return r.path
}

// LockPath returns the sidecar file that carries the writer lock.
func (r *CSVRepository) LockPath() string {
	return r.lockPath
}

// List returns all accounts sorted by name.
func (r *CSVRepository) List(ctx context.Context) ([]models.Account, error) {
	var result []models.Account
	err := r.locked(ctx, func() error {
		accts, err := r.load()
		if err != nil {
			return err
		}
		sortAccounts(accts)
		result = accts
		return nil
	})
	return result, err
}

// GetByName returns the account with the given name.
func (r *CSVRepository) GetByName(ctx context.Context, name string) (*models.Account, error) {
	var result *models.Account
	err := r.locked(ctx, func() error {
		accts, err := r.load()
		if err != nil {
			return err
		}
		i := indexOf(accts, name)
		if i < 0 {
			return fmt.Errorf("account %q: %w", name, common.ErrorNotFound)
		}
		acct := accts[i]
		result = &acct
		return nil
	})
	return result, err
}

// Create appends a new account and rewrites the store.
func (r *CSVRepository) Create(ctx context.Context, acct *models.Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}
	return r.mutate(ctx, func(accts []models.Account) ([]models.Account, error) {
		if indexOf(accts, acct.Name) >= 0 {
			return nil, fmt.Errorf("account %q: %w", acct.Name, common.ErrDuplicateAccount)
		}
		return append(accts, *acct), nil
	})
}

// Update replaces the account with the same name.
func (r *CSVRepository) Update(ctx context.Context, acct *models.Account) error {
	return r.Rename(ctx, acct.Name, acct)
}

// Rename replaces the account stored under oldName with acct.
func (r *CSVRepository) Rename(ctx context.Context, oldName string, acct *models.Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}
	return r.mutate(ctx, func(accts []models.Account) ([]models.Account, error) {
		i := indexOf(accts, oldName)
		if i < 0 {
			return nil, fmt.Errorf("account %q: %w", oldName, common.ErrorNotFound)
		}
		if !models.SameName(oldName, acct.Name) && indexOf(accts, acct.Name) >= 0 {
			return nil, fmt.Errorf("account %q: %w", acct.Name, common.ErrDuplicateAccount)
		}
		accts[i] = *acct
		return accts, nil
	})
}

// Delete removes the account with the given name.
func (r *CSVRepository) Delete(ctx context.Context, name string) error {
	return r.mutate(ctx, func(accts []models.Account) ([]models.Account, error) {
		i := indexOf(accts, name)
		if i < 0 {
			return nil, fmt.Errorf("account %q: %w", name, common.ErrorNotFound)
		}
		return slices.Delete(accts, i, i+1), nil
	})
}

// Close is a no-op; the file is opened per operation.
func (r *CSVRepository) Close() error {
	return nil
}

// locked runs fn while holding both the in-process mutex and the
// cross-process file lock.
func (r *CSVRepository) locked(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lock, err := filex.AcquireLock(r.lockPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	return fn()
}

// mutate performs one load → change → sorted full rewrite cycle. Nothing is
// written when change returns an error.
func (r *CSVRepository) mutate(ctx context.Context, change func([]models.Account) ([]models.Account, error)) error {
	return r.locked(ctx, func() error {
		accts, err := r.load()
		if err != nil {
			return err
		}
		accts, err = change(accts)
		if err != nil {
			return err
		}
		return r.save(accts)
	})
}

func (r *CSVRepository) load() ([]models.Account, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read account store: %w", err)
	}
	return decodeCSV(bytes.NewReader(data))
}

func (r *CSVRepository) save(accts []models.Account) error {
	sortAccounts(accts)
	data, err := encodeCSV(accts)
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write account store: %w", err)
	}
	return nil
}

func decodeCSV(src io.Reader) ([]models.Account, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = csvColumns

	accts := make([]models.Account, 0)
	seen := make(map[string]int)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
		}
		line, _ := reader.FieldPos(0)

		acct, err := decodeRow(row)
		if err == nil {
			err = acct.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedStore, line, err)
		}

		// Names are unique case-insensitively; a file with both "bank" and
		// "Bank" would leave one of them unreachable.
		if first, dup := seen[acct.Key()]; dup {
			return nil, fmt.Errorf("%w: line %d: account %q duplicates line %d",
				ErrMalformedStore, line, acct.Name, first)
		}
		seen[acct.Key()] = line

		accts = append(accts, acct)
	}
	return accts, nil
}

func decodeRow(row []string) (models.Account, error) {
	anchor1, err := strconv.ParseInt(row[4], 10, 64)
	if err != nil {
		return models.Account{}, fmt.Errorf("anchor1: %w", err)
	}
	anchor2, err := strconv.ParseInt(row[5], 10, 64)
	if err != nil {
		return models.Account{}, fmt.Errorf("anchor2: %w", err)
	}
	n, err := strconv.Atoi(row[6])
	if err != nil {
		return models.Account{}, fmt.Errorf("n: %w", err)
	}
	return models.Account{
		Name:        row[0],
		Description: row[1],
		User:        row[2],
		URL:         row[3],
		Anchor1:     anchor1,
		Anchor2:     anchor2,
		N:           n,
		Suffix:      row[7],
	}, nil
}

func encodeCSV(accts []models.Account) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, a := range accts {
		row := []string{
			a.Name,
			a.Description,
			a.User,
			a.URL,
			strconv.FormatInt(a.Anchor1, 10),
			strconv.FormatInt(a.Anchor2, 10),
			strconv.Itoa(a.N),
			a.Suffix,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encode account %q: %w", a.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode accounts: %w", err)
	}
	return buf.Bytes(), nil
}

func indexOf(accts []models.Account, name string) int {
	return slices.IndexFunc(accts, func(a models.Account) bool {
		return models.SameName(a.Name, name)
	})
}

// sortAccounts restores the canonical on-disk order. It only keeps the file
// stable for diffs; lookups do not depend on it.
func sortAccounts(accts []models.Account) {
	slices.SortFunc(accts, func(a, b models.Account) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Key(), b.Key())
	})
}
