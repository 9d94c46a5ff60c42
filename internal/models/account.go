package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/hashword"
)

// Account is one named entry of the vault. It holds the derivation
// parameters, never the password itself.
type Account struct {
	// Name identifies the account. Matching is case-insensitive; the
	// original spelling is preserved on disk.
	Name        string
	Description string
	User        string
	URL         string

	// Anchor1 and Anchor2 are the stored half of the secret, both in [0, 10^N).
	Anchor1 int64
	Anchor2 int64

	// N is the digest length. Changing it requires new anchors.
	N int

	// Suffix is appended verbatim to every derived password.
	Suffix string
}

// NewAccount carries the user-supplied parameters of an account that does
// not exist yet; anchors are generated on creation.
type NewAccount struct {
	Name        string
	Description string
	User        string
	URL         string
	N           int
	Suffix      string
}

// Key returns the identity key used for uniqueness checks.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Key returns the identity key of the account.
func (a *Account) Key() string {
	return Key(a.Name)
}

// SameName reports whether the two names denote the same account.
func SameName(a, b string) bool {
	return Key(a) == Key(b)
}

// Params extracts the derivation parameters of the account.
func (a *Account) Params() hashword.Params {
	return hashword.Params{Anchor1: a.Anchor1, Anchor2: a.Anchor2, N: a.N, Suffix: a.Suffix}
}

// Validate checks the record invariants.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: account name is required", common.ErrInvalidInput)
	}
	if err := hashword.ValidateDigestLength(a.N); err != nil {
		return err
	}
	limit := hashword.AnchorLimit(a.N)
	if a.Anchor1 < 0 || a.Anchor1 >= limit || a.Anchor2 < 0 || a.Anchor2 >= limit {
		return fmt.Errorf("%w: anchors must be in [0, %d)", common.ErrInvalidInput, limit)
	}
	return nil
}

// Validate checks the user-supplied creation parameters.
func (na NewAccount) Validate() error {
	if strings.TrimSpace(na.Name) == "" {
		return fmt.Errorf("%w: account name is required", common.ErrInvalidInput)
	}
	return hashword.ValidateDigestLength(na.N)
}

// ParseNewAccount parses the comma-separated creation form
//
//	name, description, user, url, n[, suffix]
//
// Surrounding whitespace of every value is trimmed.
func ParseNewAccount(line string) (NewAccount, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 5 || len(parts) > 6 {
		return NewAccount{}, fmt.Errorf("%w: expected 5 or 6 comma-separated values, got %d",
			common.ErrInvalidInput, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	n, err := strconv.Atoi(parts[4])
	if err != nil {
		return NewAccount{}, fmt.Errorf("%w: n must be an integer", common.ErrInvalidInput)
	}

	na := NewAccount{
		Name:        parts[0],
		Description: parts[1],
		User:        parts[2],
		URL:         parts[3],
		N:           n,
	}
	if len(parts) == 6 {
		na.Suffix = parts[5]
	}
	if err := na.Validate(); err != nil {
		return NewAccount{}, err
	}
	return na, nil
}
