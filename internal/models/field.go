package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/hashword"
)

// Field names an editable property of an Account.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldUser        Field = "user"
	FieldURL         Field = "url"
	FieldAnchor1     Field = "anchor1"
	FieldAnchor2     Field = "anchor2"
	FieldN           Field = "n"
	FieldSuffix      Field = "suffix"
)

// Fields lists every field in display and storage order.
var Fields = []Field{
	FieldName, FieldDescription, FieldUser, FieldURL,
	FieldAnchor1, FieldAnchor2, FieldN, FieldSuffix,
}

// ParseField maps a user-typed property name to a Field.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := setters[f]; !ok {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidField, s)
	}
	return f, nil
}

type setter func(a *Account, value string) error

var setters = map[Field]setter{
	FieldName: func(a *Account, v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: account name is required", common.ErrInvalidInput)
		}
		a.Name = v
		return nil
	},
	FieldDescription: func(a *Account, v string) error { a.Description = v; return nil },
	FieldUser:        func(a *Account, v string) error { a.User = v; return nil },
	FieldURL:         func(a *Account, v string) error { a.URL = v; return nil },
	FieldAnchor1: func(a *Account, v string) error {
		x, err := parseAnchor(v, a.N)
		if err != nil {
			return err
		}
		a.Anchor1 = x
		return nil
	},
	FieldAnchor2: func(a *Account, v string) error {
		x, err := parseAnchor(v, a.N)
		if err != nil {
			return err
		}
		a.Anchor2 = x
		return nil
	},
	FieldN: func(a *Account, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: n must be an integer", common.ErrInvalidInput)
		}
		if err := hashword.ValidateDigestLength(n); err != nil {
			return err
		}
		a.N = n
		return nil
	},
	FieldSuffix: func(a *Account, v string) error { a.Suffix = v; return nil },
}

func parseAnchor(v string, n int) (int64, error) {
	x, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: anchor must be an integer", common.ErrInvalidInput)
	}
	if limit := hashword.AnchorLimit(n); x < 0 || x >= limit {
		return 0, fmt.Errorf("%w: anchor must be in [0, %d)", common.ErrInvalidInput, limit)
	}
	return x, nil
}

// Set assigns value to field f. The account is left unchanged on error.
func (a *Account) Set(f Field, value string) error {
	set, ok := setters[f]
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrInvalidField, f)
	}
	return set(a, value)
}

// Get returns the textual value of field f.
func (a *Account) Get(f Field) (string, error) {
	switch f {
	case FieldName:
		return a.Name, nil
	case FieldDescription:
		return a.Description, nil
	case FieldUser:
		return a.User, nil
	case FieldURL:
		return a.URL, nil
	case FieldAnchor1:
		return strconv.FormatInt(a.Anchor1, 10), nil
	case FieldAnchor2:
		return strconv.FormatInt(a.Anchor2, 10), nil
	case FieldN:
		return strconv.Itoa(a.N), nil
	case FieldSuffix:
		return a.Suffix, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidField, f)
}
