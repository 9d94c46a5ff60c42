// Package common defines shared sentinel errors used across HashKeeper
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrDuplicateAccount = errors.New("account already exists")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidField = errors.New("invalid field")

	// Derivation errors.
	ErrDegenerateInput = errors.New("degenerate input: runtime inputs must differ")
)
