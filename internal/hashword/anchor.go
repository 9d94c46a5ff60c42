package hashword

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
)

// Digest length bounds. Anchors are kept in int64, so 10^n must fit.
const (
	MinDigestLength = 1
	MaxDigestLength = 18
)

// ValidateDigestLength reports whether n is a usable digest length.
func ValidateDigestLength(n int) error {
	if n < MinDigestLength || n > MaxDigestLength {
		return fmt.Errorf("%w: digest length must be in [%d, %d], got %d",
			common.ErrInvalidInput, MinDigestLength, MaxDigestLength, n)
	}
	return nil
}

// AnchorLimit returns 10^n, the exclusive upper bound of an anchor.
func AnchorLimit(n int) int64 {
	limit := int64(1)
	for i := 0; i < n; i++ {
		limit *= 10
	}
	return limit
}

// GenerateAnchor returns an integer drawn uniformly from [0, 10^n) using r
// as the source of randomness. Production callers pass crypto/rand.Reader.
func GenerateAnchor(r io.Reader, n int) (int64, error) {
	if err := ValidateDigestLength(n); err != nil {
		return 0, err
	}
	v, err := rand.Int(r, big.NewInt(AnchorLimit(n)))
	if err != nil {
		return 0, fmt.Errorf("generate anchor: %w", err)
	}
	return v.Int64(), nil
}

// NewAnchors draws two independent anchors for digest length n.
func NewAnchors(r io.Reader, n int) (anchor1, anchor2 int64, err error) {
	if anchor1, err = GenerateAnchor(r, n); err != nil {
		return 0, 0, err
	}
	if anchor2, err = GenerateAnchor(r, n); err != nil {
		return 0, 0, err
	}
	return anchor1, anchor2, nil
}
