package hashword

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
)

// Params is the stored half of the secret for one account.
type Params struct {
	Anchor1 int64
	Anchor2 int64
	N       int
	Suffix  string
}

// Key evaluates k = anchor1 - (anchor2-anchor1)/(input2-input1)*input1.
//
// The quotient is rounded once from the exact integer ratio. The explicit
// float64 conversions keep the compiler from fusing the multiply and the
// subtraction, so every platform rounds the same way.
func Key(p Params, input1, input2 int64) (float64, error) {
	if input1 == input2 {
		return 0, common.ErrDegenerateInput
	}
	if input1 <= 0 || input2 <= 0 {
		return 0, fmt.Errorf("%w: runtime inputs must be positive integers", common.ErrInvalidInput)
	}

	slope, _ := new(big.Rat).SetFrac(
		big.NewInt(p.Anchor2-p.Anchor1),
		big.NewInt(input2-input1),
	).Float64()

	product := float64(slope * float64(input1))
	return float64(float64(p.Anchor1) - product), nil
}

// Derive returns the hashword for p and the two runtime inputs.
func Derive(p Params, input1, input2 int64) (string, error) {
	k, err := Key(p, input1, input2)
	if err != nil {
		return "", err
	}
	if err := ValidateDigestLength(p.N); err != nil {
		return "", err
	}

	scaled := float64(k * math.Pow10(p.N))
	// big.Float.Int truncates toward zero and does not overflow for large n.
	truncated, _ := new(big.Float).SetFloat64(scaled).Int(nil)

	sum := sha256.Sum256([]byte(truncated.String()))
	digest := hex.EncodeToString(sum[:])

	return digest[len(digest)-p.N:] + p.Suffix, nil
}

// ParseInput validates a runtime input typed by the user. Only plain decimal
// digits forming a positive integer that fits in int64 are accepted.
func ParseInput(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: input is empty", common.ErrInvalidInput)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: input must be numeric", common.ErrInvalidInput)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: input must be positive", common.ErrInvalidInput)
	}
	return v, nil
}
