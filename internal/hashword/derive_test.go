package hashword

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bank = Params{Anchor1: 48213977, Anchor2: 90577321, N: 8}

func TestDerive_KnownValues(t *testing.T) {
	tests := []struct {
		name   string
		p      Params
		i1, i2 int64
		want   string
	}{
		{name: "bank", p: bank, i1: 1234, i2: 5678, want: "69ba09aa"},
		{name: "bank, other second input", p: bank, i1: 1234, i2: 9999, want: "c553a05e"},
		{name: "bank, swapped inputs", p: bank, i1: 5678, i2: 1234, want: "4dfaac9f"},
		{name: "suffix appended", p: Params{Anchor1: 48213977, Anchor2: 90577321, N: 8, Suffix: "!A"}, i1: 1234, i2: 5678, want: "69ba09aa!A"},
		{name: "single digit", p: Params{Anchor1: 7, Anchor2: 3, N: 1}, i1: 2, i2: 5, want: "4"},
		{name: "truncation not rounding", p: Params{Anchor1: 12, Anchor2: 34, N: 2}, i1: 1, i2: 1000000, want: "fc"},
		{
			name: "maximum digest length",
			p:    Params{Anchor1: 123456789012345678, Anchor2: 987654321098765432, N: 18, Suffix: "#"},
			i1:   17, i2: 42,
			want: "52e252f887fccfd028#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.p, tt.i1, tt.i2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey_EvaluationOrder(t *testing.T) {
	k, err := Key(Params{Anchor1: 7, Anchor2: 3, N: 1}, 2, 5)
	require.NoError(t, err)
	assert.InDelta(t, 9.666666666666666, k, 1e-12)

	k, err = Key(bank, 1234, 5678)
	require.NoError(t, err)
	assert.Equal(t, 36450618.20252025, k)
}

func TestDerive_Deterministic(t *testing.T) {
	first, err := Derive(bank, 1234, 5678)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		got, err := Derive(bank, 1234, 5678)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestDerive_DegenerateInputs(t *testing.T) {
	records := []Params{bank, {Anchor1: 0, Anchor2: 0, N: 1}, {Anchor1: 5, Anchor2: 9, N: 3, Suffix: "x"}}
	for _, p := range records {
		for _, x := range []int64{-3, 0, 1, 42, 1 << 40} {
			_, err := Derive(p, x, x)
			require.ErrorIs(t, err, common.ErrDegenerateInput, "params=%+v x=%d", p, x)
		}
	}
}

func TestDerive_InvalidInputs(t *testing.T) {
	_, err := Derive(bank, 0, 5)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = Derive(bank, 5, -1)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = Derive(Params{Anchor1: 1, Anchor2: 2, N: 0}, 1, 2)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = Derive(Params{Anchor1: 1, Anchor2: 2, N: MaxDigestLength + 1}, 1, 2)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestDerive_OutputShape(t *testing.T) {
	for n := MinDigestLength; n <= MaxDigestLength; n++ {
		p := Params{Anchor1: AnchorLimit(n) / 3, Anchor2: AnchorLimit(n) / 7, N: n, Suffix: "$uf"}
		got, err := Derive(p, 31, 97)
		require.NoError(t, err)
		require.Len(t, got, n+len(p.Suffix))
		require.True(t, strings.HasSuffix(got, p.Suffix))
		for _, r := range got[:n] {
			require.Contains(t, "0123456789abcdef", string(r))
		}
	}
}

// Distinct input pairs are expected to give distinct hashwords for almost
// all samples; coincidences are possible, so only the rate is checked.
func TestDerive_SensitivityIsStatistical(t *testing.T) {
	ref, err := Derive(bank, 1234, 5678)
	require.NoError(t, err)

	const samples = 2000
	same := 0
	seen := make(map[string]struct{}, samples)
	for i := int64(1); i <= samples; i++ {
		i1, i2 := 1000+i*7, 5000+i*13
		got, err := Derive(bank, i1, i2)
		require.NoError(t, err)
		if got == ref {
			same++
		}
		seen[got] = struct{}{}
	}
	assert.LessOrEqual(t, same, samples/100, "too many pairs collide with the reference")
	assert.GreaterOrEqual(t, len(seen), samples*95/100, "too few distinct hashwords")
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1234", want: 1234},
		{in: "  5678\n", want: 5678},
		{in: "0", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "12a", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got, err := ParseInput(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
