package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-f", "accounts.csv"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-f", "accounts.csv"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-f"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f"},
		},
		{
			name:         "flag followed by another flag (no value)",
			args:         []string{"-nc", "-f", "store.csv"},
			allowedFlags: []string{"-nc", "-f"},
			want:         []string{"-nc", "-f", "store.csv"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-f", "one.csv", "-f", "two.csv"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f", "one.csv", "-f", "two.csv"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlag(t *testing.T) {
	assert.Equal(t, "/path/short.json", JsonConfigFlag([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", JsonConfigFlag([]string{"-config", "/path/long.json"}))
	assert.Empty(t, JsonConfigFlag([]string{"-f", "accounts.csv", "-l", "debug"}))
	assert.Equal(t, "/path/2.json", JsonConfigFlag([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
}

func TestFilterArgsWithBools(t *testing.T) {
	allowed := []string{"-f", "-nc", "-nb"}
	bools := []string{"-nc", "-nb"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "bool flag does not swallow next argument",
			args: []string{"-nb", "stray", "-f", "x.csv"},
			want: []string{"-nb", "-f", "x.csv"},
		},
		{
			name: "bool flag with explicit value",
			args: []string{"-nc=false", "-f", "x.csv"},
			want: []string{"-nc=false", "-f", "x.csv"},
		},
		{
			name: "value flags still take their value",
			args: []string{"-f", "x.csv", "-nc"},
			want: []string{"-f", "x.csv", "-nc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgsWithBools(tt.args, allowed, bools))
		})
	}
}
