package config

import "os"

// Supported account store drivers.
const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
)

// Config holds runtime settings for the HashKeeper CLI.
//
// Fields:
//   - StoreDriver: "csv" (flat file, default) or "sqlite".
//   - StorePath: location of the account store file.
//   - LogLevel: debug, info, warn or error.
//   - ClipboardEnabled: copy user names and hashwords to the clipboard
//     instead of printing them.
//   - OpenBrowser: offer to open the account URL after selecting it.
type Config struct {
	StoreDriver      string
	StorePath        string
	LogLevel         string
	ClipboardEnabled bool
	OpenBrowser      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = DriverCSV
	c.StorePath = "accounts.csv"
	c.LogLevel = "warn"
	c.ClipboardEnabled = true
	c.OpenBrowser = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
