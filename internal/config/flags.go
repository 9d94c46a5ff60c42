package config

import (
	"flag"

	"github.com/dmitrijs2005/hashkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags known here are parsed (see flagx.FilterArgsWithBools), so -c/-config
// and other components' flags do not interfere.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgsWithBools(args,
		[]string{"-d", "-f", "-l", "-nc", "-nb"},
		[]string{"-nc", "-nb"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "account store driver (csv or sqlite)")
	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "account store path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	noClipboard := fs.Bool("nc", !cfg.ClipboardEnabled, "print values instead of copying them to the clipboard")
	noBrowser := fs.Bool("nb", !cfg.OpenBrowser, "do not offer to open account URLs")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ClipboardEnabled = !*noClipboard
	cfg.OpenBrowser = !*noBrowser
}
