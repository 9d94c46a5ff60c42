package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hashkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish an absent key from a zero value.
type JsonConfig struct {
	StoreDriver *string `json:"store_driver"`
	StorePath   *string `json:"store_path"`
	LogLevel    *string `json:"log_level"`
	Clipboard   *bool   `json:"clipboard"`
	OpenBrowser *bool   `json:"open_browser"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config in args. Without that flag nothing happens. Read or unmarshal
// errors panic; the caller may recover.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlag(args)
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreDriver != nil {
		cfg.StoreDriver = *jc.StoreDriver
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Clipboard != nil {
		cfg.ClipboardEnabled = *jc.Clipboard
	}
	if jc.OpenBrowser != nil {
		cfg.OpenBrowser = *jc.OpenBrowser
	}
}
