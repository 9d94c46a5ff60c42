// Package config loads runtime configuration for the HashKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   account store driver: csv or sqlite
//	-f string   account store path
//	-l string   log level: debug, info, warn, error
//	-nc         disable clipboard copy (print values instead)
//	-nb         never offer to open account URLs in a browser
//
// # JSON schema
//
// Every key is optional; absent keys keep the earlier value:
//
//	{
//	  "store_driver": "sqlite",
//	  "store_path": "/home/me/.hashkeeper/vault.db",
//	  "log_level": "info",
//	  "clipboard": false,
//	  "open_browser": false
//	}
package config
