// Package models defines the account record stored by HashKeeper and the
// enumerated set of fields that may be edited on it.
package models
