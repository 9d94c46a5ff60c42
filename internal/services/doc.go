// Package services implements the account use cases on top of a repository:
// creating accounts with fresh anchors, deriving hashwords, editing single
// fields and deleting records.
package services
