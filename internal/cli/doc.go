// Package cli provides the interactive HashKeeper shell.
//
// It wires configuration, the account store and the account service into a
// read-eval-print loop with single-letter commands:
//
//	g | get      copy an account's user and derived hashword
//	n | new      create an account from comma-separated parameters
//	m | modify   change one property of an account
//	d | delete   remove an account
//	l | list     list account names
//	c | clear    clear the screen
//	e | exit     leave the program
//
// Runtime inputs are read without echo and wiped after parsing. Derived
// hashwords go to the clipboard unless it is disabled, in which case they are
// printed.
//
// The shell is started with App.Run, which blocks until the user exits.
package cli
