// Package filex holds small file-system helpers used by the flat-file
// account store: directory creation, atomic whole-file replacement and an
// exclusive advisory lock that spans a read-modify-write cycle.
package filex
