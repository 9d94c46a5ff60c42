// Package accounts provides persistence for account records.
//
// # Overview
//
// The package defines a Repository interface with create/read/update/delete
// operations keyed by account name. Names are matched case-insensitively and
// stored with their original spelling.
//
// Two implementations are provided:
//
//   - CSVRepository keeps all records in one CSV file. Every write loads the
//     whole file, mutates the in-memory set and rewrites the file sorted by
//     name through an atomic replace. An exclusive lock on "<file>.lock" is
//     held for the whole read-modify-write span, so concurrent processes
//     cannot lose each other's updates.
//   - SQLiteRepository keeps records in an SQLite table created by the
//     embedded goose migrations; every mutation runs in a transaction.
//
// Errors
//
// Failures are reported with the sentinels from internal/common:
// ErrorNotFound, ErrDuplicateAccount and ErrInvalidInput. A failed Create,
// Update, Rename or Delete leaves the store unchanged.
//
// Typical Usage
//
//	repo := accounts.NewCSVRepository("accounts.csv")
//	_ = repo.Create(ctx, acct)
//	list, _ := repo.List(ctx)
//	one, _ := repo.GetByName(ctx, "bank")
//	_ = repo.Delete(ctx, "bank")
package accounts
