package types

import "errors"

// Input and database errors. A database-level error aborts processing of
// that database only; callers test with errors.Is.
var (
	ErrPathInvalid             = errors.New("path is not a readable file")
	ErrDatabaseLockedOrCorrupt = errors.New("database is locked or corrupt")
	ErrMissingTable            = errors.New("expected table missing")
	ErrNoDatabasesFound        = errors.New("no databases found")
)

// Reporting errors.
var (
	ErrOutFileBusy = errors.New("output file is locked by another process")
)
