package store

import (
	"errors"
	"fmt"
)

var (
	// ErrLegacySchema is returned for the three-column file layout that
	// predates coordinates. Such files are not migrated.
	ErrLegacySchema = errors.New("legacy job file without coordinates is not supported")
	ErrUnknownSchema = errors.New("unrecognised job file header")
)

// StorageError wraps a filesystem or format failure with the operation
// and file involved.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// RowError identifies a data row that could not be parsed.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
