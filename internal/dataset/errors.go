package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty means the dataset holds no wines. The quiz cannot start.
	ErrEmpty = errors.New("dataset has no wines")

	// ErrMissingID means a record has no usable id.
	ErrMissingID = errors.New("wine record without id")

	// ErrDuplicateID means two records share an id.
	ErrDuplicateID = errors.New("duplicate wine id")

	// ErrUnsupportedSchema means the declared schemaVersion is invalid or
	// newer than this build understands.
	ErrUnsupportedSchema = errors.New("unsupported dataset schema version")
)

// LoadError wraps a failure to read or decode a dataset document.
type LoadError struct {
	Path string // empty for non-file sources
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load dataset: %v", e.Err)
	}
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
