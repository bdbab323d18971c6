package document

import (
	"errors"
	"fmt"
)

// ErrDocumentUnavailable reports that the document could not be opened, read
// or decoded. It is fatal at startup.
var ErrDocumentUnavailable = errors.New("document unavailable")

// ErrNotText is wrapped by Error when the content looks binary.
// ErrIsDirectory is wrapped by Error when the path names a directory.
var (
	ErrNotText     = errors.New("not a text document")
	ErrIsDirectory = errors.New("is a directory")
)

// Error describes a failed load of Path during Op.
type Error struct {
	Op   string // "open", "read" or "decode"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s document: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every load failure match ErrDocumentUnavailable.
func (e *Error) Is(target error) bool {
	return target == ErrDocumentUnavailable
}
