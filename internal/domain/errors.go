package domain

import (
	"github.com/pkg/errors"

	m "github.com/mouse-blink/stamp/internal/model"
)

var (
	// ErrConfiguration marks invalid options. Raised before any file is touched.
	ErrConfiguration = errors.New("configuration error")

	// ErrCollaborator marks a failure of the tracked-file lister.
	ErrCollaborator = errors.New("file listing failed")

	// ErrCheckFailed is returned in strict mode when any file is not GOOD.
	ErrCheckFailed = errors.New("check failed")

	// ErrMalformedMarker is recorded when a copyright line cannot be parsed.
	ErrMalformedMarker = errors.New("malformed copyright marker")

	// ErrBinaryFile marks content with NUL bytes, which never gets a header.
	ErrBinaryFile = errors.New("binary file")
)

// FileError wraps an I/O failure for a single file.
type FileError struct {
	Path m.Path
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return e.Op + " " + string(e.Path) + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func fileError(path m.Path, op string, err error) error {
	return &FileError{Path: path, Op: op, Err: err}
}

func configError(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

// kindedError tags a collaborator failure with a sentinel kind. Both the kind
// and the cause match errors.Is.
type kindedError struct {
	kind error
	err  error
}

func (e *kindedError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *kindedError) Is(target error) bool {
	return target == e.kind
}

func (e *kindedError) Unwrap() error {
	return e.err
}

func kindError(kind, err error) error {
	return &kindedError{kind: kind, err: err}
}
