// Package adapter contains infrastructure adapters for the stamp CLI.
package adapter

import (
	"bytes"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	m "github.com/mouse-blink/stamp/internal/model"
)

const defaultFileMode os.FileMode = 0o644

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading and patching project files. It hides direct `os`
// access so the workflow logic can be tested against fakes.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadLines loads a file as lines without their line terminators. A
	// zero-length file yields no lines.
	ReadLines(path m.Path) ([]string, error)

	// WriteLines replaces the whole file with lines, each followed by a
	// newline. Existing permissions are kept.
	WriteLines(path m.Path, lines []string) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// IsFile reports whether path names an existing regular file.
	IsFile(path m.Path) bool
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the project file listing
	return os.ReadFile(string(path))
}

// ReadLines loads a file and splits it on newlines.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return SplitLines(content), nil
}

// WriteLines atomically replaces path with lines.
func (a *LocalSourceFSAdapter) WriteLines(path m.Path, lines []string) error {
	mode := defaultFileMode
	if info, err := os.Stat(string(path)); err == nil {
		mode = info.Mode().Perm()
	}

	if err := renameio.WriteFile(string(path), JoinLines(lines), mode); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// IsFile reports whether path is an existing regular file.
func (a *LocalSourceFSAdapter) IsFile(path m.Path) bool {
	info, err := a.FileInfo(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// SplitLines splits content into lines, dropping the terminator of the last
// line. Carriage returns are kept so CRLF files round-trip unchanged.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(content), "\n")

	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines: every line gets a trailing newline.
func JoinLines(lines []string) []byte {
	var buf bytes.Buffer

	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
