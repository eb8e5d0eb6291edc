package adapter

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	m "github.com/mouse-blink/stamp/internal/model"
)

// ListOptions selects which working tree files a TrackedLister reports. When
// neither Modified nor Untracked is set, tracked (cached) files are listed.
type ListOptions struct {
	Cached          bool
	Modified        bool
	Untracked       bool
	ExcludeStandard bool
}

// WithUpdates returns a copy of o that also reports modified and untracked
// files, honouring the standard ignore files.
func (o ListOptions) WithUpdates() ListOptions {
	o.Modified = true
	o.Untracked = true
	o.ExcludeStandard = true

	return o
}

func (o ListOptions) cached() bool {
	return o.Cached || (!o.Modified && !o.Untracked)
}

// TrackedLister lists files known to version control, relative to the
// working directory and restricted to dirs (all files when dirs is empty).
type TrackedLister interface {
	List(ctx context.Context, dirs []m.Path, opts ListOptions) ([]m.Path, error)
}

// Lister kinds accepted by NewTrackedLister.
const (
	ListerGoGit = "go-git"
	ListerGit   = "git"
)

// NewTrackedLister returns the lister implementation named by kind, rooted
// at dir.
func NewTrackedLister(kind, dir string) (TrackedLister, error) {
	switch kind {
	case "", ListerGoGit:
		return NewGoGitLister(dir), nil
	case ListerGit:
		return NewGitCLILister(dir), nil
	default:
		return nil, fmt.Errorf("unknown lister %q (want %s or %s)", kind, ListerGoGit, ListerGit)
	}
}

// underDirs reports whether the slash separated name lies below one of dirs.
func underDirs(name string, dirs []string) bool {
	if len(dirs) == 0 {
		return true
	}

	for _, dir := range dirs {
		if dir == "." || dir == "" || name == dir || strings.HasPrefix(name, dir+"/") {
			return true
		}
	}

	return false
}

func cleanDirs(dirs []m.Path) []string {
	cleaned := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		cleaned = append(cleaned, path.Clean(strings.ReplaceAll(string(dir), "\\", "/")))
	}

	return cleaned
}

func sortedPaths(set map[string]struct{}) []m.Path {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}

	sort.Strings(names)

	paths := make([]m.Path, 0, len(names))
	for _, name := range names {
		paths = append(paths, m.Path(name))
	}

	return paths
}
