package adapter

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	m "github.com/mouse-blink/stamp/internal/model"
)

// GoGitLister lists tracked files in-process by reading the repository index
// and worktree status with go-git. Ignored files never show up as untracked,
// so ExcludeStandard is always in effect.
type GoGitLister struct {
	Dir string
}

// NewGoGitLister constructs a GoGitLister for the repository containing dir.
func NewGoGitLister(dir string) *GoGitLister {
	return &GoGitLister{Dir: dir}
}

// List returns index and/or status entries below dirs, relative to Dir.
func (l *GoGitLister) List(_ context.Context, dirs []m.Path, opts ListOptions) ([]m.Path, error) {
	repo, err := git.PlainOpenWithOptions(l.Dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open git repository at %s", l.Dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open worktree")
	}

	prefix, err := l.prefix(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{})

	if opts.cached() {
		idx, err := repo.Storer.Index()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read git index")
		}

		for _, entry := range idx.Entries {
			names[entry.Name] = struct{}{}
		}
	}

	if opts.Modified || opts.Untracked {
		status, err := wt.Status()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read worktree status")
		}

		for name, fs := range status {
			switch {
			case fs.Worktree == git.Untracked:
				if opts.Untracked {
					names[name] = struct{}{}
				}
			case fs.Worktree != git.Unmodified:
				if opts.Modified {
					names[name] = struct{}{}
				}
			}
		}
	}

	wanted := cleanDirs(dirs)
	selected := make(map[string]struct{}, len(names))

	for name := range names {
		rel, ok := relativeTo(name, prefix)
		if !ok || !underDirs(rel, wanted) {
			continue
		}

		selected[rel] = struct{}{}
	}

	return sortedPaths(selected), nil
}

// prefix returns Dir relative to the worktree root in slash form.
func (l *GoGitLister) prefix(root string) (string, error) {
	abs, err := filepath.Abs(l.Dir)
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", errors.Wrapf(err, "%s is outside the worktree %s", l.Dir, root)
	}

	return filepath.ToSlash(rel), nil
}

func relativeTo(name, prefix string) (string, bool) {
	if prefix == "." || prefix == "" {
		return name, true
	}

	if !strings.HasPrefix(name, prefix+"/") {
		return "", false
	}

	return strings.TrimPrefix(name, prefix+"/"), true
}
