package adapter

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	m "github.com/mouse-blink/stamp/internal/model"
)

// GitCLILister runs `git ls-files` in Dir.
type GitCLILister struct {
	Dir string
	Git string
}

// NewGitCLILister constructs a GitCLILister using the git found on PATH.
func NewGitCLILister(dir string) *GitCLILister {
	return &GitCLILister{Dir: dir, Git: "git"}
}

// List runs git ls-files with flags derived from opts.
func (l *GitCLILister) List(ctx context.Context, dirs []m.Path, opts ListOptions) ([]m.Path, error) {
	args := append([]string{"ls-files"}, lsFilesFlags(opts)...)
	if len(dirs) > 0 {
		args = append(args, "--")
		for _, dir := range dirs {
			args = append(args, string(dir))
		}
	}

	var stderr bytes.Buffer

	// #nosec G204 - arguments are flags and project paths, no shell involved
	cmd := exec.CommandContext(ctx, l.Git, args...)
	cmd.Dir = l.Dir
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s: %s", l.Git, strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if _, ok := seen[line]; ok {
			continue
		}

		seen[line] = struct{}{}
		paths = append(paths, m.Path(line))
	}

	return paths, nil
}

func lsFilesFlags(opts ListOptions) []string {
	var flags []string

	if opts.Cached {
		flags = append(flags, "-c")
	}

	if opts.Modified {
		flags = append(flags, "-m")
	}

	if opts.Untracked {
		flags = append(flags, "-o")
	}

	if opts.ExcludeStandard {
		flags = append(flags, "--exclude-standard")
	}

	return flags
}
