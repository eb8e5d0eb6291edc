package domain

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/mouse-blink/stamp/internal/adapter"
	m "github.com/mouse-blink/stamp/internal/model"
)

// Lister computes the working file set once and caches it.
type Lister struct {
	fs      adapter.SourceFSAdapter
	tracked adapter.TrackedLister

	// Args are explicit files and directories. Directories (or no args at
	// all) are expanded through the tracked-file lister.
	Args    []m.Path
	Options adapter.ListOptions
	// Extra files are appended after listing, before filtering.
	Extra   []m.Path
	Filters FilterSet

	files  []m.Path
	listed bool
}

// NewLister constructs a Lister.
func NewLister(fs adapter.SourceFSAdapter, tracked adapter.TrackedLister, args []m.Path, opts adapter.ListOptions, filters FilterSet) *Lister {
	return &Lister{
		fs:      fs,
		tracked: tracked,
		Args:    args,
		Options: opts,
		Filters: filters,
	}
}

// Files returns the filtered file list. The first successful call fixes the
// result for the lifetime of the Lister.
func (l *Lister) Files(ctx context.Context) ([]m.Path, error) {
	if l.listed {
		return l.files, nil
	}

	var literal, dirs []m.Path

	for _, arg := range l.Args {
		if l.fs.IsFile(arg) {
			literal = append(literal, arg)
		} else {
			dirs = append(dirs, arg)
		}
	}

	all := append([]m.Path{}, literal...)

	if len(dirs) > 0 || len(literal) == 0 {
		log.Debug("listing tracked files", "dirs", dirs, "options", l.Options)

		listed, err := l.tracked.List(ctx, dirs, l.Options)
		if err != nil {
			return nil, kindError(ErrCollaborator, err)
		}

		all = append(all, listed...)
	}

	all = append(all, l.Extra...)

	all = lo.FilterMap(all, func(p m.Path, _ int) (m.Path, bool) {
		trimmed := m.Path(strings.TrimSpace(string(p)))
		return trimmed, trimmed != ""
	})
	all = lo.Uniq(all)

	if len(l.Filters.Include) > 0 {
		all = lo.Filter(all, func(p m.Path, _ int) bool {
			return Matches(l.Filters.Include, string(p))
		})
	}

	all = lo.Reject(all, func(p m.Path, _ int) bool {
		return Matches(l.Filters.Exclude, string(p))
	})

	l.files = all
	l.listed = true

	return l.files, nil
}
