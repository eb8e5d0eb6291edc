package domain

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/mouse-blink/stamp/internal/adapter"
	"github.com/mouse-blink/stamp/internal/controller"
	m "github.com/mouse-blink/stamp/internal/model"
)

// Workflow runs the stamp commands.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Headers(ctx context.Context, args HeaderArgs) error
	Manifest(ctx context.Context, args ManifestArgs) error
	Version(ctx context.Context, args VersionArgs) error
	Count(ctx context.Context, args CountArgs) error
}

// ListArgs select the files a command works on.
type ListArgs struct {
	Paths []m.Path
	// Include and Exclude hold rules in ParseRule form.
	Include []string
	Exclude []string
	// GitUpdates adds modified and untracked files.
	GitUpdates bool
	// Lister names the tracked-file lister, see adapter.ListerGoGit.
	Lister string
}

// HeaderArgs configure a header run.
type HeaderArgs struct {
	ListArgs
	Holder       string
	Inception    int
	License      string
	Write        bool
	LenientYears bool
	Diff         bool
	// Strict makes NONE, DATE and failed files an error.
	Strict bool
}

// ManifestArgs configure a manifest run.
type ManifestArgs struct {
	ListArgs
	Static bool
}

// VersionArgs configure a version bump.
type VersionArgs struct {
	ListArgs
	Version      string
	DependPrefix string
	Diff         bool
}

// CountArgs configure a line count.
type CountArgs struct {
	ListArgs
	Verbose bool
	Threads int
}

type workflow struct {
	fs        adapter.SourceFSAdapter
	listers   map[string]adapter.TrackedLister
	templates adapter.TemplateProvider
	ui        controller.UI
	now       func() time.Time
}

// Option customizes a Workflow.
type Option func(*workflow)

// WithClock sets the time source used for years and release dates.
func WithClock(now func() time.Time) Option {
	return func(w *workflow) {
		w.now = now
	}
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// listers maps lister kinds to implementations.
func NewWorkflow(fs adapter.SourceFSAdapter, listers map[string]adapter.TrackedLister, templates adapter.TemplateProvider, ui controller.UI, opts ...Option) Workflow {
	w := &workflow{
		fs:        fs,
		listers:   listers,
		templates: templates,
		ui:        ui,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *workflow) newLister(args ListArgs, opts adapter.ListOptions, excludes []Rule) (*Lister, error) {
	include, err := ParseRules(args.Include)
	if err != nil {
		return nil, err
	}

	exclude, err := ParseRules(args.Exclude)
	if err != nil {
		return nil, err
	}

	kind := lo.Ternary(args.Lister == "", adapter.ListerGoGit, args.Lister)

	tracked, ok := w.listers[kind]
	if !ok {
		return nil, configError("unknown lister %q", kind)
	}

	if args.GitUpdates {
		opts = opts.WithUpdates()
	}

	filters := FilterSet{Include: include, Exclude: append(excludes, exclude...)}

	return NewLister(w.fs, tracked, args.Paths, opts, filters), nil
}

// List prints the selected files.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	lister, err := w.newLister(args, adapter.ListOptions{}, DefaultExcludes())
	if err != nil {
		return err
	}

	files, err := lister.Files(ctx)
	if err != nil {
		return err
	}

	return w.ui.DisplayFiles(files)
}

// Headers checks, and with Write repairs, copyright headers.
func (w *workflow) Headers(ctx context.Context, args HeaderArgs) error {
	editor, err := NewHeaderEditor(w.fs, w.templates, HeaderSpec{
		Holder:       args.Holder,
		Inception:    args.Inception,
		License:      args.License,
		LenientYears: args.LenientYears,
		Year:         w.now().Year(),
	})
	if err != nil {
		return err
	}

	lister, err := w.newLister(args.ListArgs, adapter.ListOptions{}, DefaultExcludes())
	if err != nil {
		return err
	}

	files, err := lister.Files(ctx)
	if err != nil {
		return err
	}

	log.Info("checking headers", "files", len(files), "years", editor.Years(), "write", args.Write)

	var displayErr error

	results, failures, err := editor.ProcessHeaders(ctx, files, args.Write, func(out HeaderOutcome) {
		if displayErr != nil {
			return
		}

		displayErr = w.ui.DisplayHeaderResult(m.FileResult{Source: out.Source, State: out.State})

		if displayErr == nil && args.Diff && out.Before != nil {
			displayErr = w.ui.DisplayDiff(out.Source.Path, out.Before, out.After)
		}
	})
	if err != nil {
		return err
	}

	if displayErr != nil {
		return displayErr
	}

	if err := w.ui.DisplayHeaderSummary(results, failures); err != nil {
		return err
	}

	if args.Strict {
		pending := lo.CountBy(results, func(r m.FileResult) bool {
			return r.State == m.StateNone || r.State == m.StateDate
		})

		if pending > 0 || len(failures) > 0 {
			return errors.Wrapf(ErrCheckFailed, "%d files need a header update, %d failed", pending, len(failures))
		}
	}

	return nil
}

// Manifest writes Manifest.txt, or Manifest.static in static mode.
func (w *workflow) Manifest(ctx context.Context, args ManifestArgs) error {
	static := args.Static || w.fs.IsFile(StaticManifestFile)
	target := m.Path(lo.Ternary(static, StaticManifestFile, ManifestFile))

	excludes := append(DefaultExcludes(), ManifestExcludes()...)

	lister, err := w.newLister(args.ListArgs, adapter.ListOptions{Cached: true}, excludes)
	if err != nil {
		return err
	}

	if !static {
		lister.Extra = append(lister.Extra, ManifestFile)
	}

	files, err := lister.Files(ctx)
	if err != nil {
		return err
	}

	sorted := SortManifest(files)

	lines := lo.Map(sorted, func(p m.Path, _ int) string { return string(p) })
	if err := w.fs.WriteLines(target, lines); err != nil {
		return fileError(target, "write", err)
	}

	log.Info("wrote manifest", "path", target, "files", len(sorted))

	return w.ui.DisplayManifest(target, sorted)
}

// Version bumps version strings in the selected files.
func (w *workflow) Version(ctx context.Context, args VersionArgs) error {
	patcher, err := NewVersionPatcher(w.fs, args.Version, args.DependPrefix, w.now)
	if err != nil {
		return err
	}

	lister, err := w.newLister(args.ListArgs, adapter.ListOptions{}, DefaultExcludes())
	if err != nil {
		return err
	}

	files, err := lister.Files(ctx)
	if err != nil {
		return err
	}

	var displayErr error

	_, failures, err := patcher.BumpVersion(ctx, files, func(out VersionOutcome) {
		if displayErr != nil {
			return
		}

		displayErr = w.ui.DisplayVersionResult(out.Result)

		if displayErr == nil && args.Diff {
			displayErr = w.ui.DisplayDiff(out.Result.Path, out.Before, out.After)
		}
	})
	if err != nil {
		return err
	}

	if displayErr != nil {
		return displayErr
	}

	return w.displayFailures(failures)
}

// Count prints per-language line counts. Default exclusions do not apply.
func (w *workflow) Count(ctx context.Context, args CountArgs) error {
	lister, err := w.newLister(args.ListArgs, adapter.ListOptions{}, nil)
	if err != nil {
		return err
	}

	files, err := lister.Files(ctx)
	if err != nil {
		return err
	}

	rows, failures, err := NewCounter(w.fs, DefaultCountGroups(), args.Threads).Count(ctx, files)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayCounts(rows, args.Verbose); err != nil {
		return err
	}

	return w.displayFailures(failures)
}

func (w *workflow) displayFailures(failures []m.FileFailure) error {
	if len(failures) == 0 {
		return nil
	}

	return w.ui.DisplayFailures(failures)
}
