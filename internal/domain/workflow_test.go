package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/stamp/internal/adapter"
	adaptermocks "github.com/mouse-blink/stamp/internal/adapter/mocks"
	uimocks "github.com/mouse-blink/stamp/internal/controller/mocks"
	m "github.com/mouse-blink/stamp/internal/model"
)

var gemFiles = []m.Path{
	"History.rdoc",
	"README.rdoc",
	"bin/acme",
	"init/acme",
	"lib/acme.rb",
	"lib/acme/base.rb",
	"lib/acme/empty.rb",
	"lib/acme/other.rb",
	"pom.xml",
	"src/main/java/acme/Acme.java",
}

// setupGem copies the example gem into a temp dir and changes into it.
func setupGem(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, copy.Copy("../../examples/gem", root))

	t.Chdir(root)

	return root
}

func newTestWorkflow(tracked adapter.TrackedLister, ui *uimocks.MockUI) Workflow {
	return NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		map[string]adapter.TrackedLister{adapter.ListerGoGit: tracked},
		adapter.NewTemplateProvider(),
		ui,
		WithClock(fixedClock),
	)
}

func TestWorkflow_List(t *testing.T) {
	setupGem(t)

	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	tracked.EXPECT().List(mock.Anything, []m.Path(nil), adapter.ListOptions{}).
		Return(append([]m.Path{".gitignore", "lib/a/x.jar", "Manifest.static"}, gemFiles...), nil)

	ui.EXPECT().DisplayFiles(gemFiles[:len(gemFiles)-1]).Return(nil)

	err := newTestWorkflow(tracked, ui).List(context.Background(), ListArgs{
		Exclude: []string{"re:^src/"},
	})
	require.NoError(t, err)
}

func TestWorkflow_List_GitUpdates(t *testing.T) {
	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	want := adapter.ListOptions{Modified: true, Untracked: true, ExcludeStandard: true}
	tracked.EXPECT().List(mock.Anything, mock.Anything, want).Return([]m.Path{"new.rb"}, nil)
	ui.EXPECT().DisplayFiles([]m.Path{"new.rb"}).Return(nil)

	err := newTestWorkflow(tracked, ui).List(context.Background(), ListArgs{GitUpdates: true})
	require.NoError(t, err)
}

func TestWorkflow_UnknownLister(t *testing.T) {
	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	err := newTestWorkflow(tracked, ui).List(context.Background(), ListArgs{Lister: "svn"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestWorkflow_InvalidRule(t *testing.T) {
	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	err := newTestWorkflow(tracked, ui).List(context.Background(), ListArgs{Include: []string{"re:["}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestWorkflow_CollaboratorFailure(t *testing.T) {
	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	tracked.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	err := newTestWorkflow(tracked, ui).List(context.Background(), ListArgs{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCollaborator))
}

func TestWorkflow_Headers(t *testing.T) {
	t.Run("check reports states and fails in strict mode", func(t *testing.T) {
		setupGem(t)

		tracked := adaptermocks.NewMockTrackedLister(t)
		ui := uimocks.NewMockUI(t)

		tracked.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(gemFiles, nil)

		states := make(map[m.Path]m.State)
		ui.EXPECT().DisplayHeaderResult(mock.Anything).Run(func(result m.FileResult) {
			states[result.Source.Path] = result.State
		}).Return(nil)
		ui.EXPECT().DisplayHeaderSummary(mock.Anything, mock.Anything).Return(nil)

		before, err := os.ReadFile("lib/acme/base.rb")
		require.NoError(t, err)

		err = newTestWorkflow(tracked, ui).Headers(context.Background(), HeaderArgs{
			Holder:    "Acme Inc.",
			Inception: 2019,
			License:   "apache",
			Strict:    true,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCheckFailed))

		assert.Equal(t, m.StateDate, states["lib/acme/base.rb"])
		assert.Equal(t, m.StateEmpty, states["lib/acme/empty.rb"])
		assert.Equal(t, m.StateNone, states["lib/acme.rb"])
		assert.Equal(t, m.StateNone, states["pom.xml"])
		assert.Len(t, states, len(gemFiles))

		after, err := os.ReadFile("lib/acme/base.rb")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("write then check is clean", func(t *testing.T) {
		setupGem(t)

		tracked := adaptermocks.NewMockTrackedLister(t)
		ui := uimocks.NewMockUI(t)

		tracked.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(gemFiles, nil)
		ui.EXPECT().DisplayHeaderResult(mock.Anything).Return(nil)
		ui.EXPECT().DisplayHeaderSummary(mock.Anything, mock.Anything).Return(nil)
		ui.EXPECT().DisplayDiff(mock.Anything, mock.Anything, mock.Anything).Return(nil)

		args := HeaderArgs{Holder: "Acme Inc.", Inception: 2019, License: "apache", Write: true, Diff: true}

		require.NoError(t, newTestWorkflow(tracked, ui).Headers(context.Background(), args))

		content, err := os.ReadFile("lib/acme/base.rb")
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Copyright (c) 2019-2026 Acme Inc.")

		args.Write = false
		args.Strict = true
		require.NoError(t, newTestWorkflow(tracked, ui).Headers(context.Background(), args))
	})

	t.Run("missing holder", func(t *testing.T) {
		tracked := adaptermocks.NewMockTrackedLister(t)
		ui := uimocks.NewMockUI(t)

		err := newTestWorkflow(tracked, ui).Headers(context.Background(), HeaderArgs{License: "apache"})
		assert.True(t, errors.Is(err, ErrConfiguration))
	})
}

func TestWorkflow_Manifest(t *testing.T) {
	t.Run("writes Manifest.txt", func(t *testing.T) {
		root := setupGem(t)

		tracked := adaptermocks.NewMockTrackedLister(t)
		ui := uimocks.NewMockUI(t)

		tracked.EXPECT().List(mock.Anything, []m.Path(nil), adapter.ListOptions{Cached: true}).Return(gemFiles, nil)
		ui.EXPECT().DisplayManifest(m.Path(ManifestFile), mock.Anything).Return(nil)

		require.NoError(t, newTestWorkflow(tracked, ui).Manifest(context.Background(), ManifestArgs{}))

		content, err := os.ReadFile(filepath.Join(root, ManifestFile))
		require.NoError(t, err)
		assert.Equal(t, "History.rdoc\n"+
			"Manifest.txt\n"+
			"README.rdoc\n"+
			"pom.xml\n"+
			"bin/acme\n"+
			"init/acme\n"+
			"lib/acme/base.rb\n"+
			"lib/acme.rb\n"+
			"lib/acme/empty.rb\n"+
			"lib/acme/other.rb\n", string(content))
	})

	t.Run("static when Manifest.static exists", func(t *testing.T) {
		root := setupGem(t)
		require.NoError(t, os.WriteFile(filepath.Join(root, StaticManifestFile), nil, 0o600))

		tracked := adaptermocks.NewMockTrackedLister(t)
		ui := uimocks.NewMockUI(t)

		tracked.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
			Return(append([]m.Path{StaticManifestFile}, gemFiles[:3]...), nil)
		ui.EXPECT().DisplayManifest(m.Path(StaticManifestFile), []m.Path{"History.rdoc", "README.rdoc", "bin/acme"}).Return(nil)

		require.NoError(t, newTestWorkflow(tracked, ui).Manifest(context.Background(), ManifestArgs{}))

		content, err := os.ReadFile(filepath.Join(root, StaticManifestFile))
		require.NoError(t, err)
		assert.Equal(t, "History.rdoc\nREADME.rdoc\nbin/acme\n", string(content))

		_, err = os.Stat(filepath.Join(root, ManifestFile))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestWorkflow_Version(t *testing.T) {
	setupGem(t)

	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	var kinds []m.VersionKind
	ui.EXPECT().DisplayVersionResult(mock.Anything).Run(func(result m.VersionResult) {
		kinds = append(kinds, result.Kind)
	}).Return(nil)

	err := newTestWorkflow(tracked, ui).Version(context.Background(), VersionArgs{
		ListArgs: ListArgs{Paths: []m.Path{"History.rdoc", "lib/acme/base.rb", "pom.xml", "init/acme", "README.rdoc"}},
		Version:  "1.1.0",
	})
	require.NoError(t, err)

	assert.Equal(t, []m.VersionKind{m.VersionChangelog, m.VersionRuby, m.VersionPom, m.VersionInit}, kinds)

	history, err := os.ReadFile("History.rdoc")
	require.NoError(t, err)
	assert.Contains(t, string(history), "=== 1.1.0 (2026-3-7)")

	base, err := os.ReadFile("lib/acme/base.rb")
	require.NoError(t, err)
	assert.Contains(t, string(base), "VERSION = '1.1.0'")

	pom, err := os.ReadFile("pom.xml")
	require.NoError(t, err)
	assert.Contains(t, string(pom), "<version>1.1.0</version>")
	assert.Contains(t, string(pom), "<version>[1.0.0,1.0.999)</version>")

	tracked.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Count(t *testing.T) {
	setupGem(t)

	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	tracked.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(gemFiles, nil)

	var rows []m.CountRow
	ui.EXPECT().DisplayCounts(mock.Anything, true).Run(func(r []m.CountRow, _ bool) {
		rows = r
	}).Return(nil)

	err := newTestWorkflow(tracked, ui).Count(context.Background(), CountArgs{Verbose: true, Threads: 2})
	require.NoError(t, err)

	require.NotEmpty(t, rows)
	assert.Equal(t, m.CountRow{Name: "JAVA", Lines: 4, Code: 3}, rows[1])
	assert.Equal(t, TotalRow, rows[len(rows)-1].Name)
}

func TestWorkflow_VersionReportsFailures(t *testing.T) {
	setupGem(t)

	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	tracked.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Path{"lib/acme/base.rb", "lib/acme/gone/version.rb"}, nil)
	ui.EXPECT().DisplayVersionResult(mock.Anything).Return(nil).Once()

	var failed []m.FileFailure
	ui.EXPECT().DisplayFailures(mock.Anything).Run(func(f []m.FileFailure) {
		failed = f
	}).Return(nil).Once()

	err := newTestWorkflow(tracked, ui).Version(context.Background(), VersionArgs{Version: "1.1.0"})
	require.NoError(t, err)

	require.Len(t, failed, 1)
	assert.Equal(t, m.Path("lib/acme/gone/version.rb"), failed[0].Path)
}

func TestWorkflow_CountReportsFailures(t *testing.T) {
	setupGem(t)

	tracked := adaptermocks.NewMockTrackedLister(t)
	ui := uimocks.NewMockUI(t)

	tracked.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return(append(append([]m.Path{}, gemFiles...), "lib/acme/gone.rb"), nil)
	ui.EXPECT().DisplayCounts(mock.Anything, false).Return(nil)

	var failed []m.FileFailure
	ui.EXPECT().DisplayFailures(mock.Anything).Run(func(f []m.FileFailure) {
		failed = f
	}).Return(nil)

	err := newTestWorkflow(tracked, ui).Count(context.Background(), CountArgs{Threads: 2})
	require.NoError(t, err)

	require.Len(t, failed, 1)
	assert.Equal(t, m.Path("lib/acme/gone.rb"), failed[0].Path)
}
