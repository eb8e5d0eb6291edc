package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/stamp/internal/model"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single newline", content: "\n", want: []string{""}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\n\nb\n", want: []string{"a", "", "", "b"}},
		{name: "crlf kept", content: "a\r\nb\r\n", want: []string{"a\r", "b\r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines([]byte(tt.content)))
		})
	}
}

func TestJoinLines(t *testing.T) {
	assert.Empty(t, JoinLines(nil))
	assert.Equal(t, "a\n\nb\n", string(JoinLines([]string{"a", "", "b"})))
	assert.Equal(t, "a\r\nb\r\n", string(JoinLines(SplitLines([]byte("a\r\nb\r\n")))))
}

func TestLocalSourceFSAdapter_ReadLines(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	root := t.TempDir()

	path := filepath.Join(root, "base.rb")
	writeTestFile(t, path, "#--\n# Copyright (c) 2024 Acme\n#++\n")

	lines, err := fs.ReadLines(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"#--", "# Copyright (c) 2024 Acme", "#++"}, lines)

	empty := filepath.Join(root, "empty.rb")
	writeTestFile(t, empty, "")

	lines, err = fs.ReadLines(m.Path(empty))
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = fs.ReadLines(m.Path(filepath.Join(root, "missing.rb")))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_WriteLines(t *testing.T) {
	t.Run("keeps permissions", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()

		path := filepath.Join(t.TempDir(), "acme")
		writeTestFile(t, path, "#!/usr/bin/env ruby\n")
		require.NoError(t, os.Chmod(path, 0o755))

		require.NoError(t, fs.WriteLines(m.Path(path), []string{"#!/usr/bin/env ruby", "# Copyright (c) 2026 Acme"}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "#!/usr/bin/env ruby\n# Copyright (c) 2026 Acme\n", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode().Perm()&0o100, "owner execute bit lost")
	})

	t.Run("creates new files", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()

		path := filepath.Join(t.TempDir(), "Manifest.txt")
		require.NoError(t, fs.WriteLines(m.Path(path), []string{"History.rdoc", "Manifest.txt"}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "History.rdoc\nManifest.txt\n", string(content))
	})

	t.Run("missing directory", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()

		err := fs.WriteLines(m.Path(filepath.Join(t.TempDir(), "no", "such", "file")), []string{"x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write")
	})
}

func TestLocalSourceFSAdapter_IsFile(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	root := t.TempDir()

	path := filepath.Join(root, "pom.xml")
	writeTestFile(t, path, "<project/>\n")

	assert.True(t, fs.IsFile(m.Path(path)))
	assert.False(t, fs.IsFile(m.Path(root)))
	assert.False(t, fs.IsFile(m.Path(filepath.Join(root, "missing"))))

	info, err := fs.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}
