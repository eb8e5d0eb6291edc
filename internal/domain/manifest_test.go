package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/stamp/internal/model"
)

func TestSortManifest(t *testing.T) {
	tests := []struct {
		name  string
		input []m.Path
		want  []m.Path
	}{
		{
			name:  "files before subdirectories",
			input: []m.Path{"lib/foo/bar.rb", "lib/zed.rb", "README.rdoc", "History.rdoc"},
			want:  []m.Path{"History.rdoc", "README.rdoc", "lib/zed.rb", "lib/foo/bar.rb"},
		},
		{
			name:  "base before sibling",
			input: []m.Path{"lib/foo.rb", "lib/foo/other.rb", "lib/foo/base.rb"},
			want:  []m.Path{"lib/foo/base.rb", "lib/foo.rb", "lib/foo/other.rb"},
		},
		{
			name:  "base and version",
			input: []m.Path{"lib/foo/version.rb", "lib/foo.rb", "lib/foo/base.rb", "lib/foo/a.rb"},
			want:  []m.Path{"lib/foo/base.rb", "lib/foo/version.rb", "lib/foo.rb", "lib/foo/a.rb"},
		},
		{
			name:  "base without sibling keeps position",
			input: []m.Path{"lib/bar/base.rb", "lib/foo.rb", "lib/foo/base.rb", "lib/bar/a.rb"},
			want:  []m.Path{"lib/foo/base.rb", "lib/foo.rb", "lib/bar/a.rb", "lib/bar/base.rb"},
		},
		{
			name:  "leading dot and duplicates",
			input: []m.Path{"./a.rb", "a.rb", "./b/c.rb"},
			want:  []m.Path{"a.rb", "b/c.rb"},
		},
		{
			name:  "top level base untouched",
			input: []m.Path{"version.rb", "base.rb"},
			want:  []m.Path{"base.rb", "version.rb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortManifest(tt.input))
		})
	}
}

func TestCompareSegments(t *testing.T) {
	assert.Equal(t, -1, compareSegments([]string{"z.rb"}, []string{"a", "b.rb"}))
	assert.Equal(t, 1, compareSegments([]string{"a", "b.rb"}, []string{"z.rb"}))
	assert.Equal(t, 0, compareSegments([]string{"a", "b"}, []string{"a", "b"}))
	assert.Equal(t, -1, compareSegments([]string{"a", "b"}, []string{"a", "c"}))
	assert.Equal(t, -1, compareSegments([]string{"lib", "foo.rb"}, []string{"lib", "foo", "base.rb"}))
}
