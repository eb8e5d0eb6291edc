package domain

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Match(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		path string
		want bool
	}{
		{"exact equal", Exact("Manifest.static"), "Manifest.static", true},
		{"exact differs", Exact("Manifest.static"), "lib/Manifest.static", false},
		{"glob star stays in segment", MustGlob("lib/*.rb"), "lib/foo/bar.rb", false},
		{"glob star in segment", MustGlob("lib/*.rb"), "lib/foo.rb", true},
		{"glob doublestar crosses dirs", MustGlob("lib/**/*.jar"), "lib/a/b/c.jar", true},
		{"glob doublestar zero dirs", MustGlob("lib/**/*.jar"), "lib/c.jar", true},
		{"glob question mark", MustGlob("a?c"), "abc", true},
		{"glob question mark no slash", MustGlob("a?c"), "a/c", false},
		{"regex unanchored", MustRegex(`\.rb$`), "lib/foo.rb", true},
		{"regex own anchors", MustRegex(`^lib/`), "x/lib/foo.rb", false},
		{"regex dotfile", MustRegex(`(^|/)\.gitignore$`), "sub/.gitignore", true},
		{"predicate", Predicate("short", func(p string) bool { return len(p) < 4 }), "abc", true},
		{"predicate false", Predicate("short", func(p string) bool { return len(p) < 4 }), "abcd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Match(tt.path))
		})
	}
}

func TestMatches_AnyRule(t *testing.T) {
	rules := []Rule{Exact("a"), MustGlob("*.x"), MustRegex("^z")}

	assert.True(t, Matches(rules, "a"))
	assert.True(t, Matches(rules, "b.x"))
	assert.True(t, Matches(rules, "zed"))
	assert.False(t, Matches(rules, "b"))
	assert.False(t, Matches(nil, "a"))
}

func TestMatches_ShortCircuits(t *testing.T) {
	called := false
	rules := []Rule{Exact("a"), Predicate("spy", func(string) bool {
		called = true
		return true
	})}

	assert.True(t, Matches(rules, "a"))
	assert.False(t, called)
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		spec string
		kind RuleKind
	}{
		{"Manifest.static", RuleExact},
		{"lib/**/*.jar", RuleGlob},
		{"src/{a,b}.go", RuleGlob},
		{"file?.txt", RuleGlob},
		{`re:(^|/)src(/|$)`, RuleRegex},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			r, err := ParseRule(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, r.Kind())
			assert.Equal(t, tt.spec, r.String())
		})
	}
}

func TestParseRule_Invalid(t *testing.T) {
	_, err := ParseRule("re:(")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = ParseRule("lib/[")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = ParseRule("gitignore:/does/not/exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestParseRule_GitIgnore(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ignore")
	require.NoError(t, os.WriteFile(file, []byte("*.log\n"), 0o600))

	r, err := ParseRule("gitignore:" + file)
	require.NoError(t, err)

	assert.Equal(t, RulePredicate, r.Kind())
	assert.True(t, r.Match("debug.log"))
	assert.False(t, r.Match("main.go"))
}

func TestParseRules_SkipsBlank(t *testing.T) {
	rules, err := ParseRules([]string{"a", "  ", "", "*.b"})
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}

func TestFilterSet_Keep(t *testing.T) {
	f := FilterSet{
		Include: []Rule{MustRegex(`\.rb$`)},
		Exclude: []Rule{MustGlob("lib/**/*_spec.rb")},
	}

	assert.True(t, f.Keep("lib/foo.rb"))
	assert.False(t, f.Keep("lib/foo/bar_spec.rb"))
	assert.False(t, f.Keep("README.md"))

	empty := FilterSet{}
	assert.True(t, empty.Keep("anything"))
}

func TestDefaultExcludes(t *testing.T) {
	excluded := []string{".gitignore", "sub/.gitignore", ".stamp.yaml", "lib/x/y.jar", "Manifest.static"}
	kept := []string{"lib/foo.rb", "Manifest.txt", "gitignore.txt", "jars/a.jar"}

	for _, p := range excluded {
		assert.True(t, Matches(DefaultExcludes(), p), p)
	}

	for _, p := range kept {
		assert.False(t, Matches(DefaultExcludes(), p), p)
	}

	assert.True(t, Matches(ManifestExcludes(), "src/main/java/Foo.java"))
	assert.True(t, Matches(ManifestExcludes(), "ext/src"))
	assert.False(t, Matches(ManifestExcludes(), "lib/srcfile.rb"))
}

func TestRule_StringRoundTrip(t *testing.T) {
	r := MustRegex(`^a.*b$`)
	assert.True(t, strings.HasPrefix(r.String(), "re:"))
	assert.Equal(t, regexp.MustCompile(`^a.*b$`).String(), strings.TrimPrefix(r.String(), "re:"))
}
