package domain

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// RuleKind tags the variant held by a Rule.
type RuleKind int

const (
	// RuleExact matches a path equal to the rule text.
	RuleExact RuleKind = iota
	// RuleGlob matches with path-aware globbing where ** crosses directories.
	RuleGlob
	// RuleRegex matches when the expression is found anywhere in the path.
	RuleRegex
	// RulePredicate delegates to a function.
	RulePredicate
)

const (
	regexPrefix     = "re:"
	gitignorePrefix = "gitignore:"
	globMeta        = "*?[{"
)

// Rule is one immutable filename matching rule.
type Rule struct {
	kind RuleKind
	text string
	re   *regexp.Regexp
	pred func(string) bool
}

// Exact returns a rule matching exactly path.
func Exact(path string) Rule {
	return Rule{kind: RuleExact, text: path}
}

// Glob returns a rule for a doublestar pattern.
func Glob(pattern string) (Rule, error) {
	if !doublestar.ValidatePattern(pattern) {
		return Rule{}, configError("invalid glob %q", pattern)
	}

	return Rule{kind: RuleGlob, text: pattern}, nil
}

// MustGlob is like Glob but panics on an invalid pattern.
func MustGlob(pattern string) Rule {
	r, err := Glob(pattern)
	if err != nil {
		panic(err)
	}

	return r
}

// Regex returns a rule for an unanchored regular expression search.
func Regex(expr string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, configError("invalid regex %q: %v", expr, err)
	}

	return Rule{kind: RuleRegex, text: expr, re: re}, nil
}

// MustRegex is like Regex but panics on an invalid expression.
func MustRegex(expr string) Rule {
	r, err := Regex(expr)
	if err != nil {
		panic(err)
	}

	return r
}

// Predicate wraps fn as a rule. name is only used for display.
func Predicate(name string, fn func(string) bool) Rule {
	return Rule{kind: RulePredicate, text: name, pred: fn}
}

// GitIgnore compiles a gitignore-style file into a predicate rule.
func GitIgnore(file string) (Rule, error) {
	gi, err := ignore.CompileIgnoreFile(file)
	if err != nil {
		return Rule{}, configError("cannot load ignore file %s: %v", file, err)
	}

	return Predicate(gitignorePrefix+file, gi.MatchesPath), nil
}

// Kind reports the variant of r.
func (r Rule) Kind() RuleKind {
	return r.kind
}

// String returns the rule in the form ParseRule accepts.
func (r Rule) String() string {
	if r.kind == RuleRegex {
		return regexPrefix + r.text
	}

	return r.text
}

// Match reports whether path satisfies r.
func (r Rule) Match(path string) bool {
	switch r.kind {
	case RuleExact:
		return path == r.text
	case RuleGlob:
		ok, err := doublestar.Match(r.text, path)
		return err == nil && ok
	case RuleRegex:
		return r.re.MatchString(path)
	case RulePredicate:
		return r.pred != nil && r.pred(path)
	default:
		return false
	}
}

// Matches reports whether any of rules matches path.
func Matches(rules []Rule, path string) bool {
	for _, r := range rules {
		if r.Match(path) {
			return true
		}
	}

	return false
}

// ParseRule builds a rule from its configuration form:
// "re:EXPR", "gitignore:FILE", a glob containing any of *?[{ or an exact path.
func ParseRule(s string) (Rule, error) {
	switch {
	case strings.HasPrefix(s, regexPrefix):
		return Regex(strings.TrimPrefix(s, regexPrefix))
	case strings.HasPrefix(s, gitignorePrefix):
		return GitIgnore(strings.TrimPrefix(s, gitignorePrefix))
	case strings.ContainsAny(s, globMeta):
		return Glob(s)
	default:
		return Exact(s), nil
	}
}

// ParseRules parses every string with ParseRule, stopping at the first error.
func ParseRules(specs []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))

	for _, s := range specs {
		if strings.TrimSpace(s) == "" {
			continue
		}

		r, err := ParseRule(s)
		if err != nil {
			return nil, err
		}

		rules = append(rules, r)
	}

	return rules, nil
}

// FilterSet keeps a path iff it matches some include rule (or there are none)
// and no exclude rule.
type FilterSet struct {
	Include []Rule
	Exclude []Rule
}

// Keep reports whether path passes the filter.
func (f FilterSet) Keep(path string) bool {
	if len(f.Include) > 0 && !Matches(f.Include, path) {
		return false
	}

	return !Matches(f.Exclude, path)
}

// DefaultExcludes are applied to every listing except line counts.
func DefaultExcludes() []Rule {
	return []Rule{
		MustRegex(`(^|/)\.gitignore$`),
		MustRegex(`(^|/)\.stamp\.yaml$`),
		MustGlob("lib/**/*.jar"),
		Exact("Manifest.static"),
	}
}

// ManifestExcludes are added to DefaultExcludes when building a manifest.
func ManifestExcludes() []Rule {
	return []Rule{MustRegex(`(^|/)src(/|$)`)}
}
