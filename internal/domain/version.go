package domain

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/mouse-blink/stamp/internal/adapter"
	m "github.com/mouse-blink/stamp/internal/model"
)

// releaseDateLayout is year-month-day without zero padding.
const releaseDateLayout = "2006-1-2"

// VersionPattern selects files by name and the line carrying the version.
type VersionPattern struct {
	Kind m.VersionKind
	File *regexp.Regexp
	Line *regexp.Regexp
}

// VersionPatterns is consulted in order; the first file match wins.
var VersionPatterns = []VersionPattern{
	{
		Kind: m.VersionChangelog,
		File: regexp.MustCompile(`History\.|CHANGELOG`),
		Line: regexp.MustCompile(`^=== ([0-9a-z.]+) \((TBD|[0-9\-]+)\)`),
	},
	{
		Kind: m.VersionPom,
		File: regexp.MustCompile(`pom\.xml$`),
		Line: regexp.MustCompile(`<version>([0-9a-z.]+)</version>`),
	},
	{
		Kind: m.VersionRuby,
		File: regexp.MustCompile(`(version|base)\.rb$`),
		Line: regexp.MustCompile(`VERSION\s*=\s*['"]([0-9a-z.]+)['"]`),
	},
	{
		Kind: m.VersionGo,
		File: regexp.MustCompile(`version\.go$`),
		Line: regexp.MustCompile(`Version\s*=\s*"([0-9a-z.]+)"`),
	},
	{
		Kind: m.VersionInit,
		File: regexp.MustCompile(`init/`),
		Line: regexp.MustCompile(`^gem.+,\s*['"]=\s*([0-9a-z.]+)['"]`),
	},
	{
		Kind: m.VersionGemspec,
		File: regexp.MustCompile(`\.gemspec$`),
		Line: regexp.MustCompile(`RJack::TarPit\.specify`),
	},
}

var (
	versionToken   = regexp.MustCompile(`^[0-9a-z.]+$`)
	minorVersion   = regexp.MustCompile(`^(\d+\.\d+)`)
	pomParentOpen  = regexp.MustCompile(`<parent>`)
	pomParentClose = regexp.MustCompile(`</parent>`)
	pomArtifact    = regexp.MustCompile(`<artifactId>`)
	pomVersion     = regexp.MustCompile(`<version>([\[\]\(\)0-9a-z.,]+)</version>`)
	pomDepsClose   = regexp.MustCompile(`</dependencies>`)
	pomParentValue = regexp.MustCompile(`^(\s*<version>)([0-9a-z.]+)`)
	pomRangeValue  = regexp.MustCompile(`^(\s*<version>)([\[\]\(\)0-9a-z.,]+)`)
	gemDependValue = regexp.MustCompile(`(\.depend.*,\s*['"])([^'"]+)(['"])`)
)

// VersionOutcome describes one patched file.
type VersionOutcome struct {
	Result m.VersionResult
	Before []string
	After  []string
}

// VersionPatcher rewrites version strings in place.
type VersionPatcher struct {
	fs           adapter.SourceFSAdapter
	version      string
	dependPrefix string
	now          func() time.Time

	localArtifact *regexp.Regexp
	localDepend   *regexp.Regexp
}

// NewVersionPatcher validates version and returns a patcher. With a
// non-empty dependPrefix, local pom and gemspec dependencies are adjusted too.
func NewVersionPatcher(fs adapter.SourceFSAdapter, version, dependPrefix string, now func() time.Time) (*VersionPatcher, error) {
	if !versionToken.MatchString(version) {
		return nil, configError("invalid version %q", version)
	}

	if now == nil {
		now = time.Now
	}

	p := &VersionPatcher{fs: fs, version: version, dependPrefix: dependPrefix, now: now}

	if dependPrefix != "" {
		quoted := regexp.QuoteMeta(dependPrefix)
		p.localArtifact = regexp.MustCompile(`<artifactId>\s*` + quoted)
		p.localDepend = regexp.MustCompile(`\.depend.+['"]` + quoted)
	}

	return p, nil
}

// PatternFor returns the first pattern whose file rule matches path.
func PatternFor(path m.Path) (VersionPattern, bool) {
	return lo.Find(VersionPatterns, func(p VersionPattern) bool {
		return p.File.MatchString(string(path))
	})
}

// Process patches path. ok is false when the file name or contents have
// nothing to patch; such files are left untouched.
func (p *VersionPatcher) Process(path m.Path) (out VersionOutcome, ok bool, err error) {
	pattern, found := PatternFor(path)
	if !found {
		return out, false, nil
	}

	lines, err := p.fs.ReadLines(path)
	if err != nil {
		return out, false, fileError(path, "read", err)
	}

	idx := slices.IndexFunc(lines, pattern.Line.MatchString)
	if idx < 0 {
		return out, false, nil
	}

	after := append([]string{}, lines...)
	result := m.VersionResult{Path: path, Kind: pattern.Kind, Line: idx, Old: lines[idx]}

	switch pattern.Kind {
	case m.VersionChangelog:
		match := pattern.Line.FindStringSubmatch(lines[idx])
		if match[2] == "TBD" {
			after[idx] = fmt.Sprintf("=== %s (%s)", match[1], p.now().Format(releaseDateLayout))
		} else {
			stanza := fmt.Sprintf("=== %s (TBD)", p.version)
			after = append(after[:idx], append([]string{stanza, ""}, lines[idx:]...)...)
			result.Old = ""
			result.Inserted = true
		}
	case m.VersionGemspec:
		p.adjustGemspecLocal(after, idx+1)
	default:
		loc := pattern.Line.FindStringSubmatchIndex(lines[idx])
		after[idx] = lines[idx][:loc[2]] + p.version + lines[idx][loc[3]:]

		if pattern.Kind == m.VersionPom {
			p.adjustPomLocal(after, idx+1)
		}
	}

	result.New = after[idx]
	out = VersionOutcome{Result: result, Before: lines, After: after}

	if err := p.fs.WriteLines(path, after); err != nil {
		return out, false, fileError(path, "write", err)
	}

	return out, true, nil
}

func (p *VersionPatcher) adjustPomLocal(lines []string, start int) {
	if p.localArtifact == nil {
		return
	}

	parent, local := false, false

	for i := start; i < len(lines); i++ {
		line := lines[i]

		switch {
		case pomParentOpen.MatchString(line):
			parent, local = true, true
		case pomParentClose.MatchString(line):
			parent, local = false, false
		case pomArtifact.MatchString(line):
			local = p.localArtifact.MatchString(line)
		case pomVersion.MatchString(line):
			if !local {
				continue
			}

			if parent {
				lines[i] = pomParentValue.ReplaceAllString(line, "${1}"+p.version)
			} else {
				lines[i] = pomRangeValue.ReplaceAllString(line, "${1}"+p.mavenRange())
			}
		case pomDepsClose.MatchString(line):
			return
		}
	}
}

func (p *VersionPatcher) adjustGemspecLocal(lines []string, start int) {
	if p.localDepend == nil {
		return
	}

	for i := start; i < len(lines); i++ {
		if p.localDepend.MatchString(lines[i]) {
			lines[i] = gemDependValue.ReplaceAllString(lines[i], "${1}~> "+p.version+"${3}")
		}
	}
}

// mavenRange is [V,MAJOR.MINOR.999).
func (p *VersionPatcher) mavenRange() string {
	minor := ""

	if v, err := semver.NewVersion(p.version); err == nil {
		minor = fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	} else if match := minorVersion.FindStringSubmatch(p.version); match != nil {
		minor = match[1]
	}

	if minor == "" {
		return "[" + p.version + ",)"
	}

	return fmt.Sprintf("[%s,%s.999)", p.version, minor)
}

// BumpVersion patches every file, skipping those without a version line.
func (p *VersionPatcher) BumpVersion(ctx context.Context, files []m.Path, each func(VersionOutcome)) ([]m.VersionResult, []m.FileFailure, error) {
	var (
		results  []m.VersionResult
		failures []m.FileFailure
	)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, failures, err
		}

		out, ok, err := p.Process(path)
		if err != nil {
			log.Warn("skipping file", "path", path, "err", err)
			failures = append(failures, m.FileFailure{Path: path, Err: err})

			continue
		}

		if !ok {
			log.Debug("no version line", "path", path)
			continue
		}

		results = append(results, out.Result)

		if each != nil {
			each(out)
		}
	}

	return results, failures, nil
}
