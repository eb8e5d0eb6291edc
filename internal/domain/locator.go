package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/stamp/internal/model"
)

// markerLocator finds the copyright marker line of one format.
type markerLocator interface {
	Locate(lines []string, start int) (int, bool)
}

// commentLocator scans leading comment lines for the marker.
type commentLocator struct {
	comment *regexp.Regexp
	marker  *regexp.Regexp
}

func (l commentLocator) Locate(lines []string, start int) (int, bool) {
	for i := max(start, 0); i < len(lines); i++ {
		line := lines[i]

		switch {
		case l.marker.MatchString(line):
			return i, true
		case strings.TrimSpace(line) == "":
			continue
		case l.comment.MatchString(line):
			continue
		default:
			return 0, false
		}
	}

	return 0, false
}

// paragraphLocator treats the leading paragraph of a plain-text file as its
// header region.
type paragraphLocator struct {
	marker *regexp.Regexp
}

func (l paragraphLocator) Locate(lines []string, start int) (int, bool) {
	seen := false

	for i := max(start, 0); i < len(lines); i++ {
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			if seen {
				return 0, false
			}

			continue
		}

		seen = true

		if l.marker.MatchString(line) {
			return i, true
		}
	}

	return 0, false
}

var locators = map[m.Format]markerLocator{
	m.FormatRuby: commentLocator{
		comment: regexp.MustCompile(`^\s*#`),
		marker:  regexp.MustCompile(`^\s*#.*\bCopyright\b`),
	},
	m.FormatJava: commentLocator{
		comment: regexp.MustCompile(`^\s*(/\*|\*|//)`),
		marker:  regexp.MustCompile(`^\s*(/\*+|\*|//)\s*Copyright\b`),
	},
	m.FormatMarkup: commentLocator{
		comment: regexp.MustCompile(`^\s*(<!--|\*|-->)`),
		marker:  regexp.MustCompile(`^\s*(<!--)?\s*\*?\s*Copyright\b`),
	},
	m.FormatText: paragraphLocator{
		marker: regexp.MustCompile(`Copyright \([cC]\)`),
	},
}

// LocateMarker returns the index of the copyright line at or after start.
func LocateMarker(format m.Format, lines []string, start int) (int, bool) {
	loc, ok := locators[format]
	if !ok {
		return 0, false
	}

	return loc.Locate(lines, start)
}
