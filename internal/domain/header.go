package domain

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/mouse-blink/stamp/internal/adapter"
	m "github.com/mouse-blink/stamp/internal/model"
)

// HeaderSpec holds the expected header contents.
type HeaderSpec struct {
	Holder    string
	Inception int
	// License is a built-in license id or raw license text.
	License string
	// LenientYears accepts any start year as long as the range ends with
	// the current year.
	LenientYears bool
	// Year is the current year.
	Year int
}

// HeaderOutcome is the classification of one file. Before and After are set
// when the copyright line or the header was changed.
type HeaderOutcome struct {
	Source m.Source
	State  m.State
	Before []string
	After  []string
}

// HeaderEditor checks and repairs copyright headers.
type HeaderEditor struct {
	fs        adapter.SourceFSAdapter
	templates adapter.TemplateProvider
	spec      HeaderSpec
	cache     map[m.Format][]string
}

var (
	markerParts = regexp.MustCompile(`^(.*?\bCopyright\b)(\s*(?:\([cC]\)|©))?\s*([0-9]{4}(?:\s*[-,]\s*[0-9]{4})*)?\s*(.*?)\s*(\*/|-->)?\s*$`)
	yearSep     = regexp.MustCompile(`\s*[-,]\s*`)
)

// NewHeaderEditor validates spec and returns an editor.
func NewHeaderEditor(fs adapter.SourceFSAdapter, templates adapter.TemplateProvider, spec HeaderSpec) (*HeaderEditor, error) {
	spec.Holder = strings.TrimSpace(spec.Holder)

	if spec.Holder == "" {
		return nil, configError("copyright holder is required")
	}

	if strings.TrimSpace(spec.License) == "" {
		return nil, configError("license is required")
	}

	if spec.Inception == 0 {
		spec.Inception = spec.Year
	}

	if spec.Inception > spec.Year {
		return nil, configError("inception year %d is after %d", spec.Inception, spec.Year)
	}

	return &HeaderEditor{
		fs:        fs,
		templates: templates,
		spec:      spec,
		cache:     make(map[m.Format][]string),
	}, nil
}

// Years returns the expected years field, e.g. "2008-2026" or "2026".
func (e *HeaderEditor) Years() string {
	return yearRange(e.spec.Inception, e.spec.Year)
}

func yearRange(from, to int) string {
	years := lo.Uniq([]int{from, to})

	return strings.Join(lo.Map(years, func(y int, _ int) string {
		return strconv.Itoa(y)
	}), "-")
}

// Header renders the header block for format, once per editor.
func (e *HeaderEditor) Header(format m.Format) ([]string, error) {
	if lines, ok := e.cache[format]; ok {
		return lines, nil
	}

	lines, err := e.templates.Render(format, adapter.HeaderContext{
		Holder:  e.spec.Holder,
		Years:   e.Years(),
		License: e.spec.License,
	})
	if err != nil {
		return nil, kindError(ErrConfiguration, err)
	}

	e.cache[format] = lines

	return lines, nil
}

// Process classifies path and, with doWrite, repairs it on disk.
func (e *HeaderEditor) Process(path m.Path, doWrite bool) (HeaderOutcome, error) {
	lines, err := e.fs.ReadLines(path)
	if err != nil {
		return HeaderOutcome{}, fileError(path, "read", err)
	}

	if isBinary(lines) {
		return HeaderOutcome{}, fileError(path, "read", ErrBinaryFile)
	}

	format, start := ScanPrologue(lines, FormatFor(path))
	out := HeaderOutcome{Source: m.Source{Path: path, Format: format, Prologue: start}}

	if len(lines) == 0 {
		out.State = m.StateEmpty
		return out, nil
	}

	idx, found := LocateMarker(format, lines, start)
	if !found {
		return e.insert(out, lines, doWrite)
	}

	fixed, good := e.checkLine(lines[idx])
	if good {
		out.State = m.StateGood
		return out, nil
	}

	after := append([]string{}, lines...)
	after[idx] = fixed + lineEnding(lines[idx])
	out.Before, out.After = lines, after

	if !doWrite {
		out.State = m.StateDate
		return out, nil
	}

	if err := e.fs.WriteLines(path, after); err != nil {
		return out, fileError(path, "write", err)
	}

	out.State = m.StateWrote

	return out, nil
}

func (e *HeaderEditor) insert(out HeaderOutcome, lines []string, doWrite bool) (HeaderOutcome, error) {
	if !doWrite {
		out.State = m.StateNone
		return out, nil
	}

	header, err := e.Header(out.Source.Format)
	if err != nil {
		return out, err
	}

	start := out.Source.Prologue
	eol := lineEnding(lines[min(start, len(lines)-1)])

	after := make([]string, 0, len(lines)+len(header)+1)
	after = append(after, lines[:start]...)
	after = append(after, lo.Map(header, func(line string, _ int) string { return line + eol })...)

	if out.Source.Format != m.FormatMarkup && start < len(lines) && strings.TrimSpace(lines[start]) != "" {
		after = append(after, eol)
	}

	after = append(after, lines[start:]...)
	out.Before, out.After = lines, after

	if err := e.fs.WriteLines(out.Source.Path, after); err != nil {
		return out, fileError(out.Source.Path, "write", err)
	}

	out.State = m.StateWrote

	return out, nil
}

// checkLine validates a copyright line and returns its canonical form.
func (e *HeaderEditor) checkLine(line string) (string, bool) {
	parts := markerParts.FindStringSubmatch(line)
	if parts == nil {
		return line, true
	}

	prefix, symbol, years, holder, closer := parts[1], parts[2], parts[3], parts[4], parts[5]

	if years == "" || holder == "" {
		log.Debug("rewriting copyright line", "line", line, "reason", ErrMalformedMarker)
	}

	expected := e.Years()

	if e.spec.LenientYears && years != "" {
		fields := yearSep.Split(years, -1)
		if fields[len(fields)-1] == strconv.Itoa(e.spec.Year) {
			expected = strings.Join(fields, "-")
		} else if first, err := strconv.Atoi(fields[0]); err == nil && first <= e.spec.Year {
			expected = yearRange(first, e.spec.Year)
		}
	}

	good := years != "" && yearSep.ReplaceAllString(years, "-") == expected && holder == e.spec.Holder
	if good {
		return line, true
	}

	if symbol == "" {
		symbol = " (c)"
	}

	fixed := prefix + symbol + " " + expected + " " + e.spec.Holder
	if closer != "" {
		fixed += " " + closer
	}

	return fixed, false
}

// lineEnding returns the carriage return kept at the end of a CRLF line.
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r") {
		return "\r"
	}

	return ""
}

// isBinary reports whether the content holds a NUL byte.
func isBinary(lines []string) bool {
	return lo.SomeBy(lines, func(line string) bool {
		return strings.IndexByte(line, 0) >= 0
	})
}

// ProcessHeaders runs Process over files. Per-file failures are logged and
// collected; only configuration errors and cancellation stop the run.
func (e *HeaderEditor) ProcessHeaders(ctx context.Context, files []m.Path, doWrite bool, each func(HeaderOutcome)) ([]m.FileResult, []m.FileFailure, error) {
	var (
		results  []m.FileResult
		failures []m.FileFailure
	)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, failures, err
		}

		out, err := e.Process(path, doWrite)
		if err != nil {
			if errors.Is(err, ErrConfiguration) {
				return results, failures, err
			}

			if errors.Is(err, ErrBinaryFile) {
				log.Debug("skipping binary file", "path", path)
				continue
			}

			log.Warn("skipping file", "path", path, "err", err)
			failures = append(failures, m.FileFailure{Path: path, Err: err})

			continue
		}

		results = append(results, m.FileResult{Source: out.Source, State: out.State})

		if each != nil {
			each(out)
		}
	}

	return results, failures, nil
}
