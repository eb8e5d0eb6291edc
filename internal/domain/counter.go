package domain

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/stamp/internal/adapter"
	m "github.com/mouse-blink/stamp/internal/model"
)

// TotalRow names the summary row of a count.
const TotalRow = "TOTAL"

// CountGroup is a named language selected by rules.
type CountGroup struct {
	Name  string
	Java  bool
	Rules []Rule
}

// DefaultCountGroups returns the JAVA and RUBY groups.
func DefaultCountGroups() []CountGroup {
	return []CountGroup{
		{Name: "JAVA", Java: true, Rules: []Rule{MustGlob("**/*.java")}},
		{Name: "RUBY", Rules: []Rule{
			MustGlob("**/*.rb"),
			MustGlob("**/bin/*"),
			MustGlob("**/init/*"),
			MustGlob("**/Rakefile"),
			MustGlob("**/Gemfile"),
			MustGlob("**/*.gemspec"),
		}},
	}
}

var (
	javaComment = regexp.MustCompile(`^\s*[/*]`)
	rubyComment = regexp.MustCompile(`^\s*#`)
)

// CountLines returns the number of lines and of code lines, which are
// neither blank nor comments.
func CountLines(lines []string, java bool) (total, code int) {
	comment := rubyComment
	if java {
		comment = javaComment
	}

	for _, line := range lines {
		total++

		if strings.TrimSpace(line) == "" || comment.MatchString(line) {
			continue
		}

		code++
	}

	return total, code
}

// Counter counts lines of files concurrently.
type Counter struct {
	fs      adapter.SourceFSAdapter
	groups  []CountGroup
	threads int
}

// NewCounter returns a Counter reading at most threads files at once.
func NewCounter(fs adapter.SourceFSAdapter, groups []CountGroup, threads int) *Counter {
	if threads <= 0 {
		threads = 1
	}

	return &Counter{fs: fs, groups: groups, threads: threads}
}

// Count returns, per group, one row per file followed by the group row,
// and finally the TOTAL row. Unreadable files are reported as failures.
func (c *Counter) Count(ctx context.Context, files []m.Path) ([]m.CountRow, []m.FileFailure, error) {
	type job struct {
		path m.Path
		java bool
	}

	var jobs []job

	selected := make([][]int, len(c.groups))

	for gi, group := range c.groups {
		for _, path := range files {
			if !Matches(group.Rules, string(path)) {
				continue
			}

			selected[gi] = append(selected[gi], len(jobs))
			jobs = append(jobs, job{path: path, java: group.Java})
		}
	}

	counts := make([]m.CountRow, len(jobs))
	errs := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.threads)

	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			lines, err := c.fs.ReadLines(j.path)
			if err != nil {
				errs[i] = fileError(j.path, "read", err)
				return nil
			}

			total, code := CountLines(lines, j.java)
			counts[i] = m.CountRow{Path: j.path, Lines: total, Code: code}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		rows     []m.CountRow
		failures []m.FileFailure
	)

	total := m.CountRow{Name: TotalRow}

	for gi, group := range c.groups {
		row := m.CountRow{Name: group.Name}

		for _, i := range selected[gi] {
			if errs[i] != nil {
				log.Warn("skipping file", "path", jobs[i].path, "err", errs[i])
				failures = append(failures, m.FileFailure{Path: jobs[i].path, Err: errs[i]})

				continue
			}

			file := counts[i]
			file.Name = group.Name
			rows = append(rows, file)

			row.Lines += file.Lines
			row.Code += file.Code
		}

		rows = append(rows, row)
		total.Lines += row.Lines
		total.Code += row.Code
	}

	rows = append(rows, total)

	return rows, lo.UniqBy(failures, func(f m.FileFailure) m.Path { return f.Path }), nil
}
