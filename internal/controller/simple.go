package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/stamp/internal/model"
)

// SimpleUI implements UI with plain text written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFiles prints one path per line.
func (s *SimpleUI) DisplayFiles(files []m.Path) error {
	for _, file := range files {
		s.printf("%s\n", file)
	}

	return nil
}

// DisplayHeaderResult prints "STATE path".
func (s *SimpleUI) DisplayHeaderResult(result m.FileResult) error {
	s.printf("%-5s %s\n", result.State, result.Source.Path)
	return nil
}

// DisplayHeaderSummary prints a table of files per state.
func (s *SimpleUI) DisplayHeaderSummary(results []m.FileResult, failures []m.FileFailure) error {
	s.printf("\n%s", headerSummaryTable(results, failures))
	return nil
}

// DisplayVersionResult prints "path:line kind: new line".
func (s *SimpleUI) DisplayVersionResult(result m.VersionResult) error {
	s.printf("%s\n", versionLine(result))
	return nil
}

// DisplayManifest reports the manifest location and size.
func (s *SimpleUI) DisplayManifest(path m.Path, files []m.Path) error {
	s.printf("Wrote %s (%d files)\n", path, len(files))
	return nil
}

// DisplayCounts prints a LINES/CODE table.
func (s *SimpleUI) DisplayCounts(rows []m.CountRow, verbose bool) error {
	s.printf("%s", countTable(rows, verbose))
	return nil
}

// DisplayDiff prints a unified diff of the change.
func (s *SimpleUI) DisplayDiff(path m.Path, before, after []string) error {
	s.printf("%s", unifiedDiff(path, before, after))
	return nil
}

// DisplayFailures prints "FAILED path: error" per file.
func (s *SimpleUI) DisplayFailures(failures []m.FileFailure) error {
	for _, f := range failures {
		s.printf("%-6s %s: %v\n", "FAILED", f.Path, f.Err)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func headerSummaryTable(results []m.FileResult, failures []m.FileFailure) string {
	counts := make(map[m.State]int)
	for _, r := range results {
		counts[r.State]++
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"State", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, state := range m.States() {
		if counts[state] == 0 {
			continue
		}

		table.Append([]string{state.String(), fmt.Sprintf("%d", counts[state])})
	}

	if len(failures) > 0 {
		table.Append([]string{"FAILED", fmt.Sprintf("%d", len(failures))})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(results)+len(failures))})
	table.Render()

	return tableBuffer.String()
}

func versionLine(result m.VersionResult) string {
	action := "set"
	if result.Inserted {
		action = "added"
	}

	return fmt.Sprintf("%s:%d %s %s: %s", result.Path, result.Line+1, result.Kind, action, strings.TrimSpace(result.New))
}

func countTable(rows []m.CountRow, verbose bool) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Lines", "Code", "Lang/File"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		name := row.Name
		if row.Path != "" {
			if !verbose {
				continue
			}

			name = string(row.Path)
		}

		table.Append([]string{fmt.Sprintf("%d", row.Lines), fmt.Sprintf("%d", row.Code), name})
	}

	table.Render()

	return tableBuffer.String()
}

func unifiedDiff(path m.Path, before, after []string) string {
	from := joinLines(before)
	to := joinLines(after)

	edits := myers.ComputeEdits(span.URIFromPath(string(path)), from, to)
	unified := gotextdiff.ToUnified("a/"+string(path), "b/"+string(path), from, edits)

	return fmt.Sprint(unified)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}
