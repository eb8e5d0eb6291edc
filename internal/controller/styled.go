package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/stamp/internal/model"
)

var (
	stateStyles = map[m.State]lipgloss.Style{
		m.StateGood:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		m.StateNone:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		m.StateDate:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		m.StateEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		m.StateWrote: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	}
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// StyledUI colours states and diffs for interactive terminals.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayHeaderResult prints the state in its colour.
func (s *StyledUI) DisplayHeaderResult(result m.FileResult) error {
	state := lipgloss.NewStyle().Width(5).Render(result.State.String())
	if style, ok := stateStyles[result.State]; ok {
		state = style.Width(5).Render(result.State.String())
	}

	s.printf("%s %s\n", state, pathStyle.Render(string(result.Source.Path)))

	return nil
}

// DisplayHeaderSummary adds a bar showing the share of current headers.
func (s *StyledUI) DisplayHeaderSummary(results []m.FileResult, failures []m.FileFailure) error {
	if err := s.SimpleUI.DisplayHeaderSummary(results, failures); err != nil {
		return err
	}

	total := len(results) + len(failures)
	if total == 0 {
		return nil
	}

	current := 0
	for _, r := range results {
		if r.State == m.StateGood || r.State == m.StateWrote {
			current++
		}
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	s.printf("%s %d/%d current\n", bar.ViewAs(float64(current)/float64(total)), current, total)

	return nil
}

// DisplayCounts renders the count rows as a table.
func (s *StyledUI) DisplayCounts(rows []m.CountRow, verbose bool) error {
	nameWidth := len("Lang/File")
	tableRows := make([]table.Row, 0, len(rows))

	for _, row := range rows {
		name := row.Name
		if row.Path != "" {
			if !verbose {
				continue
			}

			name = string(row.Path)
		}

		nameWidth = max(nameWidth, lipgloss.Width(name))
		tableRows = append(tableRows, table.Row{fmt.Sprintf("%d", row.Lines), fmt.Sprintf("%d", row.Code), name})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Lines", Width: 8},
			{Title: "Code", Width: 8},
			{Title: "Lang/File", Width: nameWidth},
		}),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(tableRows)+2),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("205"))
	styles.Selected = styles.Cell

	t.SetStyles(styles)

	s.printf("%s\n", t.View())

	return nil
}

// DisplayManifest reports the manifest with a highlighted path.
func (s *StyledUI) DisplayManifest(path m.Path, files []m.Path) error {
	s.printf("Wrote %s (%d files)\n", titleStyle.Render(string(path)), len(files))
	return nil
}

// DisplayDiff prints the unified diff with added and removed lines coloured.
func (s *StyledUI) DisplayDiff(path m.Path, before, after []string) error {
	var b strings.Builder

	for _, line := range strings.Split(unifiedDiff(path, before, after), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(titleStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(hunkStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedStyle.Render(line))
		default:
			b.WriteString(line)
		}

		b.WriteByte('\n')
	}

	s.printf("%s", strings.TrimSuffix(b.String(), "\n"))

	return nil
}
