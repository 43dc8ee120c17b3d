package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SayaAndy/saya-today-article-schema/internal/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Summary renders the run summary box.
func Summary(w io.Writer, s *pipeline.Summary) {
	title := "Article schema run"
	if s.DryRun {
		title += " (dry run)"
	}

	failed := dimStyle.Render(fmt.Sprint(s.Failed))
	if s.Failed > 0 {
		failed = errorStyle.Render(fmt.Sprint(s.Failed))
	}

	lines := []string{
		titleStyle.Render(title),
		fmt.Sprintf("%s %d", dimStyle.Render("Scanned:  "), s.Scanned),
		fmt.Sprintf("%s %s", dimStyle.Render("Processed:"), successStyle.Render(fmt.Sprint(s.Processed))),
		fmt.Sprintf("%s %d", dimStyle.Render("Unchanged:"), s.Unchanged),
		fmt.Sprintf("%s %s", dimStyle.Render("Skipped:  "), warnStyle.Render(fmt.Sprint(s.Skipped))),
		fmt.Sprintf("%s %s", dimStyle.Render("Failed:   "), failed),
		fmt.Sprintf("%s %d FAQ, %d HowTo", dimStyle.Render("Rich:     "), s.FAQPages, s.HowToPages),
	}

	if len(s.Years) > 0 {
		years := make([]string, 0, len(s.Years))
		for _, group := range s.Years {
			years = append(years, fmt.Sprintf("%s (%d)", group.Year, len(group.Posts)))
		}
		lines = append(lines, fmt.Sprintf("%s %s", dimStyle.Render("Archive:  "), strings.Join(years, ", ")))
	}
	if !s.DryRun && s.ArchiveName != "" {
		lines = append(lines, dimStyle.Render("Wrote "+s.ArchiveName))
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}
