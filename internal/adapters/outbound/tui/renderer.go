package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/csvgate/csvgate/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport builds the console summary of an evaluation run. Console
// output is display-only; the written report files are the stable
// interface.
func RenderReport(r *domain.Report, jsonPath, csvPath string) string {
	var b strings.Builder

	title := headerStyle.Render("csvgate")
	subtitle := dimStyle.Render("Tabular Data Quality")
	overall := statusStyle(r.OverallStatus).Bold(true).Render(string(r.OverallStatus))
	counts := dimStyle.Render(fmt.Sprintf("PASS=%d  WARN=%d  FAIL=%d",
		r.PassCount, r.WarnCount, r.FailCount))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + overall + "\n" + counts))
	b.WriteString("\n\n")

	for _, f := range r.Files {
		renderFileLine(&b, f)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Reports") + "\n")
	b.WriteString("  " + dimStyle.Render(jsonPath) + "\n")
	b.WriteString("  " + dimStyle.Render(csvPath) + "\n\n")

	b.WriteString(fmt.Sprintf("  Overall: %s  (PASS=%d, WARN=%d, FAIL=%d)\n",
		statusStyle(r.OverallStatus).Render(string(r.OverallStatus)),
		r.PassCount, r.WarnCount, r.FailCount))

	return b.String()
}

func renderFileLine(b *strings.Builder, f domain.FileResult) {
	tag := statusStyle(f.Status).Bold(true).Render(fmt.Sprintf("%-4s", f.Status))
	line := fmt.Sprintf("  %s  %s  %s",
		tag,
		f.File,
		dimStyle.Render(fmt.Sprintf("rows=%d cols=%d delim=%s enc=%s",
			f.Rows, f.Cols, printableDelim(f.DetectedDelimiter), f.EncodingUsed)),
	)
	b.WriteString(line)
	b.WriteString("\n")

	for _, e := range f.Errors {
		b.WriteString("        " + failStyle.Render(e) + "\n")
	}
	for _, n := range f.Notes {
		b.WriteString("        " + warnStyle.Render(n) + "\n")
	}
}

// RenderHistory shows past run summaries, most recent last.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			statusStyle(e.Overall).Render(string(e.Overall)),
			dimStyle.Render(fmt.Sprintf("PASS=%d WARN=%d FAIL=%d", e.Pass, e.Warn, e.Fail)),
		))
	}

	b.WriteString("\n")
	return b.String()
}

func statusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusFail:
		return failStyle
	case domain.StatusWarn:
		return warnStyle
	default:
		return passStyle
	}
}

func printableDelim(d string) string {
	if d == "\t" {
		return "\\t"
	}
	return d
}
