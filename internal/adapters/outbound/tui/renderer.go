package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuronexus/schemacheck/internal/domain"
)

var (
	accent  = lipgloss.Color("#06B6D4") // cyan
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#3B82F6") // blue
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 4).
			Align(lipgloss.Center).
			Width(62)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	fileStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle    = lipgloss.NewStyle().Foreground(fg)
	separatorLine = titleStyle.Render(strings.Repeat("─", 60))
)

// RenderBanner returns the tool header.
func RenderBanner() string {
	title := headerStyle.Render("NeuroNexus JSON Schema Validator")
	subtitle := dimStyle.Render("JSON Schema Draft " + domain.DraftMarker)
	return boxStyle.Render(title+"\n"+subtitle) + "\n\n"
}

// RenderNotFound reports a missing scan root.
func RenderNotFound(root string) string {
	return failStyle.Render("❌ Schemas directory not found!") + " " + dimStyle.Render(root) + "\n"
}

// RenderReport formats a report as per-file progress lines followed by a
// summary. It is a pure function of the report.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	b.WriteString(infoStyle.Render(fmt.Sprintf("Found %d schema file(s) to validate", report.Total)))
	b.WriteString("\n\n")

	for _, f := range report.Files {
		fmt.Fprintf(&b, "Validating %s... ", f.Path)
		if f.Valid {
			b.WriteString(passStyle.Render("✓ PASS"))
		} else {
			b.WriteString(failStyle.Render("✗ FAIL"))
		}
		b.WriteString("\n")
	}

	renderSummary(&b, report)
	return b.String()
}

func renderSummary(b *strings.Builder, report *domain.Report) {
	b.WriteString("\n" + separatorLine + "\n")
	b.WriteString(titleStyle.Render("VALIDATION SUMMARY") + "\n")
	b.WriteString(separatorLine + "\n")

	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(padRight("Total schemas:", 16)), infoStyle.Render(fmt.Sprintf("%d", report.Total)))
	fmt.Fprintf(b, "%s %s\n", passStyle.Render(padRight("✓ Valid:", 16)), passStyle.Render(fmt.Sprintf("%d", report.PassCount)))
	if report.Total > 0 {
		fmt.Fprintf(b, "%s %s\n", labelStyle.Render(padRight("Pass rate:", 16)), passBar(report, 30))
	}

	if report.Passed() {
		b.WriteString("\n" + passStyle.Render("✅ All schemas are valid!") + "\n\n")
		return
	}

	fmt.Fprintf(b, "%s %s\n", failStyle.Render(padRight("✗ Invalid:", 16)), failStyle.Render(fmt.Sprintf("%d", report.FailCount)))

	b.WriteString("\n" + failStyle.Bold(true).Render("ERRORS:") + "\n")
	for _, f := range report.Failures {
		b.WriteString("\n" + fileStyle.Render(f.Path+":") + "\n")
		for _, v := range f.Violations {
			b.WriteString("  " + failStyle.Render("- "+v) + "\n")
		}
	}

	b.WriteString("\n" + failStyle.Render("❌ Validation failed!") + "\n\n")
}

// passBar draws the share of passing files as a fixed-width bar.
func passBar(report *domain.Report, width int) string {
	filled := max(0, min(report.PassCount*width/report.Total, width))
	empty := width - filled

	color := success
	if !report.Passed() {
		color = warning
	}
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	pct := dimStyle.Render(fmt.Sprintf(" %d%%", report.PassCount*100/report.Total))
	return filledStr + emptyStr + pct
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// RenderHistory formats recorded runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		status := passStyle.Render("pass")
		if e.FailCount > 0 {
			status = failStyle.Render("fail")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			status,
			fmt.Sprintf("%d/%d valid", e.PassCount, e.Total),
		)

		if i > 0 {
			diff := e.FailCount - entries[i-1].FailCount
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d failing", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d failing", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
