// Package display formats sizes, the banner, and the end-of-run rename table.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	oldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	newStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Row is one original → renamed pair for [RenderRenames].
type Row struct {
	From string
	To   string
}

// RenderRenames lays rows out as a two-column table with the original names
// padded to a common width. It returns "" for no rows.
func RenderRenames(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}
	const fromHeader, toHeader = "Original", "Renamed"
	width := lipgloss.Width(fromHeader)
	for _, r := range rows {
		if w := lipgloss.Width(r.From); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(pad(fromHeader, width)))
	b.WriteString("    ")
	b.WriteString(headerStyle.Render(toHeader))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(oldStyle.Render(pad(r.From, width)))
		b.WriteString(" -> ")
		b.WriteString(newStyle.Render(r.To))
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
