package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("13")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("13")).
	Padding(0, 2)

// PrintBanner writes the program banner. Colors follow the profile set by
// term.Configure.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, bannerStyle.Render("photorename v"+version))
}
