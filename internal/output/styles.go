package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	subtleColor  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	addedColor   = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	removedColor = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
)

// styles are bound to a renderer for the destination writer, so output to
// a pipe or buffer carries no escape sequences.
type styles struct {
	heading lipgloss.Style
	subtle  lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(headingColor),
		subtle:  r.NewStyle().Foreground(subtleColor),
		added:   r.NewStyle().Foreground(addedColor),
		removed: r.NewStyle().Foreground(removedColor),
	}
}
