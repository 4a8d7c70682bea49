package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/nestview/internal/tui/theme"
)

// HeaderHeight is the number of lines RenderHeader always produces.
const HeaderHeight = 2

// RenderHeader draws the logo with a right-aligned position indicator and a
// gradient divider underneath.
func RenderHeader(width int, position string) string {
	if width < 1 {
		width = 1
	}
	indicator := theme.SectionStyle.Render(position)
	padding := width - ansi.StringWidth(theme.Logo) - ansi.StringWidth(indicator)
	if padding < 1 {
		padding = 1
	}
	headerLine := ansi.Truncate(theme.Logo+strings.Repeat(" ", padding)+indicator, width, "")

	colors := []lipgloss.Color{theme.Flamingo, theme.Accent, theme.Lavender, theme.Accent2, theme.Teal}
	segmentLen := width / len(colors)
	dividerParts := make([]string, 0, len(colors))
	for i, c := range colors {
		length := segmentLen
		if i == len(colors)-1 {
			length = width - segmentLen*(len(colors)-1)
		}
		dividerParts = append(dividerParts, lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("─", length)))
	}

	return headerLine + "\n" + strings.Join(dividerParts, "")
}

// RenderStatus draws a single status line, clipped to width.
func RenderStatus(width int, text string) string {
	if text == "" {
		return theme.DimStyle.Render(ansi.Truncate("nothing selected", width, "…"))
	}
	return ansi.Truncate(text, width, "…")
}

func RenderFooter(help string) string {
	return lipgloss.NewStyle().
		Foreground(theme.SubTextColor).
		Render(help)
}

func RenderEmpty(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.DimStyle.Render("No sections configured"))
}

func RenderScreen(header, body, status, footer string) string {
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
}
