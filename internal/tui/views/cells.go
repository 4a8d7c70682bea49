package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/nestview/internal/catalog"
	"github.com/nicobailon/nestview/internal/nested"
	"github.com/nicobailon/nestview/internal/tui/theme"
)

// Reuse identifiers registered by the app.
const (
	PosterID = "poster"
	BannerID = "banner"
	HeaderID = "section-title"
)

func borderColor(state nested.CellState) lipgloss.Color {
	switch {
	case state.Selected:
		return theme.SuccessColor
	case state.Focused:
		return theme.Teal
	default:
		return theme.SurfaceBg
	}
}

func nameStyle(state nested.CellState) lipgloss.Style {
	switch {
	case state.Selected:
		return theme.CachedNameSelected
	case state.Focused:
		return theme.CachedNameFocused
	default:
		return theme.CachedNameStyle
	}
}

// PosterCell is a bordered card showing one title.
type PosterCell struct {
	Title catalog.Title
	state nested.CellState
}

func NewPosterCell() nested.Cell { return &PosterCell{} }

func (c *PosterCell) SetState(s nested.CellState) { c.state = s }

func (c *PosterCell) PrepareForReuse() {
	c.Title = catalog.Title{}
	c.state = nested.CellState{}
}

func (c *PosterCell) Render(size nested.Size) string {
	if size.Width < 4 || size.Height < 3 {
		return nameStyle(c.state).Render(ansi.Truncate(c.Title.Name, max(size.Width, 0), "…"))
	}
	innerWidth := size.Width - 2

	name := ansi.Truncate(c.Title.Name, innerWidth-2, "…")
	lines := []string{nameStyle(c.state).Render(name)}
	if c.Title.Year > 0 {
		lines = append(lines, theme.CachedYearStyle.Render(fmt.Sprintf("%d", c.Title.Year)))
	}
	if c.Title.Rating > 0 {
		lines = append(lines, theme.CachedRatingStyle.Render(fmt.Sprintf("%s %.1f", theme.IconStar, c.Title.Rating)))
	}
	if c.state.Selected {
		lines = append(lines, theme.SuccessStyle.Render(theme.IconSelected+" selected"))
	}

	content := lipgloss.NewStyle().
		Width(innerWidth).
		Height(size.Height - 2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Border(theme.PanelBorder).
		BorderForeground(borderColor(c.state)).
		Render(content)
}

// BannerCell fills a whole paging row with one highlighted title.
type BannerCell struct {
	Title catalog.Title
	Page  int
	Pages int
	state nested.CellState
}

func NewBannerCell() nested.Cell { return &BannerCell{} }

func (c *BannerCell) SetState(s nested.CellState) { c.state = s }

func (c *BannerCell) PrepareForReuse() {
	*c = BannerCell{}
}

func (c *BannerCell) Render(size nested.Size) string {
	if size.Width < 4 || size.Height < 3 {
		return theme.CachedBannerTitle.Render(ansi.Truncate(c.Title.Name, max(size.Width, 0), "…"))
	}
	innerWidth := size.Width - 2
	palette := theme.Palette()
	tint := palette[c.Page%len(palette)]

	title := lipgloss.NewStyle().Foreground(tint).Bold(true).
		Render(ansi.Truncate(strings.ToUpper(c.Title.Name), innerWidth-2, "…"))
	meta := theme.CachedDimStyle.Render(fmt.Sprintf("%d  %s %.1f", c.Title.Year, theme.IconStar, c.Title.Rating))

	var dots strings.Builder
	for i := 0; i < c.Pages; i++ {
		if i == c.Page {
			dots.WriteString(theme.CachedBannerPageDot.Render(theme.IconPage))
		} else {
			dots.WriteString(theme.CachedDimStyle.Render("◇"))
		}
	}

	lines := []string{title, meta}
	for len(lines) < size.Height-3 {
		lines = append(lines, "")
	}
	lines = append(lines, dots.String())

	content := lipgloss.NewStyle().
		Width(innerWidth).
		Height(size.Height - 2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(borderColor(c.state)).
		Render(content)
}

// HeaderCell is the title line drawn above a row.
type HeaderCell struct {
	Text  string
	Count int
}

func NewHeaderCell() nested.Cell { return &HeaderCell{} }

func (c *HeaderCell) Render(size nested.Size) string {
	label := "── " + c.Text + " "
	if c.Count > 0 {
		label += fmt.Sprintf("(%d) ", c.Count)
	}
	rest := size.Width - ansi.StringWidth(label)
	if rest > 0 {
		label += strings.Repeat("─", rest)
	}
	return theme.SectionStyle.Render(ansi.Truncate(label, size.Width, ""))
}
