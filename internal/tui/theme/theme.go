package theme

import "github.com/charmbracelet/lipgloss"

var (
	BaseBg       = lipgloss.Color("#11111b")
	PanelBg      = lipgloss.Color("#1e1e2e")
	SurfaceBg    = lipgloss.Color("#313244")
	Accent       = lipgloss.Color("#cba6f7")
	Accent2      = lipgloss.Color("#89b4fa")
	Teal         = lipgloss.Color("#94e2d5")
	Peach        = lipgloss.Color("#fab387")
	SuccessColor = lipgloss.Color("#a6e3a1")
	WarnColor    = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	TextColor    = lipgloss.Color("#cdd6f4")
	SubTextColor = lipgloss.Color("#a6adc8")
	DimColor     = lipgloss.Color("#6c7086")
	OverlayColor = lipgloss.Color("#45475a")
	Flamingo     = lipgloss.Color("#f5c2e7")
	Lavender     = lipgloss.Color("#b4befe")
)

const (
	IconStar     = "★"
	IconSelected = "●"
	IconPage     = "◆"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
	SectionStyle = lipgloss.NewStyle().
			Foreground(Accent2).
			Bold(true)
	TextStyle = lipgloss.NewStyle().
			Foreground(TextColor)
	SubTextStyle = lipgloss.NewStyle().
			Foreground(SubTextColor)
	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
	KeyStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(OverlayColor)
)

var (
	PanelBorder         = lipgloss.RoundedBorder()
	CachedNameStyle     = lipgloss.NewStyle().Foreground(TextColor)
	CachedNameSelected  = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	CachedNameFocused   = lipgloss.NewStyle().Foreground(Teal).Bold(true)
	CachedYearStyle     = lipgloss.NewStyle().Foreground(Accent2)
	CachedRatingStyle   = lipgloss.NewStyle().Foreground(WarnColor)
	CachedDimStyle      = lipgloss.NewStyle().Foreground(DimColor)
	CachedBannerTitle   = lipgloss.NewStyle().Foreground(Flamingo).Bold(true)
	CachedBannerPageDot = lipgloss.NewStyle().Foreground(Accent)
)

// Palette returns the theme's accent colors in a fixed order, used to tint
// banner rows.
func Palette() []lipgloss.Color {
	return []lipgloss.Color{Accent, Accent2, Teal, Peach, Flamingo, Lavender}
}

var Logo = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).Render("▲ ") +
	lipgloss.NewStyle().Foreground(Flamingo).Bold(true).Render("nest") +
	lipgloss.NewStyle().Foreground(Accent).Bold(true).Render("vi") +
	lipgloss.NewStyle().Foreground(Accent2).Bold(true).Render("ew")
