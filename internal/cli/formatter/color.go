package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Weekly hour thresholds for colouring a course total. A three-credit
// course is conventionally planned at roughly nine hours a week.
const (
	HeavyHoursPerWeek    = 12.0
	ModerateHoursPerWeek = 9.0
)

// LoadStyle picks a colour for a weekly total.
func LoadStyle(hours float64) lipgloss.Style {
	switch {
	case hours >= HeavyHoursPerWeek:
		return StyleRed
	case hours >= ModerateHoursPerWeek:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// LoadIndicator returns a coloured label such as "● HEAVY".
func LoadIndicator(hours float64) string {
	switch {
	case hours >= HeavyHoursPerWeek:
		return StyleRed.Render("● HEAVY")
	case hours >= ModerateHoursPerWeek:
		return StyleYellow.Render("● MODERATE")
	default:
		return StyleGreen.Render("● LIGHT")
	}
}

// Header renders an upper-cased section header over a dim rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
