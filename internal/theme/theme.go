package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header         *lipgloss.Style
	Footer         *lipgloss.Style
	Item           *lipgloss.Style
	SelectedItem   *lipgloss.Style
	ContentText    *lipgloss.Style
	Link           *lipgloss.Style
	ScrollTrack    *lipgloss.Style
	ScrollThumb    *lipgloss.Style
	MenuFocused    *lipgloss.Style
	MenuBlurred    *lipgloss.Style
	ContentFocused *lipgloss.Style
	ContentBlurred *lipgloss.Style
}

// SelectedMarker prefixes the highlighted menu entry.
const SelectedMarker = ">> "

// IntroPalette maps an intro step to its banner color. Even steps use the
// base tone, odd steps the bright one, producing the pulse.
func IntroPalette(step int) lipgloss.Color {
	switch step {
	case 0:
		return ColorLightCyan
	case 1:
		return ColorYellow
	case 2:
		return ColorLightYellow
	case 3:
		return ColorRed
	case 4:
		return ColorLightRed
	case 5:
		return ColorLightGreen
	case 6:
		return ColorGreen
	default:
		return ColorCyan
	}
}

// Sixteen-color ANSI values keep the page legible on any palette.
var (
	ColorCyan        = lipgloss.Color("6")
	ColorLightCyan   = lipgloss.Color("14")
	ColorYellow      = lipgloss.Color("3")
	ColorLightYellow = lipgloss.Color("11")
	ColorRed         = lipgloss.Color("1")
	ColorLightRed    = lipgloss.Color("9")
	ColorGreen       = lipgloss.Color("2")
	ColorLightGreen  = lipgloss.Color("10")
)

// MosaicColors are the three tones of the rotating background grid.
var MosaicColors = [3]lipgloss.Color{
	lipgloss.Color("236"),
	lipgloss.Color("238"),
	lipgloss.Color("240"),
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Align(lipgloss.Center),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	),
	ContentText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Blink(true),
	),
	ScrollTrack: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ScrollThumb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	MenuFocused: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")),
	),
	MenuBlurred: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("245")),
	),
	ContentFocused: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("255")),
	),
	ContentBlurred: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
