package styles

import "github.com/charmbracelet/lipgloss"

// Theme is a resolved style set. Two palettes exist; the persisted
// isDarkMode flag picks one at startup and the toggle swaps them live.
type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Selected  lipgloss.Style
	Genre     lipgloss.Style
	Border    lipgloss.Style
	PlayerBar lipgloss.Style
	Help      lipgloss.Style
}

// Dark palette
var (
	waveTeal   = lipgloss.Color("#2DD4BF")
	slateDark  = lipgloss.Color("#1F2937")
	dimGray    = lipgloss.Color("#6B7280")
	lightGray  = lipgloss.Color("#9CA3AF")
	nearWhite  = lipgloss.Color("#F9FAFB")
	red        = lipgloss.Color("#EF4444")
	deepTeal   = lipgloss.Color("#0F766E")
	inkBlack   = lipgloss.Color("#111827")
	paperWhite = lipgloss.Color("#FFFFFF")
)

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(nearWhite).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lightGray),
		Dim:      lipgloss.NewStyle().Foreground(dimGray),
		Accent:   lipgloss.NewStyle().Foreground(waveTeal),
		Error:    lipgloss.NewStyle().Foreground(red),
		Selected: lipgloss.NewStyle().Foreground(inkBlack).Background(waveTeal).Padding(0, 1),
		Genre:    lipgloss.NewStyle().Foreground(waveTeal).Italic(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimGray),
		PlayerBar: lipgloss.NewStyle().Foreground(nearWhite).Background(slateDark).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(dimGray),
	}
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(inkBlack).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(slateDark),
		Dim:      lipgloss.NewStyle().Foreground(dimGray),
		Accent:   lipgloss.NewStyle().Foreground(deepTeal),
		Error:    lipgloss.NewStyle().Foreground(red),
		Selected: lipgloss.NewStyle().Foreground(paperWhite).Background(deepTeal).Padding(0, 1),
		Genre:    lipgloss.NewStyle().Foreground(deepTeal).Italic(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lightGray),
		PlayerBar: lipgloss.NewStyle().Foreground(inkBlack).Background(paperWhite).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(dimGray),
	}
}

// Playback indicator characters
const (
	PlayingChar = "▶"
	PausedChar  = "⏸"
	HeartChar   = "♥"
)
