package monitor

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	AccentColor  = lipgloss.Color("#43BF6D") // Green
	TextColor    = lipgloss.Color("#FFFFFF") // White
	SubtleColor  = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	// Title style - device name and node path
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Subtitle style - secondary detail next to live values
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Axis label style
	AxisLabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Value style - the raw sample
	ValueStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)
)
