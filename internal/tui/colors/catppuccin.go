package colors

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha color palette
var (
	// Base colors
	Base     = lipgloss.Color("#1e1e2e") // Dark background
	Surface0 = lipgloss.Color("#313244") // Surface colors
	Surface1 = lipgloss.Color("#45475a")
	Surface2 = lipgloss.Color("#585b70")
	Overlay0 = lipgloss.Color("#6c7086") // Overlay colors
	Overlay1 = lipgloss.Color("#7f849c")
	Subtext0 = lipgloss.Color("#a6adc8") // Text colors
	Subtext1 = lipgloss.Color("#bac2de")
	Text     = lipgloss.Color("#cdd6f4") // Main text

	// Accent colors
	Lavender = lipgloss.Color("#b4befe") // Light purple
	Blue     = lipgloss.Color("#89b4fa") // Blue
	Sky      = lipgloss.Color("#89dceb") // Sky blue
	Teal     = lipgloss.Color("#94e2d5") // Teal
	Green    = lipgloss.Color("#a6e3a1") // Green
	Yellow   = lipgloss.Color("#f9e2af") // Yellow
	Peach    = lipgloss.Color("#fab387") // Orange
	Maroon   = lipgloss.Color("#eba0ac") // Light red
	Red      = lipgloss.Color("#f38ba8") // Red
	Mauve    = lipgloss.Color("#cba6f7") // Purple
)

// Roles in the console log and controls panel
var (
	Sent         = Peach
	Received     = Sky
	Echo         = Overlay1
	Failure      = Red
	Notice       = Lavender
	GainPositive = Green
	GainNegative = Maroon
	GainEmpty    = Surface1
)
