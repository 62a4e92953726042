package styles

import (
	"github.com/allbin/soundcard/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Status styles
	StatusConnectedStyle = lipgloss.NewStyle().
				Foreground(colors.Green).
				Bold(true)

	StatusDisconnectedStyle = lipgloss.NewStyle().
				Foreground(colors.Red).
				Bold(true)

	StatusConnectingStyle = lipgloss.NewStyle().
				Foreground(colors.Yellow).
				Bold(true)

	// Content area styles
	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colors.Surface1)

	// Input styles
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface2).
			Padding(0, 1)

	// Controls panel
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface2).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(colors.Mauve).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0).
			Width(14)

	SelectedLabelStyle = LabelStyle.
				Foreground(colors.Base).
				Background(colors.Blue).
				Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colors.Text)

	HintStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0)

	// Log line styles
	TimestampStyle = lipgloss.NewStyle().Foreground(colors.Subtext0)
	SentStyle      = lipgloss.NewStyle().Foreground(colors.Sent).Bold(true)
	ReceivedStyle  = lipgloss.NewStyle().Foreground(colors.Received)
	EchoStyle      = lipgloss.NewStyle().Foreground(colors.Echo)
	NoticeStyle    = lipgloss.NewStyle().Foreground(colors.Notice).Italic(true)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Failure)
)

type StatusType int

const (
	StatusConnected StatusType = iota
	StatusDisconnected
	StatusConnecting
	StatusError
)

func GetStatusStyle(status StatusType) lipgloss.Style {
	switch status {
	case StatusConnected:
		return StatusConnectedStyle
	case StatusConnecting:
		return StatusConnectingStyle
	default:
		return StatusDisconnectedStyle
	}
}
