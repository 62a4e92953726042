package components

import (
	"fmt"

	"github.com/allbin/soundcard/internal/tui/colors"
	"github.com/allbin/soundcard/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// ConnectionInfo is the line settings shown on the right of the status bar
type ConnectionInfo struct {
	BaudRate   int
	Charset    string
	Terminator string // escaped for display, e.g. `\r\n`
	Driver     string
}

type StatusBar struct {
	portPath       string
	status         string
	err            error
	width          int
	connectionInfo *ConnectionInfo
}

func NewStatusBar(portPath string) *StatusBar {
	return &StatusBar{
		portPath: portPath,
		status:   "Disconnected",
	}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetPort(portPath string) {
	sb.portPath = portPath
}

func (sb *StatusBar) SetConnectionInfo(info *ConnectionInfo) {
	sb.connectionInfo = info
}

func (sb *StatusBar) SetBaud(baud int) {
	if sb.connectionInfo != nil {
		sb.connectionInfo.BaudRate = baud
	}
}

func (sb *StatusBar) Status() string {
	return sb.status
}

func (sb *StatusBar) SetConnecting() {
	sb.status = "Connecting..."
	sb.err = nil
}

func (sb *StatusBar) SetConnected() {
	sb.status = "Connected"
	sb.err = nil
}

func (sb *StatusBar) SetDisconnected(err error) {
	if err != nil {
		sb.status = fmt.Sprintf("Connection failed: %v", err)
		sb.err = err
	} else {
		sb.status = "Disconnected"
		sb.err = nil
	}
}

func (sb *StatusBar) statusType(connected bool) styles.StatusType {
	switch {
	case sb.err != nil:
		return styles.StatusError
	case connected:
		return styles.StatusConnected
	case sb.status == "Connecting...":
		return styles.StatusConnecting
	default:
		return styles.StatusDisconnected
	}
}

// ComprehensiveStatusBar renders mode, port, connection state, line settings and clock
func (sb *StatusBar) ComprehensiveStatusBar(inputMode string, connected bool, timestamp string) string {
	terminalWidth := sb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	// Section 1: Mode indicator (like NORMAL in nvim)
	modeBackground := colors.Blue
	if inputMode == "INSERT" {
		modeBackground = colors.Green
	}
	mode := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(modeBackground).
		Bold(true).
		Padding(0, 1).
		Render(inputMode)

	// Section 2: Port path
	portPath := sb.portPath
	if portPath == "" {
		portPath = "no port"
	}
	port := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1).
		Render(portPath)

	// Section 3: Single character connection indicator
	st := sb.statusType(connected)
	indicator := "○"
	switch st {
	case styles.StatusConnected:
		indicator = "●"
	case styles.StatusError:
		indicator = "✗"
	}
	connectionIndicator := styles.GetStatusStyle(st).Render(indicator)

	statusText := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1).
		MaxWidth(terminalWidth / 3).
		Render(sb.status)

	// Section 4: Line settings
	connInfo := "⚡ serial"
	if ci := sb.connectionInfo; ci != nil {
		connInfo = fmt.Sprintf("⚡ %d baud %s %s %s", ci.BaudRate, ci.Charset, ci.Terminator, ci.Driver)
	}
	connectionDetails := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1).
		Render(connInfo)

	// Section 5: Clock
	clock := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1).
		Render(timestamp)

	divider := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1).
		Render("│")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, mode, port, connectionIndicator, statusText, divider)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, connectionDetails, divider, clock)

	spacerWidth := terminalWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	statusBarStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth)

	content := lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide)
	return statusBarStyle.Render(content)
}
