/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/allbin/soundcard/codec"
	"github.com/allbin/soundcard/internal/config"
	"github.com/allbin/soundcard/internal/logging"
	"github.com/allbin/soundcard/internal/tui/components"
	"github.com/allbin/soundcard/internal/tui/keys"
	"github.com/allbin/soundcard/internal/tui/models"
	"github.com/allbin/soundcard/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// connectCmd represents the connect command
var connectCmd = &cobra.Command{
	Use:   "connect [port]",
	Short: "Interactive console with quick controls for the sound card",
	Long: `Open an interactive console for the sound card.

The upper panel holds the quick controls: port, baud, EQ profile, volume, bass
enhancement, surround and the five EQ bands. Select a control with ↑/↓, change
it with ←/→ and press enter to send it. Nothing is sent until a control is
applied. Every command sent and every line received is shown in the log.

Press i to type a raw command line, c to connect or disconnect, p to pick a
port from a list and ? for all keys. When a port is given the console connects
to it on start.

Example usage:
  soundcard connect
  soundcard connect /dev/ttyACM0
  soundcard connect -p /dev/ttyACM0 --baud 115200 --log-file console.log`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := loadSettings()

		// The alt screen owns the terminal, so logs only go to a file
		log := logging.Discard()
		if s.LogFile != "" {
			var closeLog func() error
			log, closeLog = openLogger(s)
			defer closeLog()
		}

		port, _ := resolvePort(s, args)
		if err := runConsole(s, port, log); err != nil {
			fail("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

// consoleModel represents the Bubble Tea model for the connect command
type consoleModel struct {
	*models.SessionModel
	controls     models.QuickControls
	terminal     *components.Terminal
	statusBar    *components.StatusBar
	input        *components.Input
	portTable    *components.PortTable
	help         help.Model
	keys         keys.ConsoleKeys
	pollInterval time.Duration

	autoConnect   bool
	picking       bool
	disconnecting bool
	width         int
	height        int
}

func runConsole(s config.Settings, port string, log *logrus.Entry) error {
	tr, err := s.NewTransport(log)
	if err != nil {
		return err
	}

	m := newConsoleModel(models.NewSessionModel(tr, port, s.Baud, s.Terminator), s)
	m.autoConnect = port != ""

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()

	// Ensure cleanup
	m.Cleanup()
	return err
}

func newConsoleModel(session *models.SessionModel, s config.Settings) *consoleModel {
	m := &consoleModel{
		SessionModel: session,
		controls:     models.NewQuickControls(),
		terminal:     components.NewTerminal(0, 0), // sized by WindowSizeMsg
		statusBar:    components.NewStatusBar(session.GetPortPath()),
		input:        components.NewInput("Type a command and press Enter to send..."),
		portTable:    components.NewPortTable(80, 10),
		help:         help.New(),
		keys:         keys.NewConsoleKeys(),
		pollInterval: s.PollInterval,
	}
	m.statusBar.SetConnectionInfo(&components.ConnectionInfo{
		BaudRate:   session.Baud(),
		Charset:    s.Charset,
		Terminator: config.Escape(s.Terminator),
		Driver:     s.Driver,
	})
	return m
}

func (m *consoleModel) Init() tea.Cmd {
	cmds := []tea.Cmd{models.ScanPorts, models.Tick(m.pollInterval)}
	if m.autoConnect {
		m.statusBar.SetConnecting()
		cmds = append(cmds, m.Connect())
	}
	return tea.Batch(cmds...)
}

// logf adds a local entry to the log
func (m *consoleModel) logf(kind components.EntryKind, format string, args ...any) {
	m.terminal.Add(components.LogEntry{Timestamp: time.Now(), Kind: kind, Text: fmt.Sprintf(format, args...)})
}

// send writes a command line and echoes it, or logs why it could not
func (m *consoleModel) send(line string) {
	if !m.Transport().IsOpen() {
		m.logf(components.EntryError, "Error: %v", errNotConnected)
		return
	}
	m.Transport().WriteLine(line)
	m.terminal.Add(components.LogEntry{Timestamp: time.Now(), Kind: components.EntrySent, Text: line})
}

// toggleConnection connects to the selected port or drops the current connection
func (m *consoleModel) toggleConnection() tea.Cmd {
	switch {
	case m.IsConnecting():
		return nil
	case m.IsConnected():
		m.disconnecting = true
		return m.Disconnect()
	case m.GetPortPath() == "":
		m.logf(components.EntryError, "Error: No port selected")
		return nil
	default:
		m.statusBar.SetPort(m.GetPortPath())
		m.statusBar.SetBaud(m.Baud())
		m.statusBar.SetConnecting()
		return m.Connect()
	}
}

func (m *consoleModel) adjust(delta int) {
	switch m.controls.Selected {
	case models.ControlPort:
		m.CyclePort(delta)
	case models.ControlBaud:
		m.CycleBaud(delta)
	default:
		m.controls.Adjust(delta)
	}
}

func (m *consoleModel) apply() tea.Cmd {
	line, ok := m.controls.Command()
	if !ok {
		return m.toggleConnection()
	}
	if m.controls.Selected == models.ControlProfile {
		m.controls.ApplyProfileGains()
	}
	m.send(line)
	return nil
}

// layout sizes the log to whatever the controls, input and help leave over
func (m *consoleModel) layout() {
	if m.width == 0 {
		return
	}

	// Input area height (includes border), status bar and the log's top border
	const inputHeight, statusBarHeight, borderHeight = 3, 1, 1
	used := lipgloss.Height(m.controlsView()) + inputHeight + statusBarHeight + borderHeight
	if m.help.ShowAll {
		used += lipgloss.Height(m.helpView())
	}

	logHeight := max(m.height-used, 3)
	m.terminal.SetSize(m.width, logHeight)
	m.portTable.SetSize(m.width, logHeight)
	m.input.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.help.Width = m.width
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.SetReady(true)

	case models.TickMsg:
		for _, line := range m.Transport().DrainLines() {
			m.terminal.Add(components.LogEntry{Timestamp: time.Now(), Kind: components.EntryReceived, Text: line})
		}

		if m.IsConnected() && !m.disconnecting && !m.Transport().IsOpen() {
			m.SetConnected(false)
			m.SetError(errConnectionLost)
			m.statusBar.SetDisconnected(errConnectionLost)
			m.logf(components.EntryError, "Error: Connection lost")
		}
		return m, models.Tick(m.pollInterval)

	case models.ConnectionStatusMsg:
		m.SetConnected(msg.Connected)
		m.disconnecting = false
		switch {
		case msg.Error != nil:
			m.SetError(msg.Error)
			m.statusBar.SetDisconnected(msg.Error)
			m.logf(components.EntryError, "Error: %v", msg.Error)
		case msg.Connected:
			m.statusBar.SetPort(msg.Port)
			m.statusBar.SetBaud(msg.Baud)
			m.statusBar.SetConnected()
			m.logf(components.EntryNotice, "Connected to %s at %d baud", msg.Port, msg.Baud)
		default:
			m.statusBar.SetDisconnected(nil)
			m.logf(components.EntryNotice, "Disconnected")
		}

	case models.PortsMsg:
		if msg.Error != nil {
			m.logf(components.EntryError, "Error: scanning ports: %v", msg.Error)
			break
		}
		m.SetPorts(msg.Ports)
		m.portTable.SetPorts(msg.Ports, m.GetPortPath())
		if !m.IsConnected() {
			m.statusBar.SetPort(m.GetPortPath())
		}

	case tea.KeyMsg:
		switch {
		case m.picking:
			return m, m.updatePicker(msg)
		case m.IsInInsertMode():
			return m, m.updateInsert(msg)
		default:
			return m, m.updateNormal(msg)
		}
	}

	// Update terminal viewport for window resize and mouse messages
	switch msg.(type) {
	case tea.WindowSizeMsg, tea.MouseMsg:
		_, cmd := m.terminal.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *consoleModel) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.Cleanup()
		return tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.PickPort):
		m.picking = false
	case key.Matches(msg, m.keys.Enter):
		if path := m.portTable.Selected(); path != "" {
			m.SetPortPath(path)
			if !m.IsConnected() {
				m.statusBar.SetPort(path)
			}
		}
		m.picking = false
	case key.Matches(msg, m.keys.RefreshPorts):
		return models.ScanPorts
	default:
		return m.portTable.Update(msg)
	}
	return nil
}

func (m *consoleModel) updateInsert(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.Cleanup()
		return tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.SetInputMode(models.InputModeNormal)
		m.input.Blur()
		return nil
	case key.Matches(msg, m.keys.Enter):
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return nil
		}
		m.send(line)
		m.input.AddToHistory(line)
		m.input.SetValue("")
		return nil
	case msg.Type == tea.KeyUp:
		m.input.NavigateHistoryUp()
		return nil
	case msg.Type == tea.KeyDown:
		m.input.NavigateHistoryDown()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *consoleModel) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Cleanup()
		return tea.Quit

	case key.Matches(msg, m.keys.InsertMode):
		m.SetInputMode(models.InputModeInsert)
		m.input.Focus()

	case key.Matches(msg, m.keys.Up):
		m.controls.Prev()
	case key.Matches(msg, m.keys.Down):
		m.controls.Next()
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
	case key.Matches(msg, m.keys.Apply):
		return m.apply()

	case key.Matches(msg, m.keys.Connect):
		return m.toggleConnection()
	case key.Matches(msg, m.keys.RefreshPorts):
		return models.ScanPorts
	case key.Matches(msg, m.keys.PickPort):
		m.portTable.SetPorts(m.Ports(), m.GetPortPath())
		m.picking = true

	case key.Matches(msg, m.keys.DumpRegisters):
		m.send(codec.DumpRegisters())
	case key.Matches(msg, m.keys.Version):
		m.send(codec.Version())
	case key.Matches(msg, m.keys.DeviceHelp):
		m.send(codec.Help())

	case key.Matches(msg, m.keys.Clear):
		m.terminal.Clear()
	case key.Matches(msg, m.keys.ToggleTimestamps):
		m.terminal.ToggleTimestamps()
	case key.Matches(msg, m.keys.GotoTop):
		m.terminal.GotoTop()
	case key.Matches(msg, m.keys.GotoBottom):
		m.terminal.GotoBottom()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return nil
}

func (m *consoleModel) controlsView() string {
	rows := m.controls.Rows(m.GetPortPath(), m.Baud())
	return components.RenderControls("SGTL5000 Quick Controls", rows, int(m.controls.Selected), m.width)
}

func (m *consoleModel) helpView() string {
	helpStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)
	return helpStyle.Render(m.help.View(m.keys))
}

func (m *consoleModel) View() string {
	var content string
	switch {
	case !m.IsReady():
		content = "Initializing..."
	case m.picking:
		content = m.portTable.View()
	default:
		content = m.terminal.View()
	}

	inputMode := m.GetInputMode().String()
	statusBar := m.statusBar.ComprehensiveStatusBar(inputMode, m.IsConnected(), time.Now().Format("15:04:05"))

	sections := []string{
		m.controlsView(),
		styles.ContentBorderStyle.Render(content),
		m.input.ViewWithMode(m.IsInInsertMode()),
	}
	if m.help.ShowAll {
		sections = append(sections, m.helpView())
	}
	sections = append(sections, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
