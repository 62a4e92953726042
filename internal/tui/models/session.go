package models

import (
	"slices"
	"sync"
	"time"

	"github.com/allbin/soundcard"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMode represents the current input mode (vim-like)
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeInsert
)

func (m InputMode) String() string {
	switch m {
	case InputModeInsert:
		return "INSERT"
	default:
		return "NORMAL"
	}
}

// BaudRates offered by the baud control
var BaudRates = []int{9600, 19200, 38400, 57600, 115200, 230400}

// ConnectionStatusMsg reports the outcome of an open or close
type ConnectionStatusMsg struct {
	Connected bool
	Port      string
	Baud      int
	Error     error
}

// PortsMsg carries a fresh port scan
type PortsMsg struct {
	Ports []*soundcard.PortInfo
	Error error
}

// TickMsg drives polling of the transport
type TickMsg time.Time

// SessionModel is the console state shared by the connect command: the
// transport, the chosen port and baud, and the connection flags.
type SessionModel struct {
	transport  *soundcard.Transport
	terminator string

	ports     []*soundcard.PortInfo
	portPath  string
	baudIndex int
	bauds     []int

	connected  bool
	connecting bool
	err        error
	ready      bool

	inputMode InputMode
	mu        sync.RWMutex
}

func NewSessionModel(tr *soundcard.Transport, portPath string, baud int, terminator string) *SessionModel {
	bauds := BaudRates
	idx := slices.Index(bauds, baud)
	if idx < 0 {
		bauds = append([]int{baud}, BaudRates...)
		idx = 0
	}

	return &SessionModel{
		transport:  tr,
		terminator: terminator,
		portPath:   portPath,
		bauds:      bauds,
		baudIndex:  idx,
		inputMode:  InputModeNormal,
	}
}

func (m *SessionModel) Transport() *soundcard.Transport {
	return m.transport
}

func (m *SessionModel) GetPortPath() string {
	return m.portPath
}

func (m *SessionModel) SetPortPath(path string) {
	m.portPath = path
}

func (m *SessionModel) Ports() []*soundcard.PortInfo {
	return m.ports
}

// SetPorts replaces the scan result; with no port chosen yet the first one is
// selected.
func (m *SessionModel) SetPorts(ports []*soundcard.PortInfo) {
	m.ports = ports
	if m.portPath == "" && len(ports) > 0 {
		m.portPath = ports[0].Path
	}
}

// CyclePort moves the port selection through the last scan
func (m *SessionModel) CyclePort(delta int) {
	n := len(m.ports)
	if n == 0 {
		return
	}

	i := slices.IndexFunc(m.ports, func(p *soundcard.PortInfo) bool { return p.Path == m.portPath })
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	m.portPath = m.ports[i].Path
}

func (m *SessionModel) Baud() int {
	return m.bauds[m.baudIndex]
}

func (m *SessionModel) CycleBaud(delta int) {
	n := len(m.bauds)
	m.baudIndex = ((m.baudIndex+delta)%n + n) % n
}

func (m *SessionModel) IsConnected() bool {
	return m.connected
}

func (m *SessionModel) SetConnected(connected bool) {
	m.connected = connected
	m.connecting = false
}

func (m *SessionModel) IsConnecting() bool {
	return m.connecting
}

func (m *SessionModel) SetConnecting() {
	m.connecting = true
	m.err = nil
}

func (m *SessionModel) GetError() error {
	return m.err
}

func (m *SessionModel) SetError(err error) {
	m.err = err
}

func (m *SessionModel) IsReady() bool {
	return m.ready
}

func (m *SessionModel) SetReady(ready bool) {
	m.ready = ready
}

func (m *SessionModel) GetInputMode() InputMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputMode
}

func (m *SessionModel) SetInputMode(mode InputMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputMode = mode
}

func (m *SessionModel) IsInInsertMode() bool {
	return m.GetInputMode() == InputModeInsert
}

// Connect opens the selected port off the UI goroutine
func (m *SessionModel) Connect() tea.Cmd {
	tr, port, baud, term := m.transport, m.portPath, m.Baud(), m.terminator
	m.SetConnecting()

	return func() tea.Msg {
		err := tr.Open(port, baud, term)
		return ConnectionStatusMsg{Connected: err == nil, Port: port, Baud: baud, Error: err}
	}
}

// Disconnect closes the transport off the UI goroutine; Close may wait for the
// reader up to the close timeout.
func (m *SessionModel) Disconnect() tea.Cmd {
	tr, port, baud := m.transport, m.transport.Port(), m.transport.Baud()

	return func() tea.Msg {
		tr.Close()
		return ConnectionStatusMsg{Connected: false, Port: port, Baud: baud}
	}
}

// ScanPorts lists ports with their details
func ScanPorts() tea.Msg {
	paths, err := soundcard.ListPorts()
	if err != nil {
		return PortsMsg{Error: err}
	}

	infos := make([]*soundcard.PortInfo, 0, len(paths))
	for _, p := range paths {
		info, err := soundcard.GetPortInfo(p)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return PortsMsg{Ports: infos}
}

// Tick schedules the next poll
func Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Cleanup closes the transport synchronously on exit
func (m *SessionModel) Cleanup() {
	m.transport.Close()
}
