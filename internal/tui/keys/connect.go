package keys

import "github.com/charmbracelet/bubbles/key"

// ConsoleKeys adds the quick controls and command input to the log keys
type ConsoleKeys struct {
	LogKeys
	Enter         key.Binding
	Up            key.Binding
	Down          key.Binding
	Decrease      key.Binding
	Increase      key.Binding
	Apply         key.Binding
	Connect       key.Binding
	RefreshPorts  key.Binding
	PickPort      key.Binding
	DumpRegisters key.Binding
	Version       key.Binding
	DeviceHelp    key.Binding
}

func NewConsoleKeys() ConsoleKeys {
	return ConsoleKeys{
		LogKeys: NewLogKeys(),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send command"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous control"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next control"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/l", "increase"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "apply control"),
		),
		Connect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "connect/disconnect"),
		),
		RefreshPorts: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh ports"),
		),
		PickPort: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pick port"),
		),
		DumpRegisters: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dump registers"),
		),
		Version: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "firmware version"),
		),
		DeviceHelp: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "device help"),
		),
	}
}

func (k ConsoleKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Connect, k.Apply, k.InsertMode, k.Quit}
}

func (k ConsoleKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.Apply},
		{k.Connect, k.RefreshPorts, k.PickPort, k.DumpRegisters, k.Version, k.DeviceHelp},
		{k.InsertMode, k.Escape, k.Clear, k.ToggleTimestamps},
		{k.GotoTop, k.GotoBottom, k.Help, k.Quit},
	}
}
