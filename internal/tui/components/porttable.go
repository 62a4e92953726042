package components

import (
	"github.com/allbin/soundcard"
	"github.com/allbin/soundcard/internal/tui/colors"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PortTable is the port picker shown in place of the log
type PortTable struct {
	table table.Model
	paths []string
}

func NewPortTable(width, height int) *PortTable {
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(portColumns(width)),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colors.Subtext0).
		BorderBottom(true).
		Bold(true).
		Foreground(colors.Text)
	s.Selected = s.Selected.
		Foreground(colors.Base).
		Background(colors.Blue).
		Bold(false)
	t.SetStyles(s)

	return &PortTable{table: t}
}

func portColumns(width int) []table.Column {
	desc := width - 16 - 12 - 6
	if desc < 20 {
		desc = 20
	}
	return []table.Column{
		{Title: "Port", Width: 16},
		{Title: "VID:PID", Width: 12},
		{Title: "Description", Width: desc},
	}
}

func (pt *PortTable) SetSize(width, height int) {
	if height < 5 {
		height = 5
	}
	pt.table.SetColumns(portColumns(width))
	pt.table.SetWidth(width)
	pt.table.SetHeight(height)
}

// SetPorts fills the table and moves the cursor to current when present
func (pt *PortTable) SetPorts(infos []*soundcard.PortInfo, current string) {
	rows := make([]table.Row, 0, len(infos))
	pt.paths = pt.paths[:0]
	cursor := 0

	for _, info := range infos {
		ids := ""
		if info.IsUSB() {
			ids = info.VendorID + ":" + info.ProductID
		}
		if info.Path == current {
			cursor = len(rows)
		}
		rows = append(rows, table.Row{info.Name, ids, info.Description})
		pt.paths = append(pt.paths, info.Path)
	}

	pt.table.SetRows(rows)
	pt.table.SetCursor(cursor)
}

// Selected returns the path under the cursor, or "" when the table is empty
func (pt *PortTable) Selected() string {
	i := pt.table.Cursor()
	if i < 0 || i >= len(pt.paths) {
		return ""
	}
	return pt.paths[i]
}

func (pt *PortTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	pt.table, cmd = pt.table.Update(msg)
	return cmd
}

func (pt *PortTable) View() string {
	if len(pt.paths) == 0 {
		return lipgloss.NewStyle().Foreground(colors.Overlay0).Render("No serial ports found (press r to rescan)")
	}
	return pt.table.View()
}
