package components

import (
	"fmt"
	"strings"

	"github.com/allbin/soundcard/internal/tui/colors"
	"github.com/allbin/soundcard/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// ControlRow is one line of the quick controls panel
type ControlRow struct {
	Label string
	Value string
	Hint  string
	Gain  *int // set for EQ bands, drawn as a bar
}

// GainRange is the span drawn by gain bars, in dB either side of zero
const GainRange = 12

// RenderControls draws the panel with the selected row highlighted
func RenderControls(title string, rows []ControlRow, selected, width int) string {
	lines := []string{styles.PanelTitleStyle.Render(title)}

	for i, row := range rows {
		label := styles.LabelStyle.Render(row.Label)
		if i == selected {
			label = styles.SelectedLabelStyle.Render(row.Label)
		}

		value := styles.ValueStyle.Render(row.Value)
		if row.Gain != nil {
			value = GainBar(*row.Gain) + " " + styles.ValueStyle.Render(fmt.Sprintf("%+3d dB", *row.Gain))
		}

		line := lipgloss.JoinHorizontal(lipgloss.Left, label, " ", value)
		if row.Hint != "" {
			line = lipgloss.JoinHorizontal(lipgloss.Left, line, "  ", styles.HintStyle.Render(row.Hint))
		}
		lines = append(lines, line)
	}

	panel := styles.PanelStyle
	if width > 2 {
		panel = panel.Width(width - 2)
	}
	return panel.Render(strings.Join(lines, "\n"))
}

// GainBar draws gain as a bar growing left or right from a center mark
func GainBar(gain int) string {
	gain = max(-GainRange, min(GainRange, gain))

	var b strings.Builder
	for i := -GainRange; i <= GainRange; i++ {
		switch {
		case i == 0:
			b.WriteString(lipgloss.NewStyle().Foreground(colors.Text).Render("┼"))
		case i < 0 && gain <= i:
			b.WriteString(lipgloss.NewStyle().Foreground(colors.GainNegative).Render("█"))
		case i > 0 && gain >= i:
			b.WriteString(lipgloss.NewStyle().Foreground(colors.GainPositive).Render("█"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(colors.GainEmpty).Render("·"))
		}
	}
	return b.String()
}
