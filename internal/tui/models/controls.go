package models

import (
	"fmt"
	"strconv"

	"github.com/allbin/soundcard/codec"
	"github.com/allbin/soundcard/internal/tui/components"
)

// Control identifies a row of the quick controls panel
type Control int

const (
	ControlPort Control = iota
	ControlBaud
	ControlProfile
	ControlVolume
	ControlBassEnable
	ControlBassTrim
	ControlBassLevel
	ControlSurroundEnable
	ControlSurroundWidth
	ControlBand0
	ControlBand1
	ControlBand2
	ControlBand3
	ControlBand4

	controlCount
)

const (
	volumeStep    = 5
	defaultVolume = 60
)

// Band returns the EQ band index of a band control, or -1
func (c Control) Band() int {
	if c >= ControlBand0 && c <= ControlBand4 {
		return int(c - ControlBand0)
	}
	return -1
}

// QuickControls holds the values the operator has dialled in. Nothing is sent
// until a control is applied.
type QuickControls struct {
	Selected        Control
	Profile         int
	Volume          int
	BassEnabled     bool
	BassTrim        int
	BassLevel       int
	SurroundEnabled bool
	SurroundWidth   int
	Bands           [codec.EQBands]int
}

func NewQuickControls() QuickControls {
	return QuickControls{
		Volume:        defaultVolume,
		BassTrim:      codec.DefaultBassTrim,
		BassLevel:     codec.DefaultBassLevel,
		SurroundWidth: codec.DefaultSurroundWidth,
	}
}

// Next moves the selection down, wrapping at the end
func (q *QuickControls) Next() {
	q.Selected = (q.Selected + 1) % controlCount
}

// Prev moves the selection up, wrapping at the start
func (q *QuickControls) Prev() {
	q.Selected = (q.Selected + controlCount - 1) % controlCount
}

// ProfileName returns the selected EQ preset
func (q *QuickControls) ProfileName() string {
	return codec.Profiles[q.Profile]
}

// Adjust changes the selected value by delta steps. Port and baud are owned by
// the session and are ignored here.
func (q *QuickControls) Adjust(delta int) {
	switch q.Selected {
	case ControlProfile:
		n := len(codec.Profiles)
		q.Profile = ((q.Profile+delta)%n + n) % n
	case ControlVolume:
		q.Volume = clamp(q.Volume+delta*volumeStep, codec.VolumeMin, codec.VolumeMax)
	case ControlBassEnable:
		q.BassEnabled = !q.BassEnabled
	case ControlBassTrim:
		q.BassTrim = clamp(q.BassTrim+delta, 0, codec.BassTrimMax)
	case ControlBassLevel:
		q.BassLevel = clamp(q.BassLevel+delta, 0, codec.BassLevelMax)
	case ControlSurroundEnable:
		q.SurroundEnabled = !q.SurroundEnabled
	case ControlSurroundWidth:
		q.SurroundWidth = clamp(q.SurroundWidth+delta, 0, codec.SurroundWidthMax)
	default:
		if b := q.Selected.Band(); b >= 0 {
			q.Bands[b] = clamp(q.Bands[b]+delta, codec.EQGainMin, codec.EQGainMax)
		}
	}
}

// Command encodes the group the selected control belongs to. It reports false
// for the port and baud rows.
func (q *QuickControls) Command() (string, bool) {
	switch q.Selected {
	case ControlPort, ControlBaud:
		return "", false
	case ControlProfile:
		return codec.SetEQProfile(q.ProfileName()), true
	case ControlVolume:
		return codec.SetVolume(q.Volume), true
	case ControlBassEnable, ControlBassTrim, ControlBassLevel:
		return codec.SetBassEnhance(q.BassEnabled, q.BassTrim, q.BassLevel), true
	case ControlSurroundEnable, ControlSurroundWidth:
		return codec.SetSurround(q.SurroundEnabled, q.SurroundWidth), true
	default:
		b := q.Bands
		return codec.SetEQ(b[0], b[1], b[2], b[3], b[4]), true
	}
}

// ApplyProfileGains mirrors the preset's gains onto the band controls
func (q *QuickControls) ApplyProfileGains() {
	if gains, ok := codec.ProfileGains(q.ProfileName()); ok {
		q.Bands = gains
	}
}

// Rows renders the controls for the panel; port and baud come from the session
func (q *QuickControls) Rows(port string, baud int) []components.ControlRow {
	if port == "" {
		port = "(none)"
	}

	rows := []components.ControlRow{
		{Label: "Port", Value: port, Hint: "←/→ cycle, p pick, r rescan"},
		{Label: "Baud", Value: strconv.Itoa(baud)},
		{Label: "EQ profile", Value: q.ProfileName()},
		{Label: "Volume", Value: fmt.Sprintf("%d%%", q.Volume)},
		{Label: "Bass enhance", Value: onOff(q.BassEnabled)},
		{Label: "  LR level", Value: fmt.Sprintf("%d (0..%d)", q.BassTrim, codec.BassTrimMax)},
		{Label: "  Bass level", Value: fmt.Sprintf("%d (0..%d)", q.BassLevel, codec.BassLevelMax)},
		{Label: "Surround", Value: onOff(q.SurroundEnabled)},
		{Label: "  Width", Value: fmt.Sprintf("%d (0..%d)", q.SurroundWidth, codec.SurroundWidthMax)},
	}
	for i := range q.Bands {
		rows = append(rows, components.ControlRow{
			Label: fmt.Sprintf("EQ B%d", i),
			Gain:  &q.Bands[i],
		})
	}

	rows[q.Selected].Hint = hintFor(q.Selected, rows[q.Selected].Hint)
	return rows
}

func hintFor(c Control, fallback string) string {
	switch c {
	case ControlPort:
		return fallback
	case ControlBaud:
		return "←/→ cycle, enter connect"
	case ControlBassEnable, ControlSurroundEnable:
		return "←/→ toggle, enter apply"
	default:
		return "←/→ adjust, enter apply"
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
