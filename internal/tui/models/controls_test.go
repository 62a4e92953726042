package models

import (
	"testing"

	"github.com/allbin/soundcard/codec"
)

func TestQuickControlsNavigationWraps(t *testing.T) {
	q := NewQuickControls()

	q.Prev()
	if q.Selected != ControlBand4 {
		t.Errorf("Prev from the first control = %v, want last band", q.Selected)
	}
	q.Next()
	if q.Selected != ControlPort {
		t.Errorf("Next from the last control = %v, want port", q.Selected)
	}
}

func TestQuickControlsAdjust(t *testing.T) {
	tests := []struct {
		name    string
		control Control
		delta   int
		times   int
		check   func(q QuickControls) bool
	}{
		{"volume steps by five", ControlVolume, 1, 1, func(q QuickControls) bool { return q.Volume == 65 }},
		{"volume clamps high", ControlVolume, 1, 20, func(q QuickControls) bool { return q.Volume == codec.VolumeMax }},
		{"volume clamps low", ControlVolume, -1, 20, func(q QuickControls) bool { return q.Volume == codec.VolumeMin }},
		{"profile wraps backwards", ControlProfile, -1, 1, func(q QuickControls) bool { return q.Profile == len(codec.Profiles)-1 }},
		{"bass toggles", ControlBassEnable, 1, 1, func(q QuickControls) bool { return q.BassEnabled }},
		{"bass toggles back", ControlBassEnable, -1, 2, func(q QuickControls) bool { return !q.BassEnabled }},
		{"trim clamps", ControlBassTrim, 1, 100, func(q QuickControls) bool { return q.BassTrim == codec.BassTrimMax }},
		{"level clamps", ControlBassLevel, -1, 200, func(q QuickControls) bool { return q.BassLevel == 0 }},
		{"surround toggles", ControlSurroundEnable, 1, 1, func(q QuickControls) bool { return q.SurroundEnabled }},
		{"width clamps", ControlSurroundWidth, 1, 10, func(q QuickControls) bool { return q.SurroundWidth == codec.SurroundWidthMax }},
		{"band clamps high", ControlBand2, 1, 30, func(q QuickControls) bool { return q.Bands[2] == codec.EQGainMax }},
		{"band clamps low", ControlBand0, -1, 30, func(q QuickControls) bool { return q.Bands[0] == codec.EQGainMin }},
		{"port ignored", ControlPort, 1, 3, func(q QuickControls) bool { return q == withSelected(NewQuickControls(), ControlPort) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := withSelected(NewQuickControls(), tt.control)
			for n := 0; n < tt.times; n++ {
				q.Adjust(tt.delta)
			}
			if !tt.check(q) {
				t.Errorf("unexpected state after adjust: %+v", q)
			}
		})
	}
}

func TestQuickControlsCommand(t *testing.T) {
	q := NewQuickControls()
	q.Bands = [codec.EQBands]int{3, -3, 0, 12, -12}
	q.BassEnabled = true
	q.Profile = 1

	tests := []struct {
		control Control
		want    string
		ok      bool
	}{
		{ControlPort, "", false},
		{ControlBaud, "", false},
		{ControlProfile, "seteqprofile rock", true},
		{ControlVolume, "setvolume 60", true},
		{ControlBassEnable, "setbassenhance on 5 31", true},
		{ControlBassLevel, "setbassenhance on 5 31", true},
		{ControlSurroundEnable, "setsurround off", true},
		{ControlSurroundWidth, "setsurround off", true},
		{ControlBand0, "seteq 3 -3 0 12 -12", true},
		{ControlBand4, "seteq 3 -3 0 12 -12", true},
	}

	for _, tt := range tests {
		q.Selected = tt.control
		got, ok := q.Command()
		if ok != tt.ok || got != tt.want {
			t.Errorf("Command() for control %d = %q, %v; want %q, %v", tt.control, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyProfileGains(t *testing.T) {
	q := NewQuickControls()
	q.Profile = indexOf(t, "maxsmile")
	q.ApplyProfileGains()

	want, _ := codec.ProfileGains("maxsmile")
	if q.Bands != want {
		t.Errorf("Bands = %v, want %v", q.Bands, want)
	}
}

func TestRowsMarkSelection(t *testing.T) {
	q := withSelected(NewQuickControls(), ControlBand1)
	q.Bands[1] = -4

	rows := q.Rows("", 9600)
	if len(rows) != int(controlCount) {
		t.Fatalf("got %d rows, want %d", len(rows), controlCount)
	}
	if rows[ControlPort].Value != "(none)" {
		t.Errorf("empty port shown as %q", rows[ControlPort].Value)
	}
	if rows[ControlBaud].Value != "9600" {
		t.Errorf("baud shown as %q", rows[ControlBaud].Value)
	}
	if g := rows[ControlBand1].Gain; g == nil || *g != -4 {
		t.Errorf("band row gain = %v, want -4", g)
	}
	if rows[ControlBand1].Hint == "" {
		t.Error("selected row has no hint")
	}
	if rows[ControlVolume].Hint != "" {
		t.Error("unselected row has a hint")
	}
}

func withSelected(q QuickControls, c Control) QuickControls {
	q.Selected = c
	return q
}

func indexOf(t *testing.T, profile string) int {
	t.Helper()
	for i, name := range codec.Profiles {
		if name == profile {
			return i
		}
	}
	t.Fatalf("unknown profile %s", profile)
	return -1
}
