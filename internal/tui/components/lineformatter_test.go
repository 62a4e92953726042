package components

import (
	"strings"
	"testing"
	"time"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		name  string
		entry LogEntry
		want  string
	}{
		{"sent", LogEntry{Kind: EntrySent, Text: "setvolume 42"}, "> setvolume 42"},
		{"received trims terminator", LogEntry{Kind: EntryReceived, Text: "Volume set to 42\r\n"}, "< Volume set to 42"},
		{"received echo", LogEntry{Kind: EntryReceived, Text: "> help\n"}, "< > help"},
		{"notice", LogEntry{Kind: EntryNotice, Text: "Disconnected"}, "Disconnected"},
		{"error", LogEntry{Kind: EntryError, Text: "Error: Not connected"}, "Error: Not connected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plain(tt.entry); got != tt.want {
				t.Errorf("Plain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"OK\r\n", "OK"},
		{"  padded  \n", "padded"},
		{"bell\a here\r\n", "bell. here"},
		{"tab\tinside", "tab.inside"},
		{"del\x7f", "del."},
		{"åäö\r\n", "åäö"},
		{"\r\n", ""},
	}

	for _, tt := range tests {
		if got := DisplayLine(tt.in); got != tt.want {
			t.Errorf("DisplayLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatEntryTimestamps(t *testing.T) {
	ts := time.Date(2025, 3, 1, 14, 5, 9, 120*int(time.Millisecond), time.Local)
	e := LogEntry{Timestamp: ts, Kind: EntryReceived, Text: "ERR bad args\r\n"}

	lf := NewLineFormatter(true)
	if got := lf.FormatEntry(e); !strings.Contains(got, "14:05:09.120") || !strings.Contains(got, "< ERR bad args") {
		t.Errorf("FormatEntry with timestamps = %q", got)
	}

	lf.ToggleTimestamps()
	if lf.ShowsTimestamps() {
		t.Fatal("timestamps still enabled after toggle")
	}
	if got := lf.FormatEntry(e); strings.Contains(got, "14:05:09") {
		t.Errorf("FormatEntry without timestamps = %q", got)
	}
}
