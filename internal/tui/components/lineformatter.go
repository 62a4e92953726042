package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/allbin/soundcard/codec"
	"github.com/allbin/soundcard/internal/tui/styles"
)

// EntryKind says where a log entry came from
type EntryKind int

const (
	EntrySent     EntryKind = iota // command written to the device
	EntryReceived                  // line drained from the transport
	EntryNotice                    // connect/disconnect and similar
	EntryError                     // local failures such as sending while closed
)

// LogEntry is one line in the console log
type LogEntry struct {
	Timestamp time.Time
	Kind      EntryKind
	Text      string
}

// LineFormatter renders log entries, optionally with timestamps
type LineFormatter struct {
	showTimestamps bool
}

func NewLineFormatter(showTimestamps bool) *LineFormatter {
	return &LineFormatter{showTimestamps: showTimestamps}
}

func (lf *LineFormatter) ToggleTimestamps() {
	lf.showTimestamps = !lf.showTimestamps
}

func (lf *LineFormatter) ShowsTimestamps() bool {
	return lf.showTimestamps
}

// Plain renders an entry without styling: "> cmd", "< line" or the bare text
func Plain(e LogEntry) string {
	switch e.Kind {
	case EntrySent:
		return "> " + e.Text
	case EntryReceived:
		return "< " + DisplayLine(e.Text)
	default:
		return e.Text
	}
}

// DisplayLine trims the terminator and surrounding blanks from a received line
// and replaces control characters so they cannot disturb the terminal.
func DisplayLine(line string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return '.'
		}
		return r
	}, strings.TrimSpace(line))
}

func (lf *LineFormatter) FormatEntry(e LogEntry) string {
	text := Plain(e)

	var styled string
	switch e.Kind {
	case EntrySent:
		styled = styles.SentStyle.Render(text)
	case EntryReceived:
		switch codec.Classify(e.Text) {
		case codec.ResponseError:
			styled = styles.ErrorStyle.Render(text)
		case codec.ResponseEcho:
			styled = styles.EchoStyle.Render(text)
		default:
			styled = styles.ReceivedStyle.Render(text)
		}
	case EntryError:
		styled = styles.ErrorStyle.Render(text)
	default:
		styled = styles.NoticeStyle.Render(text)
	}

	if !lf.showTimestamps {
		return styled
	}

	ts := styles.TimestampStyle.Render(fmt.Sprintf("[%s]", e.Timestamp.Format("15:04:05.000")))
	return ts + " " + styled
}

func (lf *LineFormatter) FormatEntries(entries []LogEntry) []string {
	formatted := make([]string, len(entries))
	for i, e := range entries {
		formatted[i] = lf.FormatEntry(e)
	}
	return formatted
}
