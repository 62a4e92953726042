package codec

import "strings"

// Response is a display classification of a line received from the board.
// The protocol has no response correlation; this only drives highlighting.
type Response int

const (
	ResponseText  Response = iota
	ResponseEcho           // the firmware repeating a received command as "> cmd"
	ResponseError          // "ERR ..." or an unrecognized command
)

func (r Response) String() string {
	switch r {
	case ResponseEcho:
		return "echo"
	case ResponseError:
		return "error"
	default:
		return "text"
	}
}

// Classify inspects a received line, terminator included or not
func Classify(line string) Response {
	s := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(s, "ERR"), s == "Command not recognized!":
		return ResponseError
	case strings.HasPrefix(s, "> "):
		return ResponseEcho
	default:
		return ResponseText
	}
}
