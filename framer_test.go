package soundcard

import (
	"fmt"
	"testing"
)

func frame(chunks ...string) ([]string, int) {
	var f lineFramer
	var lines []string
	for _, c := range chunks {
		f.feed([]byte(c), func(line []byte) {
			lines = append(lines, string(line))
		})
	}
	return lines, f.pending()
}

func TestFramer(t *testing.T) {
	tests := []struct {
		name    string
		chunks  []string
		want    []string
		pending int
	}{
		{"single line", []string{"ok\r\n"}, []string{"ok\r\n"}, 0},
		{"two lines one chunk", []string{"a\r\nb\r\n"}, []string{"a\r\n", "b\r\n"}, 0},
		{"split across chunks", []string{"Sound", "card v1", ".0\r\n"}, []string{"Soundcard v1.0\r\n"}, 0},
		{"split inside crlf", []string{"a\r", "\nb"}, []string{"a\r\n"}, 1},
		{"lf only", []string{"x\ny\n"}, []string{"x\n", "y\n"}, 0},
		{"empty line", []string{"\r\n"}, []string{"\r\n"}, 0},
		{"no terminator", []string{"partial"}, nil, 7},
		{"empty chunks", []string{"", "a", "", "\n"}, []string{"a\n"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pending := frame(tt.chunks...)
			if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if pending != tt.pending {
				t.Errorf("pending = %d, want %d", pending, tt.pending)
			}
		})
	}
}

func TestFramerChunkBoundaryIndependence(t *testing.T) {
	stream := "Soundcard v1.0\r\n> seteq 3 -3 0 12 -12\r\nOK\r\n\r\nERR invalid\r\ntail"
	want, wantPending := frame(stream)

	for size := 1; size <= len(stream); size++ {
		var chunks []string
		for i := 0; i < len(stream); i += size {
			end := min(i+size, len(stream))
			chunks = append(chunks, stream[i:end])
		}

		got, pending := frame(chunks...)
		if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) || pending != wantPending {
			t.Fatalf("chunk size %d: got %q (+%d), want %q (+%d)", size, got, pending, want, wantPending)
		}
	}
}
