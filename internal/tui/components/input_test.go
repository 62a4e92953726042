package components

import (
	"fmt"
	"testing"
)

func TestInputHistory(t *testing.T) {
	in := NewInput("")
	in.AddToHistory("help")
	in.AddToHistory("help") // consecutive duplicate
	in.AddToHistory("  ")
	in.AddToHistory("version")

	if h := in.History(); len(h) != 2 || h[0] != "help" || h[1] != "version" {
		t.Fatalf("History() = %q", h)
	}

	in.SetValue("draft")
	in.NavigateHistoryUp()
	if in.Value() != "version" {
		t.Errorf("first up = %q, want version", in.Value())
	}
	in.NavigateHistoryUp()
	in.NavigateHistoryUp()
	if in.Value() != "help" {
		t.Errorf("up past the start = %q, want help", in.Value())
	}
	in.NavigateHistoryDown()
	if in.Value() != "version" {
		t.Errorf("down = %q, want version", in.Value())
	}
	in.NavigateHistoryDown()
	if in.Value() != "draft" {
		t.Errorf("down past the end = %q, want the draft back", in.Value())
	}
}

func TestInputHistoryBounded(t *testing.T) {
	in := NewInput("")
	for i := 0; i < maxHistory+5; i++ {
		in.AddToHistory(fmt.Sprintf("setvolume %d", i))
	}

	h := in.History()
	if len(h) != maxHistory {
		t.Fatalf("history length %d, want %d", len(h), maxHistory)
	}
	if h[0] != "setvolume 5" {
		t.Errorf("oldest kept = %q, want setvolume 5", h[0])
	}
}
