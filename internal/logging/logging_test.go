package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    logrus.Level
		wantErr bool
	}{
		{"", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{"WARN", logrus.WarnLevel, false},
		{"5", logrus.DebugLevel, false},
		{"0", logrus.PanicLevel, false},
		{"7", 0, true},
		{"-1", 0, true},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewWritesPrefixedText(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(logrus.InfoLevel, &buf), "transport")

	log.WithField("port", "/dev/ttyACM0").Info("Connected")
	log.Debug("hidden")

	out := buf.String()
	for _, want := range []string{"transport", "Connected", "port=/dev/ttyACM0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colors written to a non-terminal: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soundcard.log")

	log, closeFn, err := Open("debug", path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	log.Debug("written to file")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file content %q", data)
	}
}

func TestOpenRejectsBadLevel(t *testing.T) {
	if _, _, err := Open("chatty", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nobody hears this")
}
