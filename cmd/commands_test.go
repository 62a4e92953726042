package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/allbin/soundcard/codec"
)

func TestParseOnOff(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"ON", true, false},
		{" enable ", true, false},
		{"1", true, false},
		{"true", true, false},
		{"off", false, false},
		{"disable", false, false},
		{"0", false, false},
		{"false", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := parseOnOff(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseOnOff(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("parseOnOff(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatGains(t *testing.T) {
	got := formatGains([codec.EQBands]int{12, 8, -12, 8, 12})
	if got != " +12   +8  -12   +8  +12" {
		t.Errorf("formatGains = %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	tests := map[string]string{
		"setvolume 42\n":      "setvolume 42",
		"help\r\nversion\r\n": "help",
		"dumpregs":            "dumpregs",
		"":                    "",
	}
	for in, want := range tests {
		if got := firstLine(in); got != want {
			t.Errorf("firstLine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetPortType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"ttyUSB0", "USB Serial"},
		{"ttyACM0", "USB CDC/ACM"},
		{"ttyAMA0", "ARM Serial"},
		{"ttySAC1", "Samsung Serial"},
		{"ttyS0", "Standard Serial"},
		{"ttyTHS2", "Tegra Serial"},
		{"rfcomm0", "Serial Port"},
	}

	for _, tt := range tests {
		if got := getPortType(tt.name); got != tt.want {
			t.Errorf("getPortType(%s) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestFilterPortsAll(t *testing.T) {
	ports := []string{"/dev/ttyS0", "/dev/ttyACM0"}
	for _, filter := range []string{"", "all"} {
		if got := filterPorts(ports, filter); len(got) != len(ports) {
			t.Errorf("filter %q dropped ports: %v", filter, got)
		}
	}
	if got := filterPorts([]string{"/dev/nonexistent0"}, "usb"); len(got) != 0 {
		t.Errorf("unreadable port kept: %v", got)
	}
}

func TestListen(t *testing.T) {
	dev := &replyDevice{}
	tr := openFakeTransport(t, dev)
	dev.push("Booted\r\nVolume 60\r\n")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var out, capture bytes.Buffer
	n, err := listen(ctx, tr, 5*time.Millisecond, &out, &capture, false)
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	if n != 2 {
		t.Errorf("listen counted %d lines, want 2", n)
	}
	if !strings.Contains(out.String(), "Booted") || !strings.Contains(out.String(), "Volume 60") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if !strings.Contains(capture.String(), "< Booted\n") || !strings.Contains(capture.String(), "< Volume 60\n") {
		t.Errorf("unexpected capture: %q", capture.String())
	}
}

func TestListenRaw(t *testing.T) {
	dev := &replyDevice{}
	tr := openFakeTransport(t, dev)
	dev.push("a\r\nb\r\n")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	if _, err := listen(ctx, tr, 5*time.Millisecond, &out, nil, true); err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	if out.String() != "a\r\nb\r\n" {
		t.Errorf("raw output = %q", out.String())
	}
}

func TestListenConnectionLost(t *testing.T) {
	dev := &replyDevice{}
	tr := openFakeTransport(t, dev)
	dev.Close()

	var out bytes.Buffer
	_, err := listen(context.Background(), tr, 5*time.Millisecond, &out, nil, false)
	if err == nil || err.Error() != "connection lost" {
		t.Errorf("expected connection lost, got %v", err)
	}
}

func TestPortTable(t *testing.T) {
	view := portTable([]string{"/dev/null", "/dev/nonexistent0"}).View()

	for _, want := range []string{"Port", "VID:PID", "null", "Unknown"} {
		if !strings.Contains(view, want) {
			t.Errorf("table missing %q:\n%s", want, view)
		}
	}
}
