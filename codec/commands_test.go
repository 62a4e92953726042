package codec

import (
	"math"
	"strings"
	"testing"
)

func TestFixedCommands(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"help", Help(), "help"},
		{"dump", DumpRegisters(), "dumpregs"},
		{"version", Version(), "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSetEQProfile(t *testing.T) {
	if got := SetEQProfile("rock"); got != "seteqprofile rock" {
		t.Errorf("SetEQProfile(rock) = %q", got)
	}

	// Not validated at this layer
	if got := SetEQProfile("nosuchpreset"); got != "seteqprofile nosuchpreset" {
		t.Errorf("SetEQProfile(nosuchpreset) = %q", got)
	}
}

func TestSetVolume(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{-5, "setvolume 0"},
		{150, "setvolume 100"},
		{42, "setvolume 42"},
		{0, "setvolume 0"},
		{100, "setvolume 100"},
		{42.9, "setvolume 42"},
		{100.5, "setvolume 100"},
		{-0.5, "setvolume 0"},
		{math.NaN(), "setvolume 0"},
		{math.Inf(1), "setvolume 100"},
	}

	for _, tt := range tests {
		if got := SetVolume(tt.input); got != tt.want {
			t.Errorf("SetVolume(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if got := SetVolume(-5); got != "setvolume 0" {
		t.Errorf("SetVolume(int -5) = %q", got)
	}
	if got := SetVolume(uint8(200)); got != "setvolume 100" {
		t.Errorf("SetVolume(uint8 200) = %q", got)
	}
}

func TestSetEQ(t *testing.T) {
	if got := SetEQ(3, -3, 0, 12, -12); got != "seteq 3 -3 0 12 -12" {
		t.Errorf("SetEQ ints = %q", got)
	}

	// Truncation, not rounding
	if got := SetEQ(3.9, -3.9, 0.5, 11.99, -12.0); got != "seteq 3 -3 0 11 -12" {
		t.Errorf("SetEQ floats = %q", got)
	}

	// No range checking here
	if got := SetEQ(40, -40, 0, 0, 0); got != "seteq 40 -40 0 0 0" {
		t.Errorf("SetEQ out of range = %q", got)
	}
}

func TestSetBassEnhance(t *testing.T) {
	tests := []struct {
		name   string
		enable bool
		trim   float64
		level  float64
		want   string
	}{
		{"disabled ignores params", false, 60, 100, "setbassenhance off"},
		{"disabled defaults", false, DefaultBassTrim, DefaultBassLevel, "setbassenhance off"},
		{"enabled defaults", true, 5, 31, "setbassenhance on 5 31"},
		{"enabled truncates", true, 7.8, 99.2, "setbassenhance on 7 99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetBassEnhance(tt.enable, tt.trim, tt.level); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if got := BassEnhance(true); got != "setbassenhance on 5 31" {
		t.Errorf("BassEnhance(true) = %q", got)
	}
	if got := strings.Fields(BassEnhance(false)); len(got) != 2 {
		t.Errorf("disabled form should have 2 tokens, got %v", got)
	}
}

func TestSetSurround(t *testing.T) {
	tests := []struct {
		name   string
		enable bool
		width  int
		want   string
	}{
		{"disabled", false, 4, "setsurround off"},
		{"disabled ignores width", false, 7, "setsurround off"},
		{"enabled default", true, 4, "setsurround on 4"},
		{"enabled wide", true, 7, "setsurround on 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetSurround(tt.enable, tt.width); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if got := Surround(true); got != "setsurround on 4" {
		t.Errorf("Surround(true) = %q", got)
	}
}

func TestCommandsAreSingleLine(t *testing.T) {
	cmds := []string{
		Help(), DumpRegisters(), Version(), SetEQProfile("pop"),
		SetEQ(1, 2, 3, 4, 5), SetVolume(50), BassEnhance(true), Surround(false),
	}
	for _, c := range cmds {
		if strings.ContainsAny(c, "\r\n") {
			t.Errorf("command %q contains a terminator", c)
		}
	}
}

func TestIntegerSaturates(t *testing.T) {
	if got := integer(math.Inf(1)); got != "9223372036854775807" {
		t.Errorf("integer(+Inf) = %s", got)
	}
	if got := integer(math.Inf(-1)); got != "-9223372036854775808" {
		t.Errorf("integer(-Inf) = %s", got)
	}
}

type gain int32

func TestIntegerKindsAreExact(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int64 near max", integer(int64(math.MaxInt64 - 100)), "9223372036854775707"},
		{"int64 min", integer(int64(math.MinInt64)), "-9223372036854775808"},
		{"uint64 max", integer(uint64(math.MaxUint64)), "18446744073709551615"},
		{"uint8", integer(uint8(200)), "200"},
		{"named int32", integer(gain(-12)), "-12"},
		{"float truncates", integer(-2.9), "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}

	if got := SetEQ(int64(math.MaxInt64-100), 0, 0, 0, 0); got != "seteq 9223372036854775707 0 0 0 0" {
		t.Errorf("SetEQ large int64 = %q", got)
	}
}
