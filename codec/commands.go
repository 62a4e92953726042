// Package codec encodes sound card operations as the single-line text commands
// the board's firmware parses. Every function is pure and returns the command
// without a line terminator; the transport appends it.
package codec

import (
	"math"
	"strconv"
	"strings"
)

// Number is any numeric type a command argument may be given as. Fractional
// values are truncated toward zero.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Firmware verbs
const (
	VerbHelp          = "help"
	VerbDumpRegisters = "dumpregs"
	VerbVersion       = "version"
	VerbSetEQProfile  = "seteqprofile"
	VerbSetEQ         = "seteq"
	VerbSetVolume     = "setvolume"
	VerbSetBass       = "setbassenhance"
	VerbSetSurround   = "setsurround"
)

// Parameter defaults and ranges. Only the volume range is enforced here; the
// others are what the firmware accepts and are used by the console's controls.
const (
	VolumeMin = 0
	VolumeMax = 100

	EQBands   = 5
	EQGainMin = -12
	EQGainMax = 12

	DefaultBassTrim  = 5
	DefaultBassLevel = 0x1F
	BassTrimMax      = 63
	BassLevelMax     = 127

	DefaultSurroundWidth = 4
	SurroundWidthMax     = 7
)

// Help asks the firmware to list its commands
func Help() string {
	return VerbHelp
}

// DumpRegisters asks the firmware to print every codec register
func DumpRegisters() string {
	return VerbDumpRegisters
}

// Version asks the firmware for its version string
func Version() string {
	return VerbVersion
}

// SetEQProfile selects a named EQ preset. The name is passed through as-is;
// the firmware rejects unknown presets itself.
func SetEQProfile(name string) string {
	return command(VerbSetEQProfile, name)
}

// SetEQ sets the five graphic EQ band gains in dB, lowest band first. The
// firmware enforces the gain range.
func SetEQ[N Number](b0, b1, b2, b3, b4 N) string {
	return command(VerbSetEQ, integer(b0), integer(b1), integer(b2), integer(b3), integer(b4))
}

// SetVolume sets the output volume, clamped to [VolumeMin, VolumeMax]
func SetVolume[N Number](volume N) string {
	v := float64(volume)
	switch {
	case math.IsNaN(v), v < VolumeMin:
		v = VolumeMin
	case v > VolumeMax:
		v = VolumeMax
	}
	return command(VerbSetVolume, integer(v))
}

// SetBassEnhance switches bass enhancement. The trim and level arguments are
// only sent when enabling; the firmware takes one argument for "off".
func SetBassEnhance[N Number](enable bool, trim, level N) string {
	if !enable {
		return command(VerbSetBass, "off")
	}
	return command(VerbSetBass, "on", integer(trim), integer(level))
}

// BassEnhance is SetBassEnhance with the firmware's default trim and level
func BassEnhance(enable bool) string {
	return SetBassEnhance(enable, DefaultBassTrim, DefaultBassLevel)
}

// SetSurround switches the surround effect. The width is only sent when enabling.
func SetSurround[N Number](enable bool, width N) string {
	if !enable {
		return command(VerbSetSurround, "off")
	}
	return command(VerbSetSurround, "on", integer(width))
}

// Surround is SetSurround with the firmware's default width
func Surround(enable bool) string {
	return SetSurround(enable, DefaultSurroundWidth)
}

func command(verb string, args ...string) string {
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}

// integer formats v truncated toward zero. Integer kinds print exactly; for
// float kinds NaN becomes 0 and out-of-range values saturate.
func integer[N Number](v N) string {
	half := 0.5
	if N(half) == 0 {
		var zero N
		if zero-1 < zero {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatUint(uint64(v), 10)
	}

	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "0"
	case f >= math.MaxInt64:
		return strconv.FormatInt(math.MaxInt64, 10)
	case f <= math.MinInt64:
		return strconv.FormatInt(math.MinInt64, 10)
	}
	return strconv.FormatInt(int64(v), 10)
}
