package codec

import "strings"

// Profiles lists the EQ presets the firmware knows, in the order the console
// offers them.
var Profiles = []string{
	"flat", "rock", "pop", "classical", "rap", "jazz", "edm", "vocal",
	"bright", "warm", "bassboost", "trebleboost", "maxsmile", "midspike",
}

// Band gains in dB the firmware applies for each preset
var profileGains = map[string][EQBands]int{
	"flat":        {0, 0, 0, 0, 0},
	"rock":        {4, 2, 0, 3, 5},
	"pop":         {3, 1, 0, 2, 4},
	"classical":   {-1, 2, 3, 2, -1},
	"rap":         {6, 3, 0, 1, 2},
	"jazz":        {2, 2, 1, 2, 2},
	"edm":         {6, 2, 0, 2, 6},
	"vocal":       {-2, 3, 4, 3, -2},
	"bright":      {-3, -1, 0, 3, 6},
	"warm":        {6, 2, 0, -2, -3},
	"bassboost":   {9, 3, 0, 0, 0},
	"trebleboost": {0, 0, 0, 6, 9},
	"maxsmile":    {12, 8, -12, 8, 12},
	"midspike":    {-12, 12, 12, 12, -12},
}

// ProfileGains returns the band gains of a preset. Names are case-insensitive.
func ProfileGains(name string) ([EQBands]int, bool) {
	gains, ok := profileGains[strings.ToLower(strings.TrimSpace(name))]
	return gains, ok
}

// IsProfile reports whether the firmware knows the named preset
func IsProfile(name string) bool {
	_, ok := ProfileGains(name)
	return ok
}
