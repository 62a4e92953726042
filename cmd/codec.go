/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/allbin/soundcard/codec"
	"github.com/spf13/cobra"
)

// codecCmd groups the typed sound card commands
var codecCmd = &cobra.Command{
	Use:   "codec",
	Short: "Send typed commands to the SGTL5000 codec",
	Long: `Build and send a sound card command, then print the responses.

Each subcommand encodes exactly one console line. Volume is clamped to 0-100;
EQ gains and effect parameters are passed through and range-checked by the
firmware.

Example usage:
  soundcard codec volume 42 -p /dev/ttyACM0
  soundcard codec profile rock -p /dev/ttyACM0
  soundcard codec eq -- 3 -3 0 12 -12
  soundcard codec bass on --trim 10 --level 40
  soundcard codec surround off`,
}

var codecHelpCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands the firmware accepts",
	Args:  cobra.NoArgs,
	Run:   sendLine(func(args []string) (string, error) { return codec.Help(), nil }),
}

var codecDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the codec registers",
	Args:  cobra.NoArgs,
	Run:   sendLine(func(args []string) (string, error) { return codec.DumpRegisters(), nil }),
}

var codecVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the firmware version",
	Args:  cobra.NoArgs,
	Run:   sendLine(func(args []string) (string, error) { return codec.Version(), nil }),
}

var codecProfileCmd = &cobra.Command{
	Use:   "profile <name>",
	Short: "Select an EQ preset",
	Long: `Select a named EQ preset. Known presets are listed by "codec profiles";
unknown names are sent anyway and left for the firmware to reject.`,
	Args: cobra.ExactArgs(1),
	Run: sendLine(func(args []string) (string, error) {
		if !codec.IsProfile(args[0]) {
			fmt.Fprintf(os.Stderr, "Warning: %q is not a known preset\n", args[0])
		}
		return codec.SetEQProfile(args[0]), nil
	}),
}

var codecProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the EQ presets and their band gains",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("%-12s %s", "PRESET", "BAND GAINS (dB)")))
		for _, name := range codec.Profiles {
			gains, _ := codec.ProfileGains(name)
			fmt.Fprintf(w, "%-12s %s\n", name, formatGains(gains))
		}
	},
}

var codecEQCmd = &cobra.Command{
	Use:   "eq <b0> <b1> <b2> <b3> <b4>",
	Short: "Set the five EQ band gains in dB",
	Long: `Set the five graphic EQ band gains in dB, lowest band first. Use "--" before
the values when the first one is negative.`,
	Args: cobra.ExactArgs(codec.EQBands),
	Run: sendLine(func(args []string) (string, error) {
		var bands [codec.EQBands]float64
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return "", fmt.Errorf("band %d: invalid gain %q", i, arg)
			}
			bands[i] = v
		}
		return codec.SetEQ(bands[0], bands[1], bands[2], bands[3], bands[4]), nil
	}),
}

var codecVolumeCmd = &cobra.Command{
	Use:   "volume <0-100>",
	Short: "Set the output volume",
	Args:  cobra.ExactArgs(1),
	Run: sendLine(func(args []string) (string, error) {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", fmt.Errorf("invalid volume %q", args[0])
		}
		return codec.SetVolume(v), nil
	}),
}

var codecBassCmd = &cobra.Command{
	Use:   "bass <on|off>",
	Short: "Switch bass enhancement",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		trim, _ := cmd.Flags().GetInt("trim")
		level, _ := cmd.Flags().GetInt("level")
		sendLine(func(args []string) (string, error) {
			on, err := parseOnOff(args[0])
			if err != nil {
				return "", err
			}
			return codec.SetBassEnhance(on, trim, level), nil
		})(cmd, args)
	},
}

var codecSurroundCmd = &cobra.Command{
	Use:   "surround <on|off>",
	Short: "Switch the surround effect",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		width, _ := cmd.Flags().GetInt("width")
		sendLine(func(args []string) (string, error) {
			on, err := parseOnOff(args[0])
			if err != nil {
				return "", err
			}
			return codec.SetSurround(on, width), nil
		})(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(codecCmd)

	for _, c := range []*cobra.Command{
		codecHelpCmd, codecDumpCmd, codecVersionCmd, codecProfileCmd,
		codecEQCmd, codecVolumeCmd, codecBassCmd, codecSurroundCmd,
	} {
		c.Flags().DurationP("wait", "w", 500*time.Millisecond, "How long to collect responses")
		codecCmd.AddCommand(c)
	}
	codecCmd.AddCommand(codecProfilesCmd)

	codecBassCmd.Flags().Int("trim", codec.DefaultBassTrim, "Bass trim (0-63)")
	codecBassCmd.Flags().Int("level", codec.DefaultBassLevel, "Bass level (0-127)")
	codecSurroundCmd.Flags().Int("width", codec.DefaultSurroundWidth, "Surround width (0-7)")
}

// sendLine adapts an encoder into a cobra Run that sends its line
func sendLine(encode func(args []string) (string, error)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		line, err := encode(args)
		if err != nil {
			fail("%v", err)
		}

		wait, _ := cmd.Flags().GetDuration("wait")
		if err := runCommand(cmd.OutOrStdout(), nil, line, wait); err != nil {
			fail("%v", err)
		}
	}
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "enable":
		return true, nil
	case "off", "false", "0", "disable":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func formatGains(gains [codec.EQBands]int) string {
	parts := make([]string, len(gains))
	for i, g := range gains {
		parts[i] = fmt.Sprintf("%+4d", g)
	}
	return strings.Join(parts, " ")
}
