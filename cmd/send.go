/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send [line]",
	Short: "Send one raw command line to the sound card",
	Long: `Send one command line to the sound card console and print the responses.

The line is sent as-is followed by the configured terminator (CR LF by
default). Responses that arrive within --wait are printed; the console has no
request/response correlation so anything the card emits in that window is shown.

The line can be provided as:
- Command line argument: soundcard send "setvolume 42" -p /dev/ttyACM0
- From stdin (pipe): echo "version" | soundcard send -p /dev/ttyACM0
- Interactive mode: soundcard send -p /dev/ttyACM0 (prompts for input)

Example usage:
  soundcard send help -p /dev/ttyACM0
  soundcard send "seteq 3 -3 0 12 -12" -p /dev/ttyACM0 --wait 1s`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var line string
		if len(args) == 1 {
			line = args[0]
		} else {
			line = readLine(os.Stdin)
		}

		if strings.TrimSpace(line) == "" {
			fail("nothing to send")
		}

		wait, _ := cmd.Flags().GetDuration("wait")
		if err := runCommand(cmd.OutOrStdout(), nil, line, wait); err != nil {
			fail("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().DurationP("wait", "w", 500*time.Millisecond, "How long to collect responses")
}

// readLine takes the line from a pipe, or prompts for it on a terminal
func readLine(in *os.File) string {
	stat, err := in.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		return promptForData(in)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		fail("reading from stdin: %v", err)
	}
	return firstLine(string(data))
}

// firstLine returns s up to its first line break
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

func promptForData(in io.Reader) string {
	// Styled prompt
	promptStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	fmt.Print(promptStyle.Render("Command: "))

	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}
