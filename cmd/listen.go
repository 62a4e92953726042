/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/allbin/soundcard"
	"github.com/allbin/soundcard/internal/tui/components"
	"github.com/spf13/cobra"
)

// listenCmd represents the listen command
var listenCmd = &cobra.Command{
	Use:   "listen [port]",
	Short: "Print lines received from the sound card",
	Long: `Open the sound card console and print every complete line it emits until
interrupted (Ctrl+C) or the connection is lost.

Lines are shown with a timestamp and control characters replaced. With --raw the
lines are written exactly as received, terminators included. With --output the
lines are also appended to a file, allowing captures to be resumed.

Example usage:
  soundcard listen /dev/ttyACM0
  soundcard listen -p /dev/ttyACM0 --output codec.log
  soundcard listen /dev/ttyACM0 --raw > dump.txt`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := loadSettings()
		log, closeLog := openLogger(s)
		defer closeLog()

		port, err := resolvePort(s, args)
		if err != nil {
			fail("%v", err)
		}

		outputPath, _ := cmd.Flags().GetString("output")
		raw, _ := cmd.Flags().GetBool("raw")

		var capture io.Writer
		if outputPath != "" {
			file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				fail("failed to open output file: %v", err)
			}
			defer file.Close()
			capture = file
		}

		tr, err := openTransport(s, port, log)
		if err != nil {
			fail("%v", err)
		}
		defer tr.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "%s Connected to %s at %d baud\n", successStyle.Render("✓"), port, s.Baud)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop\n\n")

		start := time.Now()
		n, err := listen(ctx, tr, s.PollInterval, cmd.OutOrStdout(), capture, raw)
		fmt.Fprintf(os.Stderr, "\n%d lines received in %v\n", n, time.Since(start).Round(time.Millisecond))
		if err != nil {
			fail("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().StringP("output", "o", "", "Also append received lines to this file")
	listenCmd.Flags().Bool("raw", false, "Print lines exactly as received, no timestamps")
}

// listen drains tr every poll until ctx is done or the connection drops,
// returning the number of lines received.
func listen(ctx context.Context, tr *soundcard.Transport, poll time.Duration, out, capture io.Writer, raw bool) (int, error) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	count := 0
	for {
		for _, line := range tr.DrainLines() {
			count++
			if raw {
				fmt.Fprint(out, line)
			} else {
				fmt.Fprintf(out, "%s %s\n", echoStyle.Render(time.Now().Format("15:04:05.000")), components.DisplayLine(line))
			}

			if capture != nil {
				entry := components.LogEntry{Timestamp: time.Now(), Kind: components.EntryReceived, Text: line}
				if _, err := fmt.Fprintf(capture, "%s %s\n", entry.Timestamp.Format(time.RFC3339), components.Plain(entry)); err != nil {
					return count, fmt.Errorf("write error: %w", err)
				}
			}
		}

		if !tr.IsOpen() {
			return count, errConnectionLost
		}

		select {
		case <-ctx.Done():
			return count, nil
		case <-ticker.C:
		}
	}
}
