/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/allbin/soundcard"
	"github.com/allbin/soundcard/codec"
	"github.com/allbin/soundcard/internal/config"
	"github.com/allbin/soundcard/internal/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	errNotConnected   = errors.New("Not connected")
	errConnectionLost = errors.New("connection lost")
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	echoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// fail prints an error the way every command reports one and exits
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSettings resolves flags, the config file and the environment
func loadSettings() config.Settings {
	s, err := config.Load(viper.GetViper())
	if err != nil {
		fail("%v", err)
	}
	return s
}

// openLogger returns the CLI logger; the close function flushes a log file
func openLogger(s config.Settings) (*logrus.Entry, func() error) {
	log, closeLog, err := logging.Open(s.LogLevel, s.LogFile)
	if err != nil {
		fail("%v", err)
	}
	return logging.Component(log, "transport"), closeLog
}

// resolvePort picks the positional port argument over --port
func resolvePort(s config.Settings, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if s.Port != "" {
		return s.Port, nil
	}
	return "", errors.New("no port given (use --port, SOUNDCARD_PORT or the config file)")
}

// openTransport builds a transport from s and opens port
func openTransport(s config.Settings, port string, log *logrus.Entry) (*soundcard.Transport, error) {
	tr, err := s.NewTransport(log)
	if err != nil {
		return nil, err
	}
	if err := tr.Open(port, s.Baud, s.Terminator); err != nil {
		return nil, err
	}
	return tr, nil
}

// exchange writes line and collects whatever arrives within wait, polling the
// queue every poll.
func exchange(tr *soundcard.Transport, line string, wait, poll time.Duration) ([]string, error) {
	if !tr.IsOpen() {
		return nil, errNotConnected
	}

	tr.WriteLine(line)

	var lines []string
	deadline := time.Now().Add(wait)
	for {
		lines = append(lines, tr.DrainLines()...)
		if !tr.IsOpen() {
			return lines, errConnectionLost
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return lines, nil
		}
		time.Sleep(min(poll, remaining))
	}
}

// printResponses writes each received line without its terminator, colored by kind
func printResponses(w io.Writer, lines []string) {
	for _, line := range lines {
		text := strings.TrimRight(line, "\r\n")
		switch codec.Classify(line) {
		case codec.ResponseError:
			text = errorStyle.Render(text)
		case codec.ResponseEcho:
			text = echoStyle.Render(text)
		}
		fmt.Fprintf(w, "< %s\n", text)
	}
}

// runCommand is the shared body of send and the codec subcommands: open, send
// one line, print the responses collected within wait.
func runCommand(w io.Writer, args []string, line string, wait time.Duration) error {
	s := loadSettings()
	log, closeLog := openLogger(s)
	defer closeLog()

	port, err := resolvePort(s, args)
	if err != nil {
		return err
	}

	tr, err := openTransport(s, port, log)
	if err != nil {
		return err
	}
	defer tr.Close()

	fmt.Fprintf(w, "%s %s\n", infoStyle.Render(">"), line)

	lines, err := exchange(tr, line, wait, s.PollInterval)
	printResponses(w, lines)
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		fmt.Fprintf(w, "%s no response within %v\n", echoStyle.Render("·"), wait)
	}
	return nil
}
