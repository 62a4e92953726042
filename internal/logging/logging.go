// Package logging builds the logrus loggers used by the CLI and the console.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
)

// ParseLevel accepts a logrus level name or a number from 0 (panic) to 6 (trace)
func ParseLevel(s string) (logrus.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return logrus.InfoLevel, nil
	}

	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && fmt.Sprint(n) == s {
		if n < int(logrus.PanicLevel) || n > int(logrus.TraceLevel) {
			return 0, fmt.Errorf("log level %d out of range 0-6", n)
		}
		return logrus.Level(n), nil
	}

	return logrus.ParseLevel(s)
}

// New returns a logger writing prefixed text to out. Colors are only used when
// out is a terminal.
func New(level logrus.Level, out io.Writer) *logrus.Entry {
	logrus.ErrorKey = "$error"

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(out)

	formatter := new(prefixed.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	formatter.PrefixPadding = 20
	formatter.SpacePadding = 50
	if !isTerminal(out) {
		formatter.DisableColors = true
	}
	logger.SetFormatter(formatter)

	return logrus.NewEntry(logger)
}

// Discard returns a logger that drops everything
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// Open resolves the log destination. An empty path means stderr. The returned
// close function is never nil.
func Open(level, path string) (*logrus.Entry, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		return New(lvl, os.Stderr), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(lvl, f), f.Close, nil
}

// Component tags entries with the prefix shown by the formatter
func Component(log *logrus.Entry, name string) *logrus.Entry {
	return log.WithField("prefix", name)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
