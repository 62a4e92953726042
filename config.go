package soundcard

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// WriteMode represents the write synchronization mode
type WriteMode int

const (
	WriteModeBuffered WriteMode = iota // Default: kernel buffers writes
	WriteModeSynced                    // O_SYNC: writes block until hardware transmission
)

// Driver selects the serial backend used by the default opener
type Driver int

const (
	DriverNative Driver = iota // raw termios over golang.org/x/sys/unix
	DriverBugst                // go.bug.st/serial
)

func (d Driver) String() string {
	switch d {
	case DriverNative:
		return "native"
	case DriverBugst:
		return "bugst"
	default:
		return "unknown"
	}
}

// ParseDriver maps a driver name to a Driver
func ParseDriver(name string) (Driver, error) {
	switch name {
	case "", "native":
		return DriverNative, nil
	case "bugst":
		return DriverBugst, nil
	default:
		return 0, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, name)
	}
}

const (
	// DefaultTerminator ends every outgoing command line.
	DefaultTerminator = "\r\n"

	minReadTimeout = 100 * time.Millisecond
	maxReadTimeout = 255 * 100 * time.Millisecond
)

// Config holds the configuration for a Transport
type Config struct {
	ReadTimeout  time.Duration // Per-read poll timeout; bounds how long Close waits for the reader
	CloseTimeout time.Duration // Upper bound on joining the reader goroutine
	ReadSize     int           // Bytes requested per read
	Charset      Charset       // Wire encoding for both directions
	Driver       Driver
	WriteMode    WriteMode
	Opener       Opener // Overrides Driver when set
	Logger       *logrus.Entry
}

// Option is a functional option for configuring a Transport
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return Config{
		ReadTimeout:  100 * time.Millisecond,
		CloseTimeout: 500 * time.Millisecond,
		ReadSize:     256,
		Charset:      UTF8,
		Driver:       DriverNative,
		WriteMode:    WriteModeBuffered,
		Logger:       logrus.NewEntry(logger),
	}
}

// WithReadTimeout sets the read poll timeout, a whole number of tenths of a
// second between 100ms and 25.5s. Shorter timeouts would spin the reader.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < minReadTimeout || timeout > maxReadTimeout || timeout%(100*time.Millisecond) != 0 {
			return ErrInvalidConfig
		}
		c.ReadTimeout = timeout
		return nil
	}
}

// WithCloseTimeout sets how long Close waits for the reader goroutine
func WithCloseTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return ErrInvalidConfig
		}
		c.CloseTimeout = timeout
		return nil
	}
}

// WithReadSize sets the maximum number of bytes requested per read
func WithReadSize(size int) Option {
	return func(c *Config) error {
		if size < 1 {
			return ErrInvalidConfig
		}
		c.ReadSize = size
		return nil
	}
}

// WithCharset sets the wire charset by name
func WithCharset(name string) Option {
	return func(c *Config) error {
		cs, err := LookupCharset(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.Charset = cs
		return nil
	}
}

// WithDriver selects the serial backend
func WithDriver(d Driver) Option {
	return func(c *Config) error {
		if d != DriverNative && d != DriverBugst {
			return ErrInvalidConfig
		}
		c.Driver = d
		return nil
	}
}

// WithSyncWrite enables synchronous writes (O_SYNC) for guaranteed transmission
func WithSyncWrite() Option {
	return func(c *Config) error {
		c.WriteMode = WriteModeSynced
		return nil
	}
}

// WithOpener replaces the driver with a custom device opener
func WithOpener(o Opener) Option {
	return func(c *Config) error {
		if o == nil {
			return ErrInvalidConfig
		}
		c.Opener = o
		return nil
	}
}

// WithLogger sets the logger used for session and fault reporting
func WithLogger(l *logrus.Entry) Option {
	return func(c *Config) error {
		if l == nil {
			return ErrInvalidConfig
		}
		c.Logger = l
		return nil
	}
}
