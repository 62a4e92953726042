// Package config maps command line flags, the config file and SOUNDCARD_*
// environment variables onto transport settings.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/allbin/soundcard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Viper keys, also used as flag names
const (
	KeyPort         = "port"
	KeyBaud         = "baud"
	KeyTerminator   = "terminator"
	KeyCharset      = "charset"
	KeyDriver       = "driver"
	KeyReadTimeout  = "read-timeout"
	KeyCloseTimeout = "close-timeout"
	KeyPollInterval = "poll-interval"
	KeySyncWrite    = "sync-write"
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"

	EnvPrefix = "SOUNDCARD"
)

const DefaultBaud = 9600

// Settings is the resolved configuration shared by all commands
type Settings struct {
	Port         string        `mapstructure:"port"`
	Baud         int           `mapstructure:"baud"`
	Terminator   string        `mapstructure:"terminator"`
	Charset      string        `mapstructure:"charset"`
	Driver       string        `mapstructure:"driver"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	CloseTimeout time.Duration `mapstructure:"close-timeout"`
	PollInterval time.Duration `mapstructure:"poll-interval"`
	SyncWrite    bool          `mapstructure:"sync-write"`
	LogLevel     string        `mapstructure:"log-level"`
	LogFile      string        `mapstructure:"log-file"`
}

// SetDefaults registers the built-in defaults on v
func SetDefaults(v *viper.Viper) {
	def := soundcard.DefaultConfig()

	v.SetDefault(KeyBaud, DefaultBaud)
	v.SetDefault(KeyTerminator, `\r\n`)
	v.SetDefault(KeyCharset, def.Charset.Name())
	v.SetDefault(KeyDriver, def.Driver.String())
	v.SetDefault(KeyReadTimeout, def.ReadTimeout)
	v.SetDefault(KeyCloseTimeout, def.CloseTimeout)
	v.SetDefault(KeyPollInterval, 100*time.Millisecond)
	v.SetDefault(KeyLogLevel, "info")
}

// Bind wires flags and SOUNDCARD_* environment variables into v. Flag names
// must match the Key constants.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v.BindPFlags(flags)
}

// Load unmarshals and validates the settings held by v
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	term, err := Unescape(s.Terminator)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: terminator: %w", soundcard.ErrInvalidConfig, err)
	}
	s.Terminator = term

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks values that the transport would only reject at Open time
func (s Settings) Validate() error {
	if s.Baud <= 0 {
		return fmt.Errorf("%w: baud must be positive, got %d", soundcard.ErrInvalidConfig, s.Baud)
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive, got %v", soundcard.ErrInvalidConfig, s.PollInterval)
	}
	if _, err := soundcard.ParseDriver(s.Driver); err != nil {
		return err
	}
	if _, err := soundcard.LookupCharset(s.Charset); err != nil {
		return fmt.Errorf("%w: %w", soundcard.ErrInvalidConfig, err)
	}
	return nil
}

// TransportOptions converts the settings into transport options
func (s Settings) TransportOptions(log *logrus.Entry) []soundcard.Option {
	driver, _ := soundcard.ParseDriver(s.Driver)

	opts := []soundcard.Option{
		soundcard.WithReadTimeout(s.ReadTimeout),
		soundcard.WithCloseTimeout(s.CloseTimeout),
		soundcard.WithCharset(s.Charset),
		soundcard.WithDriver(driver),
	}
	if s.SyncWrite {
		opts = append(opts, soundcard.WithSyncWrite())
	}
	if log != nil {
		opts = append(opts, soundcard.WithLogger(log))
	}
	return opts
}

// NewTransport builds a closed transport from the settings
func (s Settings) NewTransport(log *logrus.Entry) (*soundcard.Transport, error) {
	return soundcard.NewTransport(s.TransportOptions(log)...)
}

// Unescape interprets \r, \n, \t and \\ in a terminator given on the command
// line or in the config file.
func Unescape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("trailing backslash in %q", s)
		}
		i++
		switch s[i] {
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", fmt.Errorf("unknown escape \\%c in %q", s[i], s)
		}
	}
	return b.String(), nil
}

// Escape is the inverse of Unescape, for display
func Escape(s string) string {
	r := strings.NewReplacer("\\", `\\`, "\r", `\r`, "\n", `\n`, "\t", `\t`)
	return r.Replace(s)
}
