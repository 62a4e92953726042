/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/allbin/soundcard/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "soundcard",
	Short: "Control an SGTL5000 sound card over its serial console",
	Long: `Control an SGTL5000-based sound card through the line-oriented command
console its firmware exposes on a serial port.

Commands are single text lines terminated by CR LF (help, dumpregs, version,
seteqprofile, seteq, setvolume, setbassenhance, setsurround). Responses are
printed as they arrive; the protocol has no request/response correlation.

Settings come from flags, $HOME/.soundcard.yaml (or --config) and SOUNDCARD_*
environment variables, in that order of precedence.

Example usage:
  soundcard list --filter usb
  soundcard codec volume 42 -p /dev/ttyACM0
  soundcard send "seteq 3 -3 0 12 -12" -p /dev/ttyACM0
  soundcard connect /dev/ttyACM0`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.soundcard.yaml)")

	flags := rootCmd.PersistentFlags()
	flags.StringP(config.KeyPort, "p", "", "Serial port, e.g. /dev/ttyACM0")
	flags.IntP(config.KeyBaud, "b", config.DefaultBaud, "Baud rate")
	flags.String(config.KeyTerminator, `\r\n`, `Line terminator appended to commands (escapes \r \n \t)`)
	flags.String(config.KeyCharset, "utf-8", "Wire charset: utf-8, ascii, latin1, windows-1252")
	flags.String(config.KeyDriver, "native", "Serial driver: native, bugst")
	flags.Duration(config.KeyReadTimeout, 100*time.Millisecond, "Read poll timeout, a multiple of 100ms")
	flags.Duration(config.KeyCloseTimeout, 500*time.Millisecond, "How long closing waits for the reader")
	flags.Duration(config.KeyPollInterval, 100*time.Millisecond, "How often received lines are collected")
	flags.Bool(config.KeySyncWrite, false, "Enable synchronous writes (O_SYNC, native driver only)")
	flags.String(config.KeyLogLevel, "info", "Log level: panic..trace or 0-6")
	flags.String(config.KeyLogFile, "", "Write logs to this file instead of stderr")

	config.SetDefaults(viper.GetViper())
	cobra.CheckErr(config.Bind(viper.GetViper(), flags))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".soundcard" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".soundcard")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		os.Exit(1)
	}
}
