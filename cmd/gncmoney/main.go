// Package main provides the gncmoney command, which inspects and computes
// monetary amounts the way the bookkeeping ledger stores them.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/bookkeep/money"
	"github.com/bookkeep/money/fraction"
	"github.com/bookkeep/money/internal/config"
)

// app holds the state shared by all subcommands once the configuration is loaded.
type app struct {
	flagConfig string
	flagLocale string
	flagLevel  string

	stderr io.Writer
	log    zerolog.Logger
	reg    *money.Registry
	tag    language.Tag
	codec  *fraction.Codec
}

func (a *app) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.flagConfig, "config", "c", "", "YAML config file path")
	fs.StringVarP(&a.flagLocale, "locale", "l", "", "BCP 47 locale used for formatting, overrides the config")
	fs.StringVar(&a.flagLevel, "level", "", "log output level, overrides the config")
}

// setup loads the configuration and builds the logger, the registry and the codec.
func (a *app) setup() error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	if a.flagLocale != "" {
		cfg.Locale = a.flagLocale
	}
	if a.flagLevel != "" {
		cfg.LogLevel = a.flagLevel
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	a.log = zerolog.New(a.stderr).With().Timestamp().Logger().Level(level)

	a.tag, err = cfg.Tag()
	if err != nil {
		return err
	}
	a.reg, err = cfg.Registry(a.log)
	if err != nil {
		return err
	}
	a.codec = fraction.NewCodec(a.reg, a.log)
	a.log.Debug().
		Str("config", a.flagConfig).
		Str("locale", a.tag.String()).
		Str("default", a.reg.Default().Code()).
		Msg("configuration loaded")
	return nil
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}
	rootCmd := &cobra.Command{
		Use:           "gncmoney",
		Short:         "Inspects and computes exact monetary amounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	a.addFlags(rootCmd.PersistentFlags())
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(
		showCommand(a),
		fractionCommand(a),
		calcCommand(a),
		splitCommand(a),
		encodeCommand(a),
		decodeCommand(a),
	)
	return rootCmd
}

func main() {
	err := newRootCommand(os.Stderr).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
