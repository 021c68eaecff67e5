// Package cli contains the commands of the pyramid binary.
package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyramid/pkg/game/locale"
)

const (
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
	langFlag      = "lang"
	noColorFlag   = "no-color"
	dumpFlag      = "dump"
	showMapFlag   = "show-map"
	workersFlag   = "workers"
)

// NewRootCommand lets every subcommand read flags from the command line,
// environment variables prefixed with PYRAMID, or pyramid.yaml (in that order).
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetConfigName("pyramid")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PYRAMID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, path := range []string{"$HOME/.pyramid", "."} {
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cobra.CheckErr(err)
		}
	}

	cmd := &cobra.Command{
		Use:   "pyramid",
		Short: "Find a path through a pyramid map that collects its treasures",
		Long: `Find a path through a pyramid map that collects its treasures.

The search starts at the entrance and moves depth-first, preferring
treasure chambers, then lighted chambers, then dim chambers. It backtracks
out of dead ends and stops once every treasure has been collected.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", "log format: text or json")
	flags.String(logLevelFlag, "none", "log level: none, debug, info, warn or error")
	flags.String(langFlag, locale.DefaultLanguage, "language for messages: "+strings.Join(locale.Languages(), ", "))
	flags.Bool(noColorFlag, false, "disable colored output")

	MustBindPFlag(v, logFormatFlag, flags.Lookup(logFormatFlag))
	MustBindPFlag(v, logLevelFlag, flags.Lookup(logLevelFlag))
	MustBindPFlag(v, langFlag, flags.Lookup(langFlag))
	MustBindPFlag(v, noColorFlag, flags.Lookup(noColorFlag))

	cmd.AddCommand(newSolveCommand(v))
	cmd.AddCommand(newValidateCommand(v))

	return cmd
}
