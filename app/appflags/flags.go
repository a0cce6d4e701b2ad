package appflags

import (
	// Stdlib
	"flag"

	// Internal
	flags "github.com/kwokoek/git-cleaner/flag"
	"github.com/kwokoek/git-cleaner/log"
)

var (
	FlagConfig  string
	FlagExclude = flags.NewRegexpSetFlag()
	FlagLog     = flags.NewStringEnumFlag(
		log.LevelStrings(), log.MustLevelToString(log.Info))
	FlagSkipMalformed bool
)

// RegisterGlobalFlags registers the flags shared by the whole application.
func RegisterGlobalFlags(flags *flag.FlagSet) {
	flags.StringVar(&FlagConfig, "config", FlagConfig,
		"set custom global configuration file")
	flags.Var(FlagExclude, "exclude",
		"never offer branches matching the given regexp; can be repeated")
	flags.Var(FlagLog, "log",
		"set logging verbosity; {trace|debug|verbose|info|off}")
	flags.BoolVar(&FlagSkipMalformed, "skip_malformed", FlagSkipMalformed,
		"skip malformed branch records instead of aborting")
}
