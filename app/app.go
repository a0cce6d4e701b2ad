package app

import (
	// Internal
	"github.com/kwokoek/git-cleaner/app/appflags"
	"github.com/kwokoek/git-cleaner/config"
	"github.com/kwokoek/git-cleaner/log"
)

// Init sets up logging and loads the configuration for repoDir.
// The command line flags are applied on top of the configuration files.
func Init(repoDir string) (*config.Config, error) {
	// Set up logging.
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))

	// Load the configuration files.
	cfg, err := config.Load(repoDir)
	if err != nil {
		return nil, err
	}

	// Overlay the flags.
	fromFlags := &config.Config{
		Exclude: appflags.FlagExclude.Patterns(),
	}
	if appflags.FlagSkipMalformed {
		skip := true
		fromFlags.SkipMalformed = &skip
	}
	return config.Merge(cfg, fromFlags), nil
}
