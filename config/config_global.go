package config

import (
	// Stdlib
	"os"
	"path/filepath"

	// Internal
	"github.com/kwokoek/git-cleaner/app/appflags"
	"github.com/kwokoek/git-cleaner/errs"
)

const (
	// GlobalConfigFilename is the filename of the configuration file
	// that represents global user-specific configuration.
	//
	// This file is expected to be placed in the user's home directory,
	// although the location can be configured by a command line flag.
	GlobalConfigFilename = ".git-cleaner.yml"
)

// ReadGlobalConfig reads and parses the global configuration file.
//
// A missing file is treated as an empty configuration unless the path
// was set explicitly using the -config flag.
func ReadGlobalConfig() (*Config, error) {
	task := "Read and parse the global configuration file"

	path, err := GlobalConfigFileAbsolutePath()
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	var global Config
	if err := readAndUnmarshalConfig(path, &global); err != nil {
		if os.IsNotExist(errs.RootCause(err)) && appflags.FlagConfig == "" {
			return &Config{}, nil
		}
		return nil, errs.NewError(task, err)
	}
	return &global, nil
}

func GlobalConfigFileAbsolutePath() (string, error) {
	// Check the command line flag for custom path first.
	if path := appflags.FlagConfig; path != "" {
		return path, nil
	}

	// Otherwise use the default file in the user's home directory.
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalConfigFilename), nil
}
