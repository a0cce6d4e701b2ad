package config

import (
	// Stdlib
	"os"
	"path/filepath"

	// Internal
	"github.com/kwokoek/git-cleaner/errs"
)

// LocalConfigFilename is the filename of the repository-specific
// configuration file, placed in the directory being cleaned.
const LocalConfigFilename = ".git-cleaner.yml"

// ReadLocalConfig reads and parses the configuration file in repoDir.
// A missing file is treated as an empty configuration.
func ReadLocalConfig(repoDir string) (*Config, error) {
	task := "Read and parse the local configuration file"

	var local Config
	if err := readAndUnmarshalConfig(LocalConfigFileAbsolutePath(repoDir), &local); err != nil {
		if os.IsNotExist(errs.RootCause(err)) {
			return &Config{}, nil
		}
		return nil, errs.NewError(task, err)
	}
	return &local, nil
}

func LocalConfigFileAbsolutePath(repoDir string) string {
	return filepath.Join(repoDir, LocalConfigFilename)
}
