package config

import (
	// Stdlib
	"bytes"
	"fmt"
	"os"
	"regexp"

	// Internal
	"github.com/kwokoek/git-cleaner/errs"

	// Vendor
	"gopkg.in/yaml.v2"
)

// Config represents the content of a configuration file.
//
// Pointer fields are nil when the key is not present in the file,
// which makes it possible to tell an unset key from a false value.
type Config struct {
	// Exclude contains regular expressions matched against the branch name
	// (without the remote prefix). Matching branches are never offered.
	Exclude []string `yaml:"exclude,omitempty"`

	// SkipMalformed makes the review loop skip records that fail to parse
	// instead of aborting the whole session.
	SkipMalformed *bool `yaml:"skip_malformed,omitempty"`

	// StrictStderr treats any stderr output of a delete command as a failure.
	StrictStderr *bool `yaml:"strict_stderr,omitempty"`

	// MaxInfoWidth truncates the branch info line when set to a positive value.
	MaxInfoWidth *int `yaml:"max_info_width,omitempty"`
}

// Load reads the global configuration file and the configuration file
// placed in repoDir and merges them, the local file taking precedence.
func Load(repoDir string) (*Config, error) {
	global, err := ReadGlobalConfig()
	if err != nil {
		return nil, err
	}
	local, err := ReadLocalConfig(repoDir)
	if err != nil {
		return nil, err
	}
	merged := Merge(global, local)
	if err := merged.Validate(); err != nil {
		return nil, errs.NewError("Validate the configuration", err)
	}
	return merged, nil
}

// Merge returns a new Config where the keys set in override replace
// the keys in base. Exclude patterns are concatenated.
func Merge(base, override *Config) *Config {
	var merged Config
	for _, c := range []*Config{base, override} {
		if c == nil {
			continue
		}
		merged.Exclude = append(merged.Exclude, c.Exclude...)
		if c.SkipMalformed != nil {
			merged.SkipMalformed = c.SkipMalformed
		}
		if c.StrictStderr != nil {
			merged.StrictStderr = c.StrictStderr
		}
		if c.MaxInfoWidth != nil {
			merged.MaxInfoWidth = c.MaxInfoWidth
		}
	}
	return &merged
}

func (config *Config) Validate() error {
	for _, pattern := range config.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return &ErrKeyInvalid{"exclude", pattern}
		}
	}
	if w := config.MaxInfoWidth; w != nil && *w < 0 {
		return &ErrKeyInvalid{"max_info_width", *w}
	}
	return nil
}

func (config *Config) ExcludePatterns() ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(config.Exclude))
	for _, pattern := range config.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &ErrKeyInvalid{"exclude", pattern}
		}
		res = append(res, re)
	}
	return res, nil
}

func (config *Config) SkipMalformedRecords() bool {
	return config.SkipMalformed != nil && *config.SkipMalformed
}

// StrictStderrEnabled defaults to true.
func (config *Config) StrictStderrEnabled() bool {
	return config.StrictStderr == nil || *config.StrictStderr
}

func (config *Config) InfoWidth() int {
	if config.MaxInfoWidth == nil {
		return 0
	}
	return *config.MaxInfoWidth
}

// readAndUnmarshalConfig reads the file at path into v.
// It returns os.ErrNotExist wrapped in *errs.Error when the file is missing.
func readAndUnmarshalConfig(path string, v interface{}) error {
	task := fmt.Sprintf("Read configuration file '%v'", path)
	content, err := os.ReadFile(path)
	if err != nil {
		return errs.NewError(task, err)
	}

	task = fmt.Sprintf("Unmarshal configuration file '%v'", path)
	if err := yaml.Unmarshal(bytes.TrimSpace(content), v); err != nil {
		return errs.NewErrorWithHint(
			task, err, "Make sure the configuration file is valid YAML\n")
	}
	return nil
}
