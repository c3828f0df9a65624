package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Build-time defaults. Override with
//
//	go build -ldflags "-X github.com/mxgoldstein/log-current/internal/config.DefaultDirectory=/var/log"
var (
	DefaultDirectory = "/var/log"
	DefaultCommand   = "tail -f"
)

// DefaultWait is the number of seconds between the two snapshots
const DefaultWait = 2

// Listing formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the run configuration
type Config struct {
	// Watch settings
	Directory string `mapstructure:"directory"` // directory to observe
	Prefix    string `mapstructure:"prefix"`    // only names starting with this
	Suffix    string `mapstructure:"suffix"`    // only names ending with this
	Wait      int    `mapstructure:"wait"`      // seconds between snapshots

	// Selection settings
	Auto     bool   `mapstructure:"auto"`  // pick the first changed file
	ListOnly bool   `mapstructure:"list"`  // print changed files, never run a command
	Fuzzy    bool   `mapstructure:"fuzzy"` // fuzzy finder instead of numbered prompt
	Command  string `mapstructure:"command"`
	Format   string `mapstructure:"format"` // listing format: text, json, yaml

	Verbose bool `mapstructure:"verbose"`
}

// Mode represents how a changed file is selected
type Mode int

const (
	ModeInteractive Mode = iota
	ModeAuto
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeList:
		return "list"
	default:
		return "interactive"
	}
}

// Error is a configuration problem detected before any directory work
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("invalid %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("directory", DefaultDirectory)
	v.SetDefault("command", DefaultCommand)
	v.SetDefault("wait", DefaultWait)
	v.SetDefault("prefix", "")
	v.SetDefault("suffix", "")
	v.SetDefault("auto", false)
	v.SetDefault("list", false)
	v.SetDefault("fuzzy", false)
	v.SetDefault("format", FormatText)
	v.SetDefault("verbose", false)

	// LOGCURRENT_DIRECTORY, LOGCURRENT_COMMAND, ...
	v.SetEnvPrefix("LOGCURRENT")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Err: err}
	}

	return &cfg, nil
}

// Validate checks values that the flag parser cannot
func (c *Config) Validate() error {
	if c.Wait < 0 {
		return &Error{Key: "wait", Err: fmt.Errorf("must be a non-negative number of seconds (got: %d)", c.Wait)}
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	case "":
		c.Format = FormatText
	default:
		return &Error{Key: "format", Err: fmt.Errorf("must be one of: text, json, yaml (got: %s)", c.Format)}
	}
	if c.Directory == "" {
		return &Error{Key: "directory", Err: fmt.Errorf("must not be empty")}
	}
	return nil
}

// GetMode returns the selection mode. Listing wins over auto selection.
func (c *Config) GetMode() Mode {
	switch {
	case c.ListOnly:
		return ModeList
	case c.Auto:
		return ModeAuto
	default:
		return ModeInteractive
	}
}

// Contradictory reports whether a command was requested together with --list
func (c *Config) Contradictory(commandSet bool) bool {
	return c.ListOnly && commandSet
}

// DirectoryPath returns the watched directory terminated by a path separator
func (c *Config) DirectoryPath() string {
	return NormalizeDirectory(c.Directory)
}

// FullPath joins the watched directory and an entry name
func (c *Config) FullPath(name string) string {
	return c.DirectoryPath() + name
}

// ShouldWatchFile determines if a directory entry is eligible by name
func (c *Config) ShouldWatchFile(name string) bool {
	if isHidden(name) {
		return false
	}
	if c.Prefix != "" && !strings.HasPrefix(name, c.Prefix) {
		return false
	}
	if c.Suffix != "" && !strings.HasSuffix(name, c.Suffix) {
		return false
	}
	return true
}

// NormalizeDirectory appends a path separator if dir lacks one
func NormalizeDirectory(dir string) string {
	if dir == "" {
		return dir
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

// isHidden covers dot files as well as . and ..
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
