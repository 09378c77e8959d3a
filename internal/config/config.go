package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/George-Madeley/Tools/internal/delivery"
	"github.com/George-Madeley/Tools/internal/errors"
	"github.com/George-Madeley/Tools/internal/git"
	"github.com/George-Madeley/Tools/internal/history"
	"github.com/George-Madeley/Tools/internal/logging"
	"github.com/George-Madeley/Tools/internal/models"
)

// Config represents the complete commitmsg configuration
type Config struct {
	// Author whose commits are collected; empty means git's user.name
	Author string `mapstructure:"author"`
	// Hours is the size of the time window
	Hours int `mapstructure:"hours"`
	// Branch limits a single-ref run to one branch; empty means all refs
	Branch string `mapstructure:"branch"`
	// Group reports commits per branch instead of one merged list
	Group bool `mapstructure:"group"`
	// Repo is the repository to query
	Repo string `mapstructure:"repo"`

	// Format is the git pretty-format scheme rendered for each commit
	Format string `mapstructure:"format"`
	// Separator splits the rendered log into commits
	Separator string `mapstructure:"separator"`
	// Indent prefixes continuation lines
	Indent string `mapstructure:"indent"`

	// Backend selects how git is queried: "cli" or "gogit"
	Backend string `mapstructure:"backend"`
	// Jobs bounds concurrent branch queries in grouped mode
	Jobs int `mapstructure:"jobs"`
	// QueryTimeout bounds each git query; 0 disables it
	QueryTimeout time.Duration `mapstructure:"query_timeout"`

	// Clipboard is one of "auto", "system", "osc52", "none"
	Clipboard string `mapstructure:"clipboard"`
	// Interactive shows a full-screen preview instead of printing
	Interactive bool `mapstructure:"interactive"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Verbose forces DEBUG
	Verbose bool `mapstructure:"verbose"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Repo:         ".",
		Format:       models.DefaultFormatScheme,
		Separator:    history.DefaultSeparator,
		Indent:       history.DefaultIndent,
		Backend:      git.BackendCLI,
		Jobs:         1,
		QueryTimeout: 30 * time.Second,
		Clipboard:    delivery.ClipboardAuto,
		Logging: LoggingConfig{
			Level: logging.LevelWarn,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("author", defaults.Author)
	viper.SetDefault("hours", defaults.Hours)
	viper.SetDefault("branch", defaults.Branch)
	viper.SetDefault("group", defaults.Group)
	viper.SetDefault("repo", defaults.Repo)
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("separator", defaults.Separator)
	viper.SetDefault("indent", defaults.Indent)
	viper.SetDefault("backend", defaults.Backend)
	viper.SetDefault("jobs", defaults.Jobs)
	viper.SetDefault("query_timeout", defaults.QueryTimeout)
	viper.SetDefault("clipboard", defaults.Clipboard)
	viper.SetDefault("interactive", defaults.Interactive)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.verbose", defaults.Logging.Verbose)
}

// Load reads the configuration from viper
func Load() (*Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfiguration, err.Error())
	}
	return cfg, nil
}

// Validate checks every value that can be rejected before git is touched.
// The author is checked later, once the git default has been resolved.
func (c *Config) Validate() error {
	if c.Hours <= 0 {
		return errors.NewConfigError("hours", c.Hours, errors.New("hours must be greater than zero"))
	}
	if c.Group && c.Branch != "" {
		return errors.NewConfigError("branch", c.Branch, errors.New("cannot be combined with group"))
	}
	if c.Format == "" {
		return errors.NewConfigError("format", c.Format, errors.New("format scheme must not be empty"))
	}
	if c.Separator == "" {
		return errors.NewConfigError("separator", nil, errors.New("separator must not be empty"))
	}
	switch c.Backend {
	case git.BackendCLI, git.BackendGoGit:
	default:
		return errors.NewConfigError("backend", c.Backend, errors.Errorf("must be %q or %q", git.BackendCLI, git.BackendGoGit))
	}
	if c.Jobs < 1 {
		return errors.NewConfigError("jobs", c.Jobs, errors.New("jobs must be at least 1"))
	}
	if c.QueryTimeout < 0 {
		return errors.NewConfigError("query_timeout", c.QueryTimeout, errors.New("timeout must not be negative"))
	}
	switch strings.ToLower(c.Clipboard) {
	case delivery.ClipboardAuto, delivery.ClipboardSystem, delivery.ClipboardOSC52, delivery.ClipboardNone:
	default:
		return errors.NewConfigError("clipboard", c.Clipboard, errors.New("must be auto, system, osc52 or none"))
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return errors.NewConfigError("logging.level", c.Logging.Level, errors.New("must be DEBUG, INFO, WARN or ERROR"))
	}
	return nil
}

// AggregatorConfig returns the settings the history aggregator needs
func (c *Config) AggregatorConfig() history.AggregatorConfig {
	return history.AggregatorConfig{
		FormatScheme: c.Format,
		Separator:    c.Separator,
		Indent:       c.Indent,
		Jobs:         c.Jobs,
	}
}

// BranchRef returns the ref a single-ref run is scoped to, or nil for all
// refs. The name is handed to git as given, so "origin/main" or a tag works.
func (c *Config) BranchRef() *models.BranchRef {
	if c.Branch == "" {
		return nil
	}
	ref := models.LocalBranch(c.Branch)
	return &ref
}

// ConfigDir returns the directory holding config.yaml
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "commitmsg")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "commitmsg")
}
