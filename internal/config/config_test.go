package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/George-Madeley/Tools/internal/errors"
	"github.com/George-Madeley/Tools/internal/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.Format != models.DefaultFormatScheme {
		t.Errorf("Format = %q, want %q", cfg.Format, models.DefaultFormatScheme)
	}
	if cfg.Separator != "\n\n\n" {
		t.Errorf("Separator = %q", cfg.Separator)
	}
	if cfg.Indent != "\t" {
		t.Errorf("Indent = %q", cfg.Indent)
	}
	if cfg.Backend != "cli" {
		t.Errorf("Backend = %q, want cli", cfg.Backend)
	}
	if cfg.Jobs != 1 {
		t.Errorf("Jobs = %d, want 1", cfg.Jobs)
	}
	if cfg.QueryTimeout != 30*time.Second {
		t.Errorf("QueryTimeout = %v, want 30s", cfg.QueryTimeout)
	}
	if cfg.Clipboard != "auto" {
		t.Errorf("Clipboard = %q, want auto", cfg.Clipboard)
	}
	if cfg.Logging.Level != "WARN" {
		t.Errorf("Logging.Level = %q, want WARN", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		modify    func(c *Config)
		wantParam string
	}{
		"valid":                      {modify: func(c *Config) {}},
		"valid grouped gogit":        {modify: func(c *Config) { c.Group = true; c.Backend = "gogit"; c.Jobs = 4 }},
		"zero hours":                 {modify: func(c *Config) { c.Hours = 0 }, wantParam: "hours"},
		"negative hours":             {modify: func(c *Config) { c.Hours = -1 }, wantParam: "hours"},
		"branch with group":          {modify: func(c *Config) { c.Group = true; c.Branch = "main" }, wantParam: "branch"},
		"empty format":               {modify: func(c *Config) { c.Format = "" }, wantParam: "format"},
		"empty separator":            {modify: func(c *Config) { c.Separator = "" }, wantParam: "separator"},
		"unknown backend":            {modify: func(c *Config) { c.Backend = "libgit2" }, wantParam: "backend"},
		"zero jobs":                  {modify: func(c *Config) { c.Jobs = 0 }, wantParam: "jobs"},
		"negative timeout":           {modify: func(c *Config) { c.QueryTimeout = -time.Second }, wantParam: "query_timeout"},
		"unknown clipboard":          {modify: func(c *Config) { c.Clipboard = "xclip" }, wantParam: "clipboard"},
		"unknown log level":          {modify: func(c *Config) { c.Logging.Level = "TRACE" }, wantParam: "logging.level"},
		"clipboard case-insensitive": {modify: func(c *Config) { c.Clipboard = "OSC52" }},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Hours = 24
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantParam == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var ce *errors.ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if ce.Parameter != tc.wantParam {
				t.Errorf("Parameter = %q, want %q", ce.Parameter, tc.wantParam)
			}
			if !errors.Is(err, errors.ErrInvalidConfiguration) {
				t.Error("ConfigError should match ErrInvalidConfiguration")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `author: alice
hours: 48
group: true
jobs: 3
query_timeout: 5s
backend: gogit
clipboard: none
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Author != "alice" || cfg.Hours != 48 || !cfg.Group || cfg.Jobs != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Errorf("QueryTimeout = %v, want 5s", cfg.QueryTimeout)
	}
	if cfg.Backend != "gogit" || cfg.Clipboard != "none" {
		t.Errorf("Backend = %q, Clipboard = %q", cfg.Backend, cfg.Clipboard)
	}
	// values not in the file keep their defaults
	if cfg.Format != models.DefaultFormatScheme || cfg.Indent != "\t" {
		t.Errorf("Format = %q, Indent = %q", cfg.Format, cfg.Indent)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestAggregatorConfig(t *testing.T) {
	cfg := Default()
	cfg.Jobs = 6
	cfg.Indent = "  "

	agg := cfg.AggregatorConfig()
	if agg.Jobs != 6 || agg.Indent != "  " || agg.FormatScheme != cfg.Format || agg.Separator != cfg.Separator {
		t.Errorf("AggregatorConfig() = %+v", agg)
	}
}

func TestBranchRef(t *testing.T) {
	cfg := Default()
	if cfg.BranchRef() != nil {
		t.Error("no branch should mean all refs")
	}

	cfg.Branch = "origin/main"
	ref := cfg.BranchRef()
	if ref == nil || ref.Name != "origin/main" {
		t.Errorf("BranchRef() = %v", ref)
	}
}

func TestConfigDir(t *testing.T) {
	if filepath.Base(ConfigDir()) != "commitmsg" {
		t.Errorf("ConfigDir() = %q", ConfigDir())
	}
}
