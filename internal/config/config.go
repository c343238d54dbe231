// Package config loads the judge tooling configuration from a YAML file
// with environment variable overrides, so the same file works locally
// and under CI where secrets arrive through the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so "5s"-style values work in both YAML
// and environment overrides.
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string from YAML.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalText decodes a Go duration string from the environment.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds everything the judge CLI needs.
type Config struct {
	// WebhookURL is the Mattermost-compatible incoming webhook for
	// notifications. Empty disables them.
	WebhookURL string `yaml:"webhook_url" env:"BOJLAB_WEBHOOK_URL"`

	// TestcaseRoot is the directory holding per-problem testcase
	// subdirectories (<root>/<problem>/<case>.in|.out).
	TestcaseRoot string `yaml:"testcase_root" env:"BOJLAB_TESTCASE_ROOT"`

	// DatabasePath locates the SQLite session store.
	DatabasePath string `yaml:"database_path" env:"BOJLAB_DATABASE_PATH"`

	// ReadmePath is the README maintained by the updater.
	ReadmePath string `yaml:"readme_path" env:"BOJLAB_README_PATH"`

	// Member identifies whose submission is being judged.
	Member string `yaml:"member" env:"BOJLAB_MEMBER"`

	// CaseTimeout bounds each judged testcase.
	CaseTimeout Duration `yaml:"case_timeout" env:"BOJLAB_CASE_TIMEOUT"`

	// Debug switches the logger to development output.
	Debug bool `yaml:"debug" env:"BOJLAB_DEBUG"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TestcaseRoot: "testcases",
		DatabasePath: "bojlab.db",
		ReadmePath:   "README.md",
		CaseTimeout:  Duration(5 * time.Second),
	}
}

// Load reads the YAML file at path (missing file is fine, defaults apply)
// and then applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults + env only
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.CaseTimeout < 0 {
		return Config{}, fmt.Errorf("case_timeout must not be negative")
	}
	return cfg, nil
}
