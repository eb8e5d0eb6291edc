// Package config loads stamp settings from .stamp.yaml, the environment and flags.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is the per-project settings file.
	FileName = ".stamp.yaml"
	// EnvPrefix prefixes environment overrides, e.g. STAMP_HOLDER.
	EnvPrefix = "STAMP"

	// DefaultLicense is the license template used when none is configured.
	DefaultLicense = "apache"
	// DefaultLister is the tracked-file lister used when none is configured.
	DefaultLister = "go-git"

	maxParents = 4
)

// Config holds the settings shared by the commands. Keys match flag names.
type Config struct {
	Holder       string   `mapstructure:"holder"`
	Inception    int      `mapstructure:"inception"`
	License      string   `mapstructure:"license"`
	Include      []string `mapstructure:"include"`
	Exclude      []string `mapstructure:"exclude"`
	Lister       string   `mapstructure:"lister"`
	DependPrefix string   `mapstructure:"depend-prefix"`
	LenientYears bool     `mapstructure:"lenient-years"`
}

// FindConfig looks for FileName in dir and up to four of its parents.
// The search stops after the first directory holding a .git entry.
func FindConfig(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for i := 0; i <= maxParents; i++ {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false
}

// Load merges defaults, the config file at path (skipped when empty),
// STAMP_* variables and changed flags, in increasing precedence.
func Load(path string, flags *pflag.FlagSet, now time.Time) (*Config, error) {
	v := viper.New()

	v.SetDefault("license", DefaultLicense)
	v.SetDefault("lister", DefaultLister)
	v.SetDefault("inception", now.Year())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	return &cfg, nil
}
