// Package config loads intmat settings from defaults, a TOML file and
// INTMAT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. INTMAT_OUTPUT_FORMAT.
const EnvPrefix = "INTMAT"

// EnvConfigPath names the variable that points at an explicit config file.
const EnvConfigPath = "INTMAT_CONFIG"

// Prompt modes.
const (
	PromptsAuto   = "auto"
	PromptsAlways = "always"
	PromptsNever  = "never"
)

// Output formats.
const (
	FormatPlain = "plain"
	FormatGrid  = "grid"
)

// Config holds application configuration.
type Config struct {
	Session    SessionConfig    `mapstructure:"session"`
	Output     OutputConfig     `mapstructure:"output"`
	Arithmetic ArithmeticConfig `mapstructure:"arithmetic"`
	Limits     LimitsConfig     `mapstructure:"limits"`
	Exit       ExitConfig       `mapstructure:"exit"`
}

// SessionConfig controls the interactive dialogue.
type SessionConfig struct {
	Prompts string `mapstructure:"prompts"`
}

// OutputConfig controls how products are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ArithmeticConfig selects the overflow policy ("checked" or "wrap32").
type ArithmeticConfig struct {
	Overflow string `mapstructure:"overflow"`
}

// LimitsConfig bounds what the console accepts.
type LimitsConfig struct {
	MaxDim     int  `mapstructure:"max_dim"`
	Int32Input bool `mapstructure:"int32_input"`
}

// ExitConfig maps outcomes to process exit codes.
type ExitConfig struct {
	MismatchCode int `mapstructure:"mismatch_code"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Session:    SessionConfig{Prompts: PromptsAuto},
		Output:     OutputConfig{Format: FormatPlain, Color: true},
		Arithmetic: ArithmeticConfig{Overflow: "checked"},
		Limits:     LimitsConfig{MaxDim: 1000, Int32Input: true},
		Exit:       ExitConfig{MismatchCode: 1},
	}
}

// DefaultPath is where Load looks when neither a path nor INTMAT_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "intmat", "config.toml")
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("session.prompts", d.Session.Prompts)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("arithmetic.overflow", d.Arithmetic.Overflow)
	v.SetDefault("limits.max_dim", d.Limits.MaxDim)
	v.SetDefault("limits.int32_input", d.Limits.Int32Input)
	v.SetDefault("exit.mismatch_code", d.Exit.MismatchCode)
}

// Load reads configuration from file and env. An explicit path (argument or
// INTMAT_CONFIG) must exist; the default path is optional.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Session.Prompts = strings.ToLower(strings.TrimSpace(c.Session.Prompts))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Arithmetic.Overflow = strings.ToLower(strings.TrimSpace(c.Arithmetic.Overflow))

	return c, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() []error {
	var errs []error

	switch c.Session.Prompts {
	case PromptsAuto, PromptsAlways, PromptsNever:
	default:
		errs = append(errs, fmt.Errorf("'session.prompts' must be one of auto|always|never, got %q", c.Session.Prompts))
	}
	switch c.Output.Format {
	case FormatPlain, FormatGrid:
	default:
		errs = append(errs, fmt.Errorf("'output.format' must be one of plain|grid, got %q", c.Output.Format))
	}
	switch c.Arithmetic.Overflow {
	case "checked", "wrap32":
	default:
		errs = append(errs, fmt.Errorf("'arithmetic.overflow' must be one of checked|wrap32, got %q", c.Arithmetic.Overflow))
	}
	if c.Limits.MaxDim < 1 {
		errs = append(errs, fmt.Errorf("'limits.max_dim' must be >= 1, got %d", c.Limits.MaxDim))
	}
	if c.Exit.MismatchCode < 0 || c.Exit.MismatchCode > 125 {
		errs = append(errs, fmt.Errorf("'exit.mismatch_code' must be in [0, 125], got %d", c.Exit.MismatchCode))
	}

	return errs
}

// Save writes cfg to path as TOML, creating the directory if needed.
// An empty path selects INTMAT_CONFIG or DefaultPath().
func Save(cfg Config, path string) (string, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("session.prompts", cfg.Session.Prompts)
	v.Set("output.format", cfg.Output.Format)
	v.Set("output.color", cfg.Output.Color)
	v.Set("arithmetic.overflow", cfg.Arithmetic.Overflow)
	v.Set("limits.max_dim", cfg.Limits.MaxDim)
	v.Set("limits.int32_input", cfg.Limits.Int32Input)
	v.Set("exit.mismatch_code", cfg.Exit.MismatchCode)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}
