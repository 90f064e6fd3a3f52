// Package cliconfig resolves cmd/smctpd's runtime configuration by merging
// built-in defaults, an optional YAML config file, SMCTPD_-prefixed
// environment variables, and command-line flags, in increasing precedence —
// the same layering teabranch-matlas-cli's internal/config.Load performs.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the fully-resolved configuration for one `smctpd` invocation.
type Config struct {
	Workflow string  `mapstructure:"workflow"`
	VMCount  int     `mapstructure:"vmCount"`
	CCR      float64 `mapstructure:"ccr"`
	Seed     int64   `mapstructure:"seed"`
	Output   string  `mapstructure:"output"`
}

// DefaultConfigDir is the default directory under the user's home for
// smctpd config files.
const DefaultConfigDir = ".smctpd"

// New returns a Config populated with built-in defaults.
func New() *Config {
	return &Config{
		Workflow: "diamond",
		VMCount:  3,
		CCR:      1.0,
		Seed:     1,
		Output:   "text",
	}
}

// Load merges defaults, an optional YAML file, SMCTPD_ environment
// variables, and cmd's bound flags (in that increasing precedence order).
// Pass nil for cmd to skip flag binding (e.g. in tests).
func Load(cmd *cobra.Command, explicitPath string) (*Config, error) {
	cfg := New()
	v := viper.New()

	v.SetDefault("workflow", cfg.Workflow)
	v.SetDefault("vmCount", cfg.VMCount)
	v.SetDefault("ccr", cfg.CCR)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("output", cfg.Output)

	if explicitPath == "" {
		explicitPath = os.Getenv("SMCTPD_CONFIG_FILE")
	}
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, DefaultConfigDir))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SMCTPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		_ = v.BindPFlags(cmd.Flags())
		_ = v.BindPFlags(cmd.PersistentFlags())

		// Flag names use CLI dash-case; struct tags use camelCase. Bind the
		// ones that differ explicitly, the way matlas-cli's loader does for
		// "project-id" -> "projectId".
		bind := func(key, flagName string) {
			if f := cmd.Flags().Lookup(flagName); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
		bind("vmCount", "vm-count")
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration's invariants.
func (c *Config) Validate() error {
	if c.VMCount < 1 {
		return fmt.Errorf("cliconfig: vmCount must be >= 1, got %d", c.VMCount)
	}
	if c.CCR < 0 {
		return fmt.Errorf("cliconfig: ccr must be non-negative, got %g", c.CCR)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("cliconfig: unsupported output format %q, want text or json", c.Output)
	}
	return nil
}
