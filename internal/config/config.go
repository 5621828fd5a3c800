package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matrixsh/matrix"
)

// EnvPrefix is the prefix of environment overrides, e.g. MATRIXSH_LOG_LEVEL.
const EnvPrefix = "MATRIXSH"

// Log formats understood by the logging package.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is returned when a loaded value is out of its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds interpreter configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Limits LimitsConfig `mapstructure:"limits"`
	Load   LoadConfig   `mapstructure:"load"`
}

// LogConfig holds diagnostic logging settings. Logs always go to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LimitsConfig holds allocation limits.
type LimitsConfig struct {
	MaxElements int `mapstructure:"max_elements"`
}

// LoadConfig controls how `load` resolves file names.
type LoadConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

// RegisterFlags adds the command-line flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (toml, yaml or json)")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error")
	fs.String("log-format", "", "log format: text or json")
	fs.Int("max-elements", 0, "maximum number of elements in one matrix")
	fs.String("base-dir", "", "directory relative load paths are resolved against")
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"max-elements": "limits.max_elements",
	"base-dir":     "load.base_dir",
}

// Load reads configuration from defaults, file, env and flags (in increasing
// precedence). Env var overrides use prefix MATRIXSH_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", FormatText)
	v.SetDefault("limits.max_elements", matrix.DefaultMaxElements)
	v.SetDefault("load.base_dir", "")

	cfgPath := os.Getenv(EnvPrefix + "_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	explicit := cfgPath != ""
	if explicit {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "matrixsh"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	// A missing default config file is fine; an explicit one must be readable.
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
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Limits.MaxElements <= 0 {
		return fmt.Errorf("%w: limits.max_elements %d", ErrInvalid, c.Limits.MaxElements)
	}
	return nil
}
