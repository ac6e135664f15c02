package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	propbin "github.com/reoring/propbin"
)

// Config is the propbin CLI configuration.
type Config struct {
	Decode  DecodeConfig `mapstructure:"decode"`
	Output  OutputConfig `mapstructure:"output"`
	Workers int          `mapstructure:"workers"`
	Log     LogConfig    `mapstructure:"log"`
}

// DecodeConfig bounds the decoder.
type DecodeConfig struct {
	MaxDepth       int   `mapstructure:"max_depth"`
	MaxBytes       int64 `mapstructure:"max_bytes"`
	CollectUnknown bool  `mapstructure:"collect_unknown"`
}

// OutputConfig controls JSON rendering.
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

// LogConfig selects the zap level.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// EnvPrefix prefixes every environment override, e.g. PROPBIN_DECODE_MAX_DEPTH.
const EnvPrefix = "PROPBIN"

// Load reads propbin.yaml from the working directory or
// $HOME/.config/propbin, or from file when it is non-empty. A missing
// config file is not an error; environment variables override both.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("decode.max_depth", propbin.DefaultMaxDepth)
	v.SetDefault("decode.max_bytes", 0)
	v.SetDefault("decode.collect_unknown", false)
	v.SetDefault("output.pretty", false)
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("log.level", "info")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("propbin")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "propbin"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the codec cannot honour.
func (c *Config) Validate() error {
	if c.Decode.MaxDepth < 1 {
		return fmt.Errorf("decode.max_depth must be positive, got %d", c.Decode.MaxDepth)
	}
	if c.Decode.MaxBytes < 0 {
		return fmt.Errorf("decode.max_bytes must not be negative, got %d", c.Decode.MaxBytes)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DecodeOpt converts the decode section into codec options.
func (c *Config) DecodeOpt(log *zap.Logger) propbin.DecodeOpt {
	return propbin.DecodeOpt{
		MaxDepth:       c.Decode.MaxDepth,
		MaxBytes:       c.Decode.MaxBytes,
		CollectUnknown: c.Decode.CollectUnknown,
		Logger:         log,
	}
}

// JSONOpt converts the output section into rendering options.
func (c *Config) JSONOpt() propbin.JSONOpt {
	return propbin.JSONOpt{Pretty: c.Output.Pretty}
}

// Logger builds a production logger at the configured level, or a
// development logger when verbose is set.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.DisableStacktrace = true
	return zc.Build()
}

func parseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(s))
	return lvl, err
}
