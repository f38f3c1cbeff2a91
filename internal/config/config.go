package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. COURSELOAD_SERVER_ADDR.
const EnvPrefix = "COURSELOAD"

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type CourseConfig struct {
	DefaultWeeks int `mapstructure:"default_weeks"`
}

// Config holds everything the CLI and server read at startup.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Course CourseConfig `mapstructure:"course"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		Server: ServerConfig{Addr: ":8080"},
		Course: CourseConfig{DefaultWeeks: 15},
	}
}

// DefaultPath is $HOME/.courseload/config.yaml, or "" when the home
// directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".courseload", "config.yaml")
}

// Load layers defaults, the config file and COURSELOAD_* environment
// variables. An empty path reads DefaultPath if it exists; an explicit
// path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("course.default_weeks", def.Course.DefaultWeeks)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if p := DefaultPath(); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return Config{}, fmt.Errorf("reading config %s: %w", p, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Course.DefaultWeeks <= 0 {
		return fmt.Errorf("course.default_weeks must be positive, got %d", c.Course.DefaultWeeks)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr must not be empty")
	}
	return nil
}

// SetConfigFile bypasses viper's search path, so a missing file surfaces as
// an fs error rather than ConfigFileNotFoundError.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
