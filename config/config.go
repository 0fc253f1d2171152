package config

import (
	"errors"
	"fmt"

	"github.com/prasetyowira/bsqr/constant"
	"github.com/spf13/viper"
)

// Config holds the service settings
type Config struct {
	Port        int
	CacheSize   int
	LogLevel    string
	Environment string
	// ResourceDir overrides the bundled logo artwork when set
	ResourceDir string
	// PresetFile is a TOML render preset applied to every request when set
	PresetFile string
}

// IsProduction reports whether the service runs in production mode
func (c Config) IsProduction() bool {
	return c.Environment == constant.EnvProduction
}

// LoadConfig reads bsqr.yaml from the working directory when present,
// then lets environment variables override it
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("cache_size", 1000)
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", constant.EnvDevelopment)
	v.SetDefault("resource_dir", "")
	v.SetDefault("preset_file", "")

	v.SetConfigName("bsqr")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := Config{
		Port:        v.GetInt("port"),
		CacheSize:   v.GetInt("cache_size"),
		LogLevel:    v.GetString("log_level"),
		Environment: v.GetString("environment"),
		ResourceDir: v.GetString("resource_dir"),
		PresetFile:  v.GetString("preset_file"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}
