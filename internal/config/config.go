package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the yang CLI configuration.
type Config struct {
	// Dir is the directory holding one document per collection.
	Dir         string   `mapstructure:"dir"`
	Format      string   `mapstructure:"format"`
	Lang        string   `mapstructure:"lang"`
	Collections []string `mapstructure:"collections"`
}

// Load reads the configuration from path, or from yang.yaml/yang.yml in the
// working directory when path is empty. A missing default file is not an
// error. Environment variables prefixed with YANG_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("dir", ".")
	v.SetDefault("format", "yaml")
	v.SetDefault("lang", "en")
	v.SetDefault("collections", []string{})

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("yang")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("yang")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Format) {
	case "yaml", "yml", "json":
	default:
		return fmt.Errorf("format must be yaml or json, got: %s", cfg.Format)
	}
	switch cfg.Lang {
	case "en", "ja":
	default:
		return fmt.Errorf("lang must be en or ja, got: %s", cfg.Lang)
	}
	if cfg.Dir == "" {
		return errors.New("dir must not be empty")
	}
	return nil
}
