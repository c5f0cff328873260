// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Encoding  string `mapstructure:"encoding" yaml:"encoding"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		LineBreak string `mapstructure:"line_break" yaml:"line_break"`
	} `mapstructure:"csv" yaml:"csv"`

	OFX struct {
		CloseTag bool              `mapstructure:"close_tag" yaml:"close_tag"`
		Headers  map[string]string `mapstructure:"headers" yaml:"headers"`
	} `mapstructure:"ofx" yaml:"ofx"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then FID2OFX_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fid2ofx")
	v.AddConfigPath(".fid2ofx")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FID2OFX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. The CSV block describes the
// bank's export format; the OFX block mirrors the header values the bank's
// own OFX exports used to carry.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.encoding", "latin1")
	v.SetDefault("csv.delimiter", ";")
	v.SetDefault("csv.line_break", "\r\n")

	v.SetDefault("ofx.close_tag", true)
	v.SetDefault("ofx.headers", map[string]string{
		"OFXHEADER":   "100",
		"DATA":        "OFXSGML",
		"VERSION":     "102",
		"SECURITY":    "NONE",
		"ENCODING":    "UTF-8",
		"CHARSET":     "1252",
		"COMPRESSION": "NONE",
		"OLDFILEUID":  "NONE",
		"NEWFILEUID":  "NONE",
	})
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.CSV.Encoding == "" {
		return fmt.Errorf("CSV encoding must not be empty")
	}

	if config.CSV.LineBreak == "" {
		return fmt.Errorf("CSV line break must not be empty")
	}
	if _, err := regexp.Compile(config.CSV.LineBreak); err != nil {
		return fmt.Errorf("CSV line break is not a valid pattern: %w", err)
	}

	return nil
}

// Save writes the active configuration as a YAML file, creating parent
// directories as needed. Useful to seed ~/.fid2ofx/config.yaml from the
// built-in defaults.
func Save(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
