package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"mongouri/internal/common"
	"mongouri/internal/connstring"
)

// Config holds all configuration for the application.
type Config struct {
	// Connection string configuration.
	URI string

	// Bulk mode configuration.
	InputFile  string
	OutputFile string

	// Connection check configuration.
	ConnectTimeout time.Duration
	MaxRetries     int

	// Application configuration.
	MetricsAddr string
	AutoApprove bool
}

// Load loads configuration from environment variables and config file.
func (c *Config) Load() error {
	v := viper.New()

	// Set default values.
	v.SetDefault("connect_timeout", "10s")
	v.SetDefault("max_retries", 3)
	v.SetDefault("metrics_addr", "")

	// Read from environment variables.
	v.SetEnvPrefix("MONGOURI")
	v.AutomaticEnv()

	// Read from config file if it exists.
	home, err := os.UserHomeDir()
	if err != nil {
		return &common.FileIOError{Op: "get user home dir", Reason: err.Error(), Err: err}
	}
	configPath := filepath.Join(home, ".mongouri")
	v.AddConfigPath(configPath)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		// Ignore error if config file doesn't exist, but wrap other errors.
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return &common.FileIOError{Op: "read config file", Reason: err.Error(), Err: err}
		}
	}

	// Only set values if they are not already set by flags.
	if c.URI == "" {
		c.URI = v.GetString("uri")
	}
	if c.InputFile == "" {
		c.InputFile = v.GetString("input_file")
	}
	if c.OutputFile == "" {
		c.OutputFile = v.GetString("output_file")
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = v.GetDuration("connect_timeout")
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = v.GetInt("max_retries")
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = v.GetString("metrics_addr")
	}
	if !c.AutoApprove {
		c.AutoApprove = v.GetBool("auto_approve")
	}

	return nil
}

// Validate checks if all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.URI == "" && c.InputFile == "" {
		return &common.ConfigError{Op: "validate", Reason: "either uri or input_file is required"}
	}
	if c.URI != "" && c.InputFile != "" {
		return &common.ConfigError{Op: "validate", Reason: "uri and input_file are mutually exclusive"}
	}
	if c.URI != "" {
		if _, err := connstring.Parse(c.URI); err != nil {
			return &common.ConfigError{Op: "validate", Reason: err.Error(), Err: err}
		}
	}
	if c.ConnectTimeout <= 0 {
		return &common.ConfigError{Op: "validate", Reason: "connect_timeout must be greater than 0"}
	}
	if c.MaxRetries <= 0 {
		return &common.ConfigError{Op: "validate", Reason: "max_retries must be greater than 0"}
	}
	return nil
}

func (c *Config) GetURI() string {
	return c.URI
}

func (c *Config) GetInputFile() string {
	return c.InputFile
}

func (c *Config) GetOutputFile() string {
	return c.OutputFile
}

func (c *Config) GetConnectTimeout() time.Duration {
	return c.ConnectTimeout
}

func (c *Config) GetMaxRetries() int {
	return c.MaxRetries
}

func (c *Config) GetMetricsAddr() string {
	return c.MetricsAddr
}

func (c *Config) GetAutoApprove() bool {
	return c.AutoApprove
}
