// Package config defines the runtime configuration of the loan estimator and
// the functions for loading it from YAML, the environment and dotenv files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/loan-estimator/pkg/constants"
	"github.com/iwvelando/loan-estimator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-estimator.
type Configuration struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// ServerConfig defines runtime parameters for the HTTP server.
type ServerConfig struct {
	Address         string        `yaml:"address"`
	MaxBodySize     string        `yaml:"maxBodySize"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	maxBodySize     int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Defaults for the server timeouts.
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Bodies smaller than this cannot hold a complete estimate request.
const minUsefulBodySize = 256

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Address:         constants.DefaultServerAddress,
			MaxBodySize:     constants.DefaultMaxBodySize,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			maxBodySize:     constants.DefaultMaxBodySizeBytes,
		},
		Output: OutputConfig{Format: constants.OutputFormatPretty},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults; environment
// variables prefixed with LOAN_ESTIMATOR_ override either.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r, applying the
// same defaults and environment overrides as LoadConfiguration.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("server.maxBodySize", defaults.Server.MaxBodySize)
	v.SetDefault("server.readTimeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.writeTimeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.idleTimeout", defaults.Server.IdleTimeout)
	v.SetDefault("server.shutdownTimeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", defaults.Output.Format)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := configuration.normalize(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func (c *Configuration) normalize() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		c.Server.Address = constants.DefaultServerAddress
	}

	size, err := ParseSize(c.Server.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid server.maxBodySize: %w", err)
	}
	if size <= 0 {
		size = constants.DefaultMaxBodySizeBytes
	}
	c.Server.maxBodySize = size

	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = DefaultIdleTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Logging.Level != "" {
		if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
			return err
		}
	}
	if c.Logging.Format != "" {
		if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
			return err
		}
	}

	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	return validation.ValidateOutputFormat(c.Output.Format)
}

// MaxBodySizeBytes returns the configured request body limit in bytes.
func (s ServerConfig) MaxBodySizeBytes() int64 {
	if s.maxBodySize <= 0 {
		return constants.DefaultMaxBodySizeBytes
	}
	return s.maxBodySize
}

// SetMaxBodySizeBytes overrides the configured request body limit.
func (s *ServerConfig) SetMaxBodySizeBytes(size int64) {
	if size > 0 {
		s.maxBodySize = size
		s.MaxBodySize = fmt.Sprintf("%d", size)
	}
}

// ValidateConfiguration returns warnings for settings that load but are
// unlikely to be intended.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if size := c.Server.MaxBodySizeBytes(); size < minUsefulBodySize {
		warnings = append(warnings, fmt.Sprintf(
			"server.maxBodySize of %d bytes is too small for an estimate request", size))
	}
	if c.Server.ShutdownTimeout < time.Second {
		warnings = append(warnings, fmt.Sprintf(
			"server.shutdownTimeout of %s may cut off in-flight requests", c.Server.ShutdownTimeout))
	}
	if c.Logging.OutputFile != "" && c.Logging.Format == "console" {
		warnings = append(warnings, "console log format written to a file loses colouring and structure")
	}

	return warnings
}
