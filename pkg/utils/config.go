package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const envPrefix = "VECTOR3"

// Config represents the CLI configuration
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Angles AnglesConfig `yaml:"angles" mapstructure:"angles"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format    string `yaml:"format" mapstructure:"format"`
	Precision int    `yaml:"precision" mapstructure:"precision"` // -1 prints the shortest exact form
}

// AnglesConfig selects the unit for angle inputs and outputs
type AnglesConfig struct {
	Degrees bool `yaml:"degrees" mapstructure:"degrees"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: -1,
		},
		Angles: AnglesConfig{
			Degrees: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns $HOME/.vector3/config.yaml
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".vector3", "config.yaml"), nil
}

// LoadConfig loads configuration from path, or searches the default
// locations when path is empty. A missing file in the default locations
// yields the default configuration; environment variables prefixed with
// VECTOR3_ override file values.
func LoadConfig(path string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".vector3"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, "", fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}

	return &config, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("output.format", config.Output.Format)
	v.SetDefault("output.precision", config.Output.Precision)
	v.SetDefault("angles.degrees", config.Angles.Degrees)
	v.SetDefault("log.level", config.Log.Level)
}

// SaveConfig writes the configuration as YAML to path
func SaveConfig(config *Config, path string) error {
	if err := ValidateConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ValidateConfig checks the configuration for unknown formats and levels
func ValidateConfig(config *Config) error {
	switch config.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format: %s", config.Output.Format)
	}

	if config.Output.Precision < -1 {
		return fmt.Errorf("output precision must be -1 or non-negative, got %d", config.Output.Precision)
	}

	if _, err := zerolog.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	return nil
}

// AngleUnit returns the name of the configured angle unit
func (c *Config) AngleUnit() string {
	if c.Angles.Degrees {
		return "deg"
	}
	return "rad"
}
