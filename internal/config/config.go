// Package config loads scalist configuration with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete scalist configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Scale ScaleConfig `mapstructure:"scale"`
}

// UIConfig controls the interactive panel.
type UIConfig struct {
	// Presets are the quick amount values cycled through in the panel,
	// matching the original tool's preset buttons.
	Presets []float64 `mapstructure:"presets"`
	// SliderMin/SliderMax bound the displayed amount range.
	SliderMin float64 `mapstructure:"slider_min"`
	SliderMax float64 `mapstructure:"slider_max"`
}

// ScaleConfig controls scaling defaults and limits.
type ScaleConfig struct {
	// DefaultAmount is the neutral scale factor.
	DefaultAmount float64 `mapstructure:"default_amount"`
	// FieldMin/FieldMax are the hard bounds on any amount input.
	FieldMin float64 `mapstructure:"field_min"`
	FieldMax float64 `mapstructure:"field_max"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			Presets:   []float64{-1, 0.25, 0.5, 0.75, 0.9, 1.0, 1.1, 1.25, 1.5, 1.75, 2.0},
			SliderMin: -2.0,
			SliderMax: 5.0,
		},
		Scale: ScaleConfig{
			DefaultAmount: 1.0,
			FieldMin:      -10.0,
			FieldMax:      10.0,
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Defaults()

	viper.SetDefault("ui.presets", defaults.UI.Presets)
	viper.SetDefault("ui.slider_min", defaults.UI.SliderMin)
	viper.SetDefault("ui.slider_max", defaults.UI.SliderMax)
	viper.SetDefault("scale.default_amount", defaults.Scale.DefaultAmount)
	viper.SetDefault("scale.field_min", defaults.Scale.FieldMin)
	viper.SetDefault("scale.field_max", defaults.Scale.FieldMax)
}

// Load reads the configuration file if present and unmarshals it over the
// defaults. A missing file is not an error.
func Load(configFile string) (Config, error) {
	SetDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "scalist"))
		}

		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Only an explicitly named file is required to exist.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
