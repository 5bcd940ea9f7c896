// Package config loads forcelayout's tunable parameters.
//
// Values come from, in increasing precedence: built-in defaults, a TOML
// config file, and FORCELAYOUT_* environment variables. The CLI applies
// its flags on top of the loaded Config.
//
//	cfg, err := config.Load("")           // search ./forcelayout.toml and ConfigDir()
//	opts := cfg.PipelineOptions()
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/matzehuels/forcelayout/pkg/pipeline"
	"github.com/matzehuels/forcelayout/pkg/simulation"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. FORCELAYOUT_SIMULATION_CHARGE.
	EnvPrefix = "FORCELAYOUT"

	// FileName is the config file name searched for without extension.
	FileName = "forcelayout"
)

// Config represents the complete forcelayout configuration
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation" toml:"simulation"`
	Layout     LayoutConfig     `mapstructure:"layout" toml:"layout"`
}

// SimulationConfig controls the force model and the convergence loop
type SimulationConfig struct {
	// Stiffness scales the spring force toward the center
	Stiffness float64 `mapstructure:"stiffness" toml:"stiffness"`
	// Charge is cubed to give the repulsion strength between node pairs
	Charge float64 `mapstructure:"charge" toml:"charge"`
	// MinMovement is the convergence threshold on total movement per step
	MinMovement float64 `mapstructure:"min_movement" toml:"min_movement"`
	// StepDelayMs is the pause between steps in milliseconds (negative = none)
	StepDelayMs int `mapstructure:"step_delay_ms" toml:"step_delay_ms"`
	// MaxSteps bounds the number of steps of one run
	MaxSteps int `mapstructure:"max_steps" toml:"max_steps"`
	// Workers bounds concurrent per-node tasks (0 = one goroutine per node)
	Workers int `mapstructure:"workers" toml:"workers"`
	// Window is the number of recent speeds kept for diagnostics
	Window int `mapstructure:"window" toml:"window"`
}

// LayoutConfig controls the content frame and initial placement
type LayoutConfig struct {
	Width  float64 `mapstructure:"width" toml:"width"`
	Height float64 `mapstructure:"height" toml:"height"`
	Seed   uint64  `mapstructure:"seed" toml:"seed"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Stiffness:   simulation.DefaultStiffness,
			Charge:      simulation.DefaultCharge,
			MinMovement: simulation.DefaultMinMovement,
			StepDelayMs: int(pipeline.DefaultStepDelay / time.Millisecond),
			MaxSteps:    pipeline.DefaultMaxSteps,
			Workers:     0,
			Window:      simulation.DefaultWindow,
		},
		Layout: LayoutConfig{
			Width:  pipeline.DefaultWidth,
			Height: pipeline.DefaultHeight,
			Seed:   pipeline.DefaultSeed,
		},
	}
}

// StepDelay returns the step delay as a time.Duration
func (c *SimulationConfig) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMs) * time.Millisecond
}

// SetDefaults registers every default with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// Simulation defaults
	v.SetDefault("simulation.stiffness", defaults.Simulation.Stiffness)
	v.SetDefault("simulation.charge", defaults.Simulation.Charge)
	v.SetDefault("simulation.min_movement", defaults.Simulation.MinMovement)
	v.SetDefault("simulation.step_delay_ms", defaults.Simulation.StepDelayMs)
	v.SetDefault("simulation.max_steps", defaults.Simulation.MaxSteps)
	v.SetDefault("simulation.workers", defaults.Simulation.Workers)
	v.SetDefault("simulation.window", defaults.Simulation.Window)

	// Layout defaults
	v.SetDefault("layout.width", defaults.Layout.Width)
	v.SetDefault("layout.height", defaults.Layout.Height)
	v.SetDefault("layout.seed", defaults.Layout.Seed)
}

// NewViper returns a viper instance with defaults and environment
// overrides registered. If path is empty, the working directory and
// ConfigDir() are searched for forcelayout.toml.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}
	return v
}

// Load reads the configuration into a Config struct and validates it.
// A missing config file is only an error when path names it explicitly.
// Validation failures carry ErrCodeInvalidConfig and unwrap to
// ValidationErrors.
func Load(path string) (*Config, error) {
	return LoadViper(NewViper(path), path != "")
}

// LoadViper reads v's config file (if any), unmarshals and validates.
func LoadViper(v *viper.Viper, requireFile bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && !requireFile:
			// no config file; defaults and environment apply
		case errors.Is(err, os.ErrNotExist) && !requireFile:
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs).AsError()
	}

	return &cfg, nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// PipelineOptions converts the config into layout run options
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Stiffness:   c.Simulation.Stiffness,
		Charge:      c.Simulation.Charge,
		MinMovement: c.Simulation.MinMovement,
		StepDelay:   c.Simulation.StepDelay(),
		MaxSteps:    c.Simulation.MaxSteps,
		Workers:     c.Simulation.Workers,
		Window:      c.Simulation.Window,
		Width:       c.Layout.Width,
		Height:      c.Layout.Height,
		Seed:        c.Layout.Seed,
	}
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "forcelayout")
	}
	// Fall back to ~/.config/forcelayout
	home, err := os.UserHomeDir()
	if err != nil {
		return ".forcelayout"
	}
	return filepath.Join(home, ".config", "forcelayout")
}

// ConfigFile returns the path to the user config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), FileName+".toml")
}
