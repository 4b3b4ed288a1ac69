// Package config provides unified configuration loading for qverify.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nvandessel/qverify/internal/constants"
	"gopkg.in/yaml.v3"
)

// Config contains all qverify configuration settings.
type Config struct {
	// Simulation contains settings for verification runs.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Hardware contains inputs for the hardware runtime estimate.
	Hardware HardwareConfig `json:"hardware" yaml:"hardware"`

	// Logging contains settings for operational and check logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures verification runs.
type SimulationConfig struct {
	// Shots is the number of samples per check.
	Shots int `json:"shots" yaml:"shots"`

	// Threshold is the minimum outcome percentage for a check to pass.
	// Range: 0 to 100.
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// Seed seeds the simulator RNG. 0 means a time-based seed per run.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// HardwareConfig configures the hardware runtime estimate.
type HardwareConfig struct {
	// GateTimeMicros is the per-gate-layer duration in microseconds.
	GateTimeMicros int `json:"gate_time_us" yaml:"gate_time_us"`

	// ReadoutTimeMicros is the per-measurement duration in microseconds.
	ReadoutTimeMicros int `json:"readout_time_us" yaml:"readout_time_us"`

	// Depth is the assumed circuit depth.
	Depth int `json:"depth" yaml:"depth"`

	// Shots is the shot count assumed for the estimate.
	Shots int `json:"shots" yaml:"shots"`
}

// LoggingConfig configures qverify's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables check logging to .qverify/checks.jsonl.
	// "trace" additionally includes full count histograms.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Shots:     constants.DefaultShots,
			Threshold: constants.DefaultPassThreshold,
			Seed:      0,
		},
		Hardware: HardwareConfig{
			GateTimeMicros:    int(constants.GateTime.Microseconds()),
			ReadoutTimeMicros: int(constants.ReadoutTime.Microseconds()),
			Depth:             constants.StabilizerDepth,
			Shots:             constants.EstimateShots,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.qverify/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".qverify", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Simulation.Shots < 1 {
		return fmt.Errorf("simulation shots must be positive, got %d", c.Simulation.Shots)
	}
	if c.Simulation.Threshold < 0 || c.Simulation.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %f", c.Simulation.Threshold)
	}

	if c.Hardware.GateTimeMicros < 1 || c.Hardware.ReadoutTimeMicros < 1 {
		return fmt.Errorf("hardware gate/readout times must be positive, got %d/%d",
			c.Hardware.GateTimeMicros, c.Hardware.ReadoutTimeMicros)
	}
	if c.Hardware.Depth < 1 || c.Hardware.Shots < 1 {
		return fmt.Errorf("hardware depth and shots must be positive, got %d/%d",
			c.Hardware.Depth, c.Hardware.Shots)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("QVERIFY_SHOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Shots = n
		}
	}

	if v := os.Getenv("QVERIFY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Simulation.Threshold = f
		}
	}

	if v := os.Getenv("QVERIFY_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Simulation.Seed = n
		}
	}

	if v := os.Getenv("QVERIFY_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
