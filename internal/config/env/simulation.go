package env

import (
	"coin_sim/internal/config"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const configPathEnvName = "CONFIG_PATH"

// Defaults mirror the ranges of the input form
const (
	defaultP             = 0.5
	defaultFlips         = 100
	defaultTrials        = 50
	defaultMaxFlips      = 10000
	defaultMaxTrials     = 1000
	defaultHistogramBins = 20
)

type simulationFile struct {
	Simulation struct {
		Defaults struct {
			P      *float64 `yaml:"p"`
			Flips  int      `yaml:"flips"`
			Trials int      `yaml:"trials"`
		} `yaml:"defaults"`
		Limits struct {
			MaxFlips  int `yaml:"max_flips"`
			MaxTrials int `yaml:"max_trials"`
		} `yaml:"limits"`
		HistogramBins int `yaml:"histogram_bins"`
	} `yaml:"simulation"`
}

type simulationConfig struct {
	p             float64
	flips         int
	trials        int
	maxFlips      int
	maxTrials     int
	histogramBins int
}

// ConfigPath returns CONFIG_PATH or the given fallback
func ConfigPath(fallback string) string {
	if p := os.Getenv(configPathEnvName); len(p) != 0 {
		return p
	}
	return fallback
}

// NewDefaultSimulationConfig returns the built-in defaults without reading any file
func NewDefaultSimulationConfig() config.SimulationConfig {
	return &simulationConfig{
		p:             defaultP,
		flips:         defaultFlips,
		trials:        defaultTrials,
		maxFlips:      defaultMaxFlips,
		maxTrials:     defaultMaxTrials,
		histogramBins: defaultHistogramBins,
	}
}

// NewSimulationConfigFromYAML reads the simulation section of the config file.
// A missing file yields the built-in defaults; missing keys fall back individually.
func NewSimulationConfigFromYAML(path string) (config.SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultSimulationConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseSimulationConfig(data)
}

func parseSimulationConfig(data []byte) (config.SimulationConfig, error) {
	var f simulationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := NewDefaultSimulationConfig().(*simulationConfig)
	s := f.Simulation
	if s.Defaults.P != nil {
		cfg.p = *s.Defaults.P
	}
	if s.Defaults.Flips != 0 {
		cfg.flips = s.Defaults.Flips
	}
	if s.Defaults.Trials != 0 {
		cfg.trials = s.Defaults.Trials
	}
	if s.Limits.MaxFlips != 0 {
		cfg.maxFlips = s.Limits.MaxFlips
	}
	if s.Limits.MaxTrials != 0 {
		cfg.maxTrials = s.Limits.MaxTrials
	}
	if s.HistogramBins != 0 {
		cfg.histogramBins = s.HistogramBins
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *simulationConfig) validate() error {
	if cfg.p < 0 || cfg.p > 1 {
		return fmt.Errorf("defaults.p must be within [0, 1], got %v", cfg.p)
	}
	if cfg.maxFlips < 1 || cfg.maxTrials < 1 {
		return errors.New("limits must be positive")
	}
	if cfg.flips < 1 || cfg.flips > cfg.maxFlips {
		return fmt.Errorf("defaults.flips must be within [1, %d], got %d", cfg.maxFlips, cfg.flips)
	}
	if cfg.trials < 1 || cfg.trials > cfg.maxTrials {
		return fmt.Errorf("defaults.trials must be within [1, %d], got %d", cfg.maxTrials, cfg.trials)
	}
	if cfg.histogramBins < 1 {
		return fmt.Errorf("histogram_bins must be positive, got %d", cfg.histogramBins)
	}
	return nil
}

func (cfg *simulationConfig) DefaultP() float64 {
	return cfg.p
}

func (cfg *simulationConfig) DefaultFlips() int {
	return cfg.flips
}

func (cfg *simulationConfig) DefaultTrials() int {
	return cfg.trials
}

func (cfg *simulationConfig) MaxFlips() int {
	return cfg.maxFlips
}

func (cfg *simulationConfig) MaxTrials() int {
	return cfg.maxTrials
}

func (cfg *simulationConfig) HistogramBins() int {
	return cfg.histogramBins
}
