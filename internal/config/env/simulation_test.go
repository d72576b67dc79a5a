package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSimulationConfig(t *testing.T) {
	cfg, err := parseSimulationConfig([]byte(`
simulation:
  defaults:
    p: 0
    flips: 10
    trials: 5
  limits:
    max_flips: 500
    max_trials: 20
  histogram_bins: 8
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.DefaultP() != 0 || cfg.DefaultFlips() != 10 || cfg.DefaultTrials() != 5 {
		t.Fatalf("defaults = %v %d %d", cfg.DefaultP(), cfg.DefaultFlips(), cfg.DefaultTrials())
	}
	if cfg.MaxFlips() != 500 || cfg.MaxTrials() != 20 || cfg.HistogramBins() != 8 {
		t.Fatalf("limits = %d %d bins %d", cfg.MaxFlips(), cfg.MaxTrials(), cfg.HistogramBins())
	}
}

func TestParseSimulationConfig_PartialFallsBack(t *testing.T) {
	cfg, err := parseSimulationConfig([]byte("simulation:\n  histogram_bins: 30\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.DefaultP() != 0.5 || cfg.DefaultFlips() != 100 || cfg.DefaultTrials() != 50 {
		t.Fatalf("defaults = %v %d %d", cfg.DefaultP(), cfg.DefaultFlips(), cfg.DefaultTrials())
	}
	if cfg.MaxFlips() != 10000 || cfg.MaxTrials() != 1000 || cfg.HistogramBins() != 30 {
		t.Fatalf("limits = %d %d bins %d", cfg.MaxFlips(), cfg.MaxTrials(), cfg.HistogramBins())
	}
}

func TestParseSimulationConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"p out of range":     "simulation:\n  defaults:\n    p: 1.5\n",
		"flips over limit":   "simulation:\n  defaults:\n    flips: 200\n  limits:\n    max_flips: 100\n",
		"trials over limit":  "simulation:\n  limits:\n    max_trials: 10\n",
		"negative bins":      "simulation:\n  histogram_bins: -1\n",
		"malformed document": "simulation: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseSimulationConfig([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewSimulationConfigFromYAML(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewSimulationConfigFromYAML(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg.HistogramBins() != 20 {
		t.Fatalf("bins = %d, want 20", cfg.HistogramBins())
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  histogram_bins: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewSimulationConfigFromYAML(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if cfg.HistogramBins() != 12 {
		t.Fatalf("bins = %d, want 12", cfg.HistogramBins())
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv(configPathEnvName, "")
	if got := ConfigPath("config.yaml"); got != "config.yaml" {
		t.Fatalf("got %q", got)
	}
	t.Setenv(configPathEnvName, "/etc/coin_sim.yaml")
	if got := ConfigPath("config.yaml"); got != "/etc/coin_sim.yaml" {
		t.Fatalf("got %q", got)
	}
}
