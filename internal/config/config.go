package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SimulationConfig interface {
	DefaultP() float64
	DefaultFlips() int
	DefaultTrials() int
	MaxFlips() int
	MaxTrials() int
	HistogramBins() int
}

type HTTPConfig interface {
	Address() string
}
