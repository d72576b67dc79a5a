package model

import "errors"

// ErrInvalidParameter is returned for an out-of-range bias, flip count,
// trial count or bin count. Callers match it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Outcome of a single flip
type Outcome uint8

const (
	Tails Outcome = iota
	Heads
)

func (o Outcome) String() string {
	if o == Heads {
		return "HEADS"
	}
	return "TAILS"
}

// SimulationParameters of one run. Seed is nil when the caller wants a fresh one.
type SimulationParameters struct {
	P      float64
	N      int
	Trials int
	Seed   *uint64
}

type SingleTrialResult struct {
	Flips []Outcome
	Heads int
	Tails int
}

// RepeatedTrialsResult holds the heads count of every repeated trial in generation order
type RepeatedTrialsResult struct {
	HeadsCounts []int
}

type TheoreticalDistribution struct {
	N        int
	P        float64
	PMF      []float64 // PMF[k] = P(X=k), k = 0..N
	Expected float64
	Variance float64
}

type HistogramBin struct {
	Lo      float64
	Hi      float64
	Count   int
	Density float64
}

type Histogram struct {
	Bins  []HistogramBin
	Total int
}

// Report is everything one button press produces
type Report struct {
	Params      SimulationParameters
	Seed        uint64
	SingleTrial SingleTrialResult
	Repeated    RepeatedTrialsResult
	Histogram   Histogram
	Theoretical TheoreticalDistribution
}

type Limits struct {
	MaxFlips  int
	MaxTrials int
}
