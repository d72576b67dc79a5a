package simulation

type RunRequest struct {
	P            float64 `json:"p"`                       // Probability of heads, [0, 1]
	N            int     `json:"n"`                       // Flips per trial
	Trials       int     `json:"trials"`                  // Number of repeated trials
	Seed         *uint64 `json:"seed,omitempty"`          // Fixed seed, random when omitted
	IncludeFlips bool    `json:"include_flips,omitempty"` // Return the single trial flip sequence
}

type RunResponse struct {
	P           float64            `json:"p"`
	N           int                `json:"n"`
	Trials      int                `json:"trials"`
	Seed        uint64             `json:"seed"` // Seed actually used, resubmit it to reproduce the run
	SingleTrial SingleTrial        `json:"single_trial"`
	Repeated    []int              `json:"repeated"` // Heads count of every trial
	Histogram   Histogram          `json:"histogram"`
	Theoretical TheoreticalSummary `json:"theoretical"`
}

type SingleTrial struct {
	Counts []OutcomeCount `json:"counts"`
	Flips  []string       `json:"flips,omitempty"`
}

type OutcomeCount struct {
	Outcome string `json:"outcome"` // HEADS or TAILS
	Count   int    `json:"count"`
}

type Histogram struct {
	Bins  []HistogramBin `json:"bins"`
	Total int            `json:"total"`
}

type HistogramBin struct {
	Lo      float64 `json:"lo"`
	Hi      float64 `json:"hi"`
	Count   int     `json:"count"`
	Density float64 `json:"density"` // count / (total * width)
}

type TheoreticalSummary struct {
	PMF             []float64 `json:"pmf"` // P(X=k), k = 0..n
	Expected        float64   `json:"expected"`
	Variance        float64   `json:"variance"`
	ExpectedDisplay string    `json:"expected_display"` // Two decimals
	VarianceDisplay string    `json:"variance_display"` // Two decimals
}

type DistributionResponse struct {
	N           int                `json:"n"`
	P           float64            `json:"p"`
	Theoretical TheoreticalSummary `json:"theoretical"`
}

type DefaultsResponse struct {
	P         float64 `json:"p"`
	N         int     `json:"n"`
	Trials    int     `json:"trials"`
	MaxFlips  int     `json:"max_flips"`
	MaxTrials int     `json:"max_trials"`
}
