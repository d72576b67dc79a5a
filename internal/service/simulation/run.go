package simulation

import (
	"coin_sim/internal/model"
	"coin_sim/pkg/random"
	"context"
	"fmt"
	"log"
)

// Run performs one full simulation: a single trial, the repeated trials and the
// theoretical distribution. Every call gets its own engine and random source.
func (s *serv) Run(ctx context.Context, params model.SimulationParameters) (*model.Report, error) {
	if err := s.validate(params); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var seed uint64
	if params.Seed != nil {
		seed = *params.Seed
	} else {
		var err error
		seed, err = s.newSeed()
		if err != nil {
			log.Println(err)
			return nil, fmt.Errorf("failed to seed simulation: %w", err)
		}
	}

	engine := NewEngine(random.NewSource(seed))

	// The single trial is drawn separately from the repeated batch
	single, err := engine.RunSingleTrial(params.P, params.N)
	if err != nil {
		return nil, err
	}

	repeated, err := engine.RunRepeatedTrials(params.P, params.N, params.Trials)
	if err != nil {
		return nil, err
	}

	dist, err := engine.ComputePMF(params.N, params.P)
	if err != nil {
		return nil, err
	}

	hist, err := BuildHistogram(repeated.HeadsCounts, s.cfg.HistogramBins())
	if err != nil {
		return nil, err
	}

	return &model.Report{
		Params:      params,
		Seed:        seed,
		SingleTrial: *single,
		Repeated:    *repeated,
		Histogram:   *hist,
		Theoretical: *dist,
	}, nil
}

// Distribution computes the binomial PMF without any random draws
func (s *serv) Distribution(ctx context.Context, n int, p float64) (*model.TheoreticalDistribution, error) {
	if n > s.cfg.MaxFlips() {
		return nil, fmt.Errorf("%w: n must be at most %d, got %d", model.ErrInvalidParameter, s.cfg.MaxFlips(), n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ComputePMF(n, p)
}

// Defaults returns the parameters the form starts with
func (s *serv) Defaults() model.SimulationParameters {
	return model.SimulationParameters{
		P:      s.cfg.DefaultP(),
		N:      s.cfg.DefaultFlips(),
		Trials: s.cfg.DefaultTrials(),
	}
}

func (s *serv) Limits() model.Limits {
	return model.Limits{
		MaxFlips:  s.cfg.MaxFlips(),
		MaxTrials: s.cfg.MaxTrials(),
	}
}

// validate checks the engine rules and the configured upper limits before any draw
func (s *serv) validate(params model.SimulationParameters) error {
	if err := validate(params.P, params.N); err != nil {
		return err
	}
	if params.Trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1, got %d", model.ErrInvalidParameter, params.Trials)
	}
	if params.N > s.cfg.MaxFlips() {
		return fmt.Errorf("%w: n must be at most %d, got %d", model.ErrInvalidParameter, s.cfg.MaxFlips(), params.N)
	}
	if params.Trials > s.cfg.MaxTrials() {
		return fmt.Errorf("%w: trials must be at most %d, got %d", model.ErrInvalidParameter, s.cfg.MaxTrials(), params.Trials)
	}
	return nil
}
