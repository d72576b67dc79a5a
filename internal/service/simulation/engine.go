package simulation

import (
	"coin_sim/internal/model"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// Engine draws coin flips and computes the binomial distribution.
// It holds no state besides its random source and is not safe for concurrent use.
type Engine struct {
	src rand.Source
}

func NewEngine(src rand.Source) *Engine {
	return &Engine{src: src}
}

// RunSingleTrial flips the coin n times, heads with probability p
func (e *Engine) RunSingleTrial(p float64, n int) (*model.SingleTrialResult, error) {
	if err := validate(p, n); err != nil {
		return nil, err
	}

	flip := distuv.Bernoulli{P: p, Src: e.src}
	res := &model.SingleTrialResult{Flips: make([]model.Outcome, n)}
	for i := range res.Flips {
		if flip.Rand() == 1 {
			res.Flips[i] = model.Heads
			res.Heads++
		} else {
			res.Flips[i] = model.Tails
			res.Tails++
		}
	}
	return res, nil
}

// RunRepeatedTrials draws the heads count of n flips, trials times
func (e *Engine) RunRepeatedTrials(p float64, n, trials int) (*model.RepeatedTrialsResult, error) {
	if err := validate(p, n); err != nil {
		return nil, err
	}
	if trials < 1 {
		return nil, fmt.Errorf("%w: trials must be at least 1, got %d", model.ErrInvalidParameter, trials)
	}

	counts := make([]int, trials)
	switch p {
	case 0:
		// all zeros
	case 1:
		for i := range counts {
			counts[i] = n
		}
	default:
		dist := distuv.Binomial{N: float64(n), P: p, Src: e.src}
		for i := range counts {
			counts[i] = min(max(int(dist.Rand()), 0), n)
		}
	}
	return &model.RepeatedTrialsResult{HeadsCounts: counts}, nil
}

// ComputePMF returns P(X=k) for k = 0..n together with the mean and variance.
// Coefficients are computed in log space so large n does not overflow.
func (e *Engine) ComputePMF(n int, p float64) (*model.TheoreticalDistribution, error) {
	return ComputePMF(n, p)
}

// ComputePMF is the source-free form of Engine.ComputePMF
func ComputePMF(n int, p float64) (*model.TheoreticalDistribution, error) {
	if err := validate(p, n); err != nil {
		return nil, err
	}

	pmf := make([]float64, n+1)
	switch p {
	case 0:
		pmf[0] = 1
	case 1:
		pmf[n] = 1
	default:
		logP, logQ := math.Log(p), math.Log1p(-p)
		nf := float64(n)
		for k := range pmf {
			kf := float64(k)
			lp := combin.LogGeneralizedBinomial(nf, kf) + kf*logP + (nf-kf)*logQ
			pmf[k] = math.Exp(lp)
		}
	}

	nf := float64(n)
	return &model.TheoreticalDistribution{
		N:        n,
		P:        p,
		PMF:      pmf,
		Expected: nf * p,
		Variance: nf * p * (1 - p),
	}, nil
}

func validate(p float64, n int) error {
	// NaN fails both comparisons, so test the accepted range instead
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%w: p must be within [0, 1], got %v", model.ErrInvalidParameter, p)
	}
	if n < 1 {
		return fmt.Errorf("%w: n must be at least 1, got %d", model.ErrInvalidParameter, n)
	}
	return nil
}
