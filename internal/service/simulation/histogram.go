package simulation

import (
	"coin_sim/internal/model"
	"fmt"
	"math"
	"slices"

	"go-hep.org/x/hep/hbook"
)

// BuildHistogram bins values into equal-width bins over the observed range.
// The last bin is closed on the right. Constant data gets the range [v-0.5, v+0.5].
func BuildHistogram(values []int, bins int) (*model.Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: bins must be at least 1, got %d", model.ErrInvalidParameter, bins)
	}
	if len(values) == 0 {
		return &model.Histogram{}, nil
	}

	h := NewH1D(values, bins)
	r := histRange(values)
	width := (r.hi - r.lo) / float64(bins)
	total := len(values)

	out := &model.Histogram{
		Bins:  make([]model.HistogramBin, bins),
		Total: total,
	}
	for i, b := range h.Binning.Bins {
		count := int(math.Round(b.SumW()))
		out.Bins[i] = model.HistogramBin{
			Lo:      r.lo + float64(i)*width,
			Hi:      r.lo + float64(i+1)*width,
			Count:   count,
			Density: float64(count) / (float64(total) * width),
		}
	}
	out.Bins[bins-1].Hi = r.hi

	return out, nil
}

// NewH1D fills an hbook histogram with values over their observed range; values must not be empty.
// hbook bins are half-open, so the maximum is filled at the middle of the last bin.
func NewH1D(values []int, bins int) *hbook.H1D {
	r := histRange(values)
	last := r.hi - (r.hi-r.lo)/float64(bins)/2
	h := hbook.NewH1D(bins, r.lo, r.hi)
	for _, v := range values {
		x := float64(v)
		if x >= r.hi {
			x = last
		}
		h.Fill(x, 1)
	}
	return h
}

type valueRange struct {
	lo, hi float64
}

func histRange(values []int) valueRange {
	lo, hi := float64(slices.Min(values)), float64(slices.Max(values))
	if lo == hi {
		return valueRange{lo: lo - 0.5, hi: hi + 0.5}
	}
	return valueRange{lo: lo, hi: hi}
}
