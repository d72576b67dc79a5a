package converter

import (
	dto "coin_sim/internal/api/dto/simulation"
	"coin_sim/internal/model"
	"fmt"
)

func ToSimulationParameters(req dto.RunRequest) model.SimulationParameters {
	return model.SimulationParameters{
		P:      req.P,
		N:      req.N,
		Trials: req.Trials,
		Seed:   req.Seed,
	}
}

func ToRunResponse(report model.Report, includeFlips bool) dto.RunResponse {
	return dto.RunResponse{
		P:           report.Params.P,
		N:           report.Params.N,
		Trials:      report.Params.Trials,
		Seed:        report.Seed,
		SingleTrial: toSingleTrial(report.SingleTrial, includeFlips),
		Repeated:    report.Repeated.HeadsCounts,
		Histogram:   toHistogram(report.Histogram),
		Theoretical: ToTheoreticalSummary(report.Theoretical),
	}
}

func toSingleTrial(res model.SingleTrialResult, includeFlips bool) dto.SingleTrial {
	out := dto.SingleTrial{
		Counts: []dto.OutcomeCount{
			{Outcome: model.Heads.String(), Count: res.Heads},
			{Outcome: model.Tails.String(), Count: res.Tails},
		},
	}
	if includeFlips {
		out.Flips = make([]string, len(res.Flips))
		for i, f := range res.Flips {
			out.Flips[i] = f.String()
		}
	}
	return out
}

func toHistogram(h model.Histogram) dto.Histogram {
	bins := make([]dto.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = dto.HistogramBin{
			Lo:      b.Lo,
			Hi:      b.Hi,
			Count:   b.Count,
			Density: b.Density,
		}
	}
	return dto.Histogram{Bins: bins, Total: h.Total}
}

func ToTheoreticalSummary(d model.TheoreticalDistribution) dto.TheoreticalSummary {
	return dto.TheoreticalSummary{
		PMF:             d.PMF,
		Expected:        d.Expected,
		Variance:        d.Variance,
		ExpectedDisplay: FormatStat(d.Expected),
		VarianceDisplay: FormatStat(d.Variance),
	}
}

func ToDistributionResponse(d model.TheoreticalDistribution) dto.DistributionResponse {
	return dto.DistributionResponse{
		N:           d.N,
		P:           d.P,
		Theoretical: ToTheoreticalSummary(d),
	}
}

func ToDefaultsResponse(params model.SimulationParameters, limits model.Limits) dto.DefaultsResponse {
	return dto.DefaultsResponse{
		P:         params.P,
		N:         params.N,
		Trials:    params.Trials,
		MaxFlips:  limits.MaxFlips,
		MaxTrials: limits.MaxTrials,
	}
}

// FormatStat renders expected value and variance with two decimals
func FormatStat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
