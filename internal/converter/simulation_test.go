package converter

import (
	"testing"

	"coin_sim/internal/model"
)

func TestFormatStat(t *testing.T) {
	tests := map[float64]string{
		50:     "50.00",
		2.1:    "2.10",
		0.1875: "0.19",
		0:      "0.00",
	}
	for in, want := range tests {
		if got := FormatStat(in); got != want {
			t.Fatalf("FormatStat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestToRunResponse(t *testing.T) {
	report := model.Report{
		Params: model.SimulationParameters{P: 0.5, N: 3, Trials: 2},
		Seed:   9,
		SingleTrial: model.SingleTrialResult{
			Flips: []model.Outcome{model.Heads, model.Tails, model.Heads},
			Heads: 2,
			Tails: 1,
		},
		Repeated: model.RepeatedTrialsResult{HeadsCounts: []int{1, 2}},
		Theoretical: model.TheoreticalDistribution{
			N:        3,
			P:        0.5,
			PMF:      []float64{0.125, 0.375, 0.375, 0.125},
			Expected: 1.5,
			Variance: 0.75,
		},
	}

	resp := ToRunResponse(report, false)
	if resp.SingleTrial.Flips != nil {
		t.Fatalf("flips included without request: %v", resp.SingleTrial.Flips)
	}
	if resp.SingleTrial.Counts[0].Outcome != "HEADS" || resp.SingleTrial.Counts[0].Count != 2 {
		t.Fatalf("heads = %+v", resp.SingleTrial.Counts[0])
	}
	if resp.SingleTrial.Counts[1].Outcome != "TAILS" || resp.SingleTrial.Counts[1].Count != 1 {
		t.Fatalf("tails = %+v", resp.SingleTrial.Counts[1])
	}
	if resp.Theoretical.ExpectedDisplay != "1.50" || resp.Theoretical.VarianceDisplay != "0.75" {
		t.Fatalf("display = %q %q", resp.Theoretical.ExpectedDisplay, resp.Theoretical.VarianceDisplay)
	}

	resp = ToRunResponse(report, true)
	want := []string{"HEADS", "TAILS", "HEADS"}
	for i, f := range resp.SingleTrial.Flips {
		if f != want[i] {
			t.Fatalf("flips = %v, want %v", resp.SingleTrial.Flips, want)
		}
	}
}
