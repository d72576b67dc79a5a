package render_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coin_sim/internal/config/env"
	"coin_sim/internal/model"
	"coin_sim/internal/render"
	"coin_sim/internal/service/simulation"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func newReport(t *testing.T, p float64, n, trials int) *model.Report {
	t.Helper()
	seed := uint64(77)
	serv := simulation.NewSimulationService(env.NewDefaultSimulationConfig(), nil)
	report, err := serv.Run(context.Background(), model.SimulationParameters{P: p, N: n, Trials: trials, Seed: &seed})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return report
}

func TestWriteText(t *testing.T) {
	report := newReport(t, 0.3, 10, 5)

	var buf bytes.Buffer
	if err := render.WriteText(&buf, report); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"HEADS", "TAILS", "Expected: 3.00", "Variance: 2.10", "Distribution over 5 trials"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output misses %q:\n%s", want, out)
		}
	}
}

func TestEmpiricalFrequencies(t *testing.T) {
	freq := render.EmpiricalFrequencies([]int{0, 2, 2, 3}, 3)
	want := []float64{0.25, 0, 0.5, 0.25}
	for k := range want {
		if math.Abs(freq[k]-want[k]) > 1e-12 {
			t.Fatalf("freq = %v, want %v", freq, want)
		}
	}
	if got := render.EmpiricalFrequencies(nil, 2); len(got) != 3 {
		t.Fatalf("empty input: got %v", got)
	}
}

func TestParseChartKind(t *testing.T) {
	for _, k := range render.ChartKinds {
		got, err := render.ParseChartKind(string(k))
		if err != nil || got != k {
			t.Fatalf("ParseChartKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := render.ParseChartKind("pie"); !errors.Is(err, render.ErrUnknownChart) {
		t.Fatalf("err = %v, want ErrUnknownChart", err)
	}
}

func TestChartPNG(t *testing.T) {
	report := newReport(t, 0.5, 100, 50)
	for _, kind := range render.ChartKinds {
		t.Run(string(kind), func(t *testing.T) {
			p, err := render.Chart(report, kind, 20)
			if err != nil {
				t.Fatalf("Chart: %v", err)
			}
			var buf bytes.Buffer
			if err := render.WritePNG(&buf, p); err != nil {
				t.Fatalf("WritePNG: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
				t.Fatal("output is not a PNG")
			}
		})
	}
}

func TestSaveCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	if err := render.SaveCharts(newReport(t, 0.7, 30, 40), 20, dir); err != nil {
		t.Fatalf("SaveCharts: %v", err)
	}
	for _, kind := range render.ChartKinds {
		if _, err := os.Stat(filepath.Join(dir, string(kind)+".png")); err != nil {
			t.Fatalf("%s chart: %v", kind, err)
		}
	}
}
