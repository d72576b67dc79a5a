package render

import (
	"coin_sim/internal/converter"
	"coin_sim/internal/model"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
)

const (
	graphHeight = 12
	graphWidth  = 70
)

// WriteText prints the report the way the web page lays it out:
// the single trial, the histogram, the overlay and the theoretical moments.
func WriteText(w io.Writer, report *model.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Single trial (%d flips)\n", report.Params.N)
	fmt.Fprintf(tw, "%s\t%d\n", model.Heads, report.SingleTrial.Heads)
	fmt.Fprintf(tw, "%s\t%d\n", model.Tails, report.SingleTrial.Tails)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Distribution over %d trials (heads count)\n", report.Params.Trials)
	fmt.Fprintln(tw, "range\tcount\tdensity")
	for _, b := range report.Histogram.Bins {
		fmt.Fprintf(tw, "[%.2f, %.2f)\t%d\t%.4f\n", b.Lo, b.Hi, b.Count, b.Density)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, OverlayGraph(report))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Theoretical values")
	fmt.Fprintf(w, "Expected: %s\n", converter.FormatStat(report.Theoretical.Expected))
	fmt.Fprintf(w, "Variance: %s\n", converter.FormatStat(report.Theoretical.Variance))
	return nil
}

// OverlayGraph draws the binomial PMF (red) against the observed relative frequency of each heads count (blue)
func OverlayGraph(report *model.Report) string {
	return asciigraph.PlotMany(
		[][]float64{EmpiricalFrequencies(report.Repeated.HeadsCounts, report.Params.N), report.Theoretical.PMF},
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption("simulation (blue) vs binomial PMF (red)"),
	)
}

// EmpiricalFrequencies returns the share of trials that ended with k heads, k = 0..n
func EmpiricalFrequencies(counts []int, n int) []float64 {
	freq := make([]float64, n+1)
	if len(counts) == 0 {
		return freq
	}
	step := 1 / float64(len(counts))
	for _, k := range counts {
		if k >= 0 && k <= n {
			freq[k] += step
		}
	}
	return freq
}
