// Package render turns simulation reports into PNG charts and terminal text.
package render

import (
	"coin_sim/internal/model"
	"coin_sim/internal/service/simulation"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type ChartKind string

const (
	ChartOutcomes  ChartKind = "outcomes"
	ChartHistogram ChartKind = "histogram"
	ChartOverlay   ChartKind = "overlay"
)

var ChartKinds = []ChartKind{ChartOutcomes, ChartHistogram, ChartOverlay}

var ErrUnknownChart = errors.New("unknown chart kind")

const (
	chartWidth  = 12 * vg.Centimeter
	chartHeight = 9 * vg.Centimeter
)

var (
	skyBlue    = color.NRGBA{R: 135, G: 206, B: 235, A: 255}
	lightCoral = color.NRGBA{R: 240, G: 128, B: 128, A: 255}
	pmfRed     = color.NRGBA{R: 220, A: 255}
)

func ParseChartKind(s string) (ChartKind, error) {
	for _, k := range ChartKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChart, s)
}

// Chart builds the requested plot for report, binning repeated trials into bins
func Chart(report *model.Report, kind ChartKind, bins int) (*hplot.Plot, error) {
	switch kind {
	case ChartOutcomes:
		return outcomesChart(report.SingleTrial)
	case ChartHistogram:
		return histogramChart(report, bins)
	case ChartOverlay:
		return overlayChart(report, bins)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, kind)
	}
}

// WritePNG encodes p as a PNG image into w
func WritePNG(w io.Writer, p *hplot.Plot) error {
	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveCharts writes every chart kind as <kind>.png into dir
func SaveCharts(report *model.Report, bins int, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, kind := range ChartKinds {
		p, err := Chart(report, kind, bins)
		if err != nil {
			return err
		}
		if err := p.Save(chartWidth, chartHeight, filepath.Join(dir, string(kind)+".png")); err != nil {
			return fmt.Errorf("save %s chart: %w", kind, err)
		}
	}
	return nil
}

func outcomesChart(res model.SingleTrialResult) (*hplot.Plot, error) {
	p := hplot.New()
	p.Title.Text = "Single trial"
	p.X.Label.Text = "Outcome"
	p.Y.Label.Text = "Count"

	heads, err := plotter.NewBarChart(plotter.Values{float64(res.Heads)}, vg.Points(40))
	if err != nil {
		return nil, err
	}
	heads.Color = skyBlue

	tails, err := plotter.NewBarChart(plotter.Values{float64(res.Tails)}, vg.Points(40))
	if err != nil {
		return nil, err
	}
	tails.Color = lightCoral
	tails.XMin = 1

	p.Add(heads, tails, hplot.NewGrid())
	p.NominalX(model.Heads.String(), model.Tails.String())
	return p, nil
}

func histogramChart(report *model.Report, bins int) (*hplot.Plot, error) {
	values := report.Repeated.HeadsCounts
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no repeated trials to plot", model.ErrInvalidParameter)
	}

	p := hplot.New()
	p.Title.Text = fmt.Sprintf("%d trials", len(values))
	p.X.Label.Text = "Heads count"
	p.Y.Label.Text = "Frequency"

	hh := hplot.NewH1D(simulation.NewH1D(values, bins))
	hh.FillColor = skyBlue
	p.Add(hh, hplot.NewGrid())
	return p, nil
}

func overlayChart(report *model.Report, bins int) (*hplot.Plot, error) {
	values := report.Repeated.HeadsCounts
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no repeated trials to plot", model.ErrInvalidParameter)
	}

	p := hplot.New()
	p.Title.Text = "Simulation vs binomial"
	p.X.Label.Text = "Heads count"
	p.Y.Label.Text = "Density"

	h := simulation.NewH1D(values, bins)
	b := h.Binning.Bins[0]
	h.Scale(1 / (float64(len(values)) * b.XWidth()))

	hh := hplot.NewH1D(h)
	hh.FillColor = color.NRGBA{R: skyBlue.R, G: skyBlue.G, B: skyBlue.B, A: 153}

	pmf := report.Theoretical.PMF
	pts := make(plotter.XYs, len(pmf))
	for k, v := range pmf {
		pts[k].X = float64(k)
		pts[k].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = pmfRed
	line.Width = vg.Points(2)

	p.Add(hh, line, hplot.NewGrid())
	p.Legend.Add("Simulation", hh)
	p.Legend.Add("Binomial PMF", line)
	return p, nil
}
