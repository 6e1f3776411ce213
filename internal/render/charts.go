package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"outbreak/internal/stats"
)

var barStyle = chart.Style{
	FillColor:   drawing.ColorFromHex("1f77b4"),
	StrokeColor: drawing.ColorFromHex("1f77b4"),
	StrokeWidth: 1,
}

// BarChart renders counts as a PNG bar chart with one labelled bar per count.
func BarChart(w io.Writer, title string, labels []string, counts []int) error {
	if len(counts) == 0 || len(labels) != len(counts) {
		return fmt.Errorf("%s: %d labels for %d counts", title, len(labels), len(counts))
	}
	top := 1
	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		top = max(top, c)
		bars[i] = chart.Value{Label: labels[i], Value: float64(c), Style: barStyle}
	}
	bc := chart.BarChart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      max(640, 24*len(bars)),
		Height:     480,
		BarWidth:   20,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%d", int(f))
				}
				return ""
			},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

// TicksHistogram draws one bar per tick count between the shortest and longest run.
func TicksHistogram(w io.Writer, agg *stats.Aggregate) error {
	ticks := agg.Ticks()
	if len(ticks) == 0 {
		return fmt.Errorf("no runs recorded")
	}
	lo, hi := ticks[0], ticks[0]
	for _, t := range ticks {
		lo, hi = min(lo, t), max(hi, t)
	}
	hist := agg.TickHistogram()
	var labels []string
	var counts []int
	for t := lo; t <= hi; t++ {
		labels = append(labels, fmt.Sprintf("%d", t))
		counts = append(counts, hist[t])
	}
	return BarChart(w, fmt.Sprintf("Distribution of Max Human Age over %d Simulations", len(ticks)), labels, counts)
}

// AverageAgeHistogram bins the per-run mean human age.
func AverageAgeHistogram(w io.Writer, agg *stats.Aggregate, bins int) error {
	ages := agg.AverageAges()
	counts, edges := stats.Bins(ages, max(bins, 1))
	if len(counts) == 0 {
		return fmt.Errorf("no runs with humans recorded")
	}
	labels := make([]string, len(edges))
	for i, e := range edges {
		labels[i] = fmt.Sprintf("%.1f", e)
	}
	return BarChart(w, fmt.Sprintf("Distribution of Average Human Age over %d Simulations", agg.Runs()), labels, counts)
}
