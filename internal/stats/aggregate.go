// Package stats folds end-of-run summaries from many seeds into the numbers the
// plots are drawn from: ticks survived, average human age and age by start cell.
package stats

import (
	"fmt"
	"math"
	"sort"

	"outbreak/internal/outbreak"
)

type HeatmapMode string

const (
	Average HeatmapMode = "average"
	Max     HeatmapMode = "max"
	Min     HeatmapMode = "min"
)

type runStat struct {
	done     bool
	ticks    int
	avgAge   float64
	hasHuman bool
}

// Aggregate is filled by run index, so the result is the same whatever order
// runs finish in. It is not safe for concurrent use.
type Aggregate struct {
	Size        int
	runs        []runStat
	agesByStart map[outbreak.Cell][]int
}

func New(size, runs int) *Aggregate {
	return &Aggregate{
		Size:        size,
		runs:        make([]runStat, runs),
		agesByStart: map[outbreak.Cell][]int{},
	}
}

func (a *Aggregate) Add(run int, s outbreak.Summary) error {
	if run < 0 || run >= len(a.runs) {
		return fmt.Errorf("run %d out of range [0,%d)", run, len(a.runs))
	}
	if a.runs[run].done {
		return fmt.Errorf("run %d recorded twice", run)
	}
	avg, ok := s.AverageHumanAge()
	a.runs[run] = runStat{done: true, ticks: s.Ticks, avgAge: avg, hasHuman: ok}
	for c, ages := range s.AgesByStart {
		a.agesByStart[c] = append(a.agesByStart[c], ages...)
	}
	return nil
}

// Runs counts recorded runs.
func (a *Aggregate) Runs() int {
	n := 0
	for _, r := range a.runs {
		if r.done {
			n++
		}
	}
	return n
}

// Ticks lists ticks survived per recorded run, in run order.
func (a *Aggregate) Ticks() []int {
	var out []int
	for _, r := range a.runs {
		if r.done {
			out = append(out, r.ticks)
		}
	}
	return out
}

// AverageAges lists the mean final human age of each run that had humans.
func (a *Aggregate) AverageAges() []float64 {
	var out []float64
	for _, r := range a.runs {
		if r.done && r.hasHuman {
			out = append(out, r.avgAge)
		}
	}
	return out
}

func (a *Aggregate) TickHistogram() map[int]int {
	h := map[int]int{}
	for _, t := range a.Ticks() {
		h[t]++
	}
	return h
}

func (a *Aggregate) AgesAt(c outbreak.Cell) []int {
	return a.agesByStart[c]
}

// Heatmap returns a Size x Size grid indexed [y][x]. Cells nobody started on are 0.
func (a *Aggregate) Heatmap(mode HeatmapMode) ([][]float64, error) {
	var fold func([]int) float64
	switch mode {
	case Average:
		fold = func(v []int) float64 { return meanInts(v) }
	case Max:
		fold = func(v []int) float64 {
			m := v[0]
			for _, x := range v[1:] {
				m = max(m, x)
			}
			return float64(m)
		}
	case Min:
		fold = func(v []int) float64 {
			m := v[0]
			for _, x := range v[1:] {
				m = min(m, x)
			}
			return float64(m)
		}
	default:
		return nil, fmt.Errorf("unknown heatmap mode %q", mode)
	}
	grid := make([][]float64, a.Size)
	for y := range grid {
		grid[y] = make([]float64, a.Size)
	}
	for c, ages := range a.agesByStart {
		if len(ages) == 0 || c.X < 0 || c.Y < 0 || c.X >= a.Size || c.Y >= a.Size {
			continue
		}
		grid[c.Y][c.X] = fold(ages)
	}
	return grid, nil
}

type CellStat struct {
	Starts int     `json:"starts"`
	Mean   float64 `json:"mean"`
	Max    int     `json:"max"`
	Min    int     `json:"min"`
}

type Report struct {
	Runs                int                        `json:"runs"`
	MeanTicks           float64                    `json:"mean_ticks"`
	MinTicks            int                        `json:"min_ticks"`
	MaxTicks            int                        `json:"max_ticks"`
	TickHistogram       map[int]int                `json:"tick_histogram"`
	MeanAverageHumanAge float64                    `json:"mean_average_human_age"`
	AgeByStart          map[outbreak.Cell]CellStat `json:"age_by_start"`
}

func (a *Aggregate) Report() Report {
	ticks := a.Ticks()
	r := Report{
		Runs:                len(ticks),
		MeanTicks:           meanInts(ticks),
		TickHistogram:       a.TickHistogram(),
		MeanAverageHumanAge: meanFloats(a.AverageAges()),
		AgeByStart:          map[outbreak.Cell]CellStat{},
	}
	if len(ticks) > 0 {
		s := append([]int(nil), ticks...)
		sort.Ints(s)
		r.MinTicks, r.MaxTicks = s[0], s[len(s)-1]
	}
	for c, ages := range a.agesByStart {
		if len(ages) == 0 {
			continue
		}
		cs := CellStat{Starts: len(ages), Mean: meanInts(ages), Max: ages[0], Min: ages[0]}
		for _, v := range ages[1:] {
			cs.Max = max(cs.Max, v)
			cs.Min = min(cs.Min, v)
		}
		r.AgeByStart[c] = cs
	}
	return r
}

func meanInts(v []int) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0
	for _, x := range v {
		sum += x
	}
	return float64(sum) / float64(len(v))
}

// meanFloats sums in slice order so repeated batches agree to the last bit.
func meanFloats(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// Bins groups values into n equal-width bins over [lo, hi]. Counts and left
// edges are returned; hi falls into the last bin.
func Bins(values []float64, n int) (counts []int, edges []float64) {
	if n <= 0 || len(values) == 0 {
		return nil, nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / float64(n)
	counts = make([]int, n)
	edges = make([]float64, n)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	for _, v := range values {
		i := n - 1
		if width > 0 {
			i = min(int((v-lo)/width), n-1)
		}
		counts[i]++
	}
	return counts, edges
}
