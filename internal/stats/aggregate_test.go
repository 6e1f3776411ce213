package stats

import (
	"testing"

	"outbreak/internal/outbreak"
)

func summary(ticks int, ages map[outbreak.Cell][]int) outbreak.Summary {
	s := outbreak.Summary{Ticks: ticks, AgesByStart: ages}
	for _, v := range ages {
		s.HumanAges = append(s.HumanAges, v...)
	}
	return s
}

func TestAggregateReport(t *testing.T) {
	a := New(3, 3)
	steps := []struct {
		run int
		s   outbreak.Summary
	}{
		{2, summary(6, map[outbreak.Cell][]int{{X: 0, Y: 0}: {4}, {X: 2, Y: 1}: {6}})},
		{0, summary(2, map[outbreak.Cell][]int{{X: 0, Y: 0}: {2}})},
		{1, summary(0, nil)},
	}
	for _, st := range steps {
		if err := a.Add(st.run, st.s); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.Add(1, summary(1, nil)); err == nil {
		t.Error("recording a run twice should fail")
	}
	if err := a.Add(3, summary(1, nil)); err == nil {
		t.Error("out of range run should fail")
	}

	if got := a.Ticks(); len(got) != 3 || got[0] != 2 || got[1] != 0 || got[2] != 6 {
		t.Errorf("ticks in run order = %v", got)
	}
	r := a.Report()
	if r.Runs != 3 || r.MinTicks != 0 || r.MaxTicks != 6 {
		t.Errorf("report %+v", r)
	}
	if r.MeanTicks != 8.0/3.0 {
		t.Errorf("mean ticks = %v", r.MeanTicks)
	}
	// run 1 had no humans and is left out of the age average: (2 + 5) / 2
	if r.MeanAverageHumanAge != 3.5 {
		t.Errorf("mean average age = %v want 3.5", r.MeanAverageHumanAge)
	}
	cs := r.AgeByStart[outbreak.Cell{X: 0, Y: 0}]
	if cs.Starts != 2 || cs.Mean != 3 || cs.Max != 4 || cs.Min != 2 {
		t.Errorf("cell 0,0 stats %+v", cs)
	}
	if r.TickHistogram[6] != 1 || r.TickHistogram[0] != 1 {
		t.Errorf("histogram %v", r.TickHistogram)
	}
}

func TestHeatmap(t *testing.T) {
	a := New(2, 2)
	_ = a.Add(0, summary(3, map[outbreak.Cell][]int{{X: 1, Y: 0}: {3}, {X: 0, Y: 1}: {1}}))
	_ = a.Add(1, summary(5, map[outbreak.Cell][]int{{X: 1, Y: 0}: {5}}))

	tests := []struct {
		mode HeatmapMode
		want float64
	}{
		{Average, 4},
		{Max, 5},
		{Min, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			grid, err := a.Heatmap(tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			if grid[0][1] != tt.want {
				t.Errorf("cell x=1,y=0 = %v want %v", grid[0][1], tt.want)
			}
			if grid[1][0] != 1 {
				t.Errorf("cell x=0,y=1 = %v want 1", grid[1][0])
			}
			if grid[1][1] != 0 {
				t.Errorf("unused cell = %v want 0", grid[1][1])
			}
		})
	}
	if _, err := a.Heatmap("median"); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestBins(t *testing.T) {
	counts, edges := Bins([]float64{0, 1, 2, 3, 4}, 2)
	if len(counts) != 2 || counts[0] != 2 || counts[1] != 3 {
		t.Errorf("counts %v", counts)
	}
	if edges[0] != 0 || edges[1] != 2 {
		t.Errorf("edges %v", edges)
	}
	counts, _ = Bins([]float64{7, 7, 7}, 3)
	if counts[2] != 3 {
		t.Errorf("flat input should land in last bin, got %v", counts)
	}
	if c, e := Bins(nil, 4); c != nil || e != nil {
		t.Error("empty input should give no bins")
	}
}
