package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"outbreak/internal/outbreak"
	"outbreak/internal/stats"
)

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func snapshot(tick int) outbreak.Snapshot {
	return outbreak.Snapshot{
		Tick: tick,
		Size: 3,
		Agents: []outbreak.AgentView{
			{ID: 0, Kind: outbreak.Zombie, Pos: outbreak.Cell{X: 2, Y: 2}},
			{ID: 1, Kind: outbreak.Human, Pos: outbreak.Cell{X: 0, Y: 0}},
		},
	}
}

func TestCellRectFlipsRows(t *testing.T) {
	r := CellRect(3, 20, outbreak.Cell{X: 0, Y: 0})
	if r.Min.Y != titleHeight+40 || r.Min.X != 0 || r.Dx() != 20 {
		t.Errorf("cell 0,0 drawn at %v", r)
	}
	top := CellRect(3, 20, outbreak.Cell{X: 1, Y: 2})
	if top.Min.Y != titleHeight || top.Min.X != 20 {
		t.Errorf("cell 1,2 drawn at %v", top)
	}
}

func TestFrame(t *testing.T) {
	img := Frame(snapshot(4), 20)
	if b := img.Bounds(); b.Dx() != 61 || b.Dy() != titleHeight+61 {
		t.Fatalf("bounds %v", b)
	}
	if x, y := center(CellRect(3, 20, outbreak.Cell{X: 0, Y: 0})); !sameColor(img.At(x, y), HumanColor) {
		t.Errorf("human cell colour %v", img.At(x, y))
	}
	if x, y := center(CellRect(3, 20, outbreak.Cell{X: 2, Y: 2})); !sameColor(img.At(x, y), ZombieColor) {
		t.Errorf("zombie cell colour %v", img.At(x, y))
	}
	if x, y := center(CellRect(3, 20, outbreak.Cell{X: 1, Y: 1})); !sameColor(img.At(x, y), Background) {
		t.Errorf("empty cell colour %v", img.At(x, y))
	}

	ink := false
	for y := 0; y < titleHeight-1 && !ink; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if sameColor(img.At(x, y), LineColor) {
				ink = true
				break
			}
		}
	}
	if !ink {
		t.Error("title was not drawn")
	}
}

func TestWriteGIF(t *testing.T) {
	frames := Frames([]outbreak.Snapshot{snapshot(0), snapshot(1), snapshot(2)}, 10)
	var buf bytes.Buffer
	if err := WriteGIF(&buf, frames, FrameDelay); err != nil {
		t.Fatal(err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 3 || g.Delay[0] != FrameDelay {
		t.Errorf("frames=%d delay=%v", len(g.Image), g.Delay)
	}
	if err := WriteGIF(&buf, nil, FrameDelay); err == nil {
		t.Error("empty animation should fail")
	}
}

func TestAnimate(t *testing.T) {
	dir := t.TempDir()
	snaps := []outbreak.Snapshot{snapshot(0), snapshot(1)}
	for _, format := range []string{"gif", "avi"} {
		t.Run(format, func(t *testing.T) {
			path, err := Animate(dir, "seed0", format, snaps, 16)
			if err != nil {
				t.Fatal(err)
			}
			if filepath.Ext(path) != "."+format {
				t.Errorf("path %s", path)
			}
			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(b) == 0 {
				t.Error("empty file")
			}
			if format == "avi" && string(b[:4]) != "RIFF" {
				t.Errorf("avi header %q", b[:4])
			}
		})
	}
	if _, err := Animate(dir, "x", "mp4", snaps, 16); err == nil {
		t.Error("unknown format should fail")
	}
}

func isPNG(b []byte) bool {
	return len(b) > 8 && string(b[1:4]) == "PNG"
}

func TestHistograms(t *testing.T) {
	agg := stats.New(2, 4)
	for i, ticks := range []int{3, 5, 5, 9} {
		s := outbreak.Summary{Ticks: ticks, HumanAges: []int{ticks - 1}, AgesByStart: map[outbreak.Cell][]int{{X: 0, Y: 1}: {ticks - 1}}}
		if err := agg.Add(i, s); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := TicksHistogram(&buf, agg); err != nil {
		t.Fatal(err)
	}
	if !isPNG(buf.Bytes()) {
		t.Error("ticks histogram is not a PNG")
	}
	buf.Reset()
	if err := AverageAgeHistogram(&buf, agg, 4); err != nil {
		t.Fatal(err)
	}
	if !isPNG(buf.Bytes()) {
		t.Error("age histogram is not a PNG")
	}
	if err := BarChart(&buf, "bad", []string{"a"}, []int{1, 2}); err == nil {
		t.Error("label mismatch should fail")
	}
	if err := TicksHistogram(&buf, stats.New(2, 1)); err == nil {
		t.Error("empty aggregate should fail")
	}
}

func TestHeatmap(t *testing.T) {
	grid := [][]float64{
		{0, 10},
		{5, 0},
	}
	img, err := HeatmapImage(grid, 10)
	if err != nil {
		t.Fatal(err)
	}
	// grid[0][1] is the hottest cell: x=1, drawn in the bottom row
	hot := img.At(15, 15)
	cold := img.At(5, 15)
	if sameColor(hot, cold) {
		t.Error("hot and cold cells share a colour")
	}
	legendX := 20 + 5 + legendWidth/2
	if sameColor(img.At(legendX, 0), img.At(legendX, 19)) {
		t.Error("legend has no gradient")
	}
	if !sameColor(img.At(legendX, 0), hot) {
		t.Error("legend top should match the maximum")
	}

	var buf bytes.Buffer
	if err := Heatmap(&buf, grid, 10); err != nil {
		t.Fatal(err)
	}
	if !isPNG(buf.Bytes()) {
		t.Error("heatmap is not a PNG")
	}
	if _, err := HeatmapImage([][]float64{{1, 2}}, 10); err == nil {
		t.Error("non-square grid should fail")
	}
	if _, err := HeatmapImage(nil, 10); err == nil {
		t.Error("empty grid should fail")
	}
}
