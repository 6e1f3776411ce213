package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

const legendWidth = 24

// HeatmapImage paints grid[y][x] with the jet colour map, row 0 at the bottom,
// and a colour legend strip on the right running from the minimum (bottom) to
// the maximum (top).
func HeatmapImage(grid [][]float64, cellPx int) (*image.RGBA, error) {
	size := len(grid)
	if size == 0 {
		return nil, fmt.Errorf("empty heatmap")
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range grid {
		if len(row) != size {
			return nil, fmt.Errorf("heatmap must be square, got row of %d in %d rows", len(row), size)
		}
		for _, v := range row {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	side := size * cellPx
	img := image.NewRGBA(image.Rect(0, 0, side+cellPx/2+legendWidth, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	for y, row := range grid {
		for x, v := range row {
			r := image.Rect(x*cellPx, (size-1-y)*cellPx, (x+1)*cellPx, (size-y)*cellPx)
			draw.Draw(img, r, image.NewUniform(chart.Jet(v, lo, hi)), image.Point{}, draw.Src)
		}
	}
	x0 := side + cellPx/2
	for py := 0; py < side; py++ {
		v := hi - (hi-lo)*float64(py)/float64(max(side-1, 1))
		draw.Draw(img, image.Rect(x0, py, x0+legendWidth, py+1), image.NewUniform(chart.Jet(v, lo, hi)), image.Point{}, draw.Src)
	}
	return img, nil
}

func Heatmap(w io.Writer, grid [][]float64, cellPx int) error {
	img, err := HeatmapImage(grid, cellPx)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
