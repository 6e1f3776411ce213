// Package render draws outbreak snapshots and batch statistics to images.
// It only consumes snapshots and aggregates; the simulation never imports it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"outbreak/internal/outbreak"
)

const titleHeight = 20

var (
	Background  color.Color = color.White
	LineColor   color.Color = color.Black
	HumanColor  color.Color = chart.ColorBlue
	ZombieColor color.Color = chart.ColorRed
)

func kindColor(k outbreak.Kind) color.Color {
	if k == outbreak.Zombie {
		return ZombieColor
	}
	return HumanColor
}

// CellRect is the pixel box of grid cell c. Row 0 of the grid is drawn at the
// bottom so y grows upwards.
func CellRect(size, cellPx int, c outbreak.Cell) image.Rectangle {
	x0 := c.X * cellPx
	y0 := titleHeight + (size-1-c.Y)*cellPx
	return image.Rect(x0, y0, x0+cellPx, y0+cellPx)
}

// Frame draws one snapshot: a lined grid, one disc per agent and an
// "iteration = t" title.
func Frame(s outbreak.Snapshot, cellPx int) *image.RGBA {
	w, h := s.Size*cellPx+1, titleHeight+s.Size*cellPx+1
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	line := image.NewUniform(LineColor)
	for i := 0; i <= s.Size; i++ {
		p := i * cellPx
		draw.Draw(img, image.Rect(p, titleHeight, p+1, h), line, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, titleHeight+p, w, titleHeight+p+1), line, image.Point{}, draw.Src)
	}

	for _, a := range s.Agents {
		disc(img, CellRect(s.Size, cellPx, a.Pos), kindColor(a.Kind))
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LineColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, titleHeight-5),
	}
	d.DrawString(fmt.Sprintf("iteration = %d", s.Tick))
	return img
}

// disc fills a circle inset in r.
func disc(img *image.RGBA, r image.Rectangle, c color.Color) {
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	rad := r.Dx() * 7 / 20
	rr := rad * rad
	for y := cy - rad; y <= cy+rad; y++ {
		for x := cx - rad; x <= cx+rad; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= rr {
				img.Set(x, y, c)
			}
		}
	}
}

// Palette holds every colour Frame uses, for paletted encoders.
func Palette() color.Palette {
	return color.Palette{Background, LineColor, HumanColor, ZombieColor}
}
