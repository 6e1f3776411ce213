package outbreak

import "fmt"

// Grid is a bounded, non-toroidal lattice holding at most one agent per cell.
type Grid struct {
	Width, Height int

	// occupant ID + 1, 0 = empty
	cells []int
	where map[int]Cell
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]int, width*height),
		where:  map[int]Cell{},
	}
}

func (g *Grid) idx(c Cell) int { return c.Y*g.Width + c.X }

func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Diameter is a radius large enough to cover the whole grid from any cell.
func (g *Grid) Diameter() int { return max(g.Width, g.Height) }

// At returns the agent occupying c.
func (g *Grid) At(c Cell) (int, bool) {
	if !g.InBounds(c) {
		return NoTarget, false
	}
	v := g.cells[g.idx(c)]
	if v == 0 {
		return NoTarget, false
	}
	return v - 1, true
}

// IsEmpty is false for off-grid cells.
func (g *Grid) IsEmpty(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[g.idx(c)] == 0
}

// Position returns where agent id stands.
func (g *Grid) Position(id int) (Cell, bool) {
	c, ok := g.where[id]
	return c, ok
}

func (g *Grid) Len() int { return len(g.where) }

func (g *Grid) claim(id int, c Cell) error {
	if !g.InBounds(c) {
		return &OccupiedCellError{Cell: c, Agent: id, Occupant: NoTarget}
	}
	if occ, ok := g.At(c); ok {
		return &OccupiedCellError{Cell: c, Agent: id, Occupant: occ}
	}
	g.cells[g.idx(c)] = id + 1
	g.where[id] = c
	return nil
}

func (g *Grid) Place(id int, c Cell) error {
	if _, ok := g.where[id]; ok {
		return fmt.Errorf("agent %d is already placed", id)
	}
	return g.claim(id, c)
}

// Move relocates a placed agent. Moving onto its own cell is a no-op.
func (g *Grid) Move(id int, to Cell) error {
	from, ok := g.where[id]
	if !ok {
		return fmt.Errorf("agent %d is not on the grid", id)
	}
	if from == to {
		return nil
	}
	if err := g.claim(id, to); err != nil {
		return err
	}
	g.cells[g.idx(from)] = 0
	return nil
}

// NeighborhoodCells lists every in-bounds cell within Chebyshev distance radius of c,
// x-major then y, the order random placement and neighbour scans rely on.
func (g *Grid) NeighborhoodCells(c Cell, radius int, includeCenter bool) []Cell {
	x0, x1 := max(c.X-radius, 0), min(c.X+radius, g.Width-1)
	y0, y1 := max(c.Y-radius, 0), min(c.Y+radius, g.Height-1)
	var out []Cell
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			n := Cell{x, y}
			if n == c && !includeCenter {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

// Neighbors returns the IDs of agents within Chebyshev distance radius of c.
func (g *Grid) Neighbors(c Cell, radius int, includeCenter bool) []int {
	var out []int
	for _, n := range g.NeighborhoodCells(c, radius, includeCenter) {
		if id, ok := g.At(n); ok {
			out = append(out, id)
		}
	}
	return out
}

// Cells lists every grid cell, x-major.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.Width*g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			out = append(out, Cell{x, y})
		}
	}
	return out
}
