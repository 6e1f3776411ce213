package outbreak

import (
	"errors"
	"testing"
)

func TestGridPlaceAndMove(t *testing.T) {
	g := NewGrid(3, 3)
	if err := g.Place(0, Cell{1, 1}); err != nil {
		t.Fatalf("place: %v", err)
	}
	if g.IsEmpty(Cell{1, 1}) {
		t.Fatal("cell (1,1) should be occupied")
	}
	if id, ok := g.At(Cell{1, 1}); !ok || id != 0 {
		t.Fatalf("At(1,1) = %d,%v want 0,true", id, ok)
	}

	err := g.Place(1, Cell{1, 1})
	var occ *OccupiedCellError
	if !errors.As(err, &occ) {
		t.Fatalf("expected OccupiedCellError, got %v", err)
	}
	if occ.Occupant != 0 || occ.Agent != 1 {
		t.Errorf("error fields: %+v", occ)
	}

	err = g.Place(1, Cell{3, 0})
	if !errors.As(err, &occ) || occ.Occupant != NoTarget {
		t.Fatalf("expected out-of-bounds OccupiedCellError, got %v", err)
	}

	if err := g.Place(1, Cell{0, 0}); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := g.Move(1, Cell{1, 1}); !errors.As(err, &occ) {
		t.Fatalf("move onto occupied cell: got %v", err)
	}
	if err := g.Move(1, Cell{0, 0}); err != nil {
		t.Errorf("moving onto own cell should be a no-op, got %v", err)
	}
	if err := g.Move(1, Cell{2, 2}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if !g.IsEmpty(Cell{0, 0}) {
		t.Error("old cell should be free after move")
	}
	if c, _ := g.Position(1); c != (Cell{2, 2}) {
		t.Errorf("position = %v want 2,2", c)
	}
	if err := g.Move(7, Cell{0, 0}); err == nil {
		t.Error("moving an unplaced agent should fail")
	}
	if g.Len() != 2 {
		t.Errorf("Len = %d want 2", g.Len())
	}
}

func TestGridNeighborhood(t *testing.T) {
	g := NewGrid(5, 5)
	tests := []struct {
		name   string
		cell   Cell
		radius int
		center bool
		want   int
	}{
		{"centre radius 1", Cell{2, 2}, 1, false, 8},
		{"centre radius 1 with self", Cell{2, 2}, 1, true, 9},
		{"corner radius 1", Cell{0, 0}, 1, false, 3},
		{"edge radius 1", Cell{0, 2}, 1, false, 5},
		{"corner radius 2", Cell{4, 4}, 2, false, 8},
		{"whole grid", Cell{0, 0}, g.Diameter(), true, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := g.NeighborhoodCells(tt.cell, tt.radius, tt.center)
			if len(cells) != tt.want {
				t.Fatalf("got %d cells want %d", len(cells), tt.want)
			}
			for _, c := range cells {
				if !g.InBounds(c) {
					t.Errorf("cell %v out of bounds", c)
				}
				if tt.cell.Chebyshev(c) > tt.radius {
					t.Errorf("cell %v outside radius %d", c, tt.radius)
				}
			}
		})
	}
}

func TestGridNeighbors(t *testing.T) {
	g := NewGrid(5, 5)
	for id, c := range []Cell{{2, 2}, {1, 1}, {3, 2}, {4, 4}, {0, 4}} {
		if err := g.Place(id, c); err != nil {
			t.Fatal(err)
		}
	}
	near := g.Neighbors(Cell{2, 2}, 1, false)
	if len(near) != 2 {
		t.Fatalf("radius 1 neighbours = %v want agents 1 and 2", near)
	}
	if got := g.Neighbors(Cell{2, 2}, 1, true); len(got) != 3 {
		t.Errorf("with centre = %v want 3 agents", got)
	}
	if got := g.Neighbors(Cell{2, 2}, g.Diameter(), false); len(got) != 4 {
		t.Errorf("global = %v want 4 agents", got)
	}
}

func TestCellText(t *testing.T) {
	var c Cell
	if err := c.UnmarshalText([]byte("3,7")); err != nil {
		t.Fatal(err)
	}
	if c != (Cell{3, 7}) {
		t.Errorf("got %v", c)
	}
	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected parse error")
	}
	if d := (Cell{0, 0}).Dist(Cell{3, 4}); d != 5 {
		t.Errorf("Dist = %v want 5", d)
	}
	if d := (Cell{0, 0}).Chebyshev(Cell{3, -4}); d != 4 {
		t.Errorf("Chebyshev = %v want 4", d)
	}
}
