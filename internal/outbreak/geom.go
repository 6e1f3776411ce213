package outbreak

import (
	"fmt"
	"math"
)

type Cell struct{ X, Y int }

func (a Cell) Add(b Cell) Cell { return Cell{a.X + b.X, a.Y + b.Y} }
func (a Cell) Sub(b Cell) Cell { return Cell{a.X - b.X, a.Y - b.Y} }

// Dist is the Euclidean distance between two cell centres.
func (a Cell) Dist(b Cell) float64 {
	d := a.Sub(b)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// Chebyshev is the Moore-neighbourhood ring index of b around a.
func (a Cell) Chebyshev(b Cell) int {
	d := a.Sub(b)
	return max(abs(d.X), abs(d.Y))
}

func (a Cell) String() string { return fmt.Sprintf("%d,%d", a.X, a.Y) }

func (a Cell) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Cell) UnmarshalText(b []byte) error {
	var x, y int
	if _, err := fmt.Sscanf(string(b), "%d,%d", &x, &y); err != nil {
		return fmt.Errorf("cell %q: %w", b, err)
	}
	a.X, a.Y = x, y
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
