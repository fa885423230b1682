package sky

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is a two dimensional histogram. Counts has one row per X bin and one
// column per Y bin.
type Grid struct {
	XEdges []float64
	YEdges []float64
	Counts *mat.Dense
}

// Density bins the points (xs[i], ys[i]) into bins×bins cells spanning the
// data range. The last bin on each axis is closed, so the maximum lands in
// it. It returns nil when there are no points.
func Density(xs, ys []float64, bins int) *Grid {
	if len(xs) == 0 || len(xs) != len(ys) || bins < 1 {
		return nil
	}

	g := &Grid{
		XEdges: edges(xs, bins),
		YEdges: edges(ys, bins),
		Counts: mat.NewDense(bins, bins, nil),
	}
	for i := range xs {
		bx := bin(g.XEdges, xs[i])
		by := bin(g.YEdges, ys[i])
		if bx < 0 || by < 0 {
			continue
		}
		g.Counts.Set(bx, by, g.Counts.At(bx, by)+1)
	}
	return g
}

// Cells calls fn for every cell whose count is at least min, with the cell
// bounds.
func (g *Grid) Cells(min float64, fn func(x0, x1, y0, y1, count float64)) {
	r, c := g.Counts.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if n := g.Counts.At(i, j); n >= min {
				fn(g.XEdges[i], g.XEdges[i+1], g.YEdges[j], g.YEdges[j+1], n)
			}
		}
	}
}

// Total returns the number of binned points.
func (g *Grid) Total() float64 {
	return mat.Sum(g.Counts)
}

func edges(vals []float64, bins int) []float64 {
	lo, hi := floats.Min(vals), floats.Max(vals)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	e := floats.Span(make([]float64, bins+1), lo, hi)
	e[bins] = hi
	return e
}

func bin(edges []float64, v float64) int {
	if math.IsNaN(v) {
		return -1
	}
	if v == edges[len(edges)-1] {
		return len(edges) - 2
	}
	return floats.Within(edges, v)
}
