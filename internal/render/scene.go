// Package render decides what the two linked panels show and draws it.
//
// Scene building is separate from drawing: Primary and Secondary turn the
// catalogs and a view.State into Scene values made of plain primitives, and
// Plotter draws a Scene into an image. Only Plotter knows about the plotting
// library.
package render

import (
	"image/color"
)

// Point is a position in scene coordinates.
type Point struct {
	X, Y float64
}

// Layer is a set of markers sharing a style.
type Layer struct {
	Name    string
	Color   color.NRGBA
	Colors  []color.NRGBA // per-point colors; overrides Color when set
	Alpha   float64
	Size    float64 // marker diameter in points
	Visible bool
	Points  []Point
}

// Polygon is a filled area. The first ring is the outline; further rings
// wound the other way are holes.
type Polygon struct {
	Rings [][]Point
	Fill  color.NRGBA
}

// Polyline is an open stroked path.
type Polyline struct {
	Points []Point
	Color  color.NRGBA
	Width  float64 // points
}

// Label is text anchored at a point.
type Label struct {
	At   Point
	Text string
}

// Scene is everything drawn in one panel, bottom to top: grid, underlays,
// layers, overlays, labels.
type Scene struct {
	XMin, XMax float64
	YMin, YMax float64

	Grid      []Polyline
	Underlays []Polygon
	Layers    []*Layer
	Overlays  []Polygon
	Labels    []Label
}

// Aspect is the width to height ratio of the scene bounds.
func (s *Scene) Aspect() float64 {
	h := s.YMax - s.YMin
	if h <= 0 {
		return 1
	}
	return (s.XMax - s.XMin) / h
}

// VisiblePoints counts the markers of visible layers.
func (s *Scene) VisiblePoints() int {
	n := 0
	for _, l := range s.Layers {
		if l.Visible {
			n += len(l.Points)
		}
	}
	return n
}
