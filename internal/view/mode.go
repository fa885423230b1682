// Package view holds the viewer's interaction state and the slice filter.
//
// Everything here is pure: transitions take a State and return a new one,
// and Select turns a State into per-sample masks. Rendering and widgets live
// elsewhere and only consume these values.
package view

import (
	"fmt"

	"github.com/pkg/errors"

	"lssgal/internal/catalog"
)

// Range is a closed slider range.
type Range struct {
	Min, Max float64
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Mode describes which coordinate drives the slice and how the sliders for
// it are configured.
type Mode struct {
	Name  string
	Title string // window and caption title
	Axis  catalog.Axis

	Center Range
	Width  Range
	Alpha  Range

	DefaultCenter float64
	DefaultWidth  float64
	DefaultAlpha  float64

	// Step is the slider resolution for center and width.
	Step float64
	// Precision is the number of decimals shown for center and width.
	Precision int
	// Unit is appended to formatted center and width values.
	Unit string
}

// Redshift slices by z and shows the Mollweide projection as the main view.
var Redshift = Mode{
	Name:          "redshift",
	Title:         "Mollweide projection",
	Axis:          catalog.AxisZ,
	Center:        Range{0, 0.1},
	Width:         Range{0, 0.1},
	Alpha:         Range{0, 1},
	DefaultCenter: 0.030,
	DefaultWidth:  0.005,
	DefaultAlpha:  0.2,
	Step:          0.001,
	Precision:     3,
}

// Declination slices by declination and shows the wedge diagram as the main
// view.
var Declination = Mode{
	Name:          "declination",
	Title:         "Wedge diagram",
	Axis:          catalog.AxisDec,
	Center:        Range{-20, 90},
	Width:         Range{0, 90},
	Alpha:         Range{0, 1},
	DefaultCenter: 0,
	DefaultWidth:  5,
	DefaultAlpha:  0.2,
	Step:          0.1,
	Precision:     1,
	Unit:          "°",
}

// Modes lists the available modes.
var Modes = []Mode{Redshift, Declination}

// ModeByName looks a mode up by its Name.
func ModeByName(name string) (Mode, error) {
	for _, m := range Modes {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, errors.Errorf("unknown mode %q (want redshift or declination)", name)
}

// Format renders a center or width value with the mode's precision.
func (m Mode) Format(v float64) string {
	return fmt.Sprintf("%.*f", m.Precision, v) + m.Unit
}

// Caption describes the active slice, e.g.
// "Mollweide projection within 0.030 < z < 0.035".
func (m Mode) Caption(s State) string {
	lo := round(s.Center, m.Precision)
	hi := lo + round(s.Width, m.Precision)
	return fmt.Sprintf("%s within %s < %s < %s", m.Title, m.Format(lo), m.Axis, m.Format(hi))
}
