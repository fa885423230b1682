package render

import (
	"fmt"
	"image/color"
	"math"

	"lssgal/internal/sky"
	"lssgal/pkg/colorutil"
)

const (
	gridWidth   = 0.6
	labelMargin = 1.12
)

// skyFrame is the empty Mollweide map: boundary ellipse, meridians every
// 60° of RA and parallels every 30° of declination.
func skyFrame() Scene {
	sc := Scene{
		XMin: -sky.MaxX * labelMargin, XMax: sky.MaxX * labelMargin,
		YMin: -sky.MaxY * labelMargin, YMax: sky.MaxY * labelMargin,
	}

	var boundary []Point
	for i := 0; i <= 180; i++ {
		t := 2 * math.Pi * float64(i) / 180
		boundary = append(boundary, Point{sky.MaxX * math.Cos(t), sky.MaxY * math.Sin(t)})
	}
	sc.Grid = append(sc.Grid, Polyline{Points: boundary, Color: colorutil.Black, Width: 1})

	for ra := 0.0; ra <= 360; ra += 60 {
		var line []Point
		for dec := -90.0; dec <= 90; dec += 2 {
			x, y := sky.Project(ra, dec)
			line = append(line, Point{x, y})
		}
		sc.Grid = append(sc.Grid, Polyline{Points: line, Color: colorutil.Gray, Width: gridWidth})
	}

	for dec := -60.0; dec <= 60; dec += 30 {
		sc.Grid = append(sc.Grid, Polyline{Points: parallel(dec), Color: colorutil.Gray, Width: gridWidth})

		// Label on the left rim.
		x, y := sky.Project(360-1e-6, dec)
		sc.Labels = append(sc.Labels, Label{At: Point{x - 0.12*sky.MaxY, y}, Text: fmt.Sprintf("%.0f°", dec)})
	}
	return sc
}

// parallel traces a line of constant declination across the whole map.
func parallel(dec float64) []Point {
	var line []Point
	for ra := 0.0; ra <= 360; ra += 5 {
		x, y := sky.Project(math.Min(ra, 360-1e-6), dec)
		line = append(line, Point{x, y})
	}
	return line
}

// polarFrame is an empty wedge diagram reaching rmax: rings at every ring
// step and spokes every 45°.
func polarFrame(rmax, ringStep float64) Scene {
	m := rmax * labelMargin
	sc := Scene{XMin: -m, XMax: m, YMin: -m, YMax: m}

	sc.Grid = append(sc.Grid, Polyline{Points: circle(rmax, false), Color: colorutil.Black, Width: 1})
	for r := ringStep; r < rmax-ringStep/2; r += ringStep {
		sc.Grid = append(sc.Grid, Polyline{Points: circle(r, false), Color: colorutil.Gray, Width: gridWidth})

		x, y := sky.Polar(math.Pi/8, r)
		sc.Labels = append(sc.Labels, Label{At: Point{x, y}, Text: trimFloat(r)})
	}

	for deg := 0.0; deg < 360; deg += 45 {
		theta := deg * math.Pi / 180
		x, y := sky.Polar(theta, rmax)
		sc.Grid = append(sc.Grid, Polyline{Points: []Point{{0, 0}, {x, y}}, Color: colorutil.Gray, Width: gridWidth})

		lx, ly := sky.Polar(theta, rmax*1.06)
		sc.Labels = append(sc.Labels, Label{At: Point{lx, ly}, Text: fmt.Sprintf("%.0f°", deg)})
	}
	return sc
}

// circle returns a closed ring of radius r around the origin, clockwise
// when cw is set.
func circle(r float64, cw bool) []Point {
	const n = 120
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 2 * math.Pi * float64(i) / n
		if cw {
			t = -t
		}
		x, y := sky.Polar(t, r)
		pts = append(pts, Point{x, y})
	}
	return pts
}

// annulus covers radii [r0, r1) of the polar view. A zero inner radius gives
// a full disc.
func annulus(r0, r1 float64, fill color.NRGBA) Polygon {
	p := Polygon{Rings: [][]Point{circle(r1, false)}, Fill: fill}
	if r0 > 0 {
		p.Rings = append(p.Rings, circle(r0, true))
	}
	return p
}

// decBand covers declinations [dec0, dec1) over all right ascensions of the
// Mollweide map.
func decBand(dec0, dec1 float64, fill color.NRGBA) Polygon {
	lower := parallel(dec0)
	upper := parallel(dec1)
	ring := make([]Point, 0, len(lower)+len(upper)+1)
	ring = append(ring, lower...)
	for i := len(upper) - 1; i >= 0; i-- {
		ring = append(ring, upper[i])
	}
	ring = append(ring, lower[0])
	return Polygon{Rings: [][]Point{ring}, Fill: fill}
}

// ringStepFor picks a ring spacing giving four or five rings.
func ringStepFor(rmax float64) float64 {
	step := math.Pow(10, math.Floor(math.Log10(rmax)+1e-9))
	for rmax/step < 4 {
		step /= 2
	}
	return step
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}
