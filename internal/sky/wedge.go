package sky

import "math"

// WedgeAngle returns the polar angle in radians of right ascension ra
// (degrees) rotated by offset degrees.
func WedgeAngle(ra, offset float64) float64 {
	return (ra - offset) * math.Pi / 180
}

// Polar converts an angle in radians and a radius into plane coordinates,
// with angle zero pointing right and angles growing counterclockwise.
func Polar(theta, r float64) (x, y float64) {
	return r * math.Cos(theta), r * math.Sin(theta)
}
