// Package phyllo lays out phyllotaxis spirals and drives them from a loudness scalar.
package phyllo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// GoldenAngle is the angular step between consecutive points, in degrees.
const GoldenAngle = 137.5

// Layout returns the position of point i in a spiral with spread c.
// Point 0 always sits at the origin.
func Layout(i int, c float64) (x, y float64) {
	a := float64(i) * GoldenAngle * math.Pi / 180
	r := c * math.Sqrt(float64(i))
	return r * math.Cos(a), r * math.Sin(a)
}

// Points returns the first n spiral points on the z=0 plane.
func Points(n int, c float64) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i := range pts {
		x, y := Layout(i, c)
		pts[i] = r3.Vec{X: x, Y: y}
	}
	return pts
}
