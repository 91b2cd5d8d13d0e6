package phyllo

import "gonum.org/v1/gonum/spatial/r3"

// Matrix is a column-major 4x4 instance transform.
type Matrix [16]float64

// Compose builds a translate-then-uniform-scale transform.
func Compose(pos r3.Vec, scale float64) Matrix {
	return Matrix{
		scale, 0, 0, 0,
		0, scale, 0, 0,
		0, 0, scale, 0,
		pos.X, pos.Y, pos.Z, 1,
	}
}

func (m Matrix) Position() r3.Vec {
	return r3.Vec{X: m[12], Y: m[13], Z: m[14]}
}

// Scale returns the x-axis scale; instances are always scaled uniformly.
func (m Matrix) Scale() float64 {
	return m[0]
}

// Apply transforms p as a point.
func (m Matrix) Apply(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}
