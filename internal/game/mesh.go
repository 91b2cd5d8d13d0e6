package game

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/phyllotaxis/internal/config"
	"github.com/iburimskiy/phyllotaxis/internal/phyllo"
)

var zAxis = r3.Vec{Z: 1}

type sphere struct {
	center r3.Vec
	radius float64
}

// projected is a sphere in screen space.
type projected struct {
	x, y, r float32
	depth   float64
	fill    color.RGBA
}

// Mesh is an instanced sphere mesh for one group. Committed matrices are
// only turned into world-space spheres on the next draw after Invalidate.
type Mesh struct {
	color    colorful.Color
	rotation float64
	matrices []phyllo.Matrix
	dirty    bool

	spheres []sphere
	fill    color.RGBA
}

func NewMesh() *Mesh {
	return &Mesh{
		color: colorful.Color{R: 1, G: 1, B: 1},
		fill:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (m *Mesh) SetColor(c colorful.Color)       { m.color = c }
func (m *Mesh) SetRotation(angle float64)       { m.rotation = angle }
func (m *Mesh) SetInstances(mx []phyllo.Matrix) { m.matrices = mx }
func (m *Mesh) Invalidate()                     { m.dirty = true }

// Count is the number of visible instances.
func (m *Mesh) Count() int { return len(m.spheres) }

func (m *Mesh) upload() {
	if !m.dirty {
		return
	}
	rot := r3.NewRotation(m.rotation, zAxis)
	if cap(m.spheres) < len(m.matrices) {
		m.spheres = make([]sphere, len(m.matrices))
	}
	m.spheres = m.spheres[:len(m.matrices)]
	for i, mx := range m.matrices {
		m.spheres[i] = sphere{
			center: rot.Rotate(mx.Position()),
			radius: config.SphereRadius * mx.Scale(),
		}
	}
	m.fill = toRGBA(m.color)
	m.dirty = false
}

// project appends the visible spheres to dst.
func (m *Mesh) project(cam *Camera, dst []projected) []projected {
	m.upload()
	for _, s := range m.spheres {
		x, y, depth, scale, ok := cam.Project(s.center)
		if !ok {
			continue
		}
		dst = append(dst, projected{
			x:     float32(x),
			y:     float32(y),
			r:     float32(max(s.radius*scale, 0.5)),
			depth: depth,
			fill:  m.fill,
		})
	}
	return dst
}
