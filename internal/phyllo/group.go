package phyllo

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is the renderable side of a group. Matrices passed to
// SetInstances are owned by the surface after the call.
type Surface interface {
	SetColor(c colorful.Color)
	SetRotation(angle float64)
	SetInstances(m []Matrix)
	Invalidate()
}

// Instance is one sphere's transform within a group.
type Instance struct {
	Position r3.Vec
	Scale    float64
}

// Group is one independently rotated and colored spiral of spheres.
type Group struct {
	index     int
	spread    float64
	layout    []r3.Vec
	instances []Instance
	color     colorful.Color
	rotation  float64
	surface   Surface
}

// NewGroup creates a group of n points laid out with spread c.
// A nil surface makes Commit a no-op.
func NewGroup(index, n int, c float64, s Surface) *Group {
	g := &Group{
		index:   index,
		color:   colorful.Color{R: 1, G: 1, B: 1},
		surface: s,
	}
	g.Resize(n, c)
	return g
}

// Resize regenerates all n transforms from scratch. Old instances are dropped.
func (g *Group) Resize(n int, c float64) {
	g.spread = c
	g.layout = Points(n, c)
	g.instances = make([]Instance, n)
	for i, p := range g.layout {
		g.instances[i] = Instance{Position: p, Scale: 1}
	}
}

// ApplyFrame rewrites every instance's position and scale for this frame's loudness.
func (g *Group) ApplyFrame(loudness float64, wiggle bool) {
	amp := Amplitude(loudness)
	z := WiggleOffset(loudness, wiggle)
	for i, p := range g.layout {
		g.instances[i] = Instance{
			Position: r3.Vec{X: p.X, Y: p.Y, Z: z},
			Scale:    1 + amp,
		}
	}
}

func (g *Group) SetColor(c colorful.Color) {
	g.color = c
}

// Rotate adds delta radians to the accumulated spin about the z axis.
func (g *Group) Rotate(delta float64) {
	g.rotation += delta
}

// Commit pushes the current transforms to the surface and marks it dirty.
func (g *Group) Commit() {
	if g.surface == nil {
		return
	}
	m := make([]Matrix, len(g.instances))
	for i, in := range g.instances {
		m[i] = Compose(in.Position, in.Scale)
	}
	g.surface.SetColor(g.color)
	g.surface.SetRotation(g.rotation)
	g.surface.SetInstances(m)
	g.surface.Invalidate()
}

func (g *Group) Index() int              { return g.index }
func (g *Group) Len() int                { return len(g.instances) }
func (g *Group) Spread() float64         { return g.spread }
func (g *Group) Rotation() float64       { return g.rotation }
func (g *Group) Color() colorful.Color   { return g.color }
func (g *Group) Instance(i int) Instance { return g.instances[i] }

// Instances returns a copy of the current transforms.
func (g *Group) Instances() []Instance {
	out := make([]Instance, len(g.instances))
	copy(out, g.instances)
	return out
}
