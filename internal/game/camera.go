package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/phyllotaxis/internal/config"
)

const (
	minPolar    = 1e-3
	minDistance = 1.0
	zoomBase    = 0.95
)

var worldUp = r3.Vec{Y: 1}

// Camera is a perspective camera orbiting the origin with damped motion.
type Camera struct {
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Width  int
	Height int

	distance float64
	azimuth  float64
	polar    float64

	dAzimuth float64
	dPolar   float64
	damping  float64
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:      config.CameraFOV,
		Near:     config.CameraNear,
		Far:      config.CameraFar,
		distance: config.CameraDistance,
		polar:    math.Pi / 2,
		damping:  config.CameraDamping,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the viewport. Sizes below one pixel are ignored.
func (c *Camera) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	c.Width, c.Height = width, height
}

func (c *Camera) Aspect() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Orbit queues a rotation for a cursor drag of dx, dy pixels.
func (c *Camera) Orbit(dx, dy float64) {
	c.dAzimuth -= 2 * math.Pi * dx / float64(c.Height)
	c.dPolar -= 2 * math.Pi * dy / float64(c.Height)
}

// Zoom moves the camera toward the target for positive steps.
func (c *Camera) Zoom(steps float64) {
	c.distance = clamp(c.distance*math.Pow(zoomBase, steps), minDistance, c.Far/2)
}

// Update applies a damped share of the queued rotation.
func (c *Camera) Update() {
	c.azimuth += c.dAzimuth * c.damping
	c.polar = clamp(c.polar+c.dPolar*c.damping, minPolar, math.Pi-minPolar)
	c.dAzimuth *= 1 - c.damping
	c.dPolar *= 1 - c.damping
}

func (c *Camera) Position() r3.Vec {
	s := math.Sin(c.polar)
	return r3.Vec{
		X: c.distance * s * math.Sin(c.azimuth),
		Y: c.distance * math.Cos(c.polar),
		Z: c.distance * s * math.Cos(c.azimuth),
	}
}

// Project maps a world point to screen pixels. scale converts world
// lengths at that depth to pixels. ok is false outside the clip range.
func (c *Camera) Project(p r3.Vec) (x, y, depth, scale float64, ok bool) {
	eye := c.Position()
	forward := r3.Unit(r3.Scale(-1, eye))
	right := r3.Unit(r3.Cross(forward, worldUp))
	up := r3.Cross(right, forward)

	d := r3.Sub(p, eye)
	depth = r3.Dot(d, forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, 0, false
	}

	focal := float64(c.Height) / 2 / math.Tan(c.FOV*math.Pi/360)
	scale = focal / depth
	x = float64(c.Width)/2 + r3.Dot(d, right)*scale
	y = float64(c.Height)/2 - r3.Dot(d, up)*scale
	return x, y, depth, scale, true
}
