package phyllo

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	MaxLoudness     = 255.0
	HueGain         = 2.0
	HueStep         = 30.0
	RotationDivisor = 500.0
	WiggleFreq      = 0.1
	WiggleDepth     = 10.0
)

// Mapping is the per-group visual state derived from one frame's loudness.
type Mapping struct {
	Hue           float64
	Color         colorful.Color
	RotationDelta float64
}

// MapFrame maps loudness and a group index to that group's hue and spin.
// Each group index is HueStep degrees ahead of the previous one.
func MapFrame(loudness float64, group int) Mapping {
	hue := math.Mod(loudness*HueGain+float64(group)*HueStep, 360)
	if hue < 0 {
		hue += 360
	}
	return Mapping{
		Hue:           hue,
		Color:         colorful.Hsl(hue, 1, 0.5),
		RotationDelta: loudness / RotationDivisor,
	}
}

// Amplitude normalizes a byte-range loudness to [0,1].
func Amplitude(loudness float64) float64 {
	return loudness / MaxLoudness
}

// WiggleOffset is the z offset applied to every point. It depends only on loudness.
func WiggleOffset(loudness float64, wiggle bool) float64 {
	if !wiggle {
		return 0
	}
	return math.Sin(loudness*WiggleFreq) * Amplitude(loudness) * WiggleDepth
}
