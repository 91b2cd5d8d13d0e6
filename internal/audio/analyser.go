// Package audio captures live sound and reduces it to a loudness scalar.
package audio

import (
	"math"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/iburimskiy/phyllotaxis/internal/config"
)

// Source provides recent mono samples once it has been acquired.
type Source interface {
	Ready() bool
	Snapshot(n int) []float64
}

// Analyser turns the latest fftSize samples into fftSize/2 byte magnitude
// bins, smoothed over time, and averages them into one loudness value.
type Analyser struct {
	src       Source
	size      int
	fft       *fourier.FFT
	window    []float64
	frame     []float64
	coeffs    []complex128
	smoothed  []float64
	bins      []uint8
	smoothing float64
	minDb     float64
	maxDb     float64
}

func NewAnalyser(src Source, fftSize int) *Analyser {
	return &Analyser{
		src:       src,
		size:      fftSize,
		fft:       fourier.NewFFT(fftSize),
		window:    window.Blackman(fftSize),
		frame:     make([]float64, fftSize),
		smoothed:  make([]float64, fftSize/2),
		bins:      make([]uint8, fftSize/2),
		smoothing: config.SmoothingTimeConst,
		minDb:     config.MinDecibels,
		maxDb:     config.MaxDecibels,
	}
}

// Loudness analyses the current samples. ok is false until the source is ready.
func (a *Analyser) Loudness() (loudness float64, ok bool) {
	if a.src == nil || !a.src.Ready() {
		return 0, false
	}
	a.update(a.src.Snapshot(a.size))
	return Mean(a.bins), true
}

// BinCount is the length of the frequency buffer.
func (a *Analyser) BinCount() int { return len(a.bins) }

// Bins returns a copy of the last frequency buffer.
func (a *Analyser) Bins() []uint8 {
	out := make([]uint8, len(a.bins))
	copy(out, a.bins)
	return out
}

func (a *Analyser) update(samples []float64) {
	// Short snapshots are right-aligned, older samples read as silence.
	pad := a.size - len(samples)
	for i := range a.frame {
		v := 0.0
		if i >= pad {
			v = samples[i-pad]
		}
		a.frame[i] = v * a.window[i]
	}
	a.coeffs = a.fft.Coefficients(a.coeffs, a.frame)

	scale := 1 / float64(a.size)
	for k := range a.smoothed {
		c := a.coeffs[k]
		mag := math.Hypot(real(c), imag(c)) * scale
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
		a.bins[k] = toByte(20*math.Log10(a.smoothed[k]), a.minDb, a.maxDb)
	}
}

// toByte maps a decibel value linearly from [minDb, maxDb] onto [0, 255].
func toByte(db, minDb, maxDb float64) uint8 {
	v := math.Floor(255 / (maxDb - minDb) * (db - minDb))
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Mean is the arithmetic mean of the bins, 0 for an empty buffer.
func Mean(bins []uint8) float64 {
	if len(bins) == 0 {
		return 0
	}
	sum := 0
	for _, b := range bins {
		sum += int(b)
	}
	return float64(sum) / float64(len(bins))
}
