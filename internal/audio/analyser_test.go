package audio

import (
	"math"
	"testing"

	"github.com/iburimskiy/phyllotaxis/internal/config"
)

type fakeSource struct {
	ready   bool
	samples []float64
}

func (f *fakeSource) Ready() bool { return f.ready }

func (f *fakeSource) Snapshot(n int) []float64 {
	if n > len(f.samples) {
		n = len(f.samples)
	}
	out := make([]float64, n)
	copy(out, f.samples[len(f.samples)-n:])
	return out
}

func TestAnalyserNotReady(t *testing.T) {
	a := NewAnalyser(&fakeSource{samples: sine(256, 0.5, 8)}, config.FFTSize)
	if l, ok := a.Loudness(); ok || l != 0 {
		t.Errorf("Loudness = %v, %v; want no value", l, ok)
	}
	if l, ok := NewAnalyser(nil, config.FFTSize).Loudness(); ok || l != 0 {
		t.Errorf("nil source Loudness = %v, %v; want no value", l, ok)
	}
}

func TestAnalyserBinCount(t *testing.T) {
	a := NewAnalyser(&fakeSource{ready: true}, config.FFTSize)
	if a.BinCount() != 128 {
		t.Errorf("BinCount = %d, want 128", a.BinCount())
	}
}

func TestAnalyserSilence(t *testing.T) {
	a := NewAnalyser(&fakeSource{ready: true, samples: make([]float64, 512)}, config.FFTSize)
	l, ok := a.Loudness()
	if !ok {
		t.Fatal("ready source produced no value")
	}
	if l != 0 {
		t.Errorf("silent loudness = %v, want 0", l)
	}
}

func TestAnalyserShortSnapshot(t *testing.T) {
	a := NewAnalyser(&fakeSource{ready: true, samples: sine(40, 0.5, 4)}, config.FFTSize)
	if _, ok := a.Loudness(); !ok {
		t.Fatal("short snapshot produced no value")
	}
}

func TestAnalyserTone(t *testing.T) {
	src := &fakeSource{ready: true, samples: sine(config.FFTSize, 0.05, 16)}
	a := NewAnalyser(src, config.FFTSize)

	var prev float64
	for frame := 0; frame < 30; frame++ {
		l, ok := a.Loudness()
		if !ok {
			t.Fatal("no value")
		}
		if l < prev {
			t.Fatalf("frame %d: loudness fell %v -> %v on a steady tone", frame, prev, l)
		}
		if l < 0 || l > 255 {
			t.Fatalf("loudness %v out of byte range", l)
		}
		prev = l
	}
	if prev == 0 {
		t.Fatal("tone produced zero loudness")
	}

	bins := a.Bins()
	peak := 0
	for k, b := range bins {
		if b > bins[peak] {
			peak = k
		}
	}
	if peak != 16 {
		t.Errorf("peak bin = %d, want 16", peak)
	}
	if got := Mean(bins); got != prev {
		t.Errorf("Mean(bins) = %v, loudness = %v", got, prev)
	}
}

func TestAnalyserLouderToneIsLouder(t *testing.T) {
	settle := func(amp float64) float64 {
		a := NewAnalyser(&fakeSource{ready: true, samples: sine(config.FFTSize, amp, 20)}, config.FFTSize)
		var l float64
		for i := 0; i < 50; i++ {
			l, _ = a.Loudness()
		}
		return l
	}
	quiet, loud := settle(0.01), settle(0.9)
	if loud <= quiet {
		t.Errorf("loud = %v, quiet = %v", loud, quiet)
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		db   float64
		want uint8
	}{
		{math.Inf(-1), 0},
		{-200, 0},
		{-100, 0},
		{-65, 127},
		{-30, 255},
		{0, 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := toByte(tt.db, config.MinDecibels, config.MaxDecibels); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.db, got, tt.want)
		}
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		bins []uint8
		want float64
	}{
		{nil, 0},
		{[]uint8{0, 0}, 0},
		{[]uint8{255, 255, 255}, 255},
		{[]uint8{10, 20, 30, 40}, 25},
		{[]uint8{1, 2}, 1.5},
	}
	for _, tt := range tests {
		if got := Mean(tt.bins); got != tt.want {
			t.Errorf("Mean(%v) = %v, want %v", tt.bins, got, tt.want)
		}
	}
}

// sine returns n samples of a tone that completes cycles periods over n.
func sine(n int, amp float64, cycles int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*float64(cycles)*float64(i)/float64(n))
	}
	return out
}
