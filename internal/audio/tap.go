package audio

import "github.com/faiface/beep"

// streamTap passes a beep.Streamer through unchanged and records a mono
// mixdown of everything it plays into a Ring.
type streamTap struct {
	Source beep.Streamer
	ring   *Ring
	mono   []float64
}

func newStreamTap(src beep.Streamer, ring *Ring) *streamTap {
	return &streamTap{Source: src, ring: ring}
}

func (t *streamTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		if cap(t.mono) < n {
			t.mono = make([]float64, n)
		}
		mono := t.mono[:n]
		for i := range mono {
			mono[i] = (samples[i][0] + samples[i][1]) * 0.5
		}
		t.ring.Write(mono)
	}
	return n, ok
}

func (t *streamTap) Err() error { return t.Source.Err() }
