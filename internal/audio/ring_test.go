package audio

import (
	"reflect"
	"testing"
)

func TestRingSnapshot(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		writes [][]float64
		n      int
		want   []float64
	}{
		{"empty is silence", 4, nil, 3, []float64{0, 0, 0}},
		{"partial", 8, [][]float64{{1, 2, 3}}, 3, []float64{1, 2, 3}},
		{"latest only", 8, [][]float64{{1, 2, 3, 4, 5}}, 2, []float64{4, 5}},
		{"wraps", 4, [][]float64{{1, 2, 3}, {4, 5, 6}}, 4, []float64{3, 4, 5, 6}},
		{"n capped at size", 3, [][]float64{{1, 2, 3, 4}}, 10, []float64{2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing(tt.size)
			for _, w := range tt.writes {
				r.Write(w)
			}
			if got := r.Snapshot(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Snapshot(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestRingWrite32AndReset(t *testing.T) {
	r := NewRing(4)
	r.Write32([]float32{0.5, -0.25})
	if got := r.Snapshot(2); !reflect.DeepEqual(got, []float64{0.5, -0.25}) {
		t.Fatalf("Snapshot = %v", got)
	}
	r.Reset()
	if got := r.Snapshot(4); !reflect.DeepEqual(got, []float64{0, 0, 0, 0}) {
		t.Errorf("after Reset = %v", got)
	}
}

type sliceStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func TestStreamTapMixesToMono(t *testing.T) {
	src := &sliceStreamer{samples: [][2]float64{{1, 0}, {0.5, 0.5}, {-1, 1}}}
	ring := NewRing(8)
	tap := newStreamTap(src, ring)

	buf := make([][2]float64, 4)
	n, ok := tap.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if buf[0] != [2]float64{1, 0} {
		t.Errorf("samples altered: %v", buf[0])
	}
	if got := ring.Snapshot(3); !reflect.DeepEqual(got, []float64{0.5, 0.5, 0}) {
		t.Errorf("ring = %v", got)
	}
}
