package audio

import "sync"

// Ring records the most recent mono samples so the analyser can read
// them from the frame loop while a device callback keeps writing.
type Ring struct {
	buffer    []float64
	nextIndex int
	mu        sync.RWMutex
}

func NewRing(size int) *Ring {
	return &Ring{buffer: make([]float64, size)}
}

func (r *Ring) Write(samples []float64) {
	r.mu.Lock()
	for _, s := range samples {
		r.put(s)
	}
	r.mu.Unlock()
}

// Write32 is Write for device callbacks that deliver float32 frames.
func (r *Ring) Write32(samples []float32) {
	r.mu.Lock()
	for _, s := range samples {
		r.put(float64(s))
	}
	r.mu.Unlock()
}

func (r *Ring) put(s float64) {
	r.buffer[r.nextIndex] = s
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
}

// Reset fills the ring with silence.
func (r *Ring) Reset() {
	r.mu.Lock()
	clear(r.buffer)
	r.nextIndex = 0
	r.mu.Unlock()
}

// Snapshot returns up to the last n samples, most recent last.
func (r *Ring) Snapshot(n int) []float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n = min(n, len(r.buffer))
	out := make([]float64, n)
	idx := r.nextIndex - n
	if idx < 0 {
		idx += len(r.buffer)
	}
	for i := range out {
		out[i] = r.buffer[idx]
		idx++
		if idx >= len(r.buffer) {
			idx = 0
		}
	}
	return out
}
