package config

import "math"

// Session holds the process-wide parameters shared by every group.
// It is mutated only by input handlers and read by the frame tick.
type Session struct {
	Count  int
	Spread float64
	Wiggle bool
}

// NewSession returns a session with count and spread clamped to their floors.
// A spread that is not finite falls back to DefaultSpread.
func NewSession(count int, spread float64, wiggle bool) *Session {
	if math.IsNaN(spread) || math.IsInf(spread, 0) {
		spread = DefaultSpread
	}
	return &Session{
		Count:  max(count, MinCount),
		Spread: max(spread, MinSpread),
		Wiggle: wiggle,
	}
}

// AdjustCount moves the point count by delta, never below MinCount.
func (s *Session) AdjustCount(delta int) {
	s.Count = max(s.Count+delta, MinCount)
}

// AdjustSpread moves the layout parameter by delta, never below MinSpread.
func (s *Session) AdjustSpread(delta float64) {
	s.Spread = max(s.Spread+delta, MinSpread)
}

func (s *Session) ToggleWiggle() {
	s.Wiggle = !s.Wiggle
}
