package phyllo

import (
	"log/slog"

	"github.com/iburimskiy/phyllotaxis/internal/config"
)

// Control is an input event understood by the orchestrator.
type Control int

const (
	ToggleWiggle Control = iota
	MorePoints
	FewerPoints
	Tighten
	Loosen
	EnsureGroups
)

func (c Control) String() string {
	switch c {
	case ToggleWiggle:
		return "toggle-wiggle"
	case MorePoints:
		return "more-points"
	case FewerPoints:
		return "fewer-points"
	case Tighten:
		return "tighten"
	case Loosen:
		return "loosen"
	case EnsureGroups:
		return "ensure-groups"
	}
	return "unknown"
}

// Event is a Control plus its argument. Groups is only read for EnsureGroups.
type Event struct {
	Control Control
	Groups  int
}

// SurfaceFactory returns the surface for a newly created group.
type SurfaceFactory func(index int) Surface

// Orchestrator owns the append-only sequence of groups.
type Orchestrator struct {
	groups     []*Group
	newSurface SurfaceFactory
	log        *slog.Logger
}

func NewOrchestrator(newSurface SurfaceFactory, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{newSurface: newSurface, log: log}
}

// EnsureGroups appends full-size groups until at least k exist. It never removes.
func (o *Orchestrator) EnsureGroups(s *config.Session, k int) {
	for len(o.groups) < k {
		idx := len(o.groups)
		var surf Surface
		if o.newSurface != nil {
			surf = o.newSurface(idx)
		}
		g := NewGroup(idx, s.Count, s.Spread, surf)
		g.Commit()
		o.groups = append(o.groups, g)
		o.log.Debug("group created", "index", idx, "count", s.Count, "spread", s.Spread)
	}
}

// Resize regenerates every group with the session's current count and spread.
func (o *Orchestrator) Resize(s *config.Session) {
	for _, g := range o.groups {
		g.Resize(s.Count, s.Spread)
		g.Commit()
	}
	o.log.Debug("groups resized", "groups", len(o.groups), "count", s.Count, "spread", s.Spread)
}

// Handle applies one input event to the session and the group collection.
func (o *Orchestrator) Handle(s *config.Session, ev Event) {
	switch ev.Control {
	case ToggleWiggle:
		s.ToggleWiggle()
		o.log.Debug("wiggle toggled", "wiggle", s.Wiggle)
	case MorePoints:
		s.AdjustCount(config.CountStep)
		o.Resize(s)
	case FewerPoints:
		s.AdjustCount(-config.CountStep)
		o.Resize(s)
	case Tighten:
		s.AdjustSpread(-config.SpreadStep)
		o.Resize(s)
	case Loosen:
		s.AdjustSpread(config.SpreadStep)
		o.Resize(s)
	case EnsureGroups:
		o.EnsureGroups(s, ev.Groups)
	default:
		o.log.Warn("unknown control", "control", ev.Control)
	}
}

// Tick runs one frame. When ok is false there is no loudness yet and
// the groups are left untouched.
func (o *Orchestrator) Tick(s *config.Session, loudness float64, ok bool) {
	if !ok {
		return
	}
	for i, g := range o.groups {
		m := MapFrame(loudness, i)
		g.ApplyFrame(loudness, s.Wiggle)
		g.SetColor(m.Color)
		g.Rotate(m.RotationDelta)
		g.Commit()
	}
}

func (o *Orchestrator) Len() int { return len(o.groups) }

// Group returns the i-th group in creation order.
func (o *Orchestrator) Group(i int) *Group { return o.groups[i] }
