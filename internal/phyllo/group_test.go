package phyllo

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type fakeSurface struct {
	color       colorful.Color
	rotation    float64
	matrices    []Matrix
	invalidated int
}

func (f *fakeSurface) SetColor(c colorful.Color) { f.color = c }
func (f *fakeSurface) SetRotation(angle float64) { f.rotation = angle }
func (f *fakeSurface) SetInstances(m []Matrix)   { f.matrices = m }
func (f *fakeSurface) Invalidate()               { f.invalidated++ }

func TestGroupResizeIsDeterministic(t *testing.T) {
	g := NewGroup(0, 200, 5, nil)
	g.ApplyFrame(180, true)

	g.Resize(200, 5)
	first := g.Instances()
	g.Resize(200, 5)
	second := g.Instances()

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("instance %d differs: %+v vs %+v", i, first[i], second[i])
		}
		if first[i].Position.Z != 0 || first[i].Scale != 1 {
			t.Fatalf("instance %d not reset: %+v", i, first[i])
		}
	}
}

func TestGroupResizeChangesCount(t *testing.T) {
	g := NewGroup(0, 500, 5, nil)
	for _, n := range []int{510, 10, 20, 1000} {
		g.Resize(n, 2)
		if g.Len() != n {
			t.Fatalf("Len = %d after Resize(%d)", g.Len(), n)
		}
		last := g.Instance(n - 1)
		x, y := Layout(n-1, 2)
		if last.Position.X != x || last.Position.Y != y {
			t.Errorf("last point = %+v, want (%v, %v)", last.Position, x, y)
		}
	}
}

func TestGroupApplyFrame(t *testing.T) {
	tests := []struct {
		name      string
		loudness  float64
		wiggle    bool
		wantZ     float64
		wantScale float64
	}{
		{"silence", 0, true, 0, 1},
		{"loud no wiggle", 128, false, 0, 1 + 128.0/255},
		{"loud wiggle", 128, true, math.Sin(12.8) * (128.0 / 255) * 10, 1 + 128.0/255},
		{"max", 255, false, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGroup(0, 100, 5, nil)
			g.ApplyFrame(tt.loudness, tt.wiggle)
			for i := 0; i < g.Len(); i++ {
				in := g.Instance(i)
				x, y := Layout(i, 5)
				if in.Position.X != x || in.Position.Y != y {
					t.Fatalf("point %d moved in plane: %+v", i, in.Position)
				}
				if math.Abs(in.Position.Z-tt.wantZ) > eps {
					t.Fatalf("point %d z = %v, want %v", i, in.Position.Z, tt.wantZ)
				}
				if math.Abs(in.Scale-tt.wantScale) > eps {
					t.Fatalf("point %d scale = %v, want %v", i, in.Scale, tt.wantScale)
				}
			}
		})
	}
}

func TestGroupCommit(t *testing.T) {
	s := &fakeSurface{}
	g := NewGroup(1, 40, 3, s)
	g.ApplyFrame(51, false)
	g.SetColor(colorful.Hsl(90, 1, 0.5))
	g.Rotate(0.25)
	g.Rotate(0.25)
	g.Commit()

	if s.invalidated != 1 {
		t.Errorf("invalidated = %d, want 1", s.invalidated)
	}
	if len(s.matrices) != 40 {
		t.Fatalf("matrices = %d, want 40", len(s.matrices))
	}
	if s.rotation != 0.5 {
		t.Errorf("rotation = %v, want 0.5", s.rotation)
	}
	for i, m := range s.matrices {
		in := g.Instance(i)
		if m.Position() != in.Position || m.Scale() != in.Scale {
			t.Fatalf("matrix %d = %v/%v, want %+v", i, m.Position(), m.Scale(), in)
		}
	}

	g.Resize(20, 3)
	g.Commit()
	if len(s.matrices) != 20 {
		t.Errorf("after shrink matrices = %d, want 20", len(s.matrices))
	}
}

func TestGroupCommitWithoutSurface(t *testing.T) {
	g := NewGroup(0, 10, 1, nil)
	g.Commit()
}
