// Package game runs the phyllotaxis session inside an ebiten window.
package game

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/phyllotaxis/internal/config"
	"github.com/iburimskiy/phyllotaxis/internal/phyllo"
)

// Meter yields one loudness value per frame once audio is available.
type Meter interface {
	Loudness() (float64, bool)
}

// Pauser pauses and resumes audio playback.
type Pauser interface {
	TogglePause() bool
}

type Game struct {
	ctx      context.Context
	session  *config.Session
	orch     *phyllo.Orchestrator
	meter    Meter
	camera   *Camera
	meshes   []*Mesh
	scratch  []projected
	loudness float64
	hasAudio bool
	player   Pauser
	paused   bool

	// orbit drag
	dragging   bool
	lastCursor [2]int

	log *slog.Logger
}

// New builds a game with the given number of initial groups.
// The game terminates once ctx is done.
func New(ctx context.Context, s *config.Session, meter Meter, groups int, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		ctx:     ctx,
		session: s,
		meter:   meter,
		camera:  NewCamera(config.WindowWidth, config.WindowHeight),
		log:     log,
	}
	g.orch = phyllo.NewOrchestrator(g.newMesh, log)
	g.orch.EnsureGroups(s, groups)
	return g
}

func (g *Game) newMesh(int) phyllo.Surface {
	m := NewMesh()
	g.meshes = append(g.meshes, m)
	return m
}

// SetPauser routes the Space key to p.
func (g *Game) SetPauser(p Pauser) {
	g.player = p
}

func (g *Game) Update() error {
	if g.canceled() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	for _, ev := range pollEvents() {
		g.handle(ev)
	}
	g.updateCamera()
	g.step()
	return nil
}

func (g *Game) canceled() bool {
	select {
	case <-g.ctx.Done():
		g.log.Info("interrupted")
		return true
	default:
		return false
	}
}

func (g *Game) togglePause() {
	if g.player == nil {
		return
	}
	g.paused = g.player.TogglePause()
	g.log.Debug("playback toggled", "paused", g.paused)
}

func (g *Game) handle(ev phyllo.Event) {
	g.orch.Handle(g.session, ev)
	g.log.Debug("control", "control", ev.Control, "count", g.session.Count,
		"spread", g.session.Spread, "wiggle", g.session.Wiggle, "groups", g.orch.Len())
}

// step runs one frame tick: read loudness, then update every group.
func (g *Game) step() {
	g.loudness, g.hasAudio = 0, false
	if g.meter != nil {
		g.loudness, g.hasAudio = g.meter.Loudness()
	}
	g.orch.Tick(g.session, g.loudness, g.hasAudio)
}

func (g *Game) updateCamera() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.camera.Orbit(float64(x-g.lastCursor[0]), float64(y-g.lastCursor[1]))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastCursor = [2]int{x, y}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(wy)
	}
	g.camera.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Draw far to near so nearer spheres cover farther ones across groups.
	g.scratch = g.scratch[:0]
	for _, m := range g.meshes {
		g.scratch = m.project(g.camera, g.scratch)
	}
	slices.SortFunc(g.scratch, func(a, b projected) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	for _, p := range g.scratch {
		vector.DrawFilledCircle(screen, p.x, p.y, p.r, p.fill, true)
	}

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	ebitenutil.DebugPrintAt(screen, "W: wiggle  Space: pause  Up/Down: spheres  Left/Right: spread  1-9: groups  drag/wheel: camera  Esc/Q: quit", 12, 28)
}

func (g *Game) status() string {
	audio := "no audio"
	if g.hasAudio {
		audio = fmt.Sprintf("loudness %.1f", g.loudness)
	}
	if g.paused {
		audio += " (paused)"
	}
	return fmt.Sprintf("spheres %d | spread %.1f | groups %d | wiggle %v | %s",
		g.session.Count, g.session.Spread, g.orch.Len(), g.session.Wiggle, audio)
}

// Layout follows the window size so the camera aspect tracks resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.Resize(outsideWidth, outsideHeight)
	return g.camera.Width, g.camera.Height
}
