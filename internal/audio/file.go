package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

// Player plays an audio file through the speaker and samples what it plays.
// An empty path asks the user to pick a file.
type Player struct {
	path string
	loop bool
	log  *slog.Logger

	mu   sync.Mutex
	ctrl *beep.Ctrl
}

func NewPlayer(path string, loop bool, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{path: path, loop: loop, log: log}
}

// Open is an Opener that starts playback.
func (p *Player) Open(ctx context.Context, ring *Ring) (func(), error) {
	path := p.path
	if path == "" {
		sel, err := selectFile(ctx)
		if err != nil {
			return nil, err
		}
		path = sel
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	p.log.Info("audio file loaded", "path", path, "rate", int(format.SampleRate), "length", format.SampleRate.D(streamer.Len()))

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	var src beep.Streamer = streamer
	if p.loop {
		src = beep.Loop(-1, streamer)
	}
	// The tap sits outside the ctrl so a paused player feeds silence to the ring.
	ctrl := &beep.Ctrl{Streamer: src}
	p.mu.Lock()
	p.ctrl = ctrl
	p.mu.Unlock()

	speaker.Play(beep.Seq(newStreamTap(ctrl, ring), beep.Callback(func() {
		ring.Reset()
		p.log.Info("audio file finished", "path", path)
	})))

	return func() {
		p.mu.Lock()
		p.ctrl = nil
		p.mu.Unlock()
		speaker.Clear()
		_ = streamer.Close()
	}, nil
}

// TogglePause pauses or resumes playback and reports whether it is now paused.
// It does nothing before playback has started.
func (p *Player) TogglePause() bool {
	p.mu.Lock()
	ctrl := p.ctrl
	p.mu.Unlock()
	if ctrl == nil {
		return false
	}

	speaker.Lock()
	ctrl.Paused = !ctrl.Paused
	paused := ctrl.Paused
	speaker.Unlock()
	return paused
}

func selectFile(ctx context.Context) (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Context(ctx),
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrNoSource
		}
		return "", err
	}
	return filename, nil
}

// decode picks a decoder by file extension. The streamer owns f.
func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
