package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/phyllotaxis/internal/audio"
	"github.com/iburimskiy/phyllotaxis/internal/config"
	"github.com/iburimskiy/phyllotaxis/internal/game"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Version bool    `short:"v" help:"Show version information"`
	Count   int     `short:"n" default:"${count}" help:"Initial number of spheres per group (min ${min_count})"`
	Spread  float64 `short:"c" default:"${spread}" help:"Initial spiral spread (min ${min_spread})"`
	Groups  int     `short:"g" default:"${groups}" help:"Initial number of groups (0-${max_groups})"`
	Wiggle  bool    `short:"w" help:"Start with wiggle enabled"`
	Source  string  `short:"s" enum:"mic,file,none" default:"mic" help:"Audio source: mic, file or none"`
	File    string  `short:"f" type:"path" help:"Audio file for --source=file; a file dialog opens when empty"`
	NoLoop  bool    `help:"Play the audio file once instead of looping"`
	Width   int     `default:"${width}" help:"Window width"`
	Height  int     `default:"${height}" help:"Window height"`
	Debug   bool    `help:"Enable debug logging"`
}

func (c *CLI) Validate() error {
	if c.Groups < 0 || c.Groups > config.MaxGroups {
		return fmt.Errorf("--groups must be between 0 and %d", config.MaxGroups)
	}
	if math.IsNaN(c.Spread) || math.IsInf(c.Spread, 0) {
		return errors.New("--spread must be a finite number")
	}
	if c.Width < 1 || c.Height < 1 {
		return errors.New("--width and --height must be positive")
	}
	return nil
}

// opener picks the capture backend for the selected source. The pauser
// is only set for file playback.
func (c *CLI) opener(log *slog.Logger) (audio.Opener, game.Pauser) {
	switch c.Source {
	case "mic":
		return audio.Microphone(config.SampleRate, config.FramesPerBuffer), nil
	case "file":
		p := audio.NewPlayer(c.File, !c.NoLoop, log)
		return p.Open, p
	}
	return nil, nil
}

func initLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("phyllotaxis"),
		kong.Description("Audio-reactive phyllotaxis spirals"),
		kong.UsageOnError(),
		kong.Vars{
			"count":      fmt.Sprint(config.DefaultCount),
			"spread":     fmt.Sprint(config.DefaultSpread),
			"groups":     fmt.Sprint(config.DefaultGroups),
			"width":      fmt.Sprint(config.WindowWidth),
			"height":     fmt.Sprint(config.WindowHeight),
			"min_count":  fmt.Sprint(config.MinCount),
			"min_spread": fmt.Sprint(config.MinSpread),
			"max_groups": fmt.Sprint(config.MaxGroups),
		},
	)
	if cli.Version {
		fmt.Println("phyllotaxis", version)
		os.Exit(0)
	}

	log := initLogger(cli.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	capture := audio.NewCapture(config.VisualRingSize, log)
	open, pauser := cli.opener(log)
	capture.Acquire(ctx, cli.Source, open)
	defer capture.Close()

	session := config.NewSession(cli.Count, cli.Spread, cli.Wiggle)
	g := game.New(ctx, session, audio.NewAnalyser(capture, config.FFTSize), cli.Groups, log)
	if pauser != nil {
		g.SetPauser(pauser)
	}
	log.Info("starting", "count", session.Count, "spread", session.Spread, "groups", cli.Groups, "source", cli.Source)

	ebiten.SetWindowSize(cli.Width, cli.Height)
	ebiten.SetWindowTitle("Phyllotaxis - W: wiggle, Space: pause, arrows: size/spread, 1-9: groups, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("render loop failed", "err", err)
		capture.Close()
		os.Exit(1)
	}
}
