package audio

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	ErrNoSource          = errors.New("no audio source selected")
	ErrUnsupportedFormat = errors.New("unsupported file type")
)

// Opener starts feeding samples into ring and returns a func that releases the device.
type Opener func(ctx context.Context, ring *Ring) (stop func(), err error)

// Capture acquires an audio device exactly once, in the background.
// A failed acquisition leaves it not ready for the rest of the session.
type Capture struct {
	ring  *Ring
	ready atomic.Bool
	once  sync.Once
	done  chan struct{}

	mu     sync.Mutex
	stop   func()
	closed bool

	log *slog.Logger
}

func NewCapture(ringSize int, log *slog.Logger) *Capture {
	if log == nil {
		log = slog.Default()
	}
	return &Capture{
		ring: NewRing(ringSize),
		done: make(chan struct{}),
		log:  log,
	}
}

// Acquire starts the one-shot acquisition. Later calls are ignored.
// A nil opener disables audio.
func (c *Capture) Acquire(ctx context.Context, name string, open Opener) {
	c.once.Do(func() {
		if open == nil {
			c.log.Info("audio disabled")
			close(c.done)
			return
		}
		go c.acquire(ctx, name, open)
	})
}

func (c *Capture) acquire(ctx context.Context, name string, open Opener) {
	defer close(c.done)

	c.log.Info("acquiring audio", "source", name)
	stop, err := open(ctx, c.ring)
	if err != nil {
		c.log.Warn("audio unavailable, visuals stay static", "source", name, "err", err)
		return
	}
	if ctx.Err() != nil {
		if stop != nil {
			stop()
		}
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		if stop != nil {
			stop()
		}
		c.log.Info("audio acquired after close, released", "source", name)
		return
	}
	c.stop = stop
	c.ready.Store(true)
	c.mu.Unlock()
	c.log.Info("audio ready", "source", name)
}

// Done is closed once the acquisition attempt has finished, successful or not.
func (c *Capture) Done() <-chan struct{} { return c.done }

func (c *Capture) Ready() bool { return c.ready.Load() }

func (c *Capture) Snapshot(n int) []float64 { return c.ring.Snapshot(n) }

// Close releases the device if one was acquired. A device acquired
// after Close is released as soon as its open returns.
func (c *Capture) Close() {
	c.mu.Lock()
	stop := c.stop
	c.stop = nil
	c.closed = true
	c.ready.Store(false)
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
}
