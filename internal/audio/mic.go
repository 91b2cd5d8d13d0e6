package audio

import (
	"context"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Microphone opens the default input device as a mono stream.
func Microphone(sampleRate float64, framesPerBuffer int) Opener {
	return func(_ context.Context, ring *Ring) (func(), error) {
		if err := portaudio.Initialize(); err != nil {
			return nil, fmt.Errorf("portaudio init: %w", err)
		}

		stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, framesPerBuffer, func(in []float32) {
			ring.Write32(in)
		})
		if err != nil {
			portaudio.Terminate()
			return nil, fmt.Errorf("open input stream: %w", err)
		}
		if err := stream.Start(); err != nil {
			stream.Close()
			portaudio.Terminate()
			return nil, fmt.Errorf("start input stream: %w", err)
		}

		return func() {
			stream.Stop()
			stream.Close()
			portaudio.Terminate()
		}, nil
	}
}
