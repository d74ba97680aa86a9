package host

import (
	"github.com/gordonklaus/portaudio"

	"github.com/Danishk2445/nes-emulator/nes"
)

const sampleRate = 44100

// Audio pulls resampled output from the console's APU on PortAudio's own
// callback goroutine; there is no intermediate channel or queue.
type Audio struct {
	console *nes.Console
	stream  *portaudio.Stream
}

func NewAudio(console *nes.Console) *Audio {
	return &Audio{console: console}
}

func (a *Audio) Start() error {
	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, 0, a.callback)
	if err != nil {
		return err
	}
	a.stream = stream
	return a.stream.Start()
}

func (a *Audio) Stop() error {
	if a.stream == nil {
		return nil
	}
	if err := a.stream.Stop(); err != nil {
		return err
	}
	return a.stream.Close()
}

func (a *Audio) callback(out []float32) {
	a.console.APU.FillBuffer(out)
}
