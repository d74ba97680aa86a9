// Package host wires a Console to a window, a GPU texture and a PortAudio
// output stream. It intentionally does not implement a ROM browser or save
// states: the program takes a single ROM path and runs it until closed.
package host

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.1/glfw"
	"github.com/gordonklaus/portaudio"

	"github.com/Danishk2445/nes-emulator/nes"
)

const (
	width  = 256
	height = 240
	scale  = 3
)

func init() {
	// a parallel OS thread keeps PortAudio's callback from stalling behind
	// OpenGL calls
	runtime.GOMAXPROCS(2)
	runtime.LockOSThread()
}

// Run opens a window titled after title, loads romPath into a fresh
// Console, and drives it until the window is closed or Escape is pressed.
func Run(romPath, title string) error {
	console, err := nes.NewConsole(romPath)
	if err != nil {
		return err
	}

	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	audio := NewAudio(console)
	if err := audio.Start(); err != nil {
		return err
	}
	defer audio.Stop()

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(width*scale, height*scale, title, nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return err
	}
	gl.Enable(gl.TEXTURE_2D)

	texture := createTexture()

	timestamp := glfw.GetTime()
	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := glfw.GetTime()
		dt := now - timestamp
		timestamp = now
		if dt > 1 {
			dt = 0
		}

		if readKey(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
		}
		updateControllers(window, console)
		console.StepSeconds(dt)

		gl.BindTexture(gl.TEXTURE_2D, texture)
		setTexture(console.Buffer())
		drawBuffer(window)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}
