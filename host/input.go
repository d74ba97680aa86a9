package host

import (
	"github.com/go-gl/glfw/v3.1/glfw"

	"github.com/Danishk2445/nes-emulator/nes"
)

func readKey(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// updateControllers maps a conventional keyboard layout onto the NES
// joypad: Z/X for B/A, Enter/Backspace for Start/Select, arrow keys for the
// d-pad. Only the first controller port is driven; the second stays idle.
func updateControllers(window *glfw.Window, console *nes.Console) {
	var buttons [8]bool
	buttons[nes.ButtonA] = readKey(window, glfw.KeyX)
	buttons[nes.ButtonB] = readKey(window, glfw.KeyZ)
	buttons[nes.ButtonSelect] = readKey(window, glfw.KeyBackspace)
	buttons[nes.ButtonStart] = readKey(window, glfw.KeyEnter)
	buttons[nes.ButtonUp] = readKey(window, glfw.KeyUp)
	buttons[nes.ButtonDown] = readKey(window, glfw.KeyDown)
	buttons[nes.ButtonLeft] = readKey(window, glfw.KeyLeft)
	buttons[nes.ButtonRight] = readKey(window, glfw.KeyRight)
	console.SetButtons1(buttons)
}
