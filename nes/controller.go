package nes

// SetButtons replaces the live button state. Read samples it at the moment
// of each read; nothing is copied when strobe goes low, so a SetButtons call
// between strobe-low reads changes the bits those later reads return.
func (c *Controller) SetButtons(buttons [8]bool) {
	c.buttons = buttons
}

// Write updates the strobe latch. While strobe bit 0 is set, Read keeps
// returning the state of button A on every call; the shift register only
// starts advancing once strobe goes low.
func (c *Controller) Write(value byte) {
	c.strobe = value
	if c.strobe&1 == 1 {
		c.shift = 0
	}
}

// Read shifts out one button state per call, low bit first, with the
// open-bus upper bits a real NES pad reports set.
func (c *Controller) Read() byte {
	var value byte
	if c.strobe&1 == 1 {
		if c.buttons[ButtonA] {
			value = 1
		}
	} else {
		if c.shift < 8 && c.buttons[c.shift] {
			value = 1
		}
		c.shift++
	}
	return value | 0x40
}
