// Package controller implements the NES's strobe-gated controller
// shift register. It has no dependency on any windowing or input
// library: button state is driven entirely by discrete Press/Release
// calls, so it can be exercised directly by the bus or by tests.
package controller

// Button bits within the button-state byte, in shift-out order.
const (
	ButtonA = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller models one of the console's two controller ports.
type Controller struct {
	buttons uint8
	strobe  bool
	shift   uint8
}

// New returns a Controller with no buttons pressed and the strobe
// line low.
func New() *Controller {
	return &Controller{shift: ButtonA}
}

// Press sets the given button's bit in the live button-state byte.
func (c *Controller) Press(button uint8) {
	c.buttons |= button
}

// Release clears the given button's bit.
func (c *Controller) Release(button uint8) {
	c.buttons &^= button
}

// Write handles a CPU write to this controller's port ($4016 or
// $4017): bit 0 is the strobe line. While strobe is held high, the
// shift position is forced back to the A button on every read.
func (c *Controller) Write(val uint8) {
	c.strobe = val&0x01 != 0
	if c.strobe {
		c.shift = ButtonA
	}
}

// Read handles a CPU read of this controller's port, returning 1 if
// the currently-selected button is pressed and 0 otherwise. With the
// strobe held high, every read reports the A button without advancing
// the shift position. With the strobe low, each read reports the next
// button in A,B,Select,Start,Up,Down,Left,Right order and advances;
// once all eight have been reported the ninth and further reads keep
// reporting A until the port is strobed again.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return bit(c.buttons, ButtonA)
	}

	if c.shift == 0 { // all eight buttons already reported
		return bit(c.buttons, ButtonA)
	}
	v := bit(c.buttons, c.shift)
	c.shift <<= 1
	return v
}

func bit(buttons, mask uint8) uint8 {
	if buttons&mask != 0 {
		return 1
	}
	return 0
}
