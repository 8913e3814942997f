package controller

import "testing"

func TestReadOrderMatchesButtonLayout(t *testing.T) {
	c := New()
	c.Press(ButtonA)
	c.Press(ButtonStart)
	c.Press(ButtonRight)

	c.Write(1) // strobe high
	c.Write(0) // strobe low, latches the shift register

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1} // A,B,Select,Start,Up,Down,Left,Right
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("read %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEightReturnsA(t *testing.T) {
	c := New()
	c.Press(ButtonA)
	c.Write(1)
	c.Write(0)

	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d past the 8th = %d, want 1 (A held)", i, got)
		}
	}
}

func TestStrobeHighAlwaysReportsA(t *testing.T) {
	c := New()
	c.Press(ButtonB)
	c.Write(1) // strobe high

	if got := c.Read(); got != 0 {
		t.Errorf("Read() with A unpressed = %d, want 0", got)
	}

	c.Press(ButtonA)
	if got := c.Read(); got != 1 {
		t.Errorf("Read() with A pressed = %d, want 1", got)
	}
	if got := c.Read(); got != 1 {
		t.Errorf("second Read() under strobe = %d, want 1 (doesn't advance)", got)
	}
}

func TestReleaseClearsButton(t *testing.T) {
	c := New()
	c.Press(ButtonA)
	c.Release(ButtonA)
	c.Write(1)
	if got := c.Read(); got != 0 {
		t.Errorf("Read() after release = %d, want 0", got)
	}
}
