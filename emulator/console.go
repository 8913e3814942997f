// Package emulator composes the CPU, bus, PPU, cartridge mapper, and
// controllers into one running console, and drives the compute loop
// that feeds the display side a PPU snapshot once per frame.
package emulator

import (
	"context"

	"nescore/bus"
	"nescore/controller"
	"nescore/cpu"
	"nescore/mappers"
	"nescore/render"
)

// InputEvent is a single button transition reported by the host's
// input library, destined for one of the two controller ports.
type InputEvent struct {
	Controller int // 0 or 1
	Button     uint8
	Pressed    bool
}

// Console owns the full emulation tree: CPU, bus (which in turn owns
// the PPU, cartridge mapper, and controllers).
type Console struct {
	cpu   *cpu.CPU
	bus   *bus.Bus
	ctrl1 *controller.Controller
	ctrl2 *controller.Controller
}

// New builds a Console around an already-resolved cartridge mapper.
func New(m mappers.Mapper) *Console {
	ctrl1 := controller.New()
	ctrl2 := controller.New()
	b := bus.New(m, ctrl1, ctrl2)
	c := cpu.New(b)
	c.Reset()
	return &Console{cpu: c, bus: b, ctrl1: ctrl1, ctrl2: ctrl2}
}

// Run executes CPU steps until ctx is cancelled or input is closed.
// Whenever a step crosses a frame boundary it blocks on a snapshot
// send to frames, providing the only backpressure point toward the
// display side; it drains any already-pending InputEvents into the
// controllers without blocking.
func (c *Console) Run(ctx context.Context, frames chan<- render.Snapshot, input <-chan InputEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_, frameDone := c.cpu.Step()
		if closed := c.drainInput(input); closed {
			return
		}

		if frameDone {
			snap := c.bus.PPUSnapshot()
			select {
			case frames <- snap:
			case <-ctx.Done():
				return
			}
		}
	}
}

// drainInput applies every InputEvent already buffered on input
// without blocking, reporting true if the channel has been closed.
func (c *Console) drainInput(input <-chan InputEvent) bool {
	for {
		select {
		case ev, ok := <-input:
			if !ok {
				return true
			}
			c.apply(ev)
		default:
			return false
		}
	}
}

func (c *Console) apply(ev InputEvent) {
	ctrl := c.ctrl1
	if ev.Controller == 1 {
		ctrl = c.ctrl2
	}
	if ev.Pressed {
		ctrl.Press(ev.Button)
	} else {
		ctrl.Release(ev.Button)
	}
}
