// Command nescore runs the emulator core against a cartridge image,
// displaying it in an ebiten window.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"nescore/cartridge"
	"nescore/controller"
	"nescore/emulator"
	"nescore/mappers"
	"nescore/render"
)

var romPath = flag.String("rom", "", "Path to an NES ROM image; omit to pick one from a file dialog.")

func main() {
	flag.Parse()

	path := *romPath
	if path == "" {
		chosen, err := dialog.File().Filter("NES ROM", "nes").Title("Select an NES ROM").Load()
		if err != nil {
			log.Fatalf("no ROM selected: %v", err)
		}
		path = chosen
	}

	rom, err := cartridge.New(path)
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("couldn't resolve mapper: %v", err)
	}

	console := emulator.New(m)

	frames := make(chan render.Snapshot, 1)
	input := make(chan emulator.InputEvent, 1)

	ctx, cancel := context.WithCancel(context.Background())
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigQuit
		cancel()
	}()

	go console.Run(ctx, frames, input)

	game := newGameAdapter(frames, input)
	ebiten.SetWindowSize(render.Width*2, render.Height*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	close(input)
	cancel()
	os.Exit(0)
}

// keyBindings maps host keys to controller 1 buttons, per the fixed
// U/I/V/B/WSAD layout.
var keyBindings = map[ebiten.Key]uint8{
	ebiten.KeyU: controller.ButtonA,
	ebiten.KeyI: controller.ButtonB,
	ebiten.KeyV: controller.ButtonSelect,
	ebiten.KeyB: controller.ButtonStart,
	ebiten.KeyW: controller.ButtonUp,
	ebiten.KeyS: controller.ButtonDown,
	ebiten.KeyA: controller.ButtonLeft,
	ebiten.KeyD: controller.ButtonRight,
}

// gameAdapter implements ebiten.Game, translating ebiten's key-state
// polling into discrete InputEvents and ebiten's draw callback into a
// blit of the most recently published Snapshot.
type gameAdapter struct {
	frames <-chan render.Snapshot
	input  chan<- emulator.InputEvent
	held   map[ebiten.Key]bool
	pixels []uint8
	img    *ebiten.Image
}

func newGameAdapter(frames <-chan render.Snapshot, input chan<- emulator.InputEvent) *gameAdapter {
	return &gameAdapter{
		frames: frames,
		input:  input,
		held:   make(map[ebiten.Key]bool),
		img:    ebiten.NewImage(render.Width, render.Height),
	}
}

func (g *gameAdapter) Update() error {
	for key, button := range keyBindings {
		pressed := ebiten.IsKeyPressed(key)
		if pressed == g.held[key] {
			continue
		}
		g.held[key] = pressed
		ev := emulator.InputEvent{Controller: 0, Button: button, Pressed: pressed}
		select {
		case g.input <- ev:
		default:
			// the compute loop hasn't drained the last event yet;
			// drop this one rather than block the window loop.
		}
	}

	select {
	case snap := <-g.frames:
		g.pixels = render.Frame(snap)
		g.img.WritePixels(g.pixels)
	default:
	}
	return nil
}

func (g *gameAdapter) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.Width, render.Height
}
