package ppu

import "testing"

type fakeCart struct {
	chr [0x2000]uint8
}

func (c *fakeCart) ChrRead(addr uint16) uint8     { return c.chr[addr] }
func (c *fakeCart) ChrWrite(addr uint16, v uint8) { c.chr[addr] = v }

func TestMirroringEquivalence(t *testing.T) {
	p := New(&fakeCart{}, MirrorVertical)
	p.vram[0x0000] = 0xAB
	if got := p.vramRead(0x2800); got != 0xAB { // table 2 shares physical 0 with table 0 under vertical mirroring
		t.Fatalf("vertical mirror $2800 = %02x, want ab", got)
	}

	p = New(&fakeCart{}, MirrorHorizontal)
	p.vram[0x0000] = 0xCD
	if got := p.vramRead(0x2400); got != 0xCD { // table 1 shares physical 0 with table 0 under horizontal mirroring
		t.Fatalf("horizontal mirror $2400 = %02x, want cd", got)
	}
}

func TestPaletteMirrors(t *testing.T) {
	p := New(&fakeCart{}, MirrorHorizontal)
	p.vramWrite(0x3F00, 0x20)
	if got := p.vramRead(0x3F10); got != 0x20 {
		t.Fatalf("$3F10 = %02x, want 20 (aliases $3F00)", got)
	}
}

func TestBufferedDataRead(t *testing.T) {
	p := New(&fakeCart{}, MirrorHorizontal)
	p.vram[0x0000] = 0x11
	p.vram[0x0001] = 0x22

	p.WriteRegister(6, 0x20) // ADDR hi
	p.WriteRegister(6, 0x00) // ADDR lo -> $2000
	first := p.ReadRegister(7)
	second := p.ReadRegister(7)
	if first != 0x00 {
		t.Fatalf("first buffered read = %02x, want 00 (stale buffer)", first)
	}
	if second != 0x11 {
		t.Fatalf("second buffered read = %02x, want 11", second)
	}
}

func TestStatusReadClearsVblankAndLatch(t *testing.T) {
	p := New(&fakeCart{}, MirrorHorizontal)
	p.status |= StatusVblank
	p.latch = true
	v := p.ReadRegister(2)
	if v&StatusVblank == 0 {
		t.Fatalf("status read returned vblank already cleared")
	}
	if p.status&StatusVblank != 0 {
		t.Fatalf("status not cleared after read")
	}
	if p.latch {
		t.Fatalf("latch not reset after status read")
	}
}

func TestOAMDMAWritesFromOAMAddr(t *testing.T) {
	p := New(&fakeCart{}, MirrorHorizontal)
	p.oamAddr = 0
	var page [256]uint8
	for i := range page {
		page[i] = uint8(i)
	}
	p.OAMDMA(page)
	for i := 0; i < 256; i++ {
		if p.oam[i] != uint8(i) {
			t.Fatalf("oam[%d] = %d, want %d", i, p.oam[i], i)
		}
	}
}

func TestVblankSetAndNMIRaised(t *testing.T) {
	p := New(&fakeCart{}, MirrorHorizontal)
	p.ctrl = ctrlNMIEnable
	// advance to scanline 241 dot 1: 241*341 + 1 ticks from power-on (scanline=0,dot=0)
	p.Tick(241*dotsPerScanline + 1)
	if p.status&StatusVblank == 0 {
		t.Fatalf("vblank not set at scanline 241 dot 1")
	}
	if !p.NMI() {
		t.Fatalf("NMI not raised with CTRL NMI-enable set")
	}
}

func TestFrameWrapClearsVblankAndNMI(t *testing.T) {
	p := New(&fakeCart{}, MirrorHorizontal)
	p.ctrl = ctrlNMIEnable
	p.Tick(241*dotsPerScanline + 1)
	if !p.NMI() {
		t.Fatalf("setup: NMI should be raised before wrap")
	}
	remaining := (scanlinesPerFrame-241)*dotsPerScanline - 1
	frameDone := p.Tick(remaining)
	if !frameDone {
		t.Fatalf("Tick did not report a crossed frame boundary")
	}
	if p.NMI() {
		t.Fatalf("NMI still asserted after frame wrap")
	}
	if p.status&StatusVblank != 0 {
		t.Fatalf("vblank still set after frame wrap")
	}
}
