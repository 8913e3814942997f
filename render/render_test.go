package render

import "testing"

func blankSnapshot() Snapshot {
	s := Snapshot{
		Mask: maskShowBackground | maskShowSprites,
	}
	s.Pattern = func(addr uint16) uint8 { return 0 }
	return s
}

func TestFrameSizeAndOpaqueAlpha(t *testing.T) {
	s := blankSnapshot()
	buf := Frame(s)
	if len(buf) != Width*Height*4 {
		t.Fatalf("len(buf) = %d, want %d", len(buf), Width*Height*4)
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0xFF {
			t.Fatalf("alpha at pixel %d = %02x, want ff", i/4, buf[i])
		}
	}
}

func TestBackgroundTileDecodesFromPatternTable(t *testing.T) {
	s := blankSnapshot()
	// nametable entry (0,0) = tile 1, attribute byte selects palette 0.
	s.VRAM[0] = 1
	s.VRAM[0x3C0] = 0x00
	// tile 1's low-plane row 0 = 0xFF (all bits set -> pixel value 1 everywhere).
	s.Pattern = func(addr uint16) uint8 {
		if addr == 1*16 {
			return 0xFF
		}
		return 0
	}
	s.Palette[1] = 0x30 // palette 0, index 1 -> system palette entry 0x30 (white)

	buf := Frame(s)
	r, g, b := buf[0], buf[1], buf[2]
	want := systemPalette[0x30]
	if r != want[0] || g != want[1] || b != want[2] {
		t.Fatalf("top-left pixel = (%d,%d,%d), want %v", r, g, b, want)
	}
}

func TestSpritePixelZeroIsTransparent(t *testing.T) {
	s := blankSnapshot()
	// background off, so an untouched pixel stays black
	s.Mask = maskShowSprites
	s.OAM[0], s.OAM[1], s.OAM[2], s.OAM[3] = 10, 0, 0, 10 // sprite 0 at (10,10), tile 0
	// pattern stays all zero -> every pixel value is 0 -> fully transparent
	buf := Frame(s)
	i := (11*Width + 10) * 4
	if buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0 {
		t.Fatalf("transparent sprite pixel drawn as (%d,%d,%d)", buf[i], buf[i+1], buf[i+2])
	}
}

func TestSpriteTopRowPaintsAtOAMY(t *testing.T) {
	s := blankSnapshot()
	// background off, so an untouched pixel stays black
	s.Mask = maskShowSprites
	s.OAM[0], s.OAM[1], s.OAM[2], s.OAM[3] = 20, 0, 0, 5 // sprite 0 at (5,20), tile 0
	// only tile 0's row 0 is opaque, so the sprite's top row must land
	// exactly on scanline 20 -- matching OAM[0] with no offset, the same
	// Y the PPU uses for sprite-0-hit.
	s.Pattern = func(addr uint16) uint8 {
		if addr == 0 {
			return 0xFF
		}
		return 0
	}
	s.Palette[0x11] = 0x30 // palette 0, index 1 -> system palette entry 0x30 (white)

	buf := Frame(s)
	want := systemPalette[0x30]
	atY := (20*Width + 5) * 4
	if buf[atY] != want[0] || buf[atY+1] != want[1] || buf[atY+2] != want[2] {
		t.Fatalf("pixel at sprite's OAM Y (20,5) = (%d,%d,%d), want %v", buf[atY], buf[atY+1], buf[atY+2], want)
	}
	belowY := (21*Width + 5) * 4
	if buf[belowY] != 0 || buf[belowY+1] != 0 || buf[belowY+2] != 0 {
		t.Fatalf("row below sprite's top scanline is painted: (%d,%d,%d)", buf[belowY], buf[belowY+1], buf[belowY+2])
	}
}

func TestNametableMirroringEquivalence(t *testing.T) {
	cases := []struct {
		mirroring uint8
		a, b      int // logical nametables expected to share one physical slot
	}{
		{MirrorVertical, 0, 2},
		{MirrorVertical, 1, 3},
		{MirrorHorizontal, 0, 1},
		{MirrorHorizontal, 2, 3},
	}
	for _, tc := range cases {
		if nametableIndex(tc.a, tc.mirroring) != nametableIndex(tc.b, tc.mirroring) {
			t.Errorf("mirroring %d: nametable %d and %d not equivalent", tc.mirroring, tc.a, tc.b)
		}
	}
}
