// Package render composes a PPU snapshot into an RGBA framebuffer. It
// never touches live PPU or bus state: every call operates on a
// value-copied Snapshot, so the next frame's emulation can run
// concurrently with compositing the previous one.
package render

const (
	Width  = 256
	Height = 240
)

// Snapshot is an immutable view of everything the compositor needs:
// copied VRAM/OAM/palette bytes, the scroll/control bits in effect
// for the frame, and a read-only accessor into pattern memory (which
// may live in cartridge CHR ROM, so it is handed in as a func rather
// than copied wholesale).
type Snapshot struct {
	VRAM      [2048]uint8
	Palette   [32]uint8
	OAM       [256]uint8
	Mirroring uint8
	Ctrl      uint8
	Mask      uint8
	ScrollX   uint8
	ScrollY   uint8
	Pattern   func(addr uint16) uint8
}

// CTRL bits relevant to compositing.
const (
	ctrlNametableMask  = 0x03
	ctrlBGPatternTable = 1 << 4
	ctrlSpritePattern  = 1 << 3
	ctrlSpriteSize     = 1 << 5
)

// MASK bits relevant to compositing.
const (
	maskShowBackground = 1 << 3
	maskShowSprites    = 1 << 4
)

// Mirroring modes, matching the PPU package's constants by value.
const (
	MirrorHorizontal = iota
	MirrorVertical
	MirrorFourScreen
)

// Frame composites snapshot into a 256x240 RGBA buffer per the fixed
// NES compositing order: background sprites, background tiles,
// foreground sprites.
func Frame(s Snapshot) []uint8 {
	buf := make([]uint8, Width*Height*4)
	for i := 3; i < len(buf); i += 4 {
		buf[i] = 0xFF // alpha always opaque
	}

	if s.Mask&maskShowSprites != 0 {
		drawSprites(s, buf, true)
	}
	if s.Mask&maskShowBackground != 0 {
		drawBackground(s, buf)
	}
	if s.Mask&maskShowSprites != 0 {
		drawSprites(s, buf, false)
	}
	return buf
}

func setPixel(buf []uint8, x, y int, rgb [3]uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	i := (y*Width + x) * 4
	buf[i], buf[i+1], buf[i+2] = rgb[0], rgb[1], rgb[2]
}

// nametableIndex returns which of the two 1KB physical slots (0 or
// 1, since only two physical nametables exist behind the mirroring
// hardware) backs logical nametable `which` (0-3).
func nametableIndex(which int, mirroring uint8) int {
	switch mirroring {
	case MirrorVertical:
		return which % 2
	case MirrorHorizontal:
		return which / 2
	default: // four-screen: no extra RAM modeled, fold to the 2KB we have
		return which % 2
	}
}

func bgPatternBase(ctrl uint8) uint16 {
	if ctrl&ctrlBGPatternTable != 0 {
		return 0x1000
	}
	return 0
}

// tilePixel decodes pixel (col,row) of the tile at patternBase+tile*16
// using the standard two-bit-plane NES tile format.
func tilePixel(s Snapshot, patternBase uint16, tile uint8, col, row int) uint8 {
	addr := patternBase + uint16(tile)*16 + uint16(row)
	lo := s.Pattern(addr)
	hi := s.Pattern(addr + 8)
	shift := uint(7 - col)
	return (hi>>shift&1)<<1 | (lo >> shift & 1)
}

func bgColor(s Snapshot, nametableBase int, tileX, tileY int) uint8 {
	attrAddr := nametableBase + 0x3C0 + (tileY/4)*8 + tileX/4
	attr := s.VRAM[attrAddr]
	shift := uint(((tileY%4)/2)*4 + ((tileX%4)/2)*2)
	return (attr >> shift) & 0x03
}

// drawNametable paints one full 32x30 logical nametable, offset by
// (originX, originY) pixels in the output buffer.
func drawNametable(s Snapshot, buf []uint8, logical int, originX, originY int) {
	base := nametableIndex(logical, s.Mirroring) * 0x400
	patternBase := bgPatternBase(s.Ctrl)

	for tileY := 0; tileY < 30; tileY++ {
		for tileX := 0; tileX < 32; tileX++ {
			tile := s.VRAM[base+tileY*32+tileX]
			palSel := bgColor(s, base, tileX, tileY)
			for row := 0; row < 8; row++ {
				for col := 0; col < 8; col++ {
					px := tilePixel(s, patternBase, tile, col, row)
					var colorIdx uint8
					if px == 0 {
						colorIdx = s.Palette[0]
					} else {
						colorIdx = s.Palette[int(palSel)*4+int(px)]
					}
					setPixel(buf, originX+tileX*8+col, originY+tileY*8+row, systemPalette[colorIdx&0x3F])
				}
			}
		}
	}
}

// drawBackground renders the main nametable clipped to the current
// scroll origin, plus whichever single neighbor the scroll exposes.
func drawBackground(s Snapshot, buf []uint8) {
	main := int(s.Ctrl & ctrlNametableMask)
	drawNametable(s, buf, main, -int(s.ScrollX), -int(s.ScrollY))

	switch {
	case s.ScrollX > 0:
		drawNametable(s, buf, main^1, Width-int(s.ScrollX), -int(s.ScrollY))
	case s.ScrollY > 0:
		drawNametable(s, buf, main^2, -int(s.ScrollX), Height-int(s.ScrollY))
	}
}

// drawSprites paints every OAM entry whose priority bit matches
// wantBehind, iterating in reverse OAM order so sprite 0 ends up on
// top among equal-priority sprites.
func drawSprites(s Snapshot, buf []uint8, wantBehind bool) {
	tall := s.Ctrl&ctrlSpriteSize != 0

	for i := 63; i >= 0; i-- {
		o := s.OAM[i*4 : i*4+4]
		y, tile, attr, x := int(o[0]), o[1], o[2], int(o[3])
		behind := attr&0x20 != 0
		if behind != wantBehind {
			continue
		}
		flipH := attr&0x40 != 0
		flipV := attr&0x80 != 0
		palSel := attr & 0x03

		height := 8
		if tall {
			height = 16
		}
		for row := 0; row < height; row++ {
			srow := row
			if flipV {
				srow = height - 1 - row
			}
			patternBase, patTile := spriteTile(s.Ctrl, tall, tile, srow)
			tileRow := srow % 8
			for col := 0; col < 8; col++ {
				scol := col
				if flipH {
					scol = 7 - col
				}
				px := tilePixel(s, patternBase, patTile, scol, tileRow)
				if px == 0 {
					continue // transparent
				}
				colorIdx := s.Palette[0x10+int(palSel)*4+int(px)]
				setPixel(buf, x+col, y+row, systemPalette[colorIdx&0x3F])
			}
		}
	}
}

// spriteTile resolves the pattern-table base and tile number for row
// srow (0-based within the sprite, 0-15 in 8x16 mode).
func spriteTile(ctrl uint8, tall bool, tile uint8, srow int) (uint16, uint8) {
	if !tall {
		base := uint16(0)
		if ctrl&ctrlSpritePattern != 0 {
			base = 0x1000
		}
		return base, tile
	}

	base := uint16(0)
	if tile&1 != 0 {
		base = 0x1000
	}
	top := tile &^ 1
	bottom := tile | 1
	if srow < 8 {
		return base, top
	}
	return base, bottom
}

var systemPalette = [64][3]uint8{
	{0x80, 0x80, 0x80}, {0x00, 0x3D, 0xA6}, {0x00, 0x12, 0xB0}, {0x44, 0x00, 0x96}, {0xA1, 0x00, 0x5E},
	{0xC7, 0x00, 0x28}, {0xBA, 0x06, 0x00}, {0x8C, 0x17, 0x00}, {0x5C, 0x2F, 0x00}, {0x10, 0x45, 0x00},
	{0x05, 0x4A, 0x00}, {0x00, 0x47, 0x2E}, {0x00, 0x41, 0x66}, {0x00, 0x00, 0x00}, {0x05, 0x05, 0x05}, {0x05, 0x05, 0x05},
	{0xC7, 0xC7, 0xC7}, {0x00, 0x77, 0xFF}, {0x21, 0x55, 0xFF}, {0x82, 0x37, 0xFA}, {0xEB, 0x2F, 0xB5},
	{0xFF, 0x29, 0x50}, {0xFF, 0x22, 0x00}, {0xD6, 0x32, 0x00}, {0xC4, 0x62, 0x00}, {0x35, 0x80, 0x00},
	{0x05, 0x8F, 0x00}, {0x00, 0x8A, 0x55}, {0x00, 0x99, 0xCC}, {0x21, 0x21, 0x21}, {0x09, 0x09, 0x09}, {0x09, 0x09, 0x09},
	{0xFF, 0xFF, 0xFF}, {0x0F, 0xD7, 0xFF}, {0x69, 0xA2, 0xFF}, {0xD4, 0x80, 0xFF}, {0xFF, 0x45, 0xF3},
	{0xFF, 0x61, 0x8B}, {0xFF, 0x88, 0x33}, {0xFF, 0x9C, 0x12}, {0xFA, 0xBC, 0x20}, {0x9F, 0xE3, 0x0E},
	{0x2B, 0xF0, 0x35}, {0x0C, 0xF0, 0xA4}, {0x05, 0xFB, 0xFF}, {0x5E, 0x5E, 0x5E}, {0x0D, 0x0D, 0x0D}, {0x0D, 0x0D, 0x0D},
	{0xFF, 0xFF, 0xFF}, {0xA6, 0xFC, 0xFF}, {0xB3, 0xEC, 0xFF}, {0xDA, 0xAB, 0xEB}, {0xFF, 0xA8, 0xF9},
	{0xFF, 0xAB, 0xB3}, {0xFF, 0xD2, 0xB0}, {0xFF, 0xEF, 0xA6}, {0xFF, 0xF7, 0x9C}, {0xD7, 0xE8, 0x95},
	{0xA6, 0xED, 0xAF}, {0xA2, 0xF2, 0xDA}, {0x99, 0xFF, 0xFC}, {0xDD, 0xDD, 0xDD}, {0x11, 0x11, 0x11}, {0x11, 0x11, 0x11},
}
