// Package ppu implements the console's Picture Processing Unit: its
// register file, internal VRAM/OAM/palette memory, scanline/dot
// timing, and NMI signaling. It never draws pixels itself — see
// package render for that — it only exposes an immutable Snapshot of
// its state once per frame.
package ppu

import (
	"fmt"

	"nescore/render"
)

const (
	vramSize    = 2048
	oamSize     = 256
	paletteSize = 32
)

// Mirroring modes, matching the cartridge header's mirroringMode().
const (
	MirrorHorizontal = iota
	MirrorVertical
	MirrorFourScreen
)

// CTRL ($2000) bit layout.
const (
	ctrlNametableMask  = 0x03
	ctrlVRAMIncrement  = 1 << 2
	ctrlSpritePattern  = 1 << 3
	ctrlBGPattern      = 1 << 4
	ctrlSpriteSize     = 1 << 5
	ctrlMasterSlave    = 1 << 6
	ctrlNMIEnable      = 1 << 7
)

// MASK ($2001) bit layout.
const (
	MaskGreyscale       = 1 << 0
	MaskShowLeftBG      = 1 << 1
	MaskShowLeftSprites = 1 << 2
	MaskShowBackground  = 1 << 3
	MaskShowSprites     = 1 << 4
)

// STATUS ($2002) bit layout.
const (
	StatusSpriteOverflow = 1 << 5
	StatusSprite0Hit     = 1 << 6
	StatusVblank         = 1 << 7
)

const (
	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	vblankStartScanline = 241
)

// CartBus is the slice of a cartridge Mapper the PPU needs: raw
// access to pattern (CHR) memory.
type CartBus interface {
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
}

// PPU holds all picture-processing state. The CPU reaches it only
// through Bus, never directly.
type PPU struct {
	cart      CartBus
	mirroring uint8

	vram    [vramSize]uint8
	palette [paletteSize]uint8
	oam     [oamSize]uint8

	ctrl, mask, status uint8
	oamAddr            uint8

	latch      bool // shared write-toggle for addr/scroll, per the real hardware
	addrReg    twoWriteReg
	scrollReg  twoWriteReg
	vramAddr   uint16
	bufferData uint8

	scanline int
	dot      int
	nmiLine  bool
}

// New constructs a PPU wired to the cartridge's CHR access and
// nametable mirroring mode.
func New(cart CartBus, mirroring uint8) *PPU {
	return &PPU{cart: cart, mirroring: mirroring}
}

// NMI reports the current level of the PPU's interrupt line. The CPU
// treats it as edge-triggered on its own side.
func (p *PPU) NMI() bool { return p.nmiLine }

// Tick advances the PPU by n dots (the CPU ticks it 3 dots per CPU
// cycle executed). It reports whether a new frame began.
func (p *PPU) Tick(n int) bool {
	frameDone := false
	for i := 0; i < n; i++ {
		if p.tickOne() {
			frameDone = true
		}
	}
	return frameDone
}

func (p *PPU) tickOne() bool {
	p.dot++
	if p.dot >= dotsPerScanline {
		p.dot = 0
		p.scanline++
	}

	frameDone := false
	if p.scanline >= scanlinesPerFrame {
		p.scanline = 0
		p.status &^= StatusVblank | StatusSprite0Hit
		p.nmiLine = false
		frameDone = true
	}

	if p.scanline == vblankStartScanline && p.dot == 1 {
		p.status |= StatusVblank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmiLine = true
		}
	}

	if p.mask&MaskShowSprites != 0 && p.scanline >= 0 && p.scanline < 240 &&
		int(p.oam[0]) == p.scanline && p.dot >= int(p.oam[3]) {
		p.status |= StatusSprite0Hit
	}

	return frameDone
}

// ReadRegister reads CPU-visible register offset r (0-7, i.e. $2000+r).
func (p *PPU) ReadRegister(r uint16) uint8 {
	switch r {
	case 2: // STATUS
		v := p.status
		p.status &^= StatusVblank
		p.latch = false
		return v
	case 4: // OAMDATA
		return p.oam[p.oamAddr]
	case 7: // DATA
		return p.readData()
	default:
		return 0 // write-only register
	}
}

// WriteRegister writes CPU-visible register offset r (0-7).
func (p *PPU) WriteRegister(r uint16, val uint8) {
	switch r {
	case 0: // CTRL
		wasEnabled := p.ctrl&ctrlNMIEnable != 0
		p.ctrl = val
		if !wasEnabled && val&ctrlNMIEnable != 0 && p.status&StatusVblank != 0 {
			p.nmiLine = true
		}
	case 1: // MASK
		p.mask = val
	case 3: // OAMADDR
		p.oamAddr = val
	case 4: // OAMDATA
		p.oam[p.oamAddr] = val
		p.oamAddr++
	case 5: // SCROLL
		p.scrollReg.write(val, p.latch)
		p.latch = !p.latch
	case 6: // ADDR
		if p.latch {
			p.addrReg.write(val, true) // low byte
			p.vramAddr = p.addrReg.value()
		} else {
			p.addrReg.write(val&0x3F, false) // high byte of a 14-bit address
		}
		p.latch = !p.latch
	case 7: // DATA
		p.writeData(val)
	}
}

// OAMDMA copies 256 bytes into OAM starting at the current OAMADDR,
// wrapping modulo 256, as driven by a $4014 write on the bus.
func (p *PPU) OAMDMA(page [256]uint8) {
	for i := 0; i < 256; i++ {
		p.oam[uint8(int(p.oamAddr)+i)] = page[i]
	}
}

func (p *PPU) incrementVRAM() {
	step := uint16(1)
	if p.ctrl&ctrlVRAMIncrement != 0 {
		step = 32
	}
	p.vramAddr += step
}

func (p *PPU) readData() uint8 {
	addr := p.vramAddr & 0x3FFF
	result := p.bufferData
	p.bufferData = p.vramRead(addr)
	p.incrementVRAM()
	return result
}

func (p *PPU) writeData(val uint8) {
	p.vramWrite(p.vramAddr&0x3FFF, val)
	p.incrementVRAM()
}

func (p *PPU) mirrorNametable(addr uint16) uint16 {
	a := addr & 0x0FFF
	table := int(a / 0x400)
	offset := a % 0x400
	switch p.mirroring {
	case MirrorVertical:
		return uint16(table%2)*0x400 + offset
	case MirrorHorizontal:
		return uint16(table/2)*0x400 + offset
	default: // four-screen: no extra RAM modeled; fold to the 2KB we have
		return a % vramSize
	}
}

func paletteIndex(addr uint16) uint16 {
	i := addr & 0x1F
	if i >= 0x10 && i%4 == 0 {
		i -= 0x10
	}
	return i
}

func (p *PPU) vramRead(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return p.cart.ChrRead(addr)
	case addr < 0x3000:
		return p.vram[p.mirrorNametable(addr)]
	case addr < 0x3F00:
		panic(fmt.Sprintf("ppu: read of unmapped address $%04X", addr))
	default:
		return p.palette[paletteIndex(addr)]
	}
}

func (p *PPU) vramWrite(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		p.cart.ChrWrite(addr, val) // no-op on ROM-backed CHR; mapper's call
	case addr < 0x3000:
		p.vram[p.mirrorNametable(addr)] = val
	case addr < 0x3F00:
		panic(fmt.Sprintf("ppu: write of unmapped address $%04X", addr))
	default:
		p.palette[paletteIndex(addr)] = val
	}
}

// Snapshot copies everything the renderer needs into an immutable
// value, so compositing can proceed while the next frame emulates.
func (p *PPU) Snapshot() render.Snapshot {
	s := render.Snapshot{
		Mirroring: p.mirroring,
		Ctrl:      p.ctrl,
		Mask:      p.mask,
		ScrollX:   p.scrollReg.first,
		ScrollY:   p.scrollReg.second,
	}
	s.VRAM = p.vram
	s.Palette = p.palette
	s.OAM = p.oam
	cart := p.cart
	s.Pattern = func(addr uint16) uint8 { return cart.ChrRead(addr) }
	return s
}
