// Package bus implements the NES CPU address decoder: it routes every
// 16-bit CPU address to work RAM, the PPU's register file, the
// controller ports, the OAM DMA trigger, or cartridge PRG ROM.
package bus

import (
	"fmt"

	"nescore/controller"
	"nescore/mappers"
	"nescore/ppu"
	"nescore/render"
)

const (
	ramMirrorMask = 0x07FF
	ppuRegMask    = 0x0007
)

// Bus wires the cpu, ppu, cartridge mapper, and controllers into one
// address space. It satisfies cpu.Bus.
type Bus struct {
	ram    [0x0800]uint8
	mapper mappers.Mapper
	ppu    *ppu.PPU
	ctrl1  *controller.Controller
	ctrl2  *controller.Controller
	cycles uint64
}

// New constructs a Bus over the given cartridge mapper and controller
// ports. The PPU is created here, since its nametable mirroring mode
// comes from the cartridge header the mapper was initialized from.
func New(m mappers.Mapper, ctrl1, ctrl2 *controller.Controller) *Bus {
	return &Bus{
		mapper: m,
		ppu:    ppu.New(m, m.MirroringMode()),
		ctrl1:  ctrl1,
		ctrl2:  ctrl2,
	}
}

// NMI reports the PPU's interrupt line, satisfying cpu.Bus.
func (b *Bus) NMI() bool {
	return b.ppu.NMI()
}

// Tick advances the PPU by 3 dots per CPU cycle and reports whether a
// frame boundary was crossed, satisfying cpu.Bus.
func (b *Bus) Tick(cpuCycles int) bool {
	b.cycles += uint64(cpuCycles)
	return b.ppu.Tick(cpuCycles * 3)
}

// PPUSnapshot takes an immutable copy of the PPU's state for the
// renderer, once per completed frame.
func (b *Bus) PPUSnapshot() render.Snapshot {
	return b.ppu.Snapshot()
}

// Read decodes a CPU read. https://www.nesdev.org/wiki/CPU_memory_map
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&ramMirrorMask]
	case addr <= 0x3FFF:
		return b.ppu.ReadRegister((addr - 0x2000) & ppuRegMask)
	case addr == 0x4016:
		return b.ctrl1.Read()
	case addr == 0x4017:
		return b.ctrl2.Read()
	case addr >= 0x8000:
		return b.mapper.PrgRead(addr - 0x8000)
	default:
		return 0
	}
}

// Write decodes a CPU write.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&ramMirrorMask] = val
	case addr <= 0x3FFF:
		r := (addr - 0x2000) & ppuRegMask
		if r == 2 {
			panic("bus: write to read-only PPU STATUS register")
		}
		b.ppu.WriteRegister(r, val)
	case addr == 0x4014:
		b.oamDMA(val)
	case addr == 0x4016:
		b.ctrl1.Write(val)
	case addr == 0x4017:
		b.ctrl2.Write(val)
	case addr >= 0x8000:
		panic(fmt.Sprintf("bus: write to program ROM at $%04X", addr))
	default:
		// $4000-$4013, $4015, $4018-$7FFF: APU/expansion/save RAM,
		// all out of scope; writes are accepted and discarded.
	}
}

// oamDMA copies the 256-byte page starting at page<<8 (restricted to
// the 2 KiB work RAM mirror) into OAM, then stalls the CPU for the
// DMA's duration by ticking the PPU the equivalent number of dots
// immediately, ahead of the instruction's own bus.Tick call.
func (b *Bus) oamDMA(page uint8) {
	var buf [256]uint8
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		buf[i] = b.ram[(base+uint16(i))&ramMirrorMask]
	}
	b.ppu.OAMDMA(buf)

	stall := 513
	if b.cycles%2 == 1 {
		stall = 514
	}
	b.cycles += uint64(stall)
	b.ppu.Tick(stall * 3)
}
