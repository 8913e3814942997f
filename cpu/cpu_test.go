package cpu

import "testing"

// flatBus is a 64KB flat RAM fixture satisfying the Bus interface,
// used to exercise the CPU in isolation from the real address decoder.
type flatBus struct {
	mem     [65536]uint8
	nmi     bool
	ticked  int
}

func newFlatBus() *flatBus { return &flatBus{} }

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }
func (b *flatBus) NMI() bool                  { return b.nmi }
func (b *flatBus) Tick(cycles int) bool       { b.ticked += cycles; return false }

func (b *flatBus) loadAt(addr uint16, bytes ...uint8) {
	for i, v := range bytes {
		b.mem[addr+uint16(i)] = v
	}
}

func newTestCPU(bus *flatBus, resetVec uint16) *CPU {
	bus.mem[vecReset] = uint8(resetVec)
	bus.mem[vecReset+1] = uint8(resetVec >> 8)
	c := New(bus)
	c.Reset()
	return c
}

func TestResetState(t *testing.T) {
	bus := newFlatBus()
	c := newTestCPU(bus, 0x8000)
	if c.PC != 0x8000 {
		t.Fatalf("PC after reset = %04x, want 8000", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP after reset = %02x, want FD", c.SP)
	}
	if c.P != FlagUnused|FlagInterruptDisable {
		t.Fatalf("P after reset = %02x, want %02x", c.P, FlagUnused|FlagInterruptDisable)
	}
}

func TestLDAImmediateFlags(t *testing.T) {
	cases := []struct {
		val      uint8
		wantZero bool
		wantNeg  bool
	}{
		{0x00, true, false},
		{0x7F, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	}
	for _, tc := range cases {
		bus := newFlatBus()
		c := newTestCPU(bus, 0x8000)
		bus.loadAt(0x8000, 0xA9, tc.val) // LDA #imm
		c.Step()
		if c.A != tc.val {
			t.Errorf("LDA #%02x: A=%02x", tc.val, c.A)
		}
		if c.flag(FlagZero) != tc.wantZero {
			t.Errorf("LDA #%02x: Z=%v, want %v", tc.val, c.flag(FlagZero), tc.wantZero)
		}
		if c.flag(FlagNegative) != tc.wantNeg {
			t.Errorf("LDA #%02x: N=%v, want %v", tc.val, c.flag(FlagNegative), tc.wantNeg)
		}
	}
}

func TestADCCarryAndOverflow(t *testing.T) {
	cases := []struct {
		a, b, carryIn    uint8
		wantA            uint8
		wantCarry, wantV bool
	}{
		{0x50, 0x10, 0, 0x60, false, false},
		{0x50, 0x50, 0, 0xA0, false, true}, // positive + positive overflows into negative
		{0xD0, 0x90, 0, 0x60, true, true},  // negative + negative overflows into positive
		{0xFF, 0x01, 0, 0x00, true, false},
		{0xFE, 0x01, 1, 0x00, true, false}, // carry-in folded into the sum
	}
	for _, tc := range cases {
		bus := newFlatBus()
		c := newTestCPU(bus, 0x8000)
		c.A = tc.a
		c.setFlag(FlagCarry, tc.carryIn != 0)
		bus.loadAt(0x8000, 0x69, tc.b) // ADC #imm
		c.Step()
		if c.A != tc.wantA {
			t.Errorf("ADC %02x+%02x: A=%02x, want %02x", tc.a, tc.b, c.A, tc.wantA)
		}
		if c.flag(FlagCarry) != tc.wantCarry {
			t.Errorf("ADC %02x+%02x: C=%v, want %v", tc.a, tc.b, c.flag(FlagCarry), tc.wantCarry)
		}
		if c.flag(FlagOverflow) != tc.wantV {
			t.Errorf("ADC %02x+%02x: V=%v, want %v", tc.a, tc.b, c.flag(FlagOverflow), tc.wantV)
		}
	}
}

// TestCycles checks the documented cycle count for a representative
// instruction in each addressing-mode family, including page-cross
// penalties, against a table of handcrafted scenarios.
func TestCycles(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(bus *flatBus, c *CPU)
		want    int
	}{
		{
			name: "ADC absolute,X no page cross",
			setup: func(bus *flatBus, c *CPU) {
				c.X = 0x01
				bus.loadAt(0x8000, 0x7D, 0x00, 0x02) // ADC $0200,X
				bus.mem[0x0201] = 0x05
			},
			want: 4,
		},
		{
			name: "ADC absolute,X page cross",
			setup: func(bus *flatBus, c *CPU) {
				c.X = 0xFF
				bus.loadAt(0x8000, 0x7D, 0x01, 0x02) // ADC $0201,X -> $0300
				bus.mem[0x0300] = 0x05
			},
			want: 5,
		},
		{
			name: "LDA indirect,Y page cross",
			setup: func(bus *flatBus, c *CPU) {
				c.Y = 0xFF
				bus.loadAt(0x8000, 0xB1, 0x10) // LDA ($10),Y
				bus.loadAt(0x0010, 0x01, 0x02) // pointer -> $0201, +Y(FF) -> $0300
				bus.mem[0x0300] = 0x42
			},
			want: 6,
		},
		{
			name: "BNE not taken",
			setup: func(bus *flatBus, c *CPU) {
				c.setFlag(FlagZero, true)
				bus.loadAt(0x8000, 0xD0, 0x10) // BNE +16
			},
			want: 2,
		},
		{
			name: "BNE taken, no page cross",
			setup: func(bus *flatBus, c *CPU) {
				c.setFlag(FlagZero, false)
				bus.loadAt(0x8000, 0xD0, 0x10) // BNE +16, target 0x8012, same page
			},
			want: 3,
		},
		{
			name: "BNE taken, page cross",
			setup: func(bus *flatBus, c *CPU) {
				c.setFlag(FlagZero, false)
				bus.loadAt(0x80F0, 0xD0, 0x20) // target 0x8112, crosses page
			},
			want: 4,
		},
		{
			// PC=$80FE, opcode D0 04 (BNE +4), Z=0 -> PC=$8104, cycles=3.
			// The displacement byte sits at $80FF, so the opcode's own
			// address ($80FE) and the target ($8104) disagree on page
			// even though the correct reference address ($8100, right
			// after the 2-byte instruction) agrees with the target and
			// charges no page-cross penalty.
			name: "BNE taken, spec scenario 2 (no spurious page cross)",
			setup: func(bus *flatBus, c *CPU) {
				c.setFlag(FlagZero, false)
				bus.loadAt(0x80FE, 0xD0, 0x04)
			},
			want: 3,
		},
	}
	for _, tc := range cases {
		bus := newFlatBus()
		c := newTestCPU(bus, 0x8000)
		switch tc.name {
		case "BNE taken, page cross":
			c.PC = 0x80F0
		case "BNE taken, spec scenario 2 (no spurious page cross)":
			c.PC = 0x80FE
		}
		tc.setup(bus, c)
		used, _ := c.Step()
		if used != tc.want {
			t.Errorf("%s: cycles=%d, want %d", tc.name, used, tc.want)
		}
	}
}

func TestIndirectJMPPageCrossBug(t *testing.T) {
	bus := newFlatBus()
	c := newTestCPU(bus, 0x8000)
	bus.loadAt(0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	bus.mem[0x02FF] = 0x34
	bus.mem[0x0300] = 0x12 // correct next page, must NOT be used
	bus.mem[0x0200] = 0x56 // wraps to start of same page instead
	c.Step()
	if c.PC != 0x5634 {
		t.Fatalf("JMP (ind) page-cross bug: PC=%04x, want 5634", c.PC)
	}
}

func TestStackPushPullOrder(t *testing.T) {
	bus := newFlatBus()
	c := newTestCPU(bus, 0x8000)
	bus.loadAt(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	c.Step()
	if c.PC != 0x9000 {
		t.Fatalf("JSR: PC=%04x, want 9000", c.PC)
	}
	// return address pushed high-byte-first: SP now points one below
	// the two pushed bytes, so SP+1 holds the low byte (0x02), SP+2
	// the high byte (0x80), matching JSR pushing pc+1 = 0x8002.
	if bus.mem[stackPage+uint16(c.SP)+1] != 0x02 {
		t.Fatalf("low return byte at SP+1 = %02x, want 02", bus.mem[stackPage+uint16(c.SP)+1])
	}
	if bus.mem[stackPage+uint16(c.SP)+2] != 0x80 {
		t.Fatalf("high return byte at SP+2 = %02x, want 80", bus.mem[stackPage+uint16(c.SP)+2])
	}

	bus.loadAt(0x9000, 0x60) // RTS
	c.Step()
	if c.PC != 0x8003 {
		t.Fatalf("RTS: PC=%04x, want 8003", c.PC)
	}
}

func TestBRKAndRTI(t *testing.T) {
	bus := newFlatBus()
	c := newTestCPU(bus, 0x8000)
	bus.mem[vecBRK] = 0x00
	bus.mem[vecBRK+1] = 0x90
	bus.loadAt(0x8000, 0x00) // BRK
	c.Step()
	if c.PC != 0x9000 {
		t.Fatalf("BRK: PC=%04x, want 9000", c.PC)
	}
	if !c.flag(FlagInterruptDisable) {
		t.Fatalf("BRK: interrupt-disable not set")
	}

	bus.loadAt(0x9000, 0x40) // RTI
	c.Step()
	if c.PC != 0x8002 {
		t.Fatalf("RTI: PC=%04x, want 8002", c.PC)
	}
	if c.flag(FlagBreak) {
		t.Fatalf("RTI: restored status still carries Break")
	}
}

func TestNMIServicedAtBoundary(t *testing.T) {
	bus := newFlatBus()
	c := newTestCPU(bus, 0x8000)
	bus.mem[vecNMI] = 0x00
	bus.mem[vecNMI+1] = 0xA0
	bus.loadAt(0x8000, 0xEA) // NOP
	bus.nmi = true
	c.Step()
	if c.PC != 0xA000 {
		t.Fatalf("NMI not serviced: PC=%04x, want A000", c.PC)
	}
	// level held high: must not re-trigger on the next step
	bus.loadAt(0xA000, 0xEA)
	c.Step()
	if c.PC != 0xA001 {
		t.Fatalf("NMI re-triggered while level still high: PC=%04x", c.PC)
	}
}

func TestUndocumentedLAXAndSAX(t *testing.T) {
	bus := newFlatBus()
	c := newTestCPU(bus, 0x8000)
	bus.loadAt(0x8000, 0xA7, 0x10) // LAX $10
	bus.mem[0x0010] = 0x77
	c.Step()
	if c.A != 0x77 || c.X != 0x77 {
		t.Fatalf("LAX: A=%02x X=%02x, want both 77", c.A, c.X)
	}

	bus.loadAt(0x8002, 0x87, 0x20) // SAX $20
	c.A = 0xF0
	c.X = 0x0F
	c.Step()
	if bus.mem[0x0020] != 0x00 {
		t.Fatalf("SAX: mem=%02x, want 00 (A&X)", bus.mem[0x0020])
	}
}

func TestUndocumentedDCPAndISB(t *testing.T) {
	bus := newFlatBus()
	c := newTestCPU(bus, 0x8000)
	bus.loadAt(0x8000, 0xC7, 0x10) // DCP $10
	bus.mem[0x0010] = 0x05
	c.A = 0x05
	c.Step()
	if bus.mem[0x0010] != 0x04 {
		t.Fatalf("DCP: mem=%02x, want 04", bus.mem[0x0010])
	}
	if !c.flag(FlagCarry) {
		t.Fatalf("DCP: carry not set after A(05) >= mem(04)")
	}

	bus.loadAt(0x8002, 0xE7, 0x20) // ISB $20
	bus.mem[0x0020] = 0x00
	c.A = 0x05
	c.setFlag(FlagCarry, true)
	c.Step()
	if bus.mem[0x0020] != 0x01 {
		t.Fatalf("ISB: mem=%02x, want 01", bus.mem[0x0020])
	}
	if c.A != 0x04 {
		t.Fatalf("ISB: A=%02x, want 04 (05 - 01)", c.A)
	}
}
