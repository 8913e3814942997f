package cpu

import "fmt"

// Addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	modeImplicit = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeZeroPageXButY // undocumented SAX quirk: encoded as ZeroPage,X but indexes by Y
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

type opcode struct {
	name   string
	mode   uint8
	bytes  uint8
	cycles uint8
	run    func(c *CPU, mode uint8)
}

func (o opcode) String() string { return fmt.Sprintf("{%s mode=%d}", o.name, o.mode) }

// opcodes maps every byte value the CPU may fetch as an instruction to
// its decoded form. It covers the documented instruction set plus the
// undocumented combo instructions and multi-byte NOPs real cartridges
// rely on: DCP, ISB, LAX, RLA, RRA, SAX, SLO, SRE.
var opcodes = map[uint8]opcode{
	0x69: {"ADC", modeImmediate, 2, 2, (*CPU).opADC},
	0x65: {"ADC", modeZeroPage, 2, 3, (*CPU).opADC},
	0x75: {"ADC", modeZeroPageX, 2, 4, (*CPU).opADC},
	0x6D: {"ADC", modeAbsolute, 3, 4, (*CPU).opADC},
	0x7D: {"ADC", modeAbsoluteX, 3, 4, (*CPU).opADC},
	0x79: {"ADC", modeAbsoluteY, 3, 4, (*CPU).opADC},
	0x61: {"ADC", modeIndirectX, 2, 6, (*CPU).opADC},
	0x71: {"ADC", modeIndirectY, 2, 5, (*CPU).opADC},

	0x29: {"AND", modeImmediate, 2, 2, (*CPU).opAND},
	0x25: {"AND", modeZeroPage, 2, 3, (*CPU).opAND},
	0x35: {"AND", modeZeroPageX, 2, 4, (*CPU).opAND},
	0x2D: {"AND", modeAbsolute, 3, 4, (*CPU).opAND},
	0x3D: {"AND", modeAbsoluteX, 3, 4, (*CPU).opAND},
	0x39: {"AND", modeAbsoluteY, 3, 4, (*CPU).opAND},
	0x21: {"AND", modeIndirectX, 2, 6, (*CPU).opAND},
	0x31: {"AND", modeIndirectY, 2, 5, (*CPU).opAND},

	0x0A: {"ASL", modeAccumulator, 1, 2, (*CPU).opASL},
	0x06: {"ASL", modeZeroPage, 2, 5, (*CPU).opASL},
	0x16: {"ASL", modeZeroPageX, 2, 6, (*CPU).opASL},
	0x0E: {"ASL", modeAbsolute, 3, 6, (*CPU).opASL},
	0x1E: {"ASL", modeAbsoluteX, 3, 7, (*CPU).opASL},

	0x90: {"BCC", modeRelative, 2, 2, (*CPU).opBCC},
	0xB0: {"BCS", modeRelative, 2, 2, (*CPU).opBCS},
	0xF0: {"BEQ", modeRelative, 2, 2, (*CPU).opBEQ},
	0x24: {"BIT", modeZeroPage, 2, 3, (*CPU).opBIT},
	0x2C: {"BIT", modeAbsolute, 3, 4, (*CPU).opBIT},
	0x30: {"BMI", modeRelative, 2, 2, (*CPU).opBMI},
	0xD0: {"BNE", modeRelative, 2, 2, (*CPU).opBNE},
	0x10: {"BPL", modeRelative, 2, 2, (*CPU).opBPL},
	0x00: {"BRK", modeImplicit, 2, 7, (*CPU).opBRK},
	0x50: {"BVC", modeRelative, 2, 2, (*CPU).opBVC},
	0x70: {"BVS", modeRelative, 2, 2, (*CPU).opBVS},

	0x18: {"CLC", modeImplicit, 1, 2, (*CPU).opCLC},
	0xD8: {"CLD", modeImplicit, 1, 2, (*CPU).opCLD},
	0x58: {"CLI", modeImplicit, 1, 2, (*CPU).opCLI},
	0xB8: {"CLV", modeImplicit, 1, 2, (*CPU).opCLV},

	0xC9: {"CMP", modeImmediate, 2, 2, (*CPU).opCMP},
	0xC5: {"CMP", modeZeroPage, 2, 3, (*CPU).opCMP},
	0xD5: {"CMP", modeZeroPageX, 2, 4, (*CPU).opCMP},
	0xCD: {"CMP", modeAbsolute, 3, 4, (*CPU).opCMP},
	0xDD: {"CMP", modeAbsoluteX, 3, 4, (*CPU).opCMP},
	0xD9: {"CMP", modeAbsoluteY, 3, 4, (*CPU).opCMP},
	0xC1: {"CMP", modeIndirectX, 2, 6, (*CPU).opCMP},
	0xD1: {"CMP", modeIndirectY, 2, 5, (*CPU).opCMP},

	0xE0: {"CPX", modeImmediate, 2, 2, (*CPU).opCPX},
	0xE4: {"CPX", modeZeroPage, 2, 3, (*CPU).opCPX},
	0xEC: {"CPX", modeAbsolute, 3, 4, (*CPU).opCPX},
	0xC0: {"CPY", modeImmediate, 2, 2, (*CPU).opCPY},
	0xC4: {"CPY", modeZeroPage, 2, 3, (*CPU).opCPY},
	0xCC: {"CPY", modeAbsolute, 3, 4, (*CPU).opCPY},

	0xC6: {"DEC", modeZeroPage, 2, 5, (*CPU).opDEC},
	0xD6: {"DEC", modeZeroPageX, 2, 6, (*CPU).opDEC},
	0xCE: {"DEC", modeAbsolute, 3, 6, (*CPU).opDEC},
	0xDE: {"DEC", modeAbsoluteX, 3, 7, (*CPU).opDEC},
	0xCA: {"DEX", modeImplicit, 1, 2, (*CPU).opDEX},
	0x88: {"DEY", modeImplicit, 1, 2, (*CPU).opDEY},

	0x49: {"EOR", modeImmediate, 2, 2, (*CPU).opEOR},
	0x45: {"EOR", modeZeroPage, 2, 3, (*CPU).opEOR},
	0x55: {"EOR", modeZeroPageX, 2, 4, (*CPU).opEOR},
	0x4D: {"EOR", modeAbsolute, 3, 4, (*CPU).opEOR},
	0x5D: {"EOR", modeAbsoluteX, 3, 4, (*CPU).opEOR},
	0x59: {"EOR", modeAbsoluteY, 3, 4, (*CPU).opEOR},
	0x41: {"EOR", modeIndirectX, 2, 6, (*CPU).opEOR},
	0x51: {"EOR", modeIndirectY, 2, 5, (*CPU).opEOR},

	0xE6: {"INC", modeZeroPage, 2, 5, (*CPU).opINC},
	0xF6: {"INC", modeZeroPageX, 2, 6, (*CPU).opINC},
	0xEE: {"INC", modeAbsolute, 3, 6, (*CPU).opINC},
	0xFE: {"INC", modeAbsoluteX, 3, 7, (*CPU).opINC},
	0xE8: {"INX", modeImplicit, 1, 2, (*CPU).opINX},
	0xC8: {"INY", modeImplicit, 1, 2, (*CPU).opINY},

	0x4C: {"JMP", modeAbsolute, 3, 3, (*CPU).opJMP},
	0x6C: {"JMP", modeIndirect, 3, 5, (*CPU).opJMP},
	0x20: {"JSR", modeAbsolute, 3, 6, (*CPU).opJSR},

	0xA9: {"LDA", modeImmediate, 2, 2, (*CPU).opLDA},
	0xA5: {"LDA", modeZeroPage, 2, 3, (*CPU).opLDA},
	0xB5: {"LDA", modeZeroPageX, 2, 4, (*CPU).opLDA},
	0xAD: {"LDA", modeAbsolute, 3, 4, (*CPU).opLDA},
	0xBD: {"LDA", modeAbsoluteX, 3, 4, (*CPU).opLDA},
	0xB9: {"LDA", modeAbsoluteY, 3, 4, (*CPU).opLDA},
	0xA1: {"LDA", modeIndirectX, 2, 6, (*CPU).opLDA},
	0xB1: {"LDA", modeIndirectY, 2, 5, (*CPU).opLDA},

	0xA2: {"LDX", modeImmediate, 2, 2, (*CPU).opLDX},
	0xA6: {"LDX", modeZeroPage, 2, 3, (*CPU).opLDX},
	0xB6: {"LDX", modeZeroPageY, 2, 4, (*CPU).opLDX},
	0xAE: {"LDX", modeAbsolute, 3, 4, (*CPU).opLDX},
	0xBE: {"LDX", modeAbsoluteY, 3, 4, (*CPU).opLDX},

	0xA0: {"LDY", modeImmediate, 2, 2, (*CPU).opLDY},
	0xA4: {"LDY", modeZeroPage, 2, 3, (*CPU).opLDY},
	0xB4: {"LDY", modeZeroPageX, 2, 4, (*CPU).opLDY},
	0xAC: {"LDY", modeAbsolute, 3, 4, (*CPU).opLDY},
	0xBC: {"LDY", modeAbsoluteX, 3, 4, (*CPU).opLDY},

	0x4A: {"LSR", modeAccumulator, 1, 2, (*CPU).opLSR},
	0x46: {"LSR", modeZeroPage, 2, 5, (*CPU).opLSR},
	0x56: {"LSR", modeZeroPageX, 2, 6, (*CPU).opLSR},
	0x4E: {"LSR", modeAbsolute, 3, 6, (*CPU).opLSR},
	0x5E: {"LSR", modeAbsoluteX, 3, 7, (*CPU).opLSR},

	0xEA: {"NOP", modeImplicit, 1, 2, (*CPU).opNOP},
	0x04: {"NOP", modeZeroPage, 2, 3, (*CPU).opNOP},
	0x44: {"NOP", modeZeroPage, 2, 3, (*CPU).opNOP},
	0x64: {"NOP", modeZeroPage, 2, 3, (*CPU).opNOP},
	0x0C: {"NOP", modeAbsolute, 3, 4, (*CPU).opNOP},
	0x14: {"NOP", modeZeroPageX, 2, 4, (*CPU).opNOP},
	0x34: {"NOP", modeZeroPageX, 2, 4, (*CPU).opNOP},
	0x54: {"NOP", modeZeroPageX, 2, 4, (*CPU).opNOP},
	0x74: {"NOP", modeZeroPageX, 2, 4, (*CPU).opNOP},
	0xD4: {"NOP", modeZeroPageX, 2, 4, (*CPU).opNOP},
	0xF4: {"NOP", modeZeroPageX, 2, 4, (*CPU).opNOP},
	0x1A: {"NOP", modeImplicit, 1, 2, (*CPU).opNOP},
	0x3A: {"NOP", modeImplicit, 1, 2, (*CPU).opNOP},
	0x5A: {"NOP", modeImplicit, 1, 2, (*CPU).opNOP},
	0xDA: {"NOP", modeImplicit, 1, 2, (*CPU).opNOP},
	0x80: {"NOP", modeImmediate, 2, 2, (*CPU).opNOP},
	0x1C: {"NOP", modeAbsoluteX, 3, 4, (*CPU).opNOP},
	0x3C: {"NOP", modeAbsoluteX, 3, 4, (*CPU).opNOP},
	0x5C: {"NOP", modeAbsoluteX, 3, 4, (*CPU).opNOP},
	0x7C: {"NOP", modeAbsoluteX, 3, 4, (*CPU).opNOP},
	0xDC: {"NOP", modeAbsoluteX, 3, 4, (*CPU).opNOP},
	0xFC: {"NOP", modeAbsoluteX, 3, 4, (*CPU).opNOP},

	0x09: {"ORA", modeImmediate, 2, 2, (*CPU).opORA},
	0x05: {"ORA", modeZeroPage, 2, 3, (*CPU).opORA},
	0x15: {"ORA", modeZeroPageX, 2, 4, (*CPU).opORA},
	0x0D: {"ORA", modeAbsolute, 3, 4, (*CPU).opORA},
	0x1D: {"ORA", modeAbsoluteX, 3, 4, (*CPU).opORA},
	0x19: {"ORA", modeAbsoluteY, 3, 4, (*CPU).opORA},
	0x01: {"ORA", modeIndirectX, 2, 6, (*CPU).opORA},
	0x11: {"ORA", modeIndirectY, 2, 5, (*CPU).opORA},

	0x48: {"PHA", modeImplicit, 1, 3, (*CPU).opPHA},
	0x08: {"PHP", modeImplicit, 1, 3, (*CPU).opPHP},
	0x68: {"PLA", modeImplicit, 1, 4, (*CPU).opPLA},
	0x28: {"PLP", modeImplicit, 1, 4, (*CPU).opPLP},

	0x2A: {"ROL", modeAccumulator, 1, 2, (*CPU).opROL},
	0x26: {"ROL", modeZeroPage, 2, 5, (*CPU).opROL},
	0x36: {"ROL", modeZeroPageX, 2, 6, (*CPU).opROL},
	0x2E: {"ROL", modeAbsolute, 3, 6, (*CPU).opROL},
	0x3E: {"ROL", modeAbsoluteX, 3, 7, (*CPU).opROL},

	0x6A: {"ROR", modeAccumulator, 1, 2, (*CPU).opROR},
	0x66: {"ROR", modeZeroPage, 2, 5, (*CPU).opROR},
	0x76: {"ROR", modeZeroPageX, 2, 6, (*CPU).opROR},
	0x6E: {"ROR", modeAbsolute, 3, 6, (*CPU).opROR},
	0x7E: {"ROR", modeAbsoluteX, 3, 7, (*CPU).opROR},

	0x40: {"RTI", modeImplicit, 1, 6, (*CPU).opRTI},
	0x60: {"RTS", modeImplicit, 1, 6, (*CPU).opRTS},

	0xE9: {"SBC", modeImmediate, 2, 2, (*CPU).opSBC},
	0xEB: {"SBC", modeImmediate, 2, 2, (*CPU).opSBC}, // undocumented duplicate
	0xE5: {"SBC", modeZeroPage, 2, 3, (*CPU).opSBC},
	0xF5: {"SBC", modeZeroPageX, 2, 4, (*CPU).opSBC},
	0xED: {"SBC", modeAbsolute, 3, 4, (*CPU).opSBC},
	0xFD: {"SBC", modeAbsoluteX, 3, 4, (*CPU).opSBC},
	0xF9: {"SBC", modeAbsoluteY, 3, 4, (*CPU).opSBC},
	0xE1: {"SBC", modeIndirectX, 2, 6, (*CPU).opSBC},
	0xF1: {"SBC", modeIndirectY, 2, 5, (*CPU).opSBC},

	0x38: {"SEC", modeImplicit, 1, 2, (*CPU).opSEC},
	0xF8: {"SED", modeImplicit, 1, 2, (*CPU).opSED},
	0x78: {"SEI", modeImplicit, 1, 2, (*CPU).opSEI},

	0x85: {"STA", modeZeroPage, 2, 3, (*CPU).opSTA},
	0x95: {"STA", modeZeroPageX, 2, 4, (*CPU).opSTA},
	0x8D: {"STA", modeAbsolute, 3, 4, (*CPU).opSTA},
	0x9D: {"STA", modeAbsoluteX, 3, 5, (*CPU).opSTA},
	0x99: {"STA", modeAbsoluteY, 3, 5, (*CPU).opSTA},
	0x81: {"STA", modeIndirectX, 2, 6, (*CPU).opSTA},
	0x91: {"STA", modeIndirectY, 2, 6, (*CPU).opSTA},

	0x86: {"STX", modeZeroPage, 2, 3, (*CPU).opSTX},
	0x96: {"STX", modeZeroPageY, 2, 4, (*CPU).opSTX},
	0x8E: {"STX", modeAbsolute, 3, 4, (*CPU).opSTX},
	0x84: {"STY", modeZeroPage, 2, 3, (*CPU).opSTY},
	0x94: {"STY", modeZeroPageX, 2, 4, (*CPU).opSTY},
	0x8C: {"STY", modeAbsolute, 3, 4, (*CPU).opSTY},

	0xAA: {"TAX", modeImplicit, 1, 2, (*CPU).opTAX},
	0xA8: {"TAY", modeImplicit, 1, 2, (*CPU).opTAY},
	0xBA: {"TSX", modeImplicit, 1, 2, (*CPU).opTSX},
	0x8A: {"TXA", modeImplicit, 1, 2, (*CPU).opTXA},
	0x9A: {"TXS", modeImplicit, 1, 2, (*CPU).opTXS},
	0x98: {"TYA", modeImplicit, 1, 2, (*CPU).opTYA},

	// --- undocumented combo opcodes ---

	0xA3: {"LAX", modeIndirectX, 2, 6, (*CPU).opLAX},
	0xA7: {"LAX", modeZeroPage, 2, 3, (*CPU).opLAX},
	0xAF: {"LAX", modeAbsolute, 3, 4, (*CPU).opLAX},
	0xB3: {"LAX", modeIndirectY, 2, 5, (*CPU).opLAX},
	0xB7: {"LAX", modeZeroPageY, 2, 4, (*CPU).opLAX},
	0xBF: {"LAX", modeAbsoluteY, 3, 4, (*CPU).opLAX},

	0x83: {"SAX", modeIndirectX, 2, 6, (*CPU).opSAX},
	0x87: {"SAX", modeZeroPage, 2, 3, (*CPU).opSAX},
	0x8F: {"SAX", modeAbsolute, 3, 4, (*CPU).opSAX},
	0x97: {"SAX", modeZeroPageXButY, 2, 4, (*CPU).opSAX},

	0xC7: {"DCP", modeZeroPage, 2, 5, (*CPU).opDCP},
	0xD7: {"DCP", modeZeroPageX, 2, 6, (*CPU).opDCP},
	0xCF: {"DCP", modeAbsolute, 3, 6, (*CPU).opDCP},
	0xDF: {"DCP", modeAbsoluteX, 3, 7, (*CPU).opDCP},
	0xDB: {"DCP", modeAbsoluteY, 3, 7, (*CPU).opDCP},
	0xC3: {"DCP", modeIndirectX, 2, 8, (*CPU).opDCP},
	0xD3: {"DCP", modeIndirectY, 2, 8, (*CPU).opDCP},

	0xE7: {"ISB", modeZeroPage, 2, 5, (*CPU).opISB},
	0xF7: {"ISB", modeZeroPageX, 2, 6, (*CPU).opISB},
	0xEF: {"ISB", modeAbsolute, 3, 6, (*CPU).opISB},
	0xFF: {"ISB", modeAbsoluteX, 3, 7, (*CPU).opISB},
	0xFB: {"ISB", modeAbsoluteY, 3, 7, (*CPU).opISB},
	0xE3: {"ISB", modeIndirectX, 2, 8, (*CPU).opISB},
	0xF3: {"ISB", modeIndirectY, 2, 8, (*CPU).opISB},

	0x07: {"SLO", modeZeroPage, 2, 5, (*CPU).opSLO},
	0x17: {"SLO", modeZeroPageX, 2, 6, (*CPU).opSLO},
	0x0F: {"SLO", modeAbsolute, 3, 6, (*CPU).opSLO},
	0x1F: {"SLO", modeAbsoluteX, 3, 7, (*CPU).opSLO},
	0x1B: {"SLO", modeAbsoluteY, 3, 7, (*CPU).opSLO},
	0x03: {"SLO", modeIndirectX, 2, 8, (*CPU).opSLO},
	0x13: {"SLO", modeIndirectY, 2, 8, (*CPU).opSLO},

	0x27: {"RLA", modeZeroPage, 2, 5, (*CPU).opRLA},
	0x37: {"RLA", modeZeroPageX, 2, 6, (*CPU).opRLA},
	0x2F: {"RLA", modeAbsolute, 3, 6, (*CPU).opRLA},
	0x3F: {"RLA", modeAbsoluteX, 3, 7, (*CPU).opRLA},
	0x3B: {"RLA", modeAbsoluteY, 3, 7, (*CPU).opRLA},
	0x23: {"RLA", modeIndirectX, 2, 8, (*CPU).opRLA},
	0x33: {"RLA", modeIndirectY, 2, 8, (*CPU).opRLA},

	0x47: {"SRE", modeZeroPage, 2, 5, (*CPU).opSRE},
	0x57: {"SRE", modeZeroPageX, 2, 6, (*CPU).opSRE},
	0x4F: {"SRE", modeAbsolute, 3, 6, (*CPU).opSRE},
	0x5F: {"SRE", modeAbsoluteX, 3, 7, (*CPU).opSRE},
	0x5B: {"SRE", modeAbsoluteY, 3, 7, (*CPU).opSRE},
	0x43: {"SRE", modeIndirectX, 2, 8, (*CPU).opSRE},
	0x53: {"SRE", modeIndirectY, 2, 8, (*CPU).opSRE},

	0x67: {"RRA", modeZeroPage, 2, 5, (*CPU).opRRA},
	0x77: {"RRA", modeZeroPageX, 2, 6, (*CPU).opRRA},
	0x6F: {"RRA", modeAbsolute, 3, 6, (*CPU).opRRA},
	0x7F: {"RRA", modeAbsoluteX, 3, 7, (*CPU).opRRA},
	0x7B: {"RRA", modeAbsoluteY, 3, 7, (*CPU).opRRA},
	0x63: {"RRA", modeIndirectX, 2, 8, (*CPU).opRRA},
	0x73: {"RRA", modeIndirectY, 2, 8, (*CPU).opRRA},
}
