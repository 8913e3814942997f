package cpu

// Each op* method implements one mnemonic across every addressing mode
// it supports. mode tells the method how (or whether) to resolve an
// operand address; Implicit/Accumulator forms never call operandAddr.

func (c *CPU) opADC(mode uint8) {
	addr := c.operandAddr(mode)
	c.addWithCarry(c.read(addr))
	c.PC += operandBytes(mode)
}

func (c *CPU) opSBC(mode uint8) {
	addr := c.operandAddr(mode)
	c.addWithCarry(^c.read(addr))
	c.PC += operandBytes(mode)
}

func (c *CPU) opAND(mode uint8) {
	addr := c.operandAddr(mode)
	c.A &= c.read(addr)
	c.setNZ(c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opORA(mode uint8) {
	addr := c.operandAddr(mode)
	c.A |= c.read(addr)
	c.setNZ(c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opEOR(mode uint8) {
	addr := c.operandAddr(mode)
	c.A ^= c.read(addr)
	c.setNZ(c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opASL(mode uint8) {
	if mode == modeAccumulator {
		c.setFlag(FlagCarry, c.A&0x80 != 0)
		c.A <<= 1
		c.setNZ(c.A)
		return
	}
	addr := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.write(addr, v)
	c.setNZ(v)
	c.PC += operandBytes(mode)
}

func (c *CPU) opLSR(mode uint8) {
	if mode == modeAccumulator {
		c.setFlag(FlagCarry, c.A&1 != 0)
		c.A >>= 1
		c.setNZ(c.A)
		return
	}
	addr := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagCarry, v&1 != 0)
	v >>= 1
	c.write(addr, v)
	c.setNZ(v)
	c.PC += operandBytes(mode)
}

func (c *CPU) opROL(mode uint8) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	if mode == modeAccumulator {
		res, carryOut := rotateLeft(c.A, carryIn)
		c.A = res
		c.setFlag(FlagCarry, carryOut != 0)
		c.setNZ(c.A)
		return
	}
	addr := c.operandAddr(mode)
	res, carryOut := rotateLeft(c.read(addr), carryIn)
	c.write(addr, res)
	c.setFlag(FlagCarry, carryOut != 0)
	c.setNZ(res)
	c.PC += operandBytes(mode)
}

func (c *CPU) opROR(mode uint8) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	if mode == modeAccumulator {
		res, carryOut := rotateRight(c.A, carryIn)
		c.A = res
		c.setFlag(FlagCarry, carryOut != 0)
		c.setNZ(c.A)
		return
	}
	addr := c.operandAddr(mode)
	res, carryOut := rotateRight(c.read(addr), carryIn)
	c.write(addr, res)
	c.setFlag(FlagCarry, carryOut != 0)
	c.setNZ(res)
	c.PC += operandBytes(mode)
}

func (c *CPU) opBIT(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagZero, c.A&v == 0)
	c.setFlag(FlagOverflow, v&0x40 != 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
	c.PC += operandBytes(mode)
}

func (c *CPU) opBCC(mode uint8) { c.branch(!c.flag(FlagCarry)) }
func (c *CPU) opBCS(mode uint8) { c.branch(c.flag(FlagCarry)) }
func (c *CPU) opBEQ(mode uint8) { c.branch(c.flag(FlagZero)) }
func (c *CPU) opBNE(mode uint8) { c.branch(!c.flag(FlagZero)) }
func (c *CPU) opBMI(mode uint8) { c.branch(c.flag(FlagNegative)) }
func (c *CPU) opBPL(mode uint8) { c.branch(!c.flag(FlagNegative)) }
func (c *CPU) opBVC(mode uint8) { c.branch(!c.flag(FlagOverflow)) }
func (c *CPU) opBVS(mode uint8) { c.branch(c.flag(FlagOverflow)) }

func (c *CPU) opBRK(mode uint8) {
	c.PC++ // BRK consumes a padding byte after the opcode
	c.pushAddr(c.PC)
	c.pushByte(c.P | FlagUnused | FlagBreak)
	c.setFlag(FlagInterruptDisable, true)
	c.PC = c.read16(vecBRK)
}

func (c *CPU) opCLC(mode uint8) { c.setFlag(FlagCarry, false) }
func (c *CPU) opCLD(mode uint8) { c.setFlag(FlagDecimal, false) }
func (c *CPU) opCLI(mode uint8) { c.setFlag(FlagInterruptDisable, false) }
func (c *CPU) opCLV(mode uint8) { c.setFlag(FlagOverflow, false) }
func (c *CPU) opSEC(mode uint8) { c.setFlag(FlagCarry, true) }
func (c *CPU) opSED(mode uint8) { c.setFlag(FlagDecimal, true) }
func (c *CPU) opSEI(mode uint8) { c.setFlag(FlagInterruptDisable, true) }

func (c *CPU) opCMP(mode uint8) {
	addr := c.operandAddr(mode)
	c.compare(c.A, c.read(addr))
	c.PC += operandBytes(mode)
}

func (c *CPU) opCPX(mode uint8) {
	addr := c.operandAddr(mode)
	c.compare(c.X, c.read(addr))
	c.PC += operandBytes(mode)
}

func (c *CPU) opCPY(mode uint8) {
	addr := c.operandAddr(mode)
	c.compare(c.Y, c.read(addr))
	c.PC += operandBytes(mode)
}

func (c *CPU) opDEC(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setNZ(v)
	c.PC += operandBytes(mode)
}

func (c *CPU) opINC(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setNZ(v)
	c.PC += operandBytes(mode)
}

func (c *CPU) opDEX(mode uint8) { c.X--; c.setNZ(c.X) }
func (c *CPU) opDEY(mode uint8) { c.Y--; c.setNZ(c.Y) }
func (c *CPU) opINX(mode uint8) { c.X++; c.setNZ(c.X) }
func (c *CPU) opINY(mode uint8) { c.Y++; c.setNZ(c.Y) }

func (c *CPU) opJMP(mode uint8) {
	c.PC = c.operandAddr(mode)
}

func (c *CPU) opJSR(mode uint8) {
	target := c.operandAddr(mode)
	c.pushAddr(c.PC + 1) // return address is the last byte of JSR, not the next instruction
	c.PC = target
}

func (c *CPU) opRTS(mode uint8) {
	c.PC = c.pullAddr() + 1
}

func (c *CPU) opRTI(mode uint8) {
	c.P = (c.pullByte() | FlagUnused) &^ FlagBreak
	c.PC = c.pullAddr()
}

func (c *CPU) opLDA(mode uint8) {
	addr := c.operandAddr(mode)
	c.A = c.read(addr)
	c.setNZ(c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opLDX(mode uint8) {
	addr := c.operandAddr(mode)
	c.X = c.read(addr)
	c.setNZ(c.X)
	c.PC += operandBytes(mode)
}

func (c *CPU) opLDY(mode uint8) {
	addr := c.operandAddr(mode)
	c.Y = c.read(addr)
	c.setNZ(c.Y)
	c.PC += operandBytes(mode)
}

func (c *CPU) opSTA(mode uint8) {
	addr := c.operandAddr(mode)
	c.write(addr, c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opSTX(mode uint8) {
	addr := c.operandAddr(mode)
	c.write(addr, c.X)
	c.PC += operandBytes(mode)
}

func (c *CPU) opSTY(mode uint8) {
	addr := c.operandAddr(mode)
	c.write(addr, c.Y)
	c.PC += operandBytes(mode)
}

func (c *CPU) opTAX(mode uint8) { c.X = c.A; c.setNZ(c.X) }
func (c *CPU) opTAY(mode uint8) { c.Y = c.A; c.setNZ(c.Y) }
func (c *CPU) opTXA(mode uint8) { c.A = c.X; c.setNZ(c.A) }
func (c *CPU) opTYA(mode uint8) { c.A = c.Y; c.setNZ(c.A) }
func (c *CPU) opTSX(mode uint8) { c.X = c.SP; c.setNZ(c.X) }
func (c *CPU) opTXS(mode uint8) { c.SP = c.X }

func (c *CPU) opPHA(mode uint8) { c.pushByte(c.A) }
func (c *CPU) opPHP(mode uint8) { c.pushByte(c.P | FlagUnused | FlagBreak) }
func (c *CPU) opPLA(mode uint8) { c.A = c.pullByte(); c.setNZ(c.A) }
func (c *CPU) opPLP(mode uint8) { c.P = (c.pullByte() | FlagUnused) &^ FlagBreak }

func (c *CPU) opNOP(mode uint8) {
	if mode != modeImplicit {
		c.operandAddr(mode) // some NOPs still touch memory/accrue page-cross cycles
	}
	c.PC += operandBytes(mode)
}

// --- undocumented combo opcodes ---
// Each reads the effective address once and performs the documented
// pair of primitive operations against it, matching how real silicon
// executes these as a single read-modify-write cycle.

func (c *CPU) opLAX(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr)
	c.A = v
	c.X = v
	c.setNZ(v)
	c.PC += operandBytes(mode)
}

func (c *CPU) opSAX(mode uint8) {
	addr := c.operandAddr(mode)
	c.write(addr, c.A&c.X)
	c.PC += operandBytes(mode)
}

func (c *CPU) opDCP(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.compare(c.A, v)
	c.PC += operandBytes(mode)
}

func (c *CPU) opISB(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.addWithCarry(^v)
	c.PC += operandBytes(mode)
}

func (c *CPU) opSLO(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.write(addr, v)
	c.A |= v
	c.setNZ(c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opRLA(mode uint8) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	addr := c.operandAddr(mode)
	res, carryOut := rotateLeft(c.read(addr), carryIn)
	c.write(addr, res)
	c.setFlag(FlagCarry, carryOut != 0)
	c.A &= res
	c.setNZ(c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opSRE(mode uint8) {
	addr := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagCarry, v&1 != 0)
	v >>= 1
	c.write(addr, v)
	c.A ^= v
	c.setNZ(c.A)
	c.PC += operandBytes(mode)
}

func (c *CPU) opRRA(mode uint8) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	addr := c.operandAddr(mode)
	res, carryOut := rotateRight(c.read(addr), carryIn)
	c.write(addr, res)
	c.setFlag(FlagCarry, carryOut != 0)
	c.addWithCarry(res)
	c.PC += operandBytes(mode)
}

// operandBytes reports how many of the instruction's remaining bytes
// (beyond the opcode itself, already consumed by Step) operandAddr
// just read, so callers can advance PC past the operand. Relative and
// implicit/accumulator forms manage PC themselves.
func operandBytes(mode uint8) uint16 {
	switch mode {
	case modeImplicit, modeAccumulator, modeRelative:
		return 0
	case modeZeroPage, modeZeroPageX, modeZeroPageY, modeZeroPageXButY,
		modeImmediate, modeIndirectX, modeIndirectY:
		return 1
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 2
	default:
		return 0
	}
}
