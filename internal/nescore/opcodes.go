package nescore

// addrMode identifies one of the 6502's addressing modes.
type addrMode uint8

const (
	modeImp addrMode = iota
	modeAcc
	modeImm
	modeZp
	modeZpx
	modeZpy
	modeAbs
	modeAbx
	modeAby
	modeInd
	modeIzx
	modeIzy
	modeRel
)

// execFunc executes one instruction body, consuming its operand bytes from
// PC via addr/load helpers, and reports whether a page-crossing bonus cycle
// applies.
type execFunc func(c *CPU, mode addrMode) bool

type opcodeDef struct {
	mnemonic string
	mode     addrMode
	exec     execFunc
}

// addr computes the effective address for mode, advancing PC past the
// instruction's operand bytes. Not valid for modeImp/modeAcc/modeRel.
func (c *CPU) addr(mode addrMode) (address uint16, pageCrossed bool) {
	switch mode {
	case modeImm:
		a := c.PC
		c.PC++
		return a, false
	case modeZp:
		a := uint16(c.read8(c.PC))
		c.PC++
		return a, false
	case modeZpx:
		a := uint16(uint8(c.read8(c.PC) + c.X))
		c.PC++
		return a, false
	case modeZpy:
		a := uint16(uint8(c.read8(c.PC) + c.Y))
		c.PC++
		return a, false
	case modeAbs:
		a := c.read16(c.PC)
		c.PC += 2
		return a, false
	case modeAbx:
		base := c.read16(c.PC)
		c.PC += 2
		a := base + uint16(c.X)
		return a, base&0xFF00 != a&0xFF00
	case modeAby:
		base := c.read16(c.PC)
		c.PC += 2
		a := base + uint16(c.Y)
		return a, base&0xFF00 != a&0xFF00
	case modeInd:
		ptr := c.read16(c.PC)
		c.PC += 2
		lo := c.read8(ptr)
		var hi uint8
		if ptr&0x00FF == 0x00FF {
			hi = c.read8(ptr & 0xFF00)
		} else {
			hi = c.read8(ptr + 1)
		}
		return uint16(hi)<<8 | uint16(lo), false
	case modeIzx:
		zp := uint8(c.read8(c.PC) + c.X)
		c.PC++
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(uint8(zp + 1))))
		return hi<<8 | lo, false
	case modeIzy:
		zp := c.read8(c.PC)
		c.PC++
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(uint8(zp + 1))))
		base := hi<<8 | lo
		a := base + uint16(c.Y)
		return a, base&0xFF00 != a&0xFF00
	default:
		return 0, false
	}
}

// load reads the operand addressed by mode, handling accumulator mode as a
// read of A rather than memory.
func (c *CPU) load(mode addrMode) (val uint8, addr uint16, pageCrossed bool) {
	if mode == modeAcc {
		return c.A, 0, false
	}
	addr, pageCrossed = c.addr(mode)
	return c.read8(addr), addr, pageCrossed
}

func (c *CPU) store(mode addrMode, addr uint16, v uint8) {
	if mode == modeAcc {
		c.A = v
		return
	}
	c.write8(addr, v)
}

// --- ALU primitives ---

func (c *CPU) add(operand uint8) {
	carry := uint16(0)
	if c.P.has(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(operand) + carry
	c.P.setCV(c.A, operand, sum)
	c.A = uint8(sum)
	c.P.setNZ(c.A)
}

func (c *CPU) compare(reg, operand uint8) {
	diff := uint16(reg) - uint16(operand)
	c.P.set(FlagCarry, reg >= operand)
	c.P.setNZ(uint8(diff))
}

// --- load/store/transfer ---

func opLoad(set func(c *CPU, v uint8)) execFunc {
	return func(c *CPU, mode addrMode) bool {
		v, _, pc := c.load(mode)
		set(c, v)
		c.P.setNZ(v)
		return pc
	}
}

func opStore(src func(c *CPU) uint8) execFunc {
	return func(c *CPU, mode addrMode) bool {
		addr, _ := c.addr(mode)
		c.store(mode, addr, src(c))
		return false
	}
}

func transfer(get func(*CPU) uint8, set func(*CPU, uint8), touchFlags bool) execFunc {
	return func(c *CPU, mode addrMode) bool {
		v := get(c)
		set(c, v)
		if touchFlags {
			c.P.setNZ(v)
		}
		return false
	}
}

// --- ALU ops ---

func opADC(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	c.add(v)
	return pc
}

func opSBC(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	c.add(v ^ 0xFF)
	return pc
}

func opAND(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	c.A &= v
	c.P.setNZ(c.A)
	return pc
}

func opORA(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	c.A |= v
	c.P.setNZ(c.A)
	return pc
}

func opEOR(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	c.A ^= v
	c.P.setNZ(c.A)
	return pc
}

func opBIT(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.P.set(FlagZero, c.A&v == 0)
	c.P.set(FlagOverflow, v&0x40 != 0)
	c.P.set(FlagNegative, v&0x80 != 0)
	return false
}

func opCMP(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	c.compare(c.A, v)
	return pc
}

func opCPX(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.compare(c.X, v)
	return false
}

func opCPY(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.compare(c.Y, v)
	return false
}

// --- read-modify-write ---

func rmw(f func(c *CPU, v uint8) uint8) execFunc {
	return func(c *CPU, mode addrMode) bool {
		v, addr, _ := c.load(mode)
		result := f(c, v)
		c.store(mode, addr, result)
		return false
	}
}

func opASL(c *CPU, v uint8) uint8 {
	c.P.set(FlagCarry, v&0x80 != 0)
	r := v << 1
	c.P.setNZ(r)
	return r
}

func opLSR(c *CPU, v uint8) uint8 {
	c.P.set(FlagCarry, v&0x01 != 0)
	r := v >> 1
	c.P.setNZ(r)
	return r
}

func opROL(c *CPU, v uint8) uint8 {
	carryIn := uint8(0)
	if c.P.has(FlagCarry) {
		carryIn = 1
	}
	c.P.set(FlagCarry, v&0x80 != 0)
	r := v<<1 | carryIn
	c.P.setNZ(r)
	return r
}

func opROR(c *CPU, v uint8) uint8 {
	carryIn := uint8(0)
	if c.P.has(FlagCarry) {
		carryIn = 0x80
	}
	c.P.set(FlagCarry, v&0x01 != 0)
	r := v>>1 | carryIn
	c.P.setNZ(r)
	return r
}

func opINC(c *CPU, v uint8) uint8 {
	r := v + 1
	c.P.setNZ(r)
	return r
}

func opDEC(c *CPU, v uint8) uint8 {
	r := v - 1
	c.P.setNZ(r)
	return r
}

// --- stack, flags, jumps ---

func opPHA(c *CPU, mode addrMode) bool { c.push8(c.A); return false }
func opPHP(c *CPU, mode addrMode) bool {
	flags := c.P | FlagBreak | FlagUnused
	c.push8(uint8(flags))
	return false
}
func opPLA(c *CPU, mode addrMode) bool {
	c.A = c.pull8()
	c.P.setNZ(c.A)
	return false
}
func opPLP(c *CPU, mode addrMode) bool {
	c.P = P(c.pull8())&^FlagBreak | FlagUnused
	return false
}

func opJMP(c *CPU, mode addrMode) bool {
	addr, _ := c.addr(mode)
	c.PC = addr
	return false
}

func opJSR(c *CPU, mode addrMode) bool {
	addr, _ := c.addr(mode)
	c.push16(c.PC - 1)
	c.PC = addr
	return false
}

func opRTS(c *CPU, mode addrMode) bool {
	c.PC = c.pull16() + 1
	return false
}

func opRTI(c *CPU, mode addrMode) bool {
	c.P = P(c.pull8())&^FlagBreak | FlagUnused
	c.PC = c.pull16()
	return false
}

func opBRK(c *CPU, mode addrMode) bool {
	c.PC++
	c.enterInterrupt(0xFFFE, true)
	return false
}

func setFlag(flag P, on bool) execFunc {
	return func(c *CPU, mode addrMode) bool {
		c.P.set(flag, on)
		return false
	}
}

// branchIf implements a conditional branch: +1 cycle if taken, and one more
// if the branch target lands on a different page than the instruction
// following the branch.
func branchIf(test func(*CPU) bool) execFunc {
	return func(c *CPU, mode addrMode) bool {
		disp := int8(c.read8(c.PC))
		c.PC++
		if !test(c) {
			return false
		}
		target := uint16(int32(c.PC) + int32(disp))
		if c.PC&0xFF00 != target&0xFF00 {
			c.extraCycles++
		}
		c.PC = target
		return true
	}
}

func opNOP(c *CPU, mode addrMode) bool {
	if mode == modeImp || mode == modeAcc {
		return false
	}
	_, _, pc := c.load(mode)
	return pc
}

func opKIL(c *CPU, mode addrMode) bool {
	c.halt(&CPUHaltError{PC: c.PC - 1, Opcode: c.read8(c.PC - 1)})
	return false
}

// --- illegal combined read-modify-write opcodes ---

func opSLO(c *CPU, mode addrMode) bool {
	v, addr, _ := c.load(mode)
	r := opASL(c, v)
	c.store(mode, addr, r)
	c.A |= r
	c.P.setNZ(c.A)
	return false
}

func opRLA(c *CPU, mode addrMode) bool {
	v, addr, _ := c.load(mode)
	r := opROL(c, v)
	c.store(mode, addr, r)
	c.A &= r
	c.P.setNZ(c.A)
	return false
}

func opSRE(c *CPU, mode addrMode) bool {
	v, addr, _ := c.load(mode)
	r := opLSR(c, v)
	c.store(mode, addr, r)
	c.A ^= r
	c.P.setNZ(c.A)
	return false
}

func opRRA(c *CPU, mode addrMode) bool {
	v, addr, _ := c.load(mode)
	r := opROR(c, v)
	c.store(mode, addr, r)
	c.add(r)
	return false
}

func opDCP(c *CPU, mode addrMode) bool {
	v, addr, _ := c.load(mode)
	r := v - 1
	c.store(mode, addr, r)
	c.compare(c.A, r)
	return false
}

func opISC(c *CPU, mode addrMode) bool {
	v, addr, _ := c.load(mode)
	r := v + 1
	c.store(mode, addr, r)
	c.add(r ^ 0xFF)
	return false
}

func opSAX(c *CPU, mode addrMode) bool {
	addr, _ := c.addr(mode)
	c.write8(addr, c.A&c.X)
	return false
}

func opLAX(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	c.A, c.X = v, v
	c.P.setNZ(v)
	return pc
}

func opANC(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.A &= v
	c.P.setNZ(c.A)
	c.P.set(FlagCarry, c.A&0x80 != 0)
	return false
}

func opALR(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.A &= v
	c.A = opLSR(c, c.A)
	return false
}

func opARR(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.A &= v
	c.A = opROR(c, c.A)
	c.P.set(FlagCarry, c.A&0x40 != 0)
	c.P.set(FlagOverflow, (c.A&0x40 != 0) != (c.A&0x20 != 0))
	return false
}

func opANE(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.A = (c.A | 0xEE) & c.X & v
	c.P.setNZ(c.A)
	return false
}

func opLXA(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	c.A = (c.A | 0xEE) & v
	c.X = c.A
	c.P.setNZ(c.A)
	return false
}

func opSBX(c *CPU, mode addrMode) bool {
	v, _, _ := c.load(mode)
	r := (c.A & c.X) - v
	c.P.set(FlagCarry, (c.A&c.X) >= v)
	c.X = r
	c.P.setNZ(r)
	return false
}

func opLAS(c *CPU, mode addrMode) bool {
	v, _, pc := c.load(mode)
	r := v & c.SP
	c.A, c.X, c.SP = r, r, r
	c.P.setNZ(r)
	return pc
}

// sh is the shared "unstable high-byte AND" family (SHA/SHX/SHY/TAS):
// stores (reg & (addressHigh+1)) and, for unstable variants, may also
// corrupt the address high byte on a page cross. This implements only the
// documented, commonly-relied-upon store effect.
func sh(regVal func(*CPU) uint8) execFunc {
	return func(c *CPU, mode addrMode) bool {
		addr, _ := c.addr(mode)
		hi := uint8(addr>>8) + 1
		c.write8(addr, regVal(c)&hi)
		return false
	}
}

func opTAS(c *CPU, mode addrMode) bool {
	c.SP = c.A & c.X
	addr, _ := c.addr(mode)
	hi := uint8(addr>>8) + 1
	c.write8(addr, c.SP&hi)
	return false
}

// --- opcode table ---

var opcodeTable [256]opcodeDef
var baseCycles [256]uint8

func def(op uint8, mnemonic string, mode addrMode, cycles uint8, fn execFunc) {
	opcodeTable[op] = opcodeDef{mnemonic: mnemonic, mode: mode, exec: fn}
	baseCycles[op] = cycles
}

func init() {
	// Loads
	def(0xA9, "LDA", modeImm, 2, opLoad(func(c *CPU, v uint8) { c.A = v }))
	def(0xA5, "LDA", modeZp, 3, opLoad(func(c *CPU, v uint8) { c.A = v }))
	def(0xB5, "LDA", modeZpx, 4, opLoad(func(c *CPU, v uint8) { c.A = v }))
	def(0xAD, "LDA", modeAbs, 4, opLoad(func(c *CPU, v uint8) { c.A = v }))
	def(0xBD, "LDA", modeAbx, 4, opLoad(func(c *CPU, v uint8) { c.A = v }))
	def(0xB9, "LDA", modeAby, 4, opLoad(func(c *CPU, v uint8) { c.A = v }))
	def(0xA1, "LDA", modeIzx, 6, opLoad(func(c *CPU, v uint8) { c.A = v }))
	def(0xB1, "LDA", modeIzy, 5, opLoad(func(c *CPU, v uint8) { c.A = v }))

	def(0xA2, "LDX", modeImm, 2, opLoad(func(c *CPU, v uint8) { c.X = v }))
	def(0xA6, "LDX", modeZp, 3, opLoad(func(c *CPU, v uint8) { c.X = v }))
	def(0xB6, "LDX", modeZpy, 4, opLoad(func(c *CPU, v uint8) { c.X = v }))
	def(0xAE, "LDX", modeAbs, 4, opLoad(func(c *CPU, v uint8) { c.X = v }))
	def(0xBE, "LDX", modeAby, 4, opLoad(func(c *CPU, v uint8) { c.X = v }))

	def(0xA0, "LDY", modeImm, 2, opLoad(func(c *CPU, v uint8) { c.Y = v }))
	def(0xA4, "LDY", modeZp, 3, opLoad(func(c *CPU, v uint8) { c.Y = v }))
	def(0xB4, "LDY", modeZpx, 4, opLoad(func(c *CPU, v uint8) { c.Y = v }))
	def(0xAC, "LDY", modeAbs, 4, opLoad(func(c *CPU, v uint8) { c.Y = v }))
	def(0xBC, "LDY", modeAbx, 4, opLoad(func(c *CPU, v uint8) { c.Y = v }))

	// Stores
	def(0x85, "STA", modeZp, 3, opStore(func(c *CPU) uint8 { return c.A }))
	def(0x95, "STA", modeZpx, 4, opStore(func(c *CPU) uint8 { return c.A }))
	def(0x8D, "STA", modeAbs, 4, opStore(func(c *CPU) uint8 { return c.A }))
	def(0x9D, "STA", modeAbx, 5, opStore(func(c *CPU) uint8 { return c.A }))
	def(0x99, "STA", modeAby, 5, opStore(func(c *CPU) uint8 { return c.A }))
	def(0x81, "STA", modeIzx, 6, opStore(func(c *CPU) uint8 { return c.A }))
	def(0x91, "STA", modeIzy, 6, opStore(func(c *CPU) uint8 { return c.A }))

	def(0x86, "STX", modeZp, 3, opStore(func(c *CPU) uint8 { return c.X }))
	def(0x96, "STX", modeZpy, 4, opStore(func(c *CPU) uint8 { return c.X }))
	def(0x8E, "STX", modeAbs, 4, opStore(func(c *CPU) uint8 { return c.X }))

	def(0x84, "STY", modeZp, 3, opStore(func(c *CPU) uint8 { return c.Y }))
	def(0x94, "STY", modeZpx, 4, opStore(func(c *CPU) uint8 { return c.Y }))
	def(0x8C, "STY", modeAbs, 4, opStore(func(c *CPU) uint8 { return c.Y }))

	// Transfers
	def(0xAA, "TAX", modeImp, 2, transfer(func(c *CPU) uint8 { return c.A }, func(c *CPU, v uint8) { c.X = v }, true))
	def(0x8A, "TXA", modeImp, 2, transfer(func(c *CPU) uint8 { return c.X }, func(c *CPU, v uint8) { c.A = v }, true))
	def(0xA8, "TAY", modeImp, 2, transfer(func(c *CPU) uint8 { return c.A }, func(c *CPU, v uint8) { c.Y = v }, true))
	def(0x98, "TYA", modeImp, 2, transfer(func(c *CPU) uint8 { return c.Y }, func(c *CPU, v uint8) { c.A = v }, true))
	def(0xBA, "TSX", modeImp, 2, transfer(func(c *CPU) uint8 { return c.SP }, func(c *CPU, v uint8) { c.X = v }, true))
	def(0x9A, "TXS", modeImp, 2, transfer(func(c *CPU) uint8 { return c.X }, func(c *CPU, v uint8) { c.SP = v }, false))

	// ALU
	for _, e := range []struct {
		op    uint8
		mode  addrMode
		cyc   uint8
	}{
		{0x69, modeImm, 2}, {0x65, modeZp, 3}, {0x75, modeZpx, 4}, {0x6D, modeAbs, 4},
		{0x7D, modeAbx, 4}, {0x79, modeAby, 4}, {0x61, modeIzx, 6}, {0x71, modeIzy, 5},
	} {
		def(e.op, "ADC", e.mode, e.cyc, opADC)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0xE9, modeImm, 2}, {0xE5, modeZp, 3}, {0xF5, modeZpx, 4}, {0xED, modeAbs, 4},
		{0xFD, modeAbx, 4}, {0xF9, modeAby, 4}, {0xE1, modeIzx, 6}, {0xF1, modeIzy, 5},
	} {
		def(e.op, "SBC", e.mode, e.cyc, opSBC)
	}
	def(0xEB, "SBC", modeImm, 2, opSBC) // undocumented duplicate of 0xE9
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0x29, modeImm, 2}, {0x25, modeZp, 3}, {0x35, modeZpx, 4}, {0x2D, modeAbs, 4},
		{0x3D, modeAbx, 4}, {0x39, modeAby, 4}, {0x21, modeIzx, 6}, {0x31, modeIzy, 5},
	} {
		def(e.op, "AND", e.mode, e.cyc, opAND)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0x09, modeImm, 2}, {0x05, modeZp, 3}, {0x15, modeZpx, 4}, {0x0D, modeAbs, 4},
		{0x1D, modeAbx, 4}, {0x19, modeAby, 4}, {0x01, modeIzx, 6}, {0x11, modeIzy, 5},
	} {
		def(e.op, "ORA", e.mode, e.cyc, opORA)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0x49, modeImm, 2}, {0x45, modeZp, 3}, {0x55, modeZpx, 4}, {0x4D, modeAbs, 4},
		{0x5D, modeAbx, 4}, {0x59, modeAby, 4}, {0x41, modeIzx, 6}, {0x51, modeIzy, 5},
	} {
		def(e.op, "EOR", e.mode, e.cyc, opEOR)
	}
	def(0x24, "BIT", modeZp, 3, opBIT)
	def(0x2C, "BIT", modeAbs, 4, opBIT)

	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0xC9, modeImm, 2}, {0xC5, modeZp, 3}, {0xD5, modeZpx, 4}, {0xCD, modeAbs, 4},
		{0xDD, modeAbx, 4}, {0xD9, modeAby, 4}, {0xC1, modeIzx, 6}, {0xD1, modeIzy, 5},
	} {
		def(e.op, "CMP", e.mode, e.cyc, opCMP)
	}
	def(0xE0, "CPX", modeImm, 2, opCPX)
	def(0xE4, "CPX", modeZp, 3, opCPX)
	def(0xEC, "CPX", modeAbs, 4, opCPX)
	def(0xC0, "CPY", modeImm, 2, opCPY)
	def(0xC4, "CPY", modeZp, 3, opCPY)
	def(0xCC, "CPY", modeAbs, 4, opCPY)

	// Read-modify-write
	def(0x0A, "ASL", modeAcc, 2, rmw(opASL))
	def(0x06, "ASL", modeZp, 5, rmw(opASL))
	def(0x16, "ASL", modeZpx, 6, rmw(opASL))
	def(0x0E, "ASL", modeAbs, 6, rmw(opASL))
	def(0x1E, "ASL", modeAbx, 7, rmw(opASL))

	def(0x4A, "LSR", modeAcc, 2, rmw(opLSR))
	def(0x46, "LSR", modeZp, 5, rmw(opLSR))
	def(0x56, "LSR", modeZpx, 6, rmw(opLSR))
	def(0x4E, "LSR", modeAbs, 6, rmw(opLSR))
	def(0x5E, "LSR", modeAbx, 7, rmw(opLSR))

	def(0x2A, "ROL", modeAcc, 2, rmw(opROL))
	def(0x26, "ROL", modeZp, 5, rmw(opROL))
	def(0x36, "ROL", modeZpx, 6, rmw(opROL))
	def(0x2E, "ROL", modeAbs, 6, rmw(opROL))
	def(0x3E, "ROL", modeAbx, 7, rmw(opROL))

	def(0x6A, "ROR", modeAcc, 2, rmw(opROR))
	def(0x66, "ROR", modeZp, 5, rmw(opROR))
	def(0x76, "ROR", modeZpx, 6, rmw(opROR))
	def(0x6E, "ROR", modeAbs, 6, rmw(opROR))
	def(0x7E, "ROR", modeAbx, 7, rmw(opROR))

	def(0xE6, "INC", modeZp, 5, rmw(opINC))
	def(0xF6, "INC", modeZpx, 6, rmw(opINC))
	def(0xEE, "INC", modeAbs, 6, rmw(opINC))
	def(0xFE, "INC", modeAbx, 7, rmw(opINC))

	def(0xC6, "DEC", modeZp, 5, rmw(opDEC))
	def(0xD6, "DEC", modeZpx, 6, rmw(opDEC))
	def(0xCE, "DEC", modeAbs, 6, rmw(opDEC))
	def(0xDE, "DEC", modeAbx, 7, rmw(opDEC))

	// Increments/decrements of X/Y
	def(0xE8, "INX", modeImp, 2, func(c *CPU, m addrMode) bool { c.X++; c.P.setNZ(c.X); return false })
	def(0xC8, "INY", modeImp, 2, func(c *CPU, m addrMode) bool { c.Y++; c.P.setNZ(c.Y); return false })
	def(0xCA, "DEX", modeImp, 2, func(c *CPU, m addrMode) bool { c.X--; c.P.setNZ(c.X); return false })
	def(0x88, "DEY", modeImp, 2, func(c *CPU, m addrMode) bool { c.Y--; c.P.setNZ(c.Y); return false })

	// Stack / flags
	def(0x48, "PHA", modeImp, 3, opPHA)
	def(0x08, "PHP", modeImp, 3, opPHP)
	def(0x68, "PLA", modeImp, 4, opPLA)
	def(0x28, "PLP", modeImp, 4, opPLP)
	def(0x18, "CLC", modeImp, 2, setFlag(FlagCarry, false))
	def(0x38, "SEC", modeImp, 2, setFlag(FlagCarry, true))
	def(0x58, "CLI", modeImp, 2, setFlag(FlagInterruptDisable, false))
	def(0x78, "SEI", modeImp, 2, setFlag(FlagInterruptDisable, true))
	def(0xB8, "CLV", modeImp, 2, setFlag(FlagOverflow, false))
	def(0xD8, "CLD", modeImp, 2, setFlag(FlagDecimal, false))
	def(0xF8, "SED", modeImp, 2, setFlag(FlagDecimal, true))

	// Jumps / calls
	def(0x4C, "JMP", modeAbs, 3, opJMP)
	def(0x6C, "JMP", modeInd, 5, opJMP)
	def(0x20, "JSR", modeAbs, 6, opJSR)
	def(0x60, "RTS", modeImp, 6, opRTS)
	def(0x40, "RTI", modeImp, 6, opRTI)
	def(0x00, "BRK", modeImp, 7, opBRK)

	// Branches
	def(0x10, "BPL", modeRel, 2, branchIf(func(c *CPU) bool { return !c.P.has(FlagNegative) }))
	def(0x30, "BMI", modeRel, 2, branchIf(func(c *CPU) bool { return c.P.has(FlagNegative) }))
	def(0x50, "BVC", modeRel, 2, branchIf(func(c *CPU) bool { return !c.P.has(FlagOverflow) }))
	def(0x70, "BVS", modeRel, 2, branchIf(func(c *CPU) bool { return c.P.has(FlagOverflow) }))
	def(0x90, "BCC", modeRel, 2, branchIf(func(c *CPU) bool { return !c.P.has(FlagCarry) }))
	def(0xB0, "BCS", modeRel, 2, branchIf(func(c *CPU) bool { return c.P.has(FlagCarry) }))
	def(0xD0, "BNE", modeRel, 2, branchIf(func(c *CPU) bool { return !c.P.has(FlagZero) }))
	def(0xF0, "BEQ", modeRel, 2, branchIf(func(c *CPU) bool { return c.P.has(FlagZero) }))

	// NOP family (official + unofficial, correct operand widths)
	def(0xEA, "NOP", modeImp, 2, opNOP)
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		def(op, "NOP", modeImp, 2, opNOP)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		def(op, "NOP", modeImm, 2, opNOP)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		def(op, "NOP", modeZp, 3, opNOP)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		def(op, "NOP", modeZpx, 4, opNOP)
	}
	def(0x0C, "NOP", modeAbs, 4, opNOP)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		def(op, "NOP", modeAbx, 4, opNOP)
	}

	// KIL/JAM (illegal, halts on real hardware)
	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		def(op, "KIL", modeImp, 0, opKIL)
	}

	// Illegal combined RMW
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0x07, modeZp, 5}, {0x17, modeZpx, 6}, {0x0F, modeAbs, 6},
		{0x1F, modeAbx, 7}, {0x1B, modeAby, 7}, {0x03, modeIzx, 8}, {0x13, modeIzy, 8},
	} {
		def(e.op, "SLO", e.mode, e.cyc, opSLO)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0x27, modeZp, 5}, {0x37, modeZpx, 6}, {0x2F, modeAbs, 6},
		{0x3F, modeAbx, 7}, {0x3B, modeAby, 7}, {0x23, modeIzx, 8}, {0x33, modeIzy, 8},
	} {
		def(e.op, "RLA", e.mode, e.cyc, opRLA)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0x47, modeZp, 5}, {0x57, modeZpx, 6}, {0x4F, modeAbs, 6},
		{0x5F, modeAbx, 7}, {0x5B, modeAby, 7}, {0x43, modeIzx, 8}, {0x53, modeIzy, 8},
	} {
		def(e.op, "SRE", e.mode, e.cyc, opSRE)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0x67, modeZp, 5}, {0x77, modeZpx, 6}, {0x6F, modeAbs, 6},
		{0x7F, modeAbx, 7}, {0x7B, modeAby, 7}, {0x63, modeIzx, 8}, {0x73, modeIzy, 8},
	} {
		def(e.op, "RRA", e.mode, e.cyc, opRRA)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0xC7, modeZp, 5}, {0xD7, modeZpx, 6}, {0xCF, modeAbs, 6},
		{0xDF, modeAbx, 7}, {0xDB, modeAby, 7}, {0xC3, modeIzx, 8}, {0xD3, modeIzy, 8},
	} {
		def(e.op, "DCP", e.mode, e.cyc, opDCP)
	}
	for _, e := range []struct {
		op   uint8
		mode addrMode
		cyc  uint8
	}{
		{0xE7, modeZp, 5}, {0xF7, modeZpx, 6}, {0xEF, modeAbs, 6},
		{0xFF, modeAbx, 7}, {0xFB, modeAby, 7}, {0xE3, modeIzx, 8}, {0xF3, modeIzy, 8},
	} {
		def(e.op, "ISC", e.mode, e.cyc, opISC)
	}

	// SAX / LAX / unstable family
	def(0x87, "SAX", modeZp, 3, opSAX)
	def(0x97, "SAX", modeZpy, 4, opSAX)
	def(0x8F, "SAX", modeAbs, 4, opSAX)
	def(0x83, "SAX", modeIzx, 6, opSAX)

	def(0xA7, "LAX", modeZp, 3, opLAX)
	def(0xB7, "LAX", modeZpy, 4, opLAX)
	def(0xAF, "LAX", modeAbs, 4, opLAX)
	def(0xBF, "LAX", modeAby, 4, opLAX)
	def(0xA3, "LAX", modeIzx, 6, opLAX)
	def(0xB3, "LAX", modeIzy, 5, opLAX)

	def(0x0B, "ANC", modeImm, 2, opANC)
	def(0x2B, "ANC", modeImm, 2, opANC)
	def(0x4B, "ALR", modeImm, 2, opALR)
	def(0x6B, "ARR", modeImm, 2, opARR)
	def(0x8B, "ANE", modeImm, 2, opANE)
	def(0xAB, "LXA", modeImm, 2, opLXA)
	def(0xCB, "SBX", modeImm, 2, opSBX)
	def(0xBB, "LAS", modeAby, 4, opLAS)

	def(0x9F, "SHA", modeAby, 5, sh(func(c *CPU) uint8 { return c.A & c.X }))
	def(0x93, "SHA", modeIzy, 6, sh(func(c *CPU) uint8 { return c.A & c.X }))
	def(0x9E, "SHX", modeAby, 5, sh(func(c *CPU) uint8 { return c.X }))
	def(0x9C, "SHY", modeAbx, 5, sh(func(c *CPU) uint8 { return c.Y }))
	def(0x9B, "TAS", modeAby, 5, opTAS)
}
