package nescore

import "github.com/madrijkaard/rkd-emulator-nes/internal/log"

// busAccess is the narrow interface the CPU needs from whatever owns
// addressable memory; satisfied by *Bus.
type busAccess interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, v uint8)
}

// CPU is a MOS 6502 core: binary-only ADC/SBC (no decimal mode), the full
// documented opcode set, and the illegal opcodes commonly relied upon by
// real software.
type CPU struct {
	bus busAccess

	A, X, Y, SP uint8
	PC          uint16
	P           P

	halted    bool
	haltedErr error

	nmiLine bool // level output of the PPU, sampled once per Step
	prevNMI bool
	irqLine bool // level output of the mapper

	extraCycles uint32 // added by OAM DMA before the next Step's base cost
}

func NewCPU(bus busAccess) *CPU {
	return &CPU{bus: bus}
}

func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagInterruptDisable | FlagUnused
	c.PC = c.read16(0xFFFC)
	c.halted = false
	c.haltedErr = nil
	c.nmiLine, c.prevNMI, c.irqLine = false, false, false
}

// SetNMILine is called by the driver with the PPU's current NMI output
// level once per Step, before Step executes the next instruction.
func (c *CPU) SetNMILine(level bool) { c.nmiLine = level }

// SetIRQLine is called by the driver with the mapper's current IRQ output.
func (c *CPU) SetIRQLine(level bool) { c.irqLine = level }

// AddDMACycles accounts for an OAM DMA transfer's cost (513 or 514 cycles)
// against the next instruction's reported cycle count.
func (c *CPU) AddDMACycles(n uint32) { c.extraCycles += n }

func (c *CPU) Halted() bool    { return c.halted }
func (c *CPU) HaltErr() error  { return c.haltedErr }

func (c *CPU) halt(err error) {
	c.halted = true
	c.haltedErr = err
	log.ModCPU.Errorf("%v", err)
}

// Step either enters a pending NMI or unmasked IRQ (pushing state and
// jumping to its vector, at a cost of 7 cycles, without executing an
// instruction) or executes exactly one instruction, and returns the number
// of CPU cycles it cost.
func (c *CPU) Step() (uint32, error) {
	if c.halted {
		return 0, c.haltedErr
	}

	nmiEdge := c.nmiLine && !c.prevNMI
	c.prevNMI = c.nmiLine

	if nmiEdge {
		c.enterInterrupt(0xFFFA, false)
		return 7, nil
	}
	if c.irqLine && !c.P.has(FlagInterruptDisable) {
		c.enterInterrupt(0xFFFE, false)
		return 7, nil
	}

	opcode := c.read8(c.PC)
	pc0 := c.PC
	c.PC++

	op := opcodeTable[opcode]
	if op.exec == nil {
		c.halt(&CPUHaltError{PC: pc0, Opcode: opcode})
		return 0, c.haltedErr
	}

	extraPageCycle := op.exec(c, op.mode)
	if c.halted {
		return 0, c.haltedErr
	}

	cycles := uint32(baseCycles[opcode])
	if extraPageCycle {
		cycles++
	}
	cycles += c.extraCycles
	c.extraCycles = 0

	return cycles, nil
}

// enterInterrupt pushes PC and P (with the given break flag) and jumps to
// the vector at addr. BRK always goes through the IRQ vector; an NMI
// arriving during a BRK sequence does not redirect it.
func (c *CPU) enterInterrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	flags := c.P
	flags.set(FlagBreak, brk)
	flags.set(FlagUnused, true)
	c.push8(uint8(flags))
	c.P.set(FlagInterruptDisable, true)
	c.PC = c.read16(vector)
}

func (c *CPU) read8(addr uint16) uint8     { return c.bus.Read8(addr) }
func (c *CPU) write8(addr uint16, v uint8) { c.bus.Write8(addr, v) }

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read8(addr))
	hi := uint16(c.read8(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) push8(v uint8) {
	c.write8(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.read8(0x0100 | uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull8())
	hi := uint16(c.pull8())
	return hi<<8 | lo
}
