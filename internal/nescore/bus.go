package nescore

import "github.com/madrijkaard/rkd-emulator-nes/internal/log"

// Bus is the CPU's view of the machine: 2 KiB of internal RAM mirrored
// across $0000-$1FFF, the PPU's eight registers mirrored across $2000-$3FFF,
// the $4014 OAM DMA trigger, the two controller ports at $4016/$4017, the
// APU/IO range $4000-$4013/$4015/$4018-$401F (unimplemented, reads as open
// bus zero), and the cartridge mapper from $4020 up.
type Bus struct {
	ram  [0x800]byte
	ppu  *PPU
	pads [2]*Controller

	mapper Mapper

	cpu *CPU // set after construction so DMA can charge its cycle cost
}

func NewBus(ppu *PPU, mapper Mapper, pad1, pad2 *Controller) *Bus {
	return &Bus{
		ppu:    ppu,
		mapper: mapper,
		pads:   [2]*Controller{pad1, pad2},
	}
}

// AttachCPU lets the bus report OAM DMA's stall cost back to the CPU that
// issued the $4014 write; it must be called once during power-on wiring.
func (b *Bus) AttachCPU(cpu *CPU) { b.cpu = cpu }

func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.ppu.ReadRegister(uint8(addr & 0x0007))
	case addr == 0x4016:
		return b.pads[0].Read()
	case addr == 0x4017:
		return b.pads[1].Read()
	case addr >= 0x4000 && addr <= 0x4015:
		return 0
	case addr >= 0x4018 && addr <= 0x401F:
		return 0
	default:
		return b.mapper.CPURead(addr)
	}
}

func (b *Bus) Write8(addr uint16, v uint8) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = v
	case addr <= 0x3FFF:
		b.ppu.WriteRegister(uint8(addr&0x0007), v)
	case addr == 0x4014:
		b.startOAMDMA(v)
	case addr == 0x4016:
		b.pads[0].WriteStrobe(v)
		b.pads[1].WriteStrobe(v)
	case addr == 0x4017:
		// APU frame-counter write; unimplemented, accepted and ignored.
	case addr >= 0x4000 && addr <= 0x4015:
		// APU registers; unimplemented, accepted and ignored.
	case addr >= 0x4018 && addr <= 0x401F:
		// unused CPU test-mode range.
	default:
		b.mapper.CPUWrite(addr, v)
	}
}

// startOAMDMA copies 256 bytes from page v<<8 of CPU address space into PPU
// OAM, starting at whatever OAMADDR currently holds, and charges the CPU a
// flat 513 cycles for the transfer; the extra cycle of a DMA that starts on
// an odd CPU cycle is not modelled.
func (b *Bus) startOAMDMA(page uint8) {
	for i := 0; i < 256; i++ {
		v := b.Read8(uint16(page)<<8 | uint16(i))
		b.ppu.DMAWrite(uint8(i), v)
	}
	log.ModBus.Debugf("OAM DMA from page $%02X00", page)
	if b.cpu != nil {
		b.cpu.AddDMACycles(513)
	}
}
