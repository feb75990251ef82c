package nescore

import (
	"fmt"

	"github.com/madrijkaard/rkd-emulator-nes/internal/log"
)

// cyclesPerFrame is the nominal NTSC CPU cycle budget for one frame,
// used only as a safety bound against a hung Step loop; Frame stops as soon
// as the PPU actually reports a completed frame.
const cyclesPerFrame = 29781

// Emulator wires a CPU, PPU, cartridge Mapper, and two controller ports into
// a runnable machine and drives them one CPU instruction at a time.
type Emulator struct {
	CPU  *CPU
	PPU  *PPU
	Bus  *Bus
	Pad1 *Controller
	Pad2 *Controller

	mapper Mapper
}

// PowerOn constructs a fresh machine around the given cartridge and resets
// it to its post-power-up state.
func PowerOn(cart *Cartridge) (*Emulator, error) {
	mapper, err := NewMapper(cart)
	if err != nil {
		return nil, err
	}

	ppu := NewPPU(mapper)
	pad1, pad2 := &Controller{}, &Controller{}
	bus := NewBus(ppu, mapper, pad1, pad2)
	cpu := NewCPU(bus)
	bus.AttachCPU(cpu)

	e := &Emulator{
		CPU:    cpu,
		PPU:    ppu,
		Bus:    bus,
		Pad1:   pad1,
		Pad2:   pad2,
		mapper: mapper,
	}
	e.Reset()
	log.ModEmu.Infof("power on: mapper=%d prg=%dKiB chr=%dKiB", cart.MapperID, len(cart.PRGROM)/1024, len(cart.CHRROM)/1024)
	return e, nil
}

// Reset reinitialises the machine without reallocating it: the mapper's
// bank and IRQ registers return to their power-up values, the PPU clears to
// its power-up register values, and the CPU reloads PC from the reset
// vector, in that order.
func (e *Emulator) Reset() {
	e.mapper.Reset()
	e.PPU.Reset()
	e.CPU.Reset()
}

// Step executes one CPU instruction (or one NMI/IRQ entry), advances the PPU by three
// dots per CPU cycle consumed, delivers the PPU's NMI line and the
// mapper's IRQ line to the CPU ahead of its next instruction, and reports
// whether the PPU completed a frame during this step.
func (e *Emulator) Step() (cycles uint32, frameComplete bool, err error) {
	cycles, err = e.CPU.Step()
	if err != nil {
		return cycles, false, err
	}

	for i := uint32(0); i < cycles*3; i++ {
		if e.PPU.Advance(1) {
			frameComplete = true
		}
	}

	if e.PPU.NMILine() {
		e.CPU.SetNMILine(true)
		e.PPU.AcknowledgeNMI()
	} else {
		e.CPU.SetNMILine(false)
	}
	e.CPU.SetIRQLine(e.mapper.ConsumeIRQ())

	return cycles, frameComplete, nil
}

// Frame runs Step until a full PPU frame completes, the CPU halts, or four
// times the nominal per-frame cycle budget has been spent.
func (e *Emulator) Frame() error {
	var spent uint32
	for spent < cyclesPerFrame*4 {
		cycles, done, err := e.Step()
		if err != nil {
			return err
		}
		spent += cycles
		if done {
			return nil
		}
	}
	return nil
}

// Framebuffer returns the most recently completed frame's NES palette
// indices, one byte per pixel, row-major, 256x240.
func (e *Emulator) Framebuffer() *[256 * 240]uint8 { return e.PPU.Framebuffer() }

// SetButton updates one button on one of the two controller ports (0 or 1).
func (e *Emulator) SetButton(pad int, b Button, pressed bool) error {
	switch pad {
	case 0:
		e.Pad1.SetButton(b, pressed)
	case 1:
		e.Pad2.SetButton(b, pressed)
	default:
		return &ErrDriverMisuse{Reason: fmt.Sprintf("SetButton: pad %d is not 0 or 1", pad)}
	}
	return nil
}
