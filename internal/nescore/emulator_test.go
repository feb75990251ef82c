package nescore

import "testing"

// buildNROM builds a single 16 KiB PRG bank NROM cartridge whose reset vector
// points at $8000 and whose program bytes start there.
func buildNROM(program []byte) *Cartridge {
	prg := make([]byte, 0x4000)
	copy(prg, program)
	prg[0x3FFC] = 0x00 // reset vector low byte -> $8000
	prg[0x3FFD] = 0x80
	return &Cartridge{
		MapperID: 0,
		PRGROM:   prg,
		CHRROM:   make([]byte, 0x2000),
	}
}

func TestPowerOnWiresCPUPPUMapperAndControllers(t *testing.T) {
	nes, err := PowerOn(buildNROM(nil))
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if nes.CPU == nil || nes.PPU == nil || nes.Bus == nil || nes.Pad1 == nil || nes.Pad2 == nil {
		t.Fatalf("PowerOn left a component unwired: %+v", nes)
	}
	if nes.CPU.PC != 0x8000 {
		t.Fatalf("PC = $%04X, want $8000 (reset vector)", nes.CPU.PC)
	}
}

func TestStepExecutesOneInstructionAndAdvancesPPUThreeDotsPerCycle(t *testing.T) {
	program := []byte{0xA9, 0x10} // LDA #$10
	nes, err := PowerOn(buildNROM(program))
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}

	cycles, _, err := nes.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 2 {
		t.Fatalf("cycles = %d, want 2 (LDA immediate)", cycles)
	}
	if nes.CPU.A != 0x10 {
		t.Fatalf("A = $%02X, want $10", nes.CPU.A)
	}
	if nes.PPU.scanline != -1 || nes.PPU.cycle != 6 {
		t.Fatalf("PPU at scanline=%d cycle=%d, want scanline=-1 cycle=6 after 6 dots", nes.PPU.scanline, nes.PPU.cycle)
	}
}

func TestStepReportsCPUErrorOnUndefinedOpcode(t *testing.T) {
	program := []byte{0x02} // KIL
	nes, err := PowerOn(buildNROM(program))
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if _, _, err := nes.Step(); err == nil {
		t.Fatalf("expected Step to report the halt")
	}
	if _, _, err := nes.Step(); err == nil {
		t.Fatalf("expected Step to keep reporting the halt once the CPU is stopped")
	}
}

func TestFrameRunsUntilPPUCompletesAFrame(t *testing.T) {
	// JMP $8000: a tight infinite loop the emulator must still escape once
	// the PPU finishes a frame, well inside the cycle safety budget.
	program := []byte{0x4C, 0x00, 0x80}
	nes, err := PowerOn(buildNROM(program))
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if err := nes.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	fb := nes.Framebuffer()
	if fb == nil {
		t.Fatalf("Framebuffer returned nil after a completed frame")
	}
}

func TestSetButtonReachesTheControllerThroughTheBus(t *testing.T) {
	nes, err := PowerOn(buildNROM(nil))
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if err := nes.SetButton(0, ButtonStart, true); err != nil {
		t.Fatalf("SetButton: %v", err)
	}

	nes.Bus.Write8(0x4016, 1)
	nes.Bus.Write8(0x4016, 0)

	// Start is the fourth bit shifted out (A, B, Select, Start, ...).
	nes.Bus.Read8(0x4016)
	nes.Bus.Read8(0x4016)
	nes.Bus.Read8(0x4016)
	got := nes.Bus.Read8(0x4016) & 0x01
	if got != 1 {
		t.Fatalf("fourth controller bit = %d, want 1 (Start pressed)", got)
	}
}

func TestSetButtonRejectsAPadIndexOutsideZeroOne(t *testing.T) {
	nes, err := PowerOn(buildNROM(nil))
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if err := nes.SetButton(2, ButtonA, true); err == nil {
		t.Fatalf("expected an error for an out-of-range pad index")
	}
}

func TestResetClearsCPURegistersAndReloadsResetVector(t *testing.T) {
	program := []byte{0xE8} // INX, used only as filler so the ROM isn't empty
	nes, err := PowerOn(buildNROM(program))
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	nes.CPU.X = 0x42
	nes.Reset()
	if nes.CPU.X != 0 {
		t.Fatalf("X = $%02X after Reset, want $00", nes.CPU.X)
	}
	if nes.CPU.PC != 0x8000 {
		t.Fatalf("PC = $%04X after Reset, want $8000", nes.CPU.PC)
	}
}
