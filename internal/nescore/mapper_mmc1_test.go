package nescore

import "testing"

// writeMMC1Register performs a full 5-bit serial write sequence to addr,
// committing value's low 5 bits LSB-first, matching the real shift protocol.
func writeMMC1Register(m Mapper, addr uint16, value uint8) {
	for i := 0; i < 5; i++ {
		bit := (value >> uint(i)) & 1
		m.CPUWrite(addr, bit)
	}
}

func newTestMMC1(t *testing.T, prgBanks16k int) Mapper {
	t.Helper()
	cart := &Cartridge{
		MapperID: 1,
		PRGROM:   make([]byte, prgBanks16k*0x4000),
		CHRROM:   make([]byte, 0x2000),
	}
	for i := 0; i < prgBanks16k; i++ {
		cart.PRGROM[i*0x4000] = byte(i)
	}
	m, err := NewMapper(cart)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	return m
}

func TestMMC1PowerOnForcesPRGMode3(t *testing.T) {
	m := newTestMMC1(t, 4)

	// Mode 3: $8000 switchable (bank register starts at 0), $C000 fixed to
	// the last bank.
	if got := m.CPURead(0x8000); got != 0 {
		t.Fatalf("$8000 tag = %d, want 0", got)
	}
	if got := m.CPURead(0xC000); got != 3 {
		t.Fatalf("$C000 tag = %d, want 3 (fixed last bank)", got)
	}
}

func TestMMC1PRGBankRegisterSwitchesLowWindow(t *testing.T) {
	m := newTestMMC1(t, 4)
	writeMMC1Register(m, 0xE000, 0x02) // PRG bank register: select bank 2 in mode 3

	if got := m.CPURead(0x8000); got != 2 {
		t.Fatalf("$8000 tag = %d, want 2", got)
	}
	if got := m.CPURead(0xC000); got != 3 {
		t.Fatalf("$C000 tag = %d, want 3 (still fixed)", got)
	}
}

func TestMMC1ResetBitForcesMode3AndClearsShift(t *testing.T) {
	m := newTestMMC1(t, 4)

	// Begin a 5-write sequence, then abort it with the reset bit.
	m.CPUWrite(0x8000, 1)
	m.CPUWrite(0x8000, 0x80) // bit 7 set: reset

	if got := m.CPURead(0x8000); got != 0 {
		t.Fatalf("bank should remain 0 after an aborted write sequence")
	}
}

func TestMMC1ControlRegisterSelectsMirroring(t *testing.T) {
	m := newTestMMC1(t, 4)
	writeMMC1Register(m, 0x8000, 0x02) // control bits 0-1 = 10: vertical

	if got := m.Mirroring(); got != MirrorVertical {
		t.Fatalf("mirroring = %v, want MirrorVertical", got)
	}
}

func TestMMC1PRGRAMCanBeDisabled(t *testing.T) {
	m := newTestMMC1(t, 4)
	m.CPUWrite(0x6000, 0xAB)
	if got := m.CPURead(0x6000); got != 0xAB {
		t.Fatalf("PRG-RAM should be readable by default")
	}

	writeMMC1Register(m, 0xE000, 0x10) // bit 4 of PRG/RAM register disables WRAM
	if got := m.CPURead(0x6000); got != 0 {
		t.Fatalf("PRG-RAM = $%02X, want $00 once disabled", got)
	}
}
