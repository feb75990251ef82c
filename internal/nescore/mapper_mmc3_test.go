package nescore

import "testing"

func newTestMMC3(t *testing.T, prgBanks8k int) Mapper {
	t.Helper()
	cart := &Cartridge{
		MapperID: 4,
		PRGROM:   make([]byte, prgBanks8k*0x2000),
		CHRROM:   make([]byte, 0x2000),
	}
	for i := 0; i < prgBanks8k; i++ {
		cart.PRGROM[i*0x2000] = byte(i)
	}
	m, err := NewMapper(cart)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	return m
}

func TestMMC3PowerOnFixesLastTwoPRGWindows(t *testing.T) {
	m := newTestMMC3(t, 8) // banks tagged 0..7

	if got := m.CPURead(0xC000); got != 6 {
		t.Fatalf("$C000 tag = %d, want 6 (second-to-last bank, PRG mode 0)", got)
	}
	if got := m.CPURead(0xE000); got != 7 {
		t.Fatalf("$E000 tag = %d, want 7 (last bank, always fixed)", got)
	}
}

func TestMMC3BankDataSelectsSwitchableWindow(t *testing.T) {
	m := newTestMMC3(t, 8)
	m.CPUWrite(0x8000, 6) // bank select: R6 controls the $8000 window (PRG mode 0)
	m.CPUWrite(0x8001, 3) // bank data: select bank 3

	if got := m.CPURead(0x8000); got != 3 {
		t.Fatalf("$8000 tag = %d, want 3", got)
	}
}

func TestMMC3PRGModeBitSwapsFixedWindow(t *testing.T) {
	m := newTestMMC3(t, 8)
	m.CPUWrite(0x8000, 0x46) // bank select: PRG mode 1, target register R6
	m.CPUWrite(0x8001, 2)    // bank data register 6 = 2

	if got := m.CPURead(0xC000); got != 2 {
		t.Fatalf("$C000 tag = %d, want 2 (R6's window moved to $C000 in PRG mode 1)", got)
	}
	if got := m.CPURead(0x8000); got != 6 {
		t.Fatalf("$8000 tag = %d, want 6 (second-to-last bank, now fixed)", got)
	}
}

func TestMMC3IRQCounterReloadsAndFiresAtZero(t *testing.T) {
	m := newTestMMC3(t, 8).(*mmc3)

	m.CPUWrite(0xC000, 2) // IRQ latch = 2
	m.CPUWrite(0xC001, 0) // request reload on next clock
	m.CPUWrite(0xE001, 0) // enable IRQ

	m.clockIRQCounter() // reload: counter = latch (2)
	if m.irqCounter != 2 {
		t.Fatalf("irqCounter = %d, want 2 after reload", m.irqCounter)
	}
	if m.ConsumeIRQ() {
		t.Fatalf("IRQ should not be pending yet")
	}

	m.clockIRQCounter() // 2 -> 1
	if m.ConsumeIRQ() {
		t.Fatalf("IRQ should not be pending at counter=1")
	}

	m.clockIRQCounter() // 1 -> 0, enabled: pending
	if !m.ConsumeIRQ() {
		t.Fatalf("IRQ should be pending once the counter reaches 0")
	}
}

func TestMMC3IRQAcknowledgeClearsPending(t *testing.T) {
	m := newTestMMC3(t, 8).(*mmc3)
	m.CPUWrite(0xC000, 0)
	m.CPUWrite(0xC001, 0)
	m.CPUWrite(0xE001, 0)
	m.clockIRQCounter()
	m.clockIRQCounter()

	if !m.ConsumeIRQ() {
		t.Fatalf("expected IRQ pending")
	}
	m.CPUWrite(0xE000, 0) // acknowledge/disable
	if m.ConsumeIRQ() {
		t.Fatalf("IRQ should be cleared after acknowledging")
	}
}

func TestMMC3MirroringRegister(t *testing.T) {
	m := newTestMMC3(t, 8)
	m.CPUWrite(0xA000, 0x01)
	if got := m.Mirroring(); got != MirrorHorizontal {
		t.Fatalf("mirroring = %v, want MirrorHorizontal", got)
	}
	m.CPUWrite(0xA000, 0x00)
	if got := m.Mirroring(); got != MirrorVertical {
		t.Fatalf("mirroring = %v, want MirrorVertical", got)
	}
}
