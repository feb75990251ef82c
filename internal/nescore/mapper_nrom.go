package nescore

// nrom implements mapper 0: a fixed 16 or 32 KiB PRG-ROM window (mirrored
// twice when 16 KiB) and a fixed CHR bank, with no run-time banking.
type nrom struct {
	prg       []byte
	prgRAM    []byte
	chr       []byte
	chrIsRAM  bool
	mirroring Mirroring
}

func newNROM(cart *Cartridge) *nrom {
	chr, isRAM := chrOrRAM(cart)
	return &nrom{
		prg:       cart.PRGROM,
		prgRAM:    make([]byte, 0x2000),
		chr:       chr,
		chrIsRAM:  isRAM,
		mirroring: cart.Mirroring,
	}
}

func (m *nrom) Reset() {}

func (m *nrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		return m.prg[int(addr-0x8000)%len(m.prg)]
	default:
		return 0
	}
}

func (m *nrom) CPUWrite(addr uint16, v uint8) {
	if addr >= 0x6000 && addr <= 0x7FFF {
		m.prgRAM[addr-0x6000] = v
	}
	// Writes into $8000..$FFFF are ignored: NROM has no bank registers.
}

func (m *nrom) PPURead(addr uint16) uint8 {
	return m.chr[addr&0x1FFF]
}

func (m *nrom) PPUWrite(addr uint16, v uint8) {
	if m.chrIsRAM {
		m.chr[addr&0x1FFF] = v
	}
}

func (m *nrom) Mirroring() Mirroring { return m.mirroring }
func (m *nrom) ConsumeIRQ() bool     { return false }
func (m *nrom) PRGRAM() []byte       { return m.prgRAM }

func (m *nrom) NotifyVisibleScanline(bgEnabled bool) {}
