package nescore

// uxrom implements mapper 2: a bank-switched 16 KiB window at $8000..$BFFF
// selected by the low bits of any write in cartridge space, with the last
// 16 KiB bank fixed at $C000..$FFFF. CHR is fixed (ROM or RAM), unbanked.
type uxrom struct {
	prg       []byte
	prgRAM    []byte
	chr       []byte
	chrIsRAM  bool
	mirroring Mirroring

	bankCount uint8
	bank      uint8
}

func newUxROM(cart *Cartridge) *uxrom {
	chr, isRAM := chrOrRAM(cart)
	return &uxrom{
		prg:       cart.PRGROM,
		prgRAM:    make([]byte, 0x2000),
		chr:       chr,
		chrIsRAM:  isRAM,
		mirroring: cart.Mirroring,
		bankCount: uint8(len(cart.PRGROM) / 0x4000),
	}
}

func (m *uxrom) Reset() { m.bank = 0 }

func (m *uxrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000 && addr <= 0xBFFF:
		base := int(m.bank) * 0x4000
		return m.prg[base+int(addr-0x8000)]
	case addr >= 0xC000:
		base := int(m.bankCount-1) * 0x4000
		return m.prg[base+int(addr-0xC000)]
	default:
		return 0
	}
}

func (m *uxrom) CPUWrite(addr uint16, v uint8) {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		m.prgRAM[addr-0x6000] = v
	case addr >= 0x8000:
		m.bank = v % m.bankCount
	}
}

func (m *uxrom) PPURead(addr uint16) uint8 { return m.chr[addr&0x1FFF] }

func (m *uxrom) PPUWrite(addr uint16, v uint8) {
	if m.chrIsRAM {
		m.chr[addr&0x1FFF] = v
	}
}

func (m *uxrom) Mirroring() Mirroring { return m.mirroring }
func (m *uxrom) ConsumeIRQ() bool     { return false }
func (m *uxrom) PRGRAM() []byte       { return m.prgRAM }

func (m *uxrom) NotifyVisibleScanline(bgEnabled bool) {}
