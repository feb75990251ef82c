package nescore

import "testing"

func TestStatusStringOrdersFlagsMostSignificantFirst(t *testing.T) {
	var p P
	p.set(FlagNegative, true)
	p.set(FlagCarry, true)

	got := p.String()
	want := "N------C"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSetNZ(t *testing.T) {
	var p P
	p.setNZ(0)
	if !p.has(FlagZero) || p.has(FlagNegative) {
		t.Fatalf("setNZ(0): zero=%v negative=%v, want zero=true negative=false", p.has(FlagZero), p.has(FlagNegative))
	}

	p.setNZ(0x80)
	if p.has(FlagZero) || !p.has(FlagNegative) {
		t.Fatalf("setNZ(0x80): zero=%v negative=%v, want zero=false negative=true", p.has(FlagZero), p.has(FlagNegative))
	}
}

func TestSetCVOverflowOnSignedOverflow(t *testing.T) {
	var p P
	p.setCV(0x7F, 0x01, 0x80) // 127 + 1 overflows into negative territory
	if !p.has(FlagOverflow) {
		t.Fatalf("overflow flag should be set for 0x7F+0x01")
	}
	if p.has(FlagCarry) {
		t.Fatalf("carry should be clear: sum fits in 9 bits below 0x100")
	}
}

func TestSetCVCarryOnUnsignedOverflow(t *testing.T) {
	var p P
	p.setCV(0xFF, 0x01, 0x100)
	if !p.has(FlagCarry) {
		t.Fatalf("carry should be set: 0xFF+0x01 exceeds 8 bits")
	}
}
