package nescore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestControllerShiftsOutButtonsInOrder(t *testing.T) {
	var c Controller
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonStart, true)
	c.SetButton(ButtonRight, true)

	c.WriteStrobe(1)
	c.WriteStrobe(0)

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	got := make([]uint8, len(want))
	for i := range got {
		got[i] = c.Read() & 0x01
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shifted bit sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestControllerOpenBusBitsSetOnRead(t *testing.T) {
	var c Controller
	c.WriteStrobe(1)
	c.WriteStrobe(0)

	v := c.Read()
	if v&0x40 == 0 {
		t.Fatalf("bit 6 should be set (open bus)")
	}
}

func TestControllerStrobeHighRelatchesContinuously(t *testing.T) {
	var c Controller
	c.WriteStrobe(1)
	if c.Read()&0x01 != 0 {
		t.Fatalf("button A not pressed yet, should read 0")
	}
	c.SetButton(ButtonA, true)
	if c.Read()&0x01 != 1 {
		t.Fatalf("while strobe is high, reads should reflect live button state")
	}
}

func TestControllerExhaustedReadsReturnOnes(t *testing.T) {
	var c Controller
	c.WriteStrobe(1)
	c.WriteStrobe(0)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	if c.Read()&0x01 != 1 {
		t.Fatalf("reads past bit 8 should return 1 (shift register filled with 1s)")
	}
}
