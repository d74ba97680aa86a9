package nes

import "testing"

func TestControllerStrobeLatchesButtonA(t *testing.T) {
	c := &Controller{}
	c.SetButtons([8]bool{ButtonA: true})
	c.Write(1) // strobe high
	for i := 0; i < 3; i++ {
		if got := c.Read(); got&1 != 1 {
			t.Fatalf("read %d while strobed high = %#02x, want bit0 set", i, got)
		}
	}
}

func TestControllerShiftsOutInOrder(t *testing.T) {
	c := &Controller{}
	c.SetButtons([8]bool{
		ButtonA: true, ButtonB: false, ButtonSelect: true, ButtonStart: false,
		ButtonUp: false, ButtonDown: true, ButtonLeft: false, ButtonRight: true,
	})
	c.Write(1)
	c.Write(0) // strobe low: each read now steps to the next button from A

	want := []byte{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		if got := c.Read() & 1; got != w {
			t.Fatalf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestControllerReadSetsOpenBusBits(t *testing.T) {
	c := &Controller{}
	c.Write(0)
	if v := c.Read(); v&0x40 == 0 {
		t.Fatalf("Read() = %#02x, want bit 6 set", v)
	}
}
