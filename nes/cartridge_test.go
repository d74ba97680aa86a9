package nes

import "testing"

func TestMapper0MirrorsSingleBank(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xEA
	prg[0x3FFF] = 0x60
	cart := &Cartridge{PRG: prg, CHR: make([]byte, 0x2000)}
	m := newMapper0(cart)

	if got := m.cpuRead(0x8000); got != 0xEA {
		t.Fatalf("cpuRead(0x8000) = %#02x, want 0xEA", got)
	}
	if got := m.cpuRead(0xC000); got != 0xEA {
		t.Fatalf("cpuRead(0xC000) = %#02x, want the lower bank mirrored, got %#02x", got, got)
	}
	if got := m.cpuRead(0xFFFF); got != 0x60 {
		t.Fatalf("cpuRead(0xFFFF) = %#02x, want 0x60", got)
	}
}

func TestMapper0CHRRAMIsWritable(t *testing.T) {
	cart := &Cartridge{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000), CHRIsRAM: true}
	m := newMapper0(cart)
	if !m.CHRIsRAM {
		t.Fatalf("expected the cartridge's CHR allocation to be marked as RAM")
	}
	m.ppuWrite(0x0010, 0x42)
	if got := m.ppuRead(0x0010); got != 0x42 {
		t.Fatalf("ppuRead(0x0010) = %#02x, want 0x42 after write", got)
	}
}

func TestMapper0SRAMReadWrite(t *testing.T) {
	cart := &Cartridge{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000), SRAM: make([]byte, 0x2000)}
	m := newMapper0(cart)
	m.cpuWrite(0x6010, 0x99)
	if got := m.cpuRead(0x6010); got != 0x99 {
		t.Fatalf("cpuRead(0x6010) = %#02x, want 0x99", got)
	}
}
