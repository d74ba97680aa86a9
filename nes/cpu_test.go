package nes

import "testing"

func newTestCPU() *CPU {
	console := &Console{}
	console.Cartridge = &Cartridge{PRG: make([]byte, 0x8000), CHR: make([]byte, 0x2000), SRAM: make([]byte, 0x2000)}
	console.Mapper = newMapper0(console.Cartridge)
	cpu := &CPU{console: console}
	cpu.table = buildOpcodeTable(cpu)
	console.CPU = cpu
	return cpu
}

func TestResetVector(t *testing.T) {
	cpu := newTestCPU()
	cpu.console.Cartridge.PRG[0xFFFC-0x8000] = 0x34
	cpu.console.Cartridge.PRG[0xFFFD-0x8000] = 0x12
	cpu.Reset()
	if cpu.PC != 0x1234 {
		t.Fatalf("PC = %#04x, want 0x1234", cpu.PC)
	}
	if cpu.SP != 0xFD {
		t.Fatalf("SP = %#02x, want 0xFD", cpu.SP)
	}
}

func TestPushPullStatusRoundTrip(t *testing.T) {
	cpu := newTestCPU()
	cpu.SP = 0xFD
	cpu.C, cpu.Z, cpu.I, cpu.V, cpu.N = 1, 0, 1, 1, 0
	cpu.php(nil)
	cpu.C, cpu.Z, cpu.I, cpu.V, cpu.N = 0, 0, 0, 0, 0
	cpu.plp(nil)
	if cpu.C != 1 || cpu.I != 1 || cpu.V != 1 {
		t.Fatalf("flags did not round-trip through PHP/PLP: C=%d I=%d V=%d", cpu.C, cpu.I, cpu.V)
	}
}

func TestNMIClearsBreakFlagOnPush(t *testing.T) {
	cpu := newTestCPU()
	cpu.SP = 0xFD
	cpu.B = 1
	cpu.PC = 0x8000
	cpu.console.Cartridge.PRG[0xFFFA-0x8000] = 0x00
	cpu.console.Cartridge.PRG[0xFFFB-0x8000] = 0x90
	cpu.nmi()

	pushed := cpu.Read(0x100 | uint16(cpu.SP+1))
	if pushed&0x10 != 0 {
		t.Fatalf("status pushed by NMI has B set: %#02x", pushed)
	}
	if cpu.PC != 0x9000 {
		t.Fatalf("PC after NMI = %#04x, want 0x9000", cpu.PC)
	}
}

func TestIRQIgnoredWhenInterruptsDisabled(t *testing.T) {
	cpu := newTestCPU()
	cpu.I = 1
	cpu.triggerIRQ()
	if cpu.interrupt == interruptIRQ {
		t.Fatalf("triggerIRQ set a pending interrupt while I was set")
	}
}

func TestADCOverflowFlag(t *testing.T) {
	cpu := newTestCPU()
	cpu.A = 0x50
	cpu.C = 0
	cpu.Write(0x10, 0x50)
	cpu.adc(&stepInfo{address: 0x10})
	if cpu.A != 0xA0 {
		t.Fatalf("A = %#02x, want 0xA0", cpu.A)
	}
	if cpu.V != 1 {
		t.Fatalf("V flag not set adding two positives into a negative result")
	}
	if cpu.C != 0 {
		t.Fatalf("C flag incorrectly set")
	}
}

func TestSBCBorrow(t *testing.T) {
	cpu := newTestCPU()
	cpu.A = 0x10
	cpu.C = 1 // no borrow going in
	cpu.Write(0x10, 0x20)
	cpu.sbc(&stepInfo{address: 0x10})
	if cpu.A != 0xF0 {
		t.Fatalf("A = %#02x, want 0xF0", cpu.A)
	}
	if cpu.C != 0 {
		t.Fatalf("C flag should be clear after a borrow")
	}
}

func TestLAXLoadsBothRegisters(t *testing.T) {
	cpu := newTestCPU()
	cpu.Write(0x20, 0x80)
	cpu.lax(&stepInfo{address: 0x20})
	if cpu.A != 0x80 || cpu.X != 0x80 {
		t.Fatalf("LAX did not load A and X identically: A=%#02x X=%#02x", cpu.A, cpu.X)
	}
	if cpu.N != 1 {
		t.Fatalf("LAX did not set N for a negative value")
	}
}

func TestDCPSetsCarryFromComparison(t *testing.T) {
	cpu := newTestCPU()
	cpu.A = 0x10
	cpu.Write(0x30, 0x11)
	cpu.dcp(&stepInfo{address: 0x30})
	if cpu.Read(0x30) != 0x10 {
		t.Fatalf("DCP did not decrement memory")
	}
	if cpu.C != 1 {
		t.Fatalf("DCP carry should be set once decremented memory <= A")
	}
}
