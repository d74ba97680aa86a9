package nes

import "testing"

func TestPulseSilentBelowMinimumPeriod(t *testing.T) {
	p := &Pulse{enabled: true, lengthValue: 10, duty: 2, dutyPos: 1, timerPeriod: 4, constantVolume: true, envelopeVolume: 15}
	if got := p.output(); got != 0 {
		t.Fatalf("output() = %d, want 0 for a sub-audible timer period", got)
	}
}

func TestPulseSilentWhenLengthExpired(t *testing.T) {
	p := &Pulse{enabled: true, lengthValue: 0, duty: 2, timerPeriod: 400, constantVolume: true, envelopeVolume: 15}
	if got := p.output(); got != 0 {
		t.Fatalf("output() = %d, want 0 once the length counter has hit zero", got)
	}
}

func TestPulseLengthHaltPreventsDecrement(t *testing.T) {
	p := &Pulse{lengthHalt: true, lengthValue: 5}
	p.stepLength()
	if p.lengthValue != 5 {
		t.Fatalf("lengthValue = %d, want 5 unchanged while halted", p.lengthValue)
	}
}

func TestTriangleSilentWithoutLinearCounter(t *testing.T) {
	tr := &Triangle{enabled: true, lengthValue: 5, linearValue: 0, dutyValue: 3}
	if got := tr.output(); got != 0 {
		t.Fatalf("output() = %d, want 0 while the linear counter is zero", got)
	}
}

func TestNoiseLFSRBit0SilencesOutput(t *testing.T) {
	n := &Noise{enabled: true, lengthValue: 5, shiftRegister: 1, constantVolume: true, envelopeVolume: 15}
	if got := n.output(); got != 0 {
		t.Fatalf("output() = %d, want 0 when LFSR bit 0 is set", got)
	}
}

func TestWriteControlStatusClearsDisabledLengthCounters(t *testing.T) {
	apu := &APU{}
	apu.pulse1.lengthValue = 20
	apu.writeControlStatus(0) // disable every channel
	if apu.pulse1.lengthValue != 0 {
		t.Fatalf("pulse1.lengthValue = %d, want 0 after disabling the channel", apu.pulse1.lengthValue)
	}
}

func TestFrameIRQClearsOnStatusRead(t *testing.T) {
	apu := &APU{}
	apu.frameIRQ = true
	status := apu.readStatus()
	if status&0x40 == 0 {
		t.Fatalf("status = %#02x, want bit 6 set for a pending frame IRQ", status)
	}
	if apu.frameIRQ {
		t.Fatalf("reading status did not clear the frame IRQ flag")
	}
}

func TestFillBufferRepeatsLastSampleOnUnderrun(t *testing.T) {
	apu := &APU{}
	apu.lastOutput = 0.25
	out := make([]float32, 4)
	apu.FillBuffer(out)
	for i, v := range out {
		if v != 0.125 {
			t.Fatalf("out[%d] = %v, want 0.125 (half of the last produced sample)", i, v)
		}
	}
}
