package nes

import (
	"image"
	"log"
)

// NewConsole loads path as an iNES ROM and wires up a fully constructed,
// reset machine ready to step.
func NewConsole(path string) (*Console, error) {
	cartridge, err := loadCartridge(path)
	if err != nil {
		return nil, err
	}
	if cartridge.Mapper != 0 {
		log.Printf("warning: mapper %d is not implemented, loading with NROM decode anyway", cartridge.Mapper)
	}

	console := &Console{
		Cartridge:   cartridge,
		Controller1: &Controller{},
		Controller2: &Controller{},
		Mapper:      newMapper0(cartridge),
	}

	cpu := &CPU{console: console}
	cpu.table = buildOpcodeTable(cpu)
	cpu.Reset()
	console.CPU = cpu

	apu := &APU{console: console}
	apu.noise.shiftRegister = 1
	apu.pulse1.isUnit1 = true
	console.APU = apu

	ppu := &PPU{
		console:  console,
		front:    image.NewRGBA(image.Rect(0, 0, 256, 240)),
		back:     image.NewRGBA(image.Rect(0, 0, 256, 240)),
		Cycle:    340,
		ScanLine: 240,
	}
	ppu.writeControl(0)
	ppu.writeMask(0)
	ppu.writeOAMAddress(0)
	console.PPU = ppu

	return console, nil
}

func (console *Console) Reset() {
	console.CPU.Reset()
}

// StepSeconds advances the machine by approximately the given wall-clock
// duration's worth of CPU cycles, stepping the PPU three times and the APU
// once per CPU cycle in between.
func (console *Console) StepSeconds(seconds float64) {
	cycles := int(CPUFrequency * seconds)
	for cycles > 0 {
		cpuCycles := console.stepCPU()
		ppuCycles := cpuCycles * 3
		for i := 0; i < ppuCycles; i++ {
			console.PPU.Step()
		}
		for i := 0; i < cpuCycles; i++ {
			console.APU.Step()
		}
		cycles -= cpuCycles
	}
}

func (console *Console) stepCPU() int {
	cpu := console.CPU

	if console.dmaActive {
		console.stepDMA()
		return 1
	}

	startCycles := cpu.Cycles

	switch cpu.interrupt {
	case interruptNMI:
		cpu.nmi()
	case interruptIRQ:
		cpu.irq()
	}
	cpu.interrupt = interruptNone

	opcode := cpu.Read(cpu.PC)
	ins := instructions[opcode]
	mode := ins.mode

	var address uint16
	var pageCrossed bool
	switch mode {
	case modeAbsolute:
		address = cpu.Read16(cpu.PC + 1)
	case modeAbsoluteX:
		address = cpu.Read16(cpu.PC+1) + uint16(cpu.X)
		pageCrossed = pagesDiffer(address-uint16(cpu.X), address)
	case modeAbsoluteY:
		address = cpu.Read16(cpu.PC+1) + uint16(cpu.Y)
		pageCrossed = pagesDiffer(address-uint16(cpu.Y), address)
	case modeAccumulator:
		address = 0
	case modeImmediate:
		address = cpu.PC + 1
	case modeImplied:
		address = 0
	case modeIndexedIndirect:
		address = cpu.read16bug(uint16(cpu.Read(cpu.PC+1) + cpu.X))
	case modeIndirect:
		address = cpu.read16bug(cpu.Read16(cpu.PC + 1))
	case modeIndirectIndexed:
		address = cpu.read16bug(uint16(cpu.Read(cpu.PC+1))) + uint16(cpu.Y)
		pageCrossed = pagesDiffer(address-uint16(cpu.Y), address)
	case modeRelative:
		offset := uint16(cpu.Read(cpu.PC + 1))
		if offset < 0x80 {
			address = cpu.PC + 2 + offset
		} else {
			address = cpu.PC + 2 + offset - 0x100
		}
	case modeZeroPage:
		address = uint16(cpu.Read(cpu.PC + 1))
	case modeZeroPageX:
		address = uint16(cpu.Read(cpu.PC+1) + cpu.X)
	case modeZeroPageY:
		address = uint16(cpu.Read(cpu.PC+1) + cpu.Y)
	}

	cpu.PC += uint16(ins.size)
	cpu.Cycles += uint64(ins.cycles)
	if pageCrossed {
		cpu.Cycles += uint64(ins.pageCycles)
	}
	info := &stepInfo{address, cpu.PC, mode}
	cpu.table[opcode](info)

	elapsed := cpu.Cycles - startCycles
	console.systemClock += elapsed
	return int(elapsed)
}

// stepDMA runs one tick of the OAM DMA transfer. console.systemClock tracks
// real elapsed CPU cycles (incremented in stepCPU too, after the writing
// instruction's cycles are counted), so its parity on the first call is that
// of the first cycle after the $4014 write: one alignment tick if that cycle
// is odd, two if it is even, then 256 alternating read/write ticks.
func (console *Console) stepDMA() {
	if console.dmaSync {
		if console.systemClock%2 == 1 {
			console.dmaSync = false
		}
		console.systemClock++
		return
	}
	if console.systemClock%2 == 0 {
		console.dmaData = console.ReadByte(uint16(console.dmaPage)<<8 | uint16(console.dmaAddr))
	} else {
		console.PPU.oamData[console.dmaAddr] = console.dmaData
		console.dmaAddr++
		if console.dmaAddr == 0 {
			console.dmaActive = false
		}
	}
	console.systemClock++
}

func (console *Console) Buffer() *image.RGBA {
	return console.PPU.front
}

func (console *Console) SetButtons1(buttons [8]bool) {
	console.Controller1.SetButtons(buttons)
}

func (console *Console) SetButtons2(buttons [8]bool) {
	console.Controller2.SetButtons(buttons)
}

// ReadByte decodes a CPU-visible address: internal RAM (mirrored every
// 2KB), PPU registers (mirrored every 8 bytes), APU status, the two
// controller ports, and the cartridge's PRG/SRAM window above 0x6000.
func (console *Console) ReadByte(address uint16) byte {
	switch {
	case address < 0x2000:
		return console.RAM[address%0x0800]
	case address < 0x4000:
		return console.PPU.readRegister(0x2000 + address%8)
	case address == 0x4014:
		return console.PPU.readRegister(address)
	case address == 0x4015:
		return console.APU.readRegister(address)
	case address == 0x4016:
		return console.Controller1.Read()
	case address == 0x4017:
		return console.Controller2.Read()
	case address < 0x6000:
		return 0
	case address >= 0x6000:
		return console.Mapper.cpuRead(address)
	default:
		log.Fatalf("unhandled cpu memory read at address: 0x%04X", address)
	}
	return 0
}

// WriteByte is ReadByte's write-side counterpart. A write to 0x4014 starts
// an OAM DMA transfer from the given page.
func (console *Console) WriteByte(address uint16, value byte) {
	switch {
	case address < 0x2000:
		console.RAM[address%0x0800] = value
	case address < 0x4000:
		console.PPU.writeRegister(0x2000+address%8, value)
	case address < 0x4014:
		console.APU.writeRegister(address, value)
	case address == 0x4014:
		console.dmaActive = true
		console.dmaSync = true
		console.dmaPage = value
		console.dmaAddr = 0
	case address == 0x4015:
		console.APU.writeRegister(address, value)
	case address == 0x4016:
		console.Controller1.Write(value)
		console.Controller2.Write(value)
	case address == 0x4017:
		console.APU.writeRegister(address, value)
	case address < 0x6000:
		// expansion ROM / unused region
	case address >= 0x6000:
		console.Mapper.cpuWrite(address, value)
	default:
		log.Fatalf("unhandled cpu memory write at address: 0x%04X", address)
	}
}

// Read and Write give the CPU its bus access; they exist as methods on CPU
// so opcode handlers can call cpu.Read/cpu.Write without a pointer chase
// through the console on every access.
func (cpu *CPU) Read(address uint16) byte {
	return cpu.console.ReadByte(address)
}

func (cpu *CPU) Write(address uint16, value byte) {
	cpu.console.WriteByte(address, value)
}

func (ppu *PPU) readMemory(address uint16) byte {
	address = address % 0x4000
	switch {
	case address < 0x2000:
		return ppu.console.Mapper.ppuRead(address)
	case address < 0x3F00:
		mode := ppu.console.Cartridge.Mirror
		return ppu.nameTableData[MirrorAddress(mode, address)%2048]
	case address < 0x4000:
		return ppu.readPalette(address % 32)
	default:
		log.Fatalf("unhandled ppu memory read at address: 0x%04X", address)
	}
	return 0
}

func (ppu *PPU) writeMemory(address uint16, value byte) {
	address = address % 0x4000
	switch {
	case address < 0x2000:
		ppu.console.Mapper.ppuWrite(address, value)
	case address < 0x3F00:
		mode := ppu.console.Cartridge.Mirror
		ppu.nameTableData[MirrorAddress(mode, address)%2048] = value
	case address < 0x4000:
		ppu.writePalette(address%32, value)
	default:
		log.Fatalf("unhandled ppu memory write at address: 0x%04X", address)
	}
}

func MirrorAddress(mode byte, address uint16) uint16 {
	address = (address - 0x2000) % 0x1000
	table := address / 0x0400
	offset := address % 0x0400
	return 0x2000 + mirrorLookup[mode][table]*0x0400 + offset
}
