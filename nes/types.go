package nes

import (
	"image"
	"image/color"
	"sync"
)

// Console wires the CPU, PPU, APU, Cartridge and both controllers together
// and is the only object that ever holds a pointer to more than one other
// component. Every other type reaches the rest of the machine through it.
type Console struct {
	CPU         *CPU
	APU         *APU
	PPU         *PPU
	Cartridge   *Cartridge
	Controller1 *Controller
	Controller2 *Controller
	Mapper      *Mapper0
	RAM         [2048]byte

	dmaActive bool
	dmaSync   bool
	dmaPage   byte
	dmaAddr   byte
	dmaData   byte

	systemClock uint64
}

// CPU holds the 6502 register file and a running count of elapsed cycles.
// There is no per-tick countdown: Console.stepCPU runs a whole instruction
// and returns its cycle cost, and the console clocks the PPU and APU by it.
type CPU struct {
	console *Console

	Cycles uint64 // total elapsed CPU cycles
	PC     uint16 // program counter
	SP     byte   // stack pointer (always page 0x01xx)
	A      byte   // accumulator
	X      byte   // x register
	Y      byte   // y register
	C      byte   // carry flag
	Z      byte   // zero flag
	I      byte   // interrupt disable flag
	D      byte   // decimal mode flag (modeled, no arithmetic effect)
	B      byte   // break flag
	U      byte   // unused flag, always 1 when read back
	V      byte   // overflow flag
	N      byte   // negative flag

	interrupt byte // pending interrupt type

	table [256]func(*stepInfo)
}

type stepInfo struct {
	address uint16
	pc      uint16
	mode    byte
}

// PPU implements the NTSC 341x262 dot-clocked rendering pipeline.
type PPU struct {
	console *Console

	Cycle    int
	ScanLine int
	Frame    uint64

	oddFrame bool // explicit state; the source keeps this as a function-local static

	paletteData   [32]byte
	nameTableData [2048]byte
	oamData       [256]byte
	front         *image.RGBA
	back          *image.RGBA

	// loopy scroll registers
	v uint16
	t uint16
	x byte
	w byte

	frameReady bool

	nmiOccurred bool
	nmiOutput   bool

	nameTableByte      byte
	attributeTableByte byte
	lowTileByte        byte
	highTileByte       byte
	tileData           uint64

	spriteCount      int
	spritePatterns   [8]uint32
	spritePositions  [8]byte
	spritePriorities [8]byte
	spriteIndexes    [8]byte
	sprite0OnLine    bool

	flagNameTable       byte
	flagIncrement       byte
	flagSpriteTable     byte
	flagBackgroundTable byte
	flagSpriteSize      byte
	flagMasterSlave     byte

	flagGrayscale          byte
	flagShowLeftBackground byte
	flagShowLeftSprites    byte
	flagShowBackground     byte
	flagShowSprites        byte
	flagRedTint            byte
	flagGreenTint          byte
	flagBlueTint           byte

	flagSpriteZeroHit byte

	oamAddress byte

	bufferedData byte
	register     byte // last value written to any PPU register, for PPUSTATUS's stale low bits
}

// APU synthesizes the four audible NES channels plus a silent DMC stub and
// resamples the mix down to 44.1 kHz into a mutex-guarded ring buffer.
type APU struct {
	console *Console

	pulse1   Pulse
	pulse2   Pulse
	triangle Triangle
	noise    Noise
	dmc      DMC

	cpuClock    uint64
	frameMode   byte // 0 = 4-step, 1 = 5-step
	frameClock  int
	frameIRQ    bool
	inhibitIRQ  bool

	sampleAccumulator float64
	sampleSum         float64
	sampleCount       int
	prevSample        float32

	bufferMu    sync.Mutex
	sampleBuf   [apuBufferSize]float32
	writePos    int
	readPos     int
	lastOutput  float32
}

const apuBufferSize = 8192

type Pulse struct {
	enabled bool
	isUnit1 bool // ones-complement vs twos-complement sweep negation

	duty    byte
	dutyPos byte

	timerPeriod uint16
	timerValue  uint16

	lengthValue byte
	lengthHalt  bool

	envelopeStart  bool
	envelopeLoop   bool
	constantVolume bool
	envelopeVolume byte
	envelopeDecay  byte
	envelopeValue  byte

	sweepEnabled bool
	sweepNegate  bool
	sweepReload  bool
	sweepPeriod  byte
	sweepShift   byte
	sweepValue   byte
}

type Triangle struct {
	enabled bool

	timerPeriod uint16
	timerValue  uint16

	lengthValue byte
	lengthHalt  bool // also linear-counter control

	linearPeriod byte
	linearValue  byte
	linearReload bool

	dutyValue byte // 0..31 sequence position
}

type Noise struct {
	enabled bool
	mode    bool

	shiftRegister uint16

	timerPeriod uint16
	timerValue  uint16

	lengthValue byte
	lengthHalt  bool

	envelopeStart  bool
	envelopeLoop   bool
	constantVolume bool
	envelopeVolume byte
	envelopeDecay  byte
	envelopeValue  byte
}

// DMC is the stubbed delta-modulation channel: it accepts register writes
// but never produces non-zero output. Sample-buffer DMA playback is not
// implemented.
type DMC struct {
	enabled bool
}

// Cartridge holds the immutable PRG/CHR image parsed from an iNES file.
type Cartridge struct {
	PRG      []byte
	CHR      []byte
	SRAM     []byte
	Mapper   byte
	Mirror   byte
	Battery  byte
	CHRIsRAM bool
}

// Mapper0 implements NROM: fixed PRG (mirrored if only one 16KB bank) and
// either CHR-ROM or 8KB of writable CHR-RAM.
type Mapper0 struct {
	*Cartridge
}

const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller models the joypad strobe-and-shift protocol.
type Controller struct {
	buttons [8]bool
	shift   byte
	strobe  byte
}

type iNESFileHeader struct {
	Magic    uint32
	NumPRG   byte
	NumCHR   byte
	Control1 byte
	Control2 byte
	NumRAM   byte
	_        [7]byte
}

const iNESFileMagic = 0x1a53454e

const CPUFrequency = 1789773

var Palette [64]color.RGBA

const (
	_ = iota
	interruptNone
	interruptNMI
	interruptIRQ
)

const (
	_ = iota
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeAccumulator
	modeImmediate
	modeImplied
	modeIndexedIndirect
	modeIndirect
	modeIndirectIndexed
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
)

type instruction struct {
	name       string
	mode       byte
	size       byte
	cycles     byte
	pageCycles byte
}

// Mirroring Modes
const (
	MirrorHorizontal = 0
	MirrorVertical   = 1
	MirrorSingle0    = 2
	MirrorSingle1    = 3
	MirrorFour       = 4
)

var mirrorLookup = [...][4]uint16{
	{0, 0, 1, 1},
	{0, 1, 0, 1},
	{0, 0, 0, 0},
	{1, 1, 1, 1},
	{0, 1, 2, 3},
}

var lengthTable = [32]byte{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

var dutyTable = [4][8]byte{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

var triangleTable = [32]byte{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

var noisePeriodTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

func init() {
	colors := []uint32{
		0x666666, 0x002A88, 0x1412A7, 0x3B00A4, 0x5C007E, 0x6E0040, 0x6C0600, 0x561D00,
		0x333500, 0x0B4800, 0x005200, 0x004F08, 0x00404D, 0x000000, 0x000000, 0x000000,
		0xADADAD, 0x155FD9, 0x4240FF, 0x7527FE, 0xA01ACC, 0xB71E7B, 0xB53120, 0x994E00,
		0x6B6D00, 0x388700, 0x0C9300, 0x008F32, 0x007C8D, 0x000000, 0x000000, 0x000000,
		0xFFFEFF, 0x64B0FF, 0x9290FF, 0xC676FF, 0xF36AFF, 0xFE6ECC, 0xFE8170, 0xEA9E22,
		0xBCBE00, 0x88D800, 0x5CE430, 0x45E082, 0x48CDDE, 0x4F4F4F, 0x000000, 0x000000,
		0xFFFEFF, 0xC0DFFF, 0xD3D2FF, 0xE8C8FF, 0xFBC2FF, 0xFEC4EA, 0xFECCC5, 0xF7D8A5,
		0xE4E594, 0xCFEF96, 0xBDF4AB, 0xB3F3CC, 0xB5EBF2, 0xB8B8B8, 0x000000, 0x000000,
	}
	for i, c := range colors {
		r := byte(c >> 16)
		g := byte(c >> 8)
		b := byte(c)
		Palette[i] = color.RGBA{r, g, b, 0xFF}
	}
}
