package nes

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// loadCartridge reads an iNES file (.nes) and returns a Cartridge on success.
// http://wiki.nesdev.com/w/index.php/INES
func loadCartridge(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	header := iNESFileHeader{}
	if err := binary.Read(file, binary.LittleEndian, &header); err != nil {
		return nil, err
	}

	if header.Magic != iNESFileMagic {
		return nil, errors.New("invalid .nes file")
	}

	mapper1 := header.Control1 >> 4
	mapper2 := header.Control2 >> 4
	mapper := mapper1 | mapper2<<4

	mirror := header.Control1 & 1
	if header.Control1&8 == 8 {
		mirror = MirrorFour
	}

	battery := (header.Control1 >> 1) & 1

	if header.Control1&4 == 4 {
		trainer := make([]byte, 512)
		if _, err := io.ReadFull(file, trainer); err != nil {
			return nil, err
		}
	}

	prg := make([]byte, int(header.NumPRG)*16384)
	if _, err := io.ReadFull(file, prg); err != nil {
		return nil, err
	}

	chr := make([]byte, int(header.NumCHR)*8192)
	if _, err := io.ReadFull(file, chr); err != nil {
		return nil, err
	}

	chrIsRAM := header.NumCHR == 0
	if chrIsRAM {
		chr = make([]byte, 8192)
	}

	return &Cartridge{
		PRG:      prg,
		CHR:      chr,
		SRAM:     make([]byte, 0x2000),
		Mapper:   mapper,
		Mirror:   mirror,
		Battery:  battery,
		CHRIsRAM: chrIsRAM,
	}, nil
}

// newMapper0 builds the NROM mapper. Only mapper 0 is supported; the mapper
// field is preserved on the cartridge so callers can report an unsupported
// ROM, but loading proceeds on the assumption that it behaves like NROM.
func newMapper0(cartridge *Cartridge) *Mapper0 {
	return &Mapper0{Cartridge: cartridge}
}

// cpuRead serves $6000-$7FFF from cartridge SRAM and $8000-$FFFF from PRG,
// mirroring the single 16KB bank across both halves when the ROM has only
// one.
func (m *Mapper0) cpuRead(address uint16) byte {
	switch {
	case address >= 0x8000:
		offset := address - 0x8000
		if len(m.PRG) <= 0x4000 {
			offset %= 0x4000
		}
		return m.PRG[int(offset)%len(m.PRG)]
	case address >= 0x6000:
		return m.SRAM[address-0x6000]
	default:
		return 0
	}
}

// cpuWrite only reaches SRAM; PRG-ROM is not writable on mapper 0.
func (m *Mapper0) cpuWrite(address uint16, value byte) {
	if address >= 0x6000 && address < 0x8000 {
		m.SRAM[address-0x6000] = value
	}
}

func (m *Mapper0) ppuRead(address uint16) byte {
	if address < 0x2000 {
		return m.CHR[int(address)%len(m.CHR)]
	}
	return 0
}

// ppuWrite only takes effect against CHR-RAM; CHR-ROM carts ignore it.
func (m *Mapper0) ppuWrite(address uint16, value byte) {
	if address < 0x2000 && m.CHRIsRAM {
		m.CHR[int(address)%len(m.CHR)] = value
	}
}
