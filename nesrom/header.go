package nesrom

import (
	"errors"
	"fmt"
)

const (
	HEADER_SIZE = 16
	// Constant $4E $45 $53 $1A (ASCII "NES" followed by MS-DOS end-of-file)
	SIGNATURE = "NES\x1A"
)

var ErrInvalidSignature = errors.New("not an iNES image: bad signature")

// flag6 flag identifiers - the top 4 bits are the lower nibble of the mapper number
const (
	// 0: horizontal (vertical arrangement) (CIRAM A10 = PPU A11)
	// 1: vertical (horizontal arrangement) (CIRAM A10 = PPU A10)
	MIRRORING = 1 << 0
	// 1: Cartridge contains battery-backed PRG RAM ($6000-7FFF)
	// or other persistent memory
	BATTERY_BACKED_SRAM = 1 << 1
	// 1: 512-byte trainer at $7000-$71FF (stored before PRG data)
	TRAINER = 1 << 2
	// 1: Ignore mirroring control or above mirroring bit; instead
	// provide four-screen VRAM
	IGNORE_MIRRORING = 1 << 3
)

// Mirroring tells the PPU how nametable addresses are mirrored.
// https://www.nesdev.org/wiki/INES#Nametable_Mirroring
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	}
	return fmt.Sprintf("Mirroring(%d)", uint8(m))
}

// Header is the decoded form of the 16 byte iNES header. Bytes 8-15
// are not used.
type Header struct {
	// Byte 4
	// Size of PRG ROM in 16 KB units
	prgSize uint8
	// Byte 5
	// Size of CHR ROM in 8 KB units (value 0 means the board uses CHR RAM)
	chrSize uint8
	// Byte 6
	// Flags 6 – Mapper, mirroring, battery, trainer
	flags6 uint8
	// Byte 7
	// Flags 7 – Mapper, VS/Playchoice, NES 2.0
	flags7 uint8

	// Derived from flags6 and flags7
	mapper    uint8
	mirroring Mirroring
}

// DecodeHeader validates the signature and decodes the flag bytes of
// an iNES header. Unit counts are not range checked.
func DecodeHeader(hbytes [HEADER_SIZE]byte) (*Header, error) {
	if string(hbytes[0:4]) != SIGNATURE {
		return nil, ErrInvalidSignature
	}

	h := &Header{
		prgSize: hbytes[4],
		chrSize: hbytes[5],
		flags6:  hbytes[6],
		flags7:  hbytes[7],
	}
	h.mapper = (h.flags7 & 0xF0) | (h.flags6 >> 4)
	h.mirroring = mirroringMode(h.flags6)

	return h, nil
}

// mirroringMode picks the mirroring from flags6. The four-screen bit
// overrides the mirroring bit.
func mirroringMode(flags6 uint8) Mirroring {
	if flags6&IGNORE_MIRRORING > 0 {
		return MirrorFourScreen
	}

	return Mirroring(flags6 & MIRRORING) // 0 = horizonal, 1 = vertical
}

// Bytes re-encodes the header. Reserved bytes are zero.
func (h *Header) Bytes() [HEADER_SIZE]byte {
	var b [HEADER_SIZE]byte
	copy(b[:], SIGNATURE)
	b[4] = h.prgSize
	b[5] = h.chrSize
	b[6] = h.flags6
	b[7] = h.flags7
	return b
}

// PrgUnits returns the size of the PRG ROM in 16KB units
func (h *Header) PrgUnits() uint8 {
	return h.prgSize
}

// ChrUnits returns the size of the CHR ROM in 8KB units
func (h *Header) ChrUnits() uint8 {
	return h.chrSize
}

func (h *Header) PrgBytes() int {
	return PRG_BLOCK_SIZE * int(h.prgSize)
}

func (h *Header) ChrBytes() int {
	return CHR_BLOCK_SIZE * int(h.chrSize)
}

func (h *Header) Flags6() uint8 {
	return h.flags6
}

func (h *Header) Flags7() uint8 {
	return h.flags7
}

// MapperNum returns the mapper number which is constructed of the
// upper 4 bits of flag7 and the upper 4 bits of flag 6.
func (h *Header) MapperNum() uint8 {
	return h.mapper
}

func (h *Header) Mirroring() Mirroring {
	return h.mirroring
}

func (h *Header) HasBatteryRAM() bool {
	return h.flags6&BATTERY_BACKED_SRAM > 0
}

// HasTrainer indicates whether the NES ROM contains a Trainer
func (h *Header) HasTrainer() bool {
	return h.flags6&TRAINER == TRAINER
}

func (h *Header) FourScreen() bool {
	return h.flags6&IGNORE_MIRRORING > 0
}

func (h *Header) String() string {
	return fmt.Sprintf("%q, prg(%d), chr(%d), flags(%08b, %08b), mapper(%d), %s", SIGNATURE, h.prgSize, h.chrSize, h.flags6, h.flags7, h.mapper, h.mirroring)
}
