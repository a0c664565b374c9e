// package nesrom implements support for the NES (iNES) ROM
// format. https://www.nesdev.org/wiki/INES
package nesrom

import (
	"bufio"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"strings"
)

const (
	TRAINER_SIZE   = 512
	PRG_BLOCK_SIZE = 16384
	CHR_BLOCK_SIZE = 8192
)

// ROM is a loaded cartridge image. It holds no reference to the
// stream it was read from.
type ROM struct {
	h       *Header
	trainer []byte // if present
	prg     []byte // 16384 * x bytes; x from header
	chr     []byte // 8192 * y bytes; y from header, empty means CHR RAM
}

// Open loads the iNES image at path. The file is closed before Open
// returns.
func Open(path string) (*ROM, error) {
	rf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open ROM file %q: %w", path, err)
	}
	defer rf.Close()

	return Load(bufio.NewReader(rf))
}

// Load reads header, trainer, PRG ROM and CHR ROM from r in that
// order. Nothing is returned unless every section was read in full.
func Load(r io.Reader) (*ROM, error) {
	var hbytes [HEADER_SIZE]byte
	if err := readSection(r, hbytes[:], StageHeader); err != nil {
		return nil, err
	}

	h, err := DecodeHeader(hbytes)
	if err != nil {
		return nil, err
	}

	rom := &ROM{h: h}
	if h.HasTrainer() {
		rom.trainer = make([]byte, TRAINER_SIZE)
		if err := readSection(r, rom.trainer, StageTrainer); err != nil {
			return nil, err
		}
	}

	s := h.PrgBytes()
	if s == 0 {
		return nil, ErrEmptyProgramRom
	}
	rom.prg = make([]byte, s)
	if err := readSection(r, rom.prg, StageProgramRom); err != nil {
		return nil, err
	}

	// No CHR ROM means the board has CHR RAM. Allocating it is up to
	// the mapper.
	rom.chr = []byte{}
	if s = h.ChrBytes(); s > 0 {
		rom.chr = make([]byte, s)
		if err := readSection(r, rom.chr, StageGraphicsRom); err != nil {
			return nil, err
		}
	}

	return rom, nil
}

// readSection fills buf completely. Running out of data is a
// ShortReadError; other stream errors are passed through.
func readSection(r io.Reader, buf []byte, st Stage) error {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &ShortReadError{Stage: st, Want: len(buf), Got: n, Err: err}
	}

	return fmt.Errorf("error reading %s: %w", st, err)
}

func (r *ROM) Header() *Header {
	return r.h
}

// Trainer returns the 512 byte trainer, or nil if there isn't one.
func (r *ROM) Trainer() []byte {
	return r.trainer
}

func (r *ROM) Prg() []byte {
	return r.prg
}

// Chr returns the CHR ROM. It is empty when the board uses CHR RAM.
func (r *ROM) Chr() []byte {
	return r.chr
}

func (r *ROM) NumPrgBlocks() uint8 {
	return r.h.prgSize
}

func (r *ROM) MapperNum() uint8 {
	return r.h.MapperNum()
}

func (r *ROM) MirroringMode() Mirroring {
	return r.h.Mirroring()
}

func (r *ROM) HasSaveRAM() bool {
	return r.h.HasBatteryRAM()
}

func (r *ROM) UsesChrRAM() bool {
	return len(r.chr) == 0
}

func yn(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (r *ROM) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", r.h))
	sb.WriteString(fmt.Sprintf("PRG units:   %d x 16k\n", r.h.PrgUnits()))
	sb.WriteString(fmt.Sprintf("CHR units:   %d x 8k\n", r.h.ChrUnits()))
	sb.WriteString(fmt.Sprintf("Mapper:      %d\n", r.MapperNum()))
	sb.WriteString(fmt.Sprintf("Mirroring:   %s\n", r.MirroringMode()))
	sb.WriteString(fmt.Sprintf("Battery:     %s\n", yn(r.h.HasBatteryRAM())))
	sb.WriteString(fmt.Sprintf("Four-screen: %s\n", yn(r.h.FourScreen())))
	sb.WriteString(fmt.Sprintf("Flags 6:     0b%08b\n", r.h.Flags6()))
	sb.WriteString(fmt.Sprintf("Flags 7:     0b%08b\n", r.h.Flags7()))
	if r.trainer != nil {
		sb.WriteString(fmt.Sprintf("Trainer:     %d bytes\n", len(r.trainer)))
	} else {
		sb.WriteString("Trainer:     no\n")
	}
	sb.WriteString(fmt.Sprintf("PRG:         %d bytes, crc32 %08x\n", len(r.prg), crc32.ChecksumIEEE(r.prg)))
	if r.UsesChrRAM() {
		sb.WriteString("CHR:         0 bytes (CHR RAM)\n")
	} else {
		sb.WriteString(fmt.Sprintf("CHR:         %d bytes, crc32 %08x\n", len(r.chr), crc32.ChecksumIEEE(r.chr)))
	}

	return sb.String()
}
