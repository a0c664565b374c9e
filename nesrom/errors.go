package nesrom

import (
	"errors"
	"fmt"
)

var ErrEmptyProgramRom = errors.New("PRG ROM size is 0")

// Stage names the section of the image being read.
type Stage uint8

const (
	StageHeader Stage = iota
	StageTrainer
	StageProgramRom
	StageGraphicsRom
)

func (s Stage) String() string {
	switch s {
	case StageHeader:
		return "header"
	case StageTrainer:
		return "trainer"
	case StageProgramRom:
		return "PRG ROM"
	case StageGraphicsRom:
		return "CHR ROM"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// ShortReadError reports that the stream ended before a section was
// complete.
type ShortReadError struct {
	Stage Stage
	Want  int
	Got   int
	Err   error // io.EOF or io.ErrUnexpectedEOF
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("error reading %s (read %d, wanted %d): %v", e.Stage, e.Got, e.Want, e.Err)
}

func (e *ShortReadError) Unwrap() error {
	return e.Err
}
