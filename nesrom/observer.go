package nesrom

import (
	"time"
)

// Event describes a finished load. Header and Sizes are nil unless the
// load succeeded.
type Event struct {
	Path    string
	Header  *Header
	Sizes   map[Stage]int
	Err     error
	Elapsed time.Duration
}

// Observer is told about loads. Decoding and loading never report
// anything themselves; OpenObserved calls the observer around them.
type Observer interface {
	LoadStarted(path string)
	LoadFinished(ev Event)
}

// OpenObserved is Open with o notified before and after. o may be nil.
func OpenObserved(path string, o Observer) (*ROM, error) {
	if o == nil {
		return Open(path)
	}

	o.LoadStarted(path)
	start := time.Now()
	rom, err := Open(path)

	ev := Event{Path: path, Err: err, Elapsed: time.Since(start)}
	if rom != nil {
		ev.Header = rom.h
		ev.Sizes = map[Stage]int{
			StageHeader:      HEADER_SIZE,
			StageTrainer:     len(rom.trainer),
			StageProgramRom:  len(rom.prg),
			StageGraphicsRom: len(rom.chr),
		}
	}
	o.LoadFinished(ev)

	return rom, err
}
