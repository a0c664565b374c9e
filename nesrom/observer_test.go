package nesrom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	started []string
	events  []Event
}

func (r *recorder) LoadStarted(path string) {
	r.started = append(r.started, path)
}

func (r *recorder) LoadFinished(ev Event) {
	r.events = append(r.events, ev)
}

func TestOpenObserved(t *testing.T) {
	path := writeROM(t, testROM(1, 2, TRAINER, 0))
	rec := &recorder{}

	rom, err := OpenObserved(path, rec)
	require.NoError(t, err)

	assert.Equal(t, []string{path}, rec.started)
	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, path, ev.Path)
	assert.NoError(t, ev.Err)
	assert.Same(t, rom.Header(), ev.Header)
	assert.Equal(t, map[Stage]int{
		StageHeader:      HEADER_SIZE,
		StageTrainer:     TRAINER_SIZE,
		StageProgramRom:  PRG_BLOCK_SIZE,
		StageGraphicsRom: 2 * CHR_BLOCK_SIZE,
	}, ev.Sizes)
}

func TestOpenObservedFailure(t *testing.T) {
	path := writeROM(t, testROM(0, 0, 0, 0))
	rec := &recorder{}

	rom, err := OpenObserved(path, rec)
	assert.Nil(t, rom)
	assert.ErrorIs(t, err, ErrEmptyProgramRom)

	require.Len(t, rec.events, 1)
	assert.ErrorIs(t, rec.events[0].Err, ErrEmptyProgramRom)
	assert.Nil(t, rec.events[0].Header)
	assert.Nil(t, rec.events[0].Sizes)
}

func TestOpenObservedNil(t *testing.T) {
	rom, err := OpenObserved(writeROM(t, testROM(1, 0, 0, 0)), nil)
	require.NoError(t, err)
	assert.Len(t, rom.Prg(), PRG_BLOCK_SIZE)
}
