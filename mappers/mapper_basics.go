// Package mappers registers the mappers that are referenced
// numerically by iNES ROM files. Only the board classification lives
// here; bank switching belongs to the bus.
package mappers

import (
	"errors"
	"fmt"

	"github.com/bdwalton/nescart/nesrom"
)

// A global registry of mappers, keyed by mapper id
var AllMappers map[uint8]Mapper = map[uint8]Mapper{}

var ErrUnknownMapper = errors.New("unknown mapper")

type Mapper interface {
	ID() uint8
	Name() string
}

type baseMapper struct {
	id   uint8
	name string
}

func newBaseMapper(id uint8, name string) *baseMapper {
	return &baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint8 {
	return bm.id
}

func (bm *baseMapper) Name() string {
	return bm.name
}

func (bm *baseMapper) String() string {
	return fmt.Sprintf("%d (%s)", bm.id, bm.name)
}

// RegisterMapper adds m to AllMappers. Registering an id twice is a
// programming error.
func RegisterMapper(id uint8, m Mapper) {
	if _, ok := AllMappers[id]; ok {
		panic(fmt.Sprintf("mapper %d registered twice", id))
	}
	AllMappers[id] = m
}

func Lookup(id uint8) (Mapper, bool) {
	m, ok := AllMappers[id]
	return m, ok
}

// Name returns the board name for id, or "unknown".
func Name(id uint8) string {
	if m, ok := AllMappers[id]; ok {
		return m.Name()
	}
	return "unknown"
}

// For returns the mapper the ROM's header asks for.
func For(r *nesrom.ROM) (Mapper, error) {
	m, ok := Lookup(r.MapperNum())
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMapper, r.MapperNum())
	}
	return m, nil
}
