package mappers

func init() {
	m := newMapper0()
	RegisterMapper(m.ID(), m)
}

// mapper0 is NROM: 16 or 32KB PRG ROM, 8KB CHR, no bank switching.
type mapper0 struct {
	*baseMapper
}

func newMapper0() *mapper0 {
	return &mapper0{baseMapper: newBaseMapper(0, "NROM")}
}
