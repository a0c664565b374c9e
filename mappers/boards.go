package mappers

// Boards other than NROM. Names follow https://www.nesdev.org/wiki/Mapper
func init() {
	for _, m := range []*baseMapper{
		newBaseMapper(1, "MMC1"),
		newBaseMapper(2, "UxROM"),
		newBaseMapper(3, "CNROM"),
		newBaseMapper(4, "MMC3"),
		newBaseMapper(5, "MMC5"),
		newBaseMapper(7, "AxROM"),
		newBaseMapper(9, "MMC2"),
		newBaseMapper(10, "MMC4"),
		newBaseMapper(11, "Color Dreams"),
		newBaseMapper(34, "BNROM/NINA-001"),
		newBaseMapper(66, "GxROM"),
		newBaseMapper(69, "FME-7"),
		newBaseMapper(71, "Camerica"),
	} {
		RegisterMapper(m.ID(), m)
	}
}
