// Package chrview turns CHR ROM into pictures of its pattern tiles.
// https://www.nesdev.org/wiki/PPU_pattern_tables
package chrview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	TILE_BYTES    = 16
	TILE_SIZE     = 8 // pixels per side
	TILES_PER_ROW = 16
)

var ErrNoChrRom = errors.New("no CHR ROM (board uses CHR RAM)")

// Palette maps the 2 bit pixel values to greys, darkest first.
var Palette = color.Palette{
	color.Gray{Y: 0x00},
	color.Gray{Y: 0x55},
	color.Gray{Y: 0xAA},
	color.Gray{Y: 0xFF},
}

// Tile holds pixel values 0-3, indexed [y][x].
type Tile [TILE_SIZE][TILE_SIZE]uint8

// decodeTile combines the two bit planes of a 16 byte tile. Bytes 0-7
// are the low plane, 8-15 the high plane; bit 7 is the leftmost pixel.
func decodeTile(b []byte) Tile {
	var t Tile
	for y := 0; y < TILE_SIZE; y++ {
		lo, hi := b[y], b[y+8]
		for x := 0; x < TILE_SIZE; x++ {
			bit := 7 - x
			t[y][x] = (lo>>bit)&1 | ((hi>>bit)&1)<<1
		}
	}
	return t
}

// Tiles decodes every complete tile in chr.
func Tiles(chr []byte) []Tile {
	tiles := make([]Tile, 0, len(chr)/TILE_BYTES)
	for off := 0; off+TILE_BYTES <= len(chr); off += TILE_BYTES {
		tiles = append(tiles, decodeTile(chr[off:off+TILE_BYTES]))
	}
	return tiles
}

// Sheet lays the tiles of chr out TILES_PER_ROW to a row.
func Sheet(chr []byte) (*image.Paletted, error) {
	tiles := Tiles(chr)
	if len(tiles) == 0 {
		return nil, ErrNoChrRom
	}

	rows := (len(tiles) + TILES_PER_ROW - 1) / TILES_PER_ROW
	img := image.NewPaletted(image.Rect(0, 0, TILES_PER_ROW*TILE_SIZE, rows*TILE_SIZE), Palette)
	for i, t := range tiles {
		ox, oy := (i%TILES_PER_ROW)*TILE_SIZE, (i/TILES_PER_ROW)*TILE_SIZE
		for y := 0; y < TILE_SIZE; y++ {
			for x := 0; x < TILE_SIZE; x++ {
				img.SetColorIndex(ox+x, oy+y, t[y][x])
			}
		}
	}

	return img, nil
}

// Scale blows img up by factor without smoothing.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG writes the tile sheet of chr, scaled by factor, as a PNG.
func WritePNG(w io.Writer, chr []byte, factor int) error {
	img, err := Sheet(chr)
	if err != nil {
		return err
	}
	return png.Encode(w, Scale(img, factor))
}
