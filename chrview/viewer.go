package chrview

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bdwalton/nescart/nesrom"
)

// Viewer shows one 8KB CHR bank at a time in a window. Left and right
// arrows change bank, Escape quits.
type Viewer struct {
	title  string
	scale  int
	sheets []*image.Paletted
	images []*ebiten.Image // built on first draw
	bank   int
}

func NewViewer(title string, rom *nesrom.ROM, scale int) (*Viewer, error) {
	chr := rom.Chr()
	if len(chr) == 0 {
		return nil, ErrNoChrRom
	}
	if scale < 1 {
		scale = 1
	}

	v := &Viewer{title: title, scale: scale}
	for off := 0; off < len(chr); off += nesrom.CHR_BLOCK_SIZE {
		s, err := Sheet(chr[off : off+nesrom.CHR_BLOCK_SIZE])
		if err != nil {
			return nil, err
		}
		v.sheets = append(v.sheets, s)
	}
	v.images = make([]*ebiten.Image, len(v.sheets))

	return v, nil
}

func (v *Viewer) Banks() int {
	return len(v.sheets)
}

func (v *Viewer) Bank() int {
	return v.bank
}

// step moves delta banks, wrapping at either end.
func (v *Viewer) step(delta int) {
	n := len(v.sheets)
	v.bank = ((v.bank+delta)%n + n) % n
}

func (v *Viewer) windowTitle() string {
	return fmt.Sprintf("%s - CHR bank %d/%d", v.title, v.bank+1, len(v.sheets))
}

func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.step(1)
		ebiten.SetWindowTitle(v.windowTitle())
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.step(-1)
		ebiten.SetWindowTitle(v.windowTitle())
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.images[v.bank] == nil {
		v.images[v.bank] = ebiten.NewImageFromImage(v.sheets[v.bank])
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.images[v.bank], op)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := v.sheets[0].Bounds()
	return b.Dx() * v.scale, b.Dy() * v.scale
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(v.windowTitle())
	return ebiten.RunGame(v)
}
