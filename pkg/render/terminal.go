package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/glyph3d/pkg/models"
)

// MaxPaletteSlots caps how many materials get their own color. Terminals
// with only indexed color support degrade past a couple hundred entries,
// and real meshes never come close.
const MaxPaletteSlots = 255

// Palette maps a material index to a terminal foreground color. Index -1
// (no material) and anything past the slot limit fall back to the default
// foreground.
type Palette []color.Color

// NewPalette builds a palette from mesh materials, converting each diffuse
// color to 8-bit RGB. Materials beyond MaxPaletteSlots are dropped.
func NewPalette(mats []models.Material) Palette {
	n := min(len(mats), MaxPaletteSlots)
	pal := make(Palette, n)
	for i := range n {
		pal[i] = diffuseToRGB(mats[i].Diffuse.X, mats[i].Diffuse.Y, mats[i].Diffuse.Z)
	}
	return pal
}

// Color returns the foreground color for a material index, or nil for the
// terminal default.
func (p Palette) Color(material int) color.Color {
	if material < 0 || material >= len(p) {
		return nil
	}
	return p[material]
}

// diffuseToRGB clamps a [0,1] diffuse triple into an opaque RGBA.
func diffuseToRGB(r, g, b float64) color.RGBA {
	return color.RGBA{channel(r), channel(g), channel(b), 255}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Draw writes the buffer's characters into the screen area, one cell per
// pixel, colored through the palette. Cells outside the buffer are left
// untouched.
func (b *Buffer) Draw(scr uv.Screen, area uv.Rectangle, pal Palette) {
	for row := area.Min.Y; row < area.Max.Y && row < b.Rows; row++ {
		for col := area.Min.X; col < area.Max.X && col < b.Cols; col++ {
			px := b.At(col, row)
			cell := &uv.Cell{
				Content: string(px.Char),
				Width:   1,
				Style:   uv.Style{Fg: pal.Color(px.Material)},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// TerminalRenderer owns the cell-grid presentation of a Buffer on an
// ultraviolet terminal.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int
	height int
}

// NewTerminalRenderer wraps an already-started terminal of the given size.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{term: term, width: width, height: height}
}

// BufferSize returns the cell grid a Buffer should be allocated with.
func (t *TerminalRenderer) BufferSize() (cols, rows int) {
	return t.width, t.height
}

// Render draws the buffer over the whole terminal.
func (t *TerminalRenderer) Render(buf *Buffer, pal Palette) {
	buf.Draw(t.term, uv.Rect(0, 0, t.width, t.height), pal)
}

// Flush pushes the pending cells to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.term.Display()
}
