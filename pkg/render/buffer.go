package render

import (
	"math"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// CharAspect is the height of a terminal cell divided by its width. Square
// logical pixels need twice as many columns as rows.
const CharAspect = 2.0

// logicalHeight fixes the vertical extent of the logical screen; the width
// follows from the cell grid so that logical pixels stay square.
const logicalHeight = 2.0

// Pixel is one character cell of the render target.
type Pixel struct {
	Char     rune
	Depth    float64
	Material int
}

// Buffer is a character-cell render target with a depth value per cell.
// Logical coordinates run from (0,0) at the top left to (LogicalW,LogicalH)
// at the bottom right; each cell covers a dx by dy patch of that rectangle.
type Buffer struct {
	Cols, Rows         int
	LogicalW, LogicalH float64
	pixels             []Pixel
}

// NewBuffer creates a cleared buffer for a cols by rows cell grid.
func NewBuffer(cols, rows int) *Buffer {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	b := &Buffer{
		Cols:     cols,
		Rows:     rows,
		LogicalH: logicalHeight,
		LogicalW: logicalHeight * float64(cols) / (float64(rows) * CharAspect),
		pixels:   make([]Pixel, cols*rows),
	}
	b.Clear()
	return b
}

// Clear resets every cell to empty: blank character, no material, and a
// depth no real fragment can lose against.
func (b *Buffer) Clear() {
	for i := range b.pixels {
		b.pixels[i] = Pixel{Char: ' ', Depth: math.Inf(1), Material: -1}
	}
}

// At returns the pixel at cell (col, row). Out-of-range cells read as an
// empty pixel.
func (b *Buffer) At(col, row int) Pixel {
	if col < 0 || col >= b.Cols || row < 0 || row >= b.Rows {
		return Pixel{Char: ' ', Depth: math.Inf(1), Material: -1}
	}
	return b.pixels[row*b.Cols+col]
}

// DrawProjection composites one projected triangle into the buffer with a
// column sweep: for every cell column the triangle spans, the two edge
// boundaries give a vertical run of cells, and each cell keeps the
// strictly nearer fragment. Triangles can therefore arrive in any order.
func (b *Buffer) DrawProjection(p *Projection) {
	p.SortX()

	dx := b.LogicalW / float64(b.Cols)
	dy := b.LogicalH / float64(b.Rows)

	// Sample at column centers only; half a cell in from either end.
	xi := p.P1.X + dx/2
	xf := p.P3.X - dx/2
	if xf < 0 || xi > b.LogicalW {
		return
	}

	n := p.Normal()

	colStart := max(b.indexX(xi), 0)
	colEnd := min(b.indexX(xf), b.Cols-1)
	for col := colStart; col <= colEnd; col++ {
		cx := (float64(col) + 0.5) * dx

		y1 := p.LimitY1(cx)
		y2 := p.LimitY2(cx)
		ymin := math.Min(y1, y2)
		ymax := math.Max(y1, y2)
		if ymax < 0 || ymin > b.LogicalH {
			continue
		}

		rowStart := max(b.indexY(ymin+dy/2), 0)
		rowEnd := min(b.indexY(ymax-dy/2), b.Rows-1)
		for row := rowStart; row <= rowEnd; row++ {
			cy := (float64(row) + 0.5) * dy
			depth := p.DepthAt(n, cx, cy)

			px := &b.pixels[row*b.Cols+col]
			if depth < px.Depth {
				px.Char = p.Char
				px.Depth = depth
				px.Material = p.Material
			}
		}
	}
}

// ToScreen maps a camera-space vertex to logical screen coordinates, with Y
// flipped (logical Y grows downward) and depth normalized so smaller means
// nearer.
func (b *Buffer) ToScreen(v math3d.Vec3, zoom float64) math3d.Vec3 {
	return math3d.V3(
		(v.X*zoom+1)*0.5*b.LogicalW,
		(1-v.Y*zoom)*0.5*b.LogicalH,
		(v.Z*zoom+1)*0.5,
	)
}

func (b *Buffer) indexX(x float64) int {
	return int(x / b.LogicalW * float64(b.Cols))
}

func (b *Buffer) indexY(y float64) int {
	return int(y / b.LogicalH * float64(b.Rows))
}
