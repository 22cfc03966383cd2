package viz

import (
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

const brailleBlank = 0x2800

// dotBit maps a sub-cell position (dy, dx) inside a 4x2 braille block to its
// bit in the character's offset from U+2800.
var dotBit = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas packs 2x4 cells into each braille character, so large grids fit
// a terminal. Width and Height are in characters.
type Canvas struct {
	Width, Height int
	dots          []uint8
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, dots: make([]uint8, w*h)}
}

// CanvasFor returns a canvas just large enough for g.
func CanvasFor(g *life.Grid) *Canvas {
	return NewCanvas((g.Cols()+1)/2, (g.Rows()+3)/4)
}

// Set raises the dot for cell column x, row y. Points outside the canvas are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.Width*2 || y >= c.Height*4 {
		return
	}
	c.dots[(y/4)*c.Width+x/2] |= dotBit[y%4][x%2]
}

// Rune returns the braille character at character position (row, col).
func (c *Canvas) Rune(row, col int) rune {
	return rune(brailleBlank) + rune(c.dots[row*c.Width+col])
}

func (c *Canvas) Clear() { clear(c.dots) }

// Draw clears the canvas and plots every live cell of g, one dot per cell.
func (c *Canvas) Draw(g *life.Grid) {
	c.Clear()
	g.Each(func(i, j int, alive bool) {
		if alive {
			c.Set(j, i)
		}
	})
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width*3 + 1))
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			b.WriteRune(c.Rune(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
