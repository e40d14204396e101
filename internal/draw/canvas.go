// Package draw renders arena snapshots onto a terminal using half-block
// characters, which doubles the vertical resolution of a cell grid.
package draw

import (
	"io"
	"math"
	"slices"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/physics"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a pixel buffer covering the arena. Each terminal cell holds two
// vertically stacked pixels. Arena Y grows upward; pixel rows grow downward.
type Canvas struct {
	cols, rows int    // Terminal cells
	height     int    // Pixel rows, rows*2
	pixels     []bool // [y*cols + x]
	arena      config.Arena

	scaleX, scaleY float64 // Pixels per arena unit

	crossings []float64 // Scanline scratch for Polygon
}

// NewCanvas creates a canvas of cols×rows terminal cells showing arena.
func NewCanvas(cols, rows int, arena config.Arena) *Canvas {
	c := &Canvas{arena: arena}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid, keeping the arena mapping.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows, c.height = cols, rows, rows*2
		c.pixels = make([]bool, c.cols*c.height)
	}
	c.scaleX = float64(c.cols) / c.arena.Width()
	c.scaleY = float64(c.height) / c.arena.Height()
}

// Cols returns the terminal width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// pixel maps an arena point to fractional pixel coordinates.
func (c *Canvas) pixel(p physics.Vec2) (float64, float64) {
	return (p.X() - c.arena.Left) * c.scaleX, (c.arena.Top - p.Y()) * c.scaleY
}

func (c *Canvas) set(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.height {
		c.pixels[y*c.cols+x] = true
	}
}

// Lit reports whether pixel (x, y) is set. Out-of-range pixels are never lit.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// Cell returns the 1-based terminal column and row showing arena point p.
func (c *Canvas) Cell(p physics.Vec2) (col, row int) {
	x, y := c.pixel(p)
	return int(math.Floor(x)) + 1, int(math.Floor(y))/2 + 1
}

// Dot sets the pixel under p.
func (c *Canvas) Dot(p physics.Vec2) {
	x, y := c.pixel(p)
	c.set(int(math.Floor(x)), int(math.Floor(y)))
}

// Line draws a segment with Bresenham's algorithm.
func (c *Canvas) Line(a, b physics.Vec2) {
	fx1, fy1 := c.pixel(a)
	fx2, fy2 := c.pixel(b)
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))
	x2, y2 := int(math.Floor(fx2)), int(math.Floor(fy2))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.set(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws the closed outline through pts and, if filled, its interior.
func (c *Canvas) Polygon(pts []physics.Vec2, filled bool) {
	if len(pts) < 3 {
		return
	}
	if filled {
		c.fill(pts)
	}
	for i := range pts {
		c.Line(pts[i], pts[(i+1)%len(pts)])
	}
}

// fill is an even-odd scanline fill sampled at pixel centers.
func (c *Canvas) fill(pts []physics.Vec2) {
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		_, y := c.pixel(p)
		top, bottom = math.Min(top, y), math.Max(bottom, y)
	}

	for y := int(math.Floor(top)); y <= int(math.Ceil(bottom)); y++ {
		scan := float64(y) + 0.5
		c.crossings = c.crossings[:0]
		for i := range pts {
			x1, y1 := c.pixel(pts[i])
			x2, y2 := c.pixel(pts[(i+1)%len(pts)])
			if (y1 <= scan) == (y2 <= scan) {
				continue
			}
			c.crossings = append(c.crossings, x1+(scan-y1)/(y2-y1)*(x2-x1))
		}
		slices.Sort(c.crossings)

		for i := 0; i+1 < len(c.crossings); i += 2 {
			for x := int(math.Ceil(c.crossings[i] - 0.5)); float64(x)+0.5 <= c.crossings[i+1]; x++ {
				c.set(x, y)
			}
		}
	}
}

// Circle draws an outline of the given radius in arena units.
func (c *Canvas) Circle(center physics.Vec2, radius float64) {
	if radius <= 0 {
		c.Dot(center)
		return
	}
	const segments = 24
	pts := make([]physics.Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = center.Add(physics.Vec2{math.Cos(a), math.Sin(a)}.Mul(radius))
	}
	c.Polygon(pts, false)
}

// Render writes every non-empty cell as a positioned half-block. Empty cells
// are skipped; callers clear the screen between frames.
func (c *Canvas) Render(w *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		upper := c.pixels[row*2*c.cols:]
		lower := c.pixels[(row*2+1)*c.cols:]
		for col := 0; col < c.cols; col++ {
			var ch rune
			switch {
			case upper[col] && lower[col]:
				ch = BlockFull
			case upper[col]:
				ch = BlockUpperHalf
			case lower[col]:
				ch = BlockLowerHalf
			default:
				continue
			}
			w.MoveCursor(col+1, row+1)
			w.WriteRune(ch)
		}
	}
}

// RenderBorder frames the playfield when the terminal has room around it.
func (c *Canvas) RenderBorder(w io.Writer, offsetCol, offsetRow int) {
	if offsetCol < 1 || offsetRow < 1 {
		return
	}
	cw := NewChunkWriter(w, 0, 0)
	left, right := offsetCol, offsetCol+c.cols+1
	top, bottom := offsetRow, offsetRow+c.rows+1

	cw.MoveCursor(left, top)
	cw.WriteRune('┌')
	cw.MoveCursor(left, bottom)
	cw.WriteRune('└')
	cw.MoveCursor(right, top)
	cw.WriteRune('┐')
	cw.MoveCursor(right, bottom)
	cw.WriteRune('┘')
	for col := left + 1; col < right; col++ {
		cw.MoveCursor(col, top)
		cw.WriteRune('─')
		cw.MoveCursor(col, bottom)
		cw.WriteRune('─')
	}
	for row := top + 1; row < bottom; row++ {
		cw.MoveCursor(left, row)
		cw.WriteRune('│')
		cw.MoveCursor(right, row)
		cw.WriteRune('│')
	}
	cw.Flush()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
