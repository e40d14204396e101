package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/object"
	"github.com/tomz197/asteroid-arena/internal/physics"
	"github.com/tomz197/asteroid-arena/internal/sim"
)

var arena = config.Arena{Left: -1, Right: 1, Top: 1, Bottom: -1}

func litCount(c *Canvas) int {
	n := 0
	for y := 0; y < c.Rows()*2; y++ {
		for x := 0; x < c.Cols(); x++ {
			if c.Lit(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCanvasMapping(t *testing.T) {
	c := NewCanvas(20, 10, arena)

	tests := []struct {
		name string
		p    physics.Vec2
		x, y int
	}{
		{"top left", physics.Vec2{-1, 1}, 0, 0},
		{"center", physics.Vec2{0, 0}, 10, 10},
		{"near bottom right", physics.Vec2{0.99, -0.99}, 19, 19},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c.Clear()
			c.Dot(tc.p)
			if !c.Lit(tc.x, tc.y) || litCount(c) != 1 {
				t.Errorf("Dot(%v) did not light only (%d, %d)", tc.p, tc.x, tc.y)
			}
		})
	}

	col, row := c.Cell(physics.Vec2{0, 0})
	if col != 11 || row != 6 {
		t.Errorf("Cell(0, 0) = (%d, %d), want (11, 6)", col, row)
	}
}

func TestCanvasClipsOutside(t *testing.T) {
	c := NewCanvas(10, 5, arena)
	c.Dot(physics.Vec2{3, 3})
	c.Line(physics.Vec2{-5, 0}, physics.Vec2{-3, 0})
	if litCount(c) != 0 {
		t.Error("points outside the arena should not draw")
	}
	if c.Lit(-1, 0) || c.Lit(0, 100) {
		t.Error("Lit out of range should be false")
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10, arena)
	c.Line(physics.Vec2{-0.9, 0.9}, physics.Vec2{0.5, -0.5})

	for _, p := range []physics.Vec2{{-0.9, 0.9}, {0.5, -0.5}} {
		x, y := c.pixel(p)
		if !c.Lit(int(x), int(y)) {
			t.Errorf("endpoint %v not drawn", p)
		}
	}
}

func TestPolygonFill(t *testing.T) {
	square := []physics.Vec2{{-0.5, 0.5}, {0.5, 0.5}, {0.5, -0.5}, {-0.5, -0.5}}

	outline := NewCanvas(40, 20, arena)
	outline.Polygon(square, false)
	filled := NewCanvas(40, 20, arena)
	filled.Polygon(square, true)

	if outline.Lit(20, 20) {
		t.Error("outline should leave the center empty")
	}
	if !filled.Lit(20, 20) {
		t.Error("filled polygon should cover the center")
	}
	if litCount(filled) <= litCount(outline) {
		t.Errorf("filled %d pixels, outline %d", litCount(filled), litCount(outline))
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2, arena)
	c.set(0, 0)
	c.set(1, 1)
	c.set(2, 0)
	c.set(2, 1)

	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)
	c.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "\033[4;3H▀\033[4;4H▄\033[4;5H█"
	if out.String() != want {
		t.Errorf("Render = %q, want %q", out.String(), want)
	}
}

func TestChunkWriterFlushesEverything(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	long := strings.Repeat("x", maxChunkSize*3+17)
	cw.WriteString(long)
	cw.WriteAt(1, 1, "!")

	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != long+"\033[1;1H!" {
		t.Errorf("flushed %d bytes", out.Len())
	}

	out.Reset()
	if err := cw.Flush(); err != nil || out.Len() != 0 {
		t.Errorf("second Flush wrote %d bytes, err %v", out.Len(), err)
	}
}

func TestScene(t *testing.T) {
	snap := &sim.Snapshot{
		Arena: arena,
		Asteroids: []sim.AsteroidPose{
			{ID: 0, Visible: true, Position: physics.Vec2{-0.5, 0.5}, Scale: 0.2},
			{ID: 1, Visible: false, Position: physics.Vec2{0.5, -0.5}, Scale: 0.2},
		},
		Players: []sim.PlayerPose{
			{ID: 0, State: object.PlayerAlive, Position: physics.Vec2{0.5, 0.5}, Scale: 0.1},
			{ID: 1, State: object.PlayerDying, Position: physics.Vec2{-0.5, -0.5}, Scale: 0.1, BlastScale: 2},
		},
	}

	c := NewCanvas(80, 40, arena)
	c.Scene(snap)

	quadrant := func(x0, y0 int) int {
		n := 0
		for y := y0; y < y0+40; y++ {
			for x := x0; x < x0+40; x++ {
				if c.Lit(x, y) {
					n++
				}
			}
		}
		return n
	}
	if quadrant(0, 0) == 0 {
		t.Error("visible asteroid not drawn")
	}
	if quadrant(40, 40) != 0 {
		t.Error("hidden asteroid drawn")
	}
	if quadrant(40, 0) == 0 {
		t.Error("ship not drawn")
	}
	if quadrant(0, 40) == 0 {
		t.Error("blast not drawn")
	}
}
