package client

import (
	"fmt"
	"strings"

	"github.com/tomz197/asteroid-arena/internal/draw"
	"github.com/tomz197/asteroid-arena/internal/object"
	"github.com/tomz197/asteroid-arena/internal/sim"
)

// hudRows is the number of terminal lines above the playfield.
const hudRows = 1

// drawFrame renders the latest snapshot and the HUD.
func (c *Client) drawFrame() error {
	if c.state.GameState != c.state.prevGameState {
		c.cw.WriteString(draw.ClearScreen)
		c.state.prevGameState = c.state.GameState
	} else {
		c.eraseCanvas()
	}

	snap := c.arena.Snapshot()
	c.canvas.Clear()
	c.canvas.Scene(snap)
	c.canvas.Render(c.cw)

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen()
	} else {
		c.drawHUD(snap)
		if c.state.bannerTimer > 0 {
			c.drawRoundBanner()
		}
	}
	return c.cw.Flush()
}

// eraseCanvas blanks the playfield rows so the previous frame does not smear.
func (c *Client) eraseCanvas() {
	blank := strings.Repeat(" ", c.canvas.Cols())
	for row := 1; row <= c.canvas.Rows(); row++ {
		c.cw.WriteAt(1, row, blank)
	}
}

// drawHUD writes round and scores on the line above the playfield.
func (c *Client) drawHUD(snap *sim.Snapshot) {
	c.cw.WriteAt(1, 1-hudRows, hudLine(snap, c.seatSlots(), c.canvas.Cols()))
}

func (c *Client) seatSlots() map[int]bool {
	mine := make(map[int]bool, len(c.seats))
	for _, h := range c.seats {
		mine[h.Slot] = true
	}
	return mine
}

// hudLine formats the scoreboard, marking the viewer's own ships, padded or
// cut to width.
func hudLine(snap *sim.Snapshot, mine map[int]bool, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d", snap.Round)
	for _, p := range snap.Players {
		marker := " "
		if mine[p.ID] {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %sP%d %d (best %d)", marker, p.ID+1, p.Score, p.TopScore)
		if p.State != object.PlayerAlive {
			b.WriteString(" down")
		}
	}

	line := b.String()
	if n := len([]rune(line)); n < width {
		line += strings.Repeat(" ", width-n)
	} else if n > width {
		line = string([]rune(line)[:width])
	}
	return line
}

// drawRoundBanner announces a new round in the middle of the playfield.
func (c *Client) drawRoundBanner() {
	msg := fmt.Sprintf("ROUND %d", c.state.Round)
	c.cw.WriteAt(c.canvas.Cols()/2-len(msg)/2, c.canvas.Rows()/2, msg)
}

// drawShutdownScreen shows the countdown before the server disconnects.
func (c *Client) drawShutdownScreen() {
	centerX, centerY := c.canvas.Cols()/2, c.canvas.Rows()/2

	title := "SERVER SHUTTING DOWN"
	c.cw.WriteAt(centerX-len(title)/2, centerY-1, title)

	msg := fmt.Sprintf("Disconnecting in %d seconds", int(c.state.shutdownTimer)+1)
	c.cw.WriteAt(centerX-len(msg)/2, centerY+1, msg)
}
