package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/draw"
	"github.com/tomz197/asteroid-arena/internal/input"
	"github.com/tomz197/asteroid-arena/internal/loop/server"
	"github.com/tomz197/asteroid-arena/internal/object"
)

// Client renders the arena and forwards key input for one terminal.
// A terminal may fly one ship or, in the local game, two.
type Client struct {
	arena    server.Arena
	seats    []*server.PlayerHandle
	state    *ClientState
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	writer   io.Writer
	stream   *input.Stream
	termSize draw.TermSizeFunc
	bounds   config.Arena
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Name         string
	Seats        int // Ships to fly from this terminal, 1 or 2
}

// NewClient joins the arena and prepares the terminal. It fails only when
// no seat at all is free; a second seat is best effort.
func NewClient(arena server.Arena, r *bufio.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.StdoutSize
	}
	seats := max(opts.Seats, 1)

	c := &Client{
		arena:    arena,
		state:    NewClientState(),
		writer:   w,
		termSize: termSize,
		bounds:   arena.Snapshot().Arena,
	}

	for i := 0; i < seats; i++ {
		h, err := arena.Join(opts.Name)
		if err != nil {
			if i == 0 {
				return nil, err
			}
			break
		}
		c.seats = append(c.seats, h)
	}

	cols, rows, _ := termSize()
	rc, rr, oc, or := fitArena(cols, rows, c.bounds)
	c.canvas = draw.NewCanvas(rc, rr, c.bounds)
	c.cw = draw.NewChunkWriter(w, oc, or)
	c.stream = input.StartStream(r)
	return c, nil
}

// IsArenaFull reports whether err came from joining a full arena.
func IsArenaFull(err error) bool {
	return errors.Is(err, server.ErrArenaFull)
}

// Run is the client loop. Blocks until the player quits or the server stops.
func (c *Client) Run() error {
	io.WriteString(c.writer, draw.HideCursor+draw.ClearScreen)
	defer io.WriteString(c.writer, draw.ShowCursor)
	defer c.leave()

	last := time.Now()
	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(last)
		last = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()
		c.updateTimers()

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	io.WriteString(c.writer, draw.ClearScreen)
	return nil
}

func (c *Client) leave() {
	for _, h := range c.seats {
		c.arena.Leave(h.Slot)
	}
	c.seats = nil
}

// processInput maps keys to seats and sends them to the server. A single
// seat accepts either key layout.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.stream)
	if c.state.Input.Quit {
		c.state.Running = false
		return
	}
	if c.state.GameState != GameStatePlaying {
		return
	}

	for i, h := range c.seats {
		c.arena.SendIntents(h.Slot, seatIntents(c.state.Input, i, len(c.seats)))
	}
}

func seatIntents(in input.Input, seat, seats int) object.Intents {
	if seats == 1 {
		return merge(in.Primary, in.Secondary)
	}
	if seat == 0 {
		return in.Primary
	}
	return in.Secondary
}

func merge(a, b object.Intents) object.Intents {
	return object.Intents{
		Forward:  a.Forward || b.Forward,
		Backward: a.Backward || b.Backward,
		Left:     a.Left || b.Left,
		Right:    a.Right || b.Right,
		Shoot:    a.Shoot || b.Shoot,
	}
}

// processServerEvents handles notifications from the server.
func (c *Client) processServerEvents() {
	for _, h := range c.seats {
	drain:
		for {
			select {
			case ev, ok := <-h.EventsCh:
				if !ok {
					c.state.Running = false
					return
				}
				switch ev.Type {
				case server.EventRoundReset:
					c.state.Round = ev.Round
					c.state.bannerTimer = config.RoundBannerSeconds
				case server.EventServerShutdown:
					c.state.GameState = GameStateShutdown
					c.state.shutdownTimer = config.ShutdownDisplaySeconds
				}
			default:
				break drain
			}
		}
	}
}

// updateScreen follows terminal resizes, clearing the terminal when the
// playfield moves.
func (c *Client) updateScreen() {
	cols, rows, err := c.termSize()
	if err != nil {
		return
	}
	rc, rr, oc, or := fitArena(cols, rows, c.bounds)
	if rc != c.canvas.Cols() || rr != c.canvas.Rows() {
		c.cw.WriteString(draw.ClearScreen)
	}
	c.canvas.Resize(rc, rr)
	c.cw.SetOffset(oc, or)
}

func (c *Client) updateTimers() {
	dt := c.state.delta.Seconds()
	c.state.bannerTimer = max(c.state.bannerTimer-dt, 0)

	if c.state.GameState != GameStateShutdown {
		return
	}
	c.state.shutdownTimer -= dt
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// fitArena picks the largest playfield with the arena's aspect ratio that
// fits below a one-line HUD, and centers it. Half-block pixels are square,
// so one row holds two pixels.
func fitArena(cols, rows int, a config.Arena) (renderCols, renderRows, offsetCol, offsetRow int) {
	avail := max(rows-hudRows, 1)
	cols = max(cols, 1)
	aspect := a.Width() / a.Height()

	renderRows = avail
	renderCols = int(math.Round(float64(avail*2) * aspect))
	if renderCols > cols {
		renderCols = cols
		renderRows = max(int(math.Round(float64(cols)/aspect/2)), 1)
	}
	renderCols = max(renderCols, 1)

	offsetCol = (cols - renderCols) / 2
	offsetRow = hudRows + (avail-renderRows)/2
	return
}
