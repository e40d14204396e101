package client

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/input"
	"github.com/tomz197/asteroid-arena/internal/loop/server"
	"github.com/tomz197/asteroid-arena/internal/object"
	"github.com/tomz197/asteroid-arena/internal/sim"
)

// fakeArena is an in-memory Arena with a fixed number of seats.
type fakeArena struct {
	mu      sync.Mutex
	seats   []*server.PlayerHandle
	left    []int
	intents map[int]object.Intents
	snap    *sim.Snapshot
}

func newFakeArena(t *testing.T, seats int) *fakeArena {
	t.Helper()
	cfg := config.Default()
	cfg.Players = max(seats, 1)
	w, err := sim.NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return &fakeArena{
		seats:   make([]*server.PlayerHandle, seats),
		intents: make(map[int]object.Intents),
		snap:    w.Snapshot(),
	}
}

func (a *fakeArena) Join(name string) (*server.PlayerHandle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for slot, h := range a.seats {
		if h == nil {
			h = &server.PlayerHandle{Slot: slot, Name: name, EventsCh: make(chan server.Event, 4)}
			a.seats[slot] = h
			return h, nil
		}
	}
	return nil, fmt.Errorf("join %q: %w", name, server.ErrArenaFull)
}

func (a *fakeArena) Leave(slot int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.left = append(a.left, slot)
	a.seats[slot] = nil
}

func (a *fakeArena) SendIntents(slot int, in object.Intents) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.intents[slot] = in
}

func (a *fakeArena) Snapshot() *sim.Snapshot { return a.snap }

func fixedSize(cols, rows int) func() (int, int, error) {
	return func() (int, int, error) { return cols, rows, nil }
}

func newTestClient(t *testing.T, a *fakeArena, seats int, keys string) (*Client, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := NewClient(a, bufio.NewReader(strings.NewReader(keys)), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 25),
		Name:         "test",
		Seats:        seats,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, &out
}

func TestNewClientSeats(t *testing.T) {
	tests := []struct {
		name      string
		available int
		want      int
		wantErr   bool
	}{
		{"both seats", 2, 2, false},
		{"second seat is best effort", 1, 1, false},
		{"arena full", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newFakeArena(t, tc.available)
			c, err := NewClient(a, bufio.NewReader(strings.NewReader("")), &bytes.Buffer{}, ClientOptions{
				TermSizeFunc: fixedSize(80, 25),
				Seats:        2,
			})
			if tc.wantErr {
				if !IsArenaFull(err) {
					t.Errorf("err = %v, want arena full", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if len(c.seats) != tc.want {
				t.Errorf("seats = %d, want %d", len(c.seats), tc.want)
			}
		})
	}
}

func TestSeatIntents(t *testing.T) {
	in := input.Input{
		Primary:   object.Intents{Forward: true},
		Secondary: object.Intents{Shoot: true},
	}

	tests := []struct {
		name  string
		seat  int
		seats int
		want  object.Intents
	}{
		{"single seat merges layouts", 0, 1, object.Intents{Forward: true, Shoot: true}},
		{"first of two", 0, 2, object.Intents{Forward: true}},
		{"second of two", 1, 2, object.Intents{Shoot: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := seatIntents(in, tc.seat, tc.seats); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFitArena(t *testing.T) {
	square := config.Default().Arena

	tests := []struct {
		name                   string
		cols, rows             int
		wantCols, wantRows     int
		wantOffCol, wantOffRow int
	}{
		{"wide terminal", 80, 25, 48, 24, 16, 1},
		{"narrow terminal", 40, 25, 40, 20, 0, 3},
		{"tiny terminal", 0, 0, 1, 1, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r, oc, or := fitArena(tc.cols, tc.rows, square)
			if c != tc.wantCols || r != tc.wantRows || oc != tc.wantOffCol || or != tc.wantOffRow {
				t.Errorf("fitArena(%d, %d) = %d, %d, %d, %d; want %d, %d, %d, %d",
					tc.cols, tc.rows, c, r, oc, or, tc.wantCols, tc.wantRows, tc.wantOffCol, tc.wantOffRow)
			}
		})
	}
}

func TestHUDLine(t *testing.T) {
	snap := &sim.Snapshot{
		Round: 2,
		Players: []sim.PlayerPose{
			{ID: 0, State: object.PlayerAlive, Score: 5, TopScore: 10},
			{ID: 1, State: object.PlayerDying},
		},
	}

	line := hudLine(snap, map[int]bool{0: true}, 60)
	want := "Round 2  *P1 5 (best 10)   P2 0 (best 0) down"
	if !strings.HasPrefix(line, want) {
		t.Errorf("line = %q, want prefix %q", line, want)
	}
	if len(line) != 60 {
		t.Errorf("len = %d, want padded to 60", len(line))
	}

	if got := hudLine(snap, nil, 5); got != "Round" {
		t.Errorf("cut line = %q", got)
	}
}

func TestServerEvents(t *testing.T) {
	a := newFakeArena(t, 1)
	c, _ := newTestClient(t, a, 1, "")
	h := c.seats[0]

	h.EventsCh <- server.Event{Type: server.EventRoundReset, Round: 3}
	c.processServerEvents()
	if c.state.Round != 3 || c.state.bannerTimer <= 0 {
		t.Errorf("after reset: round %d, banner %v", c.state.Round, c.state.bannerTimer)
	}

	h.EventsCh <- server.Event{Type: server.EventServerShutdown}
	c.processServerEvents()
	if c.state.GameState != GameStateShutdown || c.state.shutdownTimer != config.ShutdownDisplaySeconds {
		t.Errorf("after shutdown: %+v", c.state)
	}

	close(h.EventsCh)
	c.processServerEvents()
	if c.state.Running {
		t.Error("closed event channel should stop the client")
	}
}

func TestRunLeavesOnQuit(t *testing.T) {
	a := newFakeArena(t, 2)
	c, out := newTestClient(t, a, 2, "wq")

	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.left) != 2 {
		t.Errorf("left = %v, want both seats released", a.left)
	}
	if !strings.Contains(out.String(), "Round 1") {
		t.Error("HUD was never drawn")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor not restored")
	}
}
