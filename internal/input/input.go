// Package input turns raw terminal bytes into per-player intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so a held key is a stream of presses.
const keyHoldDuration = 120 * time.Millisecond

// Intents are the five control flags of one ship.
type Intents struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Shoot    bool
}

// Any reports whether any flag is set.
func (i Intents) Any() bool {
	return i.Forward || i.Backward || i.Left || i.Right || i.Shoot
}

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	Enter     bool
	Primary   Intents // WASD + Space
	Secondary Intents // Arrows or IJKL + M
	Pressed   []byte
}

// layoutState tracks the last time each key of one layout was pressed.
type layoutState struct {
	forward  time.Time
	backward time.Time
	left     time.Time
	right    time.Time
	shoot    time.Time
}

func (l *layoutState) intents(now time.Time) Intents {
	return Intents{
		Forward:  now.Sub(l.forward) < keyHoldDuration,
		Backward: now.Sub(l.backward) < keyHoldDuration,
		Left:     now.Sub(l.left) < keyHoldDuration,
		Right:    now.Sub(l.right) < keyHoldDuration,
		Shoot:    now.Sub(l.shoot) < keyHoldDuration,
	}
}

// keyState tracks both layouts plus the one-shot keys.
type keyState struct {
	primary   layoutState
	secondary layoutState
	quit      bool
	enter     time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	inp := s.state.apply(buf, time.Now())
	if closed {
		inp.Quit = true
	}
	return inp
}

// apply parses buf into the key state and builds the frame's Input.
func (s *keyState) apply(buf []byte, now time.Time) Input {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI arrow sequences: ESC [ A..D
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.secondary.forward = now
			case 'B':
				s.secondary.backward = now
			case 'C':
				s.secondary.right = now
			case 'D':
				s.secondary.left = now
			}
			i += 2
			continue
		}

		s.applyByte(b, now)
	}

	return Input{
		Quit:      s.quit,
		Enter:     now.Sub(s.enter) < keyHoldDuration,
		Primary:   s.primary.intents(now),
		Secondary: s.secondary.intents(now),
		Pressed:   buf,
	}
}

func (s *keyState) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		s.quit = true
	case 'w', 'W':
		s.primary.forward = now
	case 's', 'S':
		s.primary.backward = now
	case 'a', 'A':
		s.primary.left = now
	case 'd', 'D':
		s.primary.right = now
	case ' ':
		s.primary.shoot = now
	case 'i', 'I':
		s.secondary.forward = now
	case 'k', 'K':
		s.secondary.backward = now
	case 'j', 'J':
		s.secondary.left = now
	case 'l', 'L':
		s.secondary.right = now
	case 'm', 'M':
		s.secondary.shoot = now
	case '\n', '\r':
		s.enter = now
	}
}
