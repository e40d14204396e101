package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestApplyLayouts(t *testing.T) {
	tests := []struct {
		name      string
		keys      string
		primary   Intents
		secondary Intents
	}{
		{"nothing", "", Intents{}, Intents{}},
		{"thrust and shoot", "w ", Intents{Forward: true, Shoot: true}, Intents{}},
		{"turn both ways", "ad", Intents{Left: true, Right: true}, Intents{}},
		{"secondary letters", "ikjlm", Intents{}, Intents{Forward: true, Backward: true, Left: true, Right: true, Shoot: true}},
		{"arrows", "\x1b[A\x1b[D", Intents{}, Intents{Forward: true, Left: true}},
		{"mixed", "s\x1b[C", Intents{Backward: true}, Intents{Right: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var st keyState
			got := st.apply([]byte(tc.keys), time.Now())
			if got.Primary != tc.primary {
				t.Errorf("primary = %+v, want %+v", got.Primary, tc.primary)
			}
			if got.Secondary != tc.secondary {
				t.Errorf("secondary = %+v, want %+v", got.Secondary, tc.secondary)
			}
		})
	}
}

func TestKeyHoldExpires(t *testing.T) {
	var st keyState
	start := time.Now()
	st.apply([]byte("w"), start)

	if got := st.apply(nil, start.Add(keyHoldDuration/2)); !got.Primary.Forward {
		t.Error("forward should still be held")
	}
	if got := st.apply(nil, start.Add(keyHoldDuration*2)); got.Primary.Forward {
		t.Error("forward should have expired")
	}
}

func TestQuitIsSticky(t *testing.T) {
	var st keyState
	now := time.Now()
	st.apply([]byte("q"), now)
	if got := st.apply(nil, now.Add(time.Hour)); !got.Quit {
		t.Error("quit should stay set")
	}
}

func TestIntentsAny(t *testing.T) {
	if (Intents{}).Any() {
		t.Error("empty intents reported Any")
	}
	if !(Intents{Shoot: true}).Any() {
		t.Error("shoot not reported by Any")
	}
}

func TestReadInputClosedStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("closed stream never reported Quit")
}
