package engine

import (
	"testing"
	"time"

	"github.com/halfspin/bootmenu/internal/key"
	"github.com/halfspin/bootmenu/internal/menu"
)

// fakeClock drives the countdown without real sleeping: Sleep advances the
// reported time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time        { return c.t }
func (c *fakeClock) Sleep(d time.Duration) { c.t = c.t.Add(d) }

// timedInput makes one key available once the clock reaches a point in the
// countdown.
type timedInput struct {
	clock     *fakeClock
	start     time.Time
	after     time.Duration
	k         key.Key
	delivered bool
}

func (i *timedInput) HasPendingKey() bool {
	return !i.delivered && i.clock.t.Sub(i.start) >= i.after
}

func (i *timedInput) ReadKey() key.Key {
	if i.delivered || !i.HasPendingKey() {
		return key.Key{Code: key.Interrupt}
	}
	i.delivered = true
	return i.k
}

func newCountdownHarness(input Input, clock *fakeClock) (*Engine, *recordScreen) {
	carousels := menu.NewCarouselStore()
	screen := &recordScreen{carousels: carousels}
	root := menu.NewDefinition("root", "Root")
	eng := New(Options{
		Input:     input,
		Screen:    screen,
		Boot:      &recordBoot{},
		Env:       mapEnv{},
		Root:      root,
		Carousels: carousels,
		Now:       clock.Now,
		Sleep:     clock.Sleep,
	})
	return eng, screen
}

func TestParseAutobootDelay(t *testing.T) {
	cases := []struct {
		value    string
		seconds  int
		disabled bool
	}{
		{"5", 5, false},
		{" 5 ", 5, false},
		{"0", 0, false},
		{"-1", -1, false},
		{"NO", 0, true},
		{"no", 0, true},
		{"No", 0, true},
		{"", 10, false},
		{"soon", 10, false},
		{"5.5", 10, false},
	}
	for _, c := range cases {
		seconds, disabled := parseAutobootDelay(c.value)
		if seconds != c.seconds || disabled != c.disabled {
			t.Fatalf("parse %q: expected (%d, %v), got (%d, %v)", c.value, c.seconds, c.disabled, seconds, disabled)
		}
	}
}

func TestAutobootKeyCancelsMidCountdown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	input := &timedInput{clock: clock, start: clock.t, after: 2 * time.Second, k: key.Char('3')}
	eng, screen := newCountdownHarness(input, clock)

	res := eng.autobootWait("5")

	if res.Outcome != AutobootCancelled {
		t.Fatalf("expected cancellation, got outcome %v", res.Outcome)
	}
	if res.Key != key.Char('3') {
		t.Fatalf("expected the cancelling key handed back, got %v", res.Key)
	}
	if elapsed := clock.t.Sub(time.Unix(1000, 0)); elapsed < 2*time.Second || elapsed >= 3*time.Second {
		t.Fatalf("expected cancellation near t=2s, got %v", elapsed)
	}
	if len(screen.countdowns) == 0 || screen.countdowns[0] != 5 {
		t.Fatalf("expected the countdown to open at 5, got %v", screen.countdowns)
	}
	if screen.cleared != 1 {
		t.Fatalf("expected the countdown line cleared on cancel, got %d", screen.cleared)
	}
}

func TestRunTreatsCancellingKeyAsFirstInput(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	input := &timedInput{clock: clock, start: clock.t, after: 2 * time.Second, k: key.Char('q')}
	quit := false
	root := menu.NewDefinition("root", "Root",
		&menu.Entry{Kind: menu.KindReturn, Label: menu.StaticLabel("quit"), Aliases: []rune{'q'}, Effect: func() { quit = true }},
	)
	carousels := menu.NewCarouselStore()
	screen := &recordScreen{carousels: carousels}
	boot := &recordBoot{}
	eng := New(Options{
		Input:     input,
		Screen:    screen,
		Boot:      boot,
		Env:       mapEnv{"autoboot_delay": "5"},
		Root:      root,
		Carousels: carousels,
		Now:       clock.Now,
		Sleep:     clock.Sleep,
	})

	// The input delivers exactly one key; a menu loop that re-blocked for its
	// first key instead of consuming the cancellation would read an interrupt
	// and never reach the entry.
	if err := eng.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quit {
		t.Fatalf("expected the cancelling key to select its entry as the first menu input")
	}
	if boot.calls != 0 {
		t.Fatalf("cancellation must not boot, got %d attempts", boot.calls)
	}
	if screen.cleared != 1 {
		t.Fatalf("expected the countdown cleared on cancel, got %d", screen.cleared)
	}
	if len(screen.pins) != 1 || screen.pins[0] != 4 {
		t.Fatalf("expected the countdown row pinned under the menu body, got %v", screen.pins)
	}
}

func TestAutobootEnterBootsImmediately(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	input := &timedInput{clock: clock, start: clock.t, after: 0, k: key.Key{Code: key.Enter}}
	eng, _ := newCountdownHarness(input, clock)

	res := eng.autobootWait("5")

	if res.Outcome != AutobootExpired {
		t.Fatalf("expected Enter to request an immediate boot, got outcome %v", res.Outcome)
	}
}

func TestAutobootExpiresAtDeadline(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	eng, screen := newCountdownHarness(script(), clock)

	res := eng.autobootWait("2")

	if res.Outcome != AutobootExpired {
		t.Fatalf("expected expiry, got outcome %v", res.Outcome)
	}
	if elapsed := clock.t.Sub(time.Unix(1000, 0)); elapsed < 2*time.Second {
		t.Fatalf("expired before the deadline: %v", elapsed)
	}
	if screen.countdowns[0] != 2 {
		t.Fatalf("expected the countdown to open at 2, got %v", screen.countdowns)
	}
	if last := screen.countdowns[len(screen.countdowns)-1]; last != 0 {
		t.Fatalf("expected the countdown to close at 0, got %d", last)
	}
}

func TestAutobootDisabledByLiteralNo(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	eng, screen := newCountdownHarness(script(), clock)

	res := eng.autobootWait("no")

	if res.Outcome != AutobootDisabled {
		t.Fatalf("expected disabled countdown, got outcome %v", res.Outcome)
	}
	if len(screen.countdowns) != 0 {
		t.Fatalf("disabled countdown must not render, got %v", screen.countdowns)
	}
}

func TestAutobootNegativeDelaySkipsCountdown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	eng, screen := newCountdownHarness(script(), clock)

	res := eng.autobootWait("-1")

	if res.Outcome != AutobootExpired {
		t.Fatalf("expected immediate expiry, got outcome %v", res.Outcome)
	}
	if len(screen.countdowns) != 0 {
		t.Fatalf("negative delay must not render, got %v", screen.countdowns)
	}
	if clock.t != time.Unix(1000, 0) {
		t.Fatalf("immediate expiry must not sleep")
	}
}
