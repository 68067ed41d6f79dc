package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/halfspin/bootmenu/internal/key"
	"github.com/halfspin/bootmenu/internal/logging/events"
)

// AutobootOutcome is the terminal state of a countdown.
type AutobootOutcome int

const (
	// AutobootDisabled means the countdown never ran.
	AutobootDisabled AutobootOutcome = iota
	// AutobootExpired means boot now: the deadline passed, Enter was
	// pressed, or the delay requested an immediate boot.
	AutobootExpired
	// AutobootCancelled means a key other than Enter arrived; Key carries
	// it so the menu loop can consume it as its first input.
	AutobootCancelled
)

// AutobootResult pairs the outcome with the cancelling key.
type AutobootResult struct {
	Outcome AutobootOutcome
	Key     key.Key
}

const (
	defaultAutobootSeconds = 10
	// autobootTick bounds the poll sleep so the countdown display stays
	// live without an asynchronous timer; there is no scheduler to wake us.
	autobootTick = 100 * time.Millisecond
	// autobootDisabledValue disables the countdown entirely.
	autobootDisabledValue = "NO"
)

// parseAutobootDelay maps the delay variable to seconds. Unset or malformed
// values degrade to the default rather than failing; the literal "NO"
// (case-insensitive) disables autoboot; negative values boot immediately.
func parseAutobootDelay(value string) (seconds int, disabled bool) {
	trimmed := strings.TrimSpace(value)
	if strings.EqualFold(trimmed, autobootDisabledValue) {
		return 0, true
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return defaultAutobootSeconds, false
	}
	return n, false
}

// autobootWait runs the countdown state machine against the engine's clock.
func (e *Engine) autobootWait(value string) AutobootResult {
	seconds, disabled := parseAutobootDelay(value)
	if disabled {
		events.Autoboot.Disabled()
		return AutobootResult{Outcome: AutobootDisabled}
	}
	if seconds < 0 {
		// Boot immediately; the countdown is never rendered.
		events.Autoboot.Expired()
		return AutobootResult{Outcome: AutobootExpired}
	}
	events.Autoboot.Start(seconds)
	deadline := e.now().Add(time.Duration(seconds) * time.Second)
	for {
		now := e.now()
		// remaining is display-only; expiry goes by the real deadline so a
		// rounded-down second never cuts the countdown short.
		remaining := int(deadline.Sub(now).Round(time.Second) / time.Second)
		if remaining < 0 {
			remaining = 0
		}
		e.screen.Countdown(remaining)
		if e.input.HasPendingKey() {
			k := e.input.ReadKey()
			e.screen.ClearCountdown()
			if k.Code == key.Enter {
				events.Autoboot.Expired()
				return AutobootResult{Outcome: AutobootExpired}
			}
			events.Autoboot.Cancelled(k.String())
			return AutobootResult{Outcome: AutobootCancelled, Key: k}
		}
		if !now.Before(deadline) {
			e.screen.ClearCountdown()
			events.Autoboot.Expired()
			return AutobootResult{Outcome: AutobootExpired}
		}
		e.sleep(autobootTick)
	}
}
