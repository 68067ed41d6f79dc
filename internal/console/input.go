// Package console implements the engine's render and input collaborators:
// a frame-building screen and a buffered key feed bridged from the terminal
// front-end.
package console

import (
	"sync"

	"github.com/halfspin/bootmenu/internal/key"
)

// inputBuffer bounds how many unread keys are held. Keys typed faster than
// the engine consumes them beyond this are dropped, matching what a real
// keyboard controller FIFO does.
const inputBuffer = 16

// Input is the engine's key source. The front-end pushes decoded keys in;
// the engine blocks on ReadKey and polls HasPendingKey during the autoboot
// countdown.
type Input struct {
	keys chan key.Key

	mu     sync.Mutex
	closed bool
}

// NewInput returns an open key feed.
func NewInput() *Input {
	return &Input{keys: make(chan key.Key, inputBuffer)}
}

// Push queues a key for the engine, reporting whether it was accepted.
func (in *Input) Push(k key.Key) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return false
	}
	select {
	case in.keys <- k:
		return true
	default:
		return false
	}
}

// HasPendingKey reports whether a key is queued without blocking.
func (in *Input) HasPendingKey() bool {
	return len(in.keys) > 0
}

// ReadKey blocks until a key arrives. A closed feed yields an Interrupt so
// the engine unwinds instead of spinning.
func (in *Input) ReadKey() key.Key {
	k, ok := <-in.keys
	if !ok {
		return key.Key{Code: key.Interrupt}
	}
	return k
}

// Close tears down the feed. Pending keys are still delivered; subsequent
// reads yield Interrupt.
func (in *Input) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return
	}
	in.closed = true
	close(in.keys)
}
