package console

import (
	"testing"

	"github.com/halfspin/bootmenu/internal/key"
)

func TestInputDeliversKeysInOrder(t *testing.T) {
	in := NewInput()
	if in.HasPendingKey() {
		t.Fatalf("fresh input must have no pending key")
	}
	if !in.Push(key.Char('a')) || !in.Push(key.Char('b')) {
		t.Fatalf("expected pushes to be accepted")
	}
	if !in.HasPendingKey() {
		t.Fatalf("expected pending keys after push")
	}
	if k := in.ReadKey(); k != key.Char('a') {
		t.Fatalf("expected 'a' first, got %v", k)
	}
	if k := in.ReadKey(); k != key.Char('b') {
		t.Fatalf("expected 'b' second, got %v", k)
	}
	if in.HasPendingKey() {
		t.Fatalf("expected drained input")
	}
}

func TestInputDropsKeysBeyondBuffer(t *testing.T) {
	in := NewInput()
	for i := 0; i < inputBuffer; i++ {
		if !in.Push(key.Char('x')) {
			t.Fatalf("push %d rejected before the buffer filled", i)
		}
	}
	if in.Push(key.Char('y')) {
		t.Fatalf("expected push beyond the buffer to be dropped")
	}
}

func TestClosedInputYieldsInterrupt(t *testing.T) {
	in := NewInput()
	in.Push(key.Char('a'))
	in.Close()

	if in.Push(key.Char('b')) {
		t.Fatalf("closed input must reject pushes")
	}
	if k := in.ReadKey(); k != key.Char('a') {
		t.Fatalf("expected the queued key delivered after close, got %v", k)
	}
	if k := in.ReadKey(); k.Code != key.Interrupt {
		t.Fatalf("expected interrupt from a drained closed feed, got %v", k)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	in := NewInput()
	in.Close()
	in.Close()
	if k := in.ReadKey(); k.Code != key.Interrupt {
		t.Fatalf("expected interrupt, got %v", k)
	}
}
