// Package key defines the keycodes exchanged between the console input
// source and the menu engine.
package key

import "fmt"

// Code classifies a keypress.
type Code int

const (
	// Rune is a printable character; the Rune field carries its value.
	Rune Code = iota
	Enter
	Backspace
	Delete
	Escape
	// Interrupt reports that the input source was torn down (ctrl+c or a
	// closed key feed). The engine unwinds every menu level when it sees one.
	Interrupt
)

// Key is a single decoded keypress.
type Key struct {
	Code Code
	Rune rune
}

// Char wraps a printable character.
func Char(r rune) Key {
	return Key{Code: Rune, Rune: r}
}

func (k Key) String() string {
	switch k.Code {
	case Enter:
		return "enter"
	case Backspace:
		return "backspace"
	case Delete:
		return "delete"
	case Escape:
		return "escape"
	case Interrupt:
		return "interrupt"
	}
	return fmt.Sprintf("%q", k.Rune)
}
