package engine

import (
	"fmt"

	"github.com/halfspin/bootmenu/internal/logging/events"
	"github.com/halfspin/bootmenu/internal/menu"
)

// Handler reacts to a selected entry. Returning false closes the current
// menu level; true keeps it open.
type Handler func(def *menu.Definition, entry *menu.Entry) bool

func (e *Engine) defaultHandlers() map[menu.Kind]Handler {
	return map[menu.Kind]Handler{
		menu.KindAction:    e.handleAction,
		menu.KindCarousel:  e.handleCarousel,
		menu.KindSubmenu:   e.handleSubmenu,
		menu.KindReturn:    e.handleReturn,
		menu.KindSeparator: e.handleSeparator,
	}
}

// dispatch routes an entry to its kind handler. Every kind must be covered;
// a gap is a programming error, not something to limp past at boot time.
func (e *Engine) dispatch(def *menu.Definition, entry *menu.Entry) bool {
	h, ok := e.handlers[entry.Kind]
	if !ok {
		panic(fmt.Sprintf("engine: no handler registered for entry kind %v", entry.Kind))
	}
	return h(def, entry)
}

func (e *Engine) handleAction(_ *menu.Definition, entry *menu.Entry) bool {
	if entry.Effect != nil {
		entry.Effect()
	}
	return true
}

func (e *Engine) handleCarousel(_ *menu.Definition, entry *menu.Entry) bool {
	items := entry.Choices.Resolve()
	if len(items) == 0 {
		return true
	}
	index := e.carousels.Advance(entry.CarouselID, len(items))
	choice := items[index-1]
	events.Menu.Carousel(entry.CarouselID, index, choice)
	if entry.CarouselEffect != nil {
		entry.CarouselEffect(index, choice, items)
	}
	return true
}

func (e *Engine) handleSubmenu(_ *menu.Definition, entry *menu.Entry) bool {
	if entry.Submenu == nil {
		return true
	}
	e.Process(entry.Submenu, nil)
	return !e.interrupted
}

func (e *Engine) handleReturn(_ *menu.Definition, entry *menu.Entry) bool {
	if entry.Effect != nil {
		entry.Effect()
	}
	return false
}

// handleSeparator is unreachable through the alias table; it exists so every
// kind has a registered handler.
func (e *Engine) handleSeparator(_ *menu.Definition, _ *menu.Entry) bool {
	return true
}
