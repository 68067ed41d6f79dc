// Package menu holds the menu data model: tagged entry variants, menu
// definitions, the per-render alias table, and the carousel index store.
package menu

// Kind discriminates the entry variants.
type Kind int

const (
	// KindAction runs an effect and keeps the menu open.
	KindAction Kind = iota
	// KindCarousel advances a rotating choice on each selection.
	KindCarousel
	// KindSubmenu descends into a child definition.
	KindSubmenu
	// KindReturn runs an optional effect and closes the current menu level.
	KindReturn
	// KindSeparator is display-only and never selectable.
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindCarousel:
		return "carousel"
	case KindSubmenu:
		return "submenu"
	case KindReturn:
		return "return"
	case KindSeparator:
		return "separator"
	}
	return "unknown"
}

// Label is a display string that is either fixed or produced lazily at
// render time.
type Label struct {
	text string
	fn   func() string
}

// StaticLabel wraps a fixed string.
func StaticLabel(text string) Label {
	return Label{text: text}
}

// LabelFunc wraps a producer invoked on every resolve.
func LabelFunc(fn func() string) Label {
	return Label{fn: fn}
}

// Resolve returns the label text, invoking the producer when present.
func (l Label) Resolve() string {
	if l.fn != nil {
		return l.fn()
	}
	return l.text
}

// IsZero reports whether no label was provided.
func (l Label) IsZero() bool {
	return l.fn == nil && l.text == ""
}

// Choices is a carousel choice list that is either fixed or produced lazily.
type Choices struct {
	items []string
	fn    func() []string
}

// StaticChoices wraps a fixed list.
func StaticChoices(items ...string) Choices {
	return Choices{items: items}
}

// ChoicesFunc wraps a producer invoked on every resolve.
func ChoicesFunc(fn func() []string) Choices {
	return Choices{fn: fn}
}

// Resolve returns the current choice list.
func (c Choices) Resolve() []string {
	if c.fn != nil {
		return c.fn()
	}
	return c.items
}

// Entry is one menu item. Kind decides which fields are meaningful.
type Entry struct {
	Kind  Kind
	Label Label
	// AltLabel replaces Label when the entry appears in the swapped root
	// variant (single-user boot).
	AltLabel Label
	// Aliases are the characters that select this entry. Matching is
	// case-insensitive; declare them lowercase.
	Aliases []rune
	// Visible gates rendering and alias registration. Nil means always
	// visible.
	Visible func() bool

	// Effect runs for Action and Return entries.
	Effect func()

	// Carousel fields.
	CarouselID     string
	Choices        Choices
	CarouselLabel  func(index int, choice string, all []string) string
	CarouselEffect func(index int, choice string, all []string)

	// Submenu target.
	Submenu *Definition
}

// IsVisible evaluates the visibility predicate.
func (e *Entry) IsVisible() bool {
	return e.Visible == nil || e.Visible()
}

// Selectable reports whether the entry can hold aliases.
func (e *Entry) Selectable() bool {
	return e.Kind != KindSeparator
}

// Separator builds a display-only entry.
func Separator(text string) *Entry {
	return &Entry{Kind: KindSeparator, Label: StaticLabel(text)}
}
