package menu

// Definition is an ordered menu: a fixed entry sequence or a producer that
// yields one on demand. Producers enable menus whose shape depends on boot
// state; a producer may hand back a cached slice when nothing changed.
type Definition struct {
	ID       string
	Title    string
	entries  []*Entry
	producer func() []*Entry
}

// NewDefinition builds a static definition.
func NewDefinition(id, title string, entries ...*Entry) *Definition {
	return &Definition{ID: id, Title: title, entries: entries}
}

// NewDynamicDefinition builds a definition whose entries come from producer.
func NewDynamicDefinition(id, title string, producer func() []*Entry) *Definition {
	return &Definition{ID: id, Title: title, producer: producer}
}

// Entries resolves the current entry sequence.
func (d *Definition) Entries() []*Entry {
	if d.producer != nil {
		return d.producer()
	}
	return d.entries
}

// VisibleEntries resolves the sequence and drops entries whose visibility
// predicate says no.
func (d *Definition) VisibleEntries() []*Entry {
	entries := d.Entries()
	visible := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsVisible() {
			visible = append(visible, e)
		}
	}
	return visible
}
