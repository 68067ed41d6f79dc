package menu

import "unicode"

// AliasTable maps an input character to the visible entry it selects. It is
// rebuilt on every render and never reused across draws: visibility and
// labels can change between draws, so a stale table would route keys to the
// wrong entry.
type AliasTable map[rune]*Entry

// BuildAliases registers the aliases of the given (already visibility
// filtered) entries. When two entries claim the same character the entry
// that appears first in the sequence keeps it.
func BuildAliases(entries []*Entry) AliasTable {
	table := make(AliasTable)
	for _, e := range entries {
		if !e.Selectable() {
			continue
		}
		for _, r := range e.Aliases {
			r = unicode.ToLower(r)
			if _, taken := table[r]; taken {
				continue
			}
			table[r] = e
		}
	}
	return table
}

// Lookup resolves a character, folding case.
func (t AliasTable) Lookup(r rune) (*Entry, bool) {
	e, ok := t[unicode.ToLower(r)]
	return e, ok
}
