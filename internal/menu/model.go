package menu

import "fmt"

// Controller is the slice of boot control the menu content needs for its
// labels and effects.
type Controller interface {
	IsSingleUserBoot() bool
	SafeMode() bool
	Verbose() bool
	SetSingleUser(on bool)
	SetSafeMode(on bool)
	SetVerbose(on bool)
	SetDefaults()
	KernelList() []string
	BootenvList() []string
	BootenvDefault() string
	ActivateBootenv(name string)
	Boot() error
	Reboot() error
}

// ConfigStore persists choices made through the menu.
type ConfigStore interface {
	Reload() error
	SelectKernel(name string)
}

// Model owns the menu tree: the welcome (root) definition, the boot options
// submenu, and the memoized single-user variant of the root sequence.
type Model struct {
	ctl Controller
	cfg ConfigStore

	root    *Definition
	options *Definition

	rootBase []*Entry
	// swapped caches the single-user root variant. The structural copy is
	// done once; every later request returns the same slice.
	swapped []*Entry
}

// NewModel builds the menu tree over the given collaborators.
func NewModel(ctl Controller, cfg ConfigStore) *Model {
	m := &Model{ctl: ctl, cfg: cfg}
	m.options = m.buildOptions()
	m.rootBase = m.buildRoot()
	m.root = NewDynamicDefinition("welcome", "Boot Menu", m.rootEntries)
	return m
}

// Root returns the welcome menu definition.
func (m *Model) Root() *Definition {
	return m.root
}

// Options returns the boot options submenu definition.
func (m *Model) Options() *Definition {
	return m.options
}

// rootEntries picks the plain or swapped sequence depending on the
// single-user flag.
func (m *Model) rootEntries() []*Entry {
	if m.ctl.IsSingleUserBoot() {
		return m.swappedEntries()
	}
	return m.rootBase
}

// swappedEntries swaps the first two root entries into their alternate
// labels, computing the copy once and reusing it on every later draw.
func (m *Model) swappedEntries() []*Entry {
	if m.swapped != nil {
		return m.swapped
	}
	out := make([]*Entry, len(m.rootBase))
	copy(out, m.rootBase)
	first := *m.rootBase[1]
	second := *m.rootBase[0]
	first.Label = first.AltLabel
	second.Label = second.AltLabel
	first.Aliases = swapRune(first.Aliases, '2', '1')
	second.Aliases = swapRune(second.Aliases, '1', '2')
	out[0], out[1] = &first, &second
	m.swapped = out
	return out
}

// swapRune copies aliases with from replaced by to.
func swapRune(aliases []rune, from, to rune) []rune {
	out := make([]rune, len(aliases))
	for i, r := range aliases {
		if r == from {
			r = to
		}
		out[i] = r
	}
	return out
}

func (m *Model) buildRoot() []*Entry {
	multi := &Entry{
		Kind:     KindAction,
		Label:    StaticLabel("Boot Multi user [Enter]"),
		AltLabel: StaticLabel("Boot Multi user"),
		Aliases:  []rune{'1', 'b'},
		Effect: func() {
			m.ctl.SetSingleUser(false)
			m.ctl.Boot()
		},
	}
	single := &Entry{
		Kind:     KindAction,
		Label:    StaticLabel("Boot Single user"),
		AltLabel: StaticLabel("Boot Single user [Enter]"),
		Aliases:  []rune{'2', 's'},
		Effect: func() {
			m.ctl.SetSingleUser(true)
			m.ctl.Boot()
		},
	}
	prompt := &Entry{
		Kind:    KindReturn,
		Label:   StaticLabel("Escape to loader prompt"),
		Aliases: []rune{'3', 'p'},
	}
	reboot := &Entry{
		Kind:    KindAction,
		Label:   StaticLabel("Reboot"),
		Aliases: []rune{'4', 'r'},
		Effect: func() {
			m.ctl.Reboot()
		},
	}
	kernel := &Entry{
		Kind:       KindCarousel,
		CarouselID: "kernel",
		Label:      StaticLabel("Kernel: (none found)"),
		Aliases:    []rune{'5', 'k'},
		Choices:    ChoicesFunc(m.ctl.KernelList),
		CarouselLabel: func(index int, choice string, all []string) string {
			return fmt.Sprintf("Kernel: %s (%d of %d)", choice, index, len(all))
		},
		CarouselEffect: func(index int, choice string, all []string) {
			m.cfg.SelectKernel(choice)
		},
	}
	bootenv := &Entry{
		Kind:       KindCarousel,
		CarouselID: "bootenv",
		Label:      StaticLabel("Boot Environment: (none)"),
		Aliases:    []rune{'6', 'e'},
		Visible: func() bool {
			return len(m.ctl.BootenvList()) > 1
		},
		Choices: ChoicesFunc(m.ctl.BootenvList),
		CarouselLabel: func(index int, choice string, all []string) string {
			return fmt.Sprintf("Boot Environment: %s (%d of %d)", choice, index, len(all))
		},
		CarouselEffect: func(index int, choice string, all []string) {
			m.ctl.ActivateBootenv(choice)
		},
	}
	options := &Entry{
		Kind:    KindSubmenu,
		Label:   StaticLabel("Boot Options"),
		Aliases: []rune{'7', 'o'},
		Submenu: m.options,
	}
	return []*Entry{
		multi,
		single,
		Separator(""),
		prompt,
		reboot,
		Separator(""),
		Separator("Options:"),
		kernel,
		bootenv,
		options,
	}
}

func (m *Model) buildOptions() *Definition {
	back := &Entry{
		Kind:    KindReturn,
		Label:   StaticLabel("Back to main menu [Backspace]"),
		Aliases: []rune{'b'},
	}
	defaults := &Entry{
		Kind:    KindAction,
		Label:   StaticLabel("Load System Defaults"),
		Aliases: []rune{'d'},
		Effect:  m.ctl.SetDefaults,
	}
	safe := &Entry{
		Kind:    KindAction,
		Label:   toggleLabel("Safe Mode", m.ctl.SafeMode),
		Aliases: []rune{'s'},
		Effect: func() {
			m.ctl.SetSafeMode(!m.ctl.SafeMode())
		},
	}
	single := &Entry{
		Kind:    KindAction,
		Label:   toggleLabel("Single user", m.ctl.IsSingleUserBoot),
		Aliases: []rune{'u'},
		Effect: func() {
			m.ctl.SetSingleUser(!m.ctl.IsSingleUserBoot())
		},
	}
	verbose := &Entry{
		Kind:    KindAction,
		Label:   toggleLabel("Verbose", m.ctl.Verbose),
		Aliases: []rune{'v'},
		Effect: func() {
			m.ctl.SetVerbose(!m.ctl.Verbose())
		},
	}
	return NewDefinition("options", "Boot Options",
		back,
		defaults,
		Separator(""),
		Separator("Boot Options:"),
		safe,
		single,
		verbose,
	)
}

func toggleLabel(name string, get func() bool) Label {
	return LabelFunc(func() string {
		state := "Off"
		if get() {
			state = "On"
		}
		return fmt.Sprintf("%s: %s", name, state)
	})
}

// DisplayLabel resolves the line shown for an entry. Carousel entries show
// their current choice; an empty choice list falls back to the entry's
// placeholder label.
func DisplayLabel(e *Entry, carousels *CarouselStore) string {
	if e.Kind != KindCarousel {
		return e.Label.Resolve()
	}
	items := e.Choices.Resolve()
	if len(items) == 0 {
		return e.Label.Resolve()
	}
	index := carousels.Get(e.CarouselID)
	if index < 1 || index > len(items) {
		index = 1
	}
	choice := items[index-1]
	if e.CarouselLabel != nil {
		return e.CarouselLabel(index, choice, items)
	}
	return fmt.Sprintf("%s (%d of %d)", choice, index, len(items))
}
