package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/halfspin/bootmenu/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// transcriptLimit bounds the prompt history kept on screen.
const transcriptLimit = 200

var promptCommands = []string{
	"?", "help", "show", "set", "unset", "kernels", "bootenvs",
	"boot", "reboot", "menu", "reload",
}

func (m *Model) say(lines ...string) {
	m.transcript = append(m.transcript, lines...)
	if n := len(m.transcript); n > transcriptLimit {
		m.transcript = m.transcript[n-transcriptLimit:]
	}
}

// execLine evaluates one loader prompt command.
func (m *Model) execLine(line string) tea.Cmd {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	events.Prompt.Command(trimmed)
	m.say("OK " + trimmed)
	fields := strings.Fields(trimmed)
	word, args := fields[0], fields[1:]
	switch word {
	case "?", "help":
		m.say(
			"show [var]      print one or all loader variables",
			"set var=value   set a loader variable",
			"unset var       remove a loader variable",
			"kernels         list bootable kernels",
			"bootenvs        list boot environments",
			"boot [kernel]   boot, optionally selecting a kernel",
			"reboot          reset the machine",
			"reload          re-read the configuration file",
			"menu            return to the boot menu",
		)
	case "show":
		m.cmdShow(args)
	case "set":
		m.cmdSet(args)
	case "unset":
		if len(args) != 1 {
			m.say("usage: unset var")
			break
		}
		m.env.Unset(args[0])
	case "kernels":
		m.cmdKernels()
	case "bootenvs":
		m.cmdBootenvs()
	case "boot":
		return m.cmdBoot(args)
	case "reboot":
		return func() tea.Msg {
			return bootAttemptMsg{err: m.ctl.Reboot()}
		}
	case "reload":
		if err := m.store.Reload(); err != nil {
			m.say(fmt.Sprintf("reload failed: %v", err))
			break
		}
		m.say("configuration reloaded")
	case "menu":
		_, cmd := m.reenterMenu()
		return cmd
	default:
		m.cmdUnknown(word)
	}
	return nil
}

func (m *Model) cmdShow(args []string) {
	if len(args) > 0 {
		name := args[0]
		if v, ok := m.env.Get(name); ok {
			m.say(fmt.Sprintf("%s=%q", name, v))
			return
		}
		m.say(fmt.Sprintf("%s is not set", name))
		return
	}
	vars := m.env.All()
	if len(vars) == 0 {
		m.say("(no variables set)")
		return
	}
	for _, v := range vars {
		m.say(fmt.Sprintf("%s=%q", v.Name, v.Value))
	}
}

func (m *Model) cmdSet(args []string) {
	assignment := strings.Join(args, " ")
	name, value, found := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		m.say("usage: set var=value")
		return
	}
	m.env.Set(name, strings.TrimSpace(value))
}

func (m *Model) cmdKernels() {
	selected := m.env.GetDefault("kernel", "")
	for _, k := range m.ctl.KernelList() {
		marker := "  "
		if k == selected {
			marker = "* "
		}
		m.say(marker + k)
	}
}

func (m *Model) cmdBootenvs() {
	list := m.ctl.BootenvList()
	if len(list) == 0 {
		m.say("(no boot environments)")
		return
	}
	active := m.ctl.BootenvDefault()
	for _, be := range list {
		marker := "  "
		if be == active {
			marker = "* "
		}
		m.say(marker + be)
	}
}

func (m *Model) cmdBoot(args []string) tea.Cmd {
	if len(args) > 0 {
		name, idx := m.ctl.ResolveKernel(args[0])
		if idx == 0 {
			m.say(fmt.Sprintf("unknown kernel %q", args[0]))
			return nil
		}
		m.store.SelectKernel(name)
	}
	return func() tea.Msg {
		return bootAttemptMsg{err: m.ctl.Boot()}
	}
}

// cmdUnknown reports an unrecognised command with a closest-match hint.
func (m *Model) cmdUnknown(word string) {
	suggestion := ""
	if ranks := fuzzy.RankFindFold(word, promptCommands); len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		suggestion = best.Target
	}
	events.Prompt.Unknown(word, suggestion)
	if suggestion != "" {
		m.say(fmt.Sprintf("unknown command %q, did you mean %q?", word, suggestion))
		return
	}
	m.say(fmt.Sprintf("unknown command %q", word))
}

func (m *Model) viewPrompt() string {
	lines := make([]string, 0, len(m.transcript)+3)
	header := "Loader prompt"
	if styles.Header != nil {
		header = styles.Header.Render(header)
	}
	lines = append(lines, header, "")
	visible := m.transcript
	if m.height > 4 && len(visible) > m.height-4 {
		visible = visible[len(visible)-(m.height-4):]
	}
	for _, l := range visible {
		if styles.PromptOut != nil {
			l = styles.PromptOut.Render(l)
		}
		lines = append(lines, l)
	}
	lines = append(lines, "", m.prompt.View())
	return strings.Join(lines, "\n")
}
