// Package events is a typed facade over logging.Trace so call sites stay
// free of ad-hoc event names and payload maps.
package events

import "github.com/halfspin/bootmenu/internal/logging"

type AppTracer struct{}

type MenuTracer struct{}

type AutobootTracer struct{}

type BootTracer struct{}

type PromptTracer struct{}

var (
	App      = AppTracer{}
	Menu     = MenuTracer{}
	Autoboot = AutobootTracer{}
	Boot     = BootTracer{}
	Prompt   = PromptTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit() {
	logging.Trace("app.exit", nil)
}

func (MenuTracer) Draw(menuID string, visible int) {
	logging.Trace("menu.draw", map[string]interface{}{"menu": menuID, "visible": visible})
}

func (MenuTracer) Select(menuID, keyName, label string) {
	logging.Trace("menu.select", map[string]interface{}{
		"menu":  menuID,
		"key":   keyName,
		"label": label,
	})
}

func (MenuTracer) Ignore(menuID, keyName string) {
	logging.Trace("menu.ignore", map[string]interface{}{"menu": menuID, "key": keyName})
}

func (MenuTracer) Enter(menuID string) {
	logging.Trace("menu.enter", map[string]interface{}{"menu": menuID})
}

func (MenuTracer) Exit(menuID string) {
	logging.Trace("menu.exit", map[string]interface{}{"menu": menuID})
}

func (MenuTracer) Carousel(id string, index int, choice string) {
	logging.Trace("menu.carousel", map[string]interface{}{
		"carousel": id,
		"index":    index,
		"choice":   choice,
	})
}

func (AutobootTracer) Start(seconds int) {
	logging.Trace("autoboot.start", map[string]interface{}{"seconds": seconds})
}

func (AutobootTracer) Disabled() {
	logging.Trace("autoboot.disabled", nil)
}

func (AutobootTracer) Cancelled(keyName string) {
	logging.Trace("autoboot.cancel", map[string]interface{}{"key": keyName})
}

func (AutobootTracer) Expired() {
	logging.Trace("autoboot.expire", nil)
}

func (BootTracer) Request(kernel string, args []string) {
	logging.Trace("boot.request", map[string]interface{}{"kernel": kernel, "args": args})
}

func (BootTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("boot.failed", map[string]interface{}{"error": err.Error()})
}

func (BootTracer) Reboot() {
	logging.Trace("boot.reboot", nil)
}

func (BootTracer) Flag(name string, on bool) {
	logging.Trace("boot.flag", map[string]interface{}{"flag": name, "on": on})
}

func (BootTracer) Defaults() {
	logging.Trace("boot.defaults", nil)
}

func (BootTracer) Bootenv(name string) {
	logging.Trace("boot.bootenv", map[string]interface{}{"bootenv": name})
}

func (PromptTracer) Command(line string) {
	logging.Trace("prompt.command", map[string]interface{}{"line": line})
}

func (PromptTracer) Unknown(word, suggestion string) {
	logging.Trace("prompt.unknown", map[string]interface{}{
		"word":       word,
		"suggestion": suggestion,
	})
}
