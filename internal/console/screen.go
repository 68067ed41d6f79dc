package console

import (
	"fmt"
	"strings"
	"sync"

	"github.com/halfspin/bootmenu/internal/menu"
	"github.com/halfspin/bootmenu/internal/theme"
)

var styles = theme.Default()

// Frame is one fully composed screen image.
type Frame struct {
	Content string
}

// Sink receives composed frames; the TUI front-end displays them.
type Sink func(Frame)

// Screen builds frames from menu definitions and countdown state. Rendering
// a definition also produces the fresh alias table for that draw.
//
// The engine calls in from its own goroutine while the front-end resizes
// from the program loop, hence the mutex.
type Screen struct {
	mu         sync.Mutex
	width      int
	height     int
	showFooter bool
	carousels  *menu.CarouselStore
	sink       Sink

	title     string
	body      []styledLine
	countdown string
	notice    string
	// statusRow is the fixed row (relative to the body top) where the
	// countdown and notices appear; < 0 means directly under the body.
	statusRow int
}

// NewScreen builds a screen. Width/height of 0 mean "whatever the terminal
// gives us"; the front-end updates them on resize.
func NewScreen(width, height int, showFooter bool, carousels *menu.CarouselStore) *Screen {
	return &Screen{
		width:      width,
		height:     height,
		showFooter: showFooter,
		carousels:  carousels,
		statusRow:  -1,
	}
}

// SetSink installs the frame consumer. Frames composed before a sink exists
// are dropped; the next draw resends everything anyway.
func (s *Screen) SetSink(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
}

// Resize updates the target frame dimensions and recomposes.
func (s *Screen) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
	s.flushLocked()
}

// Render composes a frame for the definition's visible entries and returns
// the alias table produced by this draw.
func (s *Screen) Render(def *menu.Definition, visible []*menu.Entry) menu.AliasTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = def.Title
	s.body = s.body[:0]
	for _, e := range visible {
		s.body = append(s.body, s.entryLine(e))
	}
	s.flushLocked()
	return menu.BuildAliases(visible)
}

func (s *Screen) entryLine(e *menu.Entry) styledLine {
	label := menu.DisplayLabel(e, s.carousels)
	if !e.Selectable() {
		return styledLine{text: label, style: styles.Separator}
	}
	prefix := "   "
	if len(e.Aliases) > 0 {
		prefix = fmt.Sprintf("%c. ", e.Aliases[0])
	}
	return styledLine{
		text:        prefix + label,
		style:       styles.Item,
		prefixStyle: styles.Alias,
		prefixLen:   len(prefix),
	}
}

// Countdown shows the remaining-seconds message on the status row.
func (s *Screen) Countdown(seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countdown = fmt.Sprintf("Autoboot in %d second(s). Press any key to interrupt.", seconds)
	s.flushLocked()
}

// ClearCountdown erases the countdown message.
func (s *Screen) ClearCountdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countdown = ""
	s.flushLocked()
}

// Notice shows a status message (boot failures) on the status row until the
// next notice replaces it.
func (s *Screen) Notice(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = text
	s.flushLocked()
}

// ClearScreen drops all composed content.
func (s *Screen) ClearScreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = ""
	s.body = s.body[:0]
	s.countdown = ""
	s.notice = ""
	s.flushLocked()
}

// SetCursor pins the status row used for the countdown and notices. x is
// accepted for interface compatibility; frames are whole-line composed.
func (s *Screen) SetCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusRow = y
}

// ResetCursor releases the pinned status row and emits a final frame.
func (s *Screen) ResetCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusRow = -1
	s.flushLocked()
}

// flushLocked composes the current frame and hands it to the sink. Callers
// hold s.mu.
func (s *Screen) flushLocked() {
	if s.sink == nil {
		return
	}
	lines := make([]styledLine, 0, len(s.body)+6)
	if s.title != "" {
		lines = append(lines, styledLine{text: s.title, style: styles.Header})
		lines = append(lines, styledLine{})
	}
	lines = append(lines, s.body...)

	status := styledLine{}
	if s.notice != "" {
		status = styledLine{text: s.notice, style: styles.Notice}
	}
	if s.countdown != "" {
		status = styledLine{text: s.countdown, style: styles.Countdown}
	}
	statusAt := s.statusRow
	if statusAt < 0 || statusAt <= len(lines) {
		lines = append(lines, styledLine{}, status)
	} else {
		for len(lines) < statusAt {
			lines = append(lines, styledLine{})
		}
		lines = append(lines, status)
	}

	if s.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{
			text:  "type a highlighted key to select  enter boot  backspace back",
			style: styles.Footer,
		})
	}
	if s.height > 0 {
		lines = limitHeight(lines, s.height)
	}
	if s.width > 0 {
		lines = applyWidth(lines, s.width)
	}
	s.sink(Frame{Content: renderLines(lines)})
}

// renderLines turns styled lines into the final frame string.
func renderLines(lines []styledLine) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = line.render()
	}
	return strings.Join(rendered, "\n")
}
