package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// styledLine is one frame row: plain text plus the styles to apply when
// rendering. prefixLen marks how many leading bytes take prefixStyle (the
// alias hint of a menu entry).
type styledLine struct {
	text        string
	style       *lipgloss.Style
	prefixStyle *lipgloss.Style
	prefixLen   int
}

func (l styledLine) render() string {
	if l.text == "" {
		return ""
	}
	if l.prefixStyle != nil && l.prefixLen > 0 && l.prefixLen <= len(l.text) {
		prefix := l.prefixStyle.Render(l.text[:l.prefixLen])
		rest := l.text[l.prefixLen:]
		if l.style != nil {
			rest = l.style.Render(rest)
		}
		return prefix + rest
	}
	if l.style != nil {
		return l.style.Render(l.text)
	}
	return l.text
}

// applyWidth truncates each line to the frame width. Truncation happens on
// the raw text before styling, so the ANSI-aware fallback is only needed for
// the ellipsis tail.
func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	for i, line := range lines {
		if len([]rune(line.text)) > width {
			lines[i].text = truncate.StringWithTail(line.text, uint(width), "…")
			if lines[i].prefixLen > len(lines[i].text) {
				lines[i].prefixLen = 0
				lines[i].prefixStyle = nil
			}
		}
	}
	return lines
}

// limitHeight keeps at most height rows, dropping from the top so the
// status and footer rows survive.
func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[len(lines)-height:]
}
