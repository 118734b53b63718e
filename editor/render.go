package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-text/inkwell/inline"
	graphemeutil "github.com/inkwell-text/inkwell/internal/grapheme"
)

// displayToken is one visual unit of the field: a single buffer rune, or
// the chip text an embed placeholder expands to.
type displayToken struct {
	index int    // rune offset in the buffer
	text  string // visual form; "" for dangling placeholders
	embed bool
}

// displayLines maps the buffer into renderable lines of tokens, splitting
// on newline runes. Dangling placeholders produce empty tokens so the
// caret math stays aligned with buffer offsets.
func (m *Model) displayLines() [][]displayToken {
	runes := m.buf.Runes()
	store := m.buf.Store()

	lines := [][]displayToken{nil}
	for i, r := range runes {
		if r == '\n' {
			lines = append(lines, nil)
			continue
		}
		tok := displayToken{index: i, text: string(r)}
		if inline.IsPlaceholder(r) {
			e, ok := store.Get(r)
			if ok {
				tok.text = e.Visual()
				tok.embed = true
			} else {
				tok.text = ""
			}
		}
		last := len(lines) - 1
		lines[last] = append(lines[last], tok)
	}
	return lines
}

func (m *Model) renderContent() string {
	if m.buf.Len() == 0 {
		return m.renderEmpty()
	}

	st := m.cfg.Style
	caret := m.buf.Caret()
	selStart, selEnd, hasSel := m.buf.Selection()
	compStart, compEnd, hasComp := m.buf.Composition()

	styleFor := func(tok displayToken) lipgloss.Style {
		switch {
		case m.focused && tok.index == caret:
			return st.Cursor
		case hasSel && tok.index >= selStart && tok.index < selEnd && selStart != selEnd:
			return st.Selection
		case hasComp && tok.index >= compStart && tok.index < compEnd:
			return st.Composition.Inherit(st.Text)
		case tok.embed:
			return st.Embed.Inherit(st.Text)
		default:
			return st.Text
		}
	}

	lines := m.displayLines()
	out := make([]string, 0, len(lines))
	caretRendered := false
	for _, line := range lines {
		var sb strings.Builder
		for _, tok := range line {
			if tok.text == "" {
				continue
			}
			if tok.index == caret {
				caretRendered = true
			}
			sb.WriteString(styleFor(tok).Render(tok.text))
		}
		out = append(out, sb.String())
	}

	// Caret at end of text (or on a newline) renders as a 1-cell space.
	if m.focused && !caretRendered {
		row := m.caretRow()
		if row >= 0 && row < len(out) {
			out[row] += st.Cursor.Render(" ")
		}
	}

	return strings.Join(out, "\n")
}

func (m *Model) renderEmpty() string {
	st := m.cfg.Style
	var sb strings.Builder
	if m.focused {
		sb.WriteString(st.Cursor.Render(" "))
	}
	if m.cfg.Placeholder != "" {
		sb.WriteString(st.Placeholder.Render(m.cfg.Placeholder))
	}
	return sb.String()
}

// caretRow returns the display row the caret sits on.
func (m *Model) caretRow() int {
	caret := m.buf.Caret()
	row := 0
	for i, r := range m.buf.Runes() {
		if i >= caret {
			break
		}
		if r == '\n' {
			row++
		}
	}
	return row
}

// caretScreenPos returns the caret's (cell column, row) in the rendered
// content, accounting for embed chips being wider than one rune.
func (m *Model) caretScreenPos() (x, y int) {
	caret := m.buf.Caret()
	y = m.caretRow()

	lines := m.displayLines()
	if y >= len(lines) {
		return 0, len(lines) - 1
	}
	for _, tok := range lines[y] {
		if tok.index >= caret {
			break
		}
		x += graphemeutil.Width(tok.text)
	}
	return x, y
}
