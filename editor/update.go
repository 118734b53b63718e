package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events insert literal text and never hit shortcuts or triggers.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(sanitizePaste(string(msg.Runes)))
		m.syncFromBuffer()
		return m, nil
	}

	if m.popup.visible {
		pk := m.cfg.PopupKeyMap
		switch {
		case key.Matches(msg, pk.Next):
			m.popup.moveSelection(1)
			return m, nil
		case key.Matches(msg, pk.Prev):
			m.popup.moveSelection(-1)
			return m, nil
		case key.Matches(msg, pk.Accept):
			m.acceptSuggestion()
			m.syncFromBuffer()
			return m, nil
		case key.Matches(msg, pk.Dismiss):
			m.popup = popupState{}
			return m, nil
		}
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.moveCaret(-1)
	case key.Matches(msg, km.Right):
		m.moveCaret(1)
	case key.Matches(msg, km.Home):
		m.buf.SetSelection(0, 0)
	case key.Matches(msg, km.End):
		m.buf.ClearSelection()

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insertRunes(msg.Runes)
		}
	}

	m.syncFromBuffer()
	return m, nil
}

// insertRunes routes registered trigger characters through the buffer's
// boundary-aware insertion so a trigger typed mid-word still opens a match.
func (m *Model) insertRunes(runes []rune) {
	for _, r := range runes {
		if m.buf.Registry().Contains(r) {
			m.buf.InsertTriggerChar(r)
			continue
		}
		m.buf.InsertRune(r)
	}
}

func (m *Model) moveCaret(delta int) {
	caret := m.buf.Caret() + delta
	if caret < 0 {
		caret = 0
	}
	if caret > m.buf.Len() {
		caret = m.buf.Len()
	}
	m.buf.SetSelection(caret, caret)
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectionPlainText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.selectionPlainText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	m.buf.DeleteSelection()
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(sanitizePaste(s))
}

// selectionPlainText projects the selected range to plain text, so copied
// embeds leave as their display strings rather than raw placeholders.
func (m *Model) selectionPlainText() string {
	start, end, ok := m.buf.Selection()
	if !ok || start == end {
		return ""
	}
	return m.buf.PlainTextRange(start, end)
}

func sanitizePaste(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
