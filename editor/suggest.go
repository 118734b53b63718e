package editor

import "github.com/inkwell-text/inkwell/buffer"

// Suggestion is one row of the suggestion popup.
type Suggestion struct {
	// Value is inserted through the trigger on accept.
	Value any

	// Display is the chip/plain-text form recorded on the embed.
	Display string

	// Detail is optional secondary text shown dimmed in the popup.
	Detail string
}

// SuggestFunc supplies popup rows for the in-progress keyword. It runs
// synchronously inside Update; hosts doing slow lookups should return
// cached rows and refresh via their own messages.
type SuggestFunc func(trigger rune, keyword string) []Suggestion

type popupState struct {
	visible  bool
	trigger  rune
	keyword  string
	items    []Suggestion
	selected int
}

func (p *popupState) moveSelection(delta int) {
	if len(p.items) == 0 {
		p.selected = 0
		return
	}
	next := p.selected + delta
	if next < 0 {
		next = len(p.items) - 1
	}
	if next >= len(p.items) {
		next = 0
	}
	p.selected = next
}

// refreshPopup re-queries suggestions from the buffer's active match.
func (m *Model) refreshPopup() {
	if m.cfg.Suggest == nil || m.buf == nil {
		m.popup = popupState{}
		return
	}

	am, ok := m.buf.ActiveMatch()
	if !ok {
		m.popup = popupState{}
		return
	}

	items := m.cfg.Suggest(am.Trigger, am.Keyword)
	if len(items) == 0 {
		m.popup = popupState{}
		return
	}

	selected := 0
	if m.popup.visible && m.popup.trigger == am.Trigger && m.popup.selected < len(items) {
		// Keep the highlighted row stable while the keyword narrows.
		selected = m.popup.selected
	}
	m.popup = popupState{
		visible:  true,
		trigger:  am.Trigger,
		keyword:  am.Keyword,
		items:    items,
		selected: selected,
	}
}

// acceptSuggestion inserts the highlighted row through the active trigger,
// replacing the typed trigger+keyword prefix.
func (m *Model) acceptSuggestion() {
	if !m.popup.visible || m.buf == nil {
		return
	}
	if m.popup.selected < 0 || m.popup.selected >= len(m.popup.items) {
		return
	}
	item := m.popup.items[m.popup.selected]

	m.buf.InsertTriggered(m.popup.trigger, item.Value, buffer.InsertOptions{
		Display:           item.Display,
		RemovePrefixMatch: true,
	})
	m.popup = popupState{}
}
