package buffer

import (
	"github.com/inkwell-text/inkwell/inline"
	"github.com/inkwell-text/inkwell/match"
)

// InsertOptions controls triggered insertion. The zero value gives the
// documented defaults: keep the typed prefix, append a trailing space.
type InsertOptions struct {
	// Display is the plain-text substitute recorded on the embed.
	Display string

	// RemovePrefixMatch extends a collapsed selection backward over the
	// most recent occurrence of the trigger character, deleting the
	// partially typed trigger+keyword the placeholder replaces.
	RemovePrefixMatch bool

	// NoSuffixSpace suppresses the trailing space that normally follows
	// the placeholder. The space guarantees a word boundary after the
	// embed so the next keystroke cannot be scanned as a keyword
	// extension.
	NoSuffixSpace bool
}

// ReplaceRange splices repl into [start, end) and collapses the caret
// immediately after the inserted text. Out-of-bounds offsets are clamped;
// a negative bound means the range is invalid and the edit applies at the
// end of the text. This is the single choke point all mutation flows
// through.
func (b *Buffer) ReplaceRange(start, end int, repl string) {
	b.replaceRange(start, end, []rune(repl))
}

// InsertText inserts s at the caret, replacing the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" && b.selStart < 0 {
		return
	}
	start, end := b.resolveSelection()
	b.replaceRange(start, end, []rune(s))
}

// InsertRune inserts a single rune at the caret.
func (b *Buffer) InsertRune(r rune) {
	start, end := b.resolveSelection()
	b.replaceRange(start, end, []rune{r})
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	start, end := b.resolveSelection()
	if start != end {
		b.replaceRange(start, end, nil)
		return
	}
	if start == 0 {
		return
	}
	b.replaceRange(start-1, start, nil)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	start, end := b.resolveSelection()
	if start != end {
		b.replaceRange(start, end, nil)
		return
	}
	if start >= len(b.text) {
		return
	}
	b.replaceRange(start, start+1, nil)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	start, end := b.resolveSelection()
	if start == end {
		return
	}
	b.replaceRange(start, end, nil)
}

// InsertEmbed allocates a placeholder for e, records it, and replaces the
// current selection with the placeholder rune. The new identifier is
// returned so callers can post-process (bring into view, remember the id).
func (b *Buffer) InsertEmbed(e inline.Embed) rune {
	id := b.alloc.Next()
	b.store.Put(id, e)

	start, end := b.resolveSelection()
	b.replaceRange(start, end, []rune{id})
	return id
}

// InsertTriggered inserts value as an embed bound to the trigger registered
// for char. An unregistered char is a deliberate no-op, not an error:
// callers may race with trigger setup and the permissive contract keeps
// them robust.
//
// The caret ends up immediately after the inserted content, trailing space
// included.
func (b *Buffer) InsertTriggered(char rune, value any, opts InsertOptions) (rune, bool) {
	tr, ok := b.reg.Get(char)
	if !ok {
		return 0, false
	}

	start, end := b.resolveSelection()
	if opts.RemovePrefixMatch && start == end {
		if idx := b.prefixMatchStart(char, start); idx >= 0 {
			start = idx
		}
	}

	id := b.alloc.Next()
	b.store.Put(id, inline.Embed{
		Value:   value,
		Render:  tr.Render,
		Display: opts.Display,
		Origin:  char,
	})

	repl := []rune{id}
	if !opts.NoSuffixSpace {
		repl = append(repl, ' ')
	}
	b.replaceRange(start, end, repl)
	return id, true
}

// InsertTriggerChar inserts the bare trigger character at the caret. When
// the rune immediately before the caret is a word character, a single
// leading space goes in first so the trigger always starts at a word
// boundary the scanner can accept.
func (b *Buffer) InsertTriggerChar(char rune) {
	start, end := b.resolveSelection()

	repl := []rune{char}
	if start > 0 && match.IsWordRune(b.text[start-1]) {
		repl = []rune{' ', char}
	}
	b.replaceRange(start, end, repl)
}

// prefixMatchStart finds the most recent occurrence of char before caret,
// bounded by the scan window so insertion never deletes text the scanner
// could not have matched. Returns -1 when not found.
func (b *Buffer) prefixMatchStart(char rune, caret int) int {
	limit := caret - b.opt.MaxMatchLength
	if limit < 0 {
		limit = 0
	}
	for i := caret - 1; i >= limit; i-- {
		if b.text[i] == char {
			return i
		}
	}
	return -1
}

// replaceRange is the mutation choke point: it clamps, splices, collapses
// the caret after the insertion, bumps the version, records the change,
// and re-runs the trigger scan.
func (b *Buffer) replaceRange(start, end int, repl []rune) {
	if start < 0 || end < 0 {
		start, end = len(b.text), len(b.text)
	}
	start = clampInt(start, 0, len(b.text))
	end = clampInt(end, 0, len(b.text))
	if end < start {
		start, end = end, start
	}

	deleted := string(b.text[start:end])
	if deleted == string(repl) {
		// No text change; still collapse the caret after the range so
		// repeated insertions stay predictable.
		b.SetSelection(start+len(repl), start+len(repl))
		return
	}

	change := b.beginChange()

	out := make([]rune, 0, len(b.text)-(end-start)+len(repl))
	out = append(out, b.text[:start]...)
	out = append(out, repl...)
	out = append(out, b.text[end:]...)
	b.text = out

	caret := start + len(repl)
	b.selStart, b.selEnd = caret, caret
	if b.compStart >= 0 {
		b.compStart = clampInt(b.compStart, 0, len(b.text))
		b.compEnd = clampInt(b.compEnd, 0, len(b.text))
	}

	b.version++
	b.commitChange(change, start, string(repl), deleted)
	b.rescan()
}
