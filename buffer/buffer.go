package buffer

import (
	"github.com/inkwell-text/inkwell/inline"
	"github.com/inkwell-text/inkwell/match"
)

// Options configures a Buffer. The zero value is usable.
type Options struct {
	// Triggers is the trigger table, registered once for the buffer's
	// lifetime. Duplicate characters: last wins.
	Triggers []inline.Trigger

	// MaxMatchLength caps the backward trigger scan window; <= 0 means
	// match.DefaultMaxLength.
	MaxMatchLength int

	// OnFinish fires exactly once each time keyword matching ends.
	OnFinish func()
}

// Buffer is the mutable text model: rune text with embedded placeholders,
// a selection range, and an IME composition span.
//
// A Buffer is single-owner and synchronous; hosts driving one from several
// goroutines must serialize access externally.
type Buffer struct {
	text    []rune
	version uint64

	selStart, selEnd   int // -1 sentinel: caret logically at end
	compStart, compEnd int // -1 when no composition is active

	alloc   *inline.Allocator
	store   *inline.Store
	reg     *inline.Registry
	session *match.Session

	lastChange    Change
	hasLastChange bool

	opt Options
}

func New(text string, opt Options) *Buffer {
	if opt.MaxMatchLength <= 0 {
		opt.MaxMatchLength = match.DefaultMaxLength
	}

	reg := inline.NewRegistry(opt.Triggers...)
	b := &Buffer{
		text:      []rune(text),
		selStart:  -1,
		selEnd:    -1,
		compStart: -1,
		compEnd:   -1,
		alloc:     inline.NewAllocator(),
		store:     inline.NewStore(),
		reg:       reg,
		opt:       opt,
	}
	b.session = match.NewSession(reg, match.SessionOptions{
		MaxMatchLength: opt.MaxMatchLength,
		OnFinish:       opt.OnFinish,
	})
	return b
}

func (b *Buffer) Text() string { return string(b.text) }

// Runes returns a copy of the raw text, placeholders included.
func (b *Buffer) Runes() []rune {
	return append([]rune(nil), b.text...)
}

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

// Registry returns the read-only trigger table.
func (b *Buffer) Registry() *inline.Registry { return b.reg }

// Store returns the embed store. Hosts may read it for rendering; writes
// belong to the buffer's insertion operations.
func (b *Buffer) Store() *inline.Store { return b.store }

// Caret returns the collapsed caret offset: the selection start, or the end
// of the text under the -1 sentinel.
func (b *Buffer) Caret() int {
	if b.selStart < 0 {
		return len(b.text)
	}
	return b.selStart
}

// Selection returns the selection range. ok is false under the sentinel,
// meaning no active selection with the caret logically at the end.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if b.selStart < 0 {
		return 0, 0, false
	}
	return b.selStart, b.selEnd, true
}

// SetSelection sets the selection to [start, end), clamped to the text.
// Any negative bound restores the sentinel. Matching is re-evaluated at the
// new caret.
func (b *Buffer) SetSelection(start, end int) {
	nextStart, nextEnd := -1, -1
	if start >= 0 && end >= 0 {
		nextStart = clampInt(start, 0, len(b.text))
		nextEnd = clampInt(end, 0, len(b.text))
		if nextEnd < nextStart {
			nextStart, nextEnd = nextEnd, nextStart
		}
	}

	if nextStart == b.selStart && nextEnd == b.selEnd {
		return
	}
	b.selStart, b.selEnd = nextStart, nextEnd
	b.version++
	b.rescan()
}

// ClearSelection restores the sentinel: caret logically at end.
func (b *Buffer) ClearSelection() {
	b.SetSelection(-1, -1)
}

// Composition returns the IME composing span, if one is active. The span is
// an opaque pass-through for the host's input method plumbing.
func (b *Buffer) Composition() (start, end int, ok bool) {
	if b.compStart < 0 {
		return 0, 0, false
	}
	return b.compStart, b.compEnd, true
}

// SetComposition sets the composing span, clamped to the text. Any negative
// bound clears it.
func (b *Buffer) SetComposition(start, end int) {
	nextStart, nextEnd := -1, -1
	if start >= 0 && end >= 0 {
		nextStart = clampInt(start, 0, len(b.text))
		nextEnd = clampInt(end, 0, len(b.text))
		if nextEnd < nextStart {
			nextStart, nextEnd = nextEnd, nextStart
		}
	}
	if nextStart == b.compStart && nextEnd == b.compEnd {
		return
	}
	b.compStart, b.compEnd = nextStart, nextEnd
	b.version++
}

func (b *Buffer) ClearComposition() {
	b.SetComposition(-1, -1)
}

// ActiveMatch returns the in-progress trigger match, if any.
func (b *Buffer) ActiveMatch() (match.Match, bool) {
	return b.session.Active()
}

// Matching reports whether a trigger match is in progress.
func (b *Buffer) Matching() bool {
	_, ok := b.session.Active()
	return ok
}

// Clear empties the text, restores the selection sentinel, resets the
// placeholder allocator, and discards all stored embeds. Stale embeds would
// be unreachable anyway once the text is gone; dropping them keeps the
// store from growing across sessions.
func (b *Buffer) Clear() {
	deleted := string(b.text)
	if deleted == "" && b.selStart < 0 && b.compStart < 0 && b.store.Len() == 0 {
		b.alloc.Reset()
		return
	}

	change := b.beginChange()
	b.text = nil
	b.selStart, b.selEnd = -1, -1
	b.compStart, b.compEnd = -1, -1
	b.alloc.Reset()
	b.store.Clear()
	b.session.Reset()
	b.version++
	b.commitChange(change, 0, "", deleted)
}

// rescan re-evaluates trigger matching at the current caret. Runs after
// every mutation and selection move, synchronously; listener callbacks fire
// before the mutating call returns.
func (b *Buffer) rescan() {
	b.session.Update(b.text, b.Caret())
}

// resolveSelection maps the selection to concrete, in-bounds offsets. The
// sentinel resolves to a collapsed caret at the end of the text.
func (b *Buffer) resolveSelection() (start, end int) {
	if b.selStart < 0 {
		return len(b.text), len(b.text)
	}
	start = clampInt(b.selStart, 0, len(b.text))
	end = clampInt(b.selEnd, 0, len(b.text))
	if end < start {
		start, end = end, start
	}
	return start, end
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
