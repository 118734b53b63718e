package buffer

import (
	"strings"
	"unicode"

	"github.com/inkwell-text/inkwell/inline"
)

// SegmentKind tags a render segment.
type SegmentKind uint8

const (
	SegmentText SegmentKind = iota
	SegmentEmbed
)

// Segment is one element of the render boundary: a run of plain text or a
// reference to a live embed. The core only knows how to segment; drawing
// belongs to the host renderer.
type Segment struct {
	Kind SegmentKind

	// Text is the plain run. Empty for embed segments.
	Text string

	// ID and Embed identify a live embed. Zero values for text runs.
	ID    rune
	Embed inline.Embed
}

// Segments projects the buffer into renderer input. Dangling placeholders
// (id in the text with no live store entry) produce no segment.
func (b *Buffer) Segments() []Segment {
	var out []Segment
	var run []rune

	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, Segment{Kind: SegmentText, Text: string(run)})
		run = nil
	}

	for _, r := range b.text {
		if !inline.IsPlaceholder(r) {
			run = append(run, r)
			continue
		}
		flush()
		e, ok := b.store.Get(r)
		if !ok {
			continue
		}
		out = append(out, Segment{Kind: SegmentEmbed, ID: r, Embed: e})
	}
	flush()
	return out
}

// PlainText projects the buffer to plain text. A placeholder with a live
// embed contributes its Display string, padded with a single space on any
// side whose neighbor is not already whitespace, so inserted display text
// never merges into surrounding words ("hi@userbye" -> "hi @user bye").
// Displayless and dangling placeholders are dropped silently.
func (b *Buffer) PlainText() string {
	return b.projectText(b.text, func(e inline.Embed) (string, bool) {
		return e.Display, true
	})
}

// PlainTextRange projects the subrange [start, end) the same way PlainText
// does. Offsets are clamped. Hosts use this to copy a selection without
// leaking raw placeholder runes.
func (b *Buffer) PlainTextRange(start, end int) string {
	start = clampInt(start, 0, len(b.text))
	end = clampInt(end, 0, len(b.text))
	if end < start {
		start, end = end, start
	}
	return b.projectText(b.text[start:end], func(e inline.Embed) (string, bool) {
		return e.Display, true
	})
}

// MarkupText is PlainText with trigger-originated embeds written through
// their trigger's markup function instead of the generic Display string.
// Markup output is taken verbatim, without whitespace padding; it is a
// serialization form, not display text.
func (b *Buffer) MarkupText() string {
	return b.projectText(b.text, func(e inline.Embed) (string, bool) {
		if e.Origin != 0 {
			if tr, ok := b.reg.Get(e.Origin); ok && tr.Markup != nil {
				return tr.Markup(e.Value), false
			}
		}
		return e.Display, true
	})
}

// projectText walks text substituting placeholders via sub, which returns
// the substitute and whether it takes whitespace padding.
func (b *Buffer) projectText(text []rune, sub func(inline.Embed) (string, bool)) string {
	var sb strings.Builder
	lastOut := rune(0)

	write := func(s string) {
		if s == "" {
			return
		}
		sb.WriteString(s)
		rs := []rune(s)
		lastOut = rs[len(rs)-1]
	}

	for i, r := range text {
		if !inline.IsPlaceholder(r) {
			write(string(r))
			continue
		}

		e, ok := b.store.Get(r)
		if !ok {
			continue
		}
		subText, pad := sub(e)
		if subText == "" {
			continue
		}

		if pad && lastOut != 0 && !unicode.IsSpace(lastOut) {
			write(" ")
		}
		write(subText)
		if pad && i+1 < len(text) {
			next := text[i+1]
			if !unicode.IsSpace(next) && !inline.IsPlaceholder(next) {
				write(" ")
			}
		}
	}
	return sb.String()
}
