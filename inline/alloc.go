package inline

import "fmt"

// Placeholder identifiers are drawn from the BMP private use area.
const (
	PlaceholderBase rune = 0xE000
	PlaceholderMax  rune = 0xF8FF
)

// Allocator issues placeholder identifiers, monotonically, one per call.
//
// An Allocator belongs to exactly one buffer instance; never share one
// across buffers, or identifiers stop being unique within each text.
type Allocator struct {
	next rune
}

func NewAllocator() *Allocator {
	return &Allocator{next: PlaceholderBase}
}

// Next returns a fresh placeholder identifier. Identifiers are strictly
// increasing between resets.
//
// Next panics when the private use area is exhausted. A single editing
// session inserting that many embeds is misuse, not a recoverable state,
// and wrapping silently would collide with live identifiers.
func (a *Allocator) Next() rune {
	if a.next > PlaceholderMax {
		panic(fmt.Sprintf("inline: placeholder space exhausted (%d identifiers issued)", int(PlaceholderMax-PlaceholderBase)+1))
	}
	id := a.next
	a.next++
	return id
}

// Reset returns the counter to the base value. Previously issued identifiers
// may be issued again; callers must have discarded the text that used them.
func (a *Allocator) Reset() {
	a.next = PlaceholderBase
}

// IsPlaceholder reports whether r falls in the placeholder range.
func IsPlaceholder(r rune) bool {
	return r >= PlaceholderBase && r <= PlaceholderMax
}
