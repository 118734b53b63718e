package buffer

import (
	"testing"

	"github.com/inkwell-text/inkwell/inline"
)

// FuzzBuffer_MutationSequences drives random edit sequences through the
// choke point and checks the placeholder invariants: live identifiers stay
// unique between clears, offsets always clamp instead of panicking, and the
// selection stays inside the text.
func FuzzBuffer_MutationSequences(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("hi @bob"),
		[]byte("email@domain then hi @"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		b := New("", Options{Triggers: []inline.Trigger{{Char: '@'}}})

		for i := 0; i+2 < len(data); i += 3 {
			op := data[i] % 6
			p := int(data[i+1])
			q := int(data[i+2])

			switch op {
			case 0:
				b.ReplaceRange(p-64, q-64, string(rune('a'+q%26)))
			case 1:
				b.InsertText(string(rune('a'+p%26)) + " ")
			case 2:
				b.SetSelection(p-64, q-64)
			case 3:
				b.InsertEmbed(inline.Embed{Display: "e"})
			case 4:
				b.DeleteBackward()
			case 5:
				b.InsertTriggered('@', p, InsertOptions{RemovePrefixMatch: p%2 == 0})
			}

			assertFuzzInvariants(t, b)
		}

		b.Clear()
		assertFuzzInvariants(t, b)
	})
}

func assertFuzzInvariants(t *testing.T, b *Buffer) {
	t.Helper()

	seen := map[rune]bool{}
	for _, r := range b.Runes() {
		if !inline.IsPlaceholder(r) {
			continue
		}
		if seen[r] {
			t.Fatalf("duplicate live placeholder %U in %q", r, b.Text())
		}
		seen[r] = true
	}

	if start, end, ok := b.Selection(); ok {
		if start < 0 || end < start || end > b.Len() {
			t.Fatalf("selection [%d,%d) out of bounds for len %d", start, end, b.Len())
		}
	}
	if c := b.Caret(); c < 0 || c > b.Len() {
		t.Fatalf("caret %d out of bounds for len %d", c, b.Len())
	}

	// Projection must never see a raw placeholder.
	for _, r := range b.PlainText() {
		if inline.IsPlaceholder(r) {
			t.Fatalf("raw placeholder %U leaked into plain text", r)
		}
	}
}
