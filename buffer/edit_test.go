package buffer

import (
	"testing"

	"github.com/inkwell-text/inkwell/inline"
)

func TestBuffer_ReplaceRange_SplicesAndCollapsesCaret(t *testing.T) {
	b := New("hello world", Options{})

	b.ReplaceRange(6, 11, "there")
	if got, want := b.Text(), "hello there"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	start, end, ok := b.Selection()
	if !ok || start != 11 || end != 11 {
		t.Fatalf("selection=[%d,%d) ok=%v, want collapsed at 11", start, end, ok)
	}
}

func TestBuffer_ReplaceRange_ClampsMalformedBounds(t *testing.T) {
	b := New("abc", Options{})

	// Reversed and out-of-bounds offsets clamp instead of raising.
	b.ReplaceRange(99, 1, "X")
	if got, want := b.Text(), "aX"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// A negative bound means invalid: operate at the end of the text.
	b.ReplaceRange(-5, 1, "Y")
	if got, want := b.Text(), "aXY"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Caret(), 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(1, 4) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Caret(), 2; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := New("abc", Options{})

	// Sentinel caret is at the end.
	b.DeleteBackward()
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.SetSelection(0, 0)
	b.DeleteBackward() // at start of text: no-op
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.SetSelection(0, 2)
	b.DeleteBackward() // active selection deletes the selection
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	b := New("abc", Options{})

	b.SetSelection(0, 0)
	b.DeleteForward()
	if got, want := b.Text(), "bc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.SetSelection(2, 2)
	b.DeleteForward() // at end: no-op
	if got, want := b.Text(), "bc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_InsertTriggerChar_WordBoundarySpace(t *testing.T) {
	triggers := []inline.Trigger{{Char: '@'}}

	b := New("hi", Options{Triggers: triggers})
	b.InsertTriggerChar('@')
	if got, want := b.Text(), "hi @"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// After whitespace no extra space goes in.
	b2 := New("hi ", Options{Triggers: triggers})
	b2.InsertTriggerChar('@')
	if got, want := b2.Text(), "hi @"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// At the start of text no space goes in.
	b3 := New("", Options{Triggers: triggers})
	b3.InsertTriggerChar('@')
	if got, want := b3.Text(), "@"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// After punctuation (non-word) no space goes in.
	b4 := New("(", Options{Triggers: triggers})
	b4.InsertTriggerChar('@')
	if got, want := b4.Text(), "(@"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_InsertRune(t *testing.T) {
	b := New("ac", Options{})
	b.SetSelection(1, 1)
	b.InsertRune('b')
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
