package buffer

import (
	"strings"
	"testing"

	"github.com/inkwell-text/inkwell/inline"
)

func TestBuffer_PlainText_NoEmbedsIsIdentity(t *testing.T) {
	for _, text := range []string{"", "hello world", "tabs\tand\nnewlines", "héllo é"} {
		b := New(text, Options{})
		if got := b.PlainText(); got != text {
			t.Fatalf("PlainText(%q)=%q, want identity", text, got)
		}
	}
}

func TestBuffer_PlainText_SubstitutesDisplay(t *testing.T) {
	b := New("hi ", Options{})
	id := b.InsertEmbed(inline.Embed{Display: "@user"})
	b.InsertText("bye")

	got := b.PlainText()
	if !strings.Contains(got, "@user") {
		t.Fatalf("plain=%q, want %q substituted", got, "@user")
	}
	if strings.ContainsRune(got, id) {
		t.Fatalf("plain=%q still contains raw placeholder %U", got, id)
	}
	// Padding keeps the display from merging into the following word.
	if got != "hi @user bye" {
		t.Fatalf("plain=%q, want %q", got, "hi @user bye")
	}
}

func TestBuffer_PlainText_PadsBothSides(t *testing.T) {
	b := New("hi", Options{})
	b.InsertEmbed(inline.Embed{Display: "@user"})
	b.InsertText("bye")

	if got, want := b.PlainText(), "hi @user bye"; got != want {
		t.Fatalf("plain=%q, want %q", got, want)
	}
}

func TestBuffer_PlainText_NoDoublePadding(t *testing.T) {
	b := New("hi ", Options{})
	b.InsertEmbed(inline.Embed{Display: "@user"})
	b.InsertText(" bye")

	if got, want := b.PlainText(), "hi @user bye"; got != want {
		t.Fatalf("plain=%q, want %q", got, want)
	}
}

func TestBuffer_PlainText_DropsDisplaylessAndDangling(t *testing.T) {
	b := New("a", Options{})
	b.InsertEmbed(inline.Embed{}) // no display
	b.InsertText("b")

	if got, want := b.PlainText(), "ab"; got != want {
		t.Fatalf("plain=%q, want %q", got, want)
	}

	// A placeholder rune with no store entry is a dangling reference;
	// projection treats it as an absent segment.
	b2 := New("x"+string(inline.PlaceholderBase)+"y", Options{})
	if got, want := b2.PlainText(), "xy"; got != want {
		t.Fatalf("plain=%q, want %q", got, want)
	}
}

func TestBuffer_MarkupText_UsesTriggerMarkup(t *testing.T) {
	b := New("ping ", Options{Triggers: mentionTriggers()})
	b.InsertTriggered('@', "alice", InsertOptions{Display: "@alice"})
	b.InsertText("now")

	if got, want := b.MarkupText(), "ping @[alice] now"; got != want {
		t.Fatalf("markup=%q, want %q", got, want)
	}
	// Plain projection still uses the display string.
	if got, want := b.PlainText(), "ping @alice now"; got != want {
		t.Fatalf("plain=%q, want %q", got, want)
	}
}

func TestBuffer_MarkupText_FallsBackToDisplay(t *testing.T) {
	b := New("", Options{Triggers: mentionTriggers()})
	b.InsertEmbed(inline.Embed{Display: ":tada:"}) // no origin trigger

	if got, want := b.MarkupText(), ":tada:"; got != want {
		t.Fatalf("markup=%q, want %q", got, want)
	}
}

func TestBuffer_Segments(t *testing.T) {
	b := New("hi ", Options{Triggers: mentionTriggers()})
	id, _ := b.InsertTriggered('@', "bob", InsertOptions{Display: "@bob"})
	b.InsertText("bye")

	segs := b.Segments()
	if len(segs) != 3 {
		t.Fatalf("segments=%d, want 3: %+v", len(segs), segs)
	}
	if segs[0].Kind != SegmentText || segs[0].Text != "hi " {
		t.Fatalf("seg0=%+v, want text %q", segs[0], "hi ")
	}
	if segs[1].Kind != SegmentEmbed || segs[1].ID != id {
		t.Fatalf("seg1=%+v, want embed %U", segs[1], id)
	}
	if got, want := segs[1].Embed.Visual(), "@bob"; got != want {
		t.Fatalf("seg1 visual=%q, want %q", got, want)
	}
	if segs[2].Kind != SegmentText || segs[2].Text != " bye" {
		t.Fatalf("seg2=%+v, want text %q", segs[2], " bye")
	}
}

func TestBuffer_Segments_SkipsDangling(t *testing.T) {
	b := New("a"+string(inline.PlaceholderBase)+"b", Options{})

	segs := b.Segments()
	if len(segs) != 2 {
		t.Fatalf("segments=%d, want 2: %+v", len(segs), segs)
	}
	if segs[0].Text != "a" || segs[1].Text != "b" {
		t.Fatalf("segments=%+v, want plain runs a and b", segs)
	}
}
