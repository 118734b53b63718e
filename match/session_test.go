package match

import (
	"reflect"
	"testing"

	"github.com/inkwell-text/inkwell/inline"
)

type sessionRecorder struct {
	keywords []string
	finishes int
}

func (r *sessionRecorder) registry() *inline.Registry {
	return inline.NewRegistry(inline.Trigger{
		Char:      '@',
		OnKeyword: func(kw string) { r.keywords = append(r.keywords, kw) },
	})
}

func (r *sessionRecorder) session() *Session {
	return NewSession(r.registry(), SessionOptions{
		OnFinish: func() { r.finishes++ },
	})
}

func update(s *Session, text string) {
	runes := []rune(text)
	s.Update(runes, len(runes))
}

func TestSession_KeywordStream(t *testing.T) {
	rec := &sessionRecorder{}
	s := rec.session()

	update(s, "hi @")
	update(s, "hi @b")
	update(s, "hi @bo")

	if got, want := rec.keywords, []string{"", "b", "bo"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keywords=%v, want %v", got, want)
	}
	if rec.finishes != 0 {
		t.Fatalf("finishes=%d, want 0", rec.finishes)
	}
	if got := s.State(); got != StateMatching {
		t.Fatalf("state=%v, want matching", got)
	}
	m, ok := s.Active()
	if !ok || m.Keyword != "bo" {
		t.Fatalf("active=%v,%v, want keyword %q", m, ok, "bo")
	}
}

func TestSession_FinishFiresOncePerTransition(t *testing.T) {
	rec := &sessionRecorder{}
	s := rec.session()

	update(s, "hi @b")
	update(s, "hi @b ") // space ends the match
	if rec.finishes != 1 {
		t.Fatalf("finishes=%d, want 1", rec.finishes)
	}

	// Further idle updates must not re-fire.
	update(s, "hi @b x")
	update(s, "hi @b xy")
	if rec.finishes != 1 {
		t.Fatalf("finishes=%d, want still 1", rec.finishes)
	}
	if got := s.State(); got != StateIdle {
		t.Fatalf("state=%v, want idle", got)
	}
	if _, ok := s.Active(); ok {
		t.Fatalf("idle session should have no active match")
	}

	// A fresh match and a fresh transition fires again.
	update(s, "hi @b xy @c")
	update(s, "hi @b xy @c ")
	if rec.finishes != 2 {
		t.Fatalf("finishes=%d, want 2", rec.finishes)
	}
}

func TestSession_NeverMatchedNeverFinishes(t *testing.T) {
	rec := &sessionRecorder{}
	s := rec.session()

	update(s, "plain")
	update(s, "plain text")
	if rec.finishes != 0 {
		t.Fatalf("finishes=%d, want 0", rec.finishes)
	}
	if len(rec.keywords) != 0 {
		t.Fatalf("keywords=%v, want none", rec.keywords)
	}
}

func TestSession_CaretBeforeTextEndsMatch(t *testing.T) {
	rec := &sessionRecorder{}
	s := rec.session()

	runes := []rune("hi @bo")
	s.Update(runes, len(runes))
	if got := s.State(); got != StateMatching {
		t.Fatalf("state=%v, want matching", got)
	}

	// Caret moved to position 0: matching must end.
	s.Update(runes, 0)
	if got := s.State(); got != StateIdle {
		t.Fatalf("state=%v, want idle", got)
	}
	if rec.finishes != 1 {
		t.Fatalf("finishes=%d, want 1", rec.finishes)
	}
}

func TestSession_Reset_DropsMatchSilently(t *testing.T) {
	rec := &sessionRecorder{}
	s := rec.session()

	update(s, "hi @bo")
	s.Reset()

	if got := s.State(); got != StateIdle {
		t.Fatalf("state=%v, want idle", got)
	}
	if rec.finishes != 0 {
		t.Fatalf("finishes=%d, want 0 after reset", rec.finishes)
	}
}
