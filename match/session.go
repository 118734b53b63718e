package match

import "github.com/inkwell-text/inkwell/inline"

// State is the session's logical matching state.
type State uint8

const (
	StateIdle State = iota
	StateMatching
)

// SessionOptions configures a Session. The zero value is usable.
type SessionOptions struct {
	// MaxMatchLength caps the backward scan window; <= 0 means
	// DefaultMaxLength.
	MaxMatchLength int

	// OnFinish fires exactly once per MATCHING -> IDLE transition,
	// never while the session is already idle.
	OnFinish func()
}

// Session runs Scan after every buffer change and drives the trigger
// callbacks: the matched trigger's OnKeyword while matching, OnFinish on
// the transition out.
//
// A Session is synchronous and single-owner; Update runs to completion,
// callbacks included, before returning.
type Session struct {
	reg *inline.Registry
	opt SessionOptions

	state   State
	current Match
}

func NewSession(reg *inline.Registry, opt SessionOptions) *Session {
	if opt.MaxMatchLength <= 0 {
		opt.MaxMatchLength = DefaultMaxLength
	}
	return &Session{reg: reg, opt: opt}
}

// State returns the current logical state.
func (s *Session) State() State { return s.state }

// Active returns the current match while the session is matching.
func (s *Session) Active() (Match, bool) {
	if s.state != StateMatching {
		return Match{}, false
	}
	return s.current, true
}

// Update re-evaluates the match for the given text and caret. It fires the
// matched trigger's OnKeyword on every update that yields a match, and
// OnFinish once when matching ends.
func (s *Session) Update(text []rune, caret int) {
	m, ok := Scan(text, caret, s.reg, s.opt.MaxMatchLength)
	if ok {
		s.state = StateMatching
		s.current = m
		if tr, found := s.reg.Get(m.Trigger); found && tr.OnKeyword != nil {
			tr.OnKeyword(m.Keyword)
		}
		return
	}

	if s.state == StateMatching {
		s.state = StateIdle
		s.current = Match{}
		if s.opt.OnFinish != nil {
			s.opt.OnFinish()
		}
	}
}

// Reset drops any in-progress match without firing OnFinish. Used when the
// owning buffer is cleared outright.
func (s *Session) Reset() {
	s.state = StateIdle
	s.current = Match{}
}
