package editor

import "github.com/inkwell-text/inkwell/buffer"

// ChangeEvent is the host-facing payload produced after every effective
// buffer change. Plain and Markup carry the projections so hosts don't
// have to reach back into the buffer from the callback.
type ChangeEvent struct {
	Version   uint64
	Caret     int
	Selection buffer.SelectionState

	Text   string
	Plain  string
	Markup string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Caret:   b.Caret(),
		Text:    b.Text(),
		Plain:   b.PlainText(),
		Markup:  b.MarkupText(),
	}
	if start, end, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Start: start, End: end}
	}
	return ev
}
