package buffer

// SelectionState captures selection state at a point in time. Active false
// means the sentinel: caret logically at the end of the text.
type SelectionState struct {
	Active bool
	Start  int
	End    int
}

// Change describes the most recent effective mutation. Hosts use it to
// react to edits (sync a preview, mirror to a wire format) without diffing
// the whole text.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64

	SelectionBefore SelectionState
	SelectionAfter  SelectionState

	// Offset is the rune offset where the edit applied.
	Offset   int
	Inserted string
	Deleted  string
}

type changeBuilder struct {
	versionBefore   uint64
	selectionBefore SelectionState
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) selectionState() SelectionState {
	if b.selStart < 0 {
		return SelectionState{}
	}
	return SelectionState{Active: true, Start: b.selStart, End: b.selEnd}
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore:   b.version,
		selectionBefore: b.selectionState(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder, offset int, inserted, deleted string) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.selectionState(),
		Offset:          offset,
		Inserted:        inserted,
		Deleted:         deleted,
	}
	b.hasLastChange = true
}
