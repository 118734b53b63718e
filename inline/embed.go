package inline

// Renderable is a pre-built visual node. The core never draws; a Renderable
// only has to produce its visual text form when an external renderer asks.
type Renderable interface {
	Render() string
}

// RenderFunc produces the visual form of an embedded value. The function is
// bound at insertion time, typically from the originating trigger.
type RenderFunc func(value any) string

// EmbedKind tags how an Embed produces its visual form.
type EmbedKind uint8

const (
	// EmbedDisplay has no renderer; only the Display string represents it.
	EmbedDisplay EmbedKind = iota
	// EmbedRenderer pairs a RenderFunc with an opaque value.
	EmbedRenderer
	// EmbedNode carries a pre-built Renderable.
	EmbedNode
)

// Embed is one inserted non-text unit. It is owned by the Store that holds
// it and keyed by its placeholder identifier.
//
// Render+Value and Node are alternatives; when both are set, Node wins.
type Embed struct {
	// Value is the opaque payload (a user, an emoji, ...).
	Value any

	// Render turns Value into display text. Nil for display-only embeds.
	Render RenderFunc

	// Node is a pre-built renderable, set instead of Render+Value.
	Node Renderable

	// Display is the plain-text substitute used by text projection.
	// Empty means the embed vanishes from plain text.
	Display string

	// Origin is the trigger character this embed was inserted through,
	// or 0 when it did not come from a trigger.
	Origin rune
}

// Kind reports the dispatch variant for rendering.
func (e Embed) Kind() EmbedKind {
	switch {
	case e.Node != nil:
		return EmbedNode
	case e.Render != nil:
		return EmbedRenderer
	default:
		return EmbedDisplay
	}
}

// Visual returns the embed's display-layer text: the Node's rendering, the
// bound renderer applied to Value, or the Display fallback.
func (e Embed) Visual() string {
	switch e.Kind() {
	case EmbedNode:
		return e.Node.Render()
	case EmbedRenderer:
		return e.Render(e.Value)
	default:
		return e.Display
	}
}
