package inline

// Trigger describes one character that begins keyword matching, together
// with the callbacks a buffer needs to stream keywords and to render and
// serialize values inserted through it.
//
// Triggers are registered once at construction and are immutable for the
// owning buffer's lifetime.
type Trigger struct {
	// Char is the trigger character, e.g. '@', '#', '/'.
	Char rune

	// OnKeyword streams the in-progress keyword (trigger char excluded)
	// on every scan that finds this trigger active.
	OnKeyword func(keyword string)

	// Render turns a value inserted through this trigger into its
	// display-layer text.
	Render RenderFunc

	// Markup serializes a value for the markup projection, e.g.
	// "@[alice](u1)". Nil falls back to the embed's Display string.
	Markup func(value any) string
}

// Registry is the read-only trigger table, keyed by trigger character.
type Registry struct {
	triggers map[rune]Trigger
}

// NewRegistry builds a registry from triggers. Keys have set semantics:
// when two triggers share a character, the last registration wins.
func NewRegistry(triggers ...Trigger) *Registry {
	m := make(map[rune]Trigger, len(triggers))
	for _, t := range triggers {
		m[t.Char] = t
	}
	return &Registry{triggers: m}
}

func (r *Registry) Get(char rune) (Trigger, bool) {
	if r == nil {
		return Trigger{}, false
	}
	t, ok := r.triggers[char]
	return t, ok
}

func (r *Registry) Contains(char rune) bool {
	_, ok := r.Get(char)
	return ok
}

// Len returns the number of registered triggers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.triggers)
}
