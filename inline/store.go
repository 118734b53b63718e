package inline

// Store maps placeholder identifiers to their embed records.
//
// A Store grows for as long as embeds are inserted; it is cleared together
// with the buffer that owns it. That growth is a documented characteristic,
// not a leak, as long as hosts clear the store when they clear the text.
type Store struct {
	embeds map[rune]Embed
}

func NewStore() *Store {
	return &Store{embeds: make(map[rune]Embed)}
}

func (s *Store) Put(id rune, e Embed) {
	s.embeds[id] = e
}

func (s *Store) Get(id rune) (Embed, bool) {
	e, ok := s.embeds[id]
	return e, ok
}

func (s *Store) Len() int { return len(s.embeds) }

func (s *Store) Clear() {
	clear(s.embeds)
}
