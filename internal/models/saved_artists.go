package models

import "encoding/json"

// SavedArtists is the per-user bookmark set: artist ids with order-independent
// membership. Insertion order is kept so lists render stably.
type SavedArtists struct {
	order []string
	index map[string]int
}

func NewSavedArtists(ids ...string) *SavedArtists {
	s := &SavedArtists{index: make(map[string]int)}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *SavedArtists) add(id string) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
}

func (s *SavedArtists) remove(id string) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
}

// Toggle flips membership and reports whether the id is now saved. Toggling
// twice returns the set to its original contents.
func (s *SavedArtists) Toggle(id string) bool {
	if s.Has(id) {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

func (s *SavedArtists) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *SavedArtists) Len() int {
	return len(s.order)
}

// IDs returns the saved ids in insertion order. The slice is a copy.
func (s *SavedArtists) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// EncodeSavedArtists serializes the set as a JSON string array.
func EncodeSavedArtists(s *SavedArtists) []byte {
	data, err := json.Marshal(s.IDs())
	if err != nil {
		return []byte("[]")
	}
	return data
}

// DecodeSavedArtists is deliberately forgiving: absent or malformed content
// decodes to the empty set rather than failing, since a corrupt bookmark
// stash must never break the app.
func DecodeSavedArtists(data []byte) *SavedArtists {
	if len(data) == 0 {
		return NewSavedArtists()
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return NewSavedArtists()
	}
	return NewSavedArtists(ids...)
}
