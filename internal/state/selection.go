package state

// Selection is one entry chosen by the user.
type Selection struct {
	Frame uint64
	Menu  string
	Label string
	Kind  string
}

type SelectionStore interface {
	Entries() []Selection
	Record(Selection)
	Last() (Selection, bool)
}

type selectionStore struct {
	limit   int
	entries []Selection
}

// NewSelectionStore keeps at most limit recent selections. A non-positive
// limit keeps only the latest.
func NewSelectionStore(limit int) SelectionStore {
	if limit <= 0 {
		limit = 1
	}
	return &selectionStore{limit: limit}
}

func (s *selectionStore) Entries() []Selection {
	return cloneSelections(s.entries)
}

func (s *selectionStore) Record(sel Selection) {
	s.entries = append(s.entries, sel)
	if over := len(s.entries) - s.limit; over > 0 {
		s.entries = cloneSelections(s.entries[over:])
	}
}

func (s *selectionStore) Last() (Selection, bool) {
	if len(s.entries) == 0 {
		return Selection{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func cloneSelections(entries []Selection) []Selection {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Selection, len(entries))
	copy(dup, entries)
	return dup
}
