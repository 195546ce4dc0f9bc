package state

// WatchStore remembers the last observed value of one labelled entry.
type WatchStore interface {
	Label() string
	Value() (int, bool)
	Observe(int) bool
}

type watchStore struct {
	label string
	value int
	known bool
}

// NewWatchStore tracks the entry with the given label.
func NewWatchStore(label string) WatchStore {
	return &watchStore{label: label}
}

func (w *watchStore) Label() string {
	return w.label
}

func (w *watchStore) Value() (int, bool) {
	return w.value, w.known
}

// Observe records v and reports whether it differs from the previous value.
// The first observation never counts as a change.
func (w *watchStore) Observe(v int) bool {
	changed := w.known && v != w.value
	w.value = v
	w.known = true
	return changed
}
