package menu

// RedrawTracker gates render passes on a dirty flag.
type RedrawTracker struct {
	dirty bool
}

// Mark flags the rendered output as stale.
func (t *RedrawTracker) Mark() {
	t.dirty = true
}

// Dirty reports whether a render is pending.
func (t *RedrawTracker) Dirty() bool {
	return t.dirty
}

// Render runs fn when dirty and clears the flag only if fn succeeds, so a
// failed pass is retried on the next call.
func (t *RedrawTracker) Render(fn func() error) error {
	if !t.dirty {
		return nil
	}
	if err := fn(); err != nil {
		return err
	}
	t.dirty = false
	return nil
}
