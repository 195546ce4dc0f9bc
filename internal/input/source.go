package input

// Source supplies the held button state once per tick.
type Source interface {
	Snapshot() Snapshot
}

// Latch accumulates key presses between ticks for hosts that only observe
// presses (terminals deliver no release events). Every press stays held until
// Reset is called, which hosts do at the end of each tick.
type Latch struct {
	state Snapshot
}

// Press marks b as held until the next Reset.
func (l *Latch) Press(b Button) {
	l.state = l.state.With(b, true)
}

// Snapshot implements Source.
func (l *Latch) Snapshot() Snapshot {
	return l.state
}

// Reset releases every button.
func (l *Latch) Reset() {
	l.state = Snapshot{}
}

// Held tracks explicit press and release events, as delivered by SDL or an
// input device.
type Held struct {
	state Snapshot
}

// Set records the pressed state of b.
func (h *Held) Set(b Button, pressed bool) {
	h.state = h.state.With(b, pressed)
}

// Snapshot implements Source.
func (h *Held) Snapshot() Snapshot {
	return h.state
}

// Merge combines sources by OR-ing their snapshots.
type Merge []Source

// Snapshot implements Source.
func (m Merge) Snapshot() Snapshot {
	var out Snapshot
	for _, src := range m {
		if src == nil {
			continue
		}
		s := src.Snapshot()
		out.Up = out.Up || s.Up
		out.Down = out.Down || s.Down
		out.Left = out.Left || s.Left
		out.Right = out.Right || s.Right
		out.Primary = out.Primary || s.Primary
		out.Secondary = out.Secondary || s.Secondary
	}
	return out
}
