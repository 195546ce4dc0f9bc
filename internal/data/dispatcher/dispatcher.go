package dispatcher

import (
	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/logging/events"
	"github.com/atomicstack/pixelmenu/internal/menu"
	"github.com/atomicstack/pixelmenu/internal/state"
)

// Result describes what a single tick did.
type Result struct {
	Frame        uint64
	Drew         bool
	Selected     bool
	Entry        menu.Entry
	Menu         string
	WatchChanged bool
	Watched      int
	Err          error
}

// Dispatcher runs the per-tick protocol for a menu tree: one Update with the
// held snapshot followed by one Draw onto the surface.
type Dispatcher struct {
	root       *menu.Menu
	surface    menu.Surface
	selections state.SelectionStore
	watch      state.WatchStore
	frame      uint64
}

// New creates a dispatcher. selections and watch may be nil.
func New(root *menu.Menu, surface menu.Surface, selections state.SelectionStore, watch state.WatchStore) *Dispatcher {
	d := &Dispatcher{root: root, surface: surface, selections: selections, watch: watch}
	d.observe()
	return d
}

// Root returns the top-level menu.
func (d *Dispatcher) Root() *menu.Menu {
	return d.root
}

// Frame returns the number of ticks handled so far.
func (d *Dispatcher) Frame() uint64 {
	return d.frame
}

// Handle runs one tick with snapshot s. A draw error is reported in the
// result and the frame is redrawn on the next call.
func (d *Dispatcher) Handle(s input.Snapshot) Result {
	d.frame++
	res := Result{Frame: d.frame}

	owner := d.root.Active().Title()
	d.root.Update(s)
	if entry, ok := d.root.SelectedEntry(); ok {
		res.Selected = true
		res.Entry = entry
		res.Menu = owner
		if d.selections != nil {
			d.selections.Record(state.Selection{
				Frame: d.frame,
				Menu:  owner,
				Label: entry.Label,
				Kind:  menu.Kind(entry.Value),
			})
		}
	}

	res.WatchChanged, res.Watched = d.observe()

	dirty := d.root.Active().Dirty()
	if err := d.root.Draw(d.surface); err != nil {
		res.Err = err
	} else {
		res.Drew = dirty
	}
	events.Host.Tick(d.frame, dirty)
	return res
}

func (d *Dispatcher) observe() (bool, int) {
	if d.watch == nil {
		return false, 0
	}
	entry, ok := d.root.Lookup(d.watch.Label())
	if !ok {
		return false, 0
	}
	b, ok := entry.Value.(*menu.BoundedInt)
	if !ok {
		return false, 0
	}
	return d.watch.Observe(b.Value()), b.Value()
}
