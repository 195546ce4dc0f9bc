package menu

import (
	"fmt"
	"image"

	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/logging/events"
)

const noSubmenu = -1

// Menu is a single level of entries with a highlighted cursor. A menu owns
// its entries and, through SubMenu values, at most one level of nested menus.
// It is driven by one Update followed by one Draw per tick and is not safe
// for concurrent use.
type Menu struct {
	title       string
	entries     []Entry
	options     Options
	size        image.Point
	highlighted int
	selected    bool
	redraw      RedrawTracker
	previous    input.Snapshot
	active      int
}

// New constructs a menu. It fails with ErrInvalidState when entries is empty,
// an entry has no value, a bounded integer has Min > Max, or a submenu is
// nil, nested more than one level deep, shared between entries or missing
// an Exit entry.
func New(title string, opts Options, size image.Point, entries []Entry) (*Menu, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: menu %q has no entries", ErrInvalidState, title)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	seen := make(map[*Menu]struct{})
	for i, entry := range entries {
		if err := validateEntry(entry, seen); err != nil {
			return nil, fmt.Errorf("menu %q entry %d: %w", title, i, err)
		}
	}
	m := &Menu{
		title:   title,
		entries: append([]Entry(nil), entries...),
		options: opts,
		size:    size,
		active:  noSubmenu,
	}
	m.redraw.Mark()
	return m, nil
}

func validateEntry(entry Entry, seen map[*Menu]struct{}) error {
	switch v := entry.Value.(type) {
	case nil:
		return fmt.Errorf("%w: %q has no value", ErrInvalidState, entry.Label)
	case *BoundedInt:
		if v == nil {
			return fmt.Errorf("%w: %q has no value", ErrInvalidState, entry.Label)
		}
		if v.min > v.max {
			return fmt.Errorf("%w: %q bounds %d > %d", ErrInvalidState, entry.Label, v.min, v.max)
		}
		if v.value < v.min || v.value > v.max {
			return fmt.Errorf("%w: %q value %d outside [%d, %d]", ErrInvalidState, entry.Label, v.value, v.min, v.max)
		}
	case *Toggle:
		if v == nil {
			return fmt.Errorf("%w: %q has no value", ErrInvalidState, entry.Label)
		}
	case *SubMenu:
		if v == nil || v.menu == nil {
			return fmt.Errorf("%w: %q has no submenu", ErrInvalidState, entry.Label)
		}
		sub := v.menu
		if _, dup := seen[sub]; dup {
			return fmt.Errorf("%w: submenu %q is shared", ErrInvalidState, sub.title)
		}
		seen[sub] = struct{}{}
		exit := false
		for _, nested := range sub.entries {
			switch nested.Value.(type) {
			case *SubMenu:
				return fmt.Errorf("%w: submenu %q nests %q", ErrInvalidState, sub.title, nested.Label)
			case *Exit:
				exit = true
			}
		}
		if !exit {
			return fmt.Errorf("%w: submenu %q has no exit entry", ErrInvalidState, sub.title)
		}
	}
	return nil
}

// Title returns the menu title.
func (m *Menu) Title() string {
	return m.title
}

// Len returns the number of entries.
func (m *Menu) Len() int {
	return len(m.entries)
}

// Highlighted returns the index of the entry under the cursor.
func (m *Menu) Highlighted() int {
	return m.highlighted
}

// Dirty reports whether the next Draw on this level will render.
func (m *Menu) Dirty() bool {
	return m.redraw.Dirty()
}

// Delegating reports whether a submenu currently owns input.
func (m *Menu) Delegating() bool {
	return m.active != noSubmenu
}

// Active returns the menu that currently owns input: the focused submenu
// while delegating, otherwise m itself.
func (m *Menu) Active() *Menu {
	if sub := m.submenu(); sub != nil {
		return sub.Active()
	}
	return m
}

// EntryAt returns the entry at index i.
func (m *Menu) EntryAt(i int) (Entry, bool) {
	if i < 0 || i >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[i], true
}

// SelectedEntry returns the highlighted entry during the tick in which it was
// selected. While delegating, the focused submenu's selection is reported.
// Callers must read it before the next Update.
func (m *Menu) SelectedEntry() (Entry, bool) {
	if m.selected {
		return m.entries[m.highlighted], true
	}
	if sub := m.submenu(); sub != nil {
		return sub.SelectedEntry()
	}
	return Entry{}, false
}

// ForceRedraw marks the menu dirty unconditionally.
func (m *Menu) ForceRedraw() {
	m.redraw.Mark()
}

// Focus moves the highlight to index i without input.
func (m *Menu) Focus(i int) error {
	if i < 0 || i >= len(m.entries) {
		return fmt.Errorf("%w: focus %d outside %d entries", ErrInvalidState, i, len(m.entries))
	}
	if i != m.highlighted {
		m.highlighted = i
		events.Menu.Cursor(m.title, i)
	}
	m.redraw.Mark()
	return nil
}

// Update advances the menu by one tick using the held button state s.
func (m *Menu) Update(s input.Snapshot) {
	edges := input.Edges(m.previous, s)
	m.previous = s

	if sub := m.submenu(); sub != nil {
		m.selected = false
		sub.Update(s)
		if entry, ok := sub.ownSelection(); ok {
			if _, exit := entry.Value.(*Exit); exit {
				events.Menu.Exit(sub.title, entry.Label)
				m.active = noSubmenu
				m.redraw.Mark()
			}
		}
		return
	}

	next, err := Advance(m.highlighted, len(m.entries), edges.Up, edges.Down)
	if err != nil {
		// New guarantees at least one entry.
		return
	}
	if next != m.highlighted {
		m.highlighted = next
		events.Menu.Cursor(m.title, next)
	}
	m.selected = edges.Primary
	if edges.Any() {
		m.redraw.Mark()
	}

	entry := m.entries[m.highlighted]
	if m.apply(entry, edges) {
		m.redraw.Mark()
		events.Menu.Edit(m.title, entry.Label, Glyph(entry.Value))
	}
	if !m.selected {
		return
	}
	events.Menu.Select(m.title, entry.Label)
	if v, ok := entry.Value.(*SubMenu); ok {
		m.active = m.highlighted
		v.menu.previous = s
		v.menu.selected = false
		v.menu.ForceRedraw()
		events.Menu.Enter(m.title, entry.Label)
	}
}

// apply mutates the entry value for the given edges and reports a change.
func (m *Menu) apply(entry Entry, edges input.Snapshot) bool {
	switch v := entry.Value.(type) {
	case *Toggle:
		if edges.Left || edges.Right || edges.Primary {
			v.Flip()
			return true
		}
	case *BoundedInt:
		changed := false
		if edges.Right && v.Increment() {
			changed = true
		}
		if edges.Left && v.Decrement() {
			changed = true
		}
		return changed
	}
	return false
}

// ownSelection reports this level's selection, ignoring delegation.
func (m *Menu) ownSelection() (Entry, bool) {
	if !m.selected {
		return Entry{}, false
	}
	return m.entries[m.highlighted], true
}

func (m *Menu) submenu() *Menu {
	if m.active == noSubmenu {
		return nil
	}
	if v, ok := m.entries[m.active].Value.(*SubMenu); ok {
		return v.menu
	}
	return nil
}
