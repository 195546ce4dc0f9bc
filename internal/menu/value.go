package menu

import "strconv"

// Value is the payload of an entry. The set of implementations is closed:
// *Action, *Toggle, *BoundedInt, *SubMenu and *Exit.
type Value interface {
	isValue()
}

// Action reports a selection to the host and holds no state.
type Action struct{}

// Toggle is a boolean flipped by left, right or primary.
type Toggle struct {
	on bool
}

// BoundedInt is an integer kept within [Min, Max]. It only changes through
// Increment and Decrement.
type BoundedInt struct {
	value int
	min   int
	max   int
}

// SubMenu owns a nested menu that receives focus when activated.
type SubMenu struct {
	menu *Menu
}

// Exit returns focus from a submenu to its parent.
type Exit struct{}

func (*Action) isValue()     {}
func (*Toggle) isValue()     {}
func (*BoundedInt) isValue() {}
func (*SubMenu) isValue()    {}
func (*Exit) isValue()       {}

// NewAction returns an action value.
func NewAction() *Action { return &Action{} }

// NewToggle returns a toggle with the given initial state.
func NewToggle(on bool) *Toggle { return &Toggle{on: on} }

// On reports the toggle state.
func (t *Toggle) On() bool { return t.on }

// NewBoundedInt returns a bounded integer. The initial value is clamped into
// range; New rejects lo > hi.
func NewBoundedInt(value, lo, hi int) *BoundedInt {
	b := &BoundedInt{value: value, min: lo, max: hi}
	if lo <= hi {
		b.value = clamp(value, lo, hi)
	}
	return b
}

func (b *BoundedInt) Value() int { return b.value }
func (b *BoundedInt) Min() int   { return b.min }
func (b *BoundedInt) Max() int   { return b.max }

// NewSubMenu wraps m as an entry value.
func NewSubMenu(m *Menu) *SubMenu { return &SubMenu{menu: m} }

// Menu returns the nested menu.
func (s *SubMenu) Menu() *Menu { return s.menu }

// NewExit returns an exit marker.
func NewExit() *Exit { return &Exit{} }

// Increment steps the value up by one unless it is at Max.
func (b *BoundedInt) Increment() bool {
	if b.value >= b.max {
		return false
	}
	b.value++
	return true
}

// Decrement steps the value down by one unless it is at Min.
func (b *BoundedInt) Decrement() bool {
	if b.value <= b.min {
		return false
	}
	b.value--
	return true
}

// Flip inverts the toggle.
func (t *Toggle) Flip() {
	t.on = !t.on
}

// Entry is one line of a menu.
type Entry struct {
	Label string
	Value Value
}

// Kind names the variant of an entry value.
func Kind(v Value) string {
	switch v.(type) {
	case *Action:
		return "action"
	case *Toggle:
		return "toggle"
	case *BoundedInt:
		return "int"
	case *SubMenu:
		return "submenu"
	case *Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Glyph returns the right-aligned marker drawn next to a label. Actions and
// exits have none.
func Glyph(v Value) string {
	switch val := v.(type) {
	case *Toggle:
		if val.on {
			return "<X>"
		}
		return "< >"
	case *BoundedInt:
		return "<" + strconv.Itoa(val.value) + ">"
	case *SubMenu:
		return ">"
	default:
		return ""
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
