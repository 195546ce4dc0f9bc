package input

import (
	"fmt"
	"strings"
)

// Button identifies one of the six inputs a menu understands.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonPrimary
	ButtonSecondary

	// NumButtons is the number of distinct buttons.
	NumButtons
)

var buttonNames = [...]string{"up", "down", "left", "right", "primary", "secondary"}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "unknown"
	}
	return buttonNames[b]
}

// ParseButton resolves a button by its String name, ignoring case.
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// Buttons lists every button in declaration order.
func Buttons() []Button {
	return []Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight, ButtonPrimary, ButtonSecondary}
}

// Snapshot is the held state of every button for a single tick.
type Snapshot struct {
	Up        bool
	Down      bool
	Left      bool
	Right     bool
	Primary   bool
	Secondary bool
}

// Edges reports the buttons that are held in current but were not held in
// previous. Holding a button across ticks yields a single edge.
func Edges(previous, current Snapshot) Snapshot {
	return Snapshot{
		Up:        current.Up && !previous.Up,
		Down:      current.Down && !previous.Down,
		Left:      current.Left && !previous.Left,
		Right:     current.Right && !previous.Right,
		Primary:   current.Primary && !previous.Primary,
		Secondary: current.Secondary && !previous.Secondary,
	}
}

// Any reports whether at least one button is set.
func (s Snapshot) Any() bool {
	return s.Up || s.Down || s.Left || s.Right || s.Primary || s.Secondary
}

// Pressed returns the state of a single button.
func (s Snapshot) Pressed(b Button) bool {
	switch b {
	case ButtonUp:
		return s.Up
	case ButtonDown:
		return s.Down
	case ButtonLeft:
		return s.Left
	case ButtonRight:
		return s.Right
	case ButtonPrimary:
		return s.Primary
	case ButtonSecondary:
		return s.Secondary
	}
	return false
}

// With returns a copy of s with button b set to pressed.
func (s Snapshot) With(b Button, pressed bool) Snapshot {
	switch b {
	case ButtonUp:
		s.Up = pressed
	case ButtonDown:
		s.Down = pressed
	case ButtonLeft:
		s.Left = pressed
	case ButtonRight:
		s.Right = pressed
	case ButtonPrimary:
		s.Primary = pressed
	case ButtonSecondary:
		s.Secondary = pressed
	}
	return s
}
