package backend

import (
	"fmt"
	"strings"

	evdev "github.com/holoplot/go-evdev"

	"github.com/atomicstack/pixelmenu/internal/input"
)

// Keymap maps evdev key codes to menu buttons.
type Keymap map[evdev.EvCode]input.Button

// DefaultKeymap covers keyboard arrows plus common gamepad codes.
func DefaultKeymap() Keymap {
	return Keymap{
		evdev.KEY_UP:         input.ButtonUp,
		evdev.KEY_DOWN:       input.ButtonDown,
		evdev.KEY_LEFT:       input.ButtonLeft,
		evdev.KEY_RIGHT:      input.ButtonRight,
		evdev.KEY_ENTER:      input.ButtonPrimary,
		evdev.KEY_SPACE:      input.ButtonPrimary,
		evdev.KEY_ESC:        input.ButtonSecondary,
		evdev.KEY_BACKSPACE:  input.ButtonSecondary,
		evdev.BTN_DPAD_UP:    input.ButtonUp,
		evdev.BTN_DPAD_DOWN:  input.ButtonDown,
		evdev.BTN_DPAD_LEFT:  input.ButtonLeft,
		evdev.BTN_DPAD_RIGHT: input.ButtonRight,
		evdev.BTN_SOUTH:      input.ButtonPrimary,
		evdev.BTN_EAST:       input.ButtonSecondary,
	}
}

// ParseKeymap reads overrides of the form "KEY_W=up,BTN_TL=secondary" on top
// of the default keymap.
func ParseKeymap(overrides string) (Keymap, error) {
	km := DefaultKeymap()
	if strings.TrimSpace(overrides) == "" {
		return km, nil
	}
	for _, pair := range strings.Split(overrides, ",") {
		name, target, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("keymap entry %q: expected CODE=button", pair)
		}
		code, ok := evdev.KEYFromString[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("keymap entry %q: unknown key code", pair)
		}
		button, err := input.ParseButton(target)
		if err != nil {
			return nil, fmt.Errorf("keymap entry %q: %w", pair, err)
		}
		km[code] = button
	}
	return km, nil
}
