package menu

import "errors"

// ErrInvalidState reports a programmer error such as a menu without entries.
var ErrInvalidState = errors.New("invalid menu state")
