package menu

import "fmt"

// Advance moves a highlighted index through n entries. Up is applied before
// down so pressing both leaves the index unchanged; both directions wrap.
func Advance(index, n int, up, down bool) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: cursor over %d entries", ErrInvalidState, n)
	}
	if index < 0 || index >= n {
		index = 0
	}
	if up {
		if index > 0 {
			index--
		} else {
			index = n - 1
		}
	}
	if down {
		if index < n-1 {
			index++
		} else {
			index = 0
		}
	}
	return index, nil
}
