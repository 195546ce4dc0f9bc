package menu

import (
	"errors"
	"testing"
)

func TestAdvanceWraps(t *testing.T) {
	cases := []struct {
		name     string
		index, n int
		up, down bool
		want     int
	}{
		{"down", 0, 3, false, true, 1},
		{"down wraps", 2, 3, false, true, 0},
		{"up", 2, 3, true, false, 1},
		{"up wraps", 0, 3, true, false, 2},
		{"both cancel", 1, 3, true, true, 1},
		{"both at top", 0, 3, true, true, 0},
		{"neither", 1, 3, false, false, 1},
		{"single entry", 0, 1, true, false, 0},
		{"out of range resets", 7, 3, false, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Advance(tc.index, tc.n, tc.up, tc.down)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestAdvanceEmpty(t *testing.T) {
	if _, err := Advance(0, 0, false, true); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestAdvanceStaysInRange(t *testing.T) {
	for n := 1; n <= 5; n++ {
		index := 0
		for step := 0; step < 4*n; step++ {
			var err error
			index, err = Advance(index, n, step%3 == 0, step%2 == 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if index < 0 || index >= n {
				t.Fatalf("index %d escaped [0,%d)", index, n)
			}
		}
	}
}
