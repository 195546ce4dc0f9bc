package menu

import "testing"

func TestBoundedIntClamps(t *testing.T) {
	b := NewBoundedInt(9, -10, 10)
	if !b.Increment() || b.Value() != 10 {
		t.Fatalf("expected 10, got %d", b.Value())
	}
	if b.Increment() {
		t.Fatalf("expected increment at max to report no change")
	}
	if b.Value() != 10 {
		t.Fatalf("expected value to stay at 10, got %d", b.Value())
	}

	b = NewBoundedInt(-10, -10, 10)
	if b.Decrement() || b.Value() != -10 {
		t.Fatalf("expected value to stay at -10, got %d", b.Value())
	}
}

func TestNewBoundedIntClampsInitial(t *testing.T) {
	if got := NewBoundedInt(50, 0, 10).Value(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := NewBoundedInt(-50, 0, 10).Value(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := NewBoundedInt(5, 10, 0).Value(); got != 5 {
		t.Fatalf("expected inverted bounds to leave value alone, got %d", got)
	}
}

func TestToggleFlip(t *testing.T) {
	tg := NewToggle(false)
	tg.Flip()
	if !tg.On() {
		t.Fatalf("expected toggle on")
	}
	tg.Flip()
	if tg.On() {
		t.Fatalf("expected toggle off")
	}
}

func TestGlyph(t *testing.T) {
	sub, err := New("Sub", DefaultOptions(), testSize, []Entry{{Label: "Back", Value: NewExit()}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := []struct {
		value Value
		glyph string
		kind  string
	}{
		{NewAction(), "", "action"},
		{NewToggle(true), "<X>", "toggle"},
		{NewToggle(false), "< >", "toggle"},
		{NewBoundedInt(-3, -10, 10), "<-3>", "int"},
		{NewSubMenu(sub), ">", "submenu"},
		{NewExit(), "", "exit"},
		{nil, "", "unknown"},
	}
	for _, tc := range cases {
		if got := Glyph(tc.value); got != tc.glyph {
			t.Fatalf("expected glyph %q for %T, got %q", tc.glyph, tc.value, got)
		}
		if got := Kind(tc.value); got != tc.kind {
			t.Fatalf("expected kind %q for %T, got %q", tc.kind, tc.value, got)
		}
	}
}
