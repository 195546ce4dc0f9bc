package menu_test

import (
	"image"
	"testing"

	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/menu"
)

func TestHostCannotMoveValueOutOfRange(t *testing.T) {
	m, err := menu.New("Demo", menu.DefaultOptions(), image.Pt(128, 64), []menu.Entry{
		{Label: "Volume", Value: menu.NewBoundedInt(9, 0, 10)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	entry, ok := m.EntryAt(0)
	if !ok {
		t.Fatalf("expected entry 0")
	}
	volume, ok := entry.Value.(*menu.BoundedInt)
	if !ok {
		t.Fatalf("expected bounded int, got %T", entry.Value)
	}
	for i := 0; i < 20; i++ {
		volume.Increment()
	}
	if volume.Value() != volume.Max() {
		t.Fatalf("expected value pinned at %d, got %d", volume.Max(), volume.Value())
	}
	for i := 0; i < 40; i++ {
		volume.Decrement()
	}
	if volume.Value() != volume.Min() {
		t.Fatalf("expected value pinned at %d, got %d", volume.Min(), volume.Value())
	}

	m.Update(input.Snapshot{Left: true})
	if got, _ := m.Lookup("Volume"); got.Value.(*menu.BoundedInt).Value() != 0 {
		t.Fatalf("expected value to stay at the minimum")
	}
	if glyph := menu.Glyph(volume); glyph != "<0>" {
		t.Fatalf("expected glyph <0>, got %q", glyph)
	}
}

func TestSubMenuExposesNestedMenu(t *testing.T) {
	sub, err := menu.New("Food", menu.DefaultOptions(), image.Pt(128, 64), []menu.Entry{
		{Label: "Back", Value: menu.NewExit()},
	})
	if err != nil {
		t.Fatalf("New sub: %v", err)
	}
	value := menu.NewSubMenu(sub)
	if value.Menu() != sub {
		t.Fatalf("expected Menu to return the wrapped menu")
	}
}
