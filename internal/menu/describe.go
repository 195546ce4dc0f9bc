package menu

import "strconv"

// Row is a flattened, printable view of one entry.
type Row struct {
	Depth  int
	Path   string
	Label  string
	Kind   string
	Glyph  string
	Bounds string
}

// Describe flattens the menu tree into rows in display order, descending into
// submenus directly after their parent entry.
func (m *Menu) Describe() []Row {
	return m.describe(0, m.title)
}

func (m *Menu) describe(depth int, path string) []Row {
	rows := make([]Row, 0, len(m.entries))
	for _, entry := range m.entries {
		row := Row{
			Depth: depth,
			Path:  path,
			Label: entry.Label,
			Kind:  Kind(entry.Value),
			Glyph: Glyph(entry.Value),
		}
		if b, ok := entry.Value.(*BoundedInt); ok {
			row.Bounds = strconv.Itoa(b.Min()) + ".." + strconv.Itoa(b.Max())
		}
		rows = append(rows, row)
		if sub, ok := entry.Value.(*SubMenu); ok {
			rows = append(rows, sub.menu.describe(depth+1, path+"/"+sub.menu.title)...)
		}
	}
	return rows
}

// Find returns the index of the first entry whose label equals label.
func (m *Menu) Find(label string) int {
	for i, entry := range m.entries {
		if entry.Label == label {
			return i
		}
	}
	return -1
}

// Labels returns the entry labels in order.
func (m *Menu) Labels() []string {
	labels := make([]string, len(m.entries))
	for i, entry := range m.entries {
		labels[i] = entry.Label
	}
	return labels
}

// Lookup finds an entry by label in this menu or, failing that, in its
// submenus.
func (m *Menu) Lookup(label string) (Entry, bool) {
	if i := m.Find(label); i >= 0 {
		return m.entries[i], true
	}
	for _, entry := range m.entries {
		if sub, ok := entry.Value.(*SubMenu); ok {
			if i := sub.menu.Find(label); i >= 0 {
				return sub.menu.entries[i], true
			}
		}
	}
	return Entry{}, false
}
