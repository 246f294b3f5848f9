package ui

// FocusManager tracks and rotates focus across a fixed order of IDs
// (form fields, panes).
type FocusManager struct {
	Current  string   // ID of the focused element
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next ID in order, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.rotate(1)
}

// Prev moves focus to the previous ID in order, wrapping around.
func (f *FocusManager) Prev() string {
	return f.rotate(-1)
}

func (f *FocusManager) rotate(step int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 && step < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+step)%n+n)%n])
	return f.Current
}

// SetFocus sets focus to the given ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
