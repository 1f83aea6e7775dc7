package schema

import "errors"

// ErrMaxSelections is returned when adding to a multi-select that is already
// at its cap. The existing selection is left untouched.
var ErrMaxSelections = errors.New("maximum selections reached")

// MultiSelect tracks the selected values of a multi-select field in order of
// addition. A max of 0 means unlimited.
type MultiSelect struct {
	max    int
	values []string
}

func NewMultiSelect(max int) *MultiSelect {
	return &MultiSelect{max: max}
}

// Add appends a value to the selection. Values already present are ignored.
func (m *MultiSelect) Add(value string) error {
	for _, v := range m.values {
		if v == value {
			return nil
		}
	}
	if m.max > 0 && len(m.values) >= m.max {
		return ErrMaxSelections
	}
	m.values = append(m.values, value)
	return nil
}

func (m *MultiSelect) Remove(value string) {
	for i, v := range m.values {
		if v == value {
			m.values = append(m.values[:i], m.values[i+1:]...)
			return
		}
	}
}

// Toggle adds the value if absent and removes it if present.
func (m *MultiSelect) Toggle(value string) error {
	for _, v := range m.values {
		if v == value {
			m.Remove(value)
			return nil
		}
	}
	return m.Add(value)
}

func (m *MultiSelect) Clear() {
	m.values = nil
}

// SetValues replaces the selection, truncating at the cap.
func (m *MultiSelect) SetValues(values []string) {
	m.values = nil
	for _, v := range values {
		if err := m.Add(v); err != nil {
			return
		}
	}
}

// Values returns the selection in order of addition.
func (m *MultiSelect) Values() []string {
	out := make([]string, len(m.values))
	copy(out, m.values)
	return out
}
