package clipboard

// Memory is an in-process Writer. It keeps every value written, newest last.
// Useful headless and in tests.
type Memory struct {
	history []string
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// SetText records value as the current clipboard content.
func (m *Memory) SetText(value string) error {
	m.history = append(m.history, value)
	return nil
}

// Text returns the current clipboard content, or "" if nothing was written.
func (m *Memory) Text() string {
	if len(m.history) == 0 {
		return ""
	}
	return m.history[len(m.history)-1]
}

// History returns a copy of every value written, oldest first.
func (m *Memory) History() []string {
	return append([]string(nil), m.history...)
}

var _ Writer = (*Memory)(nil)
