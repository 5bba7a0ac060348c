package mocks

import "sync"

// MockMount records every HTML snapshot a card renders into it.
type MockMount struct {
	mu    sync.Mutex
	htmls []string
}

func NewMockMount() *MockMount {
	return &MockMount{}
}

func (m *MockMount) SetHTML(html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.htmls = append(m.htmls, html)
}

// Last returns the most recent render, or "" if nothing rendered yet.
func (m *MockMount) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.htmls) == 0 {
		return ""
	}
	return m.htmls[len(m.htmls)-1]
}

// All returns every render in order.
func (m *MockMount) All() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.htmls...)
}

// Renders returns how many times the card rendered.
func (m *MockMount) Renders() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.htmls)
}
