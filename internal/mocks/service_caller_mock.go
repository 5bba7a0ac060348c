package mocks

import (
	"context"
	"encoding/json"
	"sync"
)

// ServiceCall records the parameters of one Call invocation.
type ServiceCall struct {
	Domain  string
	Action  string
	Payload map[string]any
}

// MockServiceCaller is an in-memory ServiceCaller for tests. Responses are
// queued per action; the last queued response is sticky so repeated calls
// keep answering. CallFunc, when set, overrides the queues entirely.
type MockServiceCaller struct {
	mu        sync.Mutex
	calls     []ServiceCall
	responses map[string][]stubResponse

	CallFunc func(ctx context.Context, serviceDomain, action string, payload map[string]any) (json.RawMessage, error)
}

type stubResponse struct {
	raw json.RawMessage
	err error
}

func NewMockServiceCaller() *MockServiceCaller {
	return &MockServiceCaller{
		responses: make(map[string][]stubResponse),
	}
}

// Respond queues a raw JSON response for an action.
func (m *MockServiceCaller) Respond(action, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[action] = append(m.responses[action], stubResponse{raw: json.RawMessage(raw)})
}

// Fail queues an error response for an action.
func (m *MockServiceCaller) Fail(action string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[action] = append(m.responses[action], stubResponse{err: err})
}

func (m *MockServiceCaller) Call(ctx context.Context, serviceDomain, action string, payload map[string]any) (json.RawMessage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ServiceCall{Domain: serviceDomain, Action: action, Payload: payload})
	fn := m.CallFunc
	var resp stubResponse
	if fn == nil {
		queue := m.responses[action]
		if len(queue) > 0 {
			resp = queue[0]
			if len(queue) > 1 {
				m.responses[action] = queue[1:]
			}
		}
	}
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, serviceDomain, action, payload)
	}
	return resp.raw, resp.err
}

// Calls returns every recorded call.
func (m *MockServiceCaller) Calls() []ServiceCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ServiceCall(nil), m.calls...)
}

// CallsFor returns the recorded calls for one action.
func (m *MockServiceCaller) CallsFor(action string) []ServiceCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []ServiceCall
	for _, c := range m.calls {
		if c.Action == action {
			out = append(out, c)
		}
	}
	return out
}
