package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible before auto-dismissal.
const DefaultTTL = 2500 * time.Millisecond

type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

type Notification struct {
	Text string
	Kind Kind
}

// Toast is a card's single transient notification surface. Showing a new
// notification replaces the current one and cancels its dismissal timer, so
// the newest message always gets the full TTL.
type Toast struct {
	mu       sync.Mutex
	current  *Notification
	timer    *time.Timer
	gen      uint64
	ttl      time.Duration
	onChange func()
}

// New builds a toast surface. onChange fires after every visibility change,
// including timer-driven dismissal, and must be safe to call from a timer
// goroutine.
func New(ttl time.Duration, onChange func()) *Toast {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Toast{ttl: ttl, onChange: onChange}
}

func (t *Toast) Show(text string, kind Kind) {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.current = &Notification{Text: text, Kind: kind}
	// A stopped timer may already have fired; the generation check in
	// dismiss keeps it from clearing the replacement.
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(t.ttl, func() { t.dismiss(gen) })
	t.mu.Unlock()

	t.notify()
}

// Dismiss hides the current notification immediately.
func (t *Toast) Dismiss() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
	cleared := t.current != nil
	t.current = nil
	t.mu.Unlock()

	if cleared {
		t.notify()
	}
}

// Current returns a copy of the visible notification, or nil.
func (t *Toast) Current() *Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil
	}
	n := *t.current
	return &n
}

func (t *Toast) dismiss(gen uint64) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.current = nil
	t.timer = nil
	t.mu.Unlock()

	t.notify()
}

func (t *Toast) notify() {
	if t.onChange != nil {
		t.onChange()
	}
}
