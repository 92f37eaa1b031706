package native

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Scope is a lifetime region for callback registrations. Every trampoline
// registered under a scope stays valid until the scope is closed; closing
// detaches the native slots the scope still owns and drops the
// registrations.
//
// Scopes do not arbitrate races with native event processing: closing a
// scope while another thread may be inside an event-dispatch call is
// caller-owned, exactly as the native library documents for replacing
// callbacks.
type Scope struct {
	name    string
	process bool

	mu     sync.Mutex
	closed bool
	slots  map[slotKey]struct{}
}

// ProcessScope is the distinguished whole-process scope. Registrations made
// without an explicit scope land here and live until library termination;
// the scope itself never closes.
var ProcessScope = &Scope{name: "process", process: true}

// NewScope creates a named scope. The name only appears in logs.
func NewScope(name string) *Scope {
	return &Scope{name: name}
}

// Name returns the scope's label.
func (s *Scope) Name() string { return s.name }

func (s *Scope) track(key slotKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		panic(fmt.Sprintf("native: registering %q callback in closed scope %q",
			key.kind.name, s.name))
	}
	if s.slots == nil {
		s.slots = make(map[slotKey]struct{})
	}
	s.slots[key] = struct{}{}
}

func (s *Scope) untrack(key slotKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
}

// Close detaches every native callback slot still owned by this scope and
// drops the registrations. Registrations that were since replaced under a
// different scope are left alone. Closing twice is a no-op; closing the
// process scope is refused.
func (s *Scope) Close() {
	if s.process {
		logrus.WithFields(logrus.Fields{
			"function": "Scope.Close",
			"scope":    s.name,
		}).Warn("Refusing to close the process scope")
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	keys := make([]slotKey, 0, len(s.slots))
	for key := range s.slots {
		keys = append(keys, key)
	}
	s.slots = nil
	s.mu.Unlock()

	for _, key := range keys {
		// Detach only if the slot still belongs to this scope; a later
		// registration under another scope owns it now.
		registryMu.Lock()
		tr := registry[key]
		owned := tr != nil && tr.scope == s
		if owned {
			delete(registry, key)
		}
		registryMu.Unlock()

		if owned && key.kind.detach != nil {
			key.kind.detach(key.object)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function": "Scope.Close",
		"scope":    s.name,
		"slots":    len(keys),
	}).Debug("Closed callback scope")
}
