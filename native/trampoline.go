package native

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// CallbackKind identifies one native callback entry point: the key under
// which registrations are tracked, the default value substituted when a
// host closure faults, and the detach action that clears the native slot.
//
// Kinds are created once at package initialization of the public surface;
// for non-void native callback types the default return value must be
// declared explicitly, so a faulting closure always has a safe value to
// substitute.
type CallbackKind struct {
	name       string
	defaultRet uintptr
	detach     func(object uintptr)
}

// NewCallbackKind declares a callback kind. detach is invoked with the
// owning object handle when a scope close must clear the native slot; it
// may be nil for kinds whose slots are cleared elsewhere.
func NewCallbackKind(name string, defaultRet uintptr, detach func(object uintptr)) *CallbackKind {
	return &CallbackKind{name: name, defaultRet: defaultRet, detach: detach}
}

// Name returns the kind's identifying name.
func (k *CallbackKind) Name() string { return k.name }

// DefaultRet returns the value substituted when a closure of this kind
// faults.
func (k *CallbackKind) DefaultRet() uintptr { return k.defaultRet }

// Trampoline wraps one host closure registered for one callback slot. It is
// the identity returned to callers as the "previous callback" on
// re-registration, and the fault barrier the native dispatch path goes
// through.
type Trampoline struct {
	kind   *CallbackKind
	host   any
	scope  *Scope
	object uintptr
}

// Kind returns the trampoline's callback kind.
func (t *Trampoline) Kind() *CallbackKind { return t.kind }

// Host returns the registered host closure. Callers type-assert it back to
// the concrete callback type.
func (t *Trampoline) Host() any { return t.host }

// Scope returns the lifetime scope the registration belongs to.
func (t *Trampoline) Scope() *Scope { return t.scope }

// Guard invokes a void-returning closure body, recovering any panic. A
// panic must not unwind past this frame: the caller is a native stack frame
// and unwinding through it corrupts the native call stack. The fault is
// reported through the logging side channel only.
func (t *Trampoline) Guard(body func()) {
	defer t.recoverFault()
	body()
}

// GuardValue invokes a value-returning closure body. On a fault the kind's
// declared default return value is substituted so the native caller always
// receives a well-formed value.
func (t *Trampoline) GuardValue(body func() uintptr) (ret uintptr) {
	defer func() {
		if r := recover(); r != nil {
			t.logFault(r)
			ret = t.kind.defaultRet
		}
	}()
	return body()
}

func (t *Trampoline) recoverFault() {
	if r := recover(); r != nil {
		t.logFault(r)
	}
}

func (t *Trampoline) logFault(r any) {
	logrus.WithFields(logrus.Fields{
		"function": "Trampoline.Guard",
		"callback": t.kind.name,
		"object":   t.object,
		"panic":    r,
	}).Error("Callback panicked; substituting default return value")
}

// slotKey identifies one callback slot: global callbacks use object 0,
// window-scoped callbacks use the owning window handle.
type slotKey struct {
	kind   *CallbackKind
	object uintptr
}

// registry is the explicit keyed model of what is natively a set of global
// mutable callback slots. Get and set are the only operations.
var (
	registryMu sync.RWMutex
	registry   = make(map[slotKey]*Trampoline)
)

// Install registers host as the current closure for (kind, object) under
// the given scope and returns the previously installed trampoline, if any.
// Last write wins, matching the native library's single slot per entry
// point per object. A nil scope means ProcessScope.
func Install(kind *CallbackKind, object uintptr, host any, scope *Scope) (tr, prev *Trampoline) {
	if scope == nil {
		scope = ProcessScope
	}
	key := slotKey{kind: kind, object: object}
	tr = &Trampoline{kind: kind, host: host, scope: scope, object: object}

	registryMu.Lock()
	prev = registry[key]
	registry[key] = tr
	registryMu.Unlock()

	if prev != nil {
		prev.scope.untrack(key)
	}
	scope.track(key)
	return tr, prev
}

// Uninstall removes the registration for (kind, object) and returns it, or
// nil when the slot was already unset.
func Uninstall(kind *CallbackKind, object uintptr) *Trampoline {
	key := slotKey{kind: kind, object: object}

	registryMu.Lock()
	prev := registry[key]
	delete(registry, key)
	registryMu.Unlock()

	if prev != nil {
		prev.scope.untrack(key)
	}
	return prev
}

// Current returns the trampoline installed for (kind, object), or nil. The
// native dispatch path calls this on every callback invocation.
func Current(kind *CallbackKind, object uintptr) *Trampoline {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[slotKey{kind: kind, object: object}]
}

// DropObject removes every registration owned by object, without touching
// the native slots: it is called when the native object itself is being
// destroyed, which already invalidates them.
func DropObject(object uintptr) {
	// Collect under the registry lock, untrack outside it: scope locks are
	// never taken while the registry lock is held.
	registryMu.Lock()
	var dropped []*Trampoline
	for key, tr := range registry {
		if key.object == object {
			dropped = append(dropped, tr)
			delete(registry, key)
		}
	}
	registryMu.Unlock()

	for _, tr := range dropped {
		tr.scope.untrack(slotKey{kind: tr.kind, object: tr.object})
	}
	if len(dropped) > 0 {
		logrus.WithFields(logrus.Fields{
			"function": "DropObject",
			"object":   object,
			"slots":    len(dropped),
		}).Debug("Dropped callback registrations for destroyed object")
	}
}

// ResetRegistry clears every registration. Called on library termination,
// which invalidates all native callback slots at once.
func ResetRegistry() {
	registryMu.Lock()
	cleared := make([]*Trampoline, 0, len(registry))
	for key, tr := range registry {
		cleared = append(cleared, tr)
		delete(registry, key)
	}
	registryMu.Unlock()

	for _, tr := range cleared {
		tr.scope.untrack(slotKey{kind: tr.kind, object: tr.object})
	}
}
