package native

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKind(name string) *CallbackKind {
	return NewCallbackKind(name, 0, nil)
}

func TestInstallReturnsPreviousTrampolineIdentity(t *testing.T) {
	defer ResetRegistry()
	kind := testKind("size")
	first := func() {}
	second := func() {}

	tr1, prev := Install(kind, 1, first, nil)
	require.Nil(t, prev)

	// Re-registering the slot returns the first registration's wrapped
	// identity, not the raw closure.
	tr2, prev := Install(kind, 1, second, nil)
	require.NotNil(t, prev)
	assert.Same(t, tr1, prev)
	assert.NotSame(t, tr1, tr2)
	assert.Same(t, tr2, Current(kind, 1))
}

func TestInstallSlotsAreKeyedPerObject(t *testing.T) {
	defer ResetRegistry()
	kind := testKind("pos")
	trA, _ := Install(kind, 100, func() {}, nil)
	trB, _ := Install(kind, 200, func() {}, nil)

	assert.Same(t, trA, Current(kind, 100))
	assert.Same(t, trB, Current(kind, 200))
	assert.Nil(t, Current(kind, 300))
}

func TestUninstallClearsSlot(t *testing.T) {
	defer ResetRegistry()
	kind := testKind("close")
	tr, _ := Install(kind, 1, func() {}, nil)

	assert.Same(t, tr, Uninstall(kind, 1))
	assert.Nil(t, Current(kind, 1))
	assert.Nil(t, Uninstall(kind, 1))
}

func TestDropObjectRemovesAllSlotsForObject(t *testing.T) {
	defer ResetRegistry()
	kindA := testKind("key")
	kindB := testKind("char")
	Install(kindA, 7, func() {}, nil)
	Install(kindB, 7, func() {}, nil)
	keep, _ := Install(kindA, 8, func() {}, nil)

	DropObject(7)
	assert.Nil(t, Current(kindA, 7))
	assert.Nil(t, Current(kindB, 7))
	assert.Same(t, keep, Current(kindA, 8))
}

func TestGuardRecoversPanicAndLogs(t *testing.T) {
	defer ResetRegistry()
	hook := logtest.NewGlobal()
	defer hook.Reset()

	kind := testKind("drop")
	tr, _ := Install(kind, 1, func() {}, nil)

	assert.NotPanics(t, func() {
		tr.Guard(func() { panic("closure exploded") })
	})

	// The fault is observable only through the logging side channel.
	require.NotEmpty(t, hook.Entries)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "drop", entry.Data["callback"])
	assert.Equal(t, "closure exploded", entry.Data["panic"])
}

func TestGuardValueSubstitutesDeclaredDefaultOnFault(t *testing.T) {
	defer ResetRegistry()
	hook := logtest.NewGlobal()
	defer hook.Reset()

	kind := NewCallbackKind("filter", 1, nil) // non-void kind with declared default
	tr, _ := Install(kind, 1, func() {}, nil)

	got := tr.GuardValue(func() uintptr { panic("boom") })
	assert.Equal(t, uintptr(1), got)
	require.NotEmpty(t, hook.Entries)

	// A healthy closure's value passes through untouched.
	hook.Reset()
	got = tr.GuardValue(func() uintptr { return 99 })
	assert.Equal(t, uintptr(99), got)
	assert.Empty(t, hook.Entries)
}

func TestScopeCloseDetachesOwnedSlots(t *testing.T) {
	defer ResetRegistry()
	var detached []uintptr
	kind := NewCallbackKind("focus", 0, func(object uintptr) {
		detached = append(detached, object)
	})

	scope := NewScope("session")
	Install(kind, 11, func() {}, scope)
	Install(kind, 12, func() {}, scope)

	scope.Close()
	assert.Nil(t, Current(kind, 11))
	assert.Nil(t, Current(kind, 12))
	assert.ElementsMatch(t, []uintptr{11, 12}, detached)
}

func TestScopeCloseLeavesReplacedSlotsAlone(t *testing.T) {
	defer ResetRegistry()
	var detached []uintptr
	kind := NewCallbackKind("iconify", 0, func(object uintptr) {
		detached = append(detached, object)
	})

	old := NewScope("old")
	Install(kind, 5, func() {}, old)

	// The slot is re-registered under a different scope before old closes.
	current := NewScope("current")
	tr, _ := Install(kind, 5, func() {}, current)

	old.Close()
	assert.Empty(t, detached)
	assert.Same(t, tr, Current(kind, 5))
}

func TestScopeCloseIsIdempotent(t *testing.T) {
	defer ResetRegistry()
	calls := 0
	kind := NewCallbackKind("maximize", 0, func(uintptr) { calls++ })
	scope := NewScope("once")
	Install(kind, 1, func() {}, scope)

	scope.Close()
	scope.Close()
	assert.Equal(t, 1, calls)
}

func TestProcessScopeRefusesToClose(t *testing.T) {
	defer ResetRegistry()
	hook := logtest.NewGlobal()
	defer hook.Reset()

	kind := testKind("error")
	tr, _ := Install(kind, 0, func() {}, ProcessScope)

	ProcessScope.Close()
	assert.Same(t, tr, Current(kind, 0))
	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRegisteringInClosedScopePanics(t *testing.T) {
	defer ResetRegistry()
	kind := testKind("refresh")
	scope := NewScope("dead")
	scope.Close()

	assert.Panics(t, func() { Install(kind, 1, func() {}, scope) })
}
