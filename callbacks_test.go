package glfw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/glfw/native"
)

// Dispatch-path test: install through the registry the way the setters do,
// then invoke the way a dispatcher does. No native library involved.
func TestKeyCallbackDispatch(t *testing.T) {
	const handle = uintptr(0x51)
	defer native.DropObject(handle)

	var gotKey Key
	var gotAction Action
	var gotMods ModifierKey
	cb := KeyCallback(func(w *Window, key Key, scancode int, action Action, mods ModifierKey) {
		gotKey = key
		gotAction = action
		gotMods = mods
	})
	tr, prev := native.Install(keyKind, handle, cb, nil)
	require.NotNil(t, tr)
	assert.Nil(t, prev)

	cur := native.Current(keyKind, handle)
	require.Same(t, tr, cur)
	cur.Guard(func() {
		cur.Host().(KeyCallback)(windowFor(handle),
			Key(KeyEscape), 9, Action(Press), ModShift|ModControl)
	})

	assert.Equal(t, KeyEscape, gotKey)
	assert.Equal(t, Press, gotAction)
	assert.Equal(t, ModShift|ModControl, gotMods)
}

func TestCallbackPanicDoesNotUnwind(t *testing.T) {
	const handle = uintptr(0x52)
	defer native.DropObject(handle)

	cb := CloseCallback(func(w *Window) { panic("handler bug") })
	tr, _ := native.Install(closeKind, handle, cb, nil)

	assert.NotPanics(t, func() {
		tr.Guard(func() {
			tr.Host().(CloseCallback)(windowFor(handle))
		})
	})
}

func TestReinstallReturnsPrevious(t *testing.T) {
	const handle = uintptr(0x53)
	defer native.DropObject(handle)

	first := ScrollCallback(func(w *Window, x, y float64) {})
	second := ScrollCallback(func(w *Window, x, y float64) {})

	tr1, prev := native.Install(scrollKind, handle, first, nil)
	assert.Nil(t, prev)

	_, prev = native.Install(scrollKind, handle, second, nil)
	require.Same(t, tr1, prev)
}

func TestScopedCallbackDetachesOnClose(t *testing.T) {
	const handle = uintptr(0x54)
	defer native.DropObject(handle)

	scope := NewScope("overlay")
	cb := CursorPosCallback(func(w *Window, x, y float64) {})
	native.Install(cursorPosKind, handle, cb, scope)
	require.NotNil(t, native.Current(cursorPosKind, handle))

	scope.Close()
	assert.Nil(t, native.Current(cursorPosKind, handle))
}
