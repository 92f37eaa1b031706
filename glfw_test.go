package glfw

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryNames(t *testing.T) {
	names := libraryNames()
	require.NotEmpty(t, names)

	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, "libglfw.3.dylib", names[0])
	case "windows":
		assert.Equal(t, "glfw3.dll", names[0])
	default:
		assert.Equal(t, "libglfw.so.3", names[0])
	}
	// The versioned soname must be tried before the unversioned one.
	assert.Len(t, names, 2)
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Code: InvalidValue, Desc: "Invalid window size"}
	assert.Equal(t, "glfw: invalid-value: Invalid window size", err.Error())
}

func TestOutIntNarrowsSigned(t *testing.T) {
	// Out-parameter cells carry the native int32 in the low word; negative
	// values (DontCare, error sentinels) must survive the narrowing.
	assert.Equal(t, -1, outInt(uint64(uint32(0xFFFFFFFF))))
	assert.Equal(t, 640, outInt(640))
	assert.Equal(t, 0, outInt(0))
}

func TestDontCareSentinel(t *testing.T) {
	assert.Equal(t, -1, DontCare)
}

func TestConstantValues(t *testing.T) {
	// Spot checks against the native header values.
	assert.Equal(t, 0x00010001, int(NotInitialized))
	assert.Equal(t, 0x00010004, int(InvalidValue))
	assert.Equal(t, 0x00040001, int(Connected))
	assert.Equal(t, 0x00040002, int(Disconnected))
	assert.Equal(t, 256, int(KeyEscape))
	assert.Equal(t, 348, int(KeyMenu))
	assert.Equal(t, -1, int(KeyUnknown))
	assert.Equal(t, 0, int(Joystick1))
	assert.Equal(t, 15, int(Joystick16))
}

func TestWindowRegistry(t *testing.T) {
	w := &Window{handle: 0xdead}
	registerWindow(w)
	defer dropWindow(w.handle)

	// Known handles resolve to the registered wrapper.
	got := windowFor(0xdead)
	assert.Same(t, w, got)

	// Unknown handles get a usable transient wrapper.
	transient := windowFor(0xbeef)
	require.NotNil(t, transient)
	assert.Equal(t, uintptr(0xbeef), transient.Handle())

	assert.Nil(t, windowFor(0))
}

func TestWindowUserPointer(t *testing.T) {
	w := &Window{handle: 0x77}
	registerWindow(w)
	defer dropWindow(w.handle)

	assert.Nil(t, w.GetUserPointer())

	type appState struct{ frames int }
	s := &appState{frames: 3}
	w.SetUserPointer(s)
	assert.Same(t, s, w.GetUserPointer())

	w.SetUserPointer(nil)
	assert.Nil(t, w.GetUserPointer())
}

func TestWindowHandleNilSafe(t *testing.T) {
	assert.Equal(t, uintptr(0), windowHandle(nil))
	assert.Equal(t, uintptr(0), monitorHandle(nil))
	assert.Nil(t, monitorFor(0))
}

func TestCallbackKindNamesAreUnique(t *testing.T) {
	kinds := []string{
		posKind.Name(), sizeKind.Name(), closeKind.Name(), refreshKind.Name(),
		focusKind.Name(), iconifyKind.Name(), maximizeKind.Name(),
		fbSizeKind.Name(), contentScaleKind.Name(), keyKind.Name(),
		charKind.Name(), charModsKind.Name(), mouseButtonKind.Name(),
		cursorPosKind.Name(), cursorEnterKind.Name(), scrollKind.Name(),
		dropKind.Name(), errorKind.Name(), monitorKind.Name(),
		joystickKind.Name(),
	}
	seen := make(map[string]bool)
	for _, name := range kinds {
		require.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate kind name %q", name)
		seen[name] = true
	}
	assert.Len(t, seen, 20)
}

func TestHintGroups(t *testing.T) {
	// Window hints and init hints live in disjoint native ranges.
	for _, h := range []Hint{Resizable, Visible, ContextVersionMajor, Samples} {
		assert.Equal(t, 0x00020000, int(h)&0xFFFF0000, "hint %#x", int(h))
	}
	for _, h := range []InitHint{JoystickHatButtons, CocoaChdirResources} {
		assert.Equal(t, 0x00050000, int(h)&0xFFFF0000, "init hint %#x", int(h))
	}
}
