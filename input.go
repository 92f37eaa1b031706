package glfw

import (
	"runtime"
	"unsafe"

	"github.com/opd-ai/glfw/codec"
	"github.com/opd-ai/glfw/layout"
	"github.com/opd-ai/glfw/native"
)

// GetInputMode reads a per-window input option.
func (w *Window) GetInputMode(mode InputMode) int {
	return int(mustLoad().GetInputMode(w.handle, int32(mode)))
}

// SetInputMode writes a per-window input option.
func (w *Window) SetInputMode(mode InputMode, value int) {
	mustLoad().SetInputMode(w.handle, int32(mode), int32(value))
}

// RawMouseMotionSupported reports whether the platform delivers raw,
// unscaled mouse motion while the cursor is disabled.
func RawMouseMotionSupported() bool {
	return codec.DecodeBool(mustLoad().RawMouseMotionSupported())
}

// GetKeyName returns the layout-specific name of a printable key, keyed by
// key token or, for KeyUnknown, by scancode. Non-printable keys yield "".
func GetKeyName(key Key, scancode int) string {
	return native.GoString(mustLoad().GetKeyName(int32(key), int32(scancode)))
}

// GetKeyScancode returns the platform scancode of the key, or -1 for
// KeyUnknown.
func GetKeyScancode(key Key) int {
	return int(mustLoad().GetKeyScancode(int32(key)))
}

// GetKey reports the last polled state of a key: Press or Release.
func (w *Window) GetKey(key Key) Action {
	return Action(mustLoad().GetKey(w.handle, int32(key)))
}

// GetMouseButton reports the last polled state of a mouse button.
func (w *Window) GetMouseButton(button MouseButton) Action {
	return Action(mustLoad().GetMouseButton(w.handle, int32(button)))
}

// GetCursorPos reports the cursor position in client-area coordinates.
func (w *Window) GetCursorPos() (x, y float64) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetCursorPos(w.handle, addrs[0], addrs[1])
	}, native.Out("x", codec.Float64), native.Out("y", codec.Float64))
	return codec.Float64From(r[0]), codec.Float64From(r[1])
}

// SetCursorPos moves the cursor within the window, which must have focus.
func (w *Window) SetCursorPos(x, y float64) {
	mustLoad().SetCursorPos(w.handle, x, y)
}

// Cursor is an opaque handle to a native cursor image.
type Cursor struct {
	handle uintptr
}

// CreateCursor creates a custom cursor from an RGBA image with the given
// hotspot. The image is copied by the native library; the Go-side pixel
// buffer only needs to survive this call.
func CreateCursor(image *Image, xhot, yhot int) (*Cursor, error) {
	procs := mustLoad()
	imgs := layout.EncodeImages([]*Image{image})
	handle := procs.CreateCursor(uintptr(imgs.Ptr()), int32(xhot), int32(yhot))
	runtime.KeepAlive(imgs)
	if handle == 0 {
		return nil, lastError("cursor creation failed")
	}
	return &Cursor{handle: handle}, nil
}

// CreateStandardCursor creates one of the platform's themed cursors.
func CreateStandardCursor(shape StandardCursor) (*Cursor, error) {
	handle := mustLoad().CreateStandardCursor(int32(shape))
	if handle == 0 {
		return nil, lastError("standard cursor creation failed")
	}
	return &Cursor{handle: handle}, nil
}

// Destroy destroys the cursor. A destroyed cursor must not be current on
// any window.
func (c *Cursor) Destroy() {
	mustLoad().DestroyCursor(c.handle)
}

// SetCursor makes the cursor current for the window's client area, or
// restores the default arrow when c is nil.
func (w *Window) SetCursor(c *Cursor) {
	var handle uintptr
	if c != nil {
		handle = c.handle
	}
	mustLoad().SetCursor(w.handle, handle)
}

// SetClipboardString places a UTF-8 string on the system clipboard.
func SetClipboardString(value string) {
	procs := mustLoad()
	v := native.CString(value)
	procs.SetClipboardString(0, native.BytesPtr(v))
	runtime.KeepAlive(v)
}

// GetClipboardString returns the system clipboard's contents if it holds a
// convertible string, or "".
func GetClipboardString() string {
	return native.GoString(mustLoad().GetClipboardString(0))
}

// GetTime returns the native timer's value in seconds since Init (or the
// last SetTime).
func GetTime() float64 {
	return mustLoad().GetTime()
}

// SetTime rewinds or advances the native timer.
func SetTime(t float64) {
	mustLoad().SetTime(t)
}

// GetTimerValue returns the raw timer value in ticks.
func GetTimerValue() uint64 {
	return mustLoad().GetTimerValue()
}

// GetTimerFrequency returns the raw timer frequency in ticks per second.
func GetTimerFrequency() uint64 {
	return mustLoad().GetTimerFrequency()
}

// Present reports whether a joystick is connected in this slot. Unlike the
// gamepad queries it does not require a mapping.
func (j Joystick) Present() bool {
	return codec.DecodeBool(mustLoad().JoystickPresent(int32(j)))
}

// GetAxes returns the joystick's axis values in the -1..1 range, or nil if
// the joystick is not present.
func (j Joystick) GetAxes() []float32 {
	procs := mustLoad()
	var base uintptr
	r := native.CallOuts(func(addrs []uintptr) {
		base = procs.GetJoystickAxes(int32(j), addrs[0])
	}, native.Out("count", codec.Int32))

	count := outInt(r[0])
	if base == 0 || count <= 0 {
		return nil
	}
	axes := make([]float32, count)
	copy(axes, unsafe.Slice((*float32)(unsafe.Pointer(base)), count))
	return axes
}

// GetButtons returns the joystick's button states, or nil if the joystick
// is not present.
func (j Joystick) GetButtons() []Action {
	procs := mustLoad()
	var base uintptr
	r := native.CallOuts(func(addrs []uintptr) {
		base = procs.GetJoystickButtons(int32(j), addrs[0])
	}, native.Out("count", codec.Int32))

	count := outInt(r[0])
	if base == 0 || count <= 0 {
		return nil
	}
	raw := unsafe.Slice((*uint8)(unsafe.Pointer(base)), count)
	buttons := make([]Action, count)
	for i, b := range raw {
		buttons[i] = Action(b)
	}
	return buttons
}

// GetHats returns the joystick's hat switch states, or nil if the joystick
// is not present.
func (j Joystick) GetHats() []JoystickHatState {
	procs := mustLoad()
	var base uintptr
	r := native.CallOuts(func(addrs []uintptr) {
		base = procs.GetJoystickHats(int32(j), addrs[0])
	}, native.Out("count", codec.Int32))

	count := outInt(r[0])
	if base == 0 || count <= 0 {
		return nil
	}
	raw := unsafe.Slice((*uint8)(unsafe.Pointer(base)), count)
	hats := make([]JoystickHatState, count)
	for i, h := range raw {
		hats[i] = JoystickHatState(h)
	}
	return hats
}

// GetName returns the joystick's name, or "" if it is not present.
func (j Joystick) GetName() string {
	return native.GoString(mustLoad().GetJoystickName(int32(j)))
}

// GetGUID returns the joystick's SDL-compatible GUID, or "" if it is not
// present.
func (j Joystick) GetGUID() string {
	return native.GoString(mustLoad().GetJoystickGUID(int32(j)))
}

// IsGamepad reports whether the joystick is present and has a gamepad
// mapping.
func (j Joystick) IsGamepad() bool {
	return codec.DecodeBool(mustLoad().JoystickIsGamepad(int32(j)))
}

// GetGamepadName returns the human-readable name from the joystick's
// gamepad mapping, or "" if it has none.
func (j Joystick) GetGamepadName() string {
	return native.GoString(mustLoad().GetGamepadName(int32(j)))
}

// GamepadState is the remapped state of a gamepad: button states indexed
// by GamepadButton and axis values indexed by GamepadAxis.
type GamepadState struct {
	Buttons [15]Action
	Axes    [6]float32
}

// GetGamepadState retrieves the joystick's state remapped through its
// gamepad mapping, or nil if the joystick is not present or unmapped.
func (j Joystick) GetGamepadState() *GamepadState {
	procs := mustLoad()
	buf := make([]byte, layout.GamepadStateSize())
	ok := procs.GetGamepadState(int32(j), native.BytesPtr(buf))
	if !codec.DecodeBool(ok) {
		return nil
	}
	raw := layout.DecodeGamepadState(unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)

	var state GamepadState
	for i, b := range raw.Buttons {
		state.Buttons[i] = Action(b)
	}
	state.Axes = raw.Axes
	return &state
}

// UpdateGamepadMappings adds or replaces gamepad mappings from an
// SDL_GameControllerDB format string.
func UpdateGamepadMappings(mapping string) bool {
	procs := mustLoad()
	m := native.CString(mapping)
	ok := procs.UpdateGamepadMappings(native.BytesPtr(m))
	runtime.KeepAlive(m)
	return codec.DecodeBool(ok)
}
