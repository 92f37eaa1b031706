package glfw

import (
	"runtime"
	"sync"

	"github.com/opd-ai/glfw/codec"
	"github.com/opd-ai/glfw/layout"
	"github.com/opd-ai/glfw/native"
)

// Image is a rectangle of RGBA pixel data, used for window icons and
// custom cursors.
type Image = layout.Image

// Window is an opaque handle to one native window and its context.
//
// The native library's thread-affinity rules apply unchanged: most window
// operations must happen on the thread that initialized the library. This
// layer documents the constraint, it does not enforce it.
type Window struct {
	handle uintptr
}

// windowRegistry resolves native window handles back to their *Window when
// a callback fires, and keeps user pointers on the Go side of the boundary.
var (
	windowsMu   sync.RWMutex
	windows     = make(map[uintptr]*Window)
	userPtrs    = make(map[uintptr]any)
)

func registerWindow(w *Window) {
	windowsMu.Lock()
	defer windowsMu.Unlock()
	windows[w.handle] = w
}

func dropWindow(handle uintptr) {
	windowsMu.Lock()
	defer windowsMu.Unlock()
	delete(windows, handle)
	delete(userPtrs, handle)
}

func dropAllWindows() {
	windowsMu.Lock()
	defer windowsMu.Unlock()
	windows = make(map[uintptr]*Window)
	userPtrs = make(map[uintptr]any)
}

// windowFor resolves a native handle delivered by a callback. Handles this
// registry has never seen (a window created outside the binding) still get
// a usable transient wrapper.
func windowFor(handle uintptr) *Window {
	if handle == 0 {
		return nil
	}
	windowsMu.RLock()
	w := windows[handle]
	windowsMu.RUnlock()
	if w == nil {
		w = &Window{handle: handle}
	}
	return w
}

// DefaultWindowHints resets all window hints to their defaults.
func DefaultWindowHints() {
	mustLoad().DefaultWindowHints()
}

// WindowHint sets a numeric window, framebuffer, or context hint for the
// next CreateWindow call. Numeric hints that accept "don't care" take the
// DontCare sentinel.
func WindowHint(hint Hint, value int) {
	mustLoad().WindowHint(int32(hint), int32(value))
}

// WindowHintBool sets a boolean hint such as Resizable or Visible, encoding
// true as native 1 and false as native 0.
func WindowHintBool(hint Hint, value bool) {
	mustLoad().WindowHint(int32(hint), codec.EncodeBool(value))
}

// WindowHintString sets a string-valued hint.
func WindowHintString(hint Hint, value string) {
	procs := mustLoad()
	v := native.CString(value)
	procs.WindowHintString(int32(hint), native.BytesPtr(v))
	runtime.KeepAlive(v)
}

// CreateWindow creates a window and its associated context. monitor is
// non-nil for fullscreen, share is non-nil to share the new context's
// objects with an existing one.
func CreateWindow(width, height int, title string, monitor *Monitor, share *Window) (*Window, error) {
	procs := mustLoad()
	t := native.CString(title)
	handle := procs.CreateWindow(int32(width), int32(height),
		native.BytesPtr(t), monitorHandle(monitor), windowHandle(share))
	runtime.KeepAlive(t)
	if handle == 0 {
		return nil, lastError("window creation failed")
	}
	w := &Window{handle: handle}
	registerWindow(w)
	return w, nil
}

// Destroy destroys the window, its context, and every callback
// registration keyed to it. The native library never invokes callbacks for
// a destroyed window, so the registrations are dropped without touching
// the now-invalid native slots.
func (w *Window) Destroy() {
	mustLoad().DestroyWindow(w.handle)
	native.DropObject(w.handle)
	dropWindow(w.handle)
}

// Handle exposes the native window pointer for interoperation with other
// native libraries (surface creation, embedding).
func (w *Window) Handle() uintptr { return w.handle }

func windowHandle(w *Window) uintptr {
	if w == nil {
		return 0
	}
	return w.handle
}

// ShouldClose reports the window's close flag.
func (w *Window) ShouldClose() bool {
	return codec.DecodeBool(mustLoad().WindowShouldClose(w.handle))
}

// SetShouldClose sets the window's close flag.
func (w *Window) SetShouldClose(value bool) {
	mustLoad().SetWindowShouldClose(w.handle, codec.EncodeBool(value))
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	procs := mustLoad()
	t := native.CString(title)
	procs.SetWindowTitle(w.handle, native.BytesPtr(t))
	runtime.KeepAlive(t)
}

// SetIcon sets the window's icon candidates; the system picks the closest
// sizes. An empty slice reverts to the platform default icon. The
// serialized images only need to survive this call; the native library
// copies what it keeps.
func (w *Window) SetIcon(images []*Image) {
	procs := mustLoad()
	if len(images) == 0 {
		procs.SetWindowIcon(w.handle, 0, 0)
		return
	}
	imgs := layout.EncodeImages(images)
	procs.SetWindowIcon(w.handle, int32(imgs.Count()), uintptr(imgs.Ptr()))
	runtime.KeepAlive(imgs)
}

// GetPos reports the position of the window's client area.
func (w *Window) GetPos() (x, y int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetWindowPos(w.handle, addrs[0], addrs[1])
	}, native.Out("x", codec.Int32), native.Out("y", codec.Int32))
	return outInt(r[0]), outInt(r[1])
}

// SetPos moves the window's client area.
func (w *Window) SetPos(x, y int) {
	mustLoad().SetWindowPos(w.handle, int32(x), int32(y))
}

// GetSize reports the size of the window's client area in screen
// coordinates.
func (w *Window) GetSize() (width, height int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetWindowSize(w.handle, addrs[0], addrs[1])
	}, native.Out("width", codec.Int32), native.Out("height", codec.Int32))
	return outInt(r[0]), outInt(r[1])
}

// SetSize resizes the window's client area.
func (w *Window) SetSize(width, height int) {
	mustLoad().SetWindowSize(w.handle, int32(width), int32(height))
}

// SetSizeLimits constrains the client area size. Pass DontCare for any
// bound to leave it unconstrained.
func (w *Window) SetSizeLimits(minW, minH, maxW, maxH int) {
	mustLoad().SetWindowSizeLimits(w.handle,
		int32(minW), int32(minH), int32(maxW), int32(maxH))
}

// SetAspectRatio constrains the client area aspect ratio. Pass DontCare
// for both terms to disable the constraint.
func (w *Window) SetAspectRatio(numer, denom int) {
	mustLoad().SetWindowAspectRatio(w.handle, int32(numer), int32(denom))
}

// GetFramebufferSize reports the size of the window's framebuffer in
// pixels.
func (w *Window) GetFramebufferSize() (width, height int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetFramebufferSize(w.handle, addrs[0], addrs[1])
	}, native.Out("width", codec.Int32), native.Out("height", codec.Int32))
	return outInt(r[0]), outInt(r[1])
}

// GetFrameSize reports the size of each edge of the window's frame.
func (w *Window) GetFrameSize() (left, top, right, bottom int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetWindowFrameSize(w.handle, addrs[0], addrs[1], addrs[2], addrs[3])
	},
		native.Out("left", codec.Int32),
		native.Out("top", codec.Int32),
		native.Out("right", codec.Int32),
		native.Out("bottom", codec.Int32),
	)
	return outInt(r[0]), outInt(r[1]), outInt(r[2]), outInt(r[3])
}

// GetContentScale reports the window's content scale, the ratio between
// its current DPI and the platform's default DPI.
func (w *Window) GetContentScale() (x, y float32) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetWindowContentScale(w.handle, addrs[0], addrs[1])
	}, native.Out("x", codec.Float32), native.Out("y", codec.Float32))
	return codec.Float32From(r[0]), codec.Float32From(r[1])
}

// GetOpacity reports the window's whole-window opacity.
func (w *Window) GetOpacity() float32 {
	return mustLoad().GetWindowOpacity(w.handle)
}

// SetOpacity sets the window's whole-window opacity, 0 through 1.
func (w *Window) SetOpacity(opacity float32) {
	mustLoad().SetWindowOpacity(w.handle, opacity)
}

// Iconify minimizes the window, or restores a fullscreen window's video
// mode.
func (w *Window) Iconify() { mustLoad().IconifyWindow(w.handle) }

// Restore un-minimizes or un-maximizes the window.
func (w *Window) Restore() { mustLoad().RestoreWindow(w.handle) }

// Maximize maximizes the window.
func (w *Window) Maximize() { mustLoad().MaximizeWindow(w.handle) }

// Show makes a hidden window visible.
func (w *Window) Show() { mustLoad().ShowWindow(w.handle) }

// Hide hides a visible window.
func (w *Window) Hide() { mustLoad().HideWindow(w.handle) }

// Focus gives the window input focus. Prefer RequestAttention to avoid
// stealing focus.
func (w *Window) Focus() { mustLoad().FocusWindow(w.handle) }

// RequestAttention asks the platform to highlight the window for the user.
func (w *Window) RequestAttention() { mustLoad().RequestWindowAttention(w.handle) }

// GetMonitor returns the monitor a fullscreen window occupies, or nil for
// a windowed one.
func (w *Window) GetMonitor() *Monitor {
	return monitorFor(mustLoad().GetWindowMonitor(w.handle))
}

// SetMonitor moves the window between fullscreen (monitor non-nil) and
// windowed (monitor nil) modes. refreshRate accepts DontCare.
func (w *Window) SetMonitor(m *Monitor, x, y, width, height, refreshRate int) {
	mustLoad().SetWindowMonitor(w.handle, monitorHandle(m),
		int32(x), int32(y), int32(width), int32(height), int32(refreshRate))
}

// GetAttrib reads a window attribute.
func (w *Window) GetAttrib(attrib Hint) int {
	return int(mustLoad().GetWindowAttrib(w.handle, int32(attrib)))
}

// GetAttribBool reads a boolean window attribute such as Focused or
// Hovered.
func (w *Window) GetAttribBool(attrib Hint) bool {
	return codec.DecodeBool(mustLoad().GetWindowAttrib(w.handle, int32(attrib)))
}

// SetAttrib writes one of the settable window attributes.
func (w *Window) SetAttrib(attrib Hint, value int) {
	mustLoad().SetWindowAttrib(w.handle, int32(attrib), int32(value))
}

// SetAttribBool writes a boolean window attribute.
func (w *Window) SetAttribBool(attrib Hint, value bool) {
	mustLoad().SetWindowAttrib(w.handle, int32(attrib), codec.EncodeBool(value))
}

// SetUserPointer associates an arbitrary Go value with the window. The
// value stays on the Go side of the boundary; it is never handed to native
// code.
func (w *Window) SetUserPointer(value any) {
	windowsMu.Lock()
	defer windowsMu.Unlock()
	if value == nil {
		delete(userPtrs, w.handle)
		return
	}
	userPtrs[w.handle] = value
}

// GetUserPointer returns the value set by SetUserPointer, or nil.
func (w *Window) GetUserPointer() any {
	windowsMu.RLock()
	defer windowsMu.RUnlock()
	return userPtrs[w.handle]
}
