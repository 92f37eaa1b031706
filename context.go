package glfw

import (
	"runtime"

	"github.com/opd-ai/glfw/codec"
	"github.com/opd-ai/glfw/native"
)

// MakeContextCurrent makes the window's OpenGL context current on the
// calling thread, or detaches the current context when w is nil.
func MakeContextCurrent(w *Window) {
	mustLoad().MakeContextCurrent(windowHandle(w))
}

// GetCurrentContext returns the window whose context is current on the
// calling thread, or nil.
func GetCurrentContext() *Window {
	return windowFor(mustLoad().GetCurrentContext())
}

// SwapBuffers swaps the window's front and back buffers.
func (w *Window) SwapBuffers() {
	mustLoad().SwapBuffers(w.handle)
}

// SwapInterval sets the number of display refreshes to wait per buffer
// swap for the current context.
func SwapInterval(interval int) {
	mustLoad().SwapInterval(int32(interval))
}

// ExtensionSupported reports whether the named API extension is supported
// by the current context.
func ExtensionSupported(extension string) bool {
	procs := mustLoad()
	e := native.CString(extension)
	ok := procs.ExtensionSupported(native.BytesPtr(e))
	runtime.KeepAlive(e)
	return codec.DecodeBool(ok)
}

// GetProcAddress returns the address of the named function in the current
// context's client API, or 0.
func GetProcAddress(name string) uintptr {
	procs := mustLoad()
	n := native.CString(name)
	addr := procs.GetProcAddress(native.BytesPtr(n))
	runtime.KeepAlive(n)
	return addr
}
