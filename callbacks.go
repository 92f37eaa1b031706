package glfw

import (
	"sync"

	"github.com/ebitengine/purego"

	"github.com/opd-ai/glfw/codec"
	"github.com/opd-ai/glfw/native"
)

// Host callback signatures. Each Set*Callback wrapper installs the closure
// behind a fault-isolating trampoline and returns the previously installed
// trampoline, matching the native library's single-slot, last-write-wins
// semantics. Every wrapper has a WithScope form; the plain form registers
// in ProcessScope.
type (
	// PosCallback reports a window position change.
	PosCallback func(w *Window, xpos, ypos int)
	// SizeCallback reports a client-area size change.
	SizeCallback func(w *Window, width, height int)
	// CloseCallback reports that the user attempted to close the window.
	CloseCallback func(w *Window)
	// RefreshCallback reports that the window contents need redrawing.
	RefreshCallback func(w *Window)
	// FocusCallback reports focus gain or loss.
	FocusCallback func(w *Window, focused bool)
	// IconifyCallback reports iconification state changes.
	IconifyCallback func(w *Window, iconified bool)
	// MaximizeCallback reports maximization state changes.
	MaximizeCallback func(w *Window, maximized bool)
	// FramebufferSizeCallback reports a framebuffer pixel-size change.
	FramebufferSizeCallback func(w *Window, width, height int)
	// ContentScaleCallback reports a content scale change.
	ContentScaleCallback func(w *Window, x, y float32)
	// KeyCallback reports a key press, release, or repeat.
	KeyCallback func(w *Window, key Key, scancode int, action Action, mods ModifierKey)
	// CharCallback reports a translated Unicode input character.
	CharCallback func(w *Window, char rune)
	// CharModsCallback reports a Unicode character with modifier state.
	CharModsCallback func(w *Window, char rune, mods ModifierKey)
	// MouseButtonCallback reports a mouse button press or release.
	MouseButtonCallback func(w *Window, button MouseButton, action Action, mods ModifierKey)
	// CursorPosCallback reports cursor movement in client coordinates.
	CursorPosCallback func(w *Window, xpos, ypos float64)
	// CursorEnterCallback reports the cursor entering or leaving the
	// client area.
	CursorEnterCallback func(w *Window, entered bool)
	// ScrollCallback reports scroll wheel or touchpad scrolling.
	ScrollCallback func(w *Window, xoff, yoff float64)
	// DropCallback reports files or directories dropped on the window.
	DropCallback func(w *Window, paths []string)
	// ErrorCallback reports a native error as it occurs. Global.
	ErrorCallback func(code ErrorCode, description string)
	// MonitorCallback reports monitor connection changes. Global.
	MonitorCallback func(m *Monitor, event PeripheralEvent)
	// JoystickCallback reports joystick connection changes. Global.
	JoystickCallback func(jid Joystick, event PeripheralEvent)
)

// Callback kinds: one per native callback entry point. All of the native
// library's callbacks return void, so every kind's declared default is
// zero; the trampoline machinery still requires it to be stated.
var (
	posKind = native.NewCallbackKind("window-pos", 0, func(object uintptr) {
		if f := p.SetWindowPosCallback; f != nil {
			f(object, 0)
		}
	})
	sizeKind = native.NewCallbackKind("window-size", 0, func(object uintptr) {
		if f := p.SetWindowSizeCallback; f != nil {
			f(object, 0)
		}
	})
	closeKind = native.NewCallbackKind("window-close", 0, func(object uintptr) {
		if f := p.SetWindowCloseCallback; f != nil {
			f(object, 0)
		}
	})
	refreshKind = native.NewCallbackKind("window-refresh", 0, func(object uintptr) {
		if f := p.SetWindowRefreshCallback; f != nil {
			f(object, 0)
		}
	})
	focusKind = native.NewCallbackKind("window-focus", 0, func(object uintptr) {
		if f := p.SetWindowFocusCallback; f != nil {
			f(object, 0)
		}
	})
	iconifyKind = native.NewCallbackKind("window-iconify", 0, func(object uintptr) {
		if f := p.SetWindowIconifyCallback; f != nil {
			f(object, 0)
		}
	})
	maximizeKind = native.NewCallbackKind("window-maximize", 0, func(object uintptr) {
		if f := p.SetWindowMaximizeCallback; f != nil {
			f(object, 0)
		}
	})
	fbSizeKind = native.NewCallbackKind("framebuffer-size", 0, func(object uintptr) {
		if f := p.SetFramebufferSizeCallback; f != nil {
			f(object, 0)
		}
	})
	contentScaleKind = native.NewCallbackKind("window-content-scale", 0, func(object uintptr) {
		if f := p.SetWindowContentScaleCallback; f != nil {
			f(object, 0)
		}
	})
	keyKind = native.NewCallbackKind("key", 0, func(object uintptr) {
		if f := p.SetKeyCallback; f != nil {
			f(object, 0)
		}
	})
	charKind = native.NewCallbackKind("char", 0, func(object uintptr) {
		if f := p.SetCharCallback; f != nil {
			f(object, 0)
		}
	})
	charModsKind = native.NewCallbackKind("char-mods", 0, func(object uintptr) {
		if f := p.SetCharModsCallback; f != nil {
			f(object, 0)
		}
	})
	mouseButtonKind = native.NewCallbackKind("mouse-button", 0, func(object uintptr) {
		if f := p.SetMouseButtonCallback; f != nil {
			f(object, 0)
		}
	})
	cursorPosKind = native.NewCallbackKind("cursor-pos", 0, func(object uintptr) {
		if f := p.SetCursorPosCallback; f != nil {
			f(object, 0)
		}
	})
	cursorEnterKind = native.NewCallbackKind("cursor-enter", 0, func(object uintptr) {
		if f := p.SetCursorEnterCallback; f != nil {
			f(object, 0)
		}
	})
	scrollKind = native.NewCallbackKind("scroll", 0, func(object uintptr) {
		if f := p.SetScrollCallback; f != nil {
			f(object, 0)
		}
	})
	dropKind = native.NewCallbackKind("drop", 0, func(object uintptr) {
		if f := p.SetDropCallback; f != nil {
			f(object, 0)
		}
	})
	errorKind = native.NewCallbackKind("error", 0, func(uintptr) {
		if f := p.SetErrorCallback; f != nil {
			f(0)
		}
	})
	monitorKind = native.NewCallbackKind("monitor", 0, func(uintptr) {
		if f := p.SetMonitorCallback; f != nil {
			f(0)
		}
	})
	joystickKind = native.NewCallbackKind("joystick", 0, func(uintptr) {
		if f := p.SetJoystickCallback; f != nil {
			f(0)
		}
	})
)

// Dispatchers: one native-callable function pointer per callback kind,
// created on first registration and reused for every window thereafter.
// Each decodes the native argument values, resolves the current trampoline
// for its slot, and invokes the host closure behind the Guard fault
// barrier. The pointers are process-lived; logical lifetime is managed by
// the registration registry, not by freeing the pointer.
var (
	posDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, x, y int32) {
			if tr := native.Current(posKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(PosCallback)(windowFor(window), int(x), int(y))
				})
			}
		})
	})
	sizeDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, width, height int32) {
			if tr := native.Current(sizeKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(SizeCallback)(windowFor(window), int(width), int(height))
				})
			}
		})
	})
	closeDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr) {
			if tr := native.Current(closeKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(CloseCallback)(windowFor(window))
				})
			}
		})
	})
	refreshDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr) {
			if tr := native.Current(refreshKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(RefreshCallback)(windowFor(window))
				})
			}
		})
	})
	focusDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, focused int32) {
			if tr := native.Current(focusKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(FocusCallback)(windowFor(window), codec.DecodeBool(focused))
				})
			}
		})
	})
	iconifyDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, iconified int32) {
			if tr := native.Current(iconifyKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(IconifyCallback)(windowFor(window), codec.DecodeBool(iconified))
				})
			}
		})
	})
	maximizeDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, maximized int32) {
			if tr := native.Current(maximizeKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(MaximizeCallback)(windowFor(window), codec.DecodeBool(maximized))
				})
			}
		})
	})
	fbSizeDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, width, height int32) {
			if tr := native.Current(fbSizeKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(FramebufferSizeCallback)(windowFor(window), int(width), int(height))
				})
			}
		})
	})
	contentScaleDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, x, y float32) {
			if tr := native.Current(contentScaleKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(ContentScaleCallback)(windowFor(window), x, y)
				})
			}
		})
	})
	keyDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, key, scancode, action, mods int32) {
			if tr := native.Current(keyKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(KeyCallback)(windowFor(window),
						Key(key), int(scancode), Action(action), ModifierKey(mods))
				})
			}
		})
	})
	charDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, codepoint uint32) {
			if tr := native.Current(charKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(CharCallback)(windowFor(window), rune(codepoint))
				})
			}
		})
	})
	charModsDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, codepoint uint32, mods int32) {
			if tr := native.Current(charModsKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(CharModsCallback)(windowFor(window), rune(codepoint), ModifierKey(mods))
				})
			}
		})
	})
	mouseButtonDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, button, action, mods int32) {
			if tr := native.Current(mouseButtonKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(MouseButtonCallback)(windowFor(window),
						MouseButton(button), Action(action), ModifierKey(mods))
				})
			}
		})
	})
	cursorPosDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, x, y float64) {
			if tr := native.Current(cursorPosKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(CursorPosCallback)(windowFor(window), x, y)
				})
			}
		})
	})
	cursorEnterDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, entered int32) {
			if tr := native.Current(cursorEnterKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(CursorEnterCallback)(windowFor(window), codec.DecodeBool(entered))
				})
			}
		})
	})
	scrollDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, xoff, yoff float64) {
			if tr := native.Current(scrollKind, window); tr != nil {
				tr.Guard(func() {
					tr.Host().(ScrollCallback)(windowFor(window), xoff, yoff)
				})
			}
		})
	})
	dropDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(window uintptr, count int32, paths uintptr) {
			if tr := native.Current(dropKind, window); tr != nil {
				// Paths are decoded before the closure runs; the native
				// array is only valid inside this callback frame.
				decoded := native.GoStrings(paths, int(count))
				tr.Guard(func() {
					tr.Host().(DropCallback)(windowFor(window), decoded)
				})
			}
		})
	})
	errorDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(code int32, description uintptr) {
			if tr := native.Current(errorKind, 0); tr != nil {
				desc := native.GoString(description)
				tr.Guard(func() {
					tr.Host().(ErrorCallback)(ErrorCode(code), desc)
				})
			}
		})
	})
	monitorDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(monitor uintptr, event int32) {
			if tr := native.Current(monitorKind, 0); tr != nil {
				tr.Guard(func() {
					tr.Host().(MonitorCallback)(monitorFor(monitor), PeripheralEvent(event))
				})
			}
		})
	})
	joystickDispatcher = sync.OnceValue(func() uintptr {
		return purego.NewCallback(func(jid, event int32) {
			if tr := native.Current(joystickKind, 0); tr != nil {
				tr.Guard(func() {
					tr.Host().(JoystickCallback)(Joystick(jid), PeripheralEvent(event))
				})
			}
		})
	})
)

// setWindowSlot installs or clears one window-keyed callback slot and
// returns the previously installed trampoline.
func setWindowSlot(kind *native.CallbackKind, window uintptr, host any, clear bool,
	scope *Scope, setter func(window, cb uintptr) uintptr, dispatcher func() uintptr) *Trampoline {
	if clear {
		prev := native.Uninstall(kind, window)
		setter(window, 0)
		return prev
	}
	_, prev := native.Install(kind, window, host, scope)
	setter(window, dispatcher())
	return prev
}

// setGlobalSlot is setWindowSlot for the global (object-less) callbacks.
func setGlobalSlot(kind *native.CallbackKind, host any, clear bool,
	scope *Scope, setter func(cb uintptr) uintptr, dispatcher func() uintptr) *Trampoline {
	if clear {
		prev := native.Uninstall(kind, 0)
		setter(0)
		return prev
	}
	_, prev := native.Install(kind, 0, host, scope)
	setter(dispatcher())
	return prev
}

// SetPosCallback registers cb for window position changes in ProcessScope.
func (w *Window) SetPosCallback(cb PosCallback) *Trampoline {
	return w.SetPosCallbackWithScope(cb, nil)
}

// SetPosCallbackWithScope registers cb for window position changes in the
// given scope.
func (w *Window) SetPosCallbackWithScope(cb PosCallback, scope *Scope) *Trampoline {
	return setWindowSlot(posKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowPosCallback, posDispatcher)
}

// SetSizeCallback registers cb for client-area size changes in
// ProcessScope.
func (w *Window) SetSizeCallback(cb SizeCallback) *Trampoline {
	return w.SetSizeCallbackWithScope(cb, nil)
}

// SetSizeCallbackWithScope registers cb for client-area size changes in
// the given scope.
func (w *Window) SetSizeCallbackWithScope(cb SizeCallback, scope *Scope) *Trampoline {
	return setWindowSlot(sizeKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowSizeCallback, sizeDispatcher)
}

// SetCloseCallback registers cb for close attempts in ProcessScope.
func (w *Window) SetCloseCallback(cb CloseCallback) *Trampoline {
	return w.SetCloseCallbackWithScope(cb, nil)
}

// SetCloseCallbackWithScope registers cb for close attempts in the given
// scope.
func (w *Window) SetCloseCallbackWithScope(cb CloseCallback, scope *Scope) *Trampoline {
	return setWindowSlot(closeKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowCloseCallback, closeDispatcher)
}

// SetRefreshCallback registers cb for content refresh requests in
// ProcessScope.
func (w *Window) SetRefreshCallback(cb RefreshCallback) *Trampoline {
	return w.SetRefreshCallbackWithScope(cb, nil)
}

// SetRefreshCallbackWithScope registers cb for content refresh requests in
// the given scope.
func (w *Window) SetRefreshCallbackWithScope(cb RefreshCallback, scope *Scope) *Trampoline {
	return setWindowSlot(refreshKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowRefreshCallback, refreshDispatcher)
}

// SetFocusCallback registers cb for focus changes in ProcessScope.
func (w *Window) SetFocusCallback(cb FocusCallback) *Trampoline {
	return w.SetFocusCallbackWithScope(cb, nil)
}

// SetFocusCallbackWithScope registers cb for focus changes in the given
// scope.
func (w *Window) SetFocusCallbackWithScope(cb FocusCallback, scope *Scope) *Trampoline {
	return setWindowSlot(focusKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowFocusCallback, focusDispatcher)
}

// SetIconifyCallback registers cb for iconification changes in
// ProcessScope.
func (w *Window) SetIconifyCallback(cb IconifyCallback) *Trampoline {
	return w.SetIconifyCallbackWithScope(cb, nil)
}

// SetIconifyCallbackWithScope registers cb for iconification changes in
// the given scope.
func (w *Window) SetIconifyCallbackWithScope(cb IconifyCallback, scope *Scope) *Trampoline {
	return setWindowSlot(iconifyKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowIconifyCallback, iconifyDispatcher)
}

// SetMaximizeCallback registers cb for maximization changes in
// ProcessScope.
func (w *Window) SetMaximizeCallback(cb MaximizeCallback) *Trampoline {
	return w.SetMaximizeCallbackWithScope(cb, nil)
}

// SetMaximizeCallbackWithScope registers cb for maximization changes in
// the given scope.
func (w *Window) SetMaximizeCallbackWithScope(cb MaximizeCallback, scope *Scope) *Trampoline {
	return setWindowSlot(maximizeKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowMaximizeCallback, maximizeDispatcher)
}

// SetFramebufferSizeCallback registers cb for framebuffer size changes in
// ProcessScope.
func (w *Window) SetFramebufferSizeCallback(cb FramebufferSizeCallback) *Trampoline {
	return w.SetFramebufferSizeCallbackWithScope(cb, nil)
}

// SetFramebufferSizeCallbackWithScope registers cb for framebuffer size
// changes in the given scope.
func (w *Window) SetFramebufferSizeCallbackWithScope(cb FramebufferSizeCallback, scope *Scope) *Trampoline {
	return setWindowSlot(fbSizeKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetFramebufferSizeCallback, fbSizeDispatcher)
}

// SetContentScaleCallback registers cb for content scale changes in
// ProcessScope.
func (w *Window) SetContentScaleCallback(cb ContentScaleCallback) *Trampoline {
	return w.SetContentScaleCallbackWithScope(cb, nil)
}

// SetContentScaleCallbackWithScope registers cb for content scale changes
// in the given scope.
func (w *Window) SetContentScaleCallbackWithScope(cb ContentScaleCallback, scope *Scope) *Trampoline {
	return setWindowSlot(contentScaleKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetWindowContentScaleCallback, contentScaleDispatcher)
}

// SetKeyCallback registers cb for key events in ProcessScope.
func (w *Window) SetKeyCallback(cb KeyCallback) *Trampoline {
	return w.SetKeyCallbackWithScope(cb, nil)
}

// SetKeyCallbackWithScope registers cb for key events in the given scope.
func (w *Window) SetKeyCallbackWithScope(cb KeyCallback, scope *Scope) *Trampoline {
	return setWindowSlot(keyKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetKeyCallback, keyDispatcher)
}

// SetCharCallback registers cb for Unicode character input in
// ProcessScope.
func (w *Window) SetCharCallback(cb CharCallback) *Trampoline {
	return w.SetCharCallbackWithScope(cb, nil)
}

// SetCharCallbackWithScope registers cb for Unicode character input in the
// given scope.
func (w *Window) SetCharCallbackWithScope(cb CharCallback, scope *Scope) *Trampoline {
	return setWindowSlot(charKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetCharCallback, charDispatcher)
}

// SetCharModsCallback registers cb for character input with modifier state
// in ProcessScope.
func (w *Window) SetCharModsCallback(cb CharModsCallback) *Trampoline {
	return w.SetCharModsCallbackWithScope(cb, nil)
}

// SetCharModsCallbackWithScope registers cb for character input with
// modifier state in the given scope.
func (w *Window) SetCharModsCallbackWithScope(cb CharModsCallback, scope *Scope) *Trampoline {
	return setWindowSlot(charModsKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetCharModsCallback, charModsDispatcher)
}

// SetMouseButtonCallback registers cb for mouse button events in
// ProcessScope.
func (w *Window) SetMouseButtonCallback(cb MouseButtonCallback) *Trampoline {
	return w.SetMouseButtonCallbackWithScope(cb, nil)
}

// SetMouseButtonCallbackWithScope registers cb for mouse button events in
// the given scope.
func (w *Window) SetMouseButtonCallbackWithScope(cb MouseButtonCallback, scope *Scope) *Trampoline {
	return setWindowSlot(mouseButtonKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetMouseButtonCallback, mouseButtonDispatcher)
}

// SetCursorPosCallback registers cb for cursor movement in ProcessScope.
func (w *Window) SetCursorPosCallback(cb CursorPosCallback) *Trampoline {
	return w.SetCursorPosCallbackWithScope(cb, nil)
}

// SetCursorPosCallbackWithScope registers cb for cursor movement in the
// given scope.
func (w *Window) SetCursorPosCallbackWithScope(cb CursorPosCallback, scope *Scope) *Trampoline {
	return setWindowSlot(cursorPosKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetCursorPosCallback, cursorPosDispatcher)
}

// SetCursorEnterCallback registers cb for cursor enter/leave events in
// ProcessScope.
func (w *Window) SetCursorEnterCallback(cb CursorEnterCallback) *Trampoline {
	return w.SetCursorEnterCallbackWithScope(cb, nil)
}

// SetCursorEnterCallbackWithScope registers cb for cursor enter/leave
// events in the given scope.
func (w *Window) SetCursorEnterCallbackWithScope(cb CursorEnterCallback, scope *Scope) *Trampoline {
	return setWindowSlot(cursorEnterKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetCursorEnterCallback, cursorEnterDispatcher)
}

// SetScrollCallback registers cb for scroll events in ProcessScope.
func (w *Window) SetScrollCallback(cb ScrollCallback) *Trampoline {
	return w.SetScrollCallbackWithScope(cb, nil)
}

// SetScrollCallbackWithScope registers cb for scroll events in the given
// scope.
func (w *Window) SetScrollCallbackWithScope(cb ScrollCallback, scope *Scope) *Trampoline {
	return setWindowSlot(scrollKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetScrollCallback, scrollDispatcher)
}

// SetDropCallback registers cb for file drop events in ProcessScope.
func (w *Window) SetDropCallback(cb DropCallback) *Trampoline {
	return w.SetDropCallbackWithScope(cb, nil)
}

// SetDropCallbackWithScope registers cb for file drop events in the given
// scope.
func (w *Window) SetDropCallbackWithScope(cb DropCallback, scope *Scope) *Trampoline {
	return setWindowSlot(dropKind, w.handle, cb, cb == nil, scope,
		mustLoad().SetDropCallback, dropDispatcher)
}

// SetErrorCallback registers cb for native error reports in ProcessScope.
// Safe before Init.
func SetErrorCallback(cb ErrorCallback) *Trampoline {
	return SetErrorCallbackWithScope(cb, nil)
}

// SetErrorCallbackWithScope registers cb for native error reports in the
// given scope.
func SetErrorCallbackWithScope(cb ErrorCallback, scope *Scope) *Trampoline {
	return setGlobalSlot(errorKind, cb, cb == nil, scope,
		mustLoad().SetErrorCallback, errorDispatcher)
}

// SetMonitorCallback registers cb for monitor configuration changes in
// ProcessScope.
func SetMonitorCallback(cb MonitorCallback) *Trampoline {
	return SetMonitorCallbackWithScope(cb, nil)
}

// SetMonitorCallbackWithScope registers cb for monitor configuration
// changes in the given scope.
func SetMonitorCallbackWithScope(cb MonitorCallback, scope *Scope) *Trampoline {
	return setGlobalSlot(monitorKind, cb, cb == nil, scope,
		mustLoad().SetMonitorCallback, monitorDispatcher)
}

// SetJoystickCallback registers cb for joystick configuration changes in
// ProcessScope.
func SetJoystickCallback(cb JoystickCallback) *Trampoline {
	return SetJoystickCallbackWithScope(cb, nil)
}

// SetJoystickCallbackWithScope registers cb for joystick configuration
// changes in the given scope.
func SetJoystickCallbackWithScope(cb JoystickCallback, scope *Scope) *Trampoline {
	return setGlobalSlot(joystickKind, cb, cb == nil, scope,
		mustLoad().SetJoystickCallback, joystickDispatcher)
}
