package glfw

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/glfw/codec"
	"github.com/opd-ai/glfw/native"
)

// Scope is a lifetime region for callback registrations; see the native
// package for the semantics. ProcessScope is the default whole-process
// scope.
type Scope = native.Scope

// Trampoline is the wrapped identity of a registered callback. Callback
// setters return the previously installed trampoline so callers can chain
// or restore it.
type Trampoline = native.Trampoline

// ProcessScope is the scope used when a callback is registered without an
// explicit one. It never closes.
var ProcessScope = native.ProcessScope

// NewScope creates a callback lifetime scope. Closing it detaches every
// callback registered under it.
func NewScope(name string) *Scope { return native.NewScope(name) }

// procs is the declarative table of native entry points. Each field is one
// native symbol with its primitive argument and return layout; the table is
// bound in a single pass at load time. Pointer-typed native parameters
// appear as uintptr and are marshaled by the wrapper functions.
type procs struct {
	// Lifecycle. GetVersion and GetError are safe before Init per the
	// native library's own contract.
	Init             func() int32                      `ffi:"glfwInit"`
	Terminate        func()                            `ffi:"glfwTerminate"`
	InitHint         func(hint, value int32)           `ffi:"glfwInitHint"`
	GetVersion       func(major, minor, rev uintptr)   `ffi:"glfwGetVersion"`
	GetVersionString func() uintptr                    `ffi:"glfwGetVersionString"`
	GetError         func(description uintptr) int32   `ffi:"glfwGetError"`
	SetErrorCallback func(cb uintptr) uintptr          `ffi:"glfwSetErrorCallback"`

	// Event processing.
	PollEvents        func()                 `ffi:"glfwPollEvents"`
	WaitEvents        func()                 `ffi:"glfwWaitEvents"`
	WaitEventsTimeout func(timeout float64)  `ffi:"glfwWaitEventsTimeout"`
	PostEmptyEvent    func()                 `ffi:"glfwPostEmptyEvent"`

	// Monitors.
	GetMonitors            func(count uintptr) uintptr                 `ffi:"glfwGetMonitors"`
	GetPrimaryMonitor      func() uintptr                              `ffi:"glfwGetPrimaryMonitor"`
	GetMonitorPos          func(monitor, x, y uintptr)                 `ffi:"glfwGetMonitorPos"`
	GetMonitorWorkarea     func(monitor, x, y, w, h uintptr)           `ffi:"glfwGetMonitorWorkarea"`
	GetMonitorPhysicalSize func(monitor, wMM, hMM uintptr)             `ffi:"glfwGetMonitorPhysicalSize"`
	GetMonitorContentScale func(monitor, x, y uintptr)                 `ffi:"glfwGetMonitorContentScale"`
	GetMonitorName         func(monitor uintptr) uintptr               `ffi:"glfwGetMonitorName"`
	SetMonitorCallback     func(cb uintptr) uintptr                    `ffi:"glfwSetMonitorCallback"`
	GetVideoModes          func(monitor, count uintptr) uintptr        `ffi:"glfwGetVideoModes"`
	GetVideoMode           func(monitor uintptr) uintptr               `ffi:"glfwGetVideoMode"`
	SetGamma               func(monitor uintptr, gamma float32)        `ffi:"glfwSetGamma"`
	GetGammaRamp           func(monitor uintptr) uintptr               `ffi:"glfwGetGammaRamp"`
	SetGammaRamp           func(monitor, ramp uintptr)                 `ffi:"glfwSetGammaRamp"`

	// Windows.
	DefaultWindowHints    func()                                             `ffi:"glfwDefaultWindowHints"`
	WindowHint            func(hint, value int32)                            `ffi:"glfwWindowHint"`
	WindowHintString      func(hint int32, value uintptr)                    `ffi:"glfwWindowHintString"`
	CreateWindow          func(w, h int32, title, monitor, share uintptr) uintptr `ffi:"glfwCreateWindow"`
	DestroyWindow         func(window uintptr)                               `ffi:"glfwDestroyWindow"`
	WindowShouldClose     func(window uintptr) int32                         `ffi:"glfwWindowShouldClose"`
	SetWindowShouldClose  func(window uintptr, value int32)                  `ffi:"glfwSetWindowShouldClose"`
	SetWindowTitle        func(window, title uintptr)                        `ffi:"glfwSetWindowTitle"`
	SetWindowIcon         func(window uintptr, count int32, images uintptr)  `ffi:"glfwSetWindowIcon"`
	GetWindowPos          func(window, x, y uintptr)                         `ffi:"glfwGetWindowPos"`
	SetWindowPos          func(window uintptr, x, y int32)                   `ffi:"glfwSetWindowPos"`
	GetWindowSize         func(window, w, h uintptr)                         `ffi:"glfwGetWindowSize"`
	SetWindowSizeLimits   func(window uintptr, minW, minH, maxW, maxH int32) `ffi:"glfwSetWindowSizeLimits"`
	SetWindowAspectRatio  func(window uintptr, numer, denom int32)           `ffi:"glfwSetWindowAspectRatio"`
	SetWindowSize         func(window uintptr, w, h int32)                   `ffi:"glfwSetWindowSize"`
	GetFramebufferSize    func(window, w, h uintptr)                         `ffi:"glfwGetFramebufferSize"`
	GetWindowFrameSize    func(window, left, top, right, bottom uintptr)     `ffi:"glfwGetWindowFrameSize"`
	GetWindowContentScale func(window, x, y uintptr)                         `ffi:"glfwGetWindowContentScale"`
	GetWindowOpacity      func(window uintptr) float32                       `ffi:"glfwGetWindowOpacity"`
	SetWindowOpacity      func(window uintptr, opacity float32)              `ffi:"glfwSetWindowOpacity"`
	IconifyWindow         func(window uintptr)                               `ffi:"glfwIconifyWindow"`
	RestoreWindow         func(window uintptr)                               `ffi:"glfwRestoreWindow"`
	MaximizeWindow        func(window uintptr)                               `ffi:"glfwMaximizeWindow"`
	ShowWindow            func(window uintptr)                               `ffi:"glfwShowWindow"`
	HideWindow            func(window uintptr)                               `ffi:"glfwHideWindow"`
	FocusWindow           func(window uintptr)                               `ffi:"glfwFocusWindow"`
	RequestWindowAttention func(window uintptr)                              `ffi:"glfwRequestWindowAttention"`
	GetWindowMonitor      func(window uintptr) uintptr                       `ffi:"glfwGetWindowMonitor"`
	SetWindowMonitor      func(window, monitor uintptr, x, y, w, h, refresh int32) `ffi:"glfwSetWindowMonitor"`
	GetWindowAttrib       func(window uintptr, attrib int32) int32           `ffi:"glfwGetWindowAttrib"`
	SetWindowAttrib       func(window uintptr, attrib, value int32)          `ffi:"glfwSetWindowAttrib"`

	// Window callbacks.
	SetWindowPosCallback          func(window, cb uintptr) uintptr `ffi:"glfwSetWindowPosCallback"`
	SetWindowSizeCallback         func(window, cb uintptr) uintptr `ffi:"glfwSetWindowSizeCallback"`
	SetWindowCloseCallback        func(window, cb uintptr) uintptr `ffi:"glfwSetWindowCloseCallback"`
	SetWindowRefreshCallback      func(window, cb uintptr) uintptr `ffi:"glfwSetWindowRefreshCallback"`
	SetWindowFocusCallback        func(window, cb uintptr) uintptr `ffi:"glfwSetWindowFocusCallback"`
	SetWindowIconifyCallback      func(window, cb uintptr) uintptr `ffi:"glfwSetWindowIconifyCallback"`
	SetWindowMaximizeCallback     func(window, cb uintptr) uintptr `ffi:"glfwSetWindowMaximizeCallback"`
	SetFramebufferSizeCallback    func(window, cb uintptr) uintptr `ffi:"glfwSetFramebufferSizeCallback"`
	SetWindowContentScaleCallback func(window, cb uintptr) uintptr `ffi:"glfwSetWindowContentScaleCallback"`

	// Input.
	GetInputMode            func(window uintptr, mode int32) int32          `ffi:"glfwGetInputMode"`
	SetInputMode            func(window uintptr, mode, value int32)         `ffi:"glfwSetInputMode"`
	RawMouseMotionSupported func() int32                                    `ffi:"glfwRawMouseMotionSupported"`
	GetKeyName              func(key, scancode int32) uintptr               `ffi:"glfwGetKeyName"`
	GetKeyScancode          func(key int32) int32                           `ffi:"glfwGetKeyScancode"`
	GetKey                  func(window uintptr, key int32) int32           `ffi:"glfwGetKey"`
	GetMouseButton          func(window uintptr, button int32) int32        `ffi:"glfwGetMouseButton"`
	GetCursorPos            func(window, x, y uintptr)                      `ffi:"glfwGetCursorPos"`
	SetCursorPos            func(window uintptr, x, y float64)              `ffi:"glfwSetCursorPos"`
	CreateCursor            func(image uintptr, xhot, yhot int32) uintptr   `ffi:"glfwCreateCursor"`
	CreateStandardCursor    func(shape int32) uintptr                       `ffi:"glfwCreateStandardCursor"`
	DestroyCursor           func(cursor uintptr)                            `ffi:"glfwDestroyCursor"`
	SetCursor               func(window, cursor uintptr)                    `ffi:"glfwSetCursor"`

	// Input callbacks.
	SetKeyCallback         func(window, cb uintptr) uintptr `ffi:"glfwSetKeyCallback"`
	SetCharCallback        func(window, cb uintptr) uintptr `ffi:"glfwSetCharCallback"`
	SetCharModsCallback    func(window, cb uintptr) uintptr `ffi:"glfwSetCharModsCallback"`
	SetMouseButtonCallback func(window, cb uintptr) uintptr `ffi:"glfwSetMouseButtonCallback"`
	SetCursorPosCallback   func(window, cb uintptr) uintptr `ffi:"glfwSetCursorPosCallback"`
	SetCursorEnterCallback func(window, cb uintptr) uintptr `ffi:"glfwSetCursorEnterCallback"`
	SetScrollCallback      func(window, cb uintptr) uintptr `ffi:"glfwSetScrollCallback"`
	SetDropCallback        func(window, cb uintptr) uintptr `ffi:"glfwSetDropCallback"`

	// Joysticks and gamepads.
	JoystickPresent       func(jid int32) int32                `ffi:"glfwJoystickPresent"`
	GetJoystickAxes       func(jid int32, count uintptr) uintptr `ffi:"glfwGetJoystickAxes"`
	GetJoystickButtons    func(jid int32, count uintptr) uintptr `ffi:"glfwGetJoystickButtons"`
	GetJoystickHats       func(jid int32, count uintptr) uintptr `ffi:"glfwGetJoystickHats"`
	GetJoystickName       func(jid int32) uintptr              `ffi:"glfwGetJoystickName"`
	GetJoystickGUID       func(jid int32) uintptr              `ffi:"glfwGetJoystickGUID"`
	JoystickIsGamepad     func(jid int32) int32                `ffi:"glfwJoystickIsGamepad"`
	SetJoystickCallback   func(cb uintptr) uintptr             `ffi:"glfwSetJoystickCallback"`
	UpdateGamepadMappings func(mapping uintptr) int32          `ffi:"glfwUpdateGamepadMappings"`
	GetGamepadName        func(jid int32) uintptr              `ffi:"glfwGetGamepadName"`
	GetGamepadState       func(jid int32, state uintptr) int32 `ffi:"glfwGetGamepadState"`

	// Clipboard and time.
	SetClipboardString func(window, value uintptr)  `ffi:"glfwSetClipboardString"`
	GetClipboardString func(window uintptr) uintptr `ffi:"glfwGetClipboardString"`
	GetTime            func() float64               `ffi:"glfwGetTime"`
	SetTime            func(t float64)              `ffi:"glfwSetTime"`
	GetTimerValue      func() uint64                `ffi:"glfwGetTimerValue"`
	GetTimerFrequency  func() uint64                `ffi:"glfwGetTimerFrequency"`

	// OpenGL context plumbing.
	MakeContextCurrent func(window uintptr)          `ffi:"glfwMakeContextCurrent"`
	GetCurrentContext  func() uintptr                `ffi:"glfwGetCurrentContext"`
	SwapBuffers        func(window uintptr)          `ffi:"glfwSwapBuffers"`
	SwapInterval       func(interval int32)          `ffi:"glfwSwapInterval"`
	ExtensionSupported func(extension uintptr) int32 `ffi:"glfwExtensionSupported"`
	GetProcAddress     func(name uintptr) uintptr    `ffi:"glfwGetProcAddress"`
}

var (
	loadOnce sync.Once
	loadErr  error
	library  *native.Library
	p        procs
)

// libraryNames returns the per-platform candidate sonames of the native
// library, most specific first.
func libraryNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libglfw.3.dylib", "libglfw.dylib"}
	case "windows":
		return []string{"glfw3.dll", "glfw.dll"}
	default:
		return []string{"libglfw.so.3", "libglfw.so"}
	}
}

// load resolves and binds the native library exactly once.
func load() error {
	loadOnce.Do(func() {
		lib, err := native.Open(libraryNames()...)
		if err != nil {
			loadErr = err
			return
		}
		if err := native.Bind(lib, &p); err != nil {
			loadErr = err
			lib.Close()
			return
		}
		library = lib
	})
	return loadErr
}

// mustLoad is the entry guard of every wrapper that has no graceful failure
// mode of its own: calling the binding without a loadable native library is
// a caller contract violation.
func mustLoad() *procs {
	if err := load(); err != nil {
		panic(fmt.Sprintf("glfw: native library unavailable: %v", err))
	}
	return &p
}

// Error is a native-reported error: a machine-readable code plus the
// human-readable description the native library supplied. It is never
// raised automatically; callers query it explicitly via GetError.
type Error struct {
	Code ErrorCode
	Desc string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("glfw: %s: %s", e.Code, e.Desc)
}

// Init initializes the native library. It returns false on failure, per
// the native contract, rather than panicking; the cause is available via
// GetError (or the error log when the shared library itself could not be
// loaded).
func Init() bool {
	if err := load(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Init",
			"error":    err.Error(),
		}).Error("Failed to load native library")
		return false
	}
	return codec.DecodeBool(p.Init())
}

// Terminate shuts the native library down. All windows are destroyed, all
// callback slots are invalidated, and retained gamma ramp storage is
// released.
func Terminate() {
	if load() != nil {
		return
	}
	p.Terminate()
	native.ResetRegistry()
	dropAllWindows()
	releaseGammaRamps()
}

// SetInitHint configures library initialization. It must be called before
// Init to take effect.
func SetInitHint(hint InitHint, value int) {
	mustLoad().InitHint(int32(hint), int32(value))
}

// SetInitHintBool is SetInitHint for the boolean init hints.
func SetInitHintBool(hint InitHint, value bool) {
	mustLoad().InitHint(int32(hint), codec.EncodeBool(value))
}

// GetVersion reports the native library's version triple. Safe before Init.
func GetVersion() (major, minor, rev int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetVersion(addrs[0], addrs[1], addrs[2])
	},
		native.Out("major", codec.Int32),
		native.Out("minor", codec.Int32),
		native.Out("rev", codec.Int32),
	)
	return outInt(r[0]), outInt(r[1]), outInt(r[2])
}

// GetVersionString returns the native library's compile-time version
// string. Safe before Init.
func GetVersionString() string {
	return native.GoString(mustLoad().GetVersionString())
}

// GetError returns the last native-reported error on the calling thread
// and clears it, or nil when no error is pending. Safe before Init.
func GetError() *Error {
	procs := mustLoad()
	var code int32
	r := native.CallOuts(func(addrs []uintptr) {
		code = procs.GetError(addrs[0])
	}, native.Out("description", codec.Pointer))

	if ErrorCode(code) == NoError {
		return nil
	}
	return &Error{Code: ErrorCode(code), Desc: native.GoString(uintptr(r[0]))}
}

// lastError converts the pending native error into an error value for
// wrappers whose native call signals failure through a sentinel return.
func lastError(fallback string) error {
	if err := GetError(); err != nil {
		return err
	}
	return fmt.Errorf("glfw: %s", fallback)
}

// outInt narrows a raw out-parameter cell holding a native int.
func outInt(bits uint64) int { return int(int32(uint32(bits))) }
