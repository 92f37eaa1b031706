package glfw

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/opd-ai/glfw/codec"
	"github.com/opd-ai/glfw/layout"
	"github.com/opd-ai/glfw/native"
)

// VidMode is one video mode of a monitor.
type VidMode = layout.VidMode

// GammaRamp is a per-channel gamma correction curve.
type GammaRamp = layout.GammaRamp

// Monitor is an opaque handle to one connected display.
type Monitor struct {
	handle uintptr
}

func monitorFor(handle uintptr) *Monitor {
	if handle == 0 {
		return nil
	}
	return &Monitor{handle: handle}
}

func monitorHandle(m *Monitor) uintptr {
	if m == nil {
		return 0
	}
	return m.handle
}

// Handle exposes the native monitor pointer.
func (m *Monitor) Handle() uintptr { return m.handle }

// GetMonitors returns the currently connected monitors, primary first, or
// nil if none are connected.
func GetMonitors() []*Monitor {
	procs := mustLoad()
	var base uintptr
	r := native.CallOuts(func(addrs []uintptr) {
		base = procs.GetMonitors(addrs[0])
	}, native.Out("count", codec.Int32))

	count := outInt(r[0])
	if base == 0 || count <= 0 {
		return nil
	}
	handles := unsafe.Slice((*uintptr)(unsafe.Pointer(base)), count)
	monitors := make([]*Monitor, count)
	for i, h := range handles {
		monitors[i] = &Monitor{handle: h}
	}
	return monitors
}

// GetPrimaryMonitor returns the user's primary monitor, or nil if no
// monitor is connected.
func GetPrimaryMonitor() *Monitor {
	return monitorFor(mustLoad().GetPrimaryMonitor())
}

// GetName returns a human-readable name for the monitor.
func (m *Monitor) GetName() string {
	return native.GoString(mustLoad().GetMonitorName(m.handle))
}

// GetPos reports the monitor's position on the virtual desktop.
func (m *Monitor) GetPos() (x, y int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetMonitorPos(m.handle, addrs[0], addrs[1])
	}, native.Out("x", codec.Int32), native.Out("y", codec.Int32))
	return outInt(r[0]), outInt(r[1])
}

// GetWorkarea reports the monitor area not occupied by global task bars or
// menu bars.
func (m *Monitor) GetWorkarea() (x, y, width, height int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetMonitorWorkarea(m.handle, addrs[0], addrs[1], addrs[2], addrs[3])
	},
		native.Out("x", codec.Int32),
		native.Out("y", codec.Int32),
		native.Out("width", codec.Int32),
		native.Out("height", codec.Int32),
	)
	return outInt(r[0]), outInt(r[1]), outInt(r[2]), outInt(r[3])
}

// GetPhysicalSize reports the monitor's physical dimensions in
// millimetres, as reported by the display itself.
func (m *Monitor) GetPhysicalSize() (widthMM, heightMM int) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetMonitorPhysicalSize(m.handle, addrs[0], addrs[1])
	}, native.Out("widthMM", codec.Int32), native.Out("heightMM", codec.Int32))
	return outInt(r[0]), outInt(r[1])
}

// GetContentScale reports the monitor's content scale.
func (m *Monitor) GetContentScale() (x, y float32) {
	procs := mustLoad()
	r := native.CallOuts(func(addrs []uintptr) {
		procs.GetMonitorContentScale(m.handle, addrs[0], addrs[1])
	}, native.Out("x", codec.Float32), native.Out("y", codec.Float32))
	return codec.Float32From(r[0]), codec.Float32From(r[1])
}

// GetVideoMode returns the monitor's current video mode, or nil on error.
func (m *Monitor) GetVideoMode() *VidMode {
	ptr := mustLoad().GetVideoMode(m.handle)
	if ptr == 0 {
		return nil
	}
	return layout.DecodeVidMode(unsafe.Pointer(ptr))
}

// GetVideoModes returns the monitor's supported video modes, sorted by the
// native library.
func (m *Monitor) GetVideoModes() []*VidMode {
	procs := mustLoad()
	var base uintptr
	r := native.CallOuts(func(addrs []uintptr) {
		base = procs.GetVideoModes(m.handle, addrs[0])
	}, native.Out("count", codec.Int32))

	count := outInt(r[0])
	if base == 0 || count <= 0 {
		return nil
	}
	return layout.DecodeVidModes(unsafe.Pointer(base), count)
}

// SetGamma generates a gamma ramp from the exponent and sets it.
func (m *Monitor) SetGamma(gamma float32) {
	mustLoad().SetGamma(m.handle, gamma)
}

// GetGammaRamp returns the monitor's current gamma ramp, or nil on error.
// Channel values are widened unsigned, so they are always non-negative.
func (m *Monitor) GetGammaRamp() *GammaRamp {
	ptr := mustLoad().GetGammaRamp(m.handle)
	if ptr == 0 {
		return nil
	}
	return layout.DecodeGammaRamp(unsafe.Pointer(ptr))
}

// retainedRamps keeps serialized gamma ramps reachable after SetGammaRamp
// returns: the native library may keep reading the channel pointers until
// the next gamma ramp call on the same monitor or until termination.
var (
	rampsMu       sync.Mutex
	retainedRamps = make(map[uintptr]*layout.NativeGammaRamp)
)

// SetGammaRamp sets the monitor's gamma ramp. All three channels must have
// the same length; on some platforms the length must be 256.
func (m *Monitor) SetGammaRamp(ramp *GammaRamp) {
	procs := mustLoad()
	nr := layout.EncodeGammaRamp(ramp)

	rampsMu.Lock()
	retainedRamps[m.handle] = nr
	rampsMu.Unlock()

	procs.SetGammaRamp(m.handle, uintptr(nr.Ptr()))
	runtime.KeepAlive(nr)
}

func releaseGammaRamps() {
	rampsMu.Lock()
	defer rampsMu.Unlock()
	retainedRamps = make(map[uintptr]*layout.NativeGammaRamp)
}
