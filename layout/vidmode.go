package layout

import (
	"unsafe"

	"github.com/opd-ai/glfw/codec"
)

// VidMode is one video mode of a monitor: resolution, bit depths, and
// refresh rate.
type VidMode struct {
	Width       int
	Height      int
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int
}

// GLFWvidmode: six consecutive ints, no internal padding.
var vidModeStruct = New("GLFWvidmode",
	F("width", codec.Int32),
	F("height", codec.Int32),
	F("redBits", codec.Int32),
	F("greenBits", codec.Int32),
	F("blueBits", codec.Int32),
	F("refreshRate", codec.Int32),
)

// VidModeSize returns the native size of one GLFWvidmode record.
func VidModeSize() uintptr { return vidModeStruct.Size() }

// DecodeVidMode reads one GLFWvidmode from native memory at p.
func DecodeVidMode(p unsafe.Pointer) *VidMode {
	return &VidMode{
		Width:       vidModeStruct.Int(p, "width"),
		Height:      vidModeStruct.Int(p, "height"),
		RedBits:     vidModeStruct.Int(p, "redBits"),
		GreenBits:   vidModeStruct.Int(p, "greenBits"),
		BlueBits:    vidModeStruct.Int(p, "blueBits"),
		RefreshRate: vidModeStruct.Int(p, "refreshRate"),
	}
}

// DecodeVidModes reads a contiguous native array of count GLFWvidmode
// records starting at p.
func DecodeVidModes(p unsafe.Pointer, count int) []*VidMode {
	modes := make([]*VidMode, 0, count)
	for i := 0; i < count; i++ {
		modes = append(modes, DecodeVidMode(unsafe.Add(p, uintptr(i)*vidModeStruct.Size())))
	}
	return modes
}

// EncodeVidMode writes m into the buffer at p, which must be at least
// VidModeSize bytes.
func EncodeVidMode(m *VidMode, p unsafe.Pointer) {
	vidModeStruct.PutInt(p, "width", m.Width)
	vidModeStruct.PutInt(p, "height", m.Height)
	vidModeStruct.PutInt(p, "redBits", m.RedBits)
	vidModeStruct.PutInt(p, "greenBits", m.GreenBits)
	vidModeStruct.PutInt(p, "blueBits", m.BlueBits)
	vidModeStruct.PutInt(p, "refreshRate", m.RefreshRate)
}
