package layout

import (
	"fmt"
	"unsafe"

	"github.com/opd-ai/glfw/codec"
)

// GammaRamp holds one gamma correction curve per color channel. Channel
// values are the native library's unsigned shorts widened to non-negative
// ints; all three channels have the same length.
type GammaRamp struct {
	Red   []int
	Green []int
	Blue  []int
}

// GLFWgammaramp: three unsigned short pointers followed by an unsigned int
// count. On 64-bit targets the size field sits at offset 24 and the struct
// carries 4 bytes of tail padding.
var gammaRampStruct = New("GLFWgammaramp",
	F("red", codec.Pointer),
	F("green", codec.Pointer),
	F("blue", codec.Pointer),
	F("size", codec.Uint32),
)

// NativeGammaRamp is a GammaRamp serialized into native layout: the header
// struct plus the contiguous channel storage its pointers reference.
//
// The native library may retain the channel pointers until the next gamma
// ramp call or until termination, so callers must keep the NativeGammaRamp
// reachable for that long. This is a documented sharp edge of the native
// API, not a defect of the binding.
type NativeGammaRamp struct {
	header   []byte
	channels []uint16 // red, green, blue back to back
}

// Ptr returns the address of the native header struct.
func (n *NativeGammaRamp) Ptr() unsafe.Pointer { return unsafe.Pointer(&n.header[0]) }

// EncodeGammaRamp serializes r into native layout. Channels of unequal
// length are a caller contract violation and panic. Channel values outside
// the unsigned short range are clamped by truncation to 16 bits.
func EncodeGammaRamp(r *GammaRamp) *NativeGammaRamp {
	size := len(r.Red)
	if len(r.Green) != size || len(r.Blue) != size {
		panic(fmt.Sprintf("layout: gamma ramp channels differ in length: %d/%d/%d",
			len(r.Red), len(r.Green), len(r.Blue)))
	}
	if size == 0 {
		panic("layout: gamma ramp has no entries")
	}

	n := &NativeGammaRamp{
		header:   gammaRampStruct.Alloc(),
		channels: make([]uint16, 3*size),
	}
	red := n.channels[:size]
	green := n.channels[size : 2*size]
	blue := n.channels[2*size:]
	for i := 0; i < size; i++ {
		red[i] = uint16(r.Red[i])
		green[i] = uint16(r.Green[i])
		blue[i] = uint16(r.Blue[i])
	}

	p := n.Ptr()
	gammaRampStruct.PutPtr(p, "red", uintptr(unsafe.Pointer(&red[0])))
	gammaRampStruct.PutPtr(p, "green", uintptr(unsafe.Pointer(&green[0])))
	gammaRampStruct.PutPtr(p, "blue", uintptr(unsafe.Pointer(&blue[0])))
	gammaRampStruct.PutUint(p, "size", uint64(uint32(size)))
	return n
}

// DecodeGammaRamp reads a native GLFWgammaramp at p. The size field is read
// first; only then are the channel pointers dereferenced for that many
// entries each. Channel values are widened unsigned, so 65535 stays 65535
// and never becomes -1.
func DecodeGammaRamp(p unsafe.Pointer) *GammaRamp {
	size := int(uint32(gammaRampStruct.Uint(p, "size")))
	r := &GammaRamp{
		Red:   decodeChannel(gammaRampStruct.Ptr(p, "red"), size),
		Green: decodeChannel(gammaRampStruct.Ptr(p, "green"), size),
		Blue:  decodeChannel(gammaRampStruct.Ptr(p, "blue"), size),
	}
	return r
}

func decodeChannel(addr uintptr, size int) []int {
	if addr == 0 || size == 0 {
		return nil
	}
	shorts := unsafe.Slice((*uint16)(unsafe.Pointer(addr)), size)
	out := make([]int, size)
	for i, v := range shorts {
		out[i] = int(v)
	}
	return out
}
