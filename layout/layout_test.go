package layout

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/glfw/codec"
)

func TestStructOffsetsFollowCRules(t *testing.T) {
	s := New("mixed",
		F("a", codec.Uint8),
		F("b", codec.Int32), // padded to 4
		F("c", codec.Uint8),
		F("d", codec.Uint16), // padded to 2
	)
	assert.Equal(t, uintptr(0), s.Offset("a"))
	assert.Equal(t, uintptr(4), s.Offset("b"))
	assert.Equal(t, uintptr(8), s.Offset("c"))
	assert.Equal(t, uintptr(10), s.Offset("d"))
	assert.Equal(t, uintptr(12), s.Size()) // rounded to align 4
	assert.Equal(t, uintptr(4), s.Align())
}

func TestStructDuplicateFieldPanics(t *testing.T) {
	assert.Panics(t, func() {
		New("dup", F("x", codec.Int32), F("x", codec.Int32))
	})
}

func TestStructUnknownFieldPanics(t *testing.T) {
	s := New("one", F("x", codec.Int32))
	buf := s.Alloc()
	assert.Panics(t, func() { s.Uint(unsafe.Pointer(&buf[0]), "y") })
}

func TestStructArrayIndexOutOfRangePanics(t *testing.T) {
	s := New("arr", Arr("v", codec.Uint8, 3))
	buf := s.Alloc()
	p := unsafe.Pointer(&buf[0])
	assert.Panics(t, func() { s.UintAt(p, "v", 3) })
	assert.Panics(t, func() { s.UintAt(p, "v", -1) })
}

func TestVidModeLayoutMatchesNativeABI(t *testing.T) {
	assert.Equal(t, uintptr(24), VidModeSize())
	assert.Equal(t, uintptr(0), vidModeStruct.Offset("width"))
	assert.Equal(t, uintptr(20), vidModeStruct.Offset("refreshRate"))
}

func TestVidModeRoundTrip(t *testing.T) {
	want := &VidMode{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 144}
	buf := vidModeStruct.Alloc()
	EncodeVidMode(want, unsafe.Pointer(&buf[0]))
	got := DecodeVidMode(unsafe.Pointer(&buf[0]))
	assert.Equal(t, want, got)
}

func TestDecodeVidModesArrayStride(t *testing.T) {
	buf := make([]byte, 2*VidModeSize())
	EncodeVidMode(&VidMode{Width: 640, Height: 480, RefreshRate: 60}, unsafe.Pointer(&buf[0]))
	EncodeVidMode(&VidMode{Width: 800, Height: 600, RefreshRate: 75}, unsafe.Pointer(&buf[VidModeSize()]))

	modes := DecodeVidModes(unsafe.Pointer(&buf[0]), 2)
	require.Len(t, modes, 2)
	assert.Equal(t, 640, modes[0].Width)
	assert.Equal(t, 800, modes[1].Width)
	assert.Equal(t, 75, modes[1].RefreshRate)
}

func TestGammaRampLayoutMatchesNativeABI(t *testing.T) {
	ptr := unsafe.Sizeof(uintptr(0))
	assert.Equal(t, uintptr(0), gammaRampStruct.Offset("red"))
	assert.Equal(t, ptr, gammaRampStruct.Offset("green"))
	assert.Equal(t, 2*ptr, gammaRampStruct.Offset("blue"))
	assert.Equal(t, 3*ptr, gammaRampStruct.Offset("size"))
	// Tail padding brings the size back to pointer alignment.
	assert.Equal(t, alignUp(3*ptr+4, ptr), gammaRampStruct.Size())
}

func TestGammaRampRoundTrip(t *testing.T) {
	want := &GammaRamp{
		Red:   []int{0, 100, 200, 65535},
		Green: []int{1, 2, 3, 4},
		Blue:  []int{65535, 65534, 65533, 65532},
	}
	native := EncodeGammaRamp(want)

	// The serialized header must reference 4 contiguous shorts per channel.
	p := native.Ptr()
	size := int(uint32(gammaRampStruct.Uint(p, "size")))
	require.Equal(t, 4, size)
	red := unsafe.Slice((*uint16)(unsafe.Pointer(gammaRampStruct.Ptr(p, "red"))), size)
	assert.Equal(t, []uint16{0, 100, 200, 65535}, []uint16(red))

	got := DecodeGammaRamp(p)
	assert.Equal(t, want, got)
	// Unsigned widening: the top value stays 65535, never -1.
	assert.Equal(t, 65535, got.Red[3])
}

func TestGammaRampMismatchedChannelsPanic(t *testing.T) {
	assert.Panics(t, func() {
		EncodeGammaRamp(&GammaRamp{Red: []int{1, 2}, Green: []int{1}, Blue: []int{1, 2}})
	})
	assert.Panics(t, func() { EncodeGammaRamp(&GammaRamp{}) })
}

func TestImageLayoutMatchesNativeABI(t *testing.T) {
	assert.Equal(t, uintptr(0), imageStruct.Offset("width"))
	assert.Equal(t, uintptr(4), imageStruct.Offset("height"))
	assert.Equal(t, unsafe.Sizeof(uintptr(0)), imageStruct.Offset("pixels"))
}

func TestEncodeImagesContiguousArray(t *testing.T) {
	a := &Image{Width: 2, Height: 1, Pixels: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	b := &Image{Width: 1, Height: 1, Pixels: []byte{9, 10, 11, 12}}
	native := EncodeImages([]*Image{a, b})
	require.Equal(t, 2, native.Count())

	stride := imageStruct.Size()
	first := native.Ptr()
	second := unsafe.Add(first, stride)
	assert.Equal(t, 2, imageStruct.Int(first, "width"))
	assert.Equal(t, 1, imageStruct.Int(second, "width"))

	// Round trip through the native layout reproduces the pixel data.
	got := DecodeImage(second)
	assert.Equal(t, b.Width, got.Width)
	assert.Equal(t, b.Pixels, got.Pixels)
}

func TestEncodeImagesBadPixelCountPanics(t *testing.T) {
	assert.Panics(t, func() {
		EncodeImages([]*Image{{Width: 2, Height: 2, Pixels: []byte{1, 2, 3}}})
	})
	assert.Panics(t, func() { EncodeImages(nil) })
}

func TestGamepadStateLayoutMatchesNativeABI(t *testing.T) {
	assert.Equal(t, uintptr(0), gamepadStruct.Offset("buttons"))
	assert.Equal(t, uintptr(16), gamepadStruct.Offset("axes"))
	assert.Equal(t, uintptr(40), GamepadStateSize())
}

func TestGamepadStateRoundTrip(t *testing.T) {
	want := &GamepadState{}
	want.Buttons[0] = 1
	want.Buttons[14] = 1
	want.Axes[0] = -1.0
	want.Axes[5] = 0.5

	buf := gamepadStruct.Alloc()
	EncodeGamepadState(want, unsafe.Pointer(&buf[0]))
	got := DecodeGamepadState(unsafe.Pointer(&buf[0]))
	assert.Equal(t, want, got)
}
