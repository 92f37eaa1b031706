package layout

import (
	"fmt"
	"unsafe"

	"github.com/opd-ai/glfw/codec"
)

// Image is a rectangle of 32-bit RGBA pixels, left to right, top to bottom.
type Image struct {
	Width  int
	Height int
	Pixels []byte
}

// GLFWimage: two ints and a pixel pointer; 16 bytes on 64-bit targets.
var imageStruct = New("GLFWimage",
	F("width", codec.Int32),
	F("height", codec.Int32),
	F("pixels", codec.Pointer),
)

// NativeImages is a contiguous native array of GLFWimage records plus the
// pixel storage the records point into. The memory only needs to stay valid
// for the duration of the native call consuming it; the native library does
// not retain icon or cursor image pointers.
type NativeImages struct {
	buf    []byte
	pixels [][]byte // keeps each pixel buffer reachable during the call
}

// Ptr returns the base address of the native image array.
func (n *NativeImages) Ptr() unsafe.Pointer { return unsafe.Pointer(&n.buf[0]) }

// Count returns the number of serialized images.
func (n *NativeImages) Count() int { return len(n.pixels) }

// EncodeImages serializes imgs into one contiguous native array, each
// element at its stride offset. An image whose pixel buffer does not hold
// exactly width*height RGBA quads is a caller contract violation.
func EncodeImages(imgs []*Image) *NativeImages {
	if len(imgs) == 0 {
		panic("layout: no images to serialize")
	}
	stride := imageStruct.Size()
	n := &NativeImages{
		buf:    make([]byte, stride*uintptr(len(imgs))),
		pixels: make([][]byte, len(imgs)),
	}
	for i, img := range imgs {
		want := 4 * img.Width * img.Height
		if len(img.Pixels) != want {
			panic(fmt.Sprintf("layout: image %d: %dx%d needs %d pixel bytes, have %d",
				i, img.Width, img.Height, want, len(img.Pixels)))
		}
		elem := unsafe.Add(n.Ptr(), stride*uintptr(i))
		imageStruct.PutInt(elem, "width", img.Width)
		imageStruct.PutInt(elem, "height", img.Height)
		n.pixels[i] = img.Pixels
		var addr uintptr
		if len(img.Pixels) > 0 {
			addr = uintptr(unsafe.Pointer(&img.Pixels[0]))
		}
		imageStruct.PutPtr(elem, "pixels", addr)
	}
	return n
}

// DecodeImage reads one native GLFWimage at p, copying the pixel data into
// Go memory.
func DecodeImage(p unsafe.Pointer) *Image {
	img := &Image{
		Width:  imageStruct.Int(p, "width"),
		Height: imageStruct.Int(p, "height"),
	}
	addr := imageStruct.Ptr(p, "pixels")
	if count := 4 * img.Width * img.Height; addr != 0 && count > 0 {
		img.Pixels = make([]byte, count)
		copy(img.Pixels, unsafe.Slice((*byte)(unsafe.Pointer(addr)), count))
	}
	return img
}
