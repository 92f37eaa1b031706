package layout

import (
	"unsafe"

	"github.com/opd-ai/glfw/codec"
)

// GamepadState is the input state of a gamepad remapped to the standard
// Xbox-like layout: 15 digital buttons and 6 analog axes.
type GamepadState struct {
	Buttons [15]uint8
	Axes    [6]float32
}

// GLFWgamepadstate: 15 button bytes, one byte of padding, then six floats
// at offset 16; 40 bytes total.
var gamepadStruct = New("GLFWgamepadstate",
	Arr("buttons", codec.Uint8, 15),
	Arr("axes", codec.Float32, 6),
)

// GamepadStateSize returns the native size of one GLFWgamepadstate record.
func GamepadStateSize() uintptr { return gamepadStruct.Size() }

// DecodeGamepadState reads one GLFWgamepadstate from native memory at p.
func DecodeGamepadState(p unsafe.Pointer) *GamepadState {
	var s GamepadState
	for i := range s.Buttons {
		s.Buttons[i] = uint8(gamepadStruct.UintAt(p, "buttons", i))
	}
	for i := range s.Axes {
		s.Axes[i] = codec.Float32From(gamepadStruct.UintAt(p, "axes", i))
	}
	return &s
}

// EncodeGamepadState writes s into the buffer at p, which must be at least
// GamepadStateSize bytes.
func EncodeGamepadState(s *GamepadState, p unsafe.Pointer) {
	for i, b := range s.Buttons {
		gamepadStruct.PutUintAt(p, "buttons", i, uint64(b))
	}
	for i, a := range s.Axes {
		gamepadStruct.PutUintAt(p, "axes", i, codec.Float32Bits(a))
	}
}
