package glfw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "no-error", NoError.String())
	assert.Equal(t, "not-initialized", NotInitialized.String())
	assert.Equal(t, "platform-error", PlatformError.String())
	assert.Equal(t, "unknown", ErrorCode(0x12345).String())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "release", Release.String())
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "repeat", Repeat.String())
}

func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeySpace, "space"},
		{KeyA, "a"},
		{KeyZ, "z"},
		{Key0, "0"},
		{Key9, "9"},
		{KeyEscape, "escape"},
		{KeyF1, "f1"},
		{KeyF25, "f25"},
		{KeyKP0, "kp-0"},
		{KeyKPEnter, "kp-enter"},
		{KeyLeftShift, "left-shift"},
		{KeyMenu, "menu"},
		{KeyUnknown, "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.key.String(), "key %d", int(tc.key))
	}
}

func TestMouseButtonAliasesDecodeCanonical(t *testing.T) {
	// Left/Right/Middle share values with Button1/2/3; decoding always
	// yields the canonical name.
	assert.Equal(t, "button-1", MouseButtonLeft.String())
	assert.Equal(t, "button-2", MouseButtonRight.String())
	assert.Equal(t, "button-3", MouseButtonMiddle.String())
	assert.Equal(t, "button-8", MouseButton8.String())
}

func TestGamepadButtonAliasesDecodeCanonical(t *testing.T) {
	assert.Equal(t, "a", ButtonCross.String())
	assert.Equal(t, "b", ButtonCircle.String())
	assert.Equal(t, "x", ButtonSquare.String())
	assert.Equal(t, "y", ButtonTriangle.String())
	assert.Equal(t, "dpad-left", ButtonDpadLeft.String())
}

func TestGamepadAxisString(t *testing.T) {
	assert.Equal(t, "left-x", AxisLeftX.String())
	assert.Equal(t, "right-trigger", AxisRightTrigger.String())
}

func TestPeripheralEventString(t *testing.T) {
	assert.Equal(t, "connected", Connected.String())
	assert.Equal(t, "disconnected", Disconnected.String())
}

func TestModifierKeyNames(t *testing.T) {
	mods := ModShift | ModControl
	assert.Equal(t, []string{"shift", "control"}, mods.Names())
	assert.Equal(t, "shift|control", mods.String())

	assert.Empty(t, ModifierKey(0).Names())
	assert.Equal(t, "none", ModifierKey(0).String())

	all := ModShift | ModControl | ModAlt | ModSuper | ModCapsLock | ModNumLock
	assert.Equal(t,
		[]string{"shift", "control", "alt", "super", "caps-lock", "num-lock"},
		all.Names())
}

func TestModifierKeyDropsUnknownBits(t *testing.T) {
	mods := ModAlt | ModifierKey(0x1000)
	assert.Equal(t, []string{"alt"}, mods.Names())
}
