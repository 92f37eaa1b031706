package glfw

import (
	"fmt"
	"strings"

	"github.com/opd-ai/glfw/codec"
)

// Symbolic name tables for the enum and bitflag families this binding
// decodes. The tables are built once here and read-only afterwards; String
// methods and forward-compatible decoding all go through them, so an
// unknown native constant renders as "unknown" instead of faulting.
var (
	errorCodeDomain     = codec.NewDomain("error-code")
	actionDomain        = codec.NewDomain("action")
	keyDomain           = codec.NewDomain("key")
	mouseButtonDomain   = codec.NewDomain("mouse-button")
	gamepadButtonDomain = codec.NewDomain("gamepad-button")
	gamepadAxisDomain   = codec.NewDomain("gamepad-axis")
	peripheralDomain    = codec.NewDomain("peripheral-event")
	modifierDomain      = codec.NewFlagDomain("modifier")
)

func init() {
	errorCodeDomain.
		Register("no-error", int32(NoError)).
		Register("not-initialized", int32(NotInitialized)).
		Register("no-current-context", int32(NoCurrentContext)).
		Register("invalid-enum", int32(InvalidEnum)).
		Register("invalid-value", int32(InvalidValue)).
		Register("out-of-memory", int32(OutOfMemory)).
		Register("api-unavailable", int32(APIUnavailable)).
		Register("version-unavailable", int32(VersionUnavailable)).
		Register("platform-error", int32(PlatformError)).
		Register("format-unavailable", int32(FormatUnavailable)).
		Register("no-window-context", int32(NoWindowContext))

	actionDomain.
		Register("release", int32(Release)).
		Register("press", int32(Press)).
		Register("repeat", int32(Repeat))

	modifierDomain.
		Register("shift", int32(ModShift)).
		Register("control", int32(ModControl)).
		Register("alt", int32(ModAlt)).
		Register("super", int32(ModSuper)).
		Register("caps-lock", int32(ModCapsLock)).
		Register("num-lock", int32(ModNumLock))

	mouseButtonDomain.
		Register("button-1", int32(MouseButton1)).
		Register("button-2", int32(MouseButton2)).
		Register("button-3", int32(MouseButton3)).
		Register("button-4", int32(MouseButton4)).
		Register("button-5", int32(MouseButton5)).
		Register("button-6", int32(MouseButton6)).
		Register("button-7", int32(MouseButton7)).
		Register("button-8", int32(MouseButton8)).
		Alias("left", "button-1").
		Alias("right", "button-2").
		Alias("middle", "button-3")

	gamepadButtonDomain.
		Register("a", int32(ButtonA)).
		Register("b", int32(ButtonB)).
		Register("x", int32(ButtonX)).
		Register("y", int32(ButtonY)).
		Register("left-bumper", int32(ButtonLeftBumper)).
		Register("right-bumper", int32(ButtonRightBumper)).
		Register("back", int32(ButtonBack)).
		Register("start", int32(ButtonStart)).
		Register("guide", int32(ButtonGuide)).
		Register("left-thumb", int32(ButtonLeftThumb)).
		Register("right-thumb", int32(ButtonRightThumb)).
		Register("dpad-up", int32(ButtonDpadUp)).
		Register("dpad-right", int32(ButtonDpadRight)).
		Register("dpad-down", int32(ButtonDpadDown)).
		Register("dpad-left", int32(ButtonDpadLeft)).
		Alias("cross", "a").
		Alias("circle", "b").
		Alias("square", "x").
		Alias("triangle", "y")

	gamepadAxisDomain.
		Register("left-x", int32(AxisLeftX)).
		Register("left-y", int32(AxisLeftY)).
		Register("right-x", int32(AxisRightX)).
		Register("right-y", int32(AxisRightY)).
		Register("left-trigger", int32(AxisLeftTrigger)).
		Register("right-trigger", int32(AxisRightTrigger))

	peripheralDomain.
		Register("connected", int32(Connected)).
		Register("disconnected", int32(Disconnected))

	registerKeyNames()
}

func registerKeyNames() {
	keyDomain.Register("space", int32(KeySpace)).
		Register("apostrophe", int32(KeyApostrophe)).
		Register("comma", int32(KeyComma)).
		Register("minus", int32(KeyMinus)).
		Register("period", int32(KeyPeriod)).
		Register("slash", int32(KeySlash)).
		Register("semicolon", int32(KeySemicolon)).
		Register("equal", int32(KeyEqual)).
		Register("left-bracket", int32(KeyLeftBracket)).
		Register("backslash", int32(KeyBackslash)).
		Register("right-bracket", int32(KeyRightBracket)).
		Register("grave-accent", int32(KeyGraveAccent)).
		Register("world-1", int32(KeyWorld1)).
		Register("world-2", int32(KeyWorld2))

	for k := Key0; k <= Key9; k++ {
		keyDomain.Register(codec.Name(string(rune('0'+int(k-Key0)))), int32(k))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyDomain.Register(codec.Name(string(rune('a'+int(k-KeyA)))), int32(k))
	}

	keyDomain.Register("escape", int32(KeyEscape)).
		Register("enter", int32(KeyEnter)).
		Register("tab", int32(KeyTab)).
		Register("backspace", int32(KeyBackspace)).
		Register("insert", int32(KeyInsert)).
		Register("delete", int32(KeyDelete)).
		Register("right", int32(KeyRight)).
		Register("left", int32(KeyLeft)).
		Register("down", int32(KeyDown)).
		Register("up", int32(KeyUp)).
		Register("page-up", int32(KeyPageUp)).
		Register("page-down", int32(KeyPageDown)).
		Register("home", int32(KeyHome)).
		Register("end", int32(KeyEnd)).
		Register("caps-lock", int32(KeyCapsLock)).
		Register("scroll-lock", int32(KeyScrollLock)).
		Register("num-lock", int32(KeyNumLock)).
		Register("print-screen", int32(KeyPrintScreen)).
		Register("pause", int32(KeyPause))

	for k := KeyF1; k <= KeyF25; k++ {
		keyDomain.Register(codec.Name(fmt.Sprintf("f%d", int(k-KeyF1)+1)), int32(k))
	}
	for k := KeyKP0; k <= KeyKP9; k++ {
		keyDomain.Register(codec.Name(fmt.Sprintf("kp-%d", int(k-KeyKP0))), int32(k))
	}

	keyDomain.Register("kp-decimal", int32(KeyKPDecimal)).
		Register("kp-divide", int32(KeyKPDivide)).
		Register("kp-multiply", int32(KeyKPMultiply)).
		Register("kp-subtract", int32(KeyKPSubtract)).
		Register("kp-add", int32(KeyKPAdd)).
		Register("kp-enter", int32(KeyKPEnter)).
		Register("kp-equal", int32(KeyKPEqual)).
		Register("left-shift", int32(KeyLeftShift)).
		Register("left-control", int32(KeyLeftControl)).
		Register("left-alt", int32(KeyLeftAlt)).
		Register("left-super", int32(KeyLeftSuper)).
		Register("right-shift", int32(KeyRightShift)).
		Register("right-control", int32(KeyRightControl)).
		Register("right-alt", int32(KeyRightAlt)).
		Register("right-super", int32(KeyRightSuper)).
		Register("menu", int32(KeyMenu))
}

// String returns the symbolic name of the error code, or "unknown" for a
// code this binding predates.
func (c ErrorCode) String() string {
	return string(errorCodeDomain.Decode(int32(c)))
}

// String returns "release", "press", or "repeat".
func (a Action) String() string {
	return string(actionDomain.Decode(int32(a)))
}

// String returns the key's symbolic name, or "unknown" for KeyUnknown and
// unrecognized values.
func (k Key) String() string {
	return string(keyDomain.Decode(int32(k)))
}

// String returns the canonical button name: the Left/Right/Middle aliases
// render as button-1/2/3.
func (b MouseButton) String() string {
	return string(mouseButtonDomain.Decode(int32(b)))
}

// String returns the canonical Xbox-style button name; PlayStation aliases
// render as their canonical counterparts.
func (b GamepadButton) String() string {
	return string(gamepadButtonDomain.Decode(int32(b)))
}

// String returns the axis name.
func (a GamepadAxis) String() string {
	return string(gamepadAxisDomain.Decode(int32(a)))
}

// String returns "connected" or "disconnected".
func (e PeripheralEvent) String() string {
	return string(peripheralDomain.Decode(int32(e)))
}

// Names returns the set of modifier names whose bits are set, in a fixed
// order. Bits with no registered meaning are dropped.
func (m ModifierKey) Names() []string {
	names := modifierDomain.Decode(int32(m))
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// String renders the modifier set as "shift|control", or "none" for an
// empty set.
func (m ModifierKey) String() string {
	names := m.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
