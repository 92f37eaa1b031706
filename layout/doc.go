// Package layout serializes structured records to and from the native
// library's C struct layouts.
//
// Every marshaled struct is described by a [Struct] descriptor: an ordered
// list of named fields, each backed by a primitive descriptor from the codec
// package. Field offsets, padding, and total size are computed with the C
// ABI's alignment rules, so a descriptor mismatch is caught in one place
// instead of corrupting memory at many call sites.
//
// Fixed-layout records (video modes, gamepad state) serialize field by field
// at fixed offsets. Records with pointer-to-array fields (gamma ramps, icon
// images) need a second level: the count field is read before the pointer
// fields it governs are dereferenced, and serialization allocates backing
// storage whose lifetime the caller controls.
//
// Lifetime rules differ per record and are documented on each Encode
// function. Icon image buffers only need to survive the native call that
// consumes them. Gamma ramp buffers are a documented sharp edge: the native
// library may keep reading the channel pointers until the next gamma ramp
// call or termination, so [NativeGammaRamp] values must stay reachable that
// long.
package layout
