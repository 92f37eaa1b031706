// Package codec translates between semantic values and their native
// representation at the foreign-function boundary.
//
// The native GLFW library speaks fixed-width integers: booleans are int 0/1,
// enumerations are int constants, bitflags are OR-combined int bits. This
// package owns the bidirectional mapping so that the rest of the binding
// never hand-rolls a conversion.
//
// # Primitive Registry
//
// Every value that crosses the boundary has a [Primitive] descriptor giving
// its native size, alignment, and raw byte-level accessors. The registry is
// populated at package initialization and immutable afterwards, so concurrent
// reads need no locking. Requesting a descriptor that was never registered is
// a programming error and panics.
//
// # Enum Domains
//
// A [Domain] maps symbolic names to the native library's constant values for
// one semantic family (error codes, keys, mouse buttons, ...):
//
//	d := codec.NewDomain("mouse-button")
//	d.Register("button-1", 0)
//	d.Alias("left", "button-1")
//
//	d.Encode("left")  // 0 (alias resolved to canonical)
//	d.Decode(0)       // "button-1" (decode never yields an alias)
//	d.Decode(999)     // codec.Unknown
//
// Encoding an unregistered name is a caller contract violation and panics.
// Decoding an unrecognized integer returns the [Unknown] sentinel, never an
// error: native libraries add constants across versions and the binding must
// stay forward compatible.
//
// # Bitflag Domains
//
// A [FlagDomain] folds a set of names into one integer and decomposes an
// integer back into the subset of registered bits. Bits with no registered
// meaning are dropped silently on decode; this is documented behavior, not
// an error.
//
// The "don't care" sentinel (-1) used by several numeric hint domains is
// deliberately not modeled here. It is domain specific, not a general
// encoding rule, and is applied at the call sites that need it.
package codec
