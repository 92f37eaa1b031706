package codec

import (
	"fmt"
	"math"
	"unsafe"
)

// Kind identifies a native primitive representation.
type Kind uint8

const (
	Invalid Kind = iota
	Bool         // native int, 0 or 1
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	Pointer // untyped native pointer
	CString // pointer to NUL-terminated bytes
	Handle  // opaque native object pointer
)

var kindNames = map[Kind]string{
	Invalid: "invalid",
	Bool:    "bool",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Pointer: "pointer",
	CString: "cstring",
	Handle:  "handle",
}

// String returns the registry name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Primitive describes how one semantic type is represented at the native
// boundary: its size and alignment for layout purposes, and raw accessors
// that move the value in and out of native-ordered byte buffers.
//
// Values travel through the accessors as raw uint64 bit patterns. Integer
// kinds occupy the low bits; float kinds use math.Float32bits/Float64bits
// encoding. Callers convert to the semantic Go type at the edge.
type Primitive struct {
	kind  Kind
	size  uintptr
	align uintptr
	get   func(b []byte) uint64
	put   func(b []byte, bits uint64)
}

// Kind returns the primitive's kind tag.
func (p *Primitive) Kind() Kind { return p.kind }

// Size returns the native size in bytes.
func (p *Primitive) Size() uintptr { return p.size }

// Align returns the native alignment in bytes.
func (p *Primitive) Align() uintptr { return p.align }

// Get reads the primitive from the start of b as a raw bit pattern.
// b must be at least Size bytes long.
func (p *Primitive) Get(b []byte) uint64 {
	p.check(b)
	return p.get(b)
}

// Put writes the raw bit pattern to the start of b.
// b must be at least Size bytes long.
func (p *Primitive) Put(b []byte, bits uint64) {
	p.check(b)
	p.put(b, bits)
}

func (p *Primitive) check(b []byte) {
	if uintptr(len(b)) < p.size {
		panic(fmt.Sprintf("codec: buffer too small for %s: need %d bytes, have %d",
			p.kind, p.size, len(b)))
	}
}

// Accessors read and write in native byte order by going through typed
// pointers, the same convention the native library's own compiler used.

func get8(b []byte) uint64        { return uint64(b[0]) }
func put8(b []byte, v uint64)     { b[0] = byte(v) }
func get16(b []byte) uint64       { return uint64(*(*uint16)(unsafe.Pointer(&b[0]))) }
func put16(b []byte, v uint64)    { *(*uint16)(unsafe.Pointer(&b[0])) = uint16(v) }
func get32(b []byte) uint64       { return uint64(*(*uint32)(unsafe.Pointer(&b[0]))) }
func put32(b []byte, v uint64)    { *(*uint32)(unsafe.Pointer(&b[0])) = uint32(v) }
func get64(b []byte) uint64       { return *(*uint64)(unsafe.Pointer(&b[0])) }
func put64(b []byte, v uint64)    { *(*uint64)(unsafe.Pointer(&b[0])) = v }
func getPtr(b []byte) uint64      { return uint64(*(*uintptr)(unsafe.Pointer(&b[0]))) }
func putPtr(b []byte, v uint64)   { *(*uintptr)(unsafe.Pointer(&b[0])) = uintptr(v) }

const ptrSize = unsafe.Sizeof(uintptr(0))

// registry holds every primitive descriptor, keyed by kind. It is written
// exactly once, below, before any marshaling can occur, and is read-only
// afterwards: concurrent lookups are safe without locking.
var registry = map[Kind]*Primitive{
	Bool:    {kind: Bool, size: 4, align: 4, get: get32, put: put32},
	Int8:    {kind: Int8, size: 1, align: 1, get: get8, put: put8},
	Uint8:   {kind: Uint8, size: 1, align: 1, get: get8, put: put8},
	Int16:   {kind: Int16, size: 2, align: 2, get: get16, put: put16},
	Uint16:  {kind: Uint16, size: 2, align: 2, get: get16, put: put16},
	Int32:   {kind: Int32, size: 4, align: 4, get: get32, put: put32},
	Uint32:  {kind: Uint32, size: 4, align: 4, get: get32, put: put32},
	Int64:   {kind: Int64, size: 8, align: 8, get: get64, put: put64},
	Uint64:  {kind: Uint64, size: 8, align: 8, get: get64, put: put64},
	Float32: {kind: Float32, size: 4, align: 4, get: get32, put: put32},
	Float64: {kind: Float64, size: 8, align: 8, get: get64, put: put64},
	Pointer: {kind: Pointer, size: ptrSize, align: ptrSize, get: getPtr, put: putPtr},
	CString: {kind: CString, size: ptrSize, align: ptrSize, get: getPtr, put: putPtr},
	Handle:  {kind: Handle, size: ptrSize, align: ptrSize, get: getPtr, put: putPtr},
}

// ByKind returns the descriptor for k. Asking for a kind that was never
// registered is a programming error in the binding itself, not a runtime
// condition, so it panics.
func ByKind(k Kind) *Primitive {
	p, ok := registry[k]
	if !ok {
		panic(fmt.Sprintf("codec: no primitive registered for %s", k))
	}
	return p
}

// EncodeBool converts a Go bool to the native int convention.
func EncodeBool(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

// DecodeBool converts a native int to bool. Any nonzero value is true,
// matching the native library's own truthiness rules.
func DecodeBool(v int32) bool { return v != 0 }

// Float32Bits and Float64Bits adapt float values to the raw bit-pattern
// convention used by Primitive accessors.

func Float32Bits(v float32) uint64   { return uint64(math.Float32bits(v)) }
func Float32From(bits uint64) float32 { return math.Float32frombits(uint32(bits)) }
func Float64Bits(v float64) uint64   { return math.Float64bits(v) }
func Float64From(bits uint64) float64 { return math.Float64frombits(bits) }
