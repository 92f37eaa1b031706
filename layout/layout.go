package layout

import (
	"fmt"
	"unsafe"

	"github.com/opd-ai/glfw/codec"
)

// Field is one named member of a native struct layout.
type Field struct {
	name   string
	prim   *codec.Primitive
	count  int // 1 for scalars, >1 for inline arrays
	offset uintptr
}

// F declares a scalar field of the given primitive kind.
func F(name string, kind codec.Kind) Field {
	return Field{name: name, prim: codec.ByKind(kind), count: 1}
}

// Arr declares an inline fixed-length array field.
func Arr(name string, kind codec.Kind, count int) Field {
	if count < 1 {
		panic(fmt.Sprintf("layout: array field %q: count %d", name, count))
	}
	return Field{name: name, prim: codec.ByKind(kind), count: count}
}

// Struct describes one native struct layout: field order, offsets, padding,
// and total size, matching what the native library's C compiler produced.
// Descriptors are built at package initialization and immutable afterwards.
type Struct struct {
	name   string
	fields []Field
	index  map[string]int
	size   uintptr
	align  uintptr
}

// New computes a layout from the declared fields using C struct rules:
// each field is placed at the next offset aligned to its primitive's
// alignment, and the total size is rounded up to the struct's alignment.
func New(name string, fields ...Field) *Struct {
	s := &Struct{
		name:  name,
		index: make(map[string]int, len(fields)),
		align: 1,
	}
	var off uintptr
	for _, f := range fields {
		if _, dup := s.index[f.name]; dup {
			panic(fmt.Sprintf("layout: struct %q: duplicate field %q", name, f.name))
		}
		a := f.prim.Align()
		off = alignUp(off, a)
		f.offset = off
		off += f.prim.Size() * uintptr(f.count)
		if a > s.align {
			s.align = a
		}
		s.index[f.name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	s.size = alignUp(off, s.align)
	return s
}

func alignUp(n, a uintptr) uintptr { return (n + a - 1) &^ (a - 1) }

// Name returns the native struct's name.
func (s *Struct) Name() string { return s.name }

// Size returns the total size in bytes, including tail padding.
func (s *Struct) Size() uintptr { return s.size }

// Align returns the struct's alignment in bytes.
func (s *Struct) Align() uintptr { return s.align }

// Offset returns the byte offset of the named field.
func (s *Struct) Offset(name string) uintptr {
	return s.field(name).offset
}

// Alloc returns a zeroed buffer sized and usable as one native struct.
func (s *Struct) Alloc() []byte { return make([]byte, s.size) }

func (s *Struct) field(name string) *Field {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("layout: struct %q: no field %q", s.name, name))
	}
	return &s.fields[i]
}

func (s *Struct) fieldBytes(p unsafe.Pointer, f *Field, i int) []byte {
	if i < 0 || i >= f.count {
		panic(fmt.Sprintf("layout: struct %q: field %q index %d out of range [0,%d)",
			s.name, f.name, i, f.count))
	}
	off := f.offset + f.prim.Size()*uintptr(i)
	return unsafe.Slice((*byte)(unsafe.Add(p, off)), f.prim.Size())
}

// Uint reads the named scalar field from the struct at p as raw bits.
func (s *Struct) Uint(p unsafe.Pointer, name string) uint64 {
	f := s.field(name)
	return f.prim.Get(s.fieldBytes(p, f, 0))
}

// PutUint writes raw bits into the named scalar field of the struct at p.
func (s *Struct) PutUint(p unsafe.Pointer, name string, bits uint64) {
	f := s.field(name)
	f.prim.Put(s.fieldBytes(p, f, 0), bits)
}

// UintAt reads element i of the named inline array field.
func (s *Struct) UintAt(p unsafe.Pointer, name string, i int) uint64 {
	f := s.field(name)
	return f.prim.Get(s.fieldBytes(p, f, i))
}

// PutUintAt writes element i of the named inline array field.
func (s *Struct) PutUintAt(p unsafe.Pointer, name string, i int, bits uint64) {
	f := s.field(name)
	f.prim.Put(s.fieldBytes(p, f, i), bits)
}

// Int reads the named field as a signed 32-bit value widened to int.
func (s *Struct) Int(p unsafe.Pointer, name string) int {
	return int(int32(uint32(s.Uint(p, name))))
}

// PutInt writes an int into the named 32-bit field.
func (s *Struct) PutInt(p unsafe.Pointer, name string, v int) {
	s.PutUint(p, name, uint64(uint32(int32(v))))
}

// Ptr reads the named pointer field.
func (s *Struct) Ptr(p unsafe.Pointer, name string) uintptr {
	return uintptr(s.Uint(p, name))
}

// PutPtr writes the named pointer field.
func (s *Struct) PutPtr(p unsafe.Pointer, name string, v uintptr) {
	s.PutUint(p, name, uint64(v))
}
