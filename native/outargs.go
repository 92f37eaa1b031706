package native

import (
	"runtime"
	"unsafe"

	"github.com/opd-ai/glfw/codec"
)

// OutArg declares one pointer-to-scalar output binding of a native call.
type OutArg struct {
	Name string
	Prim *codec.Primitive
}

// Out declares an output binding of the given primitive kind.
func Out(name string, kind codec.Kind) OutArg {
	return OutArg{Name: name, Prim: codec.ByKind(kind)}
}

// CallOuts allocates one zeroed scratch cell per binding, invokes fn with
// the cell addresses in declared order, then decodes each cell into the
// returned result list, also in declared order.
//
// The scratch region lives exactly one call: nothing retains the addresses
// after fn returns, so the native side must not either. This is the single
// device behind every position/size/scale/workarea style query, which would
// otherwise each repeat the same unsafe bookkeeping.
func CallOuts(fn func(addrs []uintptr), outs ...OutArg) []uint64 {
	cells := make([]uint64, len(outs))
	addrs := make([]uintptr, len(outs))
	for i := range cells {
		addrs[i] = uintptr(unsafe.Pointer(&cells[i]))
	}
	fn(addrs)

	results := make([]uint64, len(outs))
	for i, out := range outs {
		b := unsafe.Slice((*byte)(unsafe.Pointer(&cells[i])), out.Prim.Size())
		results[i] = out.Prim.Get(b)
	}
	runtime.KeepAlive(cells)
	return results
}
