package native

import "unsafe"

// CString returns s as a NUL-terminated byte slice suitable for passing to
// a native call via BytesPtr. The slice must be kept alive for the duration
// of the call.
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// BytesPtr returns the address of the first byte of b, or 0 for an empty
// slice.
func BytesPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// GoString copies the NUL-terminated native string at addr into Go memory.
// A zero address yields the empty string.
func GoString(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(addr + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(addr)), n))
}

// GoStrings reads a native array of count C string pointers at addr,
// copying each into Go memory.
func GoStrings(addr uintptr, count int) []string {
	if addr == 0 || count <= 0 {
		return nil
	}
	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(addr)), count)
	out := make([]string, count)
	for i, p := range ptrs {
		out[i] = GoString(p)
	}
	return out
}
