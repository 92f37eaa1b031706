package native

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCStringAppendsTerminator(t *testing.T) {
	b := CString("glfw")
	require.Len(t, b, 5)
	assert.Equal(t, byte(0), b[4])
	assert.Equal(t, "glfw", string(b[:4]))
}

func TestGoStringRoundTrip(t *testing.T) {
	b := CString("monitor name")
	assert.Equal(t, "monitor name", GoString(BytesPtr(b)))
}

func TestGoStringEmptyAndNil(t *testing.T) {
	assert.Equal(t, "", GoString(0))
	assert.Equal(t, "", GoString(BytesPtr(CString(""))))
}

func TestBytesPtrEmptySlice(t *testing.T) {
	assert.Equal(t, uintptr(0), BytesPtr(nil))
	assert.Equal(t, uintptr(0), BytesPtr([]byte{}))
}

func TestGoStringsReadsPointerArray(t *testing.T) {
	a := CString("/tmp/one.png")
	b := CString("/tmp/two.png")
	ptrs := []uintptr{BytesPtr(a), BytesPtr(b)}

	got := GoStrings(uintptr(unsafe.Pointer(&ptrs[0])), 2)
	assert.Equal(t, []string{"/tmp/one.png", "/tmp/two.png"}, got)
}

func TestGoStringsZeroAddressOrCount(t *testing.T) {
	assert.Nil(t, GoStrings(0, 3))
	ptrs := []uintptr{0}
	assert.Nil(t, GoStrings(uintptr(unsafe.Pointer(&ptrs[0])), 0))
}

func TestBindRejectsNonStructTarget(t *testing.T) {
	lib := &Library{}
	assert.Error(t, Bind(lib, 42))
	var table struct{}
	assert.Error(t, Bind(lib, table)) // must be a pointer
	assert.NoError(t, Bind(lib, &table))
}
