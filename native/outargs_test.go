package native

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/glfw/codec"
)

func TestCallOutsReturnsResultsInDeclaredOrder(t *testing.T) {
	results := CallOuts(func(addrs []uintptr) {
		require.Len(t, addrs, 3)
		*(*int32)(unsafe.Pointer(addrs[0])) = -7
		*(*int32)(unsafe.Pointer(addrs[1])) = 42
		*(*float64)(unsafe.Pointer(addrs[2])) = 1.5
	},
		Out("x", codec.Int32),
		Out("y", codec.Int32),
		Out("scale", codec.Float64),
	)

	require.Len(t, results, 3)
	assert.Equal(t, int32(-7), int32(uint32(results[0])))
	assert.Equal(t, int32(42), int32(uint32(results[1])))
	assert.Equal(t, 1.5, codec.Float64From(results[2]))
}

func TestCallOutsScratchCellsStartZeroed(t *testing.T) {
	// A native call that writes nothing must yield zero values, not stale
	// data from a previous invocation.
	for i := 0; i < 64; i++ {
		dirty := CallOuts(func(addrs []uintptr) {
			*(*uint64)(unsafe.Pointer(addrs[0])) = 0xFFFF_FFFF_FFFF_FFFF
		}, Out("v", codec.Uint64))
		require.Equal(t, ^uint64(0), dirty[0])

		clean := CallOuts(func(addrs []uintptr) {}, Out("v", codec.Uint64))
		assert.Zero(t, clean[0], "iteration %d", i)
	}
}

func TestCallOutsNoBindings(t *testing.T) {
	called := false
	results := CallOuts(func(addrs []uintptr) {
		called = true
		assert.Empty(t, addrs)
	})
	assert.True(t, called)
	assert.Empty(t, results)
}

func TestCallOutsNarrowWriteDecodesOwnWidth(t *testing.T) {
	// An int16 out parameter only owns two bytes of its cell.
	results := CallOuts(func(addrs []uintptr) {
		*(*uint16)(unsafe.Pointer(addrs[0])) = 0xFFFE
	}, Out("v", codec.Uint16))
	assert.Equal(t, uint64(0xFFFE), results[0])
}
