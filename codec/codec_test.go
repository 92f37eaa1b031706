package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRegistryCoversAllKinds(t *testing.T) {
	kinds := []Kind{Bool, Int8, Uint8, Int16, Uint16, Int32, Uint32,
		Int64, Uint64, Float32, Float64, Pointer, CString, Handle}
	for _, k := range kinds {
		p := ByKind(k)
		require.NotNil(t, p, "kind %s", k)
		assert.Equal(t, k, p.Kind())
		assert.NotZero(t, p.Size())
		assert.NotZero(t, p.Align())
	}
}

func TestByKindUnregisteredPanics(t *testing.T) {
	assert.Panics(t, func() { ByKind(Invalid) })
	assert.Panics(t, func() { ByKind(Kind(200)) })
}

func TestPrimitiveRoundTrip(t *testing.T) {
	cases := []struct {
		kind Kind
		bits uint64
	}{
		{Uint8, 0xAB},
		{Int16, 0x1234},
		{Uint16, 0xFFFF},
		{Int32, 0xDEADBEEF},
		{Uint64, 0x0123456789ABCDEF},
		{Float32, Float32Bits(1.5)},
		{Float64, Float64Bits(-2.25)},
		{Pointer, 0x1000},
	}
	for _, c := range cases {
		p := ByKind(c.kind)
		buf := make([]byte, p.Size())
		p.Put(buf, c.bits)
		got := p.Get(buf)
		// Narrow kinds only preserve their own width.
		mask := uint64(1)<<(8*p.Size()) - 1
		if p.Size() == 8 {
			mask = ^uint64(0)
		}
		assert.Equal(t, c.bits&mask, got, "kind %s", c.kind)
	}
}

func TestPrimitiveShortBufferPanics(t *testing.T) {
	p := ByKind(Int32)
	assert.Panics(t, func() { p.Get(make([]byte, 2)) })
	assert.Panics(t, func() { p.Put(make([]byte, 3), 1) })
}

func TestBoolCodec(t *testing.T) {
	if EncodeBool(true) != 1 {
		t.Errorf("EncodeBool(true) = %d, want 1", EncodeBool(true))
	}
	if EncodeBool(false) != 0 {
		t.Errorf("EncodeBool(false) = %d, want 0", EncodeBool(false))
	}
	if DecodeBool(0) {
		t.Error("DecodeBool(0) = true, want false")
	}
	if !DecodeBool(1) || !DecodeBool(-7) {
		t.Error("DecodeBool(nonzero) must be true")
	}
}

func TestFloatBitAdapters(t *testing.T) {
	assert.Equal(t, float32(3.5), Float32From(Float32Bits(3.5)))
	assert.Equal(t, -0.125, Float64From(Float64Bits(-0.125)))
}

func newButtonDomain() *Domain {
	d := NewDomain("mouse-button")
	d.Register("button-1", 0)
	d.Register("button-2", 1)
	d.Register("button-3", 2)
	d.Alias("left", "button-1")
	d.Alias("right", "button-2")
	d.Alias("middle", "button-3")
	return d
}

func TestDomainEncodeDecodeRoundTrip(t *testing.T) {
	d := newButtonDomain()
	for _, n := range []Name{"button-1", "button-2", "button-3"} {
		assert.Equal(t, n, d.Decode(d.Encode(n)), "round trip for %q", n)
	}
}

func TestDomainAliasResolvesToCanonical(t *testing.T) {
	d := newButtonDomain()
	assert.Equal(t, d.Encode("button-1"), d.Encode("left"))
	// Decode never yields the alias.
	assert.Equal(t, Name("button-1"), d.Decode(d.Encode("left")))
}

func TestDomainUnknownDecodeIsSentinel(t *testing.T) {
	d := newButtonDomain()
	assert.NotPanics(t, func() { d.Decode(999) })
	assert.Equal(t, Unknown, d.Decode(999))
}

func TestDomainUnknownEncodePanics(t *testing.T) {
	d := newButtonDomain()
	assert.Panics(t, func() { d.Encode("wheel-tilt") })
}

func TestDomainAliasOfUnregisteredPanics(t *testing.T) {
	d := NewDomain("empty")
	assert.Panics(t, func() { d.Alias("left", "button-1") })
}

func TestDomainKnown(t *testing.T) {
	d := newButtonDomain()
	assert.True(t, d.Known("button-2"))
	assert.True(t, d.Known("middle"))
	assert.False(t, d.Known("wheel-tilt"))
}

func newModDomain() *FlagDomain {
	f := NewFlagDomain("modifier")
	f.Register("shift", 0x0001)
	f.Register("control", 0x0002)
	f.Register("alt", 0x0004)
	f.Register("super", 0x0008)
	return f
}

func TestFlagEncodeDecodeRoundTrip(t *testing.T) {
	f := newModDomain()
	subsets := [][]Name{
		nil,
		{"shift"},
		{"control", "alt"},
		{"shift", "control", "alt", "super"},
	}
	for _, s := range subsets {
		got := f.Decode(f.Encode(s))
		assert.ElementsMatch(t, s, got, "subset %v", s)
	}
}

func TestFlagDecodeModifierMask(t *testing.T) {
	// Shift and control bits both set.
	f := newModDomain()
	set := f.Decode(0x0003)
	require.Len(t, set, 2)
	assert.Equal(t, []Name{"shift", "control"}, set)
}

func TestFlagDecodeDropsUnknownBits(t *testing.T) {
	f := newModDomain()
	assert.NotPanics(t, func() { f.Decode(0x7FF0_0000) })
	assert.Equal(t, []Name{"shift"}, f.Decode(0x0001|0x4000))
}

func TestFlagEncodeUnknownPanics(t *testing.T) {
	f := newModDomain()
	assert.Panics(t, func() { f.Encode([]Name{"hyper"}) })
}

func TestFlagHas(t *testing.T) {
	f := newModDomain()
	v := f.Encode([]Name{"shift", "super"})
	assert.True(t, f.Has(v, "shift"))
	assert.False(t, f.Has(v, "alt"))
	assert.Panics(t, func() { f.Has(v, "hyper") })
}
