package codec

import "fmt"

// FlagDomain is a table of independent bit positions that combine via
// bitwise OR into a single native integer.
//
// Like Domain, a FlagDomain is built at initialization time and read-only
// afterwards.
type FlagDomain struct {
	name   string
	byName map[Name]int32
	order  []Name // registration order, used for deterministic decode
}

// NewFlagDomain creates an empty flag domain labeled name.
func NewFlagDomain(name string) *FlagDomain {
	return &FlagDomain{
		name:   name,
		byName: make(map[Name]int32),
	}
}

// Register adds one flag bit under the given name.
func (f *FlagDomain) Register(n Name, bit int32) *FlagDomain {
	if _, dup := f.byName[n]; dup {
		panic(fmt.Sprintf("codec: flag domain %q: duplicate name %q", f.name, n))
	}
	f.byName[n] = bit
	f.order = append(f.order, n)
	return f
}

// Encode folds a set of flag names into one native integer. An unrecognized
// member is a caller contract violation and panics.
func (f *FlagDomain) Encode(set []Name) int32 {
	var v int32
	for _, n := range set {
		bit, ok := f.byName[n]
		if !ok {
			panic(fmt.Sprintf("codec: flag domain %q: unrecognized flag %q", f.name, n))
		}
		v |= bit
	}
	return v
}

// Decode decomposes a native integer into the subset of registered flags
// whose bits are set, in registration order. Bits with no registered meaning
// are dropped silently; that is documented behavior, not an error, because
// newer native library versions may set bits this binding predates.
func (f *FlagDomain) Decode(v int32) []Name {
	var set []Name
	for _, n := range f.order {
		if bit := f.byName[n]; v&bit == bit && bit != 0 {
			set = append(set, n)
		}
	}
	return set
}

// Has reports whether the named flag's bit is set in v.
func (f *FlagDomain) Has(v int32, n Name) bool {
	bit, ok := f.byName[n]
	if !ok {
		panic(fmt.Sprintf("codec: flag domain %q: unrecognized flag %q", f.name, n))
	}
	return v&bit == bit
}

// Label returns the flag domain's label.
func (f *FlagDomain) Label() string { return f.name }
