package codec

import "fmt"

// Name is a symbolic constant name within one enum or flag domain.
type Name string

// Unknown is the sentinel returned when decoding a native integer with no
// registered meaning. Forward compatibility requires this to be an ordinary
// value, never a panic: the native library may introduce constants this
// binding predates.
const Unknown Name = "unknown"

// Domain is a bidirectional table between symbolic names and the native
// library's integer constants for one semantic family.
//
// Domains are built during package initialization and are read-only
// afterwards; concurrent Encode/Decode calls need no locking.
type Domain struct {
	name    string
	byName  map[Name]int32
	byValue map[int32]Name
	aliases map[Name]Name
}

// NewDomain creates an empty domain labeled name. The label only appears in
// panic messages and logs.
func NewDomain(name string) *Domain {
	return &Domain{
		name:    name,
		byName:  make(map[Name]int32),
		byValue: make(map[int32]Name),
		aliases: make(map[Name]Name),
	}
}

// Register adds a canonical name/value pair. The first name registered for a
// value becomes the canonical decode result; later names for the same value
// are treated as implicit aliases.
func (d *Domain) Register(n Name, v int32) *Domain {
	if _, dup := d.byName[n]; dup {
		panic(fmt.Sprintf("codec: domain %q: duplicate name %q", d.name, n))
	}
	d.byName[n] = v
	if _, exists := d.byValue[v]; !exists {
		d.byValue[v] = n
	}
	return d
}

// Alias declares alias as another spelling of canonical. Aliases resolve to
// the canonical value on encode; decode never produces an alias.
func (d *Domain) Alias(alias, canonical Name) *Domain {
	if _, ok := d.byName[canonical]; !ok {
		panic(fmt.Sprintf("codec: domain %q: alias %q targets unregistered %q",
			d.name, alias, canonical))
	}
	if _, dup := d.aliases[alias]; dup {
		panic(fmt.Sprintf("codec: domain %q: duplicate alias %q", d.name, alias))
	}
	d.aliases[alias] = canonical
	return d
}

// Encode maps a symbolic name (canonical or alias) to its native integer.
// An unrecognized name is a caller contract violation and panics.
func (d *Domain) Encode(n Name) int32 {
	if canonical, ok := d.aliases[n]; ok {
		n = canonical
	}
	v, ok := d.byName[n]
	if !ok {
		panic(fmt.Sprintf("codec: domain %q: unrecognized name %q", d.name, n))
	}
	return v
}

// Decode maps a native integer to its canonical symbolic name, or Unknown
// if the value has no registered meaning.
func (d *Domain) Decode(v int32) Name {
	if n, ok := d.byValue[v]; ok {
		return n
	}
	return Unknown
}

// Known reports whether n is a registered name or alias.
func (d *Domain) Known(n Name) bool {
	if _, ok := d.aliases[n]; ok {
		return true
	}
	_, ok := d.byName[n]
	return ok
}

// Label returns the domain's label.
func (d *Domain) Label() string { return d.name }
