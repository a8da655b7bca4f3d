// Package schema declares the FreeCiv packet schema registry: the
// per-packet-type, per-field table that drives the delta decoder. The
// registry is process-wide, immutable after init, and table-driven per
// spec.md §4.5/§9 — one Go literal table rather than a runtime schema
// parser, the way the teacher declares one struct per RDP capability set
// (internal/protocol/pdu/cap_*.go) instead of parsing a capability
// description format at runtime.
package schema

// WireType identifies one of the wire protocol's primitive or composite
// field types.
type WireType int

const (
	Uint8 WireType = iota
	Sint8
	Bool8
	Uint16
	Sint16
	Uint32
	Sint32
	String
	RequirementType
)

// FieldSpec captures one field of one packet type.
type FieldSpec struct {
	Name string
	Type WireType

	// IsKey marks a field that participates in the cache key: always
	// transmitted, never represented in the bitvector.
	IsKey bool

	// IsBoolFoldable marks a boolean field whose value is carried
	// entirely by its bitvector bit (spec.md §4.3); only valid when
	// Type == Bool8.
	IsBoolFoldable bool

	// DefaultValue is the typed zero value used when no cached baseline
	// exists: 0, false, "", []T{}, or -1 for signed integer types.
	DefaultValue interface{}

	// Array metadata.
	IsArray        bool
	ArraySize      int
	ArrayDiff      bool
	ElementType    WireType
	ElementDefault interface{} // default element value; schema-dictated per spec.md §4.4.
	CountPrefixed  bool        // REQUIREMENT arrays: read a UINT8 count, then that many records.
}

// PacketSpec is the complete schema for one packet type.
type PacketSpec struct {
	PacketType uint16
	Name       string
	HasDelta   bool
	Fields     []FieldSpec
}

// KeyFields returns the ordered subset of fields with IsKey set.
func (p *PacketSpec) KeyFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range p.Fields {
		if f.IsKey {
			out = append(out, f)
		}
	}
	return out
}

// NonKeyFields returns the ordered subset of fields without IsKey set.
func (p *PacketSpec) NonKeyFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range p.Fields {
		if !f.IsKey {
			out = append(out, f)
		}
	}
	return out
}

// NumBitvectorBits is the number of bits needed in the bitvector: one
// per non-key field.
func (p *PacketSpec) NumBitvectorBits() int {
	return len(p.NonKeyFields())
}

// NumBitvectorBytes is the ceiling-divided byte width of the bitvector.
func (p *PacketSpec) NumBitvectorBytes() int {
	return (p.NumBitvectorBits() + 7) / 8
}

// Registry is the process-wide immutable packet-type -> spec table.
var Registry = map[uint16]*PacketSpec{}

func register(spec *PacketSpec) {
	Registry[spec.PacketType] = spec
}

// Lookup returns the spec for a packet type, or false if none is
// registered.
func Lookup(packetType uint16) (*PacketSpec, bool) {
	spec, ok := Registry[packetType]
	return spec, ok
}

// BitvectorByteCount returns the bitvector width in bytes for a
// registered packet type, or 0 if the type is unknown. Exposed for
// introspection in tests per spec.md §4.5.
func BitvectorByteCount(packetType uint16) int {
	spec, ok := Lookup(packetType)
	if !ok {
		return 0
	}
	return spec.NumBitvectorBytes()
}

// FieldOrder returns the declared, full (key + non-key) field name
// order for a registered packet type.
func FieldOrder(packetType uint16) []string {
	spec, ok := Lookup(packetType)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		names = append(names, f.Name)
	}
	return names
}
