// Package decoder implements the FreeCiv delta decoder (spec.md §4.3):
// given a packet schema, its raw payload, and the connection's delta
// cache, it reconstructs the complete field set the server intended,
// filling in any field the server chose not to retransmit from the most
// recent cached value for that (packet_type, key_tuple).
//
// This is the heart of the protocol. It is structured the way the
// teacher's internal/codec/decoder.go (NSCodec) decodes a bitmap stream:
// a single cursor threaded through a sequence of named reads, each
// validated before the next begins, generalized here from a fixed set of
// picture planes to a schema-driven field loop.
package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rcarmo/freeciv-go-client/internal/deltacache"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
	"github.com/rcarmo/freeciv-go-client/internal/wire"
)

// ErrMalformedPacket is the sentinel wrapped by every MalformedPacketError.
var ErrMalformedPacket = errors.New("decoder: malformed packet")

// MalformedPacketError carries the packet type, the byte offset where
// the fault was detected, and a short reason string (spec.md §7).
type MalformedPacketError struct {
	PacketType uint16
	Offset     int
	Reason     string
}

func (e *MalformedPacketError) Error() string {
	return fmt.Sprintf("decoder: packet type %d: malformed at offset %d: %s", e.PacketType, e.Offset, e.Reason)
}

func (e *MalformedPacketError) Unwrap() error {
	return ErrMalformedPacket
}

func malformed(spec *schema.PacketSpec, offset int, format string, args ...interface{}) error {
	return &MalformedPacketError{
		PacketType: spec.PacketType,
		Offset:     offset,
		Reason:     fmt.Sprintf(format, args...),
	}
}

// Decode reconstructs the complete field map for one packet instance.
//
// Most packet types opt into the delta protocol (spec.HasDelta == true):
// a bitvector selects which non-key fields were retransmitted, and any
// field whose bit is clear falls back to the delta cache's baseline for
// that (packet_type, key_tuple). A handful of packets predate that
// machinery entirely — the join handshake pair and a few one-shot
// ruleset packets — and are marked HasDelta == false: every field is
// read straight off the wire in declared order, with no bitvector and
// no cache interaction (spec.md §3.3).
func Decode(spec *schema.PacketSpec, payload []byte, cache *deltacache.Cache) (deltacache.FieldMap, error) {
	if !spec.HasDelta {
		return decodeFlat(spec, payload)
	}
	return decodeDelta(spec, payload, cache)
}

// decodeFlat handles HasDelta == false packets: no bitvector, no cache,
// every field present and read unconditionally in declared order.
func decodeFlat(spec *schema.PacketSpec, payload []byte) (deltacache.FieldMap, error) {
	off := 0
	result := make(deltacache.FieldMap, len(spec.Fields))

	for _, f := range spec.Fields {
		v, newOff, err := decodeFieldValue(spec, f, payload, off, nil)
		if err != nil {
			return nil, err
		}
		result[f.Name] = v
		off = newOff
	}

	if off != len(payload) {
		return nil, malformed(spec, off, "cursor at %d, payload length %d", off, len(payload))
	}

	return result, nil
}

// decodeDelta handles HasDelta == true packets per spec.md §4.3.
func decodeDelta(spec *schema.PacketSpec, payload []byte, cache *deltacache.Cache) (deltacache.FieldMap, error) {
	off := 0
	result := make(deltacache.FieldMap, len(spec.Fields))

	// Step 1: read key fields directly from the payload, in declared order.
	var keyParts []string
	for _, f := range spec.KeyFields() {
		v, newOff, err := readScalar(f.Type, payload, off)
		if err != nil {
			return nil, wrapTruncated(spec, off, err)
		}
		off = newOff
		result[f.Name] = v
		keyParts = append(keyParts, fmt.Sprintf("%v", v))
	}
	keyTuple := strings.Join(keyParts, "\x1f")

	// Step 2: load the cache baseline, or start every non-key field at
	// its schema default.
	baseline := cache.Get(spec.PacketType, keyTuple)
	nonKey := spec.NonKeyFields()
	for _, f := range nonKey {
		if baseline != nil {
			if v, ok := baseline[f.Name]; ok {
				result[f.Name] = v
				continue
			}
		}
		result[f.Name] = schemaDefault(f)
	}

	// Step 3: read the bitvector.
	bitvectorBytes := spec.NumBitvectorBytes()
	if off+bitvectorBytes > len(payload) {
		return nil, malformed(spec, off, "bitvector needs %d bytes, only %d remain", bitvectorBytes, len(payload)-off)
	}
	bits := payload[off : off+bitvectorBytes]
	off += bitvectorBytes

	bitSet := func(i int) bool {
		return (bits[i/8]>>(uint(i)%8))&1 == 1
	}

	// Step 4: decode non-key fields in order.
	for i, f := range nonKey {
		present := bitSet(i)

		if f.IsBoolFoldable {
			// Header folding: the bit *is* the value; no payload bytes
			// are consumed, and the stored value is overwritten on
			// every packet regardless of baseline (spec.md §4.3).
			result[f.Name] = present
			continue
		}

		if !present {
			// Keep whatever Step 2 already placed (baseline or default).
			continue
		}

		v, newOff, err := decodeFieldValue(spec, f, payload, off, baseline)
		if err != nil {
			return nil, err
		}
		result[f.Name] = v
		off = newOff
	}

	// Step 5/Invariant: the cursor must land exactly at the end of the
	// payload for a well-formed packet.
	if off != len(payload) {
		return nil, malformed(spec, off, "cursor at %d, payload length %d", off, len(payload))
	}

	// Step 6: update the cache with a copy of the full field map.
	cache.Put(spec.PacketType, keyTuple, result)

	return result, nil
}

// decodeFieldValue reads one present field's value, dispatching on its
// scalar/array/requirement shape. baseline is nil outside the delta path
// (decodeFlat never diffs arrays, since there is no cache to diff against).
func decodeFieldValue(spec *schema.PacketSpec, f schema.FieldSpec, payload []byte, off int, baseline deltacache.FieldMap) (interface{}, int, error) {
	var (
		v      interface{}
		newOff int
		err    error
	)

	switch {
	case f.IsArray && f.ElementType == schema.RequirementType && f.CountPrefixed:
		v, newOff, err = decodeRequirementArray(payload, off)
	case f.IsArray && f.ArrayDiff:
		v, newOff, err = decodeArrayDiff(spec, f, payload, off, baselineArray(baseline, f.Name))
	case f.IsArray:
		v, newOff, err = decodeFixedArray(f, payload, off)
	default:
		v, newOff, err = readScalar(f.Type, payload, off)
	}

	if err != nil {
		var mpe *MalformedPacketError
		if errors.As(err, &mpe) {
			return nil, off, err
		}
		return nil, off, wrapTruncated(spec, off, err)
	}

	return v, newOff, nil
}

func wrapTruncated(spec *schema.PacketSpec, off int, err error) error {
	if errors.Is(err, wire.ErrTruncated) {
		return malformed(spec, off, "%v", err)
	}
	return err
}

// schemaDefault produces the value a field takes when no cached baseline
// exists. Scalars use their declared DefaultValue; arrays are expanded to
// their full declared size, every element set to ElementDefault, since
// DefaultValue only records an empty slice as a type hint.
func schemaDefault(f schema.FieldSpec) interface{} {
	if !f.IsArray {
		return f.DefaultValue
	}
	switch f.ElementType {
	case schema.Bool8:
		return toBoolSlice(nil, f)
	case schema.Uint8:
		return toUint8Slice(nil, f)
	case schema.Sint8:
		return toSint8Slice(nil, f)
	case schema.Uint16:
		return toUint16Slice(nil, f)
	case schema.Sint16:
		return toSint16Slice(nil, f)
	case schema.Uint32:
		return toUint32Slice(nil, f)
	case schema.Sint32:
		return toSint32Slice(nil, f)
	case schema.String:
		return toStringSlice(nil, f)
	default:
		return f.DefaultValue
	}
}

func baselineArray(baseline deltacache.FieldMap, name string) interface{} {
	if baseline == nil {
		return nil
	}
	return baseline[name]
}

// readScalar reads one value of the given wire type at off.
func readScalar(t schema.WireType, payload []byte, off int) (interface{}, int, error) {
	switch t {
	case schema.Uint8:
		return chain(wire.ReadUint8(payload, off))
	case schema.Sint8:
		return chain(wire.ReadSint8(payload, off))
	case schema.Bool8:
		return chain(wire.ReadBool(payload, off))
	case schema.Uint16:
		return chain(wire.ReadUint16(payload, off))
	case schema.Sint16:
		return chain(wire.ReadSint16(payload, off))
	case schema.Uint32:
		return chain(wire.ReadUint32(payload, off))
	case schema.Sint32:
		return chain(wire.ReadSint32(payload, off))
	case schema.String:
		return chain(wire.ReadString(payload, off))
	case schema.RequirementType:
		return chain(wire.ReadRequirement(payload, off))
	default:
		return nil, off, fmt.Errorf("decoder: unknown wire type %d", t)
	}
}

// chain adapts a (value, newOff, error) triple with a concrete value type
// into the (interface{}, int, error) shape readScalar needs.
func chain[T any](v T, newOff int, err error) (interface{}, int, error) {
	return v, newOff, err
}

func decodeRequirementArray(payload []byte, off int) (interface{}, int, error) {
	count, newOff, err := wire.ReadUint8(payload, off)
	if err != nil {
		return nil, off, err
	}
	off = newOff

	reqs := make([]wire.Requirement, 0, count)
	for i := 0; i < int(count); i++ {
		var r wire.Requirement
		r, off, err = wire.ReadRequirement(payload, off)
		if err != nil {
			return nil, off, err
		}
		reqs = append(reqs, r)
	}
	return reqs, off, nil
}

func decodeFixedArray(f schema.FieldSpec, payload []byte, off int) (interface{}, int, error) {
	switch f.ElementType {
	case schema.Bool8:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadBool)
	case schema.Uint8:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadUint8)
	case schema.Sint8:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadSint8)
	case schema.Uint16:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadUint16)
	case schema.Sint16:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadSint16)
	case schema.Uint32:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadUint32)
	case schema.Sint32:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadSint32)
	case schema.String:
		return readTypedArray(payload, off, f.ArraySize, wire.ReadString)
	default:
		return nil, off, fmt.Errorf("decoder: unsupported fixed-array element type %d", f.ElementType)
	}
}

func readTypedArray[T any](payload []byte, off, size int, read func([]byte, int) (T, int, error)) (interface{}, int, error) {
	out := make([]T, 0, size)
	for i := 0; i < size; i++ {
		v, newOff, err := read(payload, off)
		if err != nil {
			return nil, off, err
		}
		off = newOff
		out = append(out, v)
	}
	return out, off, nil
}
