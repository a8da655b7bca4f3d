package decoder

import (
	"fmt"

	"github.com/rcarmo/freeciv-go-client/internal/schema"
	"github.com/rcarmo/freeciv-go-client/internal/wire"
)

// decodeArrayDiff decodes the array-diff sub-protocol (spec.md §4.4): the
// server starts from the array's previous value (or its schema default,
// element-wise, if there is none) and sends a sequence of
// (index, value) pairs, terminated by an index equal to the array's
// declared size. This mirrors the teacher's RLE decoders
// (internal/codec/rle_common.go, rle8.go): read an op, act on the
// buffer, loop until the sentinel is seen.
func decodeArrayDiff(spec *schema.PacketSpec, f schema.FieldSpec, payload []byte, off int, baseline interface{}) (interface{}, int, error) {
	indexWidth := readUint8Index
	if f.ArraySize > 255 {
		indexWidth = readUint16Index
	}

	switch f.ElementType {
	case schema.Bool8:
		return runArrayDiff(spec, f, payload, off, indexWidth, toBoolSlice(baseline, f), wire.ReadBool)
	case schema.Uint8:
		return runArrayDiff(spec, f, payload, off, indexWidth, toUint8Slice(baseline, f), wire.ReadUint8)
	case schema.Sint8:
		return runArrayDiff(spec, f, payload, off, indexWidth, toSint8Slice(baseline, f), wire.ReadSint8)
	case schema.Uint16:
		return runArrayDiff(spec, f, payload, off, indexWidth, toUint16Slice(baseline, f), wire.ReadUint16)
	case schema.Sint16:
		return runArrayDiff(spec, f, payload, off, indexWidth, toSint16Slice(baseline, f), wire.ReadSint16)
	case schema.Uint32:
		return runArrayDiff(spec, f, payload, off, indexWidth, toUint32Slice(baseline, f), wire.ReadUint32)
	case schema.Sint32:
		return runArrayDiff(spec, f, payload, off, indexWidth, toSint32Slice(baseline, f), wire.ReadSint32)
	case schema.String:
		return runArrayDiff(spec, f, payload, off, indexWidth, toStringSlice(baseline, f), wire.ReadString)
	default:
		return nil, off, fmt.Errorf("decoder: unsupported array-diff element type %d", f.ElementType)
	}
}

type indexReader func(payload []byte, off int) (int, int, error)

func readUint8Index(payload []byte, off int) (int, int, error) {
	v, newOff, err := wire.ReadUint8(payload, off)
	return int(v), newOff, err
}

func readUint16Index(payload []byte, off int) (int, int, error) {
	v, newOff, err := wire.ReadUint16(payload, off)
	return int(v), newOff, err
}

// runArrayDiff drives the read-index/read-value loop for one concrete
// element type T. arr is the mutable starting array (baseline copy or
// schema defaults); it is mutated in place and returned.
func runArrayDiff[T any](spec *schema.PacketSpec, f schema.FieldSpec, payload []byte, off int, readIndex indexReader, arr []T, readValue func([]byte, int) (T, int, error)) (interface{}, int, error) {
	for {
		index, newOff, err := readIndex(payload, off)
		if err != nil {
			return nil, off, err
		}
		off = newOff

		if index == f.ArraySize {
			return arr, off, nil
		}
		if index > f.ArraySize {
			return nil, off, malformed(spec, off, "array-diff index %d exceeds array size %d for field %q", index, f.ArraySize, f.Name)
		}

		var v T
		v, off, err = readValue(payload, off)
		if err != nil {
			return nil, off, err
		}
		arr[index] = v
	}
}

func toBoolSlice(baseline interface{}, f schema.FieldSpec) []bool {
	if v, ok := baseline.([]bool); ok && len(v) == f.ArraySize {
		out := make([]bool, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(bool)
	out := make([]bool, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}

func toUint8Slice(baseline interface{}, f schema.FieldSpec) []uint8 {
	if v, ok := baseline.([]uint8); ok && len(v) == f.ArraySize {
		out := make([]uint8, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(uint8)
	out := make([]uint8, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}

func toSint8Slice(baseline interface{}, f schema.FieldSpec) []int8 {
	if v, ok := baseline.([]int8); ok && len(v) == f.ArraySize {
		out := make([]int8, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(int8)
	out := make([]int8, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}

func toUint16Slice(baseline interface{}, f schema.FieldSpec) []uint16 {
	if v, ok := baseline.([]uint16); ok && len(v) == f.ArraySize {
		out := make([]uint16, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(uint16)
	out := make([]uint16, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}

func toSint16Slice(baseline interface{}, f schema.FieldSpec) []int16 {
	if v, ok := baseline.([]int16); ok && len(v) == f.ArraySize {
		out := make([]int16, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(int16)
	out := make([]int16, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}

func toUint32Slice(baseline interface{}, f schema.FieldSpec) []uint32 {
	if v, ok := baseline.([]uint32); ok && len(v) == f.ArraySize {
		out := make([]uint32, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(uint32)
	out := make([]uint32, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}

func toSint32Slice(baseline interface{}, f schema.FieldSpec) []int32 {
	if v, ok := baseline.([]int32); ok && len(v) == f.ArraySize {
		out := make([]int32, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(int32)
	out := make([]int32, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}

func toStringSlice(baseline interface{}, f schema.FieldSpec) []string {
	if v, ok := baseline.([]string); ok && len(v) == f.ArraySize {
		out := make([]string, f.ArraySize)
		copy(out, v)
		return out
	}
	def, _ := f.ElementDefault.(string)
	out := make([]string, f.ArraySize)
	for i := range out {
		out[i] = def
	}
	return out
}
