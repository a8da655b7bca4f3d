package gamestate

import "github.com/rcarmo/freeciv-go-client/internal/wire"

// The decoder hands back untyped field maps (decoder package has no
// dependency on gamestate, by design); these helpers perform the one
// narrowing type assertion each field needs, defaulting safely when a
// key is absent rather than panicking.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asUint8(v interface{}) uint8 {
	n, _ := v.(uint8)
	return n
}

func asUint16(v interface{}) uint16 {
	n, _ := v.(uint16)
	return n
}

func asUint32(v interface{}) uint32 {
	n, _ := v.(uint32)
	return n
}

func asInt16(v interface{}) int16 {
	n, _ := v.(int16)
	return n
}

func asInt32(v interface{}) int32 {
	n, _ := v.(int32)
	return n
}

func asStringSlice(v interface{}) []string {
	s, _ := v.([]string)
	return s
}

func asBoolSlice(v interface{}) []bool {
	s, _ := v.([]bool)
	return s
}

func asInt8Slice(v interface{}) []int8 {
	s, _ := v.([]int8)
	return s
}

func asUint8Slice(v interface{}) []uint8 {
	s, _ := v.([]uint8)
	return s
}

func asUint16Slice(v interface{}) []uint16 {
	s, _ := v.([]uint16)
	return s
}

func asUint32Slice(v interface{}) []uint32 {
	s, _ := v.([]uint32)
	return s
}

func asRequirementSlice(v interface{}) []wire.Requirement {
	s, _ := v.([]wire.Requirement)
	return s
}
