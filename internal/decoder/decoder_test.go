package decoder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/freeciv-go-client/internal/deltacache"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
	"github.com/rcarmo/freeciv-go-client/internal/wire"
)

// Scenario 2: a fresh PACKET_CHAT_MSG with conn_id absent from the wire
// must come back with its cached default, -1, while every transmitted
// field carries its sent value.
func TestChatMsgRoundTrip(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketChatMsg)
	require.True(t, ok)

	var payload []byte
	payload = append(payload, 0x1F) // bits 0-4 set, bit 5 (conn_id) clear
	payload = wire.WriteString(payload, "hi")
	payload = wire.WriteSint32(payload, 5)
	payload = wire.WriteSint16(payload, 7)
	payload = wire.WriteSint32(payload, 10)
	payload = wire.WriteSint16(payload, 2)

	cache := deltacache.New()
	fields, err := Decode(spec, payload, cache)
	require.NoError(t, err)

	assert.Equal(t, "hi", fields["message"])
	assert.Equal(t, int32(5), fields["tile"])
	assert.Equal(t, int16(7), fields["event"])
	assert.Equal(t, int32(10), fields["turn"])
	assert.Equal(t, int16(2), fields["phase"])
	assert.Equal(t, int32(-1), fields["conn_id"])
}

// Supplemented coverage: PACKET_RULESET_TECH exercises the
// count-prefixed REQUIREMENT array branch (research_reqs), distinct
// from PACKET_GAME_INFO's array-diff branch covered elsewhere.
func TestRulesetTechRequirementArray(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketRulesetTech)
	require.True(t, ok)

	var payload []byte
	payload = wire.WriteUint16(payload, 12) // id (key)
	payload = append(payload, 0xFF, 0x1F)   // 13 non-key fields, all bits set
	payload = wire.WriteUint16(payload, 7)  // root_req
	payload = wire.WriteUint8(payload, 1)   // research_reqs_count
	payload = wire.WriteUint8(payload, 1)   // research_reqs: one entry
	payload = wire.WriteRequirement(payload, wire.Requirement{Type: 1, Value: 5, Range: 2, Present: true})
	payload = wire.WriteUint8(payload, 3)     // tclass
	// removed (index 4) is bool-foldable: bit 1 means true, no bytes consumed.
	payload = wire.WriteUint32(payload, 1)    // flags
	payload = wire.WriteUint16(payload, 20)   // cost
	payload = wire.WriteUint8(payload, 1)     // num_reqs
	payload = wire.WriteString(payload, "Bronze Working")
	payload = wire.WriteString(payload, "bronze_working")
	payload = wire.WriteString(payload, "helps")
	payload = wire.WriteString(payload, "a.bronze")
	payload = wire.WriteString(payload, "-")

	cache := deltacache.New()
	fields, err := Decode(spec, payload, cache)
	require.NoError(t, err)

	assert.Equal(t, uint16(12), fields["id"])
	assert.Equal(t, true, fields["removed"])
	assert.Equal(t, uint16(20), fields["cost"])
	reqs, ok := fields["research_reqs"].([]wire.Requirement)
	require.True(t, ok)
	require.Len(t, reqs, 1)
	assert.Equal(t, wire.Requirement{Type: 1, Value: 5, Range: 2, Present: true}, reqs[0])
	assert.Equal(t, "Bronze Working", fields["name"])
}

// Scenario 5: an empty bitvector still updates a header-folded bool from
// its bit, and leaves every other non-key field at its cached baseline.
func TestBoolHeaderFoldingDrivenByBitNotCache(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketRulesetClause)
	require.True(t, ok)
	cache := deltacache.New()

	// First packet: type=7 (key), enabled bit set true, giver_reqs_count sent.
	var first []byte
	first = wire.WriteUint16(first, 7)
	first = append(first, 0x03) // bit0 enabled (folded, no bytes), bit1 giver_reqs_count
	first = wire.WriteUint8(first, 4)

	fields, err := Decode(spec, first, cache)
	require.NoError(t, err)
	assert.Equal(t, true, fields["enabled"])
	assert.Equal(t, uint8(4), fields["giver_reqs_count"])

	// Second packet, same key: bitvector says enabled=false (bit0 clear,
	// but the field is foldable so the bit itself *is* the value) and
	// giver_reqs_count's bit is clear too, so it must keep the cached 4.
	var second []byte
	second = wire.WriteUint16(second, 7)
	second = append(second, 0x00)

	fields, err = Decode(spec, second, cache)
	require.NoError(t, err)
	assert.Equal(t, false, fields["enabled"], "foldable bool follows the bit, not the cache")
	assert.Equal(t, uint8(4), fields["giver_reqs_count"], "non-foldable field keeps its cached value when its bit is clear")
}

// Scenario 3/4: array-diff decoding against a 401-element bool array and
// a 200-element sint8 array, across two packets sharing one cache slot.
func TestArrayDiffAccumulatesAgainstBaseline(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketGameInfo)
	require.True(t, ok)
	cache := deltacache.New()

	// First packet: advance_count=5, flip global_advances[3] to true,
	// leave great_wonder_owners untouched (bit clear).
	var first []byte
	first = append(first, 0x03) // bit0 advance_count, bit1 global_advances
	first = wire.WriteUint16(first, 5)
	first = wire.WriteUint16(first, 3) // index (array size 401 > 255: 2-byte index)
	first = wire.WriteBool(first, true)
	first = wire.WriteUint16(first, 401) // sentinel == ArraySize

	fields, err := Decode(spec, first, cache)
	require.NoError(t, err)

	advances, ok := fields["global_advances"].([]bool)
	require.True(t, ok)
	require.Len(t, advances, 401)
	assert.True(t, advances[3])
	assert.False(t, advances[0])

	owners, ok := fields["great_wonder_owners"].([]int8)
	require.True(t, ok)
	require.Len(t, owners, 200)
	assert.Equal(t, int8(-1), owners[0], "never-updated element keeps its schema default")

	// Second packet: only flip index 7 in global_advances. Index 3 must
	// survive from the baseline established by the first packet.
	var second []byte
	second = append(second, 0x02) // bit1 only
	second = wire.WriteUint16(second, 7)
	second = wire.WriteBool(second, true)
	second = wire.WriteUint16(second, 401)

	fields, err = Decode(spec, second, cache)
	require.NoError(t, err)

	advances, ok = fields["global_advances"].([]bool)
	require.True(t, ok)
	assert.True(t, advances[3], "unchanged slot carried over from the cache")
	assert.True(t, advances[7])
	assert.Equal(t, uint16(5), fields["global_advance_count"], "unsent scalar keeps its cached value")
}

// great_wonder_owners has ArraySize 200, so its array-diff index is a
// single UINT8, unlike global_advances's UINT16. Exercised independently
// since PACKET_GAME_INFO's bit layout interleaves both fields.
func TestArrayDiffUsesByteIndexUnderThreshold(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketGameInfo)
	require.True(t, ok)
	cache := deltacache.New()

	var payload []byte
	payload = append(payload, 0x04) // bit2 great_wonder_owners
	payload = wire.WriteUint8(payload, 12)
	payload = wire.WriteSint8(payload, 3) // owner civ id 3
	payload = wire.WriteUint8(payload, 200) // sentinel == ArraySize

	fields, err := Decode(spec, payload, cache)
	require.NoError(t, err)

	owners, ok := fields["great_wonder_owners"].([]int8)
	require.True(t, ok)
	assert.Equal(t, int8(3), owners[12])
	assert.Equal(t, int8(-1), owners[0])
}

func TestArrayDiffIndexBeyondArraySizeIsMalformed(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketGameInfo)
	require.True(t, ok)
	cache := deltacache.New()

	var payload []byte
	payload = append(payload, 0x04)
	payload = wire.WriteUint8(payload, 201) // > ArraySize(200)

	_, err := Decode(spec, payload, cache)
	require.Error(t, err)
	var mpe *MalformedPacketError
	require.True(t, errors.As(err, &mpe))
	assert.True(t, errors.Is(err, ErrMalformedPacket))
}

func TestCursorMismatchIsMalformed(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketRulesetClause)
	require.True(t, ok)
	cache := deltacache.New()

	var payload []byte
	payload = wire.WriteUint16(payload, 1)
	payload = append(payload, 0x00)
	payload = append(payload, 0xFF) // trailing garbage byte

	_, err := Decode(spec, payload, cache)
	require.Error(t, err)
	var mpe *MalformedPacketError
	require.True(t, errors.As(err, &mpe))
}

func TestTruncatedBitvectorIsMalformed(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketChatMsg)
	require.True(t, ok)
	cache := deltacache.New()

	_, err := Decode(spec, []byte{}, cache)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPacket))
}

func TestFixedArrayFieldIsFullyRetransmittedWhenSent(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketRulesetNation)
	require.True(t, ok)
	cache := deltacache.New()

	var payload []byte
	payload = wire.WriteUint16(payload, 3) // id (key)

	// Bit layout: every non-key field present, in declared order.
	bits := make([]byte, spec.NumBitvectorBytes())
	for i := 0; i < spec.NumBitvectorBits(); i++ {
		bits[i/8] |= 1 << uint(i%8)
	}
	payload = append(payload, bits...)

	payload = wire.WriteString(payload, "")    // translation_domain
	payload = wire.WriteString(payload, "Rom") // adjective
	payload = wire.WriteString(payload, "romans")
	payload = wire.WriteString(payload, "Romans")
	payload = wire.WriteString(payload, "")
	payload = wire.WriteString(payload, "")
	payload = wire.WriteString(payload, "")
	payload = wire.WriteUint8(payload, 1) // style
	payload = wire.WriteUint8(payload, 2) // leader_count
	for i := 0; i < 16; i++ {
		name := ""
		if i == 0 {
			name = "Caesar"
		}
		payload = wire.WriteString(payload, name)
	}
	for i := 0; i < 16; i++ {
		payload = wire.WriteBool(payload, i == 0)
	}
	// is_playable is foldable: its bit was already consumed above and no
	// payload bytes follow for it.
	payload = wire.WriteUint8(payload, 0) // barbarian_type
	payload = wire.WriteUint8(payload, 0) // nsets
	for i := 0; i < 8; i++ {
		payload = wire.WriteUint16(payload, 0)
	}
	payload = wire.WriteUint8(payload, 0) // ngroups
	for i := 0; i < 8; i++ {
		payload = wire.WriteUint16(payload, 0)
	}
	payload = wire.WriteSint16(payload, -1) // init_government_id
	payload = wire.WriteUint8(payload, 0)   // init_techs_count
	for i := 0; i < 16; i++ {
		payload = wire.WriteUint16(payload, 0)
	}
	payload = wire.WriteUint8(payload, 0) // init_units_count
	for i := 0; i < 8; i++ {
		payload = wire.WriteUint16(payload, 0)
	}
	payload = wire.WriteUint8(payload, 0) // init_buildings_count
	for i := 0; i < 8; i++ {
		payload = wire.WriteUint16(payload, 0)
	}

	fields, err := Decode(spec, payload, cache)
	require.NoError(t, err)

	leaders, ok := fields["leader_name"].([]string)
	require.True(t, ok)
	require.Len(t, leaders, 16)
	assert.Equal(t, "Caesar", leaders[0])
	assert.Equal(t, "", leaders[1])

	isMale, ok := fields["leader_is_male"].([]bool)
	require.True(t, ok)
	assert.True(t, isMale[0])
	assert.False(t, isMale[1])

	assert.Equal(t, true, fields["is_playable"])
	assert.Equal(t, "romans", fields["rule_name"])
}

// HasDelta == false packets (the join handshake pair and a few one-shot
// ruleset packets) carry no bitvector at all: every field is read
// straight off the wire, and nothing touches the delta cache.
func TestFlatDecodeSkipsBitvectorAndCache(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketServerJoinReply)
	require.True(t, ok)
	require.False(t, spec.HasDelta)

	var payload []byte
	payload = wire.WriteBool(payload, true)
	payload = wire.WriteString(payload, "ok")
	payload = wire.WriteString(payload, "+cap")
	payload = wire.WriteString(payload, "")

	cache := deltacache.New()
	fields, err := Decode(spec, payload, cache)
	require.NoError(t, err)

	assert.Equal(t, true, fields["you_can_join"])
	assert.Equal(t, "ok", fields["message"])
	assert.Equal(t, "+cap", fields["capability"])
	assert.Equal(t, "", fields["challenge_file"])

	// Nothing was cached: a second decode of a different payload under
	// the same packet type must not see any leftover baseline.
	assert.Nil(t, cache.Get(schema.PacketServerJoinReply, ""))
}

func TestFlatDecodeCursorExactness(t *testing.T) {
	spec, ok := schema.Lookup(schema.PacketRulesetSummary)
	require.True(t, ok)

	payload := wire.WriteString(nil, "a ruleset summary")
	cache := deltacache.New()
	fields, err := Decode(spec, payload, cache)
	require.NoError(t, err)
	assert.Equal(t, "a ruleset summary", fields["text"])

	// Trailing garbage after the NUL terminator is a cursor mismatch.
	bad := append(append([]byte{}, payload...), 0xFF)
	_, err = Decode(spec, bad, cache)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPacket)
}
