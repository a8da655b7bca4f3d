package handler

import (
	"github.com/rcarmo/freeciv-go-client/internal/decoder"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
)

// handleRulesetControl handles PACKET_RULESET_CONTROL, the entity-count
// and ruleset-metadata packet sent once during initialization. It also
// resets any in-progress description assembly, since a new control
// packet implies a new ruleset load.
func handleRulesetControl(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetControl)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetRulesetControl(fields)
	return Result{}, nil
}

// handleRulesetSummary handles PACKET_RULESET_SUMMARY: a single block
// of free text describing the ruleset.
func handleRulesetSummary(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetSummary)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	text, _ := fields["text"].(string)
	deps.State.SetRulesetSummary(text)
	return Result{}, nil
}

// handleRulesetDescPart handles PACKET_RULESET_DESCRIPTION_PART: the
// server splits the (potentially long) ruleset description across
// several of these, terminated once the accumulated byte count reaches
// PACKET_RULESET_CONTROL's desc_length.
func handleRulesetDescPart(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetDescPart)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	text, _ := fields["text"].(string)
	if deps.State.AppendRulesetDescriptionPart(text) {
		deps.Logger.Debug("ruleset description assembled")
	}
	return Result{}, nil
}

// handleRulesetNationSets handles PACKET_RULESET_NATION_SETS, sent once
// per nation set rather than as a single batched array.
func handleRulesetNationSets(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetNationSets)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.AppendNationSet(fields)
	return Result{}, nil
}

// handleRulesetNationGroups handles PACKET_RULESET_NATION_GROUPS, sent
// once per nation group.
func handleRulesetNationGroups(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetNationGroups)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.AppendNationGroup(fields)
	return Result{}, nil
}

// handleRulesetNation handles PACKET_RULESET_NATION, sent once per
// playable nation; id is the cache key, so later delta updates to the
// same nation reuse this handler unchanged.
func handleRulesetNation(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetNation)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetNation(fields)
	return Result{}, nil
}

// handleRulesetGame handles PACKET_RULESET_GAME: veteran levels, global
// init techs/buildings, and the map background color.
func handleRulesetGame(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetGame)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetRulesetGame(fields)
	return Result{}, nil
}

// handleRulesetClause handles PACKET_RULESET_CLAUSE, the minimal
// delta-cache repro named in spec.md §8 scenario 5: a header-folded
// enabled bit plus a cached giver_reqs_count. This client has no
// downstream consumer for clause details yet, so it only logs.
func handleRulesetClause(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetClause)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.Logger.Debug("ruleset clause %v: enabled=%v giver_reqs=%v", fields["type"], fields["enabled"], fields["giver_reqs_count"])
	return Result{}, nil
}

// handleRulesetTech handles PACKET_RULESET_TECH, sent once per
// technology during ruleset initialization.
func handleRulesetTech(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetTech)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetTech(fields)
	return Result{}, nil
}

// handleRulesetGovernment handles PACKET_RULESET_GOVERNMENT, sent once
// per government type.
func handleRulesetGovernment(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetGovernment)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetGovernment(fields)
	return Result{}, nil
}

// handleRulesetSpecialist handles PACKET_RULESET_SPECIALIST, sent once
// per specialist type (scientists, entertainers, taxmen, ...).
func handleRulesetSpecialist(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetSpecialist)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetSpecialist(fields)
	return Result{}, nil
}

// handleRulesetUnit handles PACKET_RULESET_UNIT, sent once per unit
// type during ruleset initialization.
func handleRulesetUnit(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetUnit)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetUnitType(fields)
	return Result{}, nil
}

// handleRulesetTerrain handles PACKET_RULESET_TERRAIN, sent once per
// terrain type.
func handleRulesetTerrain(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketRulesetTerrain)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetTerrain(fields)
	return Result{}, nil
}
