// Package gamestate accumulates the decoded packet stream into the
// typed view a caller actually wants: ruleset metadata, nations, chat
// history, and the rolling game-info snapshot. It plays the role the
// teacher's rdp.Client plays for desktop state, but owns no socket and
// no dispatch loop of its own — internal/fcclient feeds it decoded
// field maps as they arrive.
//
// Grounded on original_source/fc_client/game_state.py's dataclasses,
// translated into Go structs with the field names spec.md §3 declares.
package gamestate

import (
	"sync"
	"time"

	"github.com/rcarmo/freeciv-go-client/internal/deltacache"
	"github.com/rcarmo/freeciv-go-client/internal/wire"
)

// ServerInfo is the decoded PACKET_SERVER_INFO payload.
type ServerInfo struct {
	VersionLabel string
	MajorVersion uint32
	MinorVersion uint32
	PatchVersion uint32
	EmergVersion uint32
}

// ChatEntry is one line of chat history, timestamped on receipt.
type ChatEntry struct {
	Timestamp time.Time
	Message   string
	Tile      int32
	Event     int16
	Turn      int32
	Phase     int16
	ConnID    int32
}

// RulesetControl mirrors PACKET_RULESET_CONTROL (packet 155): entity
// counts and ruleset metadata sent once during initialization.
type RulesetControl struct {
	NumUnitClasses      uint16
	NumUnitTypes        uint16
	NumImprTypes        uint16
	NumTechClasses      uint16
	NumTechTypes        uint16
	NumExtraTypes       uint16
	NumBaseTypes        uint16
	NumRoadTypes        uint16
	NumResourceTypes    uint16
	NumGoodsTypes       uint16
	NumDisasterTypes    uint16
	NumAchievementTypes uint16
	NumMultipliers      uint16
	NumStyles           uint16
	NumMusicStyles      uint16
	GovernmentCount     uint16
	NationCount         uint16
	NumCityStyles       uint16
	TerrainCount        uint16
	NumSpecialistTypes  uint16
	NumNationGroups     uint16
	NumNationSets       uint16

	PreferredTileset  string
	PreferredSoundset string
	PreferredMusicset string
	PopupTechHelp     bool

	Name        string
	Version     string
	AltDir      string
	DescLength  uint32
	NumCounters uint16
}

// NationSet mirrors PACKET_RULESET_NATION_SETS (packet 236).
type NationSet struct {
	Name        string
	RuleName    string
	Description string
}

// NationGroup mirrors PACKET_RULESET_NATION_GROUPS (packet 147).
type NationGroup struct {
	Name   string
	Hidden bool
}

// Nation mirrors PACKET_RULESET_NATION (packet 148).
type Nation struct {
	ID                 uint16
	TranslationDomain  string
	Adjective          string
	RuleName           string
	NounPlural         string
	GraphicStr         string
	GraphicAlt         string
	Legend             string
	Style              uint8
	LeaderCount        uint8
	LeaderName         []string
	LeaderIsMale       []bool
	IsPlayable         bool
	BarbarianType      uint8
	NSets              uint8
	Sets               []uint16
	NGroups            uint8
	Groups             []uint16
	InitGovernmentID   int16
	InitTechsCount     uint8
	InitTechs          []uint16
	InitUnitsCount     uint8
	InitUnits          []uint16
	InitBuildingsCount uint8
	InitBuildings      []uint16
}

// Tech mirrors PACKET_RULESET_TECH (packet 144): one technology
// definition, grounded on original_source/fc_client/handlers/ruleset.py's
// handle_ruleset_tech.
type Tech struct {
	ID                uint16
	RootReq           uint16
	ResearchReqsCount uint8
	ResearchReqs      []wire.Requirement
	TClass            uint8
	Removed           bool
	Flags             uint32
	Cost              uint16
	NumReqs           uint8
	Name              string
	RuleName          string
	Helptext          string
	GraphicStr        string
	GraphicAlt        string
}

// Government mirrors PACKET_RULESET_GOVERNMENT (packet 145).
type Government struct {
	ID         uint16
	ReqsCount  uint8
	Reqs       []wire.Requirement
	Name       string
	RuleName   string
	GraphicStr string
	GraphicAlt string
	SoundStr   string
	SoundAlt   string
	SoundAlt2  string
	Helptext   string
}

// Specialist mirrors PACKET_RULESET_SPECIALIST (packet 142): a
// citizen type that works a city slot instead of a tile.
type Specialist struct {
	ID         uint16
	PluralName string
	RuleName   string
	ShortName  string
	GraphicStr string
	GraphicAlt string
	ReqsCount  uint8
	Reqs       []wire.Requirement
	Helptext   string
}

// UnitType mirrors PACKET_RULESET_UNIT (packet 140): one military or
// civilian unit type definition.
type UnitType struct {
	ID                uint16
	Name              string
	RuleName          string
	GraphicStr        string
	GraphicAlt        string
	GraphicAlt2       string
	SoundMove         string
	SoundMoveAlt      string
	SoundFight        string
	SoundFightAlt     string
	UnitClassID       uint8
	BuildCost         uint16
	PopCost           uint8
	HappyCost         uint8
	Upkeep            uint8
	AttackStrength    uint8
	DefenseStrength   uint8
	Firepower         uint8
	HP                uint16
	MoveRate          uint8
	Fuel              uint8
	BuildReqsCount    uint8
	BuildReqs         []wire.Requirement
	VisionRadiusSq    uint16
	TransportCapacity uint8
	Cargo             uint32
	Embarks           uint32
	Disembarks        uint32
	ObsoletedBy       int16
	ConvertedTo       int16
	ConvertTime       uint8
	BombardRate       uint8
	ParatroopersRange uint16
	CitySize          uint8
	CitySlots         uint8
	TPDefense         uint8
	Targets           uint32
	VLayer            uint8
	VeteranLevels     uint8
	VeteranName       []string
	PowerFact         []uint16
	MoveBonus         []uint32
	BaseRaiseChance   []uint8
	WorkRaiseChance   []uint8
	Flags             uint32
	Roles             uint32
	Worker            bool
	Helptext          string
}

// Terrain mirrors PACKET_RULESET_TERRAIN (packet 151): one terrain
// type's movement, output, and special-resource configuration.
type Terrain struct {
	ID                 uint16
	TClass             uint8
	Flags              uint32
	NativeTo           uint32
	Name               string
	RuleName           string
	GraphicStr         string
	GraphicAlt         string
	GraphicAlt2        string
	MovementCost       uint8
	DefenseBonus       int16
	Output             []uint8
	NumResources       uint8
	Resources          []uint16
	ResourceFreq       []uint8
	RoadOutputIncrPct  uint8
	BaseTime           uint8
	RoadTime           uint8
	CultivateResult    int16
	CultivateTime      uint8
	PlantResult        int16
	PlantTime          uint8
	IrrigationFoodIncr uint8
	IrrigationTime     uint8
	MiningShieldIncr   uint8
	MiningTime         uint8
	Animal             int16
	TransformResult    int16
	TransformTime      uint8
	PlacingTime        uint8
	PillageTime        uint8
	ExtraCount         uint8
	ExtraRemovalTimes  []uint16
	ColorRed           uint8
	ColorGreen         uint8
	ColorBlue          uint8
	Helptext           string
}

// RulesetGame mirrors PACKET_RULESET_GAME (packet 141).
type RulesetGame struct {
	DefaultSpecialist        uint16
	GlobalInitTechsCount     uint8
	GlobalInitTechs          []uint16
	GlobalInitBuildingsCount uint8
	GlobalInitBuildings      []uint16
	VeteranLevels            uint8
	VeteranName              []string
	PowerFact                []uint16
	MoveBonus                []uint32
	BaseRaiseChance          []uint8
	WorkRaiseChance          []uint8
	BackgroundRed            uint8
	BackgroundGreen          uint8
	BackgroundBlue           uint8
}

// GameInfo mirrors the live subset of PACKET_GAME_INFO (packet 16)
// this client tracks: discovered advances and wonder ownership.
type GameInfo struct {
	GlobalAdvanceCount uint16
	GlobalAdvances     []bool
	GreatWonderOwners  []int8
}

// TerrainControl is a forward-looking stub for PACKET_RULESET_TERRAIN_CONTROL.
// The packet carries terrain rendering constants this client has no
// renderer to consume yet; the field exists so gamestate's shape does
// not need to change when that handler is added.
type TerrainControl struct {
	LakeOceanSize      uint8
	OceanReclaimChance uint8
}

// CityStyle is a forward-looking stub for PACKET_RULESET_CITY. Same
// rationale as TerrainControl: no city-rendering consumer exists yet.
type CityStyle struct {
	ID   uint16
	Name string
}

// GameState is the accumulation target for every handler in
// internal/handler. It is owned by the connection's dispatch loop but
// may be read concurrently (e.g. by a UI goroutine), hence the mutex.
type GameState struct {
	mu sync.RWMutex

	ServerInfo              *ServerInfo
	ChatHistory             []ChatEntry
	RulesetControl          *RulesetControl
	RulesetSummary          string
	RulesetDescriptionParts []string
	RulesetDescription      string
	NationSets              []NationSet
	NationGroups            []NationGroup
	Nations                 map[uint16]Nation
	RulesetGame             *RulesetGame
	GameInfo                *GameInfo
	TerrainControl          *TerrainControl
	CityStyles              []CityStyle
	Techs                   map[uint16]Tech
	Governments             map[uint16]Government
	Specialists             map[uint16]Specialist
	UnitTypes               map[uint16]UnitType
	Terrains                map[uint16]Terrain
}

// New returns an empty GameState.
func New() *GameState {
	return &GameState{
		Nations:     make(map[uint16]Nation),
		Techs:       make(map[uint16]Tech),
		Governments: make(map[uint16]Government),
		Specialists: make(map[uint16]Specialist),
		UnitTypes:   make(map[uint16]UnitType),
		Terrains:    make(map[uint16]Terrain),
	}
}

func (g *GameState) SetServerInfo(fields deltacache.FieldMap) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ServerInfo = &ServerInfo{
		VersionLabel: asString(fields["version_label"]),
		MajorVersion: asUint32(fields["major_version"]),
		MinorVersion: asUint32(fields["minor_version"]),
		PatchVersion: asUint32(fields["patch_version"]),
		EmergVersion: asUint32(fields["emerg_version"]),
	}
}

func (g *GameState) RecordChat(fields deltacache.FieldMap) ChatEntry {
	entry := ChatEntry{
		Timestamp: timeNow(),
		Message:   asString(fields["message"]),
		Tile:      asInt32(fields["tile"]),
		Event:     asInt16(fields["event"]),
		Turn:      asInt32(fields["turn"]),
		Phase:     asInt16(fields["phase"]),
		ConnID:    asInt32(fields["conn_id"]),
	}

	g.mu.Lock()
	g.ChatHistory = append(g.ChatHistory, entry)
	g.mu.Unlock()

	return entry
}

func (g *GameState) SetRulesetControl(fields deltacache.FieldMap) {
	rc := &RulesetControl{
		NumUnitClasses:      asUint16(fields["num_unit_classes"]),
		NumUnitTypes:        asUint16(fields["num_unit_types"]),
		NumImprTypes:        asUint16(fields["num_impr_types"]),
		NumTechClasses:      asUint16(fields["num_tech_classes"]),
		NumTechTypes:        asUint16(fields["num_tech_types"]),
		NumExtraTypes:       asUint16(fields["num_extra_types"]),
		NumBaseTypes:        asUint16(fields["num_base_types"]),
		NumRoadTypes:        asUint16(fields["num_road_types"]),
		NumResourceTypes:    asUint16(fields["num_resource_types"]),
		NumGoodsTypes:       asUint16(fields["num_goods_types"]),
		NumDisasterTypes:    asUint16(fields["num_disaster_types"]),
		NumAchievementTypes: asUint16(fields["num_achievement_types"]),
		NumMultipliers:      asUint16(fields["num_multipliers"]),
		NumStyles:           asUint16(fields["num_styles"]),
		NumMusicStyles:      asUint16(fields["num_music_styles"]),
		GovernmentCount:     asUint16(fields["government_count"]),
		NationCount:         asUint16(fields["nation_count"]),
		NumCityStyles:       asUint16(fields["num_city_styles"]),
		TerrainCount:        asUint16(fields["terrain_count"]),
		NumSpecialistTypes:  asUint16(fields["num_specialist_types"]),
		NumNationGroups:     asUint16(fields["num_nation_groups"]),
		NumNationSets:       asUint16(fields["num_nation_sets"]),
		PreferredTileset:    asString(fields["preferred_tileset"]),
		PreferredSoundset:   asString(fields["preferred_soundset"]),
		PreferredMusicset:   asString(fields["preferred_musicset"]),
		PopupTechHelp:       asBool(fields["popup_tech_help"]),
		Name:                asString(fields["name"]),
		Version:             asString(fields["version"]),
		AltDir:              asString(fields["alt_dir"]),
		DescLength:          asUint32(fields["desc_length"]),
		NumCounters:         asUint16(fields["num_counters"]),
	}

	g.mu.Lock()
	g.RulesetControl = rc
	g.RulesetDescriptionParts = nil
	g.RulesetDescription = ""
	g.mu.Unlock()
}

func (g *GameState) SetRulesetSummary(text string) {
	g.mu.Lock()
	g.RulesetSummary = text
	g.mu.Unlock()
}

// AppendRulesetDescriptionPart accumulates one chunk of the ruleset
// description and assembles the complete text once the accumulated
// UTF-8 byte count reaches RulesetControl.DescLength, per
// original_source/fc_client/handlers/ruleset.py's assembly algorithm.
// It reports whether assembly just completed.
func (g *GameState) AppendRulesetDescriptionPart(text string) (complete bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.RulesetDescriptionParts = append(g.RulesetDescriptionParts, text)

	total := 0
	for _, part := range g.RulesetDescriptionParts {
		total += len(part)
	}

	var expected uint32
	if g.RulesetControl != nil {
		expected = g.RulesetControl.DescLength
	}

	if expected > 0 && uint32(total) >= expected {
		joined := ""
		for _, part := range g.RulesetDescriptionParts {
			joined += part
		}
		g.RulesetDescription = joined
		g.RulesetDescriptionParts = nil
		return true
	}
	return false
}

// AppendNationSet records one PACKET_RULESET_NATION_SETS entry. The
// server sends one packet per set rather than a single batched array.
func (g *GameState) AppendNationSet(fields deltacache.FieldMap) NationSet {
	ns := NationSet{
		Name:        asString(fields["name"]),
		RuleName:    asString(fields["rule_name"]),
		Description: asString(fields["description"]),
	}
	g.mu.Lock()
	g.NationSets = append(g.NationSets, ns)
	g.mu.Unlock()
	return ns
}

// AppendNationGroup records one PACKET_RULESET_NATION_GROUPS entry.
func (g *GameState) AppendNationGroup(fields deltacache.FieldMap) NationGroup {
	ng := NationGroup{
		Name:   asString(fields["name"]),
		Hidden: asBool(fields["hidden"]),
	}
	g.mu.Lock()
	g.NationGroups = append(g.NationGroups, ng)
	g.mu.Unlock()
	return ng
}

func (g *GameState) SetNation(fields deltacache.FieldMap) Nation {
	n := Nation{
		ID:                 asUint16(fields["id"]),
		TranslationDomain:  asString(fields["translation_domain"]),
		Adjective:          asString(fields["adjective"]),
		RuleName:           asString(fields["rule_name"]),
		NounPlural:         asString(fields["noun_plural"]),
		GraphicStr:         asString(fields["graphic_str"]),
		GraphicAlt:         asString(fields["graphic_alt"]),
		Legend:             asString(fields["legend"]),
		Style:              asUint8(fields["style"]),
		LeaderCount:        asUint8(fields["leader_count"]),
		LeaderName:         asStringSlice(fields["leader_name"]),
		LeaderIsMale:       asBoolSlice(fields["leader_is_male"]),
		IsPlayable:         asBool(fields["is_playable"]),
		BarbarianType:      asUint8(fields["barbarian_type"]),
		NSets:              asUint8(fields["nsets"]),
		Sets:               asUint16Slice(fields["sets"]),
		NGroups:            asUint8(fields["ngroups"]),
		Groups:             asUint16Slice(fields["groups"]),
		InitGovernmentID:   asInt16(fields["init_government_id"]),
		InitTechsCount:     asUint8(fields["init_techs_count"]),
		InitTechs:          asUint16Slice(fields["init_techs"]),
		InitUnitsCount:     asUint8(fields["init_units_count"]),
		InitUnits:          asUint16Slice(fields["init_units"]),
		InitBuildingsCount: asUint8(fields["init_buildings_count"]),
		InitBuildings:      asUint16Slice(fields["init_buildings"]),
	}

	g.mu.Lock()
	g.Nations[n.ID] = n
	g.mu.Unlock()

	return n
}

// SetTech records one PACKET_RULESET_TECH entry, keyed by id.
func (g *GameState) SetTech(fields deltacache.FieldMap) Tech {
	t := Tech{
		ID:                asUint16(fields["id"]),
		RootReq:           asUint16(fields["root_req"]),
		ResearchReqsCount: asUint8(fields["research_reqs_count"]),
		ResearchReqs:      asRequirementSlice(fields["research_reqs"]),
		TClass:            asUint8(fields["tclass"]),
		Removed:           asBool(fields["removed"]),
		Flags:             asUint32(fields["flags"]),
		Cost:              asUint16(fields["cost"]),
		NumReqs:           asUint8(fields["num_reqs"]),
		Name:              asString(fields["name"]),
		RuleName:          asString(fields["rule_name"]),
		Helptext:          asString(fields["helptext"]),
		GraphicStr:        asString(fields["graphic_str"]),
		GraphicAlt:        asString(fields["graphic_alt"]),
	}

	g.mu.Lock()
	g.Techs[t.ID] = t
	g.mu.Unlock()

	return t
}

// SetGovernment records one PACKET_RULESET_GOVERNMENT entry, keyed by id.
func (g *GameState) SetGovernment(fields deltacache.FieldMap) Government {
	gov := Government{
		ID:         asUint16(fields["id"]),
		ReqsCount:  asUint8(fields["reqs_count"]),
		Reqs:       asRequirementSlice(fields["reqs"]),
		Name:       asString(fields["name"]),
		RuleName:   asString(fields["rule_name"]),
		GraphicStr: asString(fields["graphic_str"]),
		GraphicAlt: asString(fields["graphic_alt"]),
		SoundStr:   asString(fields["sound_str"]),
		SoundAlt:   asString(fields["sound_alt"]),
		SoundAlt2:  asString(fields["sound_alt2"]),
		Helptext:   asString(fields["helptext"]),
	}

	g.mu.Lock()
	g.Governments[gov.ID] = gov
	g.mu.Unlock()

	return gov
}

// SetSpecialist records one PACKET_RULESET_SPECIALIST entry, keyed by id.
func (g *GameState) SetSpecialist(fields deltacache.FieldMap) Specialist {
	sp := Specialist{
		ID:         asUint16(fields["id"]),
		PluralName: asString(fields["plural_name"]),
		RuleName:   asString(fields["rule_name"]),
		ShortName:  asString(fields["short_name"]),
		GraphicStr: asString(fields["graphic_str"]),
		GraphicAlt: asString(fields["graphic_alt"]),
		ReqsCount:  asUint8(fields["reqs_count"]),
		Reqs:       asRequirementSlice(fields["reqs"]),
		Helptext:   asString(fields["helptext"]),
	}

	g.mu.Lock()
	g.Specialists[sp.ID] = sp
	g.mu.Unlock()

	return sp
}

// SetUnitType records one PACKET_RULESET_UNIT entry, keyed by id.
func (g *GameState) SetUnitType(fields deltacache.FieldMap) UnitType {
	ut := UnitType{
		ID:                asUint16(fields["id"]),
		Name:              asString(fields["name"]),
		RuleName:          asString(fields["rule_name"]),
		GraphicStr:        asString(fields["graphic_str"]),
		GraphicAlt:        asString(fields["graphic_alt"]),
		GraphicAlt2:       asString(fields["graphic_alt2"]),
		SoundMove:         asString(fields["sound_move"]),
		SoundMoveAlt:      asString(fields["sound_move_alt"]),
		SoundFight:        asString(fields["sound_fight"]),
		SoundFightAlt:     asString(fields["sound_fight_alt"]),
		UnitClassID:       asUint8(fields["unit_class_id"]),
		BuildCost:         asUint16(fields["build_cost"]),
		PopCost:           asUint8(fields["pop_cost"]),
		HappyCost:         asUint8(fields["happy_cost"]),
		Upkeep:            asUint8(fields["upkeep"]),
		AttackStrength:    asUint8(fields["attack_strength"]),
		DefenseStrength:   asUint8(fields["defense_strength"]),
		Firepower:         asUint8(fields["firepower"]),
		HP:                asUint16(fields["hp"]),
		MoveRate:          asUint8(fields["move_rate"]),
		Fuel:              asUint8(fields["fuel"]),
		BuildReqsCount:    asUint8(fields["build_reqs_count"]),
		BuildReqs:         asRequirementSlice(fields["build_reqs"]),
		VisionRadiusSq:    asUint16(fields["vision_radius_sq"]),
		TransportCapacity: asUint8(fields["transport_capacity"]),
		Cargo:             asUint32(fields["cargo"]),
		Embarks:           asUint32(fields["embarks"]),
		Disembarks:        asUint32(fields["disembarks"]),
		ObsoletedBy:       asInt16(fields["obsoleted_by"]),
		ConvertedTo:       asInt16(fields["converted_to"]),
		ConvertTime:       asUint8(fields["convert_time"]),
		BombardRate:       asUint8(fields["bombard_rate"]),
		ParatroopersRange: asUint16(fields["paratroopers_range"]),
		CitySize:          asUint8(fields["city_size"]),
		CitySlots:         asUint8(fields["city_slots"]),
		TPDefense:         asUint8(fields["tp_defense"]),
		Targets:           asUint32(fields["targets"]),
		VLayer:            asUint8(fields["vlayer"]),
		VeteranLevels:     asUint8(fields["veteran_levels"]),
		VeteranName:       asStringSlice(fields["veteran_name"]),
		PowerFact:         asUint16Slice(fields["power_fact"]),
		MoveBonus:         asUint32Slice(fields["move_bonus"]),
		BaseRaiseChance:   asUint8Slice(fields["base_raise_chance"]),
		WorkRaiseChance:   asUint8Slice(fields["work_raise_chance"]),
		Flags:             asUint32(fields["flags"]),
		Roles:             asUint32(fields["roles"]),
		Worker:            asBool(fields["worker"]),
		Helptext:          asString(fields["helptext"]),
	}

	g.mu.Lock()
	g.UnitTypes[ut.ID] = ut
	g.mu.Unlock()

	return ut
}

// SetTerrain records one PACKET_RULESET_TERRAIN entry, keyed by id.
func (g *GameState) SetTerrain(fields deltacache.FieldMap) Terrain {
	t := Terrain{
		ID:                 asUint16(fields["id"]),
		TClass:             asUint8(fields["tclass"]),
		Flags:              asUint32(fields["flags"]),
		NativeTo:           asUint32(fields["native_to"]),
		Name:               asString(fields["name"]),
		RuleName:           asString(fields["rule_name"]),
		GraphicStr:         asString(fields["graphic_str"]),
		GraphicAlt:         asString(fields["graphic_alt"]),
		GraphicAlt2:        asString(fields["graphic_alt2"]),
		MovementCost:       asUint8(fields["movement_cost"]),
		DefenseBonus:       asInt16(fields["defense_bonus"]),
		Output:             asUint8Slice(fields["output"]),
		NumResources:       asUint8(fields["num_resources"]),
		Resources:          asUint16Slice(fields["resources"]),
		ResourceFreq:       asUint8Slice(fields["resource_freq"]),
		RoadOutputIncrPct:  asUint8(fields["road_output_incr_pct"]),
		BaseTime:           asUint8(fields["base_time"]),
		RoadTime:           asUint8(fields["road_time"]),
		CultivateResult:    asInt16(fields["cultivate_result"]),
		CultivateTime:      asUint8(fields["cultivate_time"]),
		PlantResult:        asInt16(fields["plant_result"]),
		PlantTime:          asUint8(fields["plant_time"]),
		IrrigationFoodIncr: asUint8(fields["irrigation_food_incr"]),
		IrrigationTime:     asUint8(fields["irrigation_time"]),
		MiningShieldIncr:   asUint8(fields["mining_shield_incr"]),
		MiningTime:         asUint8(fields["mining_time"]),
		Animal:             asInt16(fields["animal"]),
		TransformResult:    asInt16(fields["transform_result"]),
		TransformTime:      asUint8(fields["transform_time"]),
		PlacingTime:        asUint8(fields["placing_time"]),
		PillageTime:        asUint8(fields["pillage_time"]),
		ExtraCount:         asUint8(fields["extra_count"]),
		ExtraRemovalTimes:  asUint16Slice(fields["extra_removal_times"]),
		ColorRed:           asUint8(fields["color_red"]),
		ColorGreen:         asUint8(fields["color_green"]),
		ColorBlue:          asUint8(fields["color_blue"]),
		Helptext:           asString(fields["helptext"]),
	}

	g.mu.Lock()
	g.Terrains[t.ID] = t
	g.mu.Unlock()

	return t
}

func (g *GameState) SetRulesetGame(fields deltacache.FieldMap) {
	rg := &RulesetGame{
		DefaultSpecialist:        asUint16(fields["default_specialist"]),
		GlobalInitTechsCount:     asUint8(fields["global_init_techs_count"]),
		GlobalInitTechs:          asUint16Slice(fields["global_init_techs"]),
		GlobalInitBuildingsCount: asUint8(fields["global_init_buildings_count"]),
		GlobalInitBuildings:      asUint16Slice(fields["global_init_buildings"]),
		VeteranLevels:            asUint8(fields["veteran_levels"]),
		VeteranName:              asStringSlice(fields["veteran_name"]),
		PowerFact:                asUint16Slice(fields["power_fact"]),
		MoveBonus:                asUint32Slice(fields["move_bonus"]),
		BaseRaiseChance:          asUint8Slice(fields["base_raise_chance"]),
		WorkRaiseChance:          asUint8Slice(fields["work_raise_chance"]),
		BackgroundRed:            asUint8(fields["background_red"]),
		BackgroundGreen:          asUint8(fields["background_green"]),
		BackgroundBlue:           asUint8(fields["background_blue"]),
	}

	g.mu.Lock()
	g.RulesetGame = rg
	g.mu.Unlock()
}

func (g *GameState) SetGameInfo(fields deltacache.FieldMap) {
	gi := &GameInfo{
		GlobalAdvanceCount: asUint16(fields["global_advance_count"]),
		GlobalAdvances:     asBoolSlice(fields["global_advances"]),
		GreatWonderOwners:  asInt8Slice(fields["great_wonder_owners"]),
	}

	g.mu.Lock()
	g.GameInfo = gi
	g.mu.Unlock()
}

// Snapshot returns the current server_info and ruleset_control pointers,
// read under the lock, for read-only inspection (e.g. CLI status
// output). The records they point to are shared, not copied.
func (g *GameState) Snapshot() (server *ServerInfo, ruleset *RulesetControl) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ServerInfo, g.RulesetControl
}

var timeNow = time.Now
