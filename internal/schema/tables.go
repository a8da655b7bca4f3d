package schema

import "github.com/rcarmo/freeciv-go-client/internal/wire"

// Packet type constants, grounded on original_source/fc_client/protocol.py
// and the packet numbers named in original_source/fc_client/game_state.py's
// docstrings.
const (
	PacketProcessingStarted   uint16 = 0
	PacketProcessingFinished  uint16 = 1
	PacketServerJoinReq       uint16 = 4
	PacketServerJoinReply     uint16 = 5
	PacketServerInfo          uint16 = 6
	PacketChatMsg             uint16 = 26
	PacketGameInfo            uint16 = 16
	PacketRulesetUnit         uint16 = 140
	PacketRulesetGame         uint16 = 141
	PacketRulesetSpecialist   uint16 = 142
	PacketRulesetTech         uint16 = 144
	PacketRulesetGovernment   uint16 = 145
	PacketRulesetNationGroups uint16 = 147
	PacketRulesetNation       uint16 = 148
	PacketRulesetTerrain      uint16 = 151
	PacketRulesetControl      uint16 = 155
	PacketRulesetSummary      uint16 = 156
	PacketRulesetDescPart     uint16 = 157
	PacketRulesetClause       uint16 = 160
	PacketRulesetNationSets   uint16 = 236
)

func init() {
	register(&PacketSpec{
		PacketType: PacketProcessingStarted,
		Name:       "PACKET_PROCESSING_STARTED",
		HasDelta:   false,
	})

	register(&PacketSpec{
		PacketType: PacketProcessingFinished,
		Name:       "PACKET_PROCESSING_FINISHED",
		HasDelta:   false,
	})

	// SERVER_JOIN_REQ is encoded, never decoded (spec.md's only encoder
	// target); its spec exists for documentation/introspection parity.
	register(&PacketSpec{
		PacketType: PacketServerJoinReq,
		Name:       "PACKET_SERVER_JOIN_REQ",
		HasDelta:   false,
		Fields: []FieldSpec{
			{Name: "username", Type: String, DefaultValue: ""},
			{Name: "capability", Type: String, DefaultValue: ""},
			{Name: "version_label", Type: String, DefaultValue: ""},
			{Name: "major_version", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "minor_version", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "patch_version", Type: Uint32, DefaultValue: uint32(0)},
		},
	})

	register(&PacketSpec{
		PacketType: PacketServerJoinReply,
		Name:       "PACKET_SERVER_JOIN_REPLY",
		HasDelta:   false,
		Fields: []FieldSpec{
			{Name: "you_can_join", Type: Bool8, DefaultValue: false},
			{Name: "message", Type: String, DefaultValue: ""},
			{Name: "capability", Type: String, DefaultValue: ""},
			{Name: "challenge_file", Type: String, DefaultValue: ""},
		},
	})

	register(&PacketSpec{
		PacketType: PacketServerInfo,
		Name:       "PACKET_SERVER_INFO",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "version_label", Type: String, DefaultValue: ""},
			{Name: "major_version", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "minor_version", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "patch_version", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "emerg_version", Type: Uint32, DefaultValue: uint32(0)},
		},
	})

	// PACKET_CHAT_MSG: field list and order per spec.md §8 scenario 2.
	register(&PacketSpec{
		PacketType: PacketChatMsg,
		Name:       "PACKET_CHAT_MSG",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "message", Type: String, DefaultValue: ""},
			{Name: "tile", Type: Sint32, DefaultValue: int32(-1)},
			{Name: "event", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "turn", Type: Sint32, DefaultValue: int32(-1)},
			{Name: "phase", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "conn_id", Type: Sint32, DefaultValue: int32(-1)},
		},
	})

	// PACKET_GAME_INFO: array-diff fields per
	// original_source/fc_client/handlers/info.py and spec.md §8 scenarios 3/4.
	const maxAdvances = 401 // A_LAST in the original ruleset.
	const maxWonders = 200  // B_LAST-sized sample for this client.
	register(&PacketSpec{
		PacketType: PacketGameInfo,
		Name:       "PACKET_GAME_INFO",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "global_advance_count", Type: Uint16, DefaultValue: uint16(0)},
			{
				Name: "global_advances", Type: Bool8, DefaultValue: []bool{},
				IsArray: true, ArraySize: maxAdvances, ArrayDiff: true,
				ElementType: Bool8, ElementDefault: false,
			},
			{
				Name: "great_wonder_owners", Type: Sint8, DefaultValue: []int8{},
				IsArray: true, ArraySize: maxWonders, ArrayDiff: true,
				ElementType: Sint8, ElementDefault: int8(-1),
			},
		},
	})

	// PACKET_RULESET_CONTROL: field list per
	// original_source/fc_client/game_state.py's RulesetControl dataclass.
	register(&PacketSpec{
		PacketType: PacketRulesetControl,
		Name:       "PACKET_RULESET_CONTROL",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "num_unit_classes", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_unit_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_impr_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_tech_classes", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_tech_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_extra_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_base_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_road_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_resource_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_goods_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_disaster_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_achievement_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_multipliers", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_styles", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_music_styles", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "government_count", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "nation_count", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_city_styles", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "terrain_count", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_specialist_types", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_nation_groups", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_nation_sets", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "preferred_tileset", Type: String, DefaultValue: ""},
			{Name: "preferred_soundset", Type: String, DefaultValue: ""},
			{Name: "preferred_musicset", Type: String, DefaultValue: ""},
			{Name: "popup_tech_help", Type: Bool8, DefaultValue: false, IsBoolFoldable: true},
			{Name: "name", Type: String, DefaultValue: ""},
			{Name: "version", Type: String, DefaultValue: ""},
			{Name: "alt_dir", Type: String, DefaultValue: ""},
			{Name: "desc_length", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "num_counters", Type: Uint16, DefaultValue: uint16(0)},
		},
	})

	register(&PacketSpec{
		PacketType: PacketRulesetSummary,
		Name:       "PACKET_RULESET_SUMMARY",
		HasDelta:   false,
		Fields: []FieldSpec{
			{Name: "text", Type: String, DefaultValue: ""},
		},
	})

	register(&PacketSpec{
		PacketType: PacketRulesetDescPart,
		Name:       "PACKET_RULESET_DESCRIPTION_PART",
		HasDelta:   false,
		Fields: []FieldSpec{
			{Name: "text", Type: String, DefaultValue: ""},
		},
	})

	// PACKET_RULESET_CLAUSE: the minimal repro from spec.md §8 scenario 5.
	register(&PacketSpec{
		PacketType: PacketRulesetClause,
		Name:       "PACKET_RULESET_CLAUSE",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "type", Type: Uint16, IsKey: true},
			{Name: "enabled", Type: Bool8, DefaultValue: false, IsBoolFoldable: true},
			{Name: "giver_reqs_count", Type: Uint8, DefaultValue: uint8(0)},
		},
	})

	register(&PacketSpec{
		PacketType: PacketRulesetNationSets,
		Name:       "PACKET_RULESET_NATION_SETS",
		HasDelta:   false,
		Fields: []FieldSpec{
			{Name: "name", Type: String, DefaultValue: ""},
			{Name: "rule_name", Type: String, DefaultValue: ""},
			{Name: "description", Type: String, DefaultValue: ""},
		},
	})

	register(&PacketSpec{
		PacketType: PacketRulesetNationGroups,
		Name:       "PACKET_RULESET_NATION_GROUPS",
		HasDelta:   false,
		Fields: []FieldSpec{
			{Name: "name", Type: String, DefaultValue: ""},
			{Name: "hidden", Type: Bool8, DefaultValue: false, IsBoolFoldable: true},
		},
	})

	const maxLeaders = 16
	const maxInitTechs = 16
	const maxInitUnits = 8
	const maxInitBuildings = 8
	const maxNationSets = 8
	const maxNationGroups = 8
	register(&PacketSpec{
		PacketType: PacketRulesetNation,
		Name:       "PACKET_RULESET_NATION",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "id", Type: Uint16, IsKey: true},
			{Name: "translation_domain", Type: String, DefaultValue: ""},
			{Name: "adjective", Type: String, DefaultValue: ""},
			{Name: "rule_name", Type: String, DefaultValue: ""},
			{Name: "noun_plural", Type: String, DefaultValue: ""},
			{Name: "graphic_str", Type: String, DefaultValue: ""},
			{Name: "graphic_alt", Type: String, DefaultValue: ""},
			{Name: "legend", Type: String, DefaultValue: ""},
			{Name: "style", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "leader_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "leader_name", Type: String, DefaultValue: []string{},
				IsArray: true, ArraySize: maxLeaders, ElementType: String, ElementDefault: "",
			},
			{
				Name: "leader_is_male", Type: Bool8, DefaultValue: []bool{},
				IsArray: true, ArraySize: maxLeaders, ElementType: Bool8, ElementDefault: false,
			},
			{Name: "is_playable", Type: Bool8, DefaultValue: false, IsBoolFoldable: true},
			{Name: "barbarian_type", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "nsets", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "sets", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxNationSets, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{Name: "ngroups", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "groups", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxNationGroups, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{Name: "init_government_id", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "init_techs_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "init_techs", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxInitTechs, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{Name: "init_units_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "init_units", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxInitUnits, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{Name: "init_buildings_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "init_buildings", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxInitBuildings, ElementType: Uint16, ElementDefault: uint16(0),
			},
		},
	})

	const maxVeteranLevels = 8
	register(&PacketSpec{
		PacketType: PacketRulesetGame,
		Name:       "PACKET_RULESET_GAME",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "default_specialist", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "global_init_techs_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "global_init_techs", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxInitTechs, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{Name: "global_init_buildings_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "global_init_buildings", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxInitBuildings, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{Name: "veteran_levels", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "veteran_name", Type: String, DefaultValue: []string{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: String, ElementDefault: "",
			},
			{
				Name: "power_fact", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{
				Name: "move_bonus", Type: Uint32, DefaultValue: []uint32{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint32, ElementDefault: uint32(0),
			},
			{
				Name: "base_raise_chance", Type: Uint8, DefaultValue: []uint8{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint8, ElementDefault: uint8(0),
			},
			{
				Name: "work_raise_chance", Type: Uint8, DefaultValue: []uint8{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint8, ElementDefault: uint8(0),
			},
			{Name: "background_red", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "background_green", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "background_blue", Type: Uint8, DefaultValue: uint8(0)},
		},
	})

	// PACKET_RULESET_TECH: field list per
	// original_source/fc_client/handlers/ruleset.py's handle_ruleset_tech,
	// one packet per technology sent during ruleset initialization.
	register(&PacketSpec{
		PacketType: PacketRulesetTech,
		Name:       "PACKET_RULESET_TECH",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "id", Type: Uint16, IsKey: true},
			{Name: "root_req", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "research_reqs_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "research_reqs", Type: RequirementType, DefaultValue: []wire.Requirement{},
				IsArray: true, ElementType: RequirementType, CountPrefixed: true,
			},
			{Name: "tclass", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "removed", Type: Bool8, DefaultValue: false, IsBoolFoldable: true},
			{Name: "flags", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "cost", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "num_reqs", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "name", Type: String, DefaultValue: ""},
			{Name: "rule_name", Type: String, DefaultValue: ""},
			{Name: "helptext", Type: String, DefaultValue: ""},
			{Name: "graphic_str", Type: String, DefaultValue: ""},
			{Name: "graphic_alt", Type: String, DefaultValue: ""},
		},
	})

	// PACKET_RULESET_GOVERNMENT: field list per
	// original_source/fc_client/handlers/ruleset.py's handle_ruleset_government.
	register(&PacketSpec{
		PacketType: PacketRulesetGovernment,
		Name:       "PACKET_RULESET_GOVERNMENT",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "id", Type: Uint16, IsKey: true},
			{Name: "reqs_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "reqs", Type: RequirementType, DefaultValue: []wire.Requirement{},
				IsArray: true, ElementType: RequirementType, CountPrefixed: true,
			},
			{Name: "name", Type: String, DefaultValue: ""},
			{Name: "rule_name", Type: String, DefaultValue: ""},
			{Name: "graphic_str", Type: String, DefaultValue: ""},
			{Name: "graphic_alt", Type: String, DefaultValue: ""},
			{Name: "sound_str", Type: String, DefaultValue: ""},
			{Name: "sound_alt", Type: String, DefaultValue: ""},
			{Name: "sound_alt2", Type: String, DefaultValue: ""},
			{Name: "helptext", Type: String, DefaultValue: ""},
		},
	})

	// PACKET_RULESET_SPECIALIST: field list per
	// original_source/fc_client/handlers/ruleset.py's handle_ruleset_specialist.
	register(&PacketSpec{
		PacketType: PacketRulesetSpecialist,
		Name:       "PACKET_RULESET_SPECIALIST",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "id", Type: Uint16, IsKey: true},
			{Name: "plural_name", Type: String, DefaultValue: ""},
			{Name: "rule_name", Type: String, DefaultValue: ""},
			{Name: "short_name", Type: String, DefaultValue: ""},
			{Name: "graphic_str", Type: String, DefaultValue: ""},
			{Name: "graphic_alt", Type: String, DefaultValue: ""},
			{Name: "reqs_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "reqs", Type: RequirementType, DefaultValue: []wire.Requirement{},
				IsArray: true, ElementType: RequirementType, CountPrefixed: true,
			},
			{Name: "helptext", Type: String, DefaultValue: ""},
		},
	})

	// PACKET_RULESET_UNIT: field list per
	// original_source/fc_client/handlers/ruleset.py's handle_ruleset_unit,
	// one packet per unit type (Warrior, Settler, ...).
	register(&PacketSpec{
		PacketType: PacketRulesetUnit,
		Name:       "PACKET_RULESET_UNIT",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "id", Type: Uint16, IsKey: true},
			{Name: "name", Type: String, DefaultValue: ""},
			{Name: "rule_name", Type: String, DefaultValue: ""},
			{Name: "graphic_str", Type: String, DefaultValue: ""},
			{Name: "graphic_alt", Type: String, DefaultValue: ""},
			{Name: "graphic_alt2", Type: String, DefaultValue: ""},
			{Name: "sound_move", Type: String, DefaultValue: ""},
			{Name: "sound_move_alt", Type: String, DefaultValue: ""},
			{Name: "sound_fight", Type: String, DefaultValue: ""},
			{Name: "sound_fight_alt", Type: String, DefaultValue: ""},
			{Name: "unit_class_id", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "build_cost", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "pop_cost", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "happy_cost", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "upkeep", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "attack_strength", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "defense_strength", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "firepower", Type: Uint8, DefaultValue: uint8(1)},
			{Name: "hp", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "move_rate", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "fuel", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "build_reqs_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "build_reqs", Type: RequirementType, DefaultValue: []wire.Requirement{},
				IsArray: true, ElementType: RequirementType, CountPrefixed: true,
			},
			{Name: "vision_radius_sq", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "transport_capacity", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "cargo", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "embarks", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "disembarks", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "obsoleted_by", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "converted_to", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "convert_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "bombard_rate", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "paratroopers_range", Type: Uint16, DefaultValue: uint16(0)},
			{Name: "city_size", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "city_slots", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "tp_defense", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "targets", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "vlayer", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "veteran_levels", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "veteran_name", Type: String, DefaultValue: []string{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: String, ElementDefault: "",
			},
			{
				Name: "power_fact", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{
				Name: "move_bonus", Type: Uint32, DefaultValue: []uint32{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint32, ElementDefault: uint32(0),
			},
			{
				Name: "base_raise_chance", Type: Uint8, DefaultValue: []uint8{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint8, ElementDefault: uint8(0),
			},
			{
				Name: "work_raise_chance", Type: Uint8, DefaultValue: []uint8{},
				IsArray: true, ArraySize: maxVeteranLevels, ElementType: Uint8, ElementDefault: uint8(0),
			},
			{Name: "flags", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "roles", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "worker", Type: Bool8, DefaultValue: false, IsBoolFoldable: true},
			{Name: "helptext", Type: String, DefaultValue: ""},
		},
	})

	// PACKET_RULESET_TERRAIN: field list per
	// original_source/fc_client/handlers/ruleset.py's handle_ruleset_terrain,
	// one packet per terrain type.
	const maxTerrainResources = 8
	register(&PacketSpec{
		PacketType: PacketRulesetTerrain,
		Name:       "PACKET_RULESET_TERRAIN",
		HasDelta:   true,
		Fields: []FieldSpec{
			{Name: "id", Type: Uint16, IsKey: true},
			{Name: "tclass", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "flags", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "native_to", Type: Uint32, DefaultValue: uint32(0)},
			{Name: "name", Type: String, DefaultValue: ""},
			{Name: "rule_name", Type: String, DefaultValue: ""},
			{Name: "graphic_str", Type: String, DefaultValue: ""},
			{Name: "graphic_alt", Type: String, DefaultValue: ""},
			{Name: "graphic_alt2", Type: String, DefaultValue: ""},
			{Name: "movement_cost", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "defense_bonus", Type: Sint16, DefaultValue: int16(0)},
			{
				Name: "output", Type: Uint8, DefaultValue: []uint8{},
				IsArray: true, ArraySize: 3, ElementType: Uint8, ElementDefault: uint8(0),
			},
			{Name: "num_resources", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "resources", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxTerrainResources, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{
				Name: "resource_freq", Type: Uint8, DefaultValue: []uint8{},
				IsArray: true, ArraySize: maxTerrainResources, ElementType: Uint8, ElementDefault: uint8(0),
			},
			{Name: "road_output_incr_pct", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "base_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "road_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "cultivate_result", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "cultivate_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "plant_result", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "plant_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "irrigation_food_incr", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "irrigation_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "mining_shield_incr", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "mining_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "animal", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "transform_result", Type: Sint16, DefaultValue: int16(-1)},
			{Name: "transform_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "placing_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "pillage_time", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "extra_count", Type: Uint8, DefaultValue: uint8(0)},
			{
				Name: "extra_removal_times", Type: Uint16, DefaultValue: []uint16{},
				IsArray: true, ArraySize: maxTerrainResources, ElementType: Uint16, ElementDefault: uint16(0),
			},
			{Name: "color_red", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "color_green", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "color_blue", Type: Uint8, DefaultValue: uint8(0)},
			{Name: "helptext", Type: String, DefaultValue: ""},
		},
	})
}
