package handler

import "github.com/rcarmo/freeciv-go-client/internal/schema"

// NewRegistry returns the default packet-type -> handler table covering
// every packet type this client understands (spec.md §2, §10).
func NewRegistry() Registry {
	return Registry{
		schema.PacketProcessingStarted:   handleProcessingStarted,
		schema.PacketProcessingFinished:  handleProcessingFinished,
		schema.PacketServerJoinReply:     handleServerJoinReply,
		schema.PacketServerInfo:          handleServerInfo,
		schema.PacketChatMsg:             handleChatMsg,
		schema.PacketGameInfo:            handleGameInfo,
		schema.PacketRulesetControl:      handleRulesetControl,
		schema.PacketRulesetSummary:      handleRulesetSummary,
		schema.PacketRulesetDescPart:     handleRulesetDescPart,
		schema.PacketRulesetNationSets:   handleRulesetNationSets,
		schema.PacketRulesetNationGroups: handleRulesetNationGroups,
		schema.PacketRulesetNation:       handleRulesetNation,
		schema.PacketRulesetGame:         handleRulesetGame,
		schema.PacketRulesetClause:       handleRulesetClause,
		schema.PacketRulesetTech:         handleRulesetTech,
		schema.PacketRulesetGovernment:   handleRulesetGovernment,
		schema.PacketRulesetSpecialist:   handleRulesetSpecialist,
		schema.PacketRulesetUnit:         handleRulesetUnit,
		schema.PacketRulesetTerrain:      handleRulesetTerrain,
	}
}
