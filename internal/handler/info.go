package handler

import (
	"github.com/rcarmo/freeciv-go-client/internal/decoder"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
)

// handleServerInfo handles PACKET_SERVER_INFO: the server's version
// banner, sent once near the start of the pregame phase.
func handleServerInfo(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketServerInfo)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetServerInfo(fields)
	deps.Logger.Debug("server info: %v %v.%v.%v", fields["version_label"], fields["major_version"], fields["minor_version"], fields["patch_version"])
	return Result{}, nil
}

// handleGameInfo handles PACKET_GAME_INFO, the delta-heaviest packet
// this client tracks: it carries the two array-diff fields spec.md §8
// scenarios 3/4 exercise directly.
func handleGameInfo(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketGameInfo)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	deps.State.SetGameInfo(fields)
	return Result{}, nil
}
