package handler

import (
	"github.com/rcarmo/freeciv-go-client/internal/decoder"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
)

// handleServerJoinReply handles PACKET_SERVER_JOIN_REPLY, the server's
// answer to our join request. A successful join flips the frame reader
// to 2-byte packet types; a refusal ends the connection.
func handleServerJoinReply(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketServerJoinReply)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	youCanJoin, _ := fields["you_can_join"].(bool)
	message, _ := fields["message"].(string)

	if youCanJoin {
		deps.Logger.Info("join accepted: %s", message)
		return Result{FlipTypeWidth: true}, nil
	}

	deps.Logger.Error("join refused: %s", message)
	return Result{Shutdown: true, ShutdownReason: "join refused: " + message}, nil
}
