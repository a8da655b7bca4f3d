package handler

import (
	"github.com/rcarmo/freeciv-go-client/internal/decoder"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
)

// handleChatMsg handles PACKET_CHAT_MSG, matching spec.md §8 scenario 2
// field-for-field: message, tile, event, turn, phase, conn_id.
func handleChatMsg(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	spec, _ := schema.Lookup(schema.PacketChatMsg)
	fields, err := decoder.Decode(spec, payload, deps.Cache)
	if err != nil {
		return Result{}, decodeError(packetType, err)
	}

	entry := deps.State.RecordChat(fields)
	deps.Logger.Info("chat: %s", entry.Message)
	return Result{}, nil
}
