// Package handler dispatches decoded packets to the piece of state or
// console output each one affects. One file per concern, the way
// original_source/fc_client/handlers/ splits general/pregame/info/chat/
// ruleset/unknown into separate modules — translated here into a
// packet-type-keyed registry instead of Python's per-module import.
package handler

import (
	"fmt"

	"github.com/rcarmo/freeciv-go-client/internal/deltacache"
	"github.com/rcarmo/freeciv-go-client/internal/gamestate"
	"github.com/rcarmo/freeciv-go-client/internal/logging"
)

// Result reports the side effects a handler had on connection-level
// state that only internal/fcclient is allowed to act on.
type Result struct {
	// FlipTypeWidth signals a successful join: the caller must switch
	// the frame reader from 1-byte to 2-byte packet types.
	FlipTypeWidth bool

	// Shutdown signals that the dispatch loop should stop reading.
	Shutdown       bool
	ShutdownReason string
}

// Deps bundles everything a handler needs beyond its own payload.
type Deps struct {
	Cache                   *deltacache.Cache
	State                   *gamestate.GameState
	Logger                  *logging.Logger
	ShutdownOnUnknownPacket bool
}

// Func decodes and acts on one packet instance.
type Func func(packetType uint16, payload []byte, deps *Deps) (Result, error)

// Registry is the packet-type -> handler table.
type Registry map[uint16]Func

// Dispatch routes to the registered handler for packetType, falling
// back to the unknown-packet handler when none is registered.
func (r Registry) Dispatch(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	fn, ok := r[packetType]
	if !ok {
		return handleUnknown(packetType, payload, deps)
	}
	return fn(packetType, payload, deps)
}

func decodeError(packetType uint16, err error) error {
	return fmt.Errorf("handler: packet type %d: %w", packetType, err)
}
