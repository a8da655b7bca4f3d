package handler

import "fmt"

// handleUnknown handles any packet type absent from the registry. Per
// spec.md §4.6/§7, the delta protocol is too state-carrying to safely
// skip mid-stream, so this terminates the connection unless the caller
// has opted out via ShutdownOnUnknownPacket.
func handleUnknown(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	reason := fmt.Sprintf("unknown packet type %d (%d bytes)", packetType, len(payload))

	if deps.ShutdownOnUnknownPacket {
		deps.Logger.Error("%s: closing connection", reason)
		return Result{Shutdown: true, ShutdownReason: reason}, nil
	}

	deps.Logger.Warn("%s: skipping", reason)
	return Result{}, nil
}
