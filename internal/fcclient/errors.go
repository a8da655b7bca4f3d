package fcclient

import "errors"

// Sentinel errors for the handshake and dispatch-loop failure modes
// named in spec.md §7. All are terminal: recovery is never attempted
// mid-stream because delta state would be left inconsistent.
var (
	// ErrJoinDenied indicates the server answered JOIN_REQ with
	// you_can_join = false.
	ErrJoinDenied = errors.New("fcclient: join denied")

	// ErrJoinTimeout indicates the handshake deadline
	// (cfg.Client.JoinTimeout, 10 seconds by default) elapsed before a
	// SERVER_JOIN_REPLY arrived.
	ErrJoinTimeout = errors.New("fcclient: join timed out")

	// ErrNotConnected indicates an operation was attempted before Dial.
	ErrNotConnected = errors.New("fcclient: not connected")

	// ErrAlreadyJoined indicates Join was called more than once on the
	// same connection.
	ErrAlreadyJoined = errors.New("fcclient: already joined")
)
