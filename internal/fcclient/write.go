package fcclient

import (
	"fmt"

	"github.com/rcarmo/freeciv-go-client/internal/capture"
	"github.com/rcarmo/freeciv-go-client/internal/frame"
	"github.com/rcarmo/freeciv-go-client/internal/logging"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
)

// writeFrame serializes and sends one frame at the connection's current
// type width, capturing an outbound copy if configured. Per spec.md's
// scope, SERVER_JOIN_REQ is the only packet this client ever encodes.
func (c *Client) writeFrame(packetType uint16, payload []byte) error {
	c.mu.RLock()
	conn := c.conn
	reader := c.reader
	cap := c.capture
	c.mu.RUnlock()

	if conn == nil || reader == nil {
		return fmt.Errorf("fcclient: writeFrame called before Dial")
	}

	raw := frame.WriteFrame(reader.TypeWidth(), packetType, payload)

	if _, err := conn.Write(raw); err != nil {
		return fmt.Errorf("fcclient: write: %w", err)
	}

	name := "unknown"
	if spec, ok := schema.Lookup(packetType); ok {
		name = spec.Name
	}
	c.logger.Packet(logging.Outbound, packetType, name, len(payload))

	if cap != nil {
		if cerr := cap.WriteFrame(capture.Outbound, packetType, raw); cerr != nil {
			c.logger.Warn("packet capture: %v", cerr)
		}
	}

	return nil
}
