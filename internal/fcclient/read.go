package fcclient

import (
	"github.com/rcarmo/freeciv-go-client/internal/capture"
	"github.com/rcarmo/freeciv-go-client/internal/frame"
	"github.com/rcarmo/freeciv-go-client/internal/logging"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
)

// readFrame pulls the next (packet_type, payload) pair and, if packet
// capture is configured, persists a reconstruction of the frame as an
// inbound capture file. This is the client's one suspension point
// (spec.md §5): every other operation on the hot path is pure CPU.
func (c *Client) readFrame() (uint16, []byte, error) {
	c.mu.RLock()
	reader := c.reader
	cap := c.capture
	typeWidth := 0
	if reader != nil {
		typeWidth = reader.TypeWidth()
	}
	c.mu.RUnlock()

	packetType, payload, err := reader.NextFrame()
	if err != nil {
		return 0, nil, err
	}

	name := "unknown"
	if spec, ok := schema.Lookup(packetType); ok {
		name = spec.Name
	}
	c.logger.Packet(logging.Inbound, packetType, name, len(payload))

	if cap != nil {
		raw := frame.WriteFrame(typeWidth, packetType, payload)
		if cerr := cap.WriteFrame(capture.Inbound, packetType, raw); cerr != nil {
			c.logger.Warn("packet capture: %v", cerr)
		}
	}

	return packetType, payload, nil
}
