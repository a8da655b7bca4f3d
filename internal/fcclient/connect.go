package fcclient

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rcarmo/freeciv-go-client/internal/handler"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
	"github.com/rcarmo/freeciv-go-client/internal/wire"
)

// Join performs the Connected → Joining → Joined|Closed transition
// (spec.md §4.6): send SERVER_JOIN_REQ, then read frames until a
// SERVER_JOIN_REPLY arrives, skipping any intervening
// PACKET_PROCESSING_STARTED. A successful reply flips the frame
// reader's type width to 2 for the remainder of the connection.
func (c *Client) Join() error {
	if c.State() == StateDisconnected {
		return fmt.Errorf("%w: Join called before Dial", ErrNotConnected)
	}
	if c.State() != StateConnected {
		return fmt.Errorf("%w: Join called in state %s", ErrAlreadyJoined, c.State())
	}
	c.setState(StateJoining)

	payload := encodeJoinReq(c.cfg.Client.Username, c.cfg.Client.CapabilityString)
	if err := c.writeFrame(schema.PacketServerJoinReq, payload); err != nil {
		c.setState(StateClosed)
		return fmt.Errorf("fcclient: sending join request: %w", err)
	}
	c.logger.Info("sent join request for %q", c.cfg.Client.Username)

	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	deadline := time.Now().Add(c.cfg.Client.JoinTimeout)
	if err := conn.SetReadDeadline(deadline); err != nil {
		c.setState(StateClosed)
		return fmt.Errorf("fcclient: setting join deadline: %w", err)
	}
	defer conn.SetReadDeadline(time.Time{})

	deps := &handler.Deps{
		Cache:                   c.cache,
		State:                   c.state,
		Logger:                  c.logger,
		ShutdownOnUnknownPacket: c.cfg.Client.ShutdownOnUnknownPacket,
	}

	for {
		packetType, payload, err := c.readFrame()
		if err != nil {
			c.setState(StateClosed)
			if isTimeout(err) {
				return fmt.Errorf("%w: %v", ErrJoinTimeout, err)
			}
			return err
		}

		if packetType == schema.PacketProcessingStarted {
			c.logger.Debug("skipping PROCESSING_STARTED during handshake")
			continue
		}

		if packetType != schema.PacketServerJoinReply {
			// The observed server only ever interleaves PROCESSING_STARTED
			// before the reply; anything else this early is logged and
			// skipped rather than treated as fatal, matching the
			// original client's handshake loop.
			c.logger.Warn("ignoring unexpected packet type %d during handshake", packetType)
			continue
		}

		result, err := c.registry.Dispatch(packetType, payload, deps)
		if err != nil {
			c.setState(StateClosed)
			return fmt.Errorf("fcclient: decoding join reply: %w", err)
		}

		if result.Shutdown {
			c.setState(StateClosed)
			return fmt.Errorf("%w: %s", ErrJoinDenied, result.ShutdownReason)
		}

		if result.FlipTypeWidth {
			c.mu.Lock()
			c.reader.SetTypeWidth(2)
			c.mu.Unlock()
		}

		c.setState(StateJoined)
		return nil
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return errors.Is(err, os.ErrDeadlineExceeded)
}

// encodeJoinReq builds the PACKET_SERVER_JOIN_REQ payload: the mechanical
// dual of the delta decoder for the one packet this client ever encodes
// (spec.md's scope explicitly excludes a full encoder).
func encodeJoinReq(username, capability string) []byte {
	var buf []byte
	buf = wire.WriteString(buf, username)
	buf = wire.WriteString(buf, capability)
	buf = wire.WriteString(buf, VersionLabel)
	buf = wire.WriteUint32(buf, uint32(MajorVersion))
	buf = wire.WriteUint32(buf, uint32(MinorVersion))
	buf = wire.WriteUint32(buf, uint32(PatchVersion))
	return buf
}
