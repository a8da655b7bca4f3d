package fcclient

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/freeciv-go-client/internal/config"
	"github.com/rcarmo/freeciv-go-client/internal/deltacache"
	"github.com/rcarmo/freeciv-go-client/internal/frame"
	"github.com/rcarmo/freeciv-go-client/internal/gamestate"
	"github.com/rcarmo/freeciv-go-client/internal/handler"
	"github.com/rcarmo/freeciv-go-client/internal/logging"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
	"github.com/rcarmo/freeciv-go-client/internal/wire"
)

// newPipeClient wires a Client to one end of an in-memory net.Pipe,
// already in the Connected state, the way Dial would leave it. The
// caller drives the other end to stand in for the server.
func newPipeClient(t *testing.T, cfg *config.Config) (*Client, net.Conn) {
	t.Helper()
	clientConn, serverConn := net.Pipe()

	c := &Client{
		cfg:      cfg,
		logger:   logging.Default(),
		conn:     clientConn,
		cache:    deltacache.New(),
		state:    gamestate.New(),
		registry: handler.NewRegistry(),
	}
	c.buffReader = bufio.NewReader(clientConn)
	c.reader = frame.NewReader(c.buffReader)
	c.setState(StateConnected)

	t.Cleanup(func() { clientConn.Close(); serverConn.Close() })
	return c, serverConn
}

func encodeJoinReplyPayload(t *testing.T, youCanJoin bool, message, capabilityStr, challenge string) []byte {
	t.Helper()
	var buf []byte
	buf = wire.WriteBool(buf, youCanJoin)
	buf = wire.WriteString(buf, message)
	buf = wire.WriteString(buf, capabilityStr)
	buf = wire.WriteString(buf, challenge)
	return buf
}

func readFrameFromServer(t *testing.T, serverConn net.Conn) (uint16, []byte) {
	t.Helper()
	r := frame.NewReader(serverConn)
	packetType, payload, err := r.NextFrame()
	require.NoError(t, err)
	return packetType, payload
}

func TestJoin_Success(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1", "6556")
	c, serverConn := newPipeClient(t, cfg)

	done := make(chan error, 1)
	go func() { done <- c.Join() }()

	packetType, payload := readFrameFromServer(t, serverConn)
	assert.Equal(t, uint16(schema.PacketServerJoinReq), packetType)

	spec, ok := schema.Lookup(schema.PacketServerJoinReq)
	require.True(t, ok)
	fields, err := decodeFields(t, spec, payload)
	require.NoError(t, err)
	assert.Equal(t, "tester", fields["username"])

	reply := encodeJoinReplyPayload(t, true, "welcome", "+Freeciv.Devel-3.4-2025.Nov.29", "")
	_, err = serverConn.Write(frame.WriteFrame(1, schema.PacketServerJoinReply, reply))
	require.NoError(t, err)

	require.NoError(t, <-done)
	assert.Equal(t, StateJoined, c.State())
	assert.Equal(t, 2, c.reader.TypeWidth())
}

func TestJoin_SkipsProcessingStarted(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1", "6556")
	c, serverConn := newPipeClient(t, cfg)

	done := make(chan error, 1)
	go func() { done <- c.Join() }()

	readFrameFromServer(t, serverConn) // join request

	_, err := serverConn.Write(frame.WriteFrame(1, schema.PacketProcessingStarted, nil))
	require.NoError(t, err)

	reply := encodeJoinReplyPayload(t, true, "", "+cap", "")
	_, err = serverConn.Write(frame.WriteFrame(1, schema.PacketServerJoinReply, reply))
	require.NoError(t, err)

	require.NoError(t, <-done)
	assert.Equal(t, StateJoined, c.State())
}

func TestJoin_Denied(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1", "6556")
	c, serverConn := newPipeClient(t, cfg)

	done := make(chan error, 1)
	go func() { done <- c.Join() }()

	readFrameFromServer(t, serverConn)

	reply := encodeJoinReplyPayload(t, false, "nope, banned", "+cap", "")
	_, err := serverConn.Write(frame.WriteFrame(1, schema.PacketServerJoinReply, reply))
	require.NoError(t, err)

	err = <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJoinDenied)
	assert.Equal(t, StateClosed, c.State())
}

func TestJoin_WrongState(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1", "6556")
	c, _ := newPipeClient(t, cfg)
	c.setState(StateJoined)

	err := c.Join()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyJoined)
}

func TestJoin_Timeout(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1", "6556")
	cfg.Client.JoinTimeout = 20 * time.Millisecond
	c, serverConn := newPipeClient(t, cfg)
	defer serverConn.Close()

	done := make(chan error, 1)
	go func() { done <- c.Join() }()

	readFrameFromServer(t, serverConn) // drain the request, then never reply

	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJoinTimeout)
	assert.Equal(t, StateClosed, c.State())
}

// decodeFields is a small helper so connect tests can assert on the
// encoded join request without importing the decoder package's
// internal flat-decode helpers directly.
func decodeFields(t *testing.T, spec *schema.PacketSpec, payload []byte) (map[string]interface{}, error) {
	t.Helper()
	off := 0
	fields := map[string]interface{}{}
	for _, f := range spec.Fields {
		switch f.Type {
		case schema.String:
			v, n, err := wire.ReadString(payload, off)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = v
			off = n
		case schema.Uint32:
			v, n, err := wire.ReadUint32(payload, off)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = v
			off = n
		}
	}
	return fields, nil
}
