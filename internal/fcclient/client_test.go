package fcclient

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/freeciv-go-client/internal/config"
)

func testConfig(t *testing.T, host, port string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Host: host, Port: port},
		Client: config.ClientConfig{
			Username:         "tester",
			CapabilityString: "+Freeciv.Devel-3.4-2025.Nov.29",
			JoinTimeout:      2_000_000_000, // 2s, avoids importing time for one literal
		},
	}
}

func TestState_String(t *testing.T) {
	cases := map[State]string{
		StateDisconnected: "disconnected",
		StateConnected:    "connected",
		StateJoining:      "joining",
		StateJoined:       "joined",
		StateClosed:       "closed",
		State(99):         "unknown",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
}

func TestNew_BuildsFreshCacheAndState(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1", "6556")
	c1 := New(cfg, nil)
	c2 := New(cfg, nil)

	require.NotNil(t, c1.cache)
	require.NotNil(t, c2.cache)
	assert.NotSame(t, c1.cache, c2.cache)
	assert.NotSame(t, c1.state, c2.state)
	assert.Equal(t, StateDisconnected, c1.State())
}

func TestDial_Success(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, _ := ln.Accept()
		accepted <- conn
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	c := New(testConfig(t, host, port), nil)
	require.NoError(t, c.Dial())
	defer c.Close()

	assert.Equal(t, StateConnected, c.State())
	assert.Equal(t, 1, c.reader.TypeWidth())

	conn := <-accepted
	conn.Close()
}

func TestDial_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close() // nothing listening now

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	c := New(testConfig(t, host, port), nil)
	err = c.Dial()
	require.Error(t, err)
	assert.Equal(t, StateDisconnected, c.State())
}

func TestGameState_ReturnsAccumulatedState(t *testing.T) {
	c := New(testConfig(t, "127.0.0.1", "6556"), nil)
	assert.NotNil(t, c.GameState())
}
