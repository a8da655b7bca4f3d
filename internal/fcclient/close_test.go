package fcclient

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/freeciv-go-client/internal/deltacache"
	"github.com/rcarmo/freeciv-go-client/internal/schema"
)

func TestClose_ClosesConnAndClearsCache(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	cache := deltacache.New()
	cache.Put(schema.PacketGameInfo, "", deltacache.FieldMap{"turn": uint32(5)})

	c := &Client{conn: clientConn, cache: cache, connState: StateJoined}

	require.NoError(t, c.Close())
	assert.Equal(t, StateClosed, c.State())
	assert.Nil(t, cache.Get(schema.PacketGameInfo, ""))

	_, err := clientConn.Write([]byte("x"))
	require.Error(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	c := &Client{conn: clientConn, cache: deltacache.New()}

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestClose_NoConnYet(t *testing.T) {
	c := &Client{cache: deltacache.New()}
	require.NoError(t, c.Close())
	assert.Equal(t, StateClosed, c.State())
}
