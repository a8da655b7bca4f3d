package fcclient

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rcarmo/freeciv-go-client/internal/handler"
)

// SetIdleTimeout configures the optional connection-level liveness
// check of spec.md §5: if no bytes arrive within d, the dispatch loop
// closes the session. A non-positive d (the default) disables it;
// steady-state reads otherwise have no deadline, since the protocol is
// server-driven and idle periods are expected.
func (c *Client) SetIdleTimeout(d time.Duration) {
	c.mu.Lock()
	c.idleTimeout = d
	c.mu.Unlock()
}

// Run drives the Joined-state dispatch loop until ctx is canceled, the
// server closes the connection, or a handler requests shutdown.
//
// The loop's one suspension point is the transport read inside readFrame
// (spec.md §5), which net.Conn cannot itself bind to a context. So Run
// pairs the blocking loop with a second goroutine, joined via
// errgroup the way the teacher joins its multitransport negotiation
// goroutine with the main connection lifecycle: that goroutine's only
// job is to close the socket when ctx is canceled, which unblocks the
// loop's current or next read and lets it perform the → Closed
// transition on its own. A clean, handler-requested shutdown carries no
// error, so the dispatch goroutine cancels its own private context on
// the way out rather than relying on errgroup's error-triggered cancel,
// which would otherwise leave the watcher goroutine blocked forever.
func (c *Client) Run(ctx context.Context) error {
	if c.State() != StateJoined {
		return fmt.Errorf("fcclient: Run called in state %s, want joined", c.State())
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		<-gctx.Done()
		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()
		if conn != nil {
			_ = conn.Close()
		}
		return nil
	})

	g.Go(func() error {
		err := c.dispatchLoop()
		c.setState(StateClosed)
		cancel()
		return err
	})

	err := g.Wait()
	if ctx.Err() != nil {
		// The loop's error, if any, is just the closed-socket side
		// effect of our own cancellation goroutine; report the
		// cancellation itself instead.
		return ctx.Err()
	}
	return err
}

// dispatchLoop reads and dispatches frames one at a time, in arrival
// order, until an error, a handler-requested shutdown, or the socket
// closing out from under it (spec.md §4.6, §5).
func (c *Client) dispatchLoop() error {
	deps := &handler.Deps{
		Cache:                   c.cache,
		State:                   c.state,
		Logger:                  c.logger,
		ShutdownOnUnknownPacket: c.cfg.Client.ShutdownOnUnknownPacket,
	}

	for {
		c.applyIdleDeadline()

		packetType, payload, err := c.readFrame()
		if err != nil {
			return err
		}

		result, err := c.registry.Dispatch(packetType, payload, deps)
		if err != nil {
			c.logger.Error("dispatch error: %v", err)
			return err
		}

		if result.FlipTypeWidth {
			c.mu.Lock()
			c.reader.SetTypeWidth(2)
			c.mu.Unlock()
		}

		if result.Shutdown {
			c.logger.Warn("shutdown requested: %s", result.ShutdownReason)
			return nil
		}
	}
}

func (c *Client) applyIdleDeadline() {
	c.mu.RLock()
	conn := c.conn
	idle := c.idleTimeout
	c.mu.RUnlock()

	if conn == nil || idle <= 0 {
		return
	}
	_ = conn.SetReadDeadline(time.Now().Add(idle))
}
