package fcclient

// Close performs the orderly Joined/Joining → Closed transition,
// releasing the socket. Safe to call more than once and safe to call
// from a different goroutine than the dispatch loop (spec.md §5's
// cancellation path relies on this).
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		conn := c.conn
		cap := c.capture
		c.connState = StateClosed
		c.mu.Unlock()

		c.cache.Clear()

		if cap != nil && cap.Skipped > 0 {
			c.logger.Info("packet capture: skipped %d duplicate frame(s)", cap.Skipped)
		}

		if conn != nil {
			err = conn.Close()
		}
	})
	return err
}
