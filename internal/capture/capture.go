// Package capture writes frames (inbound and outbound) to disk for
// protocol debugging, one file per frame, per spec.md §6.3. It stores
// exactly the bytes passed to WriteFrame: internal/fcclient passes
// outbound frames as sent, and inbound frames re-encoded as normal
// frames after compression groups and jumbo frames have been expanded,
// not the compressed bytes read off the socket. It is grounded on
// original_source/fc_client's PacketDebugger: directory truncated on
// open, independent 4-digit counters per direction, 3-digit
// zero-padded packet type in the name.
//
// No file handle is held between frames: each WriteFrame call writes
// and closes its file, so a Writer has no Close method.
package capture

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// Direction names a capture file's origin.
type Direction string

const (
	Inbound  Direction = "inbound"
	Outbound Direction = "outbound"
)

// Writer captures raw frames to a directory, one file per frame.
// Not safe for concurrent use; per spec.md §5 it is owned exclusively by the connection's single
// reader task.
type Writer struct {
	dir             string
	inboundCounter  int
	outboundCounter int

	dedup    bool
	seenHash map[Direction]map[string]bool
	Skipped  int
}

// New creates (or truncates) dir and returns a Writer rooted there.
// Matching PacketDebugger's behavior, any pre-existing contents are
// removed first so a capture run never mixes with a stale one.
func New(dir string) (*Writer, error) {
	return newWriter(dir, false)
}

// NewDeduping is New, but every frame is hashed (ContentHash) before
// being written; a frame whose hash repeats an already-written frame
// in the same direction is skipped instead of saved, so a long-running
// capture of a steady-state game doesn't fill a directory with
// thousands of identical PACKET_CONN_PING fixtures.
func NewDeduping(dir string) (*Writer, error) {
	return newWriter(dir, true)
}

func newWriter(dir string, dedup bool) (*Writer, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("capture: clearing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("capture: creating %s: %w", dir, err)
	}
	w := &Writer{dir: dir, dedup: dedup}
	if dedup {
		w.seenHash = map[Direction]map[string]bool{Inbound: {}, Outbound: {}}
	}
	return w, nil
}

// WriteFrame persists one raw frame (header bytes included) under a
// name of the form "{direction}_{nnnn}_type{ttt}.packet". When the
// Writer was built with NewDeduping, a frame whose content hash
// repeats a prior frame in the same direction increments Skipped and
// returns nil without writing a file.
func (w *Writer) WriteFrame(dir Direction, packetType uint16, raw []byte) error {
	var counter *int
	switch dir {
	case Inbound:
		counter = &w.inboundCounter
	case Outbound:
		counter = &w.outboundCounter
	default:
		return fmt.Errorf("capture: unknown direction %q", dir)
	}

	if w.dedup {
		hash, err := ContentHash(raw)
		if err != nil {
			return fmt.Errorf("capture: hashing frame: %w", err)
		}
		if w.seenHash[dir][hash] {
			w.Skipped++
			return nil
		}
		w.seenHash[dir][hash] = true
	}

	*counter++

	name := fmt.Sprintf("%s_%04d_type%03d.packet", dir, *counter, packetType)
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("capture: writing %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("capture: verifying %s: %w", path, err)
	}
	if info.Size() != int64(len(raw)) {
		return fmt.Errorf("capture: write verification failed for %s: expected %d bytes, wrote %d", path, len(raw), info.Size())
	}

	return nil
}

// ContentHash returns the BLAKE2b-256 hex digest of a captured frame,
// used by NewDeduping writers to skip frames repeated within one
// capture run.
func ContentHash(raw []byte) (string, error) {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
