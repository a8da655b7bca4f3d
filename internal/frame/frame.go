// Package frame implements the FreeCiv wire protocol's length-prefixed
// framing layer: normal frames, the type-width switch that happens after
// a successful join, DEFLATE-compressed frame groups, and oversized
// "jumbo" frames. It is modeled on the teacher's internal/protocol/tpkt
// and internal/protocol/fastpath packages, which wrap a raw connection
// and expose a single "give me the next framed unit" call.
package frame

import (
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"io"

	"github.com/rcarmo/freeciv-go-client/internal/wire"
)

// CompressionBorder is the sentinel value: when the 16-bit length field's
// high bit is set and the field equals this constant, the frame carries a
// DEFLATE-compressed group of inner frames.
const CompressionBorder uint16 = 0x8000

// JumboSize is the sentinel length value signaling a jumbo frame; the true
// length follows as a big-endian UINT32.
const JumboSize uint16 = 0xFFFF

var (
	// ErrConnectionClosed indicates the transport hit EOF mid-frame.
	ErrConnectionClosed = errors.New("frame: connection closed")
	// ErrMalformedFrame indicates an inconsistent or invalid frame header.
	ErrMalformedFrame = errors.New("frame: malformed frame header")
	// ErrDecompressionFailed indicates a compression group failed to inflate.
	ErrDecompressionFailed = errors.New("frame: decompression failed")
)

// Reader reads framed (packet_type, payload) pairs off a stream,
// transparently expanding compression groups and jumbo frames.
//
// Reader is not safe for concurrent use; per spec.md §5 it is owned
// exclusively by the single reader task.
type Reader struct {
	r io.Reader

	typeWidth int // 1 or 2 bytes; starts at 1, flips to 2 after join.
	pending   []pendingFrame
}

type pendingFrame struct {
	packetType uint16
	payload    []byte
}

// NewReader wraps conn for frame-level reads.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, typeWidth: 1}
}

// SetTypeWidth sets the type-tag width. Called once, immediately after a
// SERVER_JOIN_REPLY with you_can_join=true (spec.md §4.1).
func (rd *Reader) SetTypeWidth(width int) {
	rd.typeWidth = width
}

// TypeWidth reports the current type-tag width.
func (rd *Reader) TypeWidth() int {
	return rd.typeWidth
}

// headerSize returns 2 + type_width (normal) or 2 + 4 + type_width (jumbo).
func (rd *Reader) headerSize(jumbo bool) int {
	if jumbo {
		return 2 + 4 + rd.typeWidth
	}
	return 2 + rd.typeWidth
}

// readFull reads exactly len(buf) bytes, looping on short reads. A
// zero-length read (EOF) is a fatal ErrConnectionClosed.
func readFull(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: short read after %d of %d bytes", ErrConnectionClosed, n, len(buf))
		}
		return fmt.Errorf("frame: read error: %w", err)
	}
	return nil
}

// readType reads a packet type tag at the reader's current type width.
// Pre-join it is a plain UINT8; post-join it is observed to be a
// little-endian UINT16 (spec.md §6.1).
func (rd *Reader) readType(buf []byte) uint16 {
	if rd.typeWidth == 1 {
		return uint16(buf[0])
	}
	return uint16(buf[0]) | uint16(buf[1])<<8
}

// NextFrame returns the next (packet_type, payload) pair, lazily
// expanding any compression group so its inner frames are emitted on
// subsequent calls in arrival order.
func (rd *Reader) NextFrame() (uint16, []byte, error) {
	if len(rd.pending) > 0 {
		f := rd.pending[0]
		rd.pending = rd.pending[1:]
		return f.packetType, f.payload, nil
	}

	var lenBuf [2]byte
	if err := readFull(rd.r, lenBuf[:]); err != nil {
		return 0, nil, err
	}
	length := uint16(lenBuf[0])<<8 | uint16(lenBuf[1])

	// JumboSize also has the high bit set, so it is matched first.
	if length == JumboSize {
		return rd.readJumboFrame()
	}

	if length&CompressionBorder != 0 {
		if length != CompressionBorder {
			// Only the sentinel value itself is recognized; any other
			// value with the high bit set is not a valid compression
			// group marker under this reader (spec.md §9 open question).
			return 0, nil, fmt.Errorf("%w: unrecognized compression marker %#04x", ErrMalformedFrame, length)
		}
		return rd.readCompressionGroup()
	}

	headerSize := rd.headerSize(false)
	if int(length) < headerSize {
		return 0, nil, fmt.Errorf("%w: length %d shorter than header size %d", ErrMalformedFrame, length, headerSize)
	}

	typeAndPayload := make([]byte, int(length)-2)
	if err := readFull(rd.r, typeAndPayload); err != nil {
		return 0, nil, err
	}

	packetType := rd.readType(typeAndPayload[:rd.typeWidth])
	payload := typeAndPayload[rd.typeWidth:]
	return packetType, payload, nil
}

func (rd *Reader) readJumboFrame() (uint16, []byte, error) {
	var trueLenBuf [4]byte
	if err := readFull(rd.r, trueLenBuf[:]); err != nil {
		return 0, nil, err
	}
	trueLength, _, err := wire.ReadUint32(trueLenBuf[:], 0)
	if err != nil {
		return 0, nil, err
	}

	headerSize := rd.headerSize(true)
	if int(trueLength) < headerSize {
		return 0, nil, fmt.Errorf("%w: jumbo length %d shorter than header size %d", ErrMalformedFrame, trueLength, headerSize)
	}

	typeAndPayload := make([]byte, int(trueLength)-6)
	if err := readFull(rd.r, typeAndPayload); err != nil {
		return 0, nil, err
	}

	packetType := rd.readType(typeAndPayload[:rd.typeWidth])
	payload := typeAndPayload[rd.typeWidth:]
	return packetType, payload, nil
}

// readCompressionGroup reads the DEFLATE-compressed remainder of a
// compression-group frame, inflates it, and splits the result into a
// sequence of normal frames queued for subsequent NextFrame calls.
func (rd *Reader) readCompressionGroup() (uint16, []byte, error) {
	var groupLenBuf [2]byte
	if err := readFull(rd.r, groupLenBuf[:]); err != nil {
		return 0, nil, err
	}
	compressedLen := uint16(groupLenBuf[0])<<8 | uint16(groupLenBuf[1])

	compressed := make([]byte, compressedLen)
	if err := readFull(rd.r, compressed); err != nil {
		return 0, nil, err
	}

	inflater := flate.NewReader(bytes.NewReader(compressed))
	defer inflater.Close()

	plain, err := io.ReadAll(inflater)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}

	inner := NewReader(bytes.NewReader(plain))
	inner.typeWidth = rd.typeWidth

	for {
		pt, payload, err := inner.NextFrame()
		if err != nil {
			if errors.Is(err, ErrConnectionClosed) {
				break
			}
			return 0, nil, err
		}
		rd.pending = append(rd.pending, pendingFrame{packetType: pt, payload: payload})
	}

	if len(rd.pending) == 0 {
		return 0, nil, fmt.Errorf("%w: compression group expanded to zero frames", ErrMalformedFrame)
	}

	f := rd.pending[0]
	rd.pending = rd.pending[1:]
	return f.packetType, f.payload, nil
}

// WriteFrame serializes a normal frame at the given type width, the
// mechanical dual of NextFrame's normal-frame path (spec.md's scope
// excludes a full encoder; this is needed only for the JOIN_REQ send).
func WriteFrame(typeWidth int, packetType uint16, payload []byte) []byte {
	headerSize := 2 + typeWidth
	length := headerSize + len(payload)

	buf := make([]byte, 0, length)
	buf = wire.WriteUint16(buf, uint16(length))
	if typeWidth == 1 {
		buf = wire.WriteUint8(buf, uint8(packetType))
	} else {
		buf = append(buf, byte(packetType), byte(packetType>>8))
	}
	buf = append(buf, payload...)
	return buf
}
