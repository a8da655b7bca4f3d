// Package wire encodes and decodes the FreeCiv wire protocol's primitive
// types: fixed-width integers, NUL-terminated strings, booleans, and the
// REQUIREMENT composite record. Every reader advances a cursor by exactly
// its width; callers thread the cursor through successive reads the way
// internal/codec's BitmapStream threaded an offset through its own planes
// in the teacher codebase this client is modeled on.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTruncated indicates the buffer ended before a primitive could be
// read in full.
var ErrTruncated = errors.New("wire: truncated buffer")

// Requirement is the 10-byte composite record used throughout ruleset
// packets to express a precondition.
type Requirement struct {
	Type     uint8
	Value    int32
	Range    uint8
	Survives bool
	Present  bool
	Quiet    bool
}

const RequirementSize = 10

func need(buf []byte, off, width int) error {
	if off < 0 || width < 0 || off+width > len(buf) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, width, off, len(buf))
	}
	return nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func ReadUint8(buf []byte, off int) (uint8, int, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, off, err
	}
	return buf[off], off + 1, nil
}

// ReadSint8 reads a two's-complement signed 8-bit integer.
func ReadSint8(buf []byte, off int) (int8, int, error) {
	v, newOff, err := ReadUint8(buf, off)
	return int8(v), newOff, err
}

// ReadBool reads a BOOL8: nonzero is true.
func ReadBool(buf []byte, off int) (bool, int, error) {
	v, newOff, err := ReadUint8(buf, off)
	return v != 0, newOff, err
}

// ReadUint16 reads a big-endian unsigned 16-bit integer.
func ReadUint16(buf []byte, off int) (uint16, int, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, off, err
	}
	return binary.BigEndian.Uint16(buf[off : off+2]), off + 2, nil
}

// ReadSint16 reads a big-endian two's-complement signed 16-bit integer.
func ReadSint16(buf []byte, off int) (int16, int, error) {
	v, newOff, err := ReadUint16(buf, off)
	return int16(v), newOff, err
}

// ReadUint32 reads a big-endian unsigned 32-bit integer.
func ReadUint32(buf []byte, off int) (uint32, int, error) {
	if err := need(buf, off, 4); err != nil {
		return 0, off, err
	}
	return binary.BigEndian.Uint32(buf[off : off+4]), off + 4, nil
}

// ReadSint32 reads a big-endian two's-complement signed 32-bit integer.
func ReadSint32(buf []byte, off int) (int32, int, error) {
	v, newOff, err := ReadUint32(buf, off)
	return int32(v), newOff, err
}

// ReadString scans forward for a NUL terminator and returns the UTF-8
// string preceding it; the terminator is consumed.
func ReadString(buf []byte, off int) (string, int, error) {
	if off < 0 || off > len(buf) {
		return "", off, fmt.Errorf("%w: string offset %d out of range", ErrTruncated, off)
	}
	for i := off; i < len(buf); i++ {
		if buf[i] == 0 {
			return string(buf[off:i]), i + 1, nil
		}
	}
	return "", off, fmt.Errorf("%w: no NUL terminator found after offset %d", ErrTruncated, off)
}

// ReadRequirement reads the fixed 10-byte REQUIREMENT composite.
func ReadRequirement(buf []byte, off int) (Requirement, int, error) {
	if err := need(buf, off, RequirementSize); err != nil {
		return Requirement{}, off, err
	}

	var r Requirement
	var err error

	r.Type, off, err = ReadUint8(buf, off)
	if err != nil {
		return Requirement{}, off, err
	}
	r.Value, off, err = ReadSint32(buf, off)
	if err != nil {
		return Requirement{}, off, err
	}
	r.Range, off, err = ReadUint8(buf, off)
	if err != nil {
		return Requirement{}, off, err
	}
	r.Survives, off, err = ReadBool(buf, off)
	if err != nil {
		return Requirement{}, off, err
	}
	r.Present, off, err = ReadBool(buf, off)
	if err != nil {
		return Requirement{}, off, err
	}
	r.Quiet, off, err = ReadBool(buf, off)
	if err != nil {
		return Requirement{}, off, err
	}

	return r, off, nil
}

// WriteUint8 appends an unsigned 8-bit integer to dst.
func WriteUint8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// WriteSint8 appends a signed 8-bit integer to dst.
func WriteSint8(dst []byte, v int8) []byte {
	return WriteUint8(dst, uint8(v))
}

// WriteBool appends a BOOL8 to dst.
func WriteBool(dst []byte, v bool) []byte {
	if v {
		return WriteUint8(dst, 1)
	}
	return WriteUint8(dst, 0)
}

// WriteUint16 appends a big-endian unsigned 16-bit integer to dst.
func WriteUint16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// WriteSint16 appends a big-endian signed 16-bit integer to dst.
func WriteSint16(dst []byte, v int16) []byte {
	return WriteUint16(dst, uint16(v))
}

// WriteUint32 appends a big-endian unsigned 32-bit integer to dst.
func WriteUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// WriteSint32 appends a big-endian signed 32-bit integer to dst.
func WriteSint32(dst []byte, v int32) []byte {
	return WriteUint32(dst, uint32(v))
}

// WriteString appends a NUL-terminated UTF-8 string to dst.
func WriteString(dst []byte, v string) []byte {
	dst = append(dst, v...)
	return append(dst, 0)
}

// WriteRequirement appends the fixed 10-byte REQUIREMENT composite to dst.
func WriteRequirement(dst []byte, r Requirement) []byte {
	dst = WriteUint8(dst, r.Type)
	dst = WriteSint32(dst, r.Value)
	dst = WriteUint8(dst, r.Range)
	dst = WriteBool(dst, r.Survives)
	dst = WriteBool(dst, r.Present)
	dst = WriteBool(dst, r.Quiet)
	return dst
}
