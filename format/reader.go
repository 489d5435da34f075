// Package format implements the osu! binary serialization convention used by replay and
// database files: fixed-width little-endian integers and floats, single-byte booleans,
// unsigned LEB128 integers and tagged optional strings.
//
// Reader and Writer share the wire layout but never a buffer: a Reader drains values from
// bytes already in memory, a Writer appends values to its own buffer.
package format

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/rony4d/go-osu-format/utils/fast"
	"github.com/rony4d/go-osu-format/utils/leb128"
)

const maxInt = int(^uint(0) >> 1)

// Reader decodes primitives sequentially from an in-memory buffer.
//
// Every read either succeeds and advances the cursor by exactly the bytes it consumed, or fails
// with ErrEndOfFile / ErrInvalidData and leaves the cursor where it was.
// A Reader is not safe for concurrent use.
type Reader struct {
	buf *fast.Reader
}

// NewReader creates a Reader over data. The Reader takes ownership: data must not be modified
// while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{buf: fast.NewReader(data)}
}

// ReaderFromBytes creates a Reader over a private copy of data.
func ReaderFromBytes(data []byte) *Reader {
	cp := make([]byte, len(data))
	copy(cp, data)
	return NewReader(cp)
}

// next consumes exactly n bytes or nothing.
func (r *Reader) next(n int) ([]byte, error) {
	if !r.buf.Has(n) {
		return nil, ErrEndOfFile
	}
	return r.buf.Read(n), nil
}

// ReadByte reads one unsigned byte.
func (r *Reader) ReadByte() (byte, error) {
	if !r.buf.Has(1) {
		return 0, ErrEndOfFile
	}
	return r.buf.ReadByte(), nil
}

// ReadShort reads a little-endian uint16.
func (r *Reader) ReadShort() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt reads a little-endian uint32.
func (r *Reader) ReadInt() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadLong reads a little-endian uint64.
func (r *Reader) ReadLong() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadSingle reads a little-endian IEEE-754 float32. NaN payloads are preserved.
func (r *Reader) ReadSingle() (float32, error) {
	v, err := r.ReadInt()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadDouble reads a little-endian IEEE-754 float64. NaN payloads are preserved.
func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.ReadLong()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBoolean reads one byte; only 0x00 is false.
func (r *Reader) ReadBoolean() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadULEB reads an unsigned LEB128 integer.
// An empty buffer is ErrEndOfFile; a truncated or over-long encoding is ErrInvalidData.
func (r *Reader) ReadULEB() (uint64, error) {
	if !r.buf.Has(1) {
		return 0, ErrEndOfFile
	}
	v, n, err := leb128.Uint64(r.buf.Peek())
	if err != nil {
		return 0, fmt.Errorf("%w (%v)", ErrULEB, err)
	}
	r.buf.Skip(n)
	return v, nil
}

// ReadString reads an optional string: a tag byte, then for 0x0b a uleb128 byte length and the
// UTF-8 payload. The read is all-or-nothing: on any error the cursor is restored to the tag byte.
func (r *Reader) ReadString() (OptString, error) {
	prior := r.buf.Position()
	s, err := r.readString()
	if err != nil {
		r.buf.Seek(prior)
		return Absent, err
	}
	return s, nil
}

func (r *Reader) readString() (OptString, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return Absent, err
	}
	switch tag {
	case StringAbsent:
		return Absent, nil
	case StringPresent:
	default:
		return Absent, ErrStringTag
	}

	size, err := r.ReadULEB()
	if err != nil {
		return Absent, err
	}
	if size > uint64(maxInt) {
		return Absent, ErrLengthOverrun
	}
	raw, err := r.next(int(size))
	if err != nil {
		return Absent, err
	}
	if !utf8.Valid(raw) {
		return Absent, ErrStringUTF8
	}
	return Some(string(raw)), nil
}

// ReadBytes reads n raw bytes into a new slice, e.g. the compressed frame data of a replay.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidData, n)
	}
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// Position returns the cursor offset from the start of the buffer.
func (r *Reader) Position() int {
	return r.buf.Position()
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return r.buf.Remaining()
}

// Len returns the total buffer length.
func (r *Reader) Len() int {
	return len(r.buf.Bytes())
}

// Empty reports whether every byte has been consumed.
func (r *Reader) Empty() bool {
	return r.buf.Empty()
}
