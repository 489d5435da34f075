package format

import (
	"encoding/binary"
	"math"

	"github.com/rony4d/go-osu-format/utils/fast"
	"github.com/rony4d/go-osu-format/utils/leb128"
)

// Writer encodes primitives into a growing buffer. Writes never fail.
// A Writer is not safe for concurrent use.
type Writer struct {
	buf *fast.Writer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return WriterFromBytes(make([]byte, 0, 64))
}

// WriterFromBytes creates a Writer that appends after data. The Writer takes ownership of data.
func WriterFromBytes(data []byte) *Writer {
	return &Writer{buf: fast.NewWriter(data)}
}

// WriteByte appends one byte.
func (w *Writer) WriteByte(v uint8) {
	w.buf.WriteByte(v)
}

// WriteShort appends v as 2 little-endian bytes.
func (w *Writer) WriteShort(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// WriteInt appends v as 4 little-endian bytes.
func (w *Writer) WriteInt(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteLong appends v as 8 little-endian bytes.
func (w *Writer) WriteLong(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteSingle appends the IEEE-754 bits of v, little-endian.
func (w *Writer) WriteSingle(v float32) {
	w.WriteInt(math.Float32bits(v))
}

// WriteDouble appends the IEEE-754 bits of v, little-endian.
func (w *Writer) WriteDouble(v float64) {
	w.WriteLong(math.Float64bits(v))
}

// WriteBoolean appends 1 for true and 0 for false.
func (w *Writer) WriteBoolean(v bool) {
	if v {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

// WriteULEB appends v as unsigned LEB128, with no padding.
func (w *Writer) WriteULEB(v uint64) {
	var scratch [leb128.MaxLen64]byte
	n := leb128.PutUint64(scratch[:], v)
	w.buf.Write(scratch[:n])
}

// WriteString appends an optional string. The payload is written as-is; callers must pass
// valid UTF-8 for the value to read back.
func (w *Writer) WriteString(s OptString) {
	if !s.Valid {
		w.WriteByte(StringAbsent)
		return
	}
	w.WriteByte(StringPresent)
	w.WriteULEB(uint64(len(s.Value)))
	w.buf.Write([]byte(s.Value))
}

// WriteBytes appends raw bytes without any length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// Len returns the number of bytes in the buffer.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the encoded buffer. It aliases the Writer's storage.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
