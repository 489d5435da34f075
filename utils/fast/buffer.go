package fast

// buffer.go provides a lightweight, non-thread-safe cursor over byte slices.
//
// The Reader does not return errors itself: callers ask Has(n) before Read(n) and decide which
// error to report. Read past the end panics with a slice bounds error.
// Position and Seek give callers a checkpoint they can restore after a failed multi-step decode.

type Reader struct {
	// buf is the underlying data source.
	buf []byte
	// offset is the cursor, 0 <= offset <= len(buf).
	offset int
}

type Writer struct {
	// buf is the accumulating byte slice.
	buf []byte
}

// NewReader creates a Reader to consume the provided byte slice. The slice is not copied.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf:    bb,
		offset: 0,
	}
}

// NewWriter creates a Writer that appends to the provided initial slice.
// Often called with `make([]byte, 0, capacity)` to pre-allocate memory.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// WriteByte appends a single byte to the buffer.
func (b *Writer) WriteByte(v byte) {
	b.buf = append(b.buf, v)
}

// Write appends a slice of bytes to the buffer.
func (b *Writer) Write(v []byte) {
	b.buf = append(b.buf, v...)
}

// Len returns the number of bytes written so far, including any pre-seeded prefix.
func (b *Writer) Len() int {
	return len(b.buf)
}

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}

// Has reports whether at least n unread bytes remain.
func (b *Reader) Has(n int) bool {
	return n >= 0 && n <= len(b.buf)-b.offset
}

// Read consumes and returns the next n bytes.
// The result shares memory with the underlying buffer.
// It panics if fewer than n bytes remain; check Has first.
func (b *Reader) Read(n int) []byte {
	res := b.buf[b.offset : b.offset+n]
	b.offset += n
	return res
}

// ReadByte consumes and returns a single byte. Panics if the buffer is exhausted.
func (b *Reader) ReadByte() byte {
	res := b.buf[b.offset]
	b.offset++
	return res
}

// Peek returns the unread tail without consuming it.
func (b *Reader) Peek() []byte {
	return b.buf[b.offset:]
}

// Skip advances the cursor by n bytes. Panics if fewer than n bytes remain.
func (b *Reader) Skip(n int) {
	if !b.Has(n) {
		panic("fast: skip out of range")
	}
	b.offset += n
}

// Position returns the current cursor index of the Reader.
func (b *Reader) Position() int {
	return b.offset
}

// Seek moves the cursor back (or forward) to a position previously returned by Position.
func (b *Reader) Seek(pos int) {
	if pos < 0 || pos > len(b.buf) {
		panic("fast: seek out of range")
	}
	b.offset = pos
}

// Remaining returns the number of unread bytes.
func (b *Reader) Remaining() int {
	return len(b.buf) - b.offset
}

// Bytes returns the entire underlying buffer of the Reader.
func (b *Reader) Bytes() []byte {
	return b.buf
}

// Empty checks if the Reader has reached the end of the buffer.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}
