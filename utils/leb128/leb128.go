// Package leb128 implements the unsigned LEB128 variable-length integer encoding.
//
// Each byte carries 7 data bits, least-significant group first. The high bit (0x80) is the
// continuation flag: it is set on every byte except the last one.
package leb128

import "errors"

// MaxLen64 is the maximum encoded length of a 64-bit value: ceil(64/7).
const MaxLen64 = 10

var (
	// ErrTruncated is returned when the input ends before a terminating byte (high bit clear).
	ErrTruncated = errors.New("leb128: truncated encoding")
	// ErrOverflow is returned when the encoded value does not fit into 64 bits.
	ErrOverflow = errors.New("leb128: value overflows 64 bits")
)

// AppendUint64 appends the encoding of v to dst and returns the extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	var scratch [MaxLen64]byte
	n := PutUint64(scratch[:], v)
	return append(dst, scratch[:n]...)
}

// PutUint64 encodes v into buf and returns the number of bytes written.
// It panics if buf is too small; MaxLen64 bytes are always enough.
func PutUint64(buf []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		buf[i] = byte(v) | 0x80 // lower 7 bits, more bytes follow
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	return i + 1
}

// Uint64 decodes a value from the start of buf.
// It returns the value and the number of bytes consumed.
func Uint64(buf []byte) (uint64, int, error) {
	var (
		v     uint64
		shift uint
	)
	for i, b := range buf {
		if i == MaxLen64-1 && b > 1 {
			// 10th byte may only hold the single remaining bit.
			return 0, 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrTruncated
}

// Size returns the encoded length of v in bytes.
func Size(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
