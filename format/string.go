package format

import "github.com/rony4d/go-osu-format/utils/leb128"

// Tag bytes of the optional string encoding.
const (
	StringAbsent  byte = 0x00
	StringPresent byte = 0x0b
)

// OptString is an optional UTF-8 string. The zero value is absent.
type OptString struct {
	Value string
	Valid bool
}

// Absent is the absent string; it encodes as a single 0x00 byte.
var Absent = OptString{}

// Some returns a present string holding s. An empty s is still present.
func Some(s string) OptString {
	return OptString{Value: s, Valid: true}
}

// Get returns the value and whether it is present.
func (s OptString) Get() (string, bool) {
	return s.Value, s.Valid
}

// Or returns the value, or def if the string is absent.
func (s OptString) Or(def string) string {
	if !s.Valid {
		return def
	}
	return s.Value
}

// EncodedSize returns the number of bytes WriteString appends for s.
func (s OptString) EncodedSize() int {
	if !s.Valid {
		return 1
	}
	return 1 + leb128.Size(uint64(len(s.Value))) + len(s.Value)
}
