package layout

import (
	"fmt"
	"strconv"

	"github.com/rony4d/go-osu-format/format"
)

// AbsentToken is the text form of an absent string.
const AbsentToken = "<absent>"

// ParseValue converts text into the Go value Encode expects for kind k.
// Integers accept any base strconv understands with a prefix (0x.., 0b..).
func ParseValue(k Kind, text string) (interface{}, error) {
	switch k {
	case KindByte:
		v, err := strconv.ParseUint(text, 0, 8)
		return uint8(v), wrapParse(k, text, err)
	case KindShort:
		v, err := strconv.ParseUint(text, 0, 16)
		return uint16(v), wrapParse(k, text, err)
	case KindInt:
		v, err := strconv.ParseUint(text, 0, 32)
		return uint32(v), wrapParse(k, text, err)
	case KindLong, KindULEB:
		v, err := strconv.ParseUint(text, 0, 64)
		return v, wrapParse(k, text, err)
	case KindSingle:
		v, err := strconv.ParseFloat(text, 32)
		return float32(v), wrapParse(k, text, err)
	case KindDouble:
		v, err := strconv.ParseFloat(text, 64)
		return v, wrapParse(k, text, err)
	case KindBoolean:
		v, err := strconv.ParseBool(text)
		return v, wrapParse(k, text, err)
	case KindString:
		if text == AbsentToken {
			return format.Absent, nil
		}
		return format.Some(text), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
}

func wrapParse(k Kind, text string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %q is not a %s: %v", ErrValueMismatch, text, k, err)
}

// ParseValues parses one text per field of l.
func ParseValues(l Layout, texts []string) ([]interface{}, error) {
	if len(texts) != len(l.Fields) {
		return nil, fmt.Errorf("%w: %d values for %d fields", ErrValueCount, len(texts), len(l.Fields))
	}
	vals := make([]interface{}, len(texts))
	for i, f := range l.Fields {
		v, err := ParseValue(f.Kind, texts[i])
		if err != nil {
			return nil, fmt.Errorf("field %d (%s): %w", i, f, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// FormatValue renders a decoded value. Present strings are quoted, so an absent string and the
// literal text "<absent>" stay distinguishable.
func FormatValue(v interface{}) string {
	switch v := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case format.OptString:
		if !v.Valid {
			return AbsentToken
		}
		return strconv.Quote(v.Value)
	}
	return fmt.Sprint(v)
}
