// Package layout drives the osu! format codec from a flat list of typed fields.
//
// A layout such as "mode:byte,version:int,player:string" names the primitives of a record in
// wire order. Decode reads them from a format.Reader, Encode writes them to a format.Writer.
// A layout describes order and kind only; it does not validate values.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rony4d/go-osu-format/format"
)

var (
	ErrUnknownKind   = errors.New("layout: unknown kind")
	ErrEmptyLayout   = errors.New("layout: no fields")
	ErrValueCount    = errors.New("layout: value count does not match field count")
	ErrValueMismatch = errors.New("layout: value does not match field kind")
	ErrUnknownPreset = errors.New("layout: unknown preset")
)

// Field is a named primitive.
type Field struct {
	Name string
	Kind Kind
}

func (f Field) String() string {
	if f.Name == "" {
		return f.Kind.String()
	}
	return f.Name + ":" + f.Kind.String()
}

// Layout is an ordered list of fields.
type Layout struct {
	Name   string
	Fields []Field
}

// String returns the layout in the form accepted by Parse.
func (l Layout) String() string {
	parts := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}

// Parse reads a comma-separated field list. Each entry is "kind" or "name:kind".
func Parse(spec string) (Layout, error) {
	var l Layout
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		var f Field
		kind := entry
		if i := strings.LastIndex(entry, ":"); i >= 0 {
			f.Name = strings.TrimSpace(entry[:i])
			kind = entry[i+1:]
		}
		k, err := ParseKind(kind)
		if err != nil {
			return Layout{}, fmt.Errorf("field %d: %w", len(l.Fields), err)
		}
		f.Kind = k
		l.Fields = append(l.Fields, f)
	}
	if len(l.Fields) == 0 {
		return Layout{}, ErrEmptyLayout
	}
	return l, nil
}

// Value is one decoded field.
type Value struct {
	Index  int
	Field  Field
	Offset int // byte offset of the field in the input
	V      interface{}
}

// FieldError reports which field of a layout failed to decode.
type FieldError struct {
	Index  int
	Field  Field
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %d (%s) at offset %d: %v", e.Index, e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Decode reads every field of l from r. On failure it returns the fields decoded so far and a
// *FieldError wrapping the codec error; the reader is left at the start of the failed field.
func Decode(r *format.Reader, l Layout) ([]Value, error) {
	vals := make([]Value, 0, len(l.Fields))
	for i, f := range l.Fields {
		off := r.Position()
		v, err := readField(r, f.Kind)
		if err != nil {
			return vals, &FieldError{Index: i, Field: f, Offset: off, Err: err}
		}
		vals = append(vals, Value{Index: i, Field: f, Offset: off, V: v})
	}
	return vals, nil
}

func readField(r *format.Reader, k Kind) (interface{}, error) {
	switch k {
	case KindByte:
		return r.ReadByte()
	case KindShort:
		return r.ReadShort()
	case KindInt:
		return r.ReadInt()
	case KindLong:
		return r.ReadLong()
	case KindSingle:
		return r.ReadSingle()
	case KindDouble:
		return r.ReadDouble()
	case KindBoolean:
		return r.ReadBoolean()
	case KindULEB:
		return r.ReadULEB()
	case KindString:
		return r.ReadString()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
}

// Encode writes vals to w following l. All values are checked before anything is written, so a
// mismatch leaves w untouched.
func Encode(w *format.Writer, l Layout, vals []interface{}) error {
	if len(vals) != len(l.Fields) {
		return fmt.Errorf("%w: %d values for %d fields", ErrValueCount, len(vals), len(l.Fields))
	}
	for i, f := range l.Fields {
		if !matches(f.Kind, vals[i]) {
			return fmt.Errorf("field %d (%s): %w: got %T", i, f, ErrValueMismatch, vals[i])
		}
	}
	for i, f := range l.Fields {
		writeField(w, f.Kind, vals[i])
	}
	return nil
}

func matches(k Kind, v interface{}) bool {
	switch v.(type) {
	case uint8:
		return k == KindByte
	case uint16:
		return k == KindShort
	case uint32:
		return k == KindInt
	case uint64:
		return k == KindLong || k == KindULEB
	case float32:
		return k == KindSingle
	case float64:
		return k == KindDouble
	case bool:
		return k == KindBoolean
	case format.OptString:
		return k == KindString
	}
	return false
}

func writeField(w *format.Writer, k Kind, v interface{}) {
	switch k {
	case KindByte:
		w.WriteByte(v.(uint8))
	case KindShort:
		w.WriteShort(v.(uint16))
	case KindInt:
		w.WriteInt(v.(uint32))
	case KindLong:
		w.WriteLong(v.(uint64))
	case KindSingle:
		w.WriteSingle(v.(float32))
	case KindDouble:
		w.WriteDouble(v.(float64))
	case KindBoolean:
		w.WriteBoolean(v.(bool))
	case KindULEB:
		w.WriteULEB(v.(uint64))
	case KindString:
		w.WriteString(v.(format.OptString))
	}
}
