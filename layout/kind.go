package layout

import (
	"fmt"
	"strings"
)

// Kind is one primitive of the osu! binary format.
type Kind uint8

const (
	KindByte Kind = iota + 1
	KindShort
	KindInt
	KindLong
	KindSingle
	KindDouble
	KindBoolean
	KindULEB
	KindString
)

var kindNames = map[Kind]string{
	KindByte:    "byte",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindSingle:  "single",
	KindDouble:  "double",
	KindBoolean: "boolean",
	KindULEB:    "uleb",
	KindString:  "string",
}

// aliases accepted by ParseKind in addition to the canonical names.
var kindAliases = map[string]Kind{
	"u8":   KindByte,
	"u16":  KindShort,
	"u32":  KindInt,
	"u64":  KindLong,
	"f32":  KindSingle,
	"f64":  KindDouble,
	"bool": KindBoolean,
	"str":  KindString,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a kind name (case-insensitive) or one of its short aliases.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
