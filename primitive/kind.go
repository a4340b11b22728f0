package primitive

import "strings"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindChar

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// byte and boolean have no kind.

// Kinds returns every supported kind in declaration order.
func Kinds() []KindEnum {
	kinds := make([]KindEnum, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// Name returns the bare primitive name, e.g. "int".
func (k KindEnum) Name() string {
	switch k {
	default:
		panic("unsupported primitive kind: " + k.String())
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindChar:
		return "char"
	}
}

// Wrapper returns the boxed wrapper name, e.g. "Integer".
func (k KindEnum) Wrapper() string {
	switch k {
	case KindInt:
		return "Integer"
	case KindChar:
		return "Character"
	default:
		return k.Capitalized()
	}
}

// Capitalized returns the capitalized name used in identifiers, e.g. "Int".
func (k KindEnum) Capitalized() string {
	name := k.Name()

	return strings.ToUpper(name[:1]) + name[1:]
}

// GoType returns the Go type of the same width, e.g. "int32".
func (k KindEnum) GoType() string {
	switch k {
	default:
		panic("unsupported primitive kind: " + k.String())
	case KindShort:
		return "int16"
	case KindInt:
		return "int32"
	case KindLong:
		return "int64"
	case KindFloat:
		return "float32"
	case KindDouble:
		return "float64"
	case KindChar:
		return "rune"
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindShort, KindInt, KindLong:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble:
		return true
	}
}

// Bits returns the width of the kind in bits.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("unsupported primitive kind: " + k.String())
	case KindShort, KindChar:
		return 16
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	}
}
