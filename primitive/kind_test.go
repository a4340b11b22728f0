package primitive_test

import (
	"fmt"

	"multikey-generator/primitive"
)

func Example() {
	for _, k := range primitive.Kinds() {
		fmt.Println(k, k.Name(), k.Wrapper(), k.Capitalized(), k.GoType(), k.Bits())
	}

	fmt.Println(primitive.KindEnum(0))
	// Output:
	// KindShort short Short Short int16 16
	// KindInt int Integer Int int32 32
	// KindLong long Long Long int64 64
	// KindFloat float Float Float float32 32
	// KindDouble double Double Double float64 64
	// KindChar char Character Char rune 16
	// KindEnum(0)
}
