package synth

import (
	"fmt"
	"strings"

	"multikey-generator/internal/dimension"
)

// Ranges returns one range-statement opener per interior level 2..N-1, each
// iterating the values of the map found one level up. When keyed is set the
// level key is bound as well.
func Ranges(s dimension.Spec, keyed bool) []Fragment {
	levels := s.Interior()
	frags := make([]Fragment, 0, len(levels))

	for _, level := range levels {
		frags = append(frags, rangeOver(level, keyed))
	}

	return frags
}

// ContainsAnyValue returns the body testing whether any leaf equals value.
// The outer loop ranges over the receiver, N-2 nested loops descend through
// the interior levels and the innermost statement tests the terminal map.
func ContainsAnyValue(s dimension.Spec) string {
	leaf := Fragment{
		Level: s.N(),
		Lines: []string{
			fmt.Sprintf("if leafContains(%s, value) {", dimension.Map(s.N()-1)),
			"\treturn true",
			"}",
		},
	}

	return nest(s, false, leaf, []string{"return false"})
}

// Clone returns the body of a deep copy: every leaf is walked with its full
// key sequence and stored into a freshly allocated container.
func Clone(s dimension.Spec, typeRef string) string {
	n := s.N()
	leaf := Fragment{
		Level: n,
		Lines: []string{
			fmt.Sprintf("for %s, v := range %s {", dimension.Arg(n), dimension.Map(n-1)),
			fmt.Sprintf("\tout.Put(%s, v)", s.Args()),
			"}",
		},
	}

	head := fmt.Sprintf("\tout := make(%s, len(m))\n", typeRef)

	return head + nest(s, true, leaf, []string{"return out"})
}

// nest wraps leaf in the level 1 range and the interior ranges, then closes
// them in reverse order and appends tail.
func nest(s dimension.Spec, keyed bool, leaf Fragment, tail []string) string {
	opens := append([]Fragment{rangeOver(1, keyed)}, Ranges(s, keyed)...)

	var sb strings.Builder

	for depth, f := range opens {
		sb.WriteString(f.Text(depth + 1))
	}

	sb.WriteString(leaf.Text(len(opens) + 1))

	for depth := len(opens); depth >= 1; depth-- {
		sb.WriteString(strings.Repeat("\t", depth))
		sb.WriteString("}\n")
	}

	sb.WriteString(Fragment{Lines: tail}.Text(1))

	return sb.String()
}

func rangeOver(level int, keyed bool) Fragment {
	key := "_"
	if keyed {
		key = dimension.Arg(level)
	}

	return Fragment{
		Level: level,
		Lines: []string{fmt.Sprintf("for %s, %s := range %s {", key, dimension.Map(level), parent(level))},
	}
}

// ContainsChild returns the body of the direct-child membership check. Only
// non-nil level 1 maps are candidates; anything else, a nil map included, is a
// usage error pointing at ContainsAnyValue.
func ContainsChild(s dimension.Spec) string {
	lines := []string{
		fmt.Sprintf("c, ok := child.(%s)", s.MapType(2)),
		"if !ok || c == nil {",
		"\treturn false, fmt.Errorf(\"%w: got %T\", ErrNotNestedMap, child)",
		"}",
		"",
		"for _, m1 := range m {",
		"\tif sameMap(m1, c) {",
		"\t\treturn true, nil",
		"\t}",
		"}",
		"",
		"return false, nil",
	}

	return Fragment{Level: 1, Lines: lines}.Text(1)
}
