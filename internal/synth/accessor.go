package synth

import (
	"fmt"

	"multikey-generator/internal/dimension"
)

// Op identifies an accessor method.
type Op int

const (
	OpGet Op = iota + 1
	OpPut
	OpContainsKey
)

// String returns the generated method name.
func (o Op) String() string {
	switch o {
	case OpGet:
		return "Get"
	case OpPut:
		return "Put"
	case OpContainsKey:
		return "ContainsKey"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// First returns the level 1 fragment of op. It looks up k1 on the receiver
// itself; only Put creates the nested map when it is missing or nil.
func First(s dimension.Spec, op Op) Fragment {
	f := traverse(s, op, 1)
	if op == OpGet {
		f.Lines = append([]string{"var zero V", ""}, f.Lines...)
	}

	return f
}

// Interior returns one fragment per interior level 2..N-1, in ascending
// level order. The result always holds exactly N-2 fragments.
func Interior(s dimension.Spec, op Op) []Fragment {
	levels := s.Interior()
	frags := make([]Fragment, 0, len(levels))

	for _, level := range levels {
		frags = append(frags, traverse(s, op, level))
	}

	return frags
}

// Terminal returns the level N fragment of op, which reads, writes or tests
// kN in the map found at level N-1.
func Terminal(s dimension.Spec, op Op) Fragment {
	n := s.N()
	last := dimension.Map(n - 1)
	key := dimension.Arg(n)

	var lines []string

	switch op {
	case OpGet:
		lines = []string{
			fmt.Sprintf("v, ok := %s[%s]", last, key),
			"return v, ok",
		}
	case OpPut:
		lines = []string{
			fmt.Sprintf("prev, ok := %s[%s]", last, key),
			fmt.Sprintf("%s[%s] = value", last, key),
			"return prev, ok",
		}
	case OpContainsKey:
		lines = []string{
			fmt.Sprintf("_, ok = %s[%s]", last, key),
			"return ok",
		}
	default:
		panic("synth: unknown accessor " + op.String())
	}

	return Fragment{Level: n, Lines: lines}
}

// Accessor returns the full method body of op: the level 1 fragment, the N-2
// interior fragments and the terminal fragment, separated by blank lines.
func Accessor(s dimension.Spec, op Op) string {
	frags := make([]Fragment, 0, s.N())
	frags = append(frags, First(s, op))
	frags = append(frags, Interior(s, op)...)
	frags = append(frags, Terminal(s, op))

	for i := range len(frags) - 1 {
		frags[i].Lines = append(frags[i].Lines, "")
	}

	return Join(frags, 1)
}

// traverse emits the lookup of level on the map found one level up.
func traverse(s dimension.Spec, op Op, level int) Fragment {
	from := parent(level)
	cur := dimension.Map(level)
	key := dimension.Arg(level)

	var lines []string

	switch op {
	case OpGet:
		lines = []string{
			fmt.Sprintf("%s, ok := %s[%s]", cur, from, key),
			"if !ok {",
			"\treturn zero, false",
		}
	case OpPut:
		// a present but nil nested map is created like a missing one
		lines = []string{
			fmt.Sprintf("%s := %s[%s]", cur, from, key),
			fmt.Sprintf("if %s == nil {", cur),
			fmt.Sprintf("\t%s = make(%s)", cur, s.MapType(level+1)),
			fmt.Sprintf("\t%s[%s] = %s", from, key, cur),
		}
	case OpContainsKey:
		lines = []string{
			fmt.Sprintf("%s, ok := %s[%s]", cur, from, key),
			"if !ok {",
			"\treturn false",
		}
	default:
		panic("synth: unknown accessor " + op.String())
	}

	lines = append(lines, "}")

	return Fragment{Level: level, Lines: lines}
}
