package dimension

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"multikey-generator/utils"
)

// MinDimension is the smallest dimension count with at least one interior level.
const MinDimension = 3

// ErrInvalidDimension is returned for dimension counts the generator cannot emit.
var ErrInvalidDimension = errors.New("invalid dimension")

// Spec describes a single dimension count.
type Spec struct {
	n int
}

// New validates n and returns its Spec.
func New(n int) (Spec, error) {
	if n < MinDimension {
		return Spec{}, fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidDimension, n, MinDimension)
	}

	return Spec{n: n}, nil
}

// Range validates an inclusive range of dimension counts and returns a Spec
// for every count in ascending order.
func Range(from, to int) ([]Spec, error) {
	if from > to {
		return nil, fmt.Errorf("%w: empty range %d..%d", ErrInvalidDimension, from, to)
	}

	specs := make([]Spec, 0, to-from+1)

	for n := from; n <= to; n++ {
		s, err := New(n)
		if err != nil {
			return nil, err
		}

		specs = append(specs, s)
	}

	return specs, nil
}

// N returns the dimension count.
func (s Spec) N() int { return s.n }

// Key returns the type parameter name for level i, e.g. "K3".
func Key(i int) string { return "K" + strconv.Itoa(i) }

// Arg returns the runtime argument name for level i, e.g. "k3".
func Arg(i int) string { return "k" + strconv.Itoa(i) }

// Map returns the local variable name holding the map found at level i, e.g. "m3".
func Map(i int) string { return "m" + strconv.Itoa(i) }

// TypeName returns the generated container name, e.g. "Map7D".
func (s Spec) TypeName() string { return "Map" + strconv.Itoa(s.n) + "D" }

// Filename returns the output file name, e.g. "map7d.go".
func (s Spec) Filename() string { return "map" + strconv.Itoa(s.n) + "d.go" }

// TypeParams returns the type parameter use list "K1, K2, ..., KN, V".
func (s Spec) TypeParams() string {
	names := make([]string, 0, s.n+1)
	for i := 1; i <= s.n; i++ {
		names = append(names, Key(i))
	}

	names = append(names, "V")

	return strings.Join(names, ", ")
}

// TypeParamDecls returns the type parameter declaration list
// "K1, K2, ..., KN comparable, V comparable".
func (s Spec) TypeParamDecls() string {
	names := make([]string, 0, s.n)
	for i := 1; i <= s.n; i++ {
		names = append(names, Key(i))
	}

	return strings.Join(names, ", ") + " comparable, V comparable"
}

// Params returns the argument bindings "k1 K1, k2 K2, ..., kN KN".
func (s Spec) Params() string {
	bindings := make([]string, 0, s.n)
	for i := 1; i <= s.n; i++ {
		bindings = append(bindings, Arg(i)+" "+Key(i))
	}

	return strings.Join(bindings, ", ")
}

// Args returns the argument names "k1, k2, ..., kN".
func (s Spec) Args() string {
	names := make([]string, 0, s.n)
	for i := 1; i <= s.n; i++ {
		names = append(names, Arg(i))
	}

	return strings.Join(names, ", ")
}

// MapType returns the Go type of the map keyed by level, i.e.
// "map[K{level}]map[...]map[KN]V". MapType(1) is the underlying type of the
// whole container. Levels outside 1..N panic.
func (s Spec) MapType(level int) string {
	if !utils.IsInRange(1, level, s.n) {
		panic(fmt.Sprintf("dimension: level %d out of range 1..%d", level, s.n))
	}

	var sb strings.Builder

	for i := level; i <= s.n; i++ {
		sb.WriteString("map[")
		sb.WriteString(Key(i))
		sb.WriteString("]")
	}

	sb.WriteString("V")

	return sb.String()
}

// Interior returns the interior levels 2..N-1 in ascending order.
func (s Spec) Interior() []int {
	levels := make([]int, 0, s.n-2)
	for i := 2; i < s.n; i++ {
		levels = append(levels, i)
	}

	return levels
}
