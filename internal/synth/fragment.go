package synth

import (
	"strings"

	"multikey-generator/internal/dimension"
)

// Fragment is a piece of generated source implementing one traversal level.
type Fragment struct {
	Level int
	Lines []string
}

// Text joins the fragment lines, indenting each non-empty line by depth tabs.
func (f Fragment) Text(depth int) string {
	var sb strings.Builder

	writeLines(&sb, f.Lines, depth)

	return sb.String()
}

// Join concatenates fragments in order. Callers pass fragments already sorted
// by level.
func Join(frags []Fragment, depth int) string {
	var sb strings.Builder

	for _, f := range frags {
		writeLines(&sb, f.Lines, depth)
	}

	return sb.String()
}

func writeLines(sb *strings.Builder, lines []string, depth int) {
	indent := strings.Repeat("\t", depth)

	for _, line := range lines {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
		}

		sb.WriteString("\n")
	}
}

// parent returns the expression holding the map that level reads from.
func parent(level int) string {
	if level == 1 {
		return "m"
	}

	return dimension.Map(level - 1)
}
