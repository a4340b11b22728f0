package primitive

import (
	"fmt"
	"strings"
)

type CategoryEnum int

const (
	CategoryInteger   CategoryEnum = 1 << iota // short, int, long
	CategoryFloat                              // float, double
	CategoryCharacter                          // char

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // no categories selected
)

var categoryNames = map[string]CategoryEnum{
	"integer":   CategoryInteger,
	"float":     CategoryFloat,
	"character": CategoryCharacter,
	"all":       CategoryAll,
}

// Category returns the category a kind belongs to.
func (k KindEnum) Category() CategoryEnum {
	switch {
	case k.IsInteger():
		return CategoryInteger
	case k.IsFloat():
		return CategoryFloat
	case k == KindChar:
		return CategoryCharacter
	default:
		return CategoryNone
	}
}

// Select returns the kinds of the allowed categories in declaration order.
func Select(allowed CategoryEnum) []KindEnum {
	var kinds []KindEnum

	for _, k := range Kinds() {
		if allowed&k.Category() != 0 {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// ParseCategories parses comma separated category names such as
// "integer,float". An empty string selects every category.
func ParseCategories(s string) (CategoryEnum, error) {
	if strings.TrimSpace(s) == "" {
		return CategoryAll, nil
	}

	var res CategoryEnum

	for _, name := range strings.Split(s, ",") {
		c, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return CategoryNone, fmt.Errorf("unknown primitive category %q", name)
		}

		res |= c
	}

	return res, nil
}
