package primitive

import (
	"fmt"
	"io/fs"
	"regexp"
	"slices"

	"multikey-generator/internal/diagnostic"
)

var tokenPattern = regexp.MustCompile(`\$primitive[A-Za-z]*\$`)

var knownTokens = map[string]bool{
	TokenName:        true,
	TokenWrapper:     true,
	TokenCapitalized: true,
	TokenGoType:      true,
	TokenBits:        true,
}

// Lint checks every template at the root of templates without expanding it.
// Unknown tokens and names that do not vary by kind are errors; templates
// whose contents contain no token at all are reported as warnings.
func Lint(templates fs.FS) (*diagnostic.Diagnostics, error) {
	entries, err := fs.ReadDir(templates, ".")
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}

	res := &diagnostic.Diagnostics{}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			if entry.IsDir() {
				res.AddInfo("subdirectory_ignored", "subdirectories are not expanded", entry.Name())
			}

			continue
		}

		name := entry.Name()

		src, err := fs.ReadFile(templates, name)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}

		lintTokens(res, name, name, "file name")
		lintTokens(res, name, string(src), "contents")

		if !slices.ContainsFunc(tokenPattern.FindAllString(name, -1), func(tok string) bool {
			return knownTokens[tok] && tok != TokenBits
		}) {
			res.AddError("name_without_token", "file name has no kind-specific token, kinds would write the same file", name)
		}

		if !tokenPattern.MatchString(string(src)) {
			res.AddWarning("contents_without_token", "contents have no token, every kind gets an identical copy", name)
		}
	}

	return res, nil
}

func lintTokens(res *diagnostic.Diagnostics, subject, text, where string) {
	for _, tok := range tokenPattern.FindAllString(text, -1) {
		if !knownTokens[tok] {
			res.AddError("unknown_token", fmt.Sprintf("unknown token %s in %s", tok, where), subject)
		}
	}
}
