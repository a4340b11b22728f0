package gen

import "text/template"

// supportData holds the data for the shared helper file.
type supportData struct {
	PackageName      string
	GenerateComments bool
}

var containerTemplate = template.Must(template.New("container").Parse(`// Code generated by multikey-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"fmt"
	"maps"
)

{{if .GenerateComments}}// {{.TypeName}} is a map keyed by {{.N}} separate key components, backed by a
// chain of nested maps. Reads on a nil {{.TypeName}} behave like reads on a nil
// map; Put on a nil {{.TypeName}} panics.
{{end}}type {{.TypeName}}[{{.TypeParamDecls}}] {{.Underlying}}

{{if .GenerateComments}}// New{{.TypeName}} returns an empty {{.TypeName}}.
{{end}}func New{{.TypeName}}[{{.TypeParamDecls}}]() {{.Self}} {
	return make({{.Self}})
}

{{if .GenerateComments}}// New{{.TypeName}}WithCapacity returns an empty {{.TypeName}} with room for
// capacity first-level keys.
{{end}}func New{{.TypeName}}WithCapacity[{{.TypeParamDecls}}](capacity int) {{.Self}} {
	return make({{.Self}}, capacity)
}

{{if .GenerateComments}}// {{.TypeName}}From returns a {{.TypeName}} holding the mappings of src.
// Nested maps are shared with src; use Clone for an independent copy.
{{end}}func {{.TypeName}}From[{{.TypeParamDecls}}](src {{.Underlying}}) {{.Self}} {
	m := make({{.Self}}, len(src))
	maps.Copy(m, src)

	return m
}

{{if .GenerateComments}}// Clone returns a deep copy of m that shares no nested maps with it.
{{end}}func (m {{.Self}}) Clone() {{.Self}} {
{{.CloneBody}}}

{{if .GenerateComments}}// Get returns the value stored under the key sequence, and whether it was present.
{{end}}func (m {{.Self}}) Get({{.Params}}) (V, bool) {
{{.GetBody}}}

{{if .GenerateComments}}// Put stores value under the key sequence, creating missing or nil nested maps.
// It returns the previous value, and whether there was one.
{{end}}func (m {{.Self}}) Put({{.Params}}, value V) (V, bool) {
{{.PutBody}}}

{{if .GenerateComments}}// ContainsKey reports whether a value is stored under the key sequence.
{{end}}func (m {{.Self}}) ContainsKey({{.Params}}) bool {
{{.ContainsKeyBody}}}

{{if .GenerateComments}}// ContainsAnyValue reports whether any leaf value equals value. Like ==, it
// panics when V is an interface type and a compared value is not comparable.
{{end}}func (m {{.Self}}) ContainsAnyValue(value V) bool {
{{.ContainsAnyValueBody}}}

{{if .GenerateComments}}// ContainsChild reports whether child is one of the first-level nested maps of m.
// It fails with ErrNotNestedMap when child is not a non-nil {{.Child}}.
{{end}}func (m {{.Self}}) ContainsChild(child any) (bool, error) {
{{.ContainsChildBody}}}
`))

var supportTemplate = template.Must(template.New("support").Parse(`// Code generated by multikey-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"errors"
	"reflect"
)

{{if .GenerateComments}}// ErrNotNestedMap is returned by ContainsChild for arguments that are not a
// first-level nested map. Leaf values are looked up with ContainsAnyValue.
{{end}}var ErrNotNestedMap = errors.New("argument is not a nested map, use ContainsAnyValue for leaf values")

func leafContains[K, V comparable](m map[K]V, value V) bool {
	for _, v := range m {
		if v == value {
			return true
		}
	}

	return false
}

func sameMap[M ~map[K]E, K comparable, E any](a, b M) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
`))
