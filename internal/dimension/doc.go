// Package dimension derives the parameter lists shared by every generated
// multi-key container.
//
// A Spec wraps a dimension count N and answers naming questions about it:
//   - type parameter names K1..KN followed by V
//   - argument bindings pairing Ki with the runtime name ki
//   - the nested map type found at each traversal level
//
// Names are positional and never depend on anything but N, so regenerated
// files diff cleanly.
package dimension
