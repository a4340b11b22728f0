// Package synth synthesizes the method bodies of a generated multi-key container.
//
// Every body is built from level-tagged fragments:
//   - level 1 reads the receiver map directly
//   - levels 2..N-1 (exactly N-2 interior fragments) read the map found one level up
//   - level N reads or writes the leaf value
//
// The accessor synthesizer covers Get, Put and ContainsKey. The iteration
// synthesizer covers ContainsAnyValue and the keyed walk used by Clone.
package synth
