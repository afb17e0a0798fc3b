// Package textutil provides character-boundary-safe string operations.
//
// All offsets produced by this package are character (rune) offsets, never
// byte offsets, and every slicing operation is guaranteed to land on a rune
// boundary. The rest of the engine builds on these guarantees: a position
// computed here can always be handed to an editor view without producing
// invalid text.
package textutil
