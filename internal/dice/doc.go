// Package dice models single dice, pools of dice and the "NdM" notation
// describing them.
//
// # Faces
//
// A die's face type is any integer type, signed or unsigned, including named
// integer types. Named types may implement Roller to change how a face is
// picked, fmt.Stringer to change how it renders, and encoding.TextUnmarshaler
// (on the pointer) to change how notation reads it.
//
// # Limits
//
// A pool holds at most MaxCount dice. NewPool and Parse reject larger counts
// with an invalid count error instead of allocating them.
//
// # Randomness
//
// Rolls draw from a Source. Faces are picked with bounded-range rejection
// sampling, so every face of a die is equally likely whatever its size.
// DefaultSource is seeded from crypto/rand; NewSource gives reproducible rolls.
//
// # Totals
//
// Total saturates at the limits of the face type. CheckedTotal reports the
// overflow instead.
package dice
