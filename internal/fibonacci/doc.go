// Package fibonacci implements the Fibonacci character decoder: an explicit
// memoization table for the Fibonacci sequence and a decoder that maps ordered
// (index, offset) pairs to characters, where each character's code point is
// F(index) + offset.
//
// The memoization table is owned by whoever constructs it and lives for the
// process lifetime. It only ever grows; a value returned once is never
// recomputed differently.
package fibonacci
