// Package church implements the Church-numeral character encoder: one integer
// code point becomes one character, routed through a unary successor fold and
// a generic single-value pipeline. Functionally this is rune(n); the ceremony
// is the point.
package church

import (
	"unicode/utf8"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
)

// Numeral is a Church numeral: a function that applies a successor function
// n times to a base value. The integer n is recovered by folding with the
// ordinary successor over zero.
type Numeral func(succ func(int) int, zero int) int

// Zero is the Church numeral for 0: it applies the successor no times.
func Zero(_ func(int) int, zero int) int { return zero }

// Succ returns the successor of a Church numeral: one more application.
//
// Parameters:
//   - n: The numeral to increment.
//
// Returns:
//   - Numeral: A numeral applying the successor one additional time.
func Succ(n Numeral) Numeral {
	return func(succ func(int) int, zero int) int {
		return succ(n(succ, zero))
	}
}

// FromInt converts a non-negative integer to its Church numeral by repeated
// application of Succ. Negative input yields Zero; the encoder's range check
// rejects the mismatch downstream.
//
// Parameters:
//   - n: The integer to convert.
//
// Returns:
//   - Numeral: The Church numeral representing n.
func FromInt(n int) Numeral {
	result := Numeral(Zero)
	for i := 0; i < n; i++ {
		result = Succ(result)
	}
	return result
}

// ToInt folds a Church numeral back to an integer with the ordinary
// successor function.
//
// Parameters:
//   - n: The numeral to fold.
//
// Returns:
//   - int: The recovered integer.
func ToInt(n Numeral) int {
	return n(func(x int) int { return x + 1 }, 0)
}

// Pipeline is a generic single-value transform wrapper: a pipeline of one.
// It carries no semantics beyond ordinary function application, preserved
// for the chained-transform flavour of the original design.
type Pipeline[T any] struct {
	value T
}

// NewPipeline wraps a value in a Pipeline.
func NewPipeline[T any](v T) Pipeline[T] {
	return Pipeline[T]{value: v}
}

// Map applies f to the wrapped value and returns the resulting Pipeline.
func (p Pipeline[T]) Map(f func(T) T) Pipeline[T] {
	return Pipeline[T]{value: f(p.value)}
}

// Bind applies a Pipeline-producing function to the wrapped value.
func Bind[T, U any](p Pipeline[T], f func(T) Pipeline[U]) Pipeline[U] {
	return f(p.value)
}

// Unwrap returns the wrapped value.
func (p Pipeline[T]) Unwrap() T {
	return p.value
}

// Encode converts one integer code point to its character by way of a Church
// numeral round trip inside a Pipeline.
//
// Parameters:
//   - n: The code point to encode.
//
// Returns:
//   - rune: The character with code point n.
//   - error: An apperrors.EncodingError if n is not a valid code point.
func Encode(n int) (rune, error) {
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return 0, apperrors.EncodingError{CodePoint: int64(n)}
	}
	cp := NewPipeline(n).
		Map(func(v int) int { return ToInt(FromInt(v)) }).
		Unwrap()
	return rune(cp), nil
}
