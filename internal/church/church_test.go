package church

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
)

// TestNumeralRoundTrip verifies ToInt(FromInt(n)) == n for small n.
func TestNumeralRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 32, 33, 100} {
		if got := ToInt(FromInt(n)); got != n {
			t.Errorf("ToInt(FromInt(%d)) = %d, want %d", n, got, n)
		}
	}
}

// TestSucc verifies the successor increments by exactly one application.
func TestSucc(t *testing.T) {
	three := Succ(Succ(Succ(Numeral(Zero))))
	if got := ToInt(three); got != 3 {
		t.Errorf("ToInt(Succ^3(Zero)) = %d, want 3", got)
	}
}

// TestEncode_Space verifies the canonical space encoding used for fragment 2.
func TestEncode_Space(t *testing.T) {
	r, err := Encode(32)
	if err != nil {
		t.Fatalf("Encode(32) returned error: %v", err)
	}
	if r != ' ' {
		t.Errorf("Encode(32) = %q, want space", r)
	}
}

// TestEncode_OutOfRange verifies the EncodingError paths.
func TestEncode_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0x110000, 0xD800} {
		_, err := Encode(n)
		var encErr apperrors.EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("Encode(%d) error = %v, want EncodingError", n, err)
		}
		if encErr.CodePoint != int64(n) {
			t.Errorf("Encode(%d) reported code point %d", n, encErr.CodePoint)
		}
	}
}

// TestPipeline verifies Map, Bind, and Unwrap on the generic wrapper.
func TestPipeline(t *testing.T) {
	t.Run("Map chains transforms in order", func(t *testing.T) {
		got := NewPipeline(2).
			Map(func(v int) int { return v * 10 }).
			Map(func(v int) int { return v + 1 }).
			Unwrap()
		if got != 21 {
			t.Errorf("pipeline result = %d, want 21", got)
		}
	})

	t.Run("Bind crosses types", func(t *testing.T) {
		p := Bind(NewPipeline(33), func(v int) Pipeline[string] {
			return NewPipeline(strings.Repeat("!", v/33))
		})
		if p.Unwrap() != "!" {
			t.Errorf("Bind result = %q, want %q", p.Unwrap(), "!")
		}
	})
}
