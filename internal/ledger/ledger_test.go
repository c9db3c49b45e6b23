package ledger

import (
	"errors"
	"testing"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
)

// mineWorld appends the canonical "World" code points to a fresh chain.
func mineWorld() *Chain {
	c := New()
	for _, cp := range []rune{87, 111, 114, 108, 100} {
		c.Append(cp)
	}
	return c
}

// TestChain_AppendExtract verifies the canonical mine-and-extract round trip.
func TestChain_AppendExtract(t *testing.T) {
	c := mineWorld()
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}

	got, err := c.Extract()
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "World" {
		t.Errorf("Extract = %q, want %q", got, "World")
	}
}

// TestChain_AppendChaining verifies Append supports chained calls.
func TestChain_AppendChaining(t *testing.T) {
	got, err := New().Append('H').Append('i').Extract()
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "Hi" {
		t.Errorf("Extract = %q, want %q", got, "Hi")
	}
}

// TestChain_EmptyExtract verifies an empty chain extracts to the empty string.
func TestChain_EmptyExtract(t *testing.T) {
	got, err := New().Extract()
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != "" {
		t.Errorf("Extract = %q, want empty string", got)
	}
}

// TestChain_TamperDetection verifies that mutating any stored character
// between Append and Extract fails with an IntegrityError.
func TestChain_TamperDetection(t *testing.T) {
	for position := 0; position < 5; position++ {
		t.Run("", func(t *testing.T) {
			c := mineWorld()
			c.entries[position].Char = 'X'

			_, err := c.Extract()
			var intErr apperrors.IntegrityError
			if !errors.As(err, &intErr) {
				t.Fatalf("tampering position %d: Extract error = %v, want IntegrityError", position, err)
			}
		})
	}
}

// TestChain_TamperedLink verifies a corrupted stored link is also detected.
func TestChain_TamperedLink(t *testing.T) {
	c := mineWorld()
	c.entries[2].Link ^= 1

	_, err := c.Extract()
	var intErr apperrors.IntegrityError
	if !errors.As(err, &intErr) {
		t.Fatalf("Extract error = %v, want IntegrityError", err)
	}
	if intErr.Position != 2 {
		t.Errorf("IntegrityError.Position = %d, want 2", intErr.Position)
	}
}

// TestComputeLink_OrderSensitive verifies the combine function distinguishes
// position, character, and predecessor.
func TestComputeLink_OrderSensitive(t *testing.T) {
	base := computeLink(1, 'a', 42)
	if computeLink(2, 'a', 42) == base {
		t.Error("link should depend on position")
	}
	if computeLink(1, 'b', 42) == base {
		t.Error("link should depend on character")
	}
	if computeLink(1, 'a', 43) == base {
		t.Error("link should depend on previous link")
	}
	if computeLink(1, 'a', 42) != base {
		t.Error("link must be deterministic")
	}
}
