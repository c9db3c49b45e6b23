package ledger

import (
	"encoding/binary"
	"hash/fnv"
	"strings"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
)

// Entry is one block of the chain: a character bound to its position and to
// its predecessor through a deterministic link.
type Entry struct {
	// Position is the zero-based index of the entry in the chain.
	Position int
	// Char is the stored character.
	Char rune
	// Link is computed from (Position, Char, previous link or 0).
	Link uint64
}

// Chain is an ordered sequence of entries, append-only while the fragment is
// being mined and read-only once verification starts. Create one per
// fragment; a Chain is not reused after Extract.
type Chain struct {
	entries []Entry
}

// New creates an empty chain.
//
// Returns:
//   - *Chain: A chain with no entries.
func New() *Chain {
	return &Chain{}
}

// Append mines a new entry for r at the next position, linking it to the
// previous entry. It returns the chain to support chained calls.
//
// Parameters:
//   - r: The character to append.
//
// Returns:
//   - *Chain: The same chain, for chaining.
func (c *Chain) Append(r rune) *Chain {
	var prev uint64
	if n := len(c.entries); n > 0 {
		prev = c.entries[n-1].Link
	}
	position := len(c.entries)
	c.entries = append(c.entries, Entry{
		Position: position,
		Char:     r,
		Link:     computeLink(position, r, prev),
	})
	return c
}

// Len returns the number of entries in the chain.
func (c *Chain) Len() int { return len(c.entries) }

// Extract verifies the chain and flattens it to a string.
//
// It walks the entries in position order; for every entry after the first it
// recomputes the expected link from the previous entry's link and compares it
// to the stored link. A mismatch fails with an IntegrityError and is not
// retried. On success the characters are concatenated in order.
//
// Returns:
//   - string: The concatenated characters.
//   - error: An apperrors.IntegrityError if any link fails validation.
func (c *Chain) Extract() (string, error) {
	var sb strings.Builder
	var prev uint64
	for i, e := range c.entries {
		// prev carries the recomputed chain, not the stored links, so a
		// tampered character anywhere propagates to the next comparison.
		want := computeLink(e.Position, e.Char, prev)
		if i > 0 && e.Link != want {
			return "", apperrors.IntegrityError{Position: e.Position, Want: want, Got: e.Link}
		}
		prev = want
		sb.WriteRune(e.Char)
	}
	return sb.String(), nil
}

// computeLink combines (position, char, previous link) into the entry's link.
// FNV-1a over the fixed-width binary encoding keeps the combine stable and
// order-sensitive across runs and platforms.
func computeLink(position int, r rune, prev uint64) uint64 {
	var buf [20]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(position))
	binary.BigEndian.PutUint32(buf[8:12], uint32(r))
	binary.BigEndian.PutUint64(buf[12:20], prev)

	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}
