package fibonacci

import (
	"math"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
)

// MaxIndex is the largest Fibonacci index the memo can represent exactly.
// F(93) = 12200160415121876738 still fits in a uint64; F(94) does not.
// The decoder rejects larger indices with an EncodingError, since the
// resulting value cannot be a valid code point anyway.
const MaxIndex = 93

// Pair couples a Fibonacci index with an additive offset. The decoder turns
// each pair into one character with code point F(Index) + Offset.
type Pair struct {
	// Index is the Fibonacci index (non-negative).
	Index uint64
	// Offset is added to F(Index); its sign is deliberately unchecked.
	Offset int64
}

// Memo is an explicit, process-lifetime memoization table for the Fibonacci
// sequence. It is a growable array indexed by n, extended monotonically and
// never shrunk. Safe for concurrent use; the sequential orchestrator does not
// need the lock, but nothing stops a caller from sharing one Memo.
type Memo struct {
	mu    sync.Mutex
	table []uint64

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemo creates a Memo seeded with the two base cases F(0)=0 and F(1)=1.
//
// Returns:
//   - *Memo: An initialized memoization table.
func NewMemo() *Memo {
	return &Memo{table: []uint64{0, 1}}
}

// F returns the n-th Fibonacci number, extending the table iteratively when n
// is beyond the cached prefix. Repeated calls with the same n are served from
// the cache and always return the same value.
//
// n must be at most MaxIndex; larger values overflow uint64 and panic rather
// than silently wrap. Callers that take indices from untrusted input must
// validate first (the Decoder does).
//
// Parameters:
//   - n: The Fibonacci index.
//
// Returns:
//   - uint64: The value of F(n).
func (m *Memo) F(n uint64) uint64 {
	if n > MaxIndex {
		panic("fibonacci: index overflows uint64")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if int(n) < len(m.table) {
		m.hits.Add(1)
		return m.table[n]
	}

	m.misses.Add(1)
	for int(n) >= len(m.table) {
		k := len(m.table)
		m.table = append(m.table, m.table[k-1]+m.table[k-2])
	}
	return m.table[n]
}

// Len returns the number of cached values. The table never shrinks, so Len is
// monotonically non-decreasing over the life of the Memo.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.table)
}

// Stats returns the cumulative cache hit and miss counts. A miss covers the
// whole iterative extension triggered by one lookup, not each appended value.
//
// Returns:
//   - uint64: The number of lookups served from the cache.
//   - uint64: The number of lookups that extended the table.
func (m *Memo) Stats() (hits, misses uint64) {
	return m.hits.Load(), m.misses.Load()
}

// Decoder maps ordered sequences of Pairs to characters through a shared
// Memo. The zero value is not usable; construct with NewDecoder.
type Decoder struct {
	memo *Memo
}

// NewDecoder creates a Decoder backed by the given Memo. Passing a shared
// Memo keeps the cache process-wide across decoders.
//
// Parameters:
//   - memo: The memoization table to decode against.
//
// Returns:
//   - *Decoder: The decoder instance.
func NewDecoder(memo *Memo) *Decoder {
	return &Decoder{memo: memo}
}

// Memo returns the memoization table backing this decoder.
func (d *Decoder) Memo() *Memo { return d.memo }

// DecodeOne decodes a single pair to its character.
//
// The offset sign is not validated; if F(index) + offset falls outside the
// valid Unicode range (or lands on a surrogate), DecodeOne fails with an
// EncodingError and produces no character.
//
// Parameters:
//   - p: The (index, offset) pair to decode.
//
// Returns:
//   - rune: The decoded character.
//   - error: An apperrors.EncodingError if the code point is invalid.
func (d *Decoder) DecodeOne(p Pair) (rune, error) {
	if p.Index > MaxIndex {
		// F(index) itself is unrepresentable, so the sum cannot be a
		// valid code point either.
		return 0, apperrors.EncodingError{CodePoint: math.MaxInt64}
	}

	f := d.memo.F(p.Index)
	if f > math.MaxInt64 {
		return 0, apperrors.EncodingError{CodePoint: math.MaxInt64}
	}

	cp := int64(f) + p.Offset
	if p.Offset > 0 && cp < int64(f) {
		// Signed overflow; the true sum is far beyond any code point.
		return 0, apperrors.EncodingError{CodePoint: math.MaxInt64}
	}
	if cp < 0 || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
		return 0, apperrors.EncodingError{CodePoint: cp}
	}
	return rune(cp), nil
}

// Decode decodes an ordered sequence of pairs into a string, one character
// per pair, preserving input order exactly. Decoding stops at the first
// invalid pair and returns its error.
//
// Parameters:
//   - pairs: The ordered (index, offset) pairs to decode.
//
// Returns:
//   - string: The decoded fragment.
//   - error: An apperrors.EncodingError if any pair decodes out of range.
func (d *Decoder) Decode(pairs []Pair) (string, error) {
	runes := make([]rune, 0, len(pairs))
	for _, p := range pairs {
		r, err := d.DecodeOne(p)
		if err != nil {
			return "", err
		}
		runes = append(runes, r)
	}
	return string(runes), nil
}
