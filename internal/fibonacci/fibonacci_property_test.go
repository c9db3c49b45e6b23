package fibonacci

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRecurrenceRelation_PropertyBased verifies the defining recurrence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 2
//
// against randomly chosen indices within the representable range.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	memo := NewMemo()
	properties.Property("memo satisfies F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n uint64) bool {
			return memo.F(n) == memo.F(n-1)+memo.F(n-2)
		},
		gen.UInt64Range(2, MaxIndex),
	))

	properties.TestingRun(t)
}

// TestMemoization_PropertyBased verifies that a fresh memo and a warmed memo
// agree on every index, i.e. caching accelerates but never changes results.
func TestMemoization_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	warmed := NewMemo()
	warmed.F(MaxIndex) // fully extended up front

	properties.Property("warmed and cold memos agree", prop.ForAll(
		func(n uint64) bool {
			cold := NewMemo()
			return cold.F(n) == warmed.F(n)
		},
		gen.UInt64Range(0, MaxIndex),
	))

	properties.TestingRun(t)
}

// TestDecodeRoundTrip_PropertyBased verifies that for any printable ASCII
// target and any index, the pair (index, target-F(index)) decodes back to the
// target. This is exactly how the program's constants were produced.
func TestDecodeRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	decoder := NewDecoder(NewMemo())
	properties.Property("offset construction round-trips", prop.ForAll(
		func(n uint64, target int64) bool {
			f := decoder.Memo().F(n)
			r, err := decoder.DecodeOne(Pair{Index: n, Offset: target - int64(f)})
			return err == nil && int64(r) == target
		},
		gen.UInt64Range(0, 40),
		gen.Int64Range(32, 126),
	))

	properties.TestingRun(t)
}
