package braces_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/rosetta/braces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedPattern = "It{{em,alic}iz,erat}e{d,}, please."

// wantNested is the full nested expansion in first-seen order.
var wantNested = []string{
	"Itemized, please.",
	"Itemize, please.",
	"Iterated, please.",
	"Iterate, please.",
	"Italicized, please.",
	"Italicize, please.",
}

// TestExpand_NoBraces verifies a brace-free pattern expands to itself.
func TestExpand_NoBraces(t *testing.T) {
	got, err := braces.Expand("nothing to do")
	assert.NoError(t, err)
	assert.Equal(t, []string{"nothing to do"}, got, "no groups means the input is the sole result")
}

// TestExpand_PathAlternation verifies the two-group glob pattern
// expands to all six combinations, in first-seen order.
func TestExpand_PathAlternation(t *testing.T) {
	got, err := braces.Expand("~/{Downloads,Pictures}/*.{jpg,gif,png}")
	assert.NoError(t, err)

	want := []string{
		"~/Downloads/*.jpg",
		"~/Downloads/*.gif",
		"~/Downloads/*.png",
		"~/Pictures/*.jpg",
		"~/Pictures/*.gif",
		"~/Pictures/*.png",
	}
	assert.Equal(t, want, got)
}

// TestExpand_NestedGroups verifies innermost-first resolution of the
// nested pattern, including the duplicate "Iterate…" branch collapsing.
func TestExpand_NestedGroups(t *testing.T) {
	got, err := braces.Expand(nestedPattern)
	assert.NoError(t, err)
	assert.Equal(t, wantNested, got)
}

// TestExpand_EmptyAlternative verifies {a,} substitutes the empty string.
func TestExpand_EmptyAlternative(t *testing.T) {
	got, err := braces.Expand("file{.bak,}")
	assert.NoError(t, err)
	assert.Equal(t, []string{"file.bak", "file"}, got)
}

// TestExpand_SingleAlternative verifies a comma-less group just drops
// its braces, and that the empty pattern expands to itself.
func TestExpand_SingleAlternative(t *testing.T) {
	got, err := braces.Expand("{solo}")
	assert.NoError(t, err)
	assert.Equal(t, []string{"solo"}, got)

	got, err = braces.Expand("")
	assert.NoError(t, err)
	assert.Equal(t, []string{""}, got)
}

// TestExpand_DuplicatesCollapse verifies redundant alternatives produce
// one result.
func TestExpand_DuplicatesCollapse(t *testing.T) {
	got, err := braces.Expand("x{a,a,a}y")
	assert.NoError(t, err)
	assert.Equal(t, []string{"xay"}, got)
}

// TestExpand_Unbalanced verifies fail-fast rejection of malformed
// patterns in every unbalanced shape.
func TestExpand_Unbalanced(t *testing.T) {
	for _, pattern := range []string{"{a,b", "a}b{", "{{x,y}", "}"} {
		_, err := braces.Expand(pattern)
		assert.ErrorIs(t, err, braces.ErrUnbalanced, "pattern %q must be rejected", pattern)
	}
}

// TestExpand_LimitExceeded verifies the candidate cap: three binary
// groups need eight slots, so a limit of four must trip mid-pass while
// a limit of eight fits exactly.
func TestExpand_LimitExceeded(t *testing.T) {
	const pattern = "{a,b}{c,d}{e,f}"

	_, err := braces.Expand(pattern, braces.WithLimit(4))
	assert.ErrorIs(t, err, braces.ErrExpansionLimit)

	got, err := braces.Expand(pattern, braces.WithLimit(8))
	assert.NoError(t, err, "an exactly-fitting limit must succeed")
	assert.Len(t, got, 8)
}

// TestExpand_OptionViolation verifies a negative limit is surfaced as
// ErrOptionViolation before any expansion work.
func TestExpand_OptionViolation(t *testing.T) {
	_, err := braces.Expand("{a,b}", braces.WithLimit(-1))
	assert.ErrorIs(t, err, braces.ErrOptionViolation)
}

// TestExpand_OnExpandHook verifies the hook observes every rewrite in
// production order.
func TestExpand_OnExpandHook(t *testing.T) {
	var rewrites []string
	_, err := braces.Expand("{a,b}c", braces.WithOnExpand(func(candidate string) {
		rewrites = append(rewrites, candidate)
	}))
	assert.NoError(t, err)
	assert.Equal(t, []string{"ac", "bc"}, rewrites)
}

// TestStrings_Restartable verifies that ranging a Strings sequence
// twice replays identical output, and that breaking out early leaves
// the sequence reusable.
func TestStrings_Restartable(t *testing.T) {
	seq, err := braces.Strings(nestedPattern)
	assert.NoError(t, err)

	var first []string
	for s := range seq {
		first = append(first, s)
	}
	assert.Equal(t, wantNested, first)

	for range seq {
		break // abandoning iteration must not corrupt the sequence
	}

	var second []string
	for s := range seq {
		second = append(second, s)
	}
	assert.Equal(t, first, second, "re-ranging must replay the same expansion")
}

// TestStrings_ValidatesEagerly verifies errors surface from the call,
// never mid-iteration.
func TestStrings_ValidatesEagerly(t *testing.T) {
	_, err := braces.Strings("{open")
	assert.ErrorIs(t, err, braces.ErrUnbalanced)

	_, err = braces.Strings("{a,b}", braces.WithLimit(-5))
	assert.ErrorIs(t, err, braces.ErrOptionViolation)

	_, err = braces.Strings("{a,b}{c,d}", braces.WithLimit(2))
	assert.ErrorIs(t, err, braces.ErrExpansionLimit)
}

// TestFindInnermost_Boundaries white-box checks the group scanner: the
// first '}' pairs with the most recent '{'.
func TestFindInnermost_Boundaries(t *testing.T) {
	start, end, ok := braces.FindInnermost_TestOnly("{a{b,c}d}")
	assert.True(t, ok)
	assert.Equal(t, 2, start, "innermost group opens at the inner brace")
	assert.Equal(t, 6, end)

	start, end, ok = braces.FindInnermost_TestOnly("{x}")
	assert.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	_, _, ok = braces.FindInnermost_TestOnly("plain text")
	assert.False(t, ok)
}

// TestValidate_Boundaries white-box checks the balance pre-pass.
func TestValidate_Boundaries(t *testing.T) {
	assert.NoError(t, braces.Validate_TestOnly("a{b,{c,d}}e"))
	assert.ErrorIs(t, braces.Validate_TestOnly("{{}"), braces.ErrUnbalanced)
	assert.ErrorIs(t, braces.Validate_TestOnly("}{"), braces.ErrUnbalanced)
}

// TestExpand_ConcurrentUse ensures independent expansions share no
// state: many goroutines must all see the identical result.
func TestExpand_ConcurrentUse(t *testing.T) {
	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			got, err := braces.Expand(nestedPattern)
			require.NoError(t, err)
			require.Equal(t, wantNested, got)
		}()
	}
	wg.Wait()
}
