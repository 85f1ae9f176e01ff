package ranges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for range encoding and decoding.
var (
	// ErrNotAscending indicates Extract input that is not strictly increasing.
	ErrNotAscending = errors.New("ranges: input must be strictly increasing")

	// ErrBadRange indicates an Expand item that cannot be parsed,
	// or whose bounds are reversed (e.g. "9-3").
	ErrBadRange = errors.New("ranges: malformed range item")
)

const (
	// minRunLength is the smallest consecutive run written in dash form.
	// Two-value runs stay comma-separated: the dash form is reserved for
	// runs that expand to more than two values.
	minRunLength = 3

	itemSep  = ',' // separates items in the encoded text
	boundSep = '-' // separates run bounds inside one item
)

// Extract encodes a strictly increasing integer sequence in range
// notation: maximal consecutive runs of length ≥ 3 become "start-end",
// shorter runs are emitted as individual comma-separated integers.
// An empty input yields an empty string.
// Returns ErrNotAscending if nums is not strictly increasing.
//
// Time: O(n). Memory: O(1) beyond the output buffer.
func Extract(nums []int) (string, error) {
	if len(nums) == 0 {
		return "", nil
	}
	// Validate the precondition up front so emission never sees bad input.
	for i := 1; i < len(nums); i++ {
		if nums[i] <= nums[i-1] {
			return "", fmt.Errorf("%w: nums[%d]=%d follows nums[%d]=%d", ErrNotAscending, i, nums[i], i-1, nums[i-1])
		}
	}

	var sb strings.Builder
	start := 0 // index where the current consecutive run began
	for i := 1; i <= len(nums); i++ {
		// The run continues while each value is exactly one above the last.
		if i < len(nums) && nums[i] == nums[i-1]+1 {
			continue
		}
		writeRun(&sb, nums[start:i])
		start = i
	}

	return sb.String(), nil
}

// writeRun appends one maximal run to sb, choosing dash or plain form
// by the minRunLength rule.
func writeRun(sb *strings.Builder, run []int) {
	if sb.Len() > 0 {
		sb.WriteByte(itemSep)
	}
	if len(run) >= minRunLength {
		sb.WriteString(strconv.Itoa(run[0]))
		sb.WriteByte(boundSep)
		sb.WriteString(strconv.Itoa(run[len(run)-1]))

		return
	}
	for j, v := range run {
		if j > 0 {
			sb.WriteByte(itemSep)
		}
		sb.WriteString(strconv.Itoa(v))
	}
}

// Expand parses range notation back into the full integer sequence.
// Single integers pass through; "lo-hi" items expand inclusively.
// Negative bounds are supported ("-8--6" → -8,-7,-6). An empty string
// yields an empty sequence.
// Returns ErrBadRange for unparseable items or reversed bounds.
//
// Expand does not require the overall result to be ascending; that is
// Extract's contract. Round-trip Expand(Extract(nums)) == nums holds for
// every valid Extract input.
//
// Time: O(m) where m is the expanded length.
func Expand(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	var out []int
	for _, item := range strings.Split(s, string(itemSep)) {
		lo, hi, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		for v := lo; v <= hi; v++ {
			out = append(out, v)
		}
	}

	return out, nil
}

// parseItem decodes one comma-separated item into its inclusive bounds.
// A bare integer yields lo == hi. The bound separator is the first '-'
// that follows a digit, which keeps leading minus signs (and the double
// dash of negative ranges) unambiguous.
func parseItem(item string) (lo, hi int, err error) {
	sep := -1
	for i := 1; i < len(item); i++ {
		if item[i] == boundSep && isDigit(item[i-1]) {
			sep = i

			break
		}
	}

	if sep < 0 {
		v, convErr := strconv.Atoi(item)
		if convErr != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadRange, item)
		}

		return v, v, nil
	}

	lo, loErr := strconv.Atoi(item[:sep])
	hi, hiErr := strconv.Atoi(item[sep+1:])
	if loErr != nil || hiErr != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRange, item)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("%w: %q has reversed bounds", ErrBadRange, item)
	}

	return lo, hi, nil
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
