// Package ranges converts between sorted integer sequences and the
// compact comma/dash range notation ("0-2,5,7-9").
//
// What:
//
//   - Extract encodes a strictly increasing []int as text: every maximal
//     run of consecutive integers spanning at least three values becomes
//     "start-end"; shorter runs are written out as individual integers.
//   - Expand parses the notation back into the full integer sequence,
//     including ranges with negative bounds such as "-8--6".
//
// Why:
//
//   - Display: page selections, ID sets, and port lists read better as
//     "1-5,9" than as nine comma-separated numbers.
//   - Interchange: the notation round-trips, so Expand(Extract(nums))
//     always reproduces nums.
//
// Complexity:
//
//   - Extract: O(n) time over the input, O(1) extra memory beyond output.
//   - Expand:  O(m) time over the expanded length m.
//
// Errors:
//
//   - ErrNotAscending: Extract input is not strictly increasing.
//   - ErrBadRange: Expand input has an unparseable or reversed item.
//
// A two-integer run is never dashed: "1-2" would not be shorter than
// "1,2", and the dash form is reserved for runs that expand to more than
// two values.
package ranges
