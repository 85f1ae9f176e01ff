// SPDX-License-Identifier: MIT

package braces

// Test bridge: exposes the private scanning helpers to braces_test for
// white-box boundary checks without widening the production API.

// FindInnermost_TestOnly forwards to the private findInnermost scanner.
func FindInnermost_TestOnly(s string) (start, end int, ok bool) {
	return findInnermost(s)
}

// Validate_TestOnly forwards to the private pre-expansion balance check.
func Validate_TestOnly(pattern string) error {
	return validate(pattern)
}
