// Package numtext converts small non-negative integers to English words.
//
// The package provides conversion in both directions:
//
//   - Convert turns an integer into its English word form.
//   - Plural appends a unit noun, pluralized for anything but one.
//   - Parse turns a word form (or a fallback numeral) back into an integer.
//
// Word forms exist only for 0 through 999. Hyphens join a tens word and a
// ones word ("twenty-one"); a space separates the hundreds word from the
// remainder ("one hundred five"). No "and" is inserted.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values outside 0..999 have no word form. Convert renders them as the
//     plain base-10 numeral ("1001", "-3") instead of failing.
//   - Parse accepts cardinal text only; ordinals return an error.
package numtext

import "fmt"

// Convert returns the English word form of n.
// Zero returns "zero". Values below zero or above 999 return the base-10
// numeral of n unchanged.
func Convert(n int64) string {
	return convert(n)
}

// InRange reports whether n has a word form, i.e. 0 <= n <= 999.
// Callers that must never display digits should clamp or reject values
// for which InRange is false before calling Convert.
func InRange(n int64) bool {
	return n >= 0 && n < maxWord
}

// Plural returns Convert(n) followed by unit, with an "s" appended to unit
// unless n is exactly one: Plural(1, "minute") is "one minute",
// Plural(0, "second") is "zero seconds".
func Plural(n int64, unit string) string {
	return plural(n, unit)
}

// Parse converts English cardinal text produced by Convert back to an integer.
// Input is whitespace-normalized and case-insensitive. Tens and ones may be
// joined by a hyphen or a space ("forty-two", "forty two").
//
// A bare numeral is accepted only outside 0..999, mirroring the fallback of
// Convert, so Parse(Convert(n)) == n for every int64.
//
// Returns an error for empty, unparseable, or malformed input.
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("numtext: empty input")
	}
	return parse(s)
}
