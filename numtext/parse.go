// Text-to-number parsing for English cardinal text.
package numtext

import (
	"fmt"
	"strconv"
	"strings"
)

// wordValues maps each English cardinal word to its numeric value.
// Built at package level to avoid repeated allocation on every parse call.
var wordValues = func() map[string]int64 {
	m := make(map[string]int64, len(ones)+len(tens))
	for i, w := range ones {
		m[w] = int64(i)
	}
	for i, w := range tens {
		if w != "" {
			m[w] = int64(i) * ten
		}
	}
	m[wordHundred] = hundred
	return m
}()

// parse converts English cardinal text (or a fallback numeral) to int64.
//
// Accepted grammar, after lowercasing and splitting hyphenated pairs:
//
//	zero
//	[digit "hundred"] (teen-or-ones | tens [ones])
//	digit "hundred"
func parse(s string) (int64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	fields := strings.Fields(s)

	if len(fields) == 0 {
		return 0, fmt.Errorf("numtext: empty input")
	}

	if len(fields) == 1 && isNumeral(fields[0]) {
		return parseNumeral(fields[0])
	}

	tokens, err := splitHyphens(fields)
	if err != nil {
		return 0, err
	}

	vals := make([]int64, len(tokens))
	for i, tok := range tokens {
		v, ok := wordValues[tok]
		if !ok {
			return 0, fmt.Errorf("numtext: unknown word %q", tok)
		}
		vals[i] = v
	}

	if len(vals) == 1 && vals[0] == 0 {
		return 0, nil
	}

	var total int64
	rest := vals
	if len(vals) >= 2 && vals[1] == hundred {
		if vals[0] < 1 || vals[0] > 9 {
			return 0, fmt.Errorf("numtext: %q cannot multiply %s", tokens[0], wordHundred)
		}
		total = vals[0] * hundred
		rest = vals[2:]
	}

	for _, v := range rest {
		if v == 0 {
			return 0, fmt.Errorf("numtext: unexpected %s in compound", wordZero)
		}
		if v == hundred {
			return 0, fmt.Errorf("numtext: misplaced %s", wordHundred)
		}
	}

	switch len(rest) {
	case 0:
		// "<digit> hundred" on its own.
	case 1:
		total += rest[0]
	case 2:
		if !isTens(rest[0]) || rest[1] >= ten {
			return 0, fmt.Errorf("numtext: malformed tens in %q", s)
		}
		total += rest[0] + rest[1]
	default:
		return 0, fmt.Errorf("numtext: too many words in %q", s)
	}

	return total, nil
}

// splitHyphens expands "forty-two" into "forty", "two". A hyphen is only
// valid between a tens word and a non-zero ones digit.
func splitHyphens(fields []string) ([]string, error) {
	out := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		left, right, ok := strings.Cut(f, "-")
		if !ok {
			out = append(out, f)
			continue
		}
		lv, lok := wordValues[left]
		rv, rok := wordValues[right]
		if !lok || !rok || !isTens(lv) || rv < 1 || rv >= ten {
			return nil, fmt.Errorf("numtext: malformed hyphenation %q", f)
		}
		out = append(out, left, right)
	}
	return out, nil
}

// isTens reports whether v is one of twenty, thirty, ..., ninety.
func isTens(v int64) bool {
	return v >= 20 && v < hundred && v%ten == 0
}

// isNumeral reports whether s looks like a signed base-10 integer.
func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseNumeral accepts the fallback form Convert produces outside 0..999.
func parseNumeral(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("numtext: numeral %q: %w", s, err)
	}
	if InRange(n) {
		return 0, fmt.Errorf("numtext: numeral %q has a word form", s)
	}
	return n, nil
}
