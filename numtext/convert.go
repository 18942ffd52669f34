// Unexported conversion functions for English number-to-text conversion.
package numtext

import (
	"strconv"
	"strings"
)

const growConvert = 32 // longest word form, e.g. "three hundred seventy-three", is 27 bytes

// convert dispatches on the range of n. There is no place-value loop: word
// forms stop at 999 and everything else is the fallback numeral.
func convert(n int64) string {
	switch {
	case n == 0:
		return wordZero
	case n < 0 || n >= maxWord:
		return strconv.FormatInt(n, 10)
	case n < 20:
		return ones[n]
	case n < hundred:
		return tensText(n)
	}

	h := n / hundred
	r := n % hundred
	if r == 0 {
		return hundreds[h]
	}

	var b strings.Builder
	b.Grow(growConvert)
	b.WriteString(hundreds[h])
	b.WriteByte(' ')
	if r < 20 {
		b.WriteString(ones[r])
	} else {
		writeTens(&b, r)
	}
	return b.String()
}

// tensText returns the word form of n in [20, 99].
func tensText(n int64) string {
	o := n % ten
	if o == 0 {
		return tens[n/ten]
	}
	return tens[n/ten] + "-" + ones[o]
}

// writeTens writes the word form of n in [20, 99] into b.
func writeTens(b *strings.Builder, n int64) {
	b.WriteString(tens[n/ten])
	if o := n % ten; o != 0 {
		b.WriteByte('-')
		b.WriteString(ones[o])
	}
}

func plural(n int64, unit string) string {
	words := convert(n)
	if n == 1 {
		return words + " " + unit
	}
	return words + " " + unit + "s"
}
