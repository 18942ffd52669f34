// Word tables for English number-to-text conversion.
package numtext

const (
	maxWord int64 = 1000
	hundred int64 = 100
	ten     int64 = 10

	wordZero    = "zero"
	wordHundred = "hundred"
)

// ones covers 0–19 directly; the teens do not decompose into tens+ones.
var ones = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// hundreds is indexed by hundreds digit (1–9); index 0 is unused.
// Entries are precomposed so conversion never builds "X hundred" at runtime.
var hundreds = [10]string{
	"",
	"one hundred",
	"two hundred",
	"three hundred",
	"four hundred",
	"five hundred",
	"six hundred",
	"seven hundred",
	"eight hundred",
	"nine hundred",
}
