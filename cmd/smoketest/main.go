// Command smoketest sweeps a range of integers through numtext and reports
// every value that breaks the word-form or fallback rules.
//
//	go run ./cmd/smoketest -from -100000 -to 100000
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/espeon/wordclock/numtext"
)

const (
	defaultFrom  = -10_000
	defaultTo    = 100_000
	maxWorkers   = 4
	maxPrinted   = 20
	defaultChunk = 4096
)

// violation is one value that failed a check.
type violation struct {
	n     int64
	check string
	got   string
}

// Stats aggregates results from all workers.
type Stats struct {
	mu         sync.Mutex
	checked    int64
	wordForms  int64
	fallbacks  int64
	longest    string
	violations []violation
}

func main() {
	from := flag.Int64("from", defaultFrom, "first value to check (inclusive)")
	to := flag.Int64("to", defaultTo, "last value to check (inclusive)")
	workers := flag.Int("workers", maxWorkers, "concurrent workers")
	flag.Parse()

	if *to < *from {
		fmt.Fprintf(os.Stderr, "Usage: %s -from N -to M (N <= M)\n", os.Args[0])
		os.Exit(1)
	}

	stats := &Stats{}
	start := time.Now()

	if err := sweep(context.Background(), *from, *to, max(*workers, 1), stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if len(stats.violations) > 0 {
		os.Exit(1)
	}
}

// sweep checks [from, to] in chunks spread across workers.
func sweep(ctx context.Context, from, to int64, workers int, stats *Stats) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := from; lo <= to; lo += defaultChunk {
		hi := to
		if uint64(to)-uint64(lo) >= defaultChunk {
			hi = lo + defaultChunk - 1
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			checkChunk(lo, hi, stats)
			return nil
		})
		if hi == to {
			break
		}
	}

	return g.Wait()
}

func checkChunk(lo, hi int64, stats *Stats) {
	var (
		local     []violation
		words     int64
		fallbacks int64
		longest   string
	)

	for n := lo; ; n++ {
		got := numtext.Convert(n)
		if numtext.InRange(n) {
			words++
			if strings.ContainsAny(got, "0123456789") {
				local = append(local, violation{n, "digit in word form", got})
			}
			if len(got) > len(longest) {
				longest = got
			}
		} else {
			fallbacks++
			if want := strconv.FormatInt(n, 10); got != want {
				local = append(local, violation{n, "fallback mismatch", got})
			}
		}

		parsed, err := numtext.Parse(got)
		if err != nil || parsed != n {
			local = append(local, violation{n, "round trip", got})
		}

		if n == hi {
			break
		}
	}

	stats.mu.Lock()
	defer stats.mu.Unlock()
	stats.checked += hi - lo + 1
	stats.wordForms += words
	stats.fallbacks += fallbacks
	if len(longest) > len(stats.longest) {
		stats.longest = longest
	}
	stats.violations = append(stats.violations, local...)
}

func printStats(stats *Stats) {
	fmt.Printf("Values checked:          %d\n", stats.checked)
	fmt.Printf("Word forms:              %d\n", stats.wordForms)
	fmt.Printf("Fallback numerals:       %d\n", stats.fallbacks)
	fmt.Printf("Longest word form:       %q (%d bytes)\n", stats.longest, len(stats.longest))
	fmt.Printf("Violations:              %d\n", len(stats.violations))

	sort.Slice(stats.violations, func(i, j int) bool {
		return stats.violations[i].n < stats.violations[j].n
	})
	for i, v := range stats.violations {
		if i == maxPrinted {
			fmt.Printf("  ... %d more\n", len(stats.violations)-maxPrinted)
			break
		}
		fmt.Printf("  %d: %s (got %q)\n", v.n, v.check, v.got)
	}
}
