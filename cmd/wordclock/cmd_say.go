package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/espeon/wordclock/numtext"
)

type sayResult struct {
	Input int64  `json:"input"`
	Words string `json:"words"`
	Plain bool   `json:"plain"`
}

func newSayCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "say N...",
		Short: "Spell out whole numbers",
		Long: `Prints the English word form of each argument, one per line.
Numbers outside 0-999 are printed as plain numerals unless --strict is set.

Negative numbers must follow "--" so they are not read as flags.

Example:
  wordclock say 42 305 1001
  wordclock say -- -7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]sayResult, 0, len(args))
			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("%q is not a whole number", arg)
				}
				if strict && !numtext.InRange(n) {
					return fmt.Errorf("%d has no word form (valid: 0-999)", n)
				}
				results = append(results, sayResult{
					Input: n,
					Words: numtext.Convert(n),
					Plain: !numtext.InRange(n),
				})
			}

			if a.jsonOut {
				return json.NewEncoder(a.out).Encode(results)
			}
			for _, r := range results {
				if _, err := fmt.Fprintln(a.out, r.Words); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject numbers that have no word form")
	return cmd
}
