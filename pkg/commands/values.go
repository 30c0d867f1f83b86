package commands

import (
	"fmt"

	"github.com/arthur-debert/itergen/pkg/binding"
	"github.com/arthur-debert/itergen/pkg/iters"
)

// ValuesOptions holds options for the values command
type ValuesOptions struct {
	Mode   string
	Size   int
	Comma  bool
	Values []string
}

// ValuesResult is the enumeration a binding with the same settings produces
type ValuesResult struct {
	Mode   iters.Mode
	Size   int
	Values []string
}

// Values enumerates the joined value groups for the given mode and size.
func Values(opts ValuesOptions) (*ValuesResult, error) {
	mode, err := iters.ParseMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	b, err := binding.New("", opts.Values, mode,
		binding.WithGroupSize(opts.Size), binding.WithCommaFormat(opts.Comma))
	if err != nil {
		return nil, err
	}

	return &ValuesResult{Mode: mode, Size: b.GroupSize(), Values: b.Values()}, nil
}

// ModeInfo describes one iteration mode for display
type ModeInfo struct {
	Name    string
	Aliases []string
	Count   string
	Example string
}

var modeCounts = map[iters.Mode]string{
	iters.ModeCombinations:                "n! / (k! (n-k)!)",
	iters.ModeCombinationsWithReplacement: "(n+k-1)! / (k! (n-1)!)",
	iters.ModePermutations:                "n! / (n-k)!",
	iters.ModeProduct:                     "n^k",
}

// Modes lists every iteration mode with an example over [a b c] and k=2.
func Modes() []ModeInfo {
	sample := []string{"a", "b", "c"}
	out := make([]ModeInfo, 0, len(iters.Modes()))
	for _, m := range iters.Modes() {
		values := iters.Generate(m, sample, 2, false)
		out = append(out, ModeInfo{
			Name:    m.String(),
			Aliases: iters.Aliases(m),
			Count:   modeCounts[m],
			Example: fmt.Sprintf("%v", values),
		})
	}
	return out
}
