package iters

import (
	"math"
	"sort"
	"strings"

	"github.com/arthur-debert/itergen/pkg/errors"
)

// Mode selects how groups of values are drawn from the value list.
type Mode int

const (
	// ModeCombinations draws strictly increasing index groups.
	ModeCombinations Mode = iota
	// ModeCombinationsWithReplacement draws non-decreasing index groups.
	ModeCombinationsWithReplacement
	// ModePermutations draws ordered arrangements of distinct positions.
	ModePermutations
	// ModeProduct draws independent positions with repetition.
	ModeProduct
)

var modeNames = map[Mode]string{
	ModeCombinations:                "combinations",
	ModeCombinationsWithReplacement: "combinations_with_replacement",
	ModePermutations:                "permutations",
	ModeProduct:                     "product",
}

var modeAliases = map[string]Mode{
	"combinations":                  ModeCombinations,
	"comb":                          ModeCombinations,
	"combinations_with_replacement": ModeCombinationsWithReplacement,
	"combinationswr":                ModeCombinationsWithReplacement,
	"cwr":                           ModeCombinationsWithReplacement,
	"permutations":                  ModePermutations,
	"perm":                          ModePermutations,
	"product":                       ModeProduct,
	"prod":                          ModeProduct,
}

// Aliases returns the short names ParseMode accepts for m, sorted.
func Aliases(m Mode) []string {
	var out []string
	for alias, mode := range modeAliases {
		if mode == m && alias != modeNames[m] {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeCombinations, ModeCombinationsWithReplacement, ModePermutations, ModeProduct}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode resolves a mode name. Matching is case-insensitive and accepts
// the short aliases comb, cwr, combinationsWR, perm and prod.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	if m, ok := modeAliases[key]; ok {
		return m, nil
	}
	return 0, errors.Newf(errors.ErrModeUnknown, "unknown iteration mode %q", name).
		WithDetail("mode", name)
}

// Generate enumerates values under mode and joins every group of k values.
// Groups are joined with ", " when comma is set and concatenated otherwise.
// An unknown mode yields nothing.
func Generate(mode Mode, values []string, k int, comma bool) []string {
	switch mode {
	case ModeCombinations:
		return Combinations(values, k, comma)
	case ModeCombinationsWithReplacement:
		return CombinationsWithReplacement(values, k, comma)
	case ModePermutations:
		return Permutations(values, k, comma)
	case ModeProduct:
		return Product(values, k, comma)
	}
	return nil
}

// Combinations returns every strictly increasing index k-subset of values in
// index-lexicographic order. It is empty when k exceeds len(values).
func Combinations(values []string, k int, comma bool) []string {
	n := len(values)
	if k < 0 || k > n {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	out := []string{join(values, idx, comma)}
	for {
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
		out = append(out, join(values, idx, comma))
	}
}

// CombinationsWithReplacement returns every non-decreasing index k-subset of
// values in index-lexicographic order.
func CombinationsWithReplacement(values []string, k int, comma bool) []string {
	n := len(values)
	if k < 0 || (n == 0 && k > 0) {
		return nil
	}

	idx := make([]int, k)
	out := []string{join(values, idx, comma)}
	for {
		i := k - 1
		for i >= 0 && idx[i] == n-1 {
			i--
		}
		if i < 0 {
			return out
		}
		next := idx[i] + 1
		for j := i; j < k; j++ {
			idx[j] = next
		}
		out = append(out, join(values, idx, comma))
	}
}

// Permutations returns every ordered arrangement of k distinct positions in
// index-lexicographic order. It is empty when k exceeds len(values).
func Permutations(values []string, k int, comma bool) []string {
	n := len(values)
	if k < 0 || k > n {
		return nil
	}

	var out []string
	idx := make([]int, 0, k)
	used := make([]bool, n)

	var walk func()
	walk = func() {
		if len(idx) == k {
			out = append(out, join(values, idx, comma))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			idx = append(idx, i)
			walk()
			idx = idx[:len(idx)-1]
			used[i] = false
		}
	}
	walk()

	return out
}

// Product returns every length-k tuple over values in odometer order: the
// rightmost position advances fastest.
func Product(values []string, k int, comma bool) []string {
	n := len(values)
	if k < 0 || (n == 0 && k > 0) {
		return nil
	}

	var out []string
	idx := make([]int, k)
	for {
		out = append(out, join(values, idx, comma))
		i := k - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < n {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// Count returns the number of strings Generate produces for n values and
// group size k without enumerating them. Results too large for an int
// saturate at math.MaxInt.
func Count(mode Mode, n, k int) int {
	if n < 0 || k < 0 {
		return 0
	}
	switch mode {
	case ModeCombinations:
		return binomial(n, k)
	case ModeCombinationsWithReplacement:
		if k == 0 {
			return 1
		}
		if n == 0 {
			return 0
		}
		return binomial(n+k-1, k)
	case ModePermutations:
		if k > n {
			return 0
		}
		total := 1
		for i := n - k + 1; i <= n; i++ {
			total = mulSat(total, i)
		}
		return total
	case ModeProduct:
		total := 1
		for i := 0; i < k; i++ {
			total = mulSat(total, n)
		}
		return total
	}
	return 0
}

func binomial(n, k int) int {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	total := 1
	for i := 1; i <= k; i++ {
		// total*(n-k+i) is divisible by i; dividing out the common factor
		// first keeps the product exact until the result itself overflows.
		g := gcd(total, i)
		total = mulSat(total/g, (n-k+i)/(i/g))
		if total == math.MaxInt {
			return total
		}
	}
	return total
}

func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func join(values []string, idx []int, comma bool) string {
	parts := make([]string, len(idx))
	for i, j := range idx {
		parts[i] = values[j]
	}
	if comma {
		return strings.Join(parts, ", ")
	}
	return strings.Join(parts, "")
}
