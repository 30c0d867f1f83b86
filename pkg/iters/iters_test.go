package iters

import (
	"math"
	"strconv"
	"testing"

	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		values []string
		k      int
		comma  bool
		want   []string
	}{
		// combinations
		{"comb_1_value_k1", ModeCombinations, []string{"b"}, 1, false, []string{"b"}},
		{"comb_1_value_k2", ModeCombinations, []string{"b"}, 2, false, nil},
		{"comb_2_values_k1", ModeCombinations, []string{"a", "b"}, 1, false, []string{"a", "b"}},
		{"comb_2_values_k2", ModeCombinations, []string{"a", "b"}, 2, false, []string{"ab"}},
		{"comb_3_values_k2", ModeCombinations, []string{"a", "b", "c"}, 2, false, []string{"ab", "ac", "bc"}},
		{"comb_3_values_k2_comma", ModeCombinations, []string{"a", "b", "c"}, 2, true, []string{"a, b", "a, c", "b, c"}},
		{"comb_duplicates_are_positional", ModeCombinations, []string{"=", "=", "="}, 1, false, []string{"=", "=", "="}},

		// combinations with replacement
		{"cwr_1_value_k1", ModeCombinationsWithReplacement, []string{"b"}, 1, false, []string{"b"}},
		{"cwr_1_value_k2", ModeCombinationsWithReplacement, []string{"b"}, 2, false, []string{"bb"}},
		{"cwr_2_values_k2", ModeCombinationsWithReplacement, []string{"a", "b"}, 2, false, []string{"aa", "ab", "bb"}},
		{"cwr_3_values_k2", ModeCombinationsWithReplacement, []string{"a", "b", "c"}, 2, false,
			[]string{"aa", "ab", "ac", "bb", "bc", "cc"}},
		{"cwr_2_values_k2_comma", ModeCombinationsWithReplacement, []string{"a", "b"}, 2, true,
			[]string{"a, a", "a, b", "b, b"}},

		// permutations
		{"perm_1_value_k2", ModePermutations, []string{"b"}, 2, false, nil},
		{"perm_2_values_k1", ModePermutations, []string{"a", "b"}, 1, false, []string{"a", "b"}},
		{"perm_2_values_k2", ModePermutations, []string{"b", "c"}, 2, false, []string{"bc", "cb"}},
		{"perm_3_values_k2", ModePermutations, []string{"a", "b", "c"}, 2, false,
			[]string{"ab", "ac", "ba", "bc", "ca", "cb"}},
		{"perm_values_with_spaces", ModePermutations, []string{"1 2", "3"}, 2, false, []string{"1 23", "31 2"}},

		// product
		{"prod_1_value_k2", ModeProduct, []string{"b"}, 2, false, []string{"bb"}},
		{"prod_2_values_k2", ModeProduct, []string{"x", "y"}, 2, false, []string{"xx", "xy", "yx", "yy"}},
		{"prod_3_values_k2", ModeProduct, []string{"a", "b", "c"}, 2, false,
			[]string{"aa", "ab", "ac", "ba", "bb", "bc", "ca", "cb", "cc"}},
		{"prod_single_value_k3", ModeProduct, []string{"xyzw"}, 3, false, []string{"xyzwxyzwxyzw"}},
		{"prod_2_values_k2_comma", ModeProduct, []string{"a", "b"}, 2, true,
			[]string{"a, a", "a, b", "b, a", "b, b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.mode, tt.values, tt.k, tt.comma)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCounts(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e"}
	for _, mode := range Modes() {
		for n := 1; n <= len(values); n++ {
			for k := 1; k <= n+1; k++ {
				got := Generate(mode, values[:n], k, false)
				assert.Len(t, got, Count(mode, n, k), "mode=%s n=%d k=%d", mode, n, k)
			}
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		mode Mode
		n, k int
		want int
	}{
		{ModeCombinations, 5, 2, 10},
		{ModeCombinations, 2, 3, 0},
		{ModeCombinationsWithReplacement, 3, 2, 6},
		{ModeCombinationsWithReplacement, 1, 4, 1},
		{ModePermutations, 4, 2, 12},
		{ModePermutations, 3, 3, 6},
		{ModePermutations, 2, 3, 0},
		{ModeProduct, 3, 2, 9},
		{ModeProduct, 2, 4, 16},
		{ModeProduct, 2, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.mode, tt.n, tt.k), "mode=%s n=%d k=%d", tt.mode, tt.n, tt.k)
	}
}

func TestCountSaturates(t *testing.T) {
	if strconv.IntSize != 64 {
		t.Skip("expected values assume 64-bit int")
	}

	tests := []struct {
		mode Mode
		n, k int
		want int
	}{
		{ModeProduct, 10, 18, 1000000000000000000},
		{ModeProduct, 10, 20, math.MaxInt},
		{ModePermutations, 20, 20, 2432902008176640000},
		{ModePermutations, 30, 30, math.MaxInt},
		{ModeCombinations, 66, 33, 7219428434016265740},
		{ModeCombinations, 67, 33, math.MaxInt},
		{ModeCombinations, 100, 50, math.MaxInt},
		{ModeCombinationsWithReplacement, 40, 40, math.MaxInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.mode, tt.n, tt.k), "mode=%s n=%d k=%d", tt.mode, tt.n, tt.k)
	}
}

func TestNeverEmptyWithReplacement(t *testing.T) {
	for _, mode := range []Mode{ModeCombinationsWithReplacement, ModeProduct} {
		for k := 1; k <= 4; k++ {
			assert.NotEmpty(t, Generate(mode, []string{"v"}, k, false), "mode=%s k=%d", mode, k)
		}
	}
}

func TestZeroGroupSize(t *testing.T) {
	for _, mode := range Modes() {
		assert.Equal(t, []string{""}, Generate(mode, []string{"a", "b"}, 0, false), "mode=%s", mode)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"combinations", ModeCombinations},
		{"Combinations", ModeCombinations},
		{"combinationsWR", ModeCombinationsWithReplacement},
		{"combinations-with-replacement", ModeCombinationsWithReplacement},
		{"cwr", ModeCombinationsWithReplacement},
		{"permutations", ModePermutations},
		{" product ", ModeProduct},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseMode("shuffle")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrModeUnknown))
	})
}

func TestModeString(t *testing.T) {
	for _, mode := range Modes() {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
		assert.True(t, mode.Valid())
	}
	assert.Equal(t, "unknown", Mode(42).String())
	assert.False(t, Mode(42).Valid())
	assert.Empty(t, Generate(Mode(42), []string{"a"}, 1, false))
}

func TestAliases(t *testing.T) {
	assert.Equal(t, []string{"combinationswr", "cwr"}, Aliases(ModeCombinationsWithReplacement))
	assert.Equal(t, []string{"prod"}, Aliases(ModeProduct))
	assert.Empty(t, Aliases(Mode(42)))
}
