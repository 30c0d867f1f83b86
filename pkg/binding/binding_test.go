package binding

import (
	"testing"

	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/iters"
	"github.com/arthur-debert/itergen/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b, err := New("id", []string{"a", "b"}, iters.ModeProduct)
		require.NoError(t, err)
		assert.Equal(t, "id", b.Key())
		assert.Equal(t, iters.ModeProduct, b.Mode())
		assert.Equal(t, 1, b.GroupSize())
		assert.False(t, b.Comma())
	})

	t.Run("options", func(t *testing.T) {
		b, err := New("id", []string{"a", "b"}, iters.ModeCombinations, WithGroupSize(2), WithComma())
		require.NoError(t, err)
		assert.Equal(t, 2, b.GroupSize())
		assert.True(t, b.Comma())
		assert.Equal(t, []string{"a, b"}, b.Values())
	})

	t.Run("group_size_below_one", func(t *testing.T) {
		_, err := New("id", []string{"a"}, iters.ModeProduct, WithGroupSize(0))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrBindingInvalid))
	})

	t.Run("unknown_mode", func(t *testing.T) {
		_, err := New("id", []string{"a"}, iters.Mode(9))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrModeUnknown))
	})

	t.Run("empty_key_allowed", func(t *testing.T) {
		b, err := New("", []string{"1", "2"}, iters.ModeProduct, WithGroupSize(2))
		require.NoError(t, err)
		assert.Equal(t, []string{"11", "12", "21", "22"}, b.Values())
	})

	t.Run("must_new_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew("id", nil, iters.ModeProduct, WithGroupSize(-1))
		})
	})
}

func TestImmutable(t *testing.T) {
	values := []string{"a", "b"}
	b := MustNew("id", values, iters.ModeProduct)
	values[0] = "z"

	assert.Equal(t, []string{"a", "b"}, b.Values())

	src := b.Source()
	src[1] = "z"
	assert.Equal(t, []string{"a", "b"}, b.Source())
}

func TestCount(t *testing.T) {
	b := MustNew("k", []string{"1", "2", "3"}, iters.ModePermutations, WithGroupSize(2))
	assert.Equal(t, len(b.Values()), b.Count())
	assert.Equal(t, 6, b.Count())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		binding Binding
		want    string
	}{
		{
			name:    "combinations_one_value",
			tmpl:    "a ${id} c | ",
			binding: MustNew("id", []string{"b"}, iters.ModeCombinations),
			want:    "a b c | ",
		},
		{
			name:    "combinations_insufficient_values",
			tmpl:    "a ${id} c | ",
			binding: MustNew("id", []string{"b"}, iters.ModeCombinations, WithGroupSize(2)),
			want:    "",
		},
		{
			name:    "combinations_three_values",
			tmpl:    "a ${id} c | ",
			binding: MustNew("id", []string{"a", "b", "c"}, iters.ModeCombinations, WithGroupSize(2)),
			want:    "a ab c | a ac c | a bc c | ",
		},
		{
			name:    "cwr_three_values",
			tmpl:    "a ${id} c | ",
			binding: MustNew("id", []string{"a", "b", "c"}, iters.ModeCombinationsWithReplacement, WithGroupSize(2)),
			want:    "a aa c | a ab c | a ac c | a bb c | a bc c | a cc c | ",
		},
		{
			name:    "permutations_three_values",
			tmpl:    "a ${id} c | ",
			binding: MustNew("id", []string{"a", "b", "c"}, iters.ModePermutations, WithGroupSize(2)),
			want:    "a ab c | a ac c | a ba c | a bc c | a ca c | a cb c | ",
		},
		{
			name:    "product_two_values",
			tmpl:    "a ${id} c | ",
			binding: MustNew("id", []string{"a", "b"}, iters.ModeProduct, WithGroupSize(2)),
			want:    "a aa c | a ab c | a ba c | a bb c | ",
		},
		{
			name:    "other_keys_left_in_place",
			tmpl:    "${id1} ${id2} | ",
			binding: MustNew("id1", []string{"b", "c"}, iters.ModePermutations, WithGroupSize(2)),
			want:    "bc ${id2} | cb ${id2} | ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.binding.Apply(template.New(tt.tmpl))
			assert.Equal(t, tt.want, got.String())
		})
	}
}
