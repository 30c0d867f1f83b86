// Package binding pairs a placeholder name with the configuration used to
// enumerate its values.
package binding

import (
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/iters"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/template"
)

// Binding associates a placeholder key with a value list, an iteration mode,
// a group size and the join format. A Binding is immutable once built; the
// key may be empty for bindings that only describe values to exclude.
type Binding struct {
	key       string
	values    []string
	mode      iters.Mode
	groupSize int
	comma     bool
}

// Option configures a Binding under construction.
type Option func(*Binding)

// WithGroupSize sets how many values are drawn per generated string.
func WithGroupSize(k int) Option {
	return func(b *Binding) { b.groupSize = k }
}

// WithComma joins drawn values with ", " instead of concatenating them.
func WithComma() Option {
	return func(b *Binding) { b.comma = true }
}

// WithCommaFormat sets the join format explicitly.
func WithCommaFormat(comma bool) Option {
	return func(b *Binding) { b.comma = comma }
}

// New builds a Binding. The group size defaults to 1.
func New(key string, values []string, mode iters.Mode, opts ...Option) (Binding, error) {
	b := Binding{
		key:       key,
		values:    append([]string(nil), values...),
		mode:      mode,
		groupSize: 1,
	}
	for _, o := range opts {
		o(&b)
	}

	if !mode.Valid() {
		return Binding{}, errors.Newf(errors.ErrModeUnknown, "binding %q has unknown mode %d", key, int(mode)).
			WithDetail("key", key)
	}
	if b.groupSize < 1 {
		return Binding{}, errors.Newf(errors.ErrBindingInvalid, "binding %q: group size must be at least 1, got %d", key, b.groupSize).
			WithDetail("key", key).
			WithDetail("group_size", b.groupSize)
	}

	return b, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(key string, values []string, mode iters.Mode, opts ...Option) Binding {
	b, err := New(key, values, mode, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Key returns the placeholder name.
func (b Binding) Key() string { return b.key }

// Mode returns the iteration mode.
func (b Binding) Mode() iters.Mode { return b.mode }

// GroupSize returns the number of values drawn per generated string.
func (b Binding) GroupSize() int {
	if b.groupSize < 1 {
		return 1
	}
	return b.groupSize
}

// Comma reports whether drawn values are joined with ", ".
func (b Binding) Comma() bool { return b.comma }

// Source returns a copy of the configured value list.
func (b Binding) Source() []string {
	return append([]string(nil), b.values...)
}

// Values renders the binding into its ordered generated strings.
func (b Binding) Values() []string {
	return iters.Generate(b.mode, b.values, b.GroupSize(), b.comma)
}

// Count returns len(b.Values()) without enumerating.
func (b Binding) Count() int {
	return iters.Count(b.mode, len(b.values), b.GroupSize())
}

// Apply renders t once per generated value with the binding's key
// substituted and returns the concatenation of the rows.
func (b Binding) Apply(t template.Template) template.Template {
	var out template.Builder
	for _, v := range b.Values() {
		out.Append(t.Substitute(map[string]string{b.key: v}))
	}

	logger := logging.GetLogger("binding")
	logger.Debug().
		Str("key", b.key).
		Str("mode", b.mode.String()).
		Int("group_size", b.GroupSize()).
		Int("rows", out.Rows()).
		Msg("applied binding")

	return out.Template()
}
