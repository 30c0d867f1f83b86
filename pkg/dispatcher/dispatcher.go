package dispatcher

import (
	"github.com/arthur-debert/itergen/pkg/binding"
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/template"
)

// Cross renders t once per element of the cartesian product of the
// bindings' generated values and concatenates the rows.
//
// The first binding is the innermost loop and varies fastest; the last
// binding is the outermost loop. For [B1, B2] the rows are
// (B1[0],B2[0]), (B1[1],B2[0]), (B1[0],B2[1]), (B1[1],B2[1]).
// An empty binding list returns t unchanged; a binding with no values
// empties the whole result.
func Cross(t template.Template, bindings []binding.Binding) template.Template {
	keys, lists := render(bindings)
	return cross(t, keys, lists)
}

// Combined pairs the bindings' generated values by index and renders t once
// per index. Lists of unequal length are truncated to the shortest.
func Combined(t template.Template, bindings []binding.Binding) template.Template {
	keys, lists := render(bindings)
	return zip(t, keys, lists)
}

// Removal filters each insertion binding's values by the values of the
// removal binding at the same position, then cross-dispatches the
// survivors like Cross.
func Removal(t template.Template, insertions, removals []binding.Binding) (template.Template, error) {
	keys, lists, err := filtered(insertions, removals)
	if err != nil {
		return template.Template{}, err
	}
	return cross(t, keys, lists), nil
}

// CombinedRemoval filters each insertion binding's values by the removal
// binding at the same position, then zips the survivors like Combined.
//
// Filtering is per key: a pairing is never excluded as a unit, so two values
// that each survive their own filter are zipped together even when their
// original index partners were removed.
func CombinedRemoval(t template.Template, insertions, removals []binding.Binding) (template.Template, error) {
	keys, lists, err := filtered(insertions, removals)
	if err != nil {
		return template.Template{}, err
	}
	return zip(t, keys, lists), nil
}

// Filter returns values without any entry that appears in removed,
// preserving the order of the survivors.
func Filter(values, removed []string) []string {
	drop := make(map[string]struct{}, len(removed))
	for _, r := range removed {
		drop[r] = struct{}{}
	}

	kept := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := drop[v]; ok {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

func render(bindings []binding.Binding) ([]string, [][]string) {
	keys := make([]string, len(bindings))
	lists := make([][]string, len(bindings))
	for i, b := range bindings {
		keys[i] = b.Key()
		lists[i] = b.Values()
	}
	return keys, lists
}

func filtered(insertions, removals []binding.Binding) ([]string, [][]string, error) {
	if len(insertions) != len(removals) {
		return nil, nil, errors.Newf(errors.ErrRemovalMismatch,
			"%d insertion bindings but %d removal bindings", len(insertions), len(removals)).
			WithDetail("insertions", len(insertions)).
			WithDetail("removals", len(removals))
	}

	logger := logging.GetLogger("dispatcher")
	keys, lists := render(insertions)
	for i, r := range removals {
		before := len(lists[i])
		lists[i] = Filter(lists[i], r.Values())
		logger.Trace().
			Str("key", keys[i]).
			Int("before", before).
			Int("after", len(lists[i])).
			Msg("filtered binding values")
	}
	return keys, lists, nil
}

func cross(t template.Template, keys []string, lists [][]string) template.Template {
	n := len(keys)
	if n == 0 {
		return t
	}
	for _, l := range lists {
		if len(l) == 0 {
			return template.Template{}
		}
	}

	var out template.Builder
	idx := make([]int, n)
	row := make(map[string]string, n)
	for {
		for i, key := range keys {
			row[key] = lists[i][idx[i]]
		}
		out.Append(t.Substitute(row))

		// Advance with index 0 as the fastest-moving digit.
		i := 0
		for ; i < n; i++ {
			idx[i]++
			if idx[i] < len(lists[i]) {
				break
			}
			idx[i] = 0
		}
		if i == n {
			break
		}
	}

	return out.Template()
}

func zip(t template.Template, keys []string, lists [][]string) template.Template {
	if len(keys) == 0 {
		return t
	}

	shortest := len(lists[0])
	for _, l := range lists[1:] {
		if len(l) < shortest {
			shortest = len(l)
		}
	}

	var out template.Builder
	row := make(map[string]string, len(keys))
	for j := 0; j < shortest; j++ {
		for i, key := range keys {
			row[key] = lists[i][j]
		}
		out.Append(t.Substitute(row))
	}

	return out.Template()
}
