package dispatcher

import (
	"github.com/arthur-debert/itergen/pkg/binding"
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/template"
)

// Strategy names the composition used to render a Group.
type Strategy int

const (
	StrategyCross Strategy = iota
	StrategyCombined
	StrategyRemoval
	StrategyCombinedRemoval
)

func (s Strategy) String() string {
	switch s {
	case StrategyCross:
		return "cross"
	case StrategyCombined:
		return "combined"
	case StrategyRemoval:
		return "removal"
	case StrategyCombinedRemoval:
		return "combined_removal"
	}
	return "unknown"
}

// Group is one unit of generation: a template, the bindings that fill it,
// and the marker in the host document that the rendered text replaces.
//
// Removals is optional. When set it must be positionally aligned with
// Insertions: Removals[i] filters only Insertions[i].
type Group struct {
	Marker     string
	Template   template.Template
	Insertions []binding.Binding
	Removals   []binding.Binding
	Combine    bool
}

// Strategy reports which composition Render will use.
func (g Group) Strategy() Strategy {
	switch {
	case g.Removals != nil && g.Combine:
		return StrategyCombinedRemoval
	case g.Removals != nil:
		return StrategyRemoval
	case g.Combine:
		return StrategyCombined
	default:
		return StrategyCross
	}
}

// Validate checks the group can be rendered and spliced.
func (g Group) Validate() error {
	if g.Marker == "" {
		return errors.New(errors.ErrGroupInvalid, "group has an empty marker")
	}
	if g.Removals != nil && len(g.Removals) != len(g.Insertions) {
		return errors.Newf(errors.ErrRemovalMismatch,
			"group %q has %d insertion bindings but %d removal bindings",
			g.Marker, len(g.Insertions), len(g.Removals)).
			WithDetail("marker", g.Marker)
	}
	return nil
}

// Render produces the fully substituted text for the group.
func (g Group) Render() (template.Template, error) {
	logger := logging.GetLogger("dispatcher")
	strategy := g.Strategy()

	var (
		out template.Template
		err error
	)
	switch strategy {
	case StrategyCombinedRemoval:
		out, err = CombinedRemoval(g.Template, g.Insertions, g.Removals)
	case StrategyRemoval:
		out, err = Removal(g.Template, g.Insertions, g.Removals)
	case StrategyCombined:
		out = Combined(g.Template, g.Insertions)
	default:
		out = Cross(g.Template, g.Insertions)
	}
	if err != nil {
		return template.Template{}, err
	}

	logger.Debug().
		Str("marker", g.Marker).
		Str("strategy", strategy.String()).
		Int("bindings", len(g.Insertions)).
		Int("bytes", len(out.String())).
		Msg("rendered group")

	return out, nil
}
