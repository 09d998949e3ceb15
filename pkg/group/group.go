package group

import (
	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/logging"
	"github.com/arthur-debert/relfiles/pkg/pattern"
)

// MinPatterns and MaxPatterns bound the number of templates in a group.
const (
	MinPatterns = 2
	MaxPatterns = 4
)

// Group is an ordered family of 2 to 4 path templates. Order is significant:
// it decides matching precedence inside the group and the mapping of resolved
// paths to layout slots.
type Group struct {
	name     string
	sources  []string
	compiled []*pattern.Compiled
}

// New creates a group from the given templates. It fails with a GROUP_ARITY
// error when fewer than 2 or more than 4 templates are given.
func New(patterns ...string) (*Group, error) {
	return Named("", patterns...)
}

// Named creates a group carrying a display name, used by configuration.
func Named(name string, patterns ...string) (*Group, error) {
	if len(patterns) < MinPatterns || len(patterns) > MaxPatterns {
		return nil, errors.Newf(errors.ErrGroupArity,
			"group must have between %d and %d patterns, got %d",
			MinPatterns, MaxPatterns, len(patterns)).
			WithDetail("count", len(patterns))
	}

	compiled := make([]*pattern.Compiled, len(patterns))
	sources := make([]string, len(patterns))
	for i, p := range patterns {
		compiled[i] = pattern.Compile(p)
		sources[i] = p
	}

	return &Group{
		name:     name,
		sources:  sources,
		compiled: compiled,
	}, nil
}

// Name returns the group's display name, possibly empty.
func (g *Group) Name() string {
	return g.name
}

// Len returns the number of templates in the group.
func (g *Group) Len() int {
	return len(g.compiled)
}

// Patterns returns the source templates in declared order.
func (g *Group) Patterns() []string {
	out := make([]string, len(g.sources))
	copy(out, g.sources)
	return out
}

// FindBindings tries each template in declared order and returns the
// bindings of the first one matching path in full. First match wins; later
// templates are not consulted. ok is false when nothing matches.
func (g *Group) FindBindings(path string) (pattern.Bindings, bool) {
	logger := logging.GetLogger("group")
	for i, c := range g.compiled {
		if bindings, ok := c.Match(path); ok {
			logger.Trace().
				Str("path", path).
				Str("pattern", g.sources[i]).
				Int("index", i).
				Msg("pattern matched")
			return bindings, true
		}
	}
	return nil, false
}

// Expand substitutes bindings into every template of the group, the matched
// one included, producing one candidate path per template in declared order.
func (g *Group) Expand(bindings pattern.Bindings) []string {
	paths := make([]string, len(g.sources))
	for i, src := range g.sources {
		paths[i] = pattern.Expand(src, bindings)
	}
	return paths
}
