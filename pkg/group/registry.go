package group

// Registry is an append-only, ordered sequence of groups. Insertion order is
// match priority: during resolution the earliest fully-resolving group wins.
type Registry struct {
	groups []*Group
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append validates and appends a new group built from patterns. Arity errors
// surface immediately; resolution never sees a malformed group.
func (r *Registry) Append(patterns ...string) error {
	g, err := New(patterns...)
	if err != nil {
		return err
	}
	r.groups = append(r.groups, g)
	return nil
}

// AppendNamed is Append with a display name attached to the group.
func (r *Registry) AppendNamed(name string, patterns ...string) error {
	g, err := Named(name, patterns...)
	if err != nil {
		return err
	}
	r.groups = append(r.groups, g)
	return nil
}

// AppendGroup appends an already-constructed group.
func (r *Registry) AppendGroup(g *Group) {
	r.groups = append(r.groups, g)
}

// Groups returns the registered groups in priority order.
func (r *Registry) Groups() []*Group {
	return r.groups
}

// Len returns the number of registered groups.
func (r *Registry) Len() int {
	return len(r.groups)
}
