package types

// GroupInfo describes one registered group for display purposes.
type GroupInfo struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Priority int      `json:"priority" yaml:"priority"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

// ListGroupsResult is the result of the list-groups command.
type ListGroupsResult struct {
	Groups []GroupInfo `json:"groups" yaml:"groups"`
}

// ResolveResult is the result of the resolve and open commands.
type ResolveResult struct {
	// Input is the path resolution started from.
	Input string `json:"input" yaml:"input"`

	// Matched reports whether any group fully resolved. A false value is
	// the normal "nothing found" outcome, not an error.
	Matched bool `json:"matched" yaml:"matched"`

	// GroupName names the winning group, when it has one.
	GroupName string `json:"group,omitempty" yaml:"group,omitempty"`

	// Set holds the resolved paths when Matched is true.
	Set *ResolvedSet `json:"resolved,omitempty" yaml:"resolved,omitempty"`
}

// GenConfigResult is the result of the gen-config command.
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}
