package types

// ResolvedSet is the outcome of a successful resolution: the concrete,
// existence-verified paths of one group, in the group's declared order.
type ResolvedSet struct {
	// Paths holds one concrete path per pattern in the source group.
	Paths []string `json:"paths" yaml:"paths"`

	// OriginIndex is the index of the entry equal to the input path that
	// produced this set, or -1 when no entry matches it exactly.
	OriginIndex int `json:"origin" yaml:"origin"`
}

// Len returns the number of paths in the set.
func (s *ResolvedSet) Len() int {
	return len(s.Paths)
}
