// Package resolver walks the group registry in priority order and settles on
// the first group whose expanded candidate paths all exist.
package resolver

import (
	"github.com/arthur-debert/relfiles/pkg/filesystem"
	"github.com/arthur-debert/relfiles/pkg/group"
	"github.com/arthur-debert/relfiles/pkg/logging"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// Resolver resolves input paths against a registry. The filesystem is
// injected; resolution performs read-only existence checks and nothing else.
type Resolver struct {
	fs types.FS
}

// New creates a resolver backed by the given filesystem.
func New(fsys types.FS) *Resolver {
	return &Resolver{fs: fsys}
}

// Resolve finds the related-file set for path. Groups are tried in
// registration order; within a group, patterns in declared order with the
// first match supplying the bindings. A group is accepted only when every
// expanded candidate exists; otherwise the next group is tried. The first
// accepted group wins outright, even if a later group's files also exist.
//
// ok is false for the normal "nothing found" outcome: no group matched, or
// every matching group had at least one missing candidate.
func (r *Resolver) Resolve(reg *group.Registry, path string) (*types.ResolvedSet, bool) {
	set, _, ok := r.resolve(reg, path)
	return set, ok
}

// ResolveGroup is Resolve but also identifies the winning group.
func (r *Resolver) ResolveGroup(reg *group.Registry, path string) (*types.ResolvedSet, *group.Group, bool) {
	return r.resolve(reg, path)
}

func (r *Resolver) resolve(reg *group.Registry, path string) (*types.ResolvedSet, *group.Group, bool) {
	logger := logging.GetLogger("resolver")

	for i, g := range reg.Groups() {
		bindings, ok := g.FindBindings(path)
		if !ok {
			continue
		}

		candidates := g.Expand(bindings)
		if !r.allExist(candidates) {
			logger.Debug().
				Str("path", path).
				Int("group", i).
				Strs("candidates", candidates).
				Msg("group matched but candidates incomplete, trying next")
			continue
		}

		logger.Debug().
			Str("path", path).
			Int("group", i).
			Strs("resolved", candidates).
			Msg("group resolved")

		return &types.ResolvedSet{
			Paths:       candidates,
			OriginIndex: originIndex(candidates, path),
		}, g, true
	}

	logger.Debug().Str("path", path).Msg("no group resolved")
	return nil, nil, false
}

// allExist gates acceptance: either every candidate exists or the group is
// abandoned wholesale.
func (r *Resolver) allExist(paths []string) bool {
	for _, p := range paths {
		if !filesystem.Exists(r.fs, p) {
			return false
		}
	}
	return true
}

func originIndex(paths []string, original string) int {
	for i, p := range paths {
		if p == original {
			return i
		}
	}
	return -1
}

// ResolveForPath resolves path against the process-wide registry and the real
// filesystem. This is the convenience entry point command code uses.
func ResolveForPath(path string) (*types.ResolvedSet, bool) {
	return New(filesystem.NewOS()).Resolve(group.Default(), path)
}
