package resolve

import (
	"github.com/arthur-debert/relfiles/pkg/config"
	"github.com/arthur-debert/relfiles/pkg/filesystem"
	"github.com/arthur-debert/relfiles/pkg/logging"
	"github.com/arthur-debert/relfiles/pkg/resolver"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// Options defines the options for the Resolve command.
type Options struct {
	// Path is the file path to find related files for.
	Path string

	// Config supplies the registered groups.
	Config *config.Config

	// FS is the filesystem to check candidates against. Nil means the OS
	// filesystem.
	FS types.FS
}

// Resolve finds the related-file set for the given path. A result with
// Matched=false is the normal "nothing found" outcome, not an error.
func Resolve(opts Options) (*types.ResolveResult, error) {
	log := logging.GetLogger("commands.resolve")
	log.Debug().Str("path", opts.Path).Msg("Executing command")

	reg, err := opts.Config.BuildRegistry()
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	result := &types.ResolveResult{Input: opts.Path}

	set, g, ok := resolver.New(fsys).ResolveGroup(reg, opts.Path)
	if !ok {
		log.Debug().Str("path", opts.Path).Msg("no related files")
		return result, nil
	}

	result.Matched = true
	result.GroupName = g.Name()
	result.Set = set

	log.Info().Str("path", opts.Path).Int("files", set.Len()).Msg("Command finished")
	return result, nil
}
