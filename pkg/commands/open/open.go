package open

import (
	"os"

	"github.com/arthur-debert/relfiles/pkg/commands/resolve"
	"github.com/arthur-debert/relfiles/pkg/config"
	"github.com/arthur-debert/relfiles/pkg/editor"
	"github.com/arthur-debert/relfiles/pkg/layout"
	"github.com/arthur-debert/relfiles/pkg/logging"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// Options defines the options for the Open command.
type Options struct {
	// Path is the file path to find related files for.
	Path string

	// Config supplies the registered groups and the editor command.
	Config *config.Config

	// FS is the filesystem to check candidates against. Nil means the OS
	// filesystem.
	FS types.FS

	// DryRun skips launching the editor.
	DryRun bool
}

// Open resolves the related files for a path and opens them in the
// configured editor's pane layout. When nothing resolves, Open does nothing
// and reports success with Matched=false.
func Open(opts Options) (*types.ResolveResult, error) {
	log := logging.GetLogger("commands.open")

	result, err := resolve.Resolve(resolve.Options{
		Path:   opts.Path,
		Config: opts.Config,
		FS:     opts.FS,
	})
	if err != nil {
		return nil, err
	}
	if !result.Matched {
		return result, nil
	}

	l, err := layout.Compute(result.Set)
	if err != nil {
		return nil, err
	}

	cmd := editor.Command(editorCommand(opts.Config), l)
	if opts.DryRun {
		log.Info().Strs("args", cmd.Args).Msg("dry-run, not launching editor")
		return result, nil
	}

	if err := editor.Open(cmd); err != nil {
		return nil, err
	}
	return result, nil
}

// editorCommand picks the editor: $EDITOR wins over configuration.
func editorCommand(cfg *config.Config) string {
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return cfg.Editor.Command
}
