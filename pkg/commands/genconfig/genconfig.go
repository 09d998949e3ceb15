package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/relfiles/pkg/config"
	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/logging"
	"github.com/arthur-debert/relfiles/pkg/paths"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// Options holds options for the gen-config command
type Options struct {
	// Write writes the config file instead of printing it.
	Write bool

	// Effective dumps the merged in-memory configuration instead of the
	// commented default file.
	Effective bool

	// Config is the loaded configuration, used with Effective.
	Config *config.Config
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts Options) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.DefaultConfigContent()
	if opts.Effective {
		var err error
		content, err = config.DumpEffective(opts.Config)
		if err != nil {
			return nil, err
		}
	}

	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := paths.ConfigFile()

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to create directory %s", filepath.Dir(targetPath))
	}

	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
