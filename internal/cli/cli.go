// Package cli carries the plumbing shared by the relfiles subcommands:
// loading configuration from the persistent flags and building the output
// renderer for the invocation.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/relfiles/pkg/config"
	"github.com/arthur-debert/relfiles/pkg/output"
	"github.com/arthur-debert/relfiles/pkg/style"
)

// LoadConfig loads the effective configuration honoring the --config flag.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(config.LoadOptions{File: file})
}

// Renderer builds the renderer for this invocation, combining the ui.color
// setting with the --color flag override.
func Renderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	mode := style.ColorMode(cfg.UI.Color)
	if flag, _ := cmd.Flags().GetString("color"); flag != "" {
		mode = style.ColorMode(flag)
	}
	return output.NewRenderer(style.ColorEnabled(mode, os.Stdout))
}

// Format parses the --format flag.
func Format(cmd *cobra.Command) (output.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	return output.ParseFormat(s)
}
