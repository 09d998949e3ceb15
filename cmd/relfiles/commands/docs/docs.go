package docs

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/relfiles/internal/cli"
	"github.com/arthur-debert/relfiles/pkg/style"
)

//go:embed docs.md
var usageDocs string

// NewCommand creates the docs command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docs",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), usageDocs)
				return nil
			}

			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			mode := style.ColorMode(cfg.UI.Color)
			if flag, _ := cmd.Flags().GetString("color"); flag != "" {
				mode = style.ColorMode(flag)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(style.ColorEnabled(mode, os.Stdout)))
			return nil
		},
	}

	cmd.Flags().Bool("plain", false, "Print raw markdown without styling")

	return cmd
}

func renderMarkdown(colored bool) string {
	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(80),
	}
	if colored {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return usageDocs
	}
	rendered, err := renderer.Render(usageDocs)
	if err != nil {
		return usageDocs
	}
	return rendered
}
