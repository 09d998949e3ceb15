package resolve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/relfiles/internal/cli"
	"github.com/arthur-debert/relfiles/pkg/commands/resolve"
)

// NewCommand creates the resolve command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resolve <path>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			format, err := cli.Format(cmd)
			if err != nil {
				return err
			}

			result, err := resolve.Resolve(resolve.Options{
				Path:   args[0],
				Config: cfg,
			})
			if err != nil {
				return err
			}

			out, err := cli.Renderer(cmd, cfg).RenderResolve(result, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml, xml")

	return cmd
}
