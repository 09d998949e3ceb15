package groups

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/relfiles/internal/cli"
	"github.com/arthur-debert/relfiles/pkg/commands/listgroups"
)

// NewCommand creates the groups command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			format, err := cli.Format(cmd)
			if err != nil {
				return err
			}

			result := listgroups.ListGroups(listgroups.Options{Config: cfg})

			out, err := cli.Renderer(cmd, cfg).RenderGroups(result, format)
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
