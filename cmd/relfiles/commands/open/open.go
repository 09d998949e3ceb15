package open

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/relfiles/internal/cli"
	"github.com/arthur-debert/relfiles/pkg/commands/open"
)

// NewCommand creates the open command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open <path>",
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

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			_, err = open.Open(open.Options{
				Path:   args[0],
				Config: cfg,
				DryRun: dryRun,
			})
			// No match means no action: stay silent and succeed.
			return err
		},
	}

	cmd.Flags().Bool("dry-run", false, "Resolve without launching the editor")

	return cmd
}
