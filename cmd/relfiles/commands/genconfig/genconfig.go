package genconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/relfiles/internal/cli"
	"github.com/arthur-debert/relfiles/pkg/commands/genconfig"
	"github.com/arthur-debert/relfiles/pkg/config"
)

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			effective, _ := cmd.Flags().GetBool("effective")

			var cfg *config.Config
			if effective {
				var err error
				cfg, err = cli.LoadConfig(cmd)
				if err != nil {
					return err
				}
			}

			result, err := genconfig.GenConfig(genconfig.Options{
				Write:     write,
				Effective: effective,
				Config:    cfg,
			})
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return nil
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, "Write config to file instead of stdout")
	cmd.Flags().Bool("effective", false, "Dump the merged effective configuration")

	return cmd
}
