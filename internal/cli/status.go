package cli

import (
	"github.com/spf13/cobra"

	"restack.dev/restack/internal/actions"
	"restack.dev/restack/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd(quiet *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a stack rebase is in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			ctx.Splog.SetQuiet(*quiet)

			return actions.StatusAction(ctx)
		},
	}
}
