package cli

import (
	"github.com/spf13/cobra"

	"restack.dev/restack/internal/actions"
	"restack.dev/restack/internal/runtime"
)

// newAbortCmd creates the abort command
func newAbortCmd(quiet *bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "abort",
		Short: "Cancel the in-progress stack rebase",
		Long: `Cancels the in-progress stack rebase: aborts the underlying git rebase
if one is active and removes the saved operation state. Branches that were
already moved are left where they are.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			ctx.Splog.SetQuiet(*quiet)

			return actions.AbortAction(ctx, actions.AbortOptions{Force: force})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not prompt for confirmation; abort immediately.")

	return cmd
}
