package cli

import (
	"github.com/spf13/cobra"

	"restack.dev/restack/internal/actions"
	"restack.dev/restack/internal/runtime"
)

// newStartCmd creates the start command
func newStartCmd(quiet *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "start <base> <target>",
		Short: "Rebase the stack of commits between <base> and <target> onto <base>",
		Long: `Rebases every commit between the merge base of <base> and <target>
(exclusive) and <target> (inclusive) onto <base>, then moves each branch in
the stack to its rewritten commit.

The operation state is saved before the rebase runs, so a conflict or crash
can always be resumed with 'restack continue' or canceled with 'restack abort'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			ctx.Splog.SetQuiet(*quiet)

			return actions.StartAction(ctx, actions.StartOptions{
				BaseBranch:   args[0],
				TargetBranch: args[1],
			})
		},
	}
}
