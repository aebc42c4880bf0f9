package cli

import (
	"github.com/spf13/cobra"

	"restack.dev/restack/internal/actions"
	"restack.dev/restack/internal/runtime"
)

// newContinueCmd creates the continue command
func newContinueCmd(quiet *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Finish a stack rebase that was paused by a conflict",
		Long: `Finishes the stack rebase that was paused by a conflict.

Resolve the conflicts and complete the rebase with 'git rebase --continue'
first; this command then moves every stacked branch to its rewritten commit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			ctx.Splog.SetQuiet(*quiet)

			return actions.ContinueAction(ctx)
		},
	}
}
