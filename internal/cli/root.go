// Package cli wires the cobra commands to the stack rebase actions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "restack",
		Short: "Restack rebases a stack of branches onto a new base",
		Long: `Restack rebases a linear chain of local branches (a "stack") onto a new
base commit and moves every branch pointer to its rewritten commit.

A rebase that hits a conflict pauses: resolve it, run 'git rebase --continue',
then 'restack continue'. Run 'restack abort' to cancel a paused operation.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress console output")

	rootCmd.AddCommand(newStartCmd(&quiet))
	rootCmd.AddCommand(newContinueCmd(&quiet))
	rootCmd.AddCommand(newAbortCmd(&quiet))
	rootCmd.AddCommand(newStatusCmd(&quiet))

	return rootCmd
}
