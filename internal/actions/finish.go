package actions

import (
	"fmt"

	"restack.dev/restack/internal/reconcile"
	"restack.dev/restack/internal/runtime"
	"restack.dev/restack/internal/state"
	"restack.dev/restack/internal/tui"
)

// finishOperation runs post-rebase reconciliation: it fetches the rewritten
// commits, moves every stacked branch to its rewritten counterpart, and
// clears the operation record.
//
// The record is deleted on every reconciliation outcome, including failure;
// re-running reconciliation against the same repository state would not
// change the result.
func finishOperation(ctx *runtime.Context, meta *state.OperationMetadata) error {
	splog := ctx.Splog

	rewritten, err := ctx.Provider.RecentCommits(meta.TargetBranch, len(meta.Stack))
	if err != nil {
		// Reconciliation never ran; keep the record so continue can retry.
		return fmt.Errorf("failed to list rewritten commits on %s: %w", meta.TargetBranch, err)
	}

	result := reconcile.Reconcile(ctx.Provider, meta.Stack, rewritten)

	for _, update := range result.Updates {
		splog.Info("  %s %s -> %s", tui.ColorGreen(update.Branch),
			tui.ColorDim(shortSHA(update.OldCommit)), tui.ColorDim(shortSHA(update.NewCommit)))
	}
	for _, unmatched := range result.Unmatched {
		splog.Warn("could not locate the rewritten commit for branch %s (was %s); it was not moved",
			unmatched.Branch, shortSHA(unmatched.OldCommit))
	}
	for _, failure := range result.Failures {
		splog.Error("failed to move branch %s: %s", failure.Branch, failure.Reason)
	}

	if err := ctx.Store.Delete(); err != nil {
		return err
	}

	if result.Failed() {
		return fmt.Errorf("failed to move %d branch(es); moved branches are listed above, the rest must be repointed manually", len(result.Failures))
	}
	if len(result.Unmatched) > 0 {
		splog.Warn("Rebase finished, but %d branch(es) could not be matched and were left in place.", len(result.Unmatched))
		return nil
	}

	splog.Info("Moved %d branch(es) onto %s.", len(result.Updates), tui.ColorCyan(meta.BaseBranch))
	return nil
}
