package actions

import (
	"errors"
	"fmt"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/runtime"
)

// ContinueAction resumes a stack rebase that was paused by a conflict. The
// operator must have resolved the conflicts and completed the rebase with
// 'git rebase --continue' before calling this; all that remains is moving
// the stacked branches to their rewritten commits.
func ContinueAction(ctx *runtime.Context) error {
	meta, err := ctx.Store.Load()
	if err != nil {
		if errors.Is(err, restackerrors.ErrNoOperation) {
			return fmt.Errorf("%w: nothing to continue", restackerrors.ErrNoOperation)
		}
		return err
	}

	if ctx.Provider.RebaseInProgress(ctx.Context) {
		return fmt.Errorf("%w: resolve the conflicts and run 'git rebase --continue' first",
			restackerrors.ErrRebaseInProgress)
	}

	// Reconciliation always uses the stack captured at start, never a
	// recomputed one; the rebase has already rewritten history.
	return finishOperation(ctx, meta)
}
