package actions

import (
	"fmt"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/runtime"
	"restack.dev/restack/internal/tui"
)

// AbortOptions contains options for the abort command
type AbortOptions struct {
	Force bool
}

// AbortAction cancels the in-flight stack rebase: it aborts the underlying
// git rebase if one is active and removes the operation record. A failed
// 'git rebase --abort' is reported but does not block the cleanup.
func AbortAction(ctx *runtime.Context, opts AbortOptions) error {
	splog := ctx.Splog

	if !ctx.Store.Exists() {
		return fmt.Errorf("%w: nothing to abort", restackerrors.ErrNoOperation)
	}

	if !opts.Force {
		confirmed, err := tui.PromptConfirm("Abort the in-progress stack rebase? Resolved conflicts will be discarded.", false)
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !confirmed {
			splog.Info("Abort canceled.")
			return nil
		}
	}

	if ctx.Provider.RebaseInProgress(ctx.Context) {
		splog.Info("Aborting rebase...")
		if err := ctx.Provider.AbortRebase(ctx.Context); err != nil {
			splog.Warn("'git rebase --abort' failed: %v. You may need to abort it manually.", err)
		}
	}

	if err := ctx.Store.Delete(); err != nil {
		return err
	}

	splog.Info("Stack rebase aborted.")
	return nil
}
