package actions

import (
	"errors"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/runtime"
	"restack.dev/restack/internal/tui"
)

// StatusAction reports whether a stack rebase is in flight and summarizes the
// captured stack. Read-only.
func StatusAction(ctx *runtime.Context) error {
	splog := ctx.Splog

	meta, err := ctx.Store.Load()
	if err != nil {
		if errors.Is(err, restackerrors.ErrNoOperation) {
			splog.Info("No stack rebase in progress.")
			return nil
		}
		return err
	}

	splog.Info("Stack rebase in progress: %s onto %s (started %s)",
		tui.ColorCyan(meta.TargetBranch), tui.ColorCyan(meta.BaseBranch),
		meta.Timestamp.Format("2006-01-02 15:04:05"))
	if meta.OriginalBranch != "" {
		splog.Info("Started from branch %s.", meta.OriginalBranch)
	}
	splog.Info("Captured stack (%d commit(s), merge base %s):", len(meta.Stack), shortSHA(meta.MergeBase))
	for _, entry := range meta.Stack {
		describeEntry(splog, entry)
	}

	if ctx.Provider.RebaseInProgress(ctx.Context) {
		splog.Warn("The underlying rebase has unresolved conflicts.")
		splog.Tip("Resolve them and run 'git rebase --continue', then 'restack continue'.")
	} else {
		splog.Tip("Run 'restack continue' to finish, or 'restack abort' to cancel.")
	}
	return nil
}
