// Package actions implements the stack rebase operations behind the CLI
// commands: start, continue, abort, and status.
//
// An operation's entire state lives in the persisted metadata record plus
// git's own rebase-in-progress signal; nothing is cached across invocations.
package actions

import (
	"fmt"
	"strings"
	"time"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/git"
	"restack.dev/restack/internal/runtime"
	"restack.dev/restack/internal/stack"
	"restack.dev/restack/internal/state"
	"restack.dev/restack/internal/tui"
)

// StartOptions contains options for the start command
type StartOptions struct {
	BaseBranch   string
	TargetBranch string
}

// StartAction begins a stack rebase: it captures the stack between base and
// target, persists the operation record, and rebases the chain onto the base
// branch. A conflict pauses the operation (state stays on disk) and is not an
// error; the operator resolves it and runs continue.
func StartAction(ctx *runtime.Context, opts StartOptions) error {
	splog := ctx.Splog
	provider := ctx.Provider

	// Structural preconditions, checked before any state mutation.
	if ctx.Store.Exists() {
		return fmt.Errorf("%w: finish it with 'restack continue' or cancel it with 'restack abort'",
			restackerrors.ErrOperationInProgress)
	}
	if provider.RebaseInProgress(ctx.Context) {
		return fmt.Errorf("%w: a rebase started outside restack is active; resolve it or run 'git rebase --abort' first",
			restackerrors.ErrRebaseInProgress)
	}
	if !provider.RefExists(opts.BaseBranch) {
		return restackerrors.NewBranchNotFoundError(opts.BaseBranch)
	}
	if !provider.RefExists(opts.TargetBranch) {
		return restackerrors.NewBranchNotFoundError(opts.TargetBranch)
	}

	mergeBase, err := provider.MergeBase(opts.BaseBranch, opts.TargetBranch)
	if err != nil {
		return fmt.Errorf("failed to resolve merge base of %s and %s: %w",
			opts.BaseBranch, opts.TargetBranch, err)
	}

	s, err := stack.Build(provider, opts.BaseBranch, opts.TargetBranch)
	if err != nil {
		return err
	}
	if err := stack.Validate(s); err != nil {
		return err
	}

	// Informational only; never restored automatically. Empty when HEAD is
	// detached.
	originalBranch, _ := provider.CurrentBranch()

	splog.Info("Rebasing %d commit(s) from %s onto %s",
		len(s), tui.ColorCyan(opts.TargetBranch), tui.ColorCyan(opts.BaseBranch))
	for _, entry := range s {
		describeEntry(splog, entry)
	}

	meta := &state.OperationMetadata{
		BaseBranch:     opts.BaseBranch,
		TargetBranch:   opts.TargetBranch,
		OriginalBranch: originalBranch,
		MergeBase:      mergeBase,
		Stack:          s,
		Timestamp:      time.Now(),
	}

	// Persisted before the rebase so a crash or conflict between here and
	// the end of the rebase always leaves recoverable state.
	if err := ctx.Store.Save(meta); err != nil {
		return fmt.Errorf("failed to save operation state: %w", err)
	}

	result, err := provider.RebaseOnto(ctx.Context, opts.BaseBranch, mergeBase, opts.TargetBranch)
	if err != nil {
		return fmt.Errorf("rebase failed: %w (operation state kept; run 'restack abort' to cancel)", err)
	}

	if result == git.RebaseConflict {
		splog.Newline()
		splog.Warn("Rebase hit a conflict.")
		splog.Tip("Resolve the conflicts, run 'git rebase --continue', then 'restack continue'. Or run 'restack abort' to cancel.")
		return nil
	}

	return finishOperation(ctx, meta)
}

func describeEntry(splog *tui.Splog, entry stack.Entry) {
	subject, _, _ := strings.Cut(entry.Message, "\n")
	line := fmt.Sprintf("  %s %s", tui.ColorDim(shortSHA(entry.Commit)), subject)
	for _, branch := range entry.Branches {
		line += " " + tui.ColorGreen("("+branch+")")
	}
	splog.Info("%s", line)
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
