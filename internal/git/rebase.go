package git

import (
	"context"
	"fmt"
	"os"
)

// RebaseResult represents the result of a rebase operation
type RebaseResult int

const (
	// RebaseDone indicates the rebase was successful
	RebaseDone RebaseResult = iota
	// RebaseConflict indicates a conflict occurred during rebase
	RebaseConflict
)

// RebaseOnto replays the commits between oldBase and target onto newBase:
// git rebase --onto <newBase> <oldBase> <target>.
// A conflict is signaled by RebaseConflict with a nil error; the rebase is
// left in progress for the operator to resolve.
func RebaseOnto(ctx context.Context, newBase, oldBase, target string) (RebaseResult, error) {
	_, err := RunGitCommandWithContext(ctx, "rebase", "--onto", newBase, oldBase, target)
	if err != nil {
		if IsRebaseInProgress(ctx) {
			return RebaseConflict, nil
		}
		return RebaseConflict, fmt.Errorf("rebase onto %s failed: %w", newBase, err)
	}
	return RebaseDone, nil
}

// IsRebaseInProgress checks if a rebase is currently in progress
func IsRebaseInProgress(ctx context.Context) bool {
	// Check for .git/rebase-merge or .git/rebase-apply directories
	// This is more reliable than checking REBASE_HEAD which can persist after rebase
	gitDir, err := RunGitCommandWithContext(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}

	// Interactive rebase
	if _, err := os.Stat(gitDir + "/rebase-merge"); err == nil {
		return true
	}
	// Non-interactive rebase
	if _, err := os.Stat(gitDir + "/rebase-apply"); err == nil {
		return true
	}
	return false
}

// RebaseAbort aborts an in-progress rebase
func RebaseAbort(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "rebase", "--abort")
	if err != nil {
		return fmt.Errorf("rebase abort failed: %w", err)
	}
	return nil
}
