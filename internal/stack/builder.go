package stack

import (
	"fmt"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/git"
)

// Build computes the stack between baseRef and targetRef: the merge base is
// resolved, the commits strictly after it up to targetRef are listed oldest
// first, and each commit is annotated with its branches and full message.
// Any lookup failure aborts the whole build; no partial stack is returned.
func Build(provider git.Provider, baseRef, targetRef string) (Stack, error) {
	mergeBase, err := provider.MergeBase(baseRef, targetRef)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve merge base of %s and %s: %w", baseRef, targetRef, err)
	}

	commits, err := provider.RevList(mergeBase, targetRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits from %s to %s: %w", mergeBase, targetRef, err)
	}

	if len(commits) == 0 {
		return nil, fmt.Errorf("%w (base %s, target %s)", restackerrors.ErrEmptyStack, baseRef, targetRef)
	}

	s := make(Stack, 0, len(commits))
	for _, commit := range commits {
		branches, err := provider.BranchesAt(commit)
		if err != nil {
			return nil, fmt.Errorf("failed to list branches at %s: %w", commit, err)
		}
		message, err := provider.CommitMessage(commit)
		if err != nil {
			return nil, fmt.Errorf("failed to read message of %s: %w", commit, err)
		}
		s = append(s, Entry{
			Commit:   commit,
			Branches: branches,
			Message:  message,
		})
	}

	return s, nil
}
