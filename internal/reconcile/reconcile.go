// Package reconcile moves branch pointers from pre-rebase commits to their
// rewritten counterparts.
//
// After a rebase, commits have new SHAs but (normally) unchanged messages, so
// messages are the correlation key. The matching strategy is deliberately
// isolated here so a stronger one (e.g. patch-id based) can replace it without
// touching the callers.
package reconcile

import (
	"strings"

	"restack.dev/restack/internal/git"
	"restack.dev/restack/internal/stack"
)

// BranchUpdate records one branch pointer moved from an old commit to its
// rewritten commit.
type BranchUpdate struct {
	Branch    string
	OldCommit string
	NewCommit string
}

// UnmatchedEntry records a branch whose rewritten commit could not be located.
type UnmatchedEntry struct {
	Branch    string
	OldCommit string
	Message   string
}

// UpdateFailure records a branch move that git rejected.
type UpdateFailure struct {
	Branch string
	Reason string
}

// Result partitions the outcome of a reconciliation.
//
// Any failure makes the whole reconciliation a failure, even when other
// branches moved successfully; those successes are still listed for operator
// cleanup. Unmatched entries without failures are a warning: the operation
// completes but the discrepancy must be surfaced.
type Result struct {
	Updates   []BranchUpdate
	Unmatched []UnmatchedEntry
	Failures  []UpdateFailure
}

// Failed reports whether any branch move was rejected.
func (r *Result) Failed() bool {
	return len(r.Failures) > 0
}

// Clean reports whether every branch was matched and moved.
func (r *Result) Clean() bool {
	return len(r.Failures) == 0 && len(r.Unmatched) == 0
}

// NormalizeMessage trims a commit message and collapses every whitespace run
// (spaces, tabs, newlines) to a single space. Rebase tooling can reflow blank
// lines, so exact byte comparison of messages is too fragile; both sides of
// the match go through this.
func NormalizeMessage(message string) string {
	return strings.Join(strings.Fields(message), " ")
}

// Reconcile matches each stack entry to a rewritten commit by normalized
// message and force-moves every branch on the entry to the match.
//
// rewritten is expected newest first (as git log reports); the stack is
// iterated newest first to keep the two sequences aligned.
func Reconcile(provider git.Provider, s stack.Stack, rewritten []git.CommitInfo) *Result {
	byMessage := make(map[string]string, len(rewritten))
	for _, commit := range rewritten {
		byMessage[NormalizeMessage(commit.Message)] = commit.SHA
	}

	result := &Result{}
	for i := len(s) - 1; i >= 0; i-- {
		entry := s[i]
		if len(entry.Branches) == 0 {
			continue
		}

		newCommit, ok := byMessage[NormalizeMessage(entry.Message)]
		if !ok {
			for _, branch := range entry.Branches {
				result.Unmatched = append(result.Unmatched, UnmatchedEntry{
					Branch:    branch,
					OldCommit: entry.Commit,
					Message:   entry.Message,
				})
			}
			continue
		}

		// A failure moving one branch must not block the others.
		for _, branch := range entry.Branches {
			if err := provider.ForceMoveRef(branch, newCommit); err != nil {
				result.Failures = append(result.Failures, UpdateFailure{
					Branch: branch,
					Reason: err.Error(),
				})
				continue
			}
			result.Updates = append(result.Updates, BranchUpdate{
				Branch:    branch,
				OldCommit: entry.Commit,
				NewCommit: newCommit,
			})
		}
	}

	return result
}
