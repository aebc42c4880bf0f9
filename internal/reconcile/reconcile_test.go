package reconcile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"restack.dev/restack/internal/git"
	"restack.dev/restack/internal/stack"
)

func TestNormalizeMessage(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs to a single space", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Add auth endpoint", NormalizeMessage("Add auth\n\nendpoint\n"))
		require.Equal(t, "a b c", NormalizeMessage("  a\t\tb \n c  "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		messages := []string{
			"Add settings",
			"subject\n\nbody line one\nbody line two\n",
			"\t leading and trailing \n",
			"",
		}
		for _, msg := range messages {
			once := NormalizeMessage(msg)
			require.Equal(t, once, NormalizeMessage(once))
		}
	})

	t.Run("messages differing only in whitespace collide", func(t *testing.T) {
		t.Parallel()
		require.Equal(t,
			NormalizeMessage("Fix bug\n\nDetails here\n"),
			NormalizeMessage("Fix bug\nDetails   here"))
	})
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	// Three commits, one without branches, two branches sharing the
	// newest commit.
	testStack := stack.Stack{
		{Commit: "c1", Branches: []string{"feature-1"}, Message: "Add auth"},
		{Commit: "c2", Branches: nil, Message: "wip"},
		{Commit: "c3", Branches: []string{"feature-2", "hotfix"}, Message: "Add settings"},
	}
	rewritten := []git.CommitInfo{
		{SHA: "n3", Message: "Add settings"},
		{SHA: "n2", Message: "wip"},
		{SHA: "n1", Message: "Add auth"},
	}

	t.Run("moves every branch when all messages match", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()

		result := Reconcile(mock, testStack, rewritten)
		require.True(t, result.Clean())
		require.Empty(t, result.Unmatched)
		require.Empty(t, result.Failures)

		require.ElementsMatch(t, []BranchUpdate{
			{Branch: "feature-1", OldCommit: "c1", NewCommit: "n1"},
			{Branch: "feature-2", OldCommit: "c3", NewCommit: "n3"},
			{Branch: "hotfix", OldCommit: "c3", NewCommit: "n3"},
		}, result.Updates)
		require.Equal(t, map[string]string{
			"feature-1": "n1",
			"feature-2": "n3",
			"hotfix":    "n3",
		}, mock.MovedRefs)
	})

	t.Run("matches despite cosmetic whitespace differences", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()
		reflowed := []git.CommitInfo{
			{SHA: "n3", Message: "Add   settings\n"},
			{SHA: "n2", Message: "\nwip"},
			{SHA: "n1", Message: "Add\nauth"},
		}

		result := Reconcile(mock, testStack, reflowed)
		require.True(t, result.Clean())
		require.Len(t, result.Updates, 3)
	})

	t.Run("reports unmatched entries per branch as a warning", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()
		partial := []git.CommitInfo{
			{SHA: "n2", Message: "wip"},
			{SHA: "n1", Message: "Add auth"},
		}

		result := Reconcile(mock, testStack, partial)
		require.False(t, result.Failed())
		require.False(t, result.Clean())

		require.ElementsMatch(t, []UnmatchedEntry{
			{Branch: "feature-2", OldCommit: "c3", Message: "Add settings"},
			{Branch: "hotfix", OldCommit: "c3", Message: "Add settings"},
		}, result.Unmatched)
		require.Equal(t, []BranchUpdate{
			{Branch: "feature-1", OldCommit: "c1", NewCommit: "n1"},
		}, result.Updates)
	})

	t.Run("a rejected move fails the reconciliation but not the other branches", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()
		mock.ForceMoveRefFunc = func(branchName, commit string) error {
			if branchName == "feature-2" {
				return fmt.Errorf("branch feature-2 is checked out in another worktree")
			}
			return nil
		}

		result := Reconcile(mock, testStack, rewritten)
		require.True(t, result.Failed())

		require.Len(t, result.Failures, 1)
		require.Equal(t, "feature-2", result.Failures[0].Branch)
		require.Contains(t, result.Failures[0].Reason, "worktree")

		// The other branches on the same and other entries still moved.
		require.ElementsMatch(t, []BranchUpdate{
			{Branch: "feature-1", OldCommit: "c1", NewCommit: "n1"},
			{Branch: "hotfix", OldCommit: "c3", NewCommit: "n3"},
		}, result.Updates)
	})

	t.Run("empty stack yields a clean empty result", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()

		result := Reconcile(mock, stack.Stack{}, rewritten)
		require.True(t, result.Clean())
		require.Empty(t, result.Updates)
	})

	t.Run("empty rewritten list yields unmatched entries, not a failure", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()

		result := Reconcile(mock, testStack, nil)
		require.False(t, result.Failed())
		require.Len(t, result.Unmatched, 3) // one per branch, none for c2
		require.Empty(t, result.Updates)
	})

	t.Run("entries without branches contribute nothing", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()
		bare := stack.Stack{
			{Commit: "c1", Message: "one"},
			{Commit: "c2", Message: "two"},
		}

		result := Reconcile(mock, bare, nil)
		require.True(t, result.Clean())
		require.Empty(t, result.Unmatched)
	})
}
