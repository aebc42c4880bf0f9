package actions

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/git"
)

func TestContinueAction(t *testing.T) {
	t.Parallel()

	t.Run("finishes a paused operation with the captured stack", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		require.NoError(t, ContinueAction(ctx))

		require.Equal(t, map[string]string{
			"feature-1": "n1",
			"feature-2": "n3",
			"hotfix":    "n3",
		}, mock.MovedRefs)
		require.False(t, ctx.Store.Exists())
	})

	t.Run("errors when there is nothing to continue", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		ctx := newTestContext(t, mock)

		err := ContinueAction(ctx)
		require.ErrorIs(t, err, restackerrors.ErrNoOperation)
		require.Empty(t, mock.MovedRefs)
	})

	t.Run("errors while the rebase still has unresolved conflicts", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		mock.InProgress = true
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		err := ContinueAction(ctx)
		require.ErrorIs(t, err, restackerrors.ErrRebaseInProgress)
		require.True(t, ctx.Store.Exists(), "unresolved conflicts must keep the operation resumable")
	})

	t.Run("surfaces corrupt state distinctly from a missing operation", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		ctx := newTestContext(t, mock)
		require.NoError(t, os.WriteFile(ctx.Store.Path(), []byte("{broken"), 0600))

		err := ContinueAction(ctx)
		require.ErrorIs(t, err, restackerrors.ErrCorruptState)
		require.NotErrorIs(t, err, restackerrors.ErrNoOperation)
	})

	t.Run("unmatched branches are a warning, not an error", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		mock.Rewritten = []git.CommitInfo{
			{SHA: "n2", Message: "wip"},
			{SHA: "n1", Message: "Add auth"},
		}
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		require.NoError(t, ContinueAction(ctx))

		require.Equal(t, map[string]string{"feature-1": "n1"}, mock.MovedRefs)
		require.False(t, ctx.Store.Exists(), "warnings still terminate the operation")
	})

	t.Run("a rejected branch move fails but still clears the state", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		mock.ForceMoveRefFunc = func(branchName, commit string) error {
			return fmt.Errorf("branch %s is checked out elsewhere", branchName)
		}
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		err := ContinueAction(ctx)
		require.Error(t, err)
		require.False(t, ctx.Store.Exists())
	})
}
