package actions

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	restackerrors "restack.dev/restack/internal/errors"
)

func TestAbortAction(t *testing.T) {
	t.Parallel()

	t.Run("errors when there is nothing to abort", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		ctx := newTestContext(t, mock)

		err := AbortAction(ctx, AbortOptions{Force: true})
		require.ErrorIs(t, err, restackerrors.ErrNoOperation)
	})

	t.Run("cleans up metadata when no rebase is active", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		require.NoError(t, AbortAction(ctx, AbortOptions{Force: true}))

		require.Zero(t, mock.AbortCalls, "no underlying rebase to abort")
		require.False(t, ctx.Store.Exists())
	})

	t.Run("aborts an active rebase before cleanup", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		mock.InProgress = true
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		require.NoError(t, AbortAction(ctx, AbortOptions{Force: true}))

		require.Equal(t, 1, mock.AbortCalls)
		require.False(t, ctx.Store.Exists())
	})

	t.Run("a failed rebase abort does not block the cleanup", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		mock.InProgress = true
		mock.AbortErr = fmt.Errorf("could not remove rebase-merge directory")
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		require.NoError(t, AbortAction(ctx, AbortOptions{Force: true}))

		require.Equal(t, 1, mock.AbortCalls)
		require.False(t, ctx.Store.Exists())
	})

	t.Run("abort is repeatable only until the state is gone", func(t *testing.T) {
		t.Parallel()
		mock := newStackedRepo()
		ctx := newTestContext(t, mock)
		require.NoError(t, ctx.Store.Save(savedMetadata()))

		require.NoError(t, AbortAction(ctx, AbortOptions{Force: true}))
		err := AbortAction(ctx, AbortOptions{Force: true})
		require.ErrorIs(t, err, restackerrors.ErrNoOperation)
	})
}
