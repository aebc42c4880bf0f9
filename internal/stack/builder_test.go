package stack

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/git"
)

func newLinearRepo() *git.MockProvider {
	mock := git.NewMockProvider()
	mock.MergeBases["main..feature-2"] = "mb0"
	mock.Commits = []string{"c1", "c2", "c3"}
	mock.Branches["c1"] = []string{"feature-1"}
	mock.Branches["c3"] = []string{"feature-2", "hotfix"}
	mock.Messages["c1"] = "Add auth"
	mock.Messages["c2"] = "wip"
	mock.Messages["c3"] = "Add settings"
	return mock
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("returns every commit oldest first with its branches", func(t *testing.T) {
		t.Parallel()
		mock := newLinearRepo()

		s, err := Build(mock, "main", "feature-2")
		require.NoError(t, err)
		require.Len(t, s, 3)

		require.Equal(t, "c1", s[0].Commit)
		require.Equal(t, []string{"feature-1"}, s[0].Branches)
		require.Equal(t, "Add auth", s[0].Message)

		require.Equal(t, "c2", s[1].Commit)
		require.Empty(t, s[1].Branches)
		require.Equal(t, "wip", s[1].Message)

		require.Equal(t, "c3", s[2].Commit)
		require.Equal(t, []string{"feature-2", "hotfix"}, s[2].Branches)
		require.Equal(t, "Add settings", s[2].Message)
	})

	t.Run("rejects an empty commit range", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()
		mock.MergeBases["main..main"] = "mb0"

		_, err := Build(mock, "main", "main")
		require.ErrorIs(t, err, restackerrors.ErrEmptyStack)
	})

	t.Run("propagates merge base failure naming both refs", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockProvider()

		_, err := Build(mock, "main", "orphan")
		require.Error(t, err)
		require.Contains(t, err.Error(), "main")
		require.Contains(t, err.Error(), "orphan")
	})

	t.Run("aborts the whole build when a message lookup fails", func(t *testing.T) {
		t.Parallel()
		mock := newLinearRepo()
		delete(mock.Messages, "c2")

		_, err := Build(mock, "main", "feature-2")
		require.Error(t, err)
		require.Contains(t, err.Error(), "c2")
	})

	t.Run("preserves multi-line and unicode messages verbatim", func(t *testing.T) {
		t.Parallel()
		mock := newLinearRepo()
		mock.Commits = []string{"c1"}
		mock.Messages["c1"] = "Fix \"quoting\"\n\nBody with unicode: héllo → wörld\tand tabs\n"

		s, err := Build(mock, "main", "feature-2")
		require.NoError(t, err)
		require.Equal(t, mock.Messages["c1"], s[0].Message)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts any stack", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Validate(nil))
		require.NoError(t, Validate(Stack{}))

		s := make(Stack, 0, 10)
		for i := 0; i < 10; i++ {
			s = append(s, Entry{Commit: fmt.Sprintf("c%d", i)})
		}
		require.NoError(t, Validate(s))
	})
}
