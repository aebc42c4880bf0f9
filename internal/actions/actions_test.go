package actions

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"restack.dev/restack/internal/git"
	"restack.dev/restack/internal/runtime"
	"restack.dev/restack/internal/stack"
	"restack.dev/restack/internal/state"
	"restack.dev/restack/internal/tui"
)

// newTestContext builds a runtime context around a mock provider and a state
// store in a temp directory, with console output discarded.
func newTestContext(t *testing.T, provider git.Provider) *runtime.Context {
	t.Helper()

	splog, err := tui.NewSplogWithConfig(io.Discard, "")
	require.NoError(t, err)

	return &runtime.Context{
		Context:  context.Background(),
		Provider: provider,
		Store:    state.NewStore(t.TempDir()),
		Splog:    splog,
	}
}

// newStackedRepo describes a repository with three stacked commits on top of
// main, two of them carrying branches, and a rebase that rewrites all three.
func newStackedRepo() *git.MockProvider {
	mock := git.NewMockProvider()
	mock.MergeBases["main..feature-2"] = "mb0"
	mock.Commits = []string{"c1", "c2", "c3"}
	mock.Branches["c1"] = []string{"feature-1"}
	mock.Branches["c3"] = []string{"feature-2", "hotfix"}
	mock.Messages["c1"] = "Add auth"
	mock.Messages["c2"] = "wip"
	mock.Messages["c3"] = "Add settings"
	mock.Refs["main"] = true
	mock.Refs["feature-2"] = true
	mock.Branch = "feature-2"
	mock.RebaseResult = git.RebaseDone
	mock.Rewritten = []git.CommitInfo{
		{SHA: "n3", Message: "Add settings"},
		{SHA: "n2", Message: "wip"},
		{SHA: "n1", Message: "Add auth"},
	}
	return mock
}

func savedMetadata() *state.OperationMetadata {
	return &state.OperationMetadata{
		BaseBranch:     "main",
		TargetBranch:   "feature-2",
		OriginalBranch: "feature-2",
		MergeBase:      "mb0",
		Stack: stack.Stack{
			{Commit: "c1", Branches: []string{"feature-1"}, Message: "Add auth"},
			{Commit: "c2", Branches: nil, Message: "wip"},
			{Commit: "c3", Branches: []string{"feature-2", "hotfix"}, Message: "Add settings"},
		},
		Timestamp: time.Now(),
	}
}

func startOpts() StartOptions {
	return StartOptions{BaseBranch: "main", TargetBranch: "feature-2"}
}
