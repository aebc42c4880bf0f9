// Package runtime provides a context type that holds the git provider, state
// store, and logger for use throughout the application. This avoids passing
// multiple parameters.
package runtime

import (
	"context"
	"fmt"

	"restack.dev/restack/internal/git"
	"restack.dev/restack/internal/state"
	"restack.dev/restack/internal/tui"
)

// Context provides access to the git provider, state store, and output for commands
type Context struct {
	Context  context.Context
	Provider git.Provider
	Store    *state.Store
	Splog    *tui.Splog
	RepoRoot string
}

// NewContext creates a context with the given provider and store.
// Tests use this to inject mocks.
func NewContext(provider git.Provider, store *state.Store) *Context {
	return &Context{
		Context:  context.Background(),
		Provider: provider,
		Store:    store,
		Splog:    tui.NewSplog(),
	}
}

// GetContext builds the real context for the repository containing the
// current working directory. Fails when not inside a git repository.
func GetContext() (*Context, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}

	gitDir, err := git.GetGitDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate git directory: %w", err)
	}

	ctx := NewContext(git.NewProvider(), state.NewStore(gitDir))
	ctx.RepoRoot = repoRoot
	return ctx, nil
}
