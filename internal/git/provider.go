package git

import (
	"context"
)

// Provider defines the git operations the stack rebase machinery depends on.
// This allows the core logic to be used with both real git and mock
// implementations.
type Provider interface {
	// History and refs (read-only)
	MergeBase(ref1, ref2 string) (string, error)
	RevList(ancestor, ref string) ([]string, error)
	BranchesAt(commit string) ([]string, error)
	CommitMessage(commit string) (string, error)
	RecentCommits(ref string, count int) ([]CommitInfo, error)
	RefExists(ref string) bool
	CurrentBranch() (string, error)
	GitDir() (string, error)

	// Mutations
	RebaseOnto(ctx context.Context, newBase, oldBase, target string) (RebaseResult, error)
	AbortRebase(ctx context.Context) error
	RebaseInProgress(ctx context.Context) bool
	Checkout(ctx context.Context, ref string) error
	ForceMoveRef(branchName, commit string) error
}

// NewProvider returns a standard implementation of Provider that calls
// the package-level git functions.
func NewProvider() Provider {
	return &realProvider{}
}

// realProvider implements Provider by calling the actual git package functions
type realProvider struct{}

func (p *realProvider) MergeBase(ref1, ref2 string) (string, error) {
	return GetMergeBase(ref1, ref2)
}

func (p *realProvider) RevList(ancestor, ref string) ([]string, error) {
	return RevList(ancestor, ref)
}

func (p *realProvider) BranchesAt(commit string) ([]string, error) {
	return BranchesAt(commit)
}

func (p *realProvider) CommitMessage(commit string) (string, error) {
	return GetCommitMessage(commit)
}

func (p *realProvider) RecentCommits(ref string, count int) ([]CommitInfo, error) {
	return RecentCommits(ref, count)
}

func (p *realProvider) RefExists(ref string) bool {
	return RefExists(ref)
}

func (p *realProvider) CurrentBranch() (string, error) {
	return GetCurrentBranch()
}

func (p *realProvider) GitDir() (string, error) {
	return GetGitDir()
}

func (p *realProvider) RebaseOnto(ctx context.Context, newBase, oldBase, target string) (RebaseResult, error) {
	return RebaseOnto(ctx, newBase, oldBase, target)
}

func (p *realProvider) AbortRebase(ctx context.Context) error {
	return RebaseAbort(ctx)
}

func (p *realProvider) RebaseInProgress(ctx context.Context) bool {
	return IsRebaseInProgress(ctx)
}

func (p *realProvider) Checkout(ctx context.Context, ref string) error {
	return CheckoutRef(ctx, ref)
}

func (p *realProvider) ForceMoveRef(branchName, commit string) error {
	return ForceMoveRef(branchName, commit)
}
