package git

import (
	"context"
	"fmt"
)

// MockProvider is a mock implementation of Provider for testing purposes.
// Repository shape is described with maps; individual operations can be
// overridden or made to fail via the function fields.
type MockProvider struct {
	// Repository shape
	MergeBases map[string]string   // "ref1..ref2" -> sha
	Commits    []string            // oldest first, strictly after the merge base
	Branches   map[string][]string // sha -> branch names
	Messages   map[string]string   // sha -> full message
	Refs       map[string]bool     // ref -> exists
	Branch     string              // current branch
	Dir        string              // git directory

	// Rebase state
	Rewritten        []CommitInfo // newest first, returned by RecentCommits
	RebaseResult     RebaseResult
	RebaseErr        error
	InProgress       bool
	AbortErr         error
	ForceMoveRefFunc func(branchName, commit string) error

	// Recorded calls
	MovedRefs     map[string]string
	AbortCalls    int
	RebaseCalls   int
	CheckoutCalls []string
}

// NewMockProvider creates a MockProvider with empty repository shape.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		MergeBases: make(map[string]string),
		Branches:   make(map[string][]string),
		Messages:   make(map[string]string),
		Refs:       make(map[string]bool),
		MovedRefs:  make(map[string]string),
	}
}

func (m *MockProvider) MergeBase(ref1, ref2 string) (string, error) {
	if sha, ok := m.MergeBases[ref1+".."+ref2]; ok {
		return sha, nil
	}
	return "", fmt.Errorf("no merge base found between %s and %s", ref1, ref2)
}

func (m *MockProvider) RevList(ancestor, ref string) ([]string, error) {
	return append([]string{}, m.Commits...), nil
}

func (m *MockProvider) BranchesAt(commit string) ([]string, error) {
	return m.Branches[commit], nil
}

func (m *MockProvider) CommitMessage(commit string) (string, error) {
	msg, ok := m.Messages[commit]
	if !ok {
		return "", fmt.Errorf("failed to read commit %s: not found", commit)
	}
	return msg, nil
}

func (m *MockProvider) RecentCommits(ref string, count int) ([]CommitInfo, error) {
	if count > len(m.Rewritten) {
		count = len(m.Rewritten)
	}
	return append([]CommitInfo{}, m.Rewritten[:count]...), nil
}

func (m *MockProvider) RefExists(ref string) bool {
	return m.Refs[ref]
}

func (m *MockProvider) CurrentBranch() (string, error) {
	if m.Branch == "" {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return m.Branch, nil
}

func (m *MockProvider) GitDir() (string, error) {
	if m.Dir == "" {
		return "", fmt.Errorf("not a git repository")
	}
	return m.Dir, nil
}

func (m *MockProvider) RebaseOnto(ctx context.Context, newBase, oldBase, target string) (RebaseResult, error) {
	m.RebaseCalls++
	return m.RebaseResult, m.RebaseErr
}

func (m *MockProvider) AbortRebase(ctx context.Context) error {
	m.AbortCalls++
	if m.AbortErr != nil {
		return m.AbortErr
	}
	m.InProgress = false
	return nil
}

func (m *MockProvider) RebaseInProgress(ctx context.Context) bool {
	return m.InProgress
}

func (m *MockProvider) Checkout(ctx context.Context, ref string) error {
	m.CheckoutCalls = append(m.CheckoutCalls, ref)
	return nil
}

func (m *MockProvider) ForceMoveRef(branchName, commit string) error {
	if m.ForceMoveRefFunc != nil {
		if err := m.ForceMoveRefFunc(branchName, commit); err != nil {
			return err
		}
	}
	m.MovedRefs[branchName] = commit
	return nil
}
