package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// GetCurrentBranch returns the name of the currently checked out branch.
// Returns an error if HEAD is detached.
func GetCurrentBranch() (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}

// BranchesAt returns the names of all local branches pointing exactly at the
// given commit. The result may be empty.
func BranchesAt(commit string) ([]string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}

	hash := plumbing.NewHash(commit)
	iter, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer iter.Close()

	var branches []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Hash() == hash {
			branches = append(branches, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return branches, nil
}

// RefExists reports whether the given revision (branch name or SHA) resolves.
func RefExists(ref string) bool {
	repo, err := GetDefaultRepo()
	if err != nil {
		return false
	}
	_, err = resolveRefHash(repo, ref)
	return err == nil
}

// ForceMoveRef unconditionally repoints a branch at the given commit.
func ForceMoveRef(branchName, commit string) error {
	_, err := RunGitCommand("update-ref", "refs/heads/"+branchName, commit)
	if err != nil {
		return fmt.Errorf("failed to update branch reference %s: %w", branchName, err)
	}
	return nil
}

// CheckoutRef checks out the given ref.
func CheckoutRef(ctx context.Context, ref string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", ref)
	if err != nil {
		return fmt.Errorf("failed to checkout %s: %w", ref, err)
	}
	return nil
}
