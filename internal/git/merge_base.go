package git

import (
	"fmt"
)

// GetMergeBase returns the merge base between two refs (branches or SHAs)
func GetMergeBase(ref1Name, ref2Name string) (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	hash1, err := resolveRefHash(repo, ref1Name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", ref1Name, err)
	}

	hash2, err := resolveRefHash(repo, ref2Name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", ref2Name, err)
	}

	commit1, err := repo.CommitObject(hash1)
	if err != nil {
		return "", fmt.Errorf("failed to get commit for %s: %w", ref1Name, err)
	}

	commit2, err := repo.CommitObject(hash2)
	if err != nil {
		return "", fmt.Errorf("failed to get commit for %s: %w", ref2Name, err)
	}

	mergeBases, err := commit1.MergeBase(commit2)
	if err != nil {
		return "", fmt.Errorf("failed to find merge base: %w", err)
	}

	if len(mergeBases) == 0 {
		return "", fmt.Errorf("no merge base found between %s and %s", ref1Name, ref2Name)
	}

	return mergeBases[0].Hash.String(), nil
}
