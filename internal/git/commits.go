package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// CommitInfo pairs a commit SHA with its full message text.
type CommitInfo struct {
	SHA     string
	Message string
}

// GetCommitMessage returns the full commit message (subject and body) of the
// given commit.
func GetCommitMessage(commit string) (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	obj, err := repo.CommitObject(plumbing.NewHash(commit))
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", commit, err)
	}
	return obj.Message, nil
}

// RevList returns the SHAs of commits strictly after ancestor up to and
// including ref, following first parents, ordered oldest first.
func RevList(ancestor, ref string) ([]string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}

	tip, err := resolveRefHash(repo, ref)
	if err != nil {
		return nil, err
	}
	stop := plumbing.NewHash(ancestor)

	var shas []string
	commit, err := repo.CommitObject(tip)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", tip, err)
	}
	for commit.Hash != stop {
		shas = append(shas, commit.Hash.String())
		if commit.NumParents() == 0 {
			return nil, fmt.Errorf("%s is not reachable from %s", ancestor, ref)
		}
		commit, err = commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("failed to read parent commit: %w", err)
		}
	}

	// Walked newest to oldest; callers need oldest first.
	for i, j := 0, len(shas)-1; i < j; i, j = i+1, j-1 {
		shas[i], shas[j] = shas[j], shas[i]
	}
	return shas, nil
}

// RecentCommits returns the count most recent commits reachable from ref
// (HEAD when ref is empty), newest first.
func RecentCommits(ref string, count int) ([]CommitInfo, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}

	opts := &gogit.LogOptions{}
	if ref != "" {
		hash, err := resolveRefHash(repo, ref)
		if err != nil {
			return nil, err
		}
		opts.From = hash
	}

	iter, err := repo.Log(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read log for %s: %w", ref, err)
	}
	defer iter.Close()

	var commits []CommitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= count {
			return storer.ErrStop
		}
		commits = append(commits, CommitInfo{SHA: c.Hash.String(), Message: c.Message})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate log: %w", err)
	}
	return commits, nil
}
