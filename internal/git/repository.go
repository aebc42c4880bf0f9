package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// OpenRepository opens a git repository at the given path
func OpenRepository(path string) (*Repository, error) {
	// Resolve to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// GetRepoRoot returns the root directory of the repository containing the
// current working directory.
func GetRepoRoot() (string, error) {
	return RunGitCommand("rev-parse", "--show-toplevel")
}

// GetGitDir returns the absolute path to the repository's git directory.
// Operation state lives here so that two repositories never share state.
func GetGitDir() (string, error) {
	return RunGitCommand("rev-parse", "--absolute-git-dir")
}

var defaultRepo *Repository

// InitDefaultRepo initializes the default repository from the current directory
func InitDefaultRepo() error {
	if defaultRepo != nil {
		return nil // Already initialized
	}

	repoRoot, err := GetRepoRoot()
	if err != nil {
		return err
	}

	repo, err := OpenRepository(repoRoot)
	if err != nil {
		return err
	}

	defaultRepo = repo
	return nil
}

// GetDefaultRepo returns the default repository (must call InitDefaultRepo first)
func GetDefaultRepo() (*Repository, error) {
	if defaultRepo == nil {
		return nil, fmt.Errorf("repository not initialized, call InitDefaultRepo first")
	}
	return defaultRepo, nil
}

// resolveRefHash resolves a ref name (branch, remote ref, SHA) to a commit hash
func resolveRefHash(repo *Repository, name string) (plumbing.Hash, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(name))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	return *hash, nil
}
