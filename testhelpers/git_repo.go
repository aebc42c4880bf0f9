// Package testhelpers provides a real git repository fixture for integration
// tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init', with a deterministic identity and no global config.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	for _, config := range [][]string{
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
	} {
		if _, err := repo.Git(config...); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// Git runs a git command in the repository and returns its trimmed output.
func (r *GitRepo) Git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %v failed: %w\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output)), nil
}

// CommitFile writes a file and commits it with the given message, returning
// the new commit SHA.
func (r *GitRepo) CommitFile(name, content, message string) (string, error) {
	path := filepath.Join(r.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if _, err := r.Git("add", name); err != nil {
		return "", err
	}
	if _, err := r.Git("commit", "-m", message); err != nil {
		return "", err
	}
	return r.Git("rev-parse", "HEAD")
}

// CreateBranch creates a branch at HEAD without checking it out.
func (r *GitRepo) CreateBranch(name string) error {
	_, err := r.Git("branch", name)
	return err
}

// Checkout checks out the given ref.
func (r *GitRepo) Checkout(ref string) error {
	_, err := r.Git("checkout", ref)
	return err
}

// CreateAndCheckoutBranch creates a branch at HEAD and checks it out.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	_, err := r.Git("checkout", "-b", name)
	return err
}

// RevParse resolves a revision to a SHA.
func (r *GitRepo) RevParse(rev string) (string, error) {
	return r.Git("rev-parse", rev)
}
