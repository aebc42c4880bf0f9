// Package errors provides sentinel errors and custom error types for the restack application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNoOperation indicates that no stack rebase operation is in progress
	ErrNoOperation = errors.New("no operation in progress")

	// ErrOperationInProgress indicates that a stack rebase operation is already in progress
	ErrOperationInProgress = errors.New("operation already in progress")

	// ErrRebaseInProgress indicates that git reports an unresolved rebase
	ErrRebaseInProgress = errors.New("rebase in progress")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrEmptyStack indicates that there are no commits between base and target
	ErrEmptyStack = errors.New("no commits between base and target")

	// ErrCorruptState indicates that the persisted operation state is unreadable
	ErrCorruptState = errors.New("corrupt operation state")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// InvalidStateError represents persisted operation state whose top-level
// structure could not be parsed.
type InvalidStateError struct {
	Path string
	Err  error
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid structure in operation state %s: %v", e.Path, e.Err)
}

func (e *InvalidStateError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCorruptState
func (e *InvalidStateError) Is(target error) bool {
	return target == ErrCorruptState
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(path string, err error) *InvalidStateError {
	return &InvalidStateError{Path: path, Err: err}
}

// MissingFieldError represents persisted operation state that parsed but is
// missing one or more required fields.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("operation state missing required field(s): %s", strings.Join(e.Fields, ", "))
}

// Is returns true if the target error is ErrCorruptState
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrCorruptState
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(fields ...string) *MissingFieldError {
	return &MissingFieldError{Fields: fields}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
