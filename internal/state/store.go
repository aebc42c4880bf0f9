// Package state persists the metadata of an in-flight stack rebase so the
// operation can survive a conflict pause and be resumed or aborted by a later
// process invocation.
package state

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	restackerrors "restack.dev/restack/internal/errors"
	"restack.dev/restack/internal/stack"
)

// StateFileName is the name of the operation state file inside the git directory.
const StateFileName = ".restack_operation"

// OperationMetadata is the durable record of one in-flight stack rebase.
// Its presence is the "operation in progress" flag: at most one exists per
// repository at a time.
type OperationMetadata struct {
	BaseBranch     string
	TargetBranch   string
	OriginalBranch string
	MergeBase      string
	Stack          stack.Stack
	Timestamp      time.Time
}

// Store reads and writes operation metadata for a single repository.
// The file lives inside that repository's git directory so that operations
// on separate repositories never collide.
type Store struct {
	gitDir string
}

// NewStore creates a Store scoped to the given git directory.
func NewStore(gitDir string) *Store {
	return &Store{gitDir: gitDir}
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.gitDir, StateFileName)
}

// record is the serialized form of OperationMetadata. Pointer fields let Load
// distinguish absent/null required fields from empty values.
type record struct {
	BaseBranch     *string       `json:"baseBranch"`
	TargetBranch   *string       `json:"targetBranch"`
	OriginalBranch *string       `json:"originalBranch"`
	MergeBase      *string       `json:"mergeBase"`
	Stack          []recordEntry `json:"stack"`
	Timestamp      *time.Time    `json:"timestamp,omitempty"`
}

type recordEntry struct {
	Commit   string   `json:"commit"`
	Branches []string `json:"branches"`
	// Message is base64-encoded so that arbitrary commit message bytes
	// (quotes, newlines, control characters) can never corrupt the record.
	Message string `json:"message"`
}

// rawRecord mirrors record but keeps the stack as raw JSON so a missing
// stack key can be told apart from an empty one.
type rawRecord struct {
	BaseBranch     *string         `json:"baseBranch"`
	TargetBranch   *string         `json:"targetBranch"`
	OriginalBranch *string         `json:"originalBranch"`
	MergeBase      *string         `json:"mergeBase"`
	Stack          json.RawMessage `json:"stack"`
	Timestamp      *time.Time      `json:"timestamp"`
}

// Save serializes and writes the metadata, unconditionally overwriting any
// prior record.
func (s *Store) Save(meta *OperationMetadata) error {
	rec := record{
		BaseBranch:     &meta.BaseBranch,
		TargetBranch:   &meta.TargetBranch,
		OriginalBranch: &meta.OriginalBranch,
		MergeBase:      &meta.MergeBase,
		Stack:          make([]recordEntry, 0, len(meta.Stack)),
	}
	if !meta.Timestamp.IsZero() {
		rec.Timestamp = &meta.Timestamp
	}
	for _, entry := range meta.Stack {
		rec.Stack = append(rec.Stack, recordEntry{
			Commit:   entry.Commit,
			Branches: entry.Branches,
			Message:  base64.StdEncoding.EncodeToString([]byte(entry.Message)),
		})
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal operation state: %w", err)
	}
	return os.WriteFile(s.Path(), data, 0600)
}

// Load reads the metadata back. It returns ErrNoOperation when no record
// exists, an InvalidStateError when the file is not valid JSON, and a
// MissingFieldError naming every required field that is absent or null.
func (s *Store) Load() (*OperationMetadata, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, restackerrors.ErrNoOperation
		}
		return nil, fmt.Errorf("failed to read operation state: %w", err)
	}

	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, restackerrors.NewInvalidStateError(s.Path(), err)
	}

	var missing []string
	if raw.BaseBranch == nil {
		missing = append(missing, "baseBranch")
	}
	if raw.TargetBranch == nil {
		missing = append(missing, "targetBranch")
	}
	if raw.OriginalBranch == nil {
		missing = append(missing, "originalBranch")
	}
	if raw.MergeBase == nil {
		missing = append(missing, "mergeBase")
	}
	if raw.Stack == nil || string(raw.Stack) == "null" {
		missing = append(missing, "stack")
	}
	if len(missing) > 0 {
		return nil, restackerrors.NewMissingFieldError(missing...)
	}

	var entries []recordEntry
	if err := json.Unmarshal(raw.Stack, &entries); err != nil {
		return nil, restackerrors.NewInvalidStateError(s.Path(), err)
	}

	meta := &OperationMetadata{
		BaseBranch:     *raw.BaseBranch,
		TargetBranch:   *raw.TargetBranch,
		OriginalBranch: *raw.OriginalBranch,
		MergeBase:      *raw.MergeBase,
		Stack:          make(stack.Stack, 0, len(entries)),
	}
	if raw.Timestamp != nil {
		meta.Timestamp = *raw.Timestamp
	}
	for _, entry := range entries {
		message := entry.Message
		if decoded, err := base64.StdEncoding.DecodeString(entry.Message); err == nil {
			message = string(decoded)
		}
		// On decode failure the raw stored text is kept; one garbled
		// message must not make the whole record unreadable.
		meta.Stack = append(meta.Stack, stack.Entry{
			Commit:   entry.Commit,
			Branches: entry.Branches,
			Message:  message,
		})
	}

	return meta, nil
}

// Exists reports whether an operation record is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Delete removes the operation record. Deleting a nonexistent record is not
// an error.
func (s *Store) Delete() error {
	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear operation state: %w", err)
	}
	return nil
}
