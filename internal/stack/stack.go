// Package stack discovers the chain of commits between a base and a target
// reference, together with the branches attached to each commit.
package stack

// Entry is one commit in a stack, with the local branches currently pointing
// at it. Branches is empty for commits that carry no branch.
type Entry struct {
	Commit   string   `json:"commit"`
	Branches []string `json:"branches"`
	Message  string   `json:"message"`
}

// Stack is an ordered chain of entries, oldest first, from (exclusive) the
// merge base up to (inclusive) the target ref. Each entry's commit is the
// parent of the next entry's commit.
type Stack []Entry

// Validate checks a stack for structural problems. It currently always
// succeeds; it is the hook where non-linear history detection (merge commits
// inside the chain) will live.
func Validate(s Stack) error {
	return nil
}
