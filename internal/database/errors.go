package database

import "errors"

// Validation and lookup errors shared by the collection repositories.
// Callers branch with errors.Is; anything else coming out of a repository is
// a persistence failure, in which case the transaction has rolled back and
// stored state is unchanged.
var (
	// ErrNotFound means the update/delete target id does not exist. This is
	// an expected condition (stale favourite references and the like), not a
	// fault.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName means a category with that name already exists.
	ErrDuplicateName = errors.New("name already exists")

	// ErrEmptyText means a required text field was empty after trimming.
	ErrEmptyText = errors.New("text must not be empty")

	// ErrWordLength means an auxiliary word is longer than the allowed
	// rune count.
	ErrWordLength = errors.New("word exceeds maximum length")
)
