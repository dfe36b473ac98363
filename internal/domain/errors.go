package domain

import "errors"

// Generation errors
var (
	// ErrPoolExhausted indicates that a decoy fragment needed two unused
	// variable names and fewer remained in the pool.
	ErrPoolExhausted = errors.New("variable pool exhausted")

	// ErrInvariantViolation indicates that the line and tag sequences no longer
	// line up. It always points at a broken insertion computation.
	ErrInvariantViolation = errors.New("line/tag invariant violated")

	// ErrInvalidPosition indicates an insertion point outside the draft or out
	// of sorted order.
	ErrInvalidPosition = errors.New("invalid insertion position")

	// ErrUnknownPlaceholder indicates a template referencing a name that the
	// substitution context does not define.
	ErrUnknownPlaceholder = errors.New("unknown template placeholder")
)
