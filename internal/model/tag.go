// Package model defines the data structures shared by the generator layers.
package model

import "fmt"

// Tag labels a single generated line with its buffer-safety relevance.
// The integer values are stable and are what metadata files store.
type Tag int

const (
	// TagOther marks boilerplate such as the include, signature and braces.
	TagOther Tag = iota
	// TagBody marks lines with no buffer-safety signal.
	TagBody
	// TagBufwriteCondSafe marks the guarded write when the live branch stays in bounds.
	TagBufwriteCondSafe
	// TagBufwriteCondUnsafe marks the guarded write when the live branch overflows.
	TagBufwriteCondUnsafe
	// TagBufwriteTautSafe marks a decoy write whose index is statically in bounds.
	TagBufwriteTautSafe
	// TagBufwriteTautUnsafe marks a decoy write whose index is statically out of bounds.
	TagBufwriteTautUnsafe
)

// AllTags lists every tag in identifier order.
var AllTags = []Tag{
	TagOther,
	TagBody,
	TagBufwriteCondSafe,
	TagBufwriteCondUnsafe,
	TagBufwriteTautSafe,
	TagBufwriteTautUnsafe,
}

var tagNames = [...]string{
	TagOther:              "OTHER",
	TagBody:               "BODY",
	TagBufwriteCondSafe:   "BUFWRITE_COND_SAFE",
	TagBufwriteCondUnsafe: "BUFWRITE_COND_UNSAFE",
	TagBufwriteTautSafe:   "BUFWRITE_TAUT_SAFE",
	TagBufwriteTautUnsafe: "BUFWRITE_TAUT_UNSAFE",
}

func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tag(%d)", int(t))
	}

	return tagNames[t]
}

// Valid reports whether t is one of the six defined tags.
func (t Tag) Valid() bool {
	return t >= TagOther && t <= TagBufwriteTautUnsafe
}

// IsBufwrite reports whether t marks a buffer write of either kind.
func (t Tag) IsBufwrite() bool {
	return t >= TagBufwriteCondSafe && t <= TagBufwriteTautUnsafe
}

// IsUnsafe reports whether t marks an out-of-bounds write.
func (t Tag) IsUnsafe() bool {
	return t == TagBufwriteCondUnsafe || t == TagBufwriteTautUnsafe
}

// CondTag returns the tag for the control-flow dependent write.
func CondTag(safe bool) Tag {
	if safe {
		return TagBufwriteCondSafe
	}

	return TagBufwriteCondUnsafe
}

// TautTag returns the tag for a decoy write.
func TautTag(safe bool) Tag {
	if safe {
		return TagBufwriteTautSafe
	}

	return TagBufwriteTautUnsafe
}
