package domain

import "fmt"

// Options tunes instance generation.
type Options struct {
	// MaxIdx bounds every sampled length and index to [0, MaxIdx).
	MaxIdx int
	// PoolSize is the number of anonymized variable names per draft.
	PoolSize int
	// VarPrefix is prepended to the pool index to build variable names.
	VarPrefix string
	// MaxDecoys caps the number of decoy fragments per draft.
	MaxDecoys int
	// MinDecoysTautOnly is the decoy floor when the guarded write is omitted.
	MinDecoysTautOnly int
	// IncludeCondWrite appends the guarded buffer write after the guard.
	IncludeCondWrite bool
	// Annotate appends each line's tag as a trailing comment.
	Annotate bool
	// Indent prefixes every body line.
	Indent string
}

// DefaultOptions returns the stock generator settings.
func DefaultOptions() Options {
	return Options{
		MaxIdx:            100,
		PoolSize:          10,
		VarPrefix:         "entity_",
		MaxDecoys:         2,
		MinDecoysTautOnly: 1,
		IncludeCondWrite:  true,
		Annotate:          true,
		Indent:            "    ",
	}
}

// minDecoys is the decoy floor for the current mode. Without the guarded
// write a draft needs at least one decoy to carry any safety signal.
func (o Options) minDecoys() int {
	if o.IncludeCondWrite {
		return 0
	}

	return max(o.MinDecoysTautOnly, 1)
}

// Validate reports option combinations the generator cannot honor.
func (o Options) Validate() error {
	if o.MaxIdx <= 0 {
		return fmt.Errorf("max idx must be positive, got %d", o.MaxIdx)
	}

	if o.PoolSize < reservedNames {
		return fmt.Errorf("pool size must be at least %d, got %d", reservedNames, o.PoolSize)
	}

	if o.MaxDecoys < o.minDecoys() {
		return fmt.Errorf("max decoys %d below required minimum %d", o.MaxDecoys, o.minDecoys())
	}

	return nil
}
