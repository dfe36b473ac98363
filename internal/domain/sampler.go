package domain

import (
	"fmt"
	"strconv"
)

const charset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// reservedNames is the number of pool names taken by buffer, index and
// threshold.
const reservedNames = 3

// Sample holds every randomly chosen quantity of one guarded write.
type Sample struct {
	BufVar    string
	IdxVar    string
	ThreshVar string
	BufLen    int
	IdxInit   int
	Thresh    int
	TrueIdx   int
	FalseIdx  int
	Char      byte
}

// Cond reports which branch of the guard executes.
func (s Sample) Cond() bool {
	return s.IdxInit < s.Thresh
}

// Safe reports whether the guarded write stays within the buffer on the
// branch that executes.
func (s Sample) Safe() bool {
	if s.Cond() {
		return s.TrueIdx < s.BufLen
	}

	return s.FalseIdx < s.BufLen
}

// Substitutions builds the placeholder context for the guard templates.
func (s Sample) Substitutions() Substitutions {
	return Substitutions{
		PhBufVar:    s.BufVar,
		PhIdxVar:    s.IdxVar,
		PhThreshVar: s.ThreshVar,
		PhBufLen:    strconv.Itoa(s.BufLen),
		PhIdxInit:   strconv.Itoa(s.IdxInit),
		PhThresh:    strconv.Itoa(s.Thresh),
		PhTrueIdx:   strconv.Itoa(s.TrueIdx),
		PhFalseIdx:  strconv.Itoa(s.FalseIdx),
		PhChar:      string(s.Char),
	}
}

// NamePool hands out unused variable names, last name first.
type NamePool struct {
	free []string
}

// NewNamePool wraps names; the slice is copied.
func NewNamePool(names []string) *NamePool {
	return &NamePool{free: append([]string(nil), names...)}
}

// Remaining returns the number of unused names.
func (p *NamePool) Remaining() int {
	return len(p.free)
}

// TakePair pops two distinct names for a decoy fragment.
func (p *NamePool) TakePair() (string, string, error) {
	if len(p.free) < 2 {
		return "", "", fmt.Errorf("%w: need 2 names, %d remaining", ErrPoolExhausted, len(p.free))
	}

	n := len(p.free)
	first, second := p.free[n-1], p.free[n-2]
	p.free = p.free[:n-2]

	return first, second, nil
}

// Sampler draws names and values from a shared random stream.
type Sampler struct {
	rnd  Rand
	opts Options
}

// NewSampler returns a Sampler over rnd.
func NewSampler(rnd Rand, opts Options) *Sampler {
	return &Sampler{rnd: rnd, opts: opts}
}

// Names returns a shuffled permutation of the anonymized name pool.
func (s *Sampler) Names() []string {
	names := make([]string, s.opts.PoolSize)
	for i := range names {
		names[i] = s.opts.VarPrefix + strconv.Itoa(i)
	}

	s.rnd.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	return names
}

// Index returns a value in [0, MaxIdx).
func (s *Sampler) Index() int {
	return s.rnd.IntN(s.opts.MaxIdx)
}

// Char returns a random ASCII letter or digit.
func (s *Sampler) Char() byte {
	return charset[s.rnd.IntN(len(charset))]
}

// Sample draws a fresh pool and every quantity of the guarded write. The
// returned pool holds the names left over for decoys.
func (s *Sampler) Sample() (Sample, *NamePool) {
	names := s.Names()

	sample := Sample{
		BufVar:    names[0],
		IdxVar:    names[1],
		ThreshVar: names[2],
		BufLen:    s.Index(),
		IdxInit:   s.Index(),
		Thresh:    s.Index(),
		TrueIdx:   s.Index(),
		FalseIdx:  s.Index(),
		Char:      s.Char(),
	}

	return sample, NewNamePool(names[reservedNames:])
}
