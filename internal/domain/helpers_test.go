package domain

import (
	"fmt"
	"slices"
)

// fakeRand replays a fixed script of IntN results and never shuffles.
type fakeRand struct {
	ints []int
	pos  int
}

func newFakeRand(ints ...int) *fakeRand {
	return &fakeRand{ints: ints}
}

func (f *fakeRand) IntN(n int) int {
	if f.pos >= len(f.ints) {
		panic(fmt.Sprintf("fakeRand: script exhausted at draw %d (n=%d)", f.pos, n))
	}

	v := f.ints[f.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("fakeRand: draw %d is %d, outside [0, %d)", f.pos, v, n))
	}

	f.pos++

	return v
}

func (f *fakeRand) Shuffle(_ int, _ func(i, j int)) {}

func (f *fakeRand) drained() bool {
	return f.pos == len(f.ints)
}

func indexOf(lines []string, text string) int {
	return slices.Index(lines, text)
}
