package domain

import (
	"fmt"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

// Line is one unsubstituted template line and its tag.
type Line struct {
	Text string
	Tag  m.Tag
}

// Draft is the in-progress body of one instance: template lines and their
// tags, kept the same length through every mutation.
type Draft struct {
	lines []string
	tags  []m.Tag
}

// NewDraft returns an empty Draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Len returns the number of body lines.
func (d *Draft) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the template lines.
func (d *Draft) Lines() []string {
	return append([]string(nil), d.lines...)
}

// Tags returns a copy of the body tags.
func (d *Draft) Tags() []m.Tag {
	return append([]m.Tag(nil), d.tags...)
}

// Append adds lines to the end of the draft.
func (d *Draft) Append(lines ...Line) {
	for _, line := range lines {
		d.lines = append(d.lines, line.Text)
		d.tags = append(d.tags, line.Tag)
	}
}

// Merge inserts items into the draft at sorted insertion points. positions[i]
// is an index into the draft as it was before the call; items[i] lands
// immediately before the line that was at that index, and items sharing a
// position keep their relative order.
func (d *Draft) Merge(items []Line, positions []int) error {
	if len(items) != len(positions) {
		return fmt.Errorf("%w: %d items for %d positions", ErrInvalidPosition, len(items), len(positions))
	}

	prev := 0
	for _, pos := range positions {
		if pos < prev || pos > len(d.lines) {
			return fmt.Errorf("%w: %v over %d lines", ErrInvalidPosition, positions, len(d.lines))
		}

		prev = pos
	}

	lines := make([]string, 0, len(d.lines)+len(items))
	tags := make([]m.Tag, 0, len(d.tags)+len(items))
	prev = 0

	for i, pos := range positions {
		lines = append(lines, d.lines[prev:pos]...)
		tags = append(tags, d.tags[prev:pos]...)
		lines = append(lines, items[i].Text)
		tags = append(tags, items[i].Tag)
		prev = pos
	}

	d.lines = append(lines, d.lines[prev:]...)
	d.tags = append(tags, d.tags[prev:]...)

	return d.Check()
}

// Check verifies that lines and tags still line up.
func (d *Draft) Check() error {
	if len(d.lines) != len(d.tags) {
		return fmt.Errorf("%w: %d lines, %d tags", ErrInvariantViolation, len(d.lines), len(d.tags))
	}

	return nil
}

// FullTags returns the body tags wrapped in the function skeleton's tags.
func (d *Draft) FullTags() []m.Tag {
	tags := make([]m.Tag, 0, skeletonHeadLines+len(d.tags)+skeletonTailLines)
	tags = append(tags, m.TagOther, m.TagOther, m.TagOther)
	tags = append(tags, d.tags...)

	return append(tags, m.TagBody, m.TagOther)
}

// Region is the half-open interval [Start, End) of draft lines holding the
// guard and its optional guarded write.
type Region struct {
	Start int
	End   int
}

// Len returns the number of lines in the region.
func (r Region) Len() int {
	return r.End - r.Start
}

// Contains reports whether line index i lies in the region.
func (r Region) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Splits reports whether inserting at position would land between two
// region lines.
func (r Region) Splits(position int) bool {
	return position > r.Start && position < r.End
}

// ApplyInsertion returns the region after count lines are inserted at
// position, where position indexes the draft before the insertion.
func (r Region) ApplyInsertion(position, count int) Region {
	out := r
	if position <= r.Start {
		out.Start += count
	}

	if position < r.End {
		out.End += count
	}

	return out
}

// ApplyMerge returns the region after one line is inserted at each of
// positions, all indexing the draft before the merge.
func (r Region) ApplyMerge(positions []int) Region {
	out := r
	for _, pos := range positions {
		shifted := r.ApplyInsertion(pos, 1)
		out.Start += shifted.Start - r.Start
		out.End += shifted.End - r.End
	}

	return out
}
