package domain

import (
	"fmt"
	"slices"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

// Decoy is one control-flow independent declare/initialize/write fragment.
type Decoy struct {
	BufVar string
	IdxVar string
	Len    int
	Idx    int
	Char   byte
}

// Safe reports whether the decoy write stays within its buffer.
func (dc Decoy) Safe() bool {
	return dc.Idx < dc.Len
}

func (dc Decoy) bufDecl() Line {
	return Line{Text: fmt.Sprintf(decoyBufDeclFormat, dc.BufVar, dc.Len), Tag: m.TagBody}
}

func (dc Decoy) idxDecl() Line {
	return Line{Text: fmt.Sprintf(decoyIdxDeclFormat, dc.IdxVar), Tag: m.TagBody}
}

func (dc Decoy) idxInit() Line {
	return Line{Text: fmt.Sprintf(decoyIdxInitFormat, dc.IdxVar, dc.Idx), Tag: m.TagBody}
}

func (dc Decoy) write() Line {
	return Line{Text: fmt.Sprintf(decoyWriteFormat, dc.BufVar, dc.IdxVar, dc.Char), Tag: m.TautTag(dc.Safe())}
}

// decoyInserter splices decoy fragments around the control-flow region.
type decoyInserter struct {
	rnd     Rand
	sampler *Sampler
	pool    *NamePool
}

// insert adds one decoy fragment to d and returns the shifted region.
func (di *decoyInserter) insert(d *Draft, region Region) (Region, Decoy, error) {
	bufVar, idxVar, err := di.pool.TakePair()
	if err != nil {
		return region, Decoy{}, err
	}

	decoy := Decoy{
		BufVar: bufVar,
		IdxVar: idxVar,
		Len:    di.sampler.Index(),
		Idx:    di.sampler.Index(),
		Char:   di.sampler.Char(),
	}

	// The index declaration precedes its initialization; the buffer
	// declaration takes any of the three slots.
	setup := []Line{decoy.idxDecl(), decoy.idxInit()}
	slot := di.rnd.IntN(len(setup) + 1)
	setup = slices.Insert(setup, slot, decoy.bufDecl())

	lo, hi := 0, region.Start
	if di.rnd.IntN(2) == 1 {
		lo, hi = region.End, d.Len()
	}

	positions := sortedPositions(di.rnd, len(setup), lo, hi)
	positions = append(positions, di.writePosition(d, region, positions[len(positions)-1]))

	if err := d.Merge(append(setup, decoy.write()), positions); err != nil {
		return region, Decoy{}, fmt.Errorf("failed to insert decoy %s: %w", decoy.BufVar, err)
	}

	return region.ApplyMerge(positions), decoy, nil
}

// writePosition picks where the decoy write goes: no earlier than its last
// setup line and never between two lines of the control-flow region.
func (di *decoyInserter) writePosition(d *Draft, region Region, from int) int {
	candidates := make([]int, 0, d.Len()-from+1)
	for pos := from; pos <= d.Len(); pos++ {
		if !region.Splits(pos) {
			candidates = append(candidates, pos)
		}
	}

	return candidates[di.rnd.IntN(len(candidates))]
}
