package domain

import (
	"fmt"
	"slices"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

// scheduleSetup merges the declaration/initialization pairs into d so that
// every declaration precedes its initialization while lines of different
// variables interleave freely.
func scheduleSetup(rnd Rand, d *Draft, pairs []DeclInit) error {
	for _, pair := range pairs {
		if !pair.HasInit() {
			pos := rnd.IntN(d.Len() + 1)
			if err := d.Merge([]Line{{Text: pair.Decl, Tag: m.TagBody}}, []int{pos}); err != nil {
				return fmt.Errorf("failed to schedule %q: %w", pair.Decl, err)
			}

			continue
		}

		positions := sortedPositions(rnd, 2, 0, d.Len())
		items := []Line{
			{Text: pair.Decl, Tag: m.TagBody},
			{Text: pair.Init, Tag: m.TagBody},
		}

		if err := d.Merge(items, positions); err != nil {
			return fmt.Errorf("failed to schedule %q: %w", pair.Decl, err)
		}
	}

	return nil
}

// sortedPositions draws k positions uniformly from [lo, hi], with
// repetition, in ascending order.
func sortedPositions(rnd Rand, k, lo, hi int) []int {
	positions := make([]int, k)
	for i := range positions {
		positions[i] = lo + rnd.IntN(hi-lo+1)
	}

	slices.Sort(positions)

	return positions
}
