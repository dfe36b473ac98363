package domain

import m "github.com/mouse-blink/bufsafe/internal/model"

// appendControlFlow appends the guard and, when includeWrite is set, the
// guarded buffer write. It returns the region those lines occupy.
func appendControlFlow(d *Draft, includeWrite, safe bool) Region {
	region := Region{Start: d.Len()}

	for _, text := range condGuardLines {
		d.Append(Line{Text: text, Tag: m.TagBody})
	}

	if includeWrite {
		d.Append(Line{Text: condBufwriteLine, Tag: m.CondTag(safe)})
	}

	region.End = d.Len()

	return region
}
