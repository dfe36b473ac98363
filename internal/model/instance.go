package model

// Path represents a file system path.
type Path string

// Instance is one rendered program together with its per-line tags.
type Instance struct {
	// Name is the content-addressed file name, empty until persisted.
	Name string
	Text string
	Tags []Tag
}

// Summary aggregates tag counts over a set of instances.
type Summary struct {
	Instances  int
	Collisions int
	TagCounts  map[Tag]int
}

// NewSummary returns an empty Summary ready for Add.
func NewSummary() Summary {
	return Summary{TagCounts: make(map[Tag]int, len(AllTags))}
}

// Add accumulates the tags of one instance.
func (s *Summary) Add(tags []Tag) {
	if s.TagCounts == nil {
		s.TagCounts = make(map[Tag]int, len(AllTags))
	}

	s.Instances++

	for _, tag := range tags {
		s.TagCounts[tag]++
	}
}

// Unsafe returns the number of out-of-bounds writes counted.
func (s Summary) Unsafe() int {
	return s.TagCounts[TagBufwriteCondUnsafe] + s.TagCounts[TagBufwriteTautUnsafe]
}

// Safe returns the number of in-bounds writes counted.
func (s Summary) Safe() int {
	return s.TagCounts[TagBufwriteCondSafe] + s.TagCounts[TagBufwriteTautSafe]
}
