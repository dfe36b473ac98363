package model

import "sort"

// Metadata is the JSON document describing a generated corpus.
type Metadata struct {
	WorkingDir   string           `json:"working_dir"`
	NumInstances int              `json:"num_instances"`
	Tags         map[string][]Tag `json:"tags"`
}

// NewMetadata returns Metadata for a corpus rooted at dir.
func NewMetadata(dir Path, count int) Metadata {
	return Metadata{
		WorkingDir:   string(dir),
		NumInstances: count,
		Tags:         make(map[string][]Tag, count),
	}
}

// Files returns the recorded file names in sorted order.
func (md Metadata) Files() []string {
	names := make([]string, 0, len(md.Tags))
	for name := range md.Tags {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Summary counts tags across every recorded file.
func (md Metadata) Summary() Summary {
	s := NewSummary()
	for _, name := range md.Files() {
		s.Add(md.Tags[name])
	}

	return s
}
