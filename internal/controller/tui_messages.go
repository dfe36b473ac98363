package controller

import m "github.com/mouse-blink/bufsafe/internal/model"

// Message types.
type runInfoMsg struct {
	info RunInfo
}

type generatedMsg struct {
	generated int
	total     int
}

type writtenMsg struct {
	name string
	tags []m.Tag
}

type summaryMsg struct {
	summary m.Summary
	err     error
}

type statsMsg struct {
	md m.Metadata
}

// List item types.
type fileItem struct {
	name   string
	lines  int
	safe   int
	unsafe int
}

func newFileItem(name string, tags []m.Tag) fileItem {
	item := fileItem{name: name, lines: len(tags)}

	for _, tag := range tags {
		switch {
		case !tag.IsBufwrite():
		case tag.IsUnsafe():
			item.unsafe++
		default:
			item.safe++
		}
	}

	return item
}

func (f fileItem) FilterValue() string {
	return f.name
}
