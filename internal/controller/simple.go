package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/bufsafe/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {}

// DisplayRunInfo prints the run parameters.
func (s *SimpleUI) DisplayRunInfo(info RunInfo) {
	mode := "conditional"
	if info.TautOnly {
		mode = "tautological-only"
	}

	s.printf("Generating %d %s instances into %s (seed %d, %d writer(s))\n",
		info.Count, mode, info.OutDir, info.Seed, info.Threads)
}

// DisplayGeneratedInfo is silent in plain mode; generation is fast.
func (s *SimpleUI) DisplayGeneratedInfo(_, _ int) {}

// DisplayWrittenInfo is silent in plain mode to keep output small.
func (s *SimpleUI) DisplayWrittenInfo(_ m.Instance) {}

// DisplaySummary prints tag totals as a table.
func (s *SimpleUI) DisplaySummary(summary m.Summary, err error) error {
	if err != nil {
		s.printf("generation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderTagTable(summary))
	s.printf("Instances: %d  Safe writes: %d  Unsafe writes: %d  Collisions: %d\n",
		summary.Instances, summary.Safe(), summary.Unsafe(), summary.Collisions)

	return nil
}

// DisplayPreview prints an instance verbatim.
func (s *SimpleUI) DisplayPreview(instance m.Instance) error {
	s.printf("%s\n\n", instance.Text)

	return nil
}

// DisplayStats prints per-file write counts followed by corpus totals.
func (s *SimpleUI) DisplayStats(md m.Metadata, err error) error {
	if err != nil {
		s.printf("stats error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Lines", "Safe", "Unsafe"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, name := range md.Files() {
		item := newFileItem(name, md.Tags[name])
		table.Append([]string{name, fmt.Sprintf("%d", item.lines), fmt.Sprintf("%d", item.safe), fmt.Sprintf("%d", item.unsafe)})
	}

	summary := md.Summary()
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(md.Tags)),
		"",
		fmt.Sprintf("%d", summary.Safe()),
		fmt.Sprintf("%d", summary.Unsafe()),
	})

	table.Render()
	s.printf("Corpus: %s (%d instances)\n\n%s", md.WorkingDir, md.NumInstances, tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderTagTable renders one row per tag with its count.
func renderTagTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Tag", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, tag := range m.AllTags {
		count := summary.TagCounts[tag]
		total += count

		table.Append([]string{tag.String(), fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total)})
	table.Render()

	return tableBuffer.String()
}
