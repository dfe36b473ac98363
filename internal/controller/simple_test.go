package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayRunInfo(RunInfo{OutDir: "/tmp/out", Count: 12, Seed: 3, Threads: 2, TautOnly: true})

	want := "Generating 12 tautological-only instances into /tmp/out (seed 3, 2 writer(s))\n"
	if got := buf.String(); got != want {
		t.Fatalf("DisplayRunInfo() = %q, want %q", got, want)
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	summary := m.NewSummary()
	summary.Add([]m.Tag{m.TagOther, m.TagBody, m.TagBufwriteCondSafe, m.TagBufwriteTautUnsafe})
	summary.Add([]m.Tag{m.TagOther, m.TagBufwriteCondUnsafe})
	summary.Collisions = 1

	if err := ui.DisplaySummary(summary, nil); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"TAG",
		"BUFWRITE_COND_SAFE",
		"BUFWRITE_TAUT_UNSAFE",
		"TOTAL",
		"Instances: 2  Safe writes: 1  Unsafe writes: 2  Collisions: 1",
	)
}

func TestSimpleUI_DisplaySummary_Error(t *testing.T) {
	ui, buf := newTestSimpleUI()
	boom := errors.New("boom")

	if err := ui.DisplaySummary(m.NewSummary(), boom); !errors.Is(err, boom) {
		t.Fatalf("DisplaySummary() error = %v, want %v", err, boom)
	}

	assertContainsAll(t, buf.String(), "generation error: boom")
}

func TestSimpleUI_DisplayStats(t *testing.T) {
	ui, buf := newTestSimpleUI()

	md := m.NewMetadata("/corpus", 2)
	md.Tags["b.c"] = []m.Tag{m.TagOther, m.TagBufwriteCondSafe, m.TagBufwriteTautSafe}
	md.Tags["a.c"] = []m.Tag{m.TagOther, m.TagBufwriteCondUnsafe}

	if err := ui.DisplayStats(md, nil); err != nil {
		t.Fatalf("DisplayStats() error = %v", err)
	}

	output := buf.String()
	assertContainsAll(t, output, "Corpus: /corpus (2 instances)", "FILE", "UNSAFE", "a.c", "b.c", "TOTAL FILES 2")

	if strings.Index(output, "a.c") > strings.Index(output, "b.c") {
		t.Fatalf("files not sorted\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayStats_Error(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayStats(m.Metadata{}, errors.New("bad file")); err == nil {
		t.Fatalf("DisplayStats() expected error")
	}

	assertContainsAll(t, buf.String(), "stats error: bad file")
}

func TestSimpleUI_DisplayPreview(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayPreview(m.Instance{Text: "int main()"}); err != nil {
		t.Fatalf("DisplayPreview() error = %v", err)
	}

	if got := buf.String(); got != "int main()\n\n" {
		t.Fatalf("DisplayPreview() = %q", got)
	}
}

func TestSimpleUI_SilentMethods(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.Start(WithGenerateMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayGeneratedInfo(1, 2)
	ui.DisplayWrittenInfo(m.Instance{Name: "x.c"})
	ui.Wait()
	ui.Close()

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
