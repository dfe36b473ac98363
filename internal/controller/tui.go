package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/bufsafe/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{mode: ModeGenerate}
	for _, option := range options {
		option(&cfg)
	}

	if cfg.mode == ModeStats {
		return t.startWithModel(newStatsModel(), tea.WithAltScreen())
	}

	return t.startWithModel(newProgressModel())
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts = append([]tea.ProgramOption{tea.WithOutput(t.output)}, opts...)
	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.runErr = err
			t.mu.Unlock()
		}
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayRunInfo shows the run parameters in the progress header.
func (t *TUI) DisplayRunInfo(info RunInfo) {
	t.ensureStarted()
	t.send(runInfoMsg{info: info})
}

// DisplayGeneratedInfo advances the generation counter.
func (t *TUI) DisplayGeneratedInfo(generated, total int) {
	t.send(generatedMsg{generated: generated, total: total})
}

// DisplayWrittenInfo advances the write progress bar.
func (t *TUI) DisplayWrittenInfo(instance m.Instance) {
	t.send(writtenMsg{name: instance.Name, tags: instance.Tags})
}

// DisplaySummary shows the final tag totals.
func (t *TUI) DisplaySummary(summary m.Summary, err error) error {
	t.send(summaryMsg{summary: summary, err: err})

	return err
}

// DisplayPreview prints an instance under a styled header.
func (t *TUI) DisplayPreview(instance m.Instance) error {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Render(fmt.Sprintf("── %d lines ──", len(instance.Tags)))

	_, err := fmt.Fprintf(t.output, "%s\n%s\n\n", header, instance.Text)

	return err
}

// DisplayStats hands the metadata to the stats browser.
func (t *TUI) DisplayStats(md m.Metadata, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "stats error: %v\n", err)

		return err
	}

	t.ensureStarted()
	t.send(statsMsg{md: md})

	return nil
}
