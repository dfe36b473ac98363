package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mouse-blink/bufsafe/internal/model"
)

const recentFiles = 5

// progressModel handles the TUI display while a corpus is generated.
type progressModel struct {
	width           int
	height          int
	progressBar     progress.Model
	info            RunInfo
	generated       int
	written         int
	progressPercent float64
	recent          []writtenMsg
	rendered        bool
	finished        bool
	summary         model.Summary
	err             error
}

func newProgressModel() progressModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return progressModel{progressBar: prog}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case runInfoMsg:
		m.info = msg.info
		m.rendered = true

	case generatedMsg:
		m.generated = msg.generated
		m.info.Count = msg.total
		m.rendered = true

	case writtenMsg:
		m = m.handleWritten(msg)

	case summaryMsg:
		m.summary = msg.summary
		m.err = msg.err
		m.finished = true
		m.rendered = true
	}

	return m, nil
}

func (m progressModel) handleKeyMsg(msg tea.KeyMsg) (progressModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "enter":
		if m.finished {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m progressModel) handleWritten(msg writtenMsg) progressModel {
	m.written++
	m.rendered = true

	if m.info.Count > 0 {
		m.progressPercent = float64(m.written) / float64(m.info.Count)
	}

	m.recent = append(m.recent, msg)
	if len(m.recent) > recentFiles {
		m.recent = m.recent[len(m.recent)-recentFiles:]
	}

	return m
}

func (m progressModel) handleWindowSize(msg tea.WindowSizeMsg) progressModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = m.width - 8
	if m.progressBar.Width < 20 {
		m.progressBar.Width = 20
	}

	return m
}

func (m progressModel) View() string {
	if !m.rendered {
		return "Preparing generation…\n"
	}

	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("bufsafe corpus generation")

	mode := "conditional"
	if m.info.TautOnly {
		mode = "taut-only"
	}

	header := summaryStyle.Render(fmt.Sprintf(
		"Generated: %s / %s  •  Written: %s  •  Writers: %s  •  Seed: %s  •  Mode: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.generated)),
		accentStyle.Render(fmt.Sprintf("%d", m.info.Count)),
		accentStyle.Render(fmt.Sprintf("%d", m.written)),
		accentStyle.Render(fmt.Sprintf("%d", m.info.Threads)),
		accentStyle.Render(fmt.Sprintf("%d", m.info.Seed)),
		accentStyle.Render(mode),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(m.progressBar.ViewAs(m.progressPercent))

	body := m.renderRecentBox(accentColor)
	if m.finished {
		body = m.renderSummaryBox(accentColor)
	}

	footerText := "ctrl+c to abort"
	if m.finished {
		footerText = "Press q to quit"
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render(footerText)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		header,
		progressView,
		body,
		footer,
	)
}

func (m progressModel) boxStyle(accentColor lipgloss.Color) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0)

	if m.width > 4 {
		style = style.Width(m.width - 4)
	}

	return style
}

func (m progressModel) renderRecentBox(accentColor lipgloss.Color) string {
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	availableWidth := m.width - 4 - 2 - 2 - 12

	lines := make([]string, 0, len(m.recent))
	for _, file := range m.recent {
		item := newFileItem(file.name, file.tags)
		lines = append(lines, fmt.Sprintf("%s  %s",
			countStyle.Render(fmt.Sprintf("%3d lines", item.lines)),
			fileStyle.Render(ansi.Truncate(file.name, max(availableWidth, 16), ellipsis)),
		))
	}

	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("waiting for first file…"))
	}

	return m.boxStyle(accentColor).Render(strings.Join(lines, "\n"))
}

func (m progressModel) renderSummaryBox(accentColor lipgloss.Color) string {
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

		return m.boxStyle(lipgloss.Color("1")).Render(errStyle.Render(fmt.Sprintf("generation error: %v", m.err)))
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(24)
	safeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	unsafeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	plainStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	lines := make([]string, 0, len(model.AllTags)+2)

	for _, tag := range model.AllTags {
		style := plainStyle

		switch {
		case tag.IsUnsafe():
			style = unsafeStyle
		case tag.IsBufwrite():
			style = safeStyle
		}

		lines = append(lines, fmt.Sprintf("%s %s",
			nameStyle.Render(tag.String()),
			style.Render(fmt.Sprintf("%d", m.summary.TagCounts[tag])),
		))
	}

	lines = append(lines, "", fmt.Sprintf("Instances %d  •  Safe %s  •  Unsafe %s  •  Collisions %d",
		m.summary.Instances,
		safeStyle.Render(fmt.Sprintf("%d", m.summary.Safe())),
		unsafeStyle.Render(fmt.Sprintf("%d", m.summary.Unsafe())),
		m.summary.Collisions,
	))

	return m.boxStyle(accentColor).Render(strings.Join(lines, "\n"))
}
