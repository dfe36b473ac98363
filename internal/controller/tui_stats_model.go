package controller

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mouse-blink/bufsafe/internal/model"
)

const (
	countColumn = 6
	scrollPause = 5 // ticks before a long selected name starts to scroll
	statsChrome = 9 // title, summary, footer, border and header rows
	ellipsis    = "…"
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func countStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Width(countColumn).
		Align(lipgloss.Right)
}

var (
	rowLines  = countStyle("252")
	rowSafe   = countStyle("2")
	rowUnsafe = countStyle("1")
	rowName   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

var rowSelected = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("6")).
	Bold(true)

// fileDelegate renders one file per row as lines, safe and unsafe counts
// followed by the name. The selected name scrolls when it does not fit.
type fileDelegate struct {
	scroll int
}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }

func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	nameWidth := l.Width() - 3*(countColumn+1) - 1
	lines, safe, unsafe, name := rowLines, rowSafe, rowUnsafe, rowName
	label := ansi.Truncate(file.name, nameWidth, ellipsis)

	if index == l.Index() {
		count := rowSelected.Width(countColumn).Align(lipgloss.Right)
		lines, safe, unsafe, name = count, count, count, rowSelected
		label = marquee(file.name, nameWidth, d.scroll)
	}

	_, _ = fmt.Fprintf(w, "%s %s %s  %s",
		lines.Render(strconv.Itoa(file.lines)),
		safe.Render(strconv.Itoa(file.safe)),
		unsafe.Render(strconv.Itoa(file.unsafe)),
		name.Render(label),
	)
}

// marquee returns a width-cell window of text that advances one cell per
// tick once scrollPause ticks have passed. Text that fits is returned whole.
func marquee(text string, width, ticks int) string {
	if width <= 0 {
		return ""
	}

	if ticks < scrollPause || lipgloss.Width(text) <= width {
		return ansi.Truncate(text, width, ellipsis)
	}

	loop := []rune(text + "   ")
	start := (ticks - scrollPause) % len(loop)

	return string(slices.Concat(loop[start:], loop[:start])[:width])
}

// statsModel browses the files recorded in a metadata document.
type statsModel struct {
	width    int
	height   int
	files    list.Model
	delegate fileDelegate
	dir      string
	summary  model.Summary
	loaded   bool
	selected int
}

func newStatsModel() statsModel {
	files := list.New(nil, fileDelegate{}, 80, 20)
	files.SetShowTitle(false)
	files.SetShowStatusBar(false)
	files.SetShowPagination(false)
	files.SetShowHelp(false)
	files.SetShowFilter(true)
	files.FilterInput.Placeholder = "Filter by file…"

	return statsModel{files: files, selected: -1}
}

func (m statsModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (m statsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.files.SetWidth(msg.Width)

	case statsMsg:
		m = m.load(msg.md)

	case tickMsg:
		return m.advance()

	case tea.KeyMsg:
		if key := msg.String(); key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.files, cmd = m.files.Update(msg)
		if idx := m.files.Index(); idx != m.selected {
			m.selected = idx
			m = m.withScroll(0)
		}

		return m, cmd
	}

	return m, nil
}

// advance moves the marquee while the list is idle.
func (m statsModel) advance() (tea.Model, tea.Cmd) {
	if !m.loaded || m.files.FilterState() == list.Filtering {
		return m, nil
	}

	return m.withScroll(m.delegate.scroll + 1), tick(150 * time.Millisecond)
}

func (m statsModel) withScroll(offset int) statsModel {
	m.delegate.scroll = offset
	m.files.SetDelegate(m.delegate)

	return m
}

func (m statsModel) load(md model.Metadata) statsModel {
	m.dir = md.WorkingDir
	m.summary = md.Summary()

	names := md.Files()
	items := make([]list.Item, len(names))

	for i, name := range names {
		items[i] = newFileItem(name, md.Tags[name])
	}

	m.files.SetItems(items)
	m.loaded = true

	if len(items) > 0 && m.selected < 0 {
		m.selected = 0
	}

	return m
}

func (m statsModel) View() string {
	if !m.loaded {
		return "Loading metadata…\n"
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	num := func(n int) string {
		return accent.Render(strconv.Itoa(n))
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render("bufsafe corpus stats")

	summary := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2).
		Render(fmt.Sprintf("Files: %s   Safe writes: %s   Unsafe writes: %s   Dir: %s",
			num(m.summary.Instances), num(m.summary.Safe()), num(m.summary.Unsafe()), accent.Render(m.dir)))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Width(m.width).
		Align(lipgloss.Center).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, m.table(), footer)
}

func (m statsModel) table() string {
	width := max(m.width-6, 20)
	m.files.SetSize(width, max(m.height-statsChrome, 5))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Render(fmt.Sprintf("%*s %*s %*s  %s", countColumn, "Lines", countColumn, "Safe", countColumn, "Unsafe", "File"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, m.files.View()))
}
