// Package tui provides the Bubble Tea live-scoring interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tateisi/internal/model"
	"github.com/verte-zerg/tateisi/internal/readability"
	"github.com/verte-zerg/tateisi/internal/report"
)

// SourceInspect tags records saved from the inspector.
const SourceInspect = "inspect"

// Saver persists a scored text.
type Saver interface {
	InsertScore(ctx context.Context, rec model.ScoreRecord) (int64, error)
}

// Model implements the Bubble Tea inspector: an editor whose text is
// re-scored on every change.
type Model struct {
	saver Saver

	input  textarea.Model
	detail viewport.Model

	width  int
	height int

	lastText string
	result   readability.Result
	status   string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

type savedMsg struct {
	id  int64
	err error
}

// NewModel constructs the inspector with initial text. saver may be nil, in
// which case saving is disabled.
func NewModel(saver Saver, text string) *Model {
	input := textarea.New()
	input.Placeholder = "日本語のテキストを入力…"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetValue(text)
	input.Focus()

	m := &Model{
		saver:  saver,
		input:  input,
		detail: viewport.New(0, 0),
	}
	m.rescore()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("save failed: %v", msg.err))
		} else {
			m.status = fmt.Sprintf("saved as #%d", msg.id)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m, m.save()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.lastText {
		m.rescore()
		m.status = ""
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render(report.Heading),
		m.input.View(),
		m.renderScores(),
		highlight(m.result.Text, m.width),
		legend(),
		m.detail.View(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) layout() {
	inputHeight := max(3, m.height/3)
	m.input.SetWidth(max(1, m.width))
	m.input.SetHeight(inputHeight)
	m.detail.Width = m.width
	// title, scores, preview, legend, footer
	m.detail.Height = max(1, m.height-inputHeight-5)
	m.refreshDetail()
}

func (m *Model) rescore() {
	m.lastText = m.input.Value()
	m.result = readability.Score(m.lastText)
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	var b strings.Builder
	if err := report.WriteStatistics(&b, m.result.Stats); err != nil {
		b.Reset()
		b.WriteString("failed to render statistics")
	}
	m.detail.SetContent(b.String())
}

func (m *Model) renderScores() string {
	line := fmt.Sprintf("Score A: %s  Score B: %s",
		report.FormatScore(m.result.ScoreA), report.FormatScore(m.result.ScoreB))
	return scoreStyle.Render(line)
}

func (m *Model) renderFooter() string {
	segments := []string{"esc quit", "pgup/pgdn scroll"}
	if m.saver != nil {
		segments = append(segments, "ctrl+s save")
	}
	footer := footerStyle.Render(strings.Join(segments, " · "))
	if m.status != "" {
		footer += "  " + m.status
	}
	return footer
}

func (m *Model) save() tea.Cmd {
	if m.saver == nil {
		m.status = "history is disabled"
		return nil
	}
	rec := model.NewScoreRecord(m.result, SourceInspect, time.Now())
	saver := m.saver
	return func() tea.Msg {
		id, err := saver.InsertScore(context.Background(), rec)
		return savedMsg{id: id, err: err}
	}
}
