// Package tui provides the Bubble Tea interview interface.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiprep/internal/bank"
	"github.com/verte-zerg/tuiprep/internal/model"
	"github.com/verte-zerg/tuiprep/internal/review"
	"github.com/verte-zerg/tuiprep/internal/session"
)

type screen int

const (
	screenSelect screen = iota
	screenQuestion
	screenComplete
)

const (
	emptyAnswerNotice = "Please type an answer."
	completeNotice    = "Practice session complete! Press enter to try another."
	inputHeight       = 5
)

// Model implements the Bubble Tea interview UI.
type Model struct {
	bank       *bank.Bank
	session    *session.Session
	categories []model.Category
	cursor     int

	screen     screen
	question   model.Question
	notice     string
	input      textarea.Model
	review     viewport.Model
	reviewText string

	width  int
	height int
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	feedbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs the interview TUI. A non-empty preset skips category selection.
func NewModel(b *bank.Bank, s *session.Session, preset model.Category) *Model {
	m := &Model{
		bank:       b,
		session:    s,
		categories: b.Categories(),
		input:      newAnswerInput(),
		review:     viewport.New(0, 0),
	}
	if preset != "" {
		for i, cat := range m.categories {
			if cat == preset {
				m.cursor = i
			}
		}
		m.startCategory(preset)
	}
	return m
}

func newAnswerInput() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Type your answer..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	return ta
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
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenQuestion:
			return m.updateQuestion(msg)
		case screenComplete:
			return m.updateComplete(msg)
		default:
			return m.updateSelect(msg)
		}
	default:
		if m.screen == screenQuestion {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m, m.startCategory(m.categories[m.cursor])
	default:
		cat, err := bank.ParseCategory(msg.String())
		if err != nil {
			return m, nil
		}
		for i, c := range m.categories {
			if c == cat {
				m.cursor = i
			}
		}
		return m, m.startCategory(cat)
	}
}

func (m *Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.toSelect()
		return m, nil
	}
	if m.session.State() == session.StateShowingFeedback {
		switch msg.String() {
		case "enter", "n":
			return m, m.advance()
		default:
			return m, nil
		}
	}
	if msg.String() == "enter" {
		m.submit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter", "r":
		m.toSelect()
		return m, nil
	case "g", "home":
		m.review.GotoTop()
		return m, nil
	case "G", "end":
		m.review.GotoBottom()
		return m, nil
	default:
		var cmd tea.Cmd
		m.review, cmd = m.review.Update(msg)
		return m, cmd
	}
}

func (m *Model) startCategory(cat model.Category) tea.Cmd {
	q, err := m.session.Start(cat)
	if err != nil {
		m.notice = err.Error()
		return nil
	}
	m.screen = screenQuestion
	m.showQuestion(q)
	return m.input.Focus()
}

func (m *Model) showQuestion(q model.Question) {
	m.question = q
	m.notice = ""
	m.input.Reset()
}

func (m *Model) submit() {
	_, err := m.session.Submit(m.input.Value())
	switch {
	case errors.Is(err, session.ErrEmptyAnswer):
		m.notice = emptyAnswerNotice
	case err != nil:
		m.notice = err.Error()
	default:
		m.notice = ""
		m.input.Blur()
	}
}

func (m *Model) advance() tea.Cmd {
	q, err := m.session.Advance()
	if errors.Is(err, session.ErrSessionComplete) {
		m.finish()
		return nil
	}
	if err != nil {
		m.notice = err.Error()
		return nil
	}
	m.showQuestion(q)
	return m.input.Focus()
}

func (m *Model) finish() {
	m.screen = screenComplete
	m.notice = completeNotice
	m.input.Blur()
	m.reviewText = review.Render(review.Summary{
		SessionID: m.session.ID(),
		Category:  m.session.Category(),
		Criteria:  bank.Criteria(m.session.Category()),
		Answers:   m.session.Answers(),
	})
	m.review.SetContent(wrapText(m.reviewText, m.contentWidth()))
	m.review.GotoTop()
}

func (m *Model) toSelect() {
	m.screen = screenSelect
	m.notice = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) resize() {
	width := m.contentWidth()
	m.input.SetWidth(width)
	m.review.Width = width
	m.review.Height = m.height - 4
	if m.review.Height < 1 {
		m.review.Height = 1
	}
	if m.reviewText != "" {
		m.review.SetContent(wrapText(m.reviewText, width))
	}
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	width := int(float64(m.width) * 0.70)
	if width < 1 {
		width = 1
	}
	return width
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenQuestion:
		content = m.renderQuestion()
	case screenComplete:
		content = m.renderComplete()
	default:
		content = m.renderSelect()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	width := m.contentWidth()
	content = lipgloss.NewStyle().Width(width).Render(content)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderSelect() string {
	lines := []string{titleStyle.Render("Mock interview practice"), "", "Choose a category:"}
	for i, cat := range m.categories {
		label := fmt.Sprintf("%d) %s", i+1, cat)
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+label))
			continue
		}
		lines = append(lines, pendingStyle.Render("  "+label))
	}
	if m.notice != "" {
		lines = append(lines, "", noticeStyle.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderQuestion() string {
	width := m.contentWidth()
	header := fmt.Sprintf("%s · Question %d/%d", m.session.Category(), m.question.Number(), session.QuestionLimit)
	lines := []string{
		titleStyle.Render(header),
		"",
		questionStyle.Render(wrapText(m.question.String(), width)),
		"",
		m.input.View(),
	}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	if fb := m.session.Feedback(); fb != "" && m.session.State() == session.StateShowingFeedback {
		lines = append(lines, "", feedbackStyle.Render(wrapText(fb, width-4)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderComplete() string {
	body := m.reviewText
	if m.review.Height > 0 && m.review.Width > 0 {
		body = m.review.View()
	}
	return titleStyle.Render(m.notice) + "\n\n" + body
}

func (m *Model) renderFooter() string {
	var segments []string
	switch m.screen {
	case screenQuestion:
		segments = append(segments,
			fmt.Sprintf("Answers %d", len(m.session.Answers())),
		)
		if m.session.State() == session.StateShowingFeedback {
			segments = append(segments, "enter next")
		} else {
			segments = append(segments, "enter submit", "alt+enter newline")
		}
		segments = append(segments, "esc categories")
	case screenComplete:
		segments = []string{"↑/↓ scroll", "enter restart", "q quit"}
	default:
		segments = []string{"↑/↓ move", "1-3 or enter start", "q quit"}
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
