package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go-match/internal/deck"
	"go-match/internal/game"
	"go-match/internal/schedule"
	"go-match/internal/scoring"
	"go-match/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Board geometry in terminal cells. Each card is drawn as "[ XX ]" followed
// by a one-cell gap, and each board row is followed by a blank line.
const (
	glyphWidth  = 2
	cellWidth   = glyphWidth + 4
	cellStride  = cellWidth + 1
	rowHeight   = 2
	headerLines = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	bestStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	spinStyle    = lipgloss.NewStyle().Bold(true).Blink(true)
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 2)
)

// firedMsg delivers a deferred game action back to the event loop.
type firedMsg struct {
	id uint64
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Open    key.Binding
	NewGame key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NewGame, k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.NewGame, k.Dismiss, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open card")),
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close summary")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea front end of a game session. It resolves mouse
// positions to slots and turns scheduled game actions into tea.Tick messages.
type Model struct {
	session *game.Session
	queue   *schedule.Queue
	keys    keyMap
	help    help.Model
	input   textinput.Model
	mouse   bool

	editing bool
	formErr string
	cursor  int
}

func newModel(sess *game.Session, queue *schedule.Queue, mouse bool) *Model {
	input := textinput.New()
	input.Prompt = "Pairs: "
	input.Placeholder = fmt.Sprintf("%d-%d", sess.Options.MinPairs, min(sess.Options.MaxPairs, len(sess.Options.Faces)))
	input.CharLimit = 3

	m := &Model{
		session: sess,
		queue:   queue,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
		mouse:   mouse,
	}
	if sess.CurrentGame == nil {
		m.startEditing()
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.flush())
}

// flush hands every newly scheduled action to the runtime as a tick.
func (m *Model) flush() tea.Cmd {
	pending := m.queue.Drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, p := range pending {
		id := p.ID
		cmds = append(cmds, tea.Tick(p.Delay, func(time.Time) tea.Msg {
			return firedMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case firedMsg:
		m.queue.Fire(msg.id)
		return m, m.flush()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		if m.editing {
			return m, m.handleFormKey(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if _, ok := m.session.Summary(); ok {
		m.session.DismissSummary()
		return nil
	}
	slot := m.slotAt(msg.X, msg.Y)
	if slot < 0 {
		return nil
	}
	m.cursor = slot
	m.session.OpenCard(slot)
	return m.flush()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.NewGame):
		return m.startEditing()
	}
	if _, ok := m.session.Summary(); ok {
		if key.Matches(msg, m.keys.Dismiss) {
			m.session.DismissSummary()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Open):
		m.session.OpenCard(m.cursor)
		return m.flush()
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		if m.session.CurrentGame != nil {
			m.stopEditing()
		}
		return nil
	case tea.KeyEnter:
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) submitForm() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	pairs, err := strconv.Atoi(value)
	if err != nil {
		m.formErr = fmt.Sprintf("%q is not a number", value)
		return nil
	}
	if err := m.session.NewGame(pairs); err != nil {
		var cfgErr *deck.ConfigurationError
		if errors.As(err, &cfgErr) {
			m.formErr = cfgErr.Error()
		} else {
			m.formErr = fmt.Sprintf("could not start game: %v", err)
		}
		return nil
	}
	m.cursor = 0
	m.stopEditing()
	return m.flush()
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	m.formErr = ""
	m.input.SetValue("")
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.formErr = ""
	m.input.Blur()
}

// columns returns the board width in cards; larger boards get more columns.
func columns(cardCount int) int {
	if cardCount <= 0 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(cardCount))))
}

func (m *Model) moveCursor(dx, dy int) {
	n := len(m.session.Cards())
	if n == 0 {
		return
	}
	cols := columns(n)
	next := m.cursor + dx + dy*cols
	if dx != 0 && (next/cols != m.cursor/cols || next < 0) {
		return
	}
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
}

// slotAt maps a terminal position to a board slot, or -1 when the position
// is not on a card.
func (m *Model) slotAt(x, y int) int {
	n := len(m.session.Cards())
	if n == 0 || x < 0 {
		return -1
	}
	y -= headerLines
	if y < 0 || y%rowHeight != 0 {
		return -1
	}
	if x%cellStride >= cellWidth {
		return -1
	}
	cols := columns(n)
	col := x / cellStride
	if col >= cols {
		return -1
	}
	slot := (y/rowHeight)*cols + col
	if slot >= n {
		return -1
	}
	return slot
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("go-match"))
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	b.WriteString(m.renderBest())
	b.WriteString("\n\n")

	b.WriteString(m.renderBoard())

	if summary, ok := m.session.Summary(); ok {
		b.WriteString("\n")
		b.WriteString(renderSummary(summary))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		if m.formErr != "" {
			b.WriteString("\n")
			b.WriteString(redStyle.Render(m.formErr))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderStats() string {
	stats := m.session.LiveStats()
	line := fmt.Sprintf("PAIRS: %d | MOVES: %d | MATCHES: %d | %s | TIME: %s",
		stats.PairCount, stats.Moves, stats.Matches, renderStars(stats.Stars), stats.Time)
	return scoreStyle.Render(line)
}

func (m *Model) renderBest() string {
	panel := m.session.BestPanel()
	if !panel.HasRecord {
		return bestStyle.Render("BEST: no finished game at this size yet")
	}
	return bestStyle.Render(fmt.Sprintf("BEST: %d moves | %s | %s", panel.Moves, renderStars(panel.Stars), panel.Time))
}

func renderStars(n int) string {
	n = max(0, min(n, scoring.MaxStars))
	return strings.Repeat("★", n) + strings.Repeat("☆", scoring.MaxStars-n)
}

func (m *Model) renderBoard() string {
	cards := m.session.Cards()
	if len(cards) == 0 {
		return ""
	}
	cols := columns(len(cards))
	showCursor := !m.editing && !m.session.IsFinished()

	var b strings.Builder
	for i, c := range cards {
		cell := renderCard(c)
		if showCursor && i == m.cursor {
			cell = cursorStyle.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%cols == 0 || i == len(cards)-1 {
			b.WriteString("\n\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func renderCard(c state.Card) string {
	switch {
	case c.Removed:
		return strings.Repeat(" ", cellWidth)
	case !c.FaceVisible:
		return hiddenStyle.Render("[ " + strings.Repeat("░", glyphWidth) + " ]")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Spec.Color.Code))
	if c.Spinning {
		style = style.Inherit(spinStyle)
	}
	return style.Render("[ " + fitGlyph(c.Spec.Face.Glyph) + " ]")
}

// fitGlyph pads or truncates a glyph to exactly glyphWidth cells.
func fitGlyph(glyph string) string {
	if runewidth.StringWidth(glyph) > glyphWidth {
		glyph = runewidth.Truncate(glyph, glyphWidth, "")
	}
	return runewidth.FillRight(glyph, glyphWidth)
}

func renderSummary(s scoring.Summary) string {
	var b strings.Builder
	b.WriteString(greenStyle.Render(s.Heading()))
	b.WriteString("\n")
	b.WriteString(s.Message())
	if len(s.Top) > 0 {
		b.WriteString(fmt.Sprintf("\n\nBest games with %d pairs:", s.PairCount))
		for i, e := range s.Top {
			marker := " "
			if e.GameID == s.GameID {
				marker = "*"
			}
			b.WriteString(fmt.Sprintf("\n %s %d. %d moves %s %s on %s",
				marker, i+1, e.Moves, renderStars(e.Stars), e.Time, e.FinishedAt.Format(time.DateTime)))
		}
	}
	b.WriteString("\n\nesc to close, n for a new game")
	return summaryStyle.Render(b.String())
}
