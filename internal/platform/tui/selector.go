package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// SelectorKeyMap defines the key bindings for the level selector.
type SelectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SelectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SelectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultSelectorKeyMap returns default key bindings.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SelectorModel lets the player pick the starting level.
type SelectorModel struct {
	levels   []bricks.LevelSummary
	table    table.Model
	help     help.Model
	keys     SelectorKeyMap
	width    int
	height   int
	chosen   int
	quitting bool
}

// NewSelectorModel creates a selector over levels.
func NewSelectorModel(levels []bricks.LevelSummary, width, height int) SelectorModel {
	m := SelectorModel{
		levels: levels,
		help:   help.New(),
		keys:   DefaultSelectorKeyMap(),
		width:  width,
		height: height,
		chosen: -1,
	}
	m.table = m.createTable()
	return m
}

func (m *SelectorModel) createTable() table.Model {
	nameWidth := m.width - 40
	if nameWidth < 12 {
		nameWidth = 12
	}
	if nameWidth > 30 {
		nameWidth = 30
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: nameWidth},
		{Title: "Grid", Width: 7},
		{Title: "Bricks", Width: 7},
		{Title: "Break", Width: 6},
	}

	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		rows[i] = table.Row{
			strconv.Itoa(l.Index + 1),
			l.Name,
			fmt.Sprintf("%dx%d", l.Rows, l.Cols),
			strconv.Itoa(l.Bricks),
			strconv.Itoa(l.Breakable),
		}
	}

	height := m.height - 6
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the selector model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the selector.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.chosen = m.table.Cursor()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the selector.
func (m SelectorModel) View() string {
	if m.quitting || m.chosen >= 0 {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("SELECT LEVEL"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Chosen returns the picked level index, or -1 when the player quit.
func (m SelectorModel) Chosen() int {
	return m.chosen
}

// RunLevelSelector shows the level table and returns the picked index.
// ok is false when the player quit without choosing.
func RunLevelSelector(levels []bricks.LevelSummary, width, height int) (index int, ok bool, err error) {
	p := tea.NewProgram(
		NewSelectorModel(levels, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isSelector := finalModel.(SelectorModel)
	if !isSelector || m.Chosen() < 0 {
		return 0, false, nil
	}
	return m.Chosen(), true, nil
}
