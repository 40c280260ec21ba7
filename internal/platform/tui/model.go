package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Game is what the terminal loop drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures the terminal loop.
type Options struct {
	HoldTicks int // ticks a direction stays held after a key press
	Logger    *log.Logger
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldKeys
	pending   core.InputFrame // one-shot actions for the next tick
	help      help.Model
	width     int
	height    int
	gameState core.GameState
	quitting  bool
	logger    *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		config:  cfg,
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(opts.HoldTicks),
		pending: core.NewInputFrame(),
		help:    help.New(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		logger:  logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	m.config.ScreenH = m.screen.Height()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsDirection(action):
		m.held.Press(action)
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize fits the play area above the help line.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.config.ScreenW = width
	m.config.ScreenH = m.screenHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config)
	m.logger.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)

	return m, nil
}

func (m Model) screenHeight() int {
	h := m.height - lipgloss.Height(m.help.View(m.keys.Keys()))
	if h < 1 {
		h = 1
	}
	return h
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame()
	for a := range m.pending.Actions {
		frame.Set(a)
	}

	result := m.game.Step(frame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("campaign ended", "score", result.State.Score, "won", result.State.Won)
		m.held.Release()
	}
	m.gameState = result.State

	m.pending.Clear()
	m.held.Advance()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
