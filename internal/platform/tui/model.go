package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hoop-runner/internal/audio"
	"github.com/vovakirdan/hoop-runner/internal/core"
	"github.com/vovakirdan/hoop-runner/internal/registry"
)

// Options configures a game session.
type Options struct {
	Runtime  core.RuntimeConfig
	ShowHelp bool
	Audio    audio.Player // nil means silent
	Logger   *log.Logger  // nil means log.Default()
	User     string       // SSH user, empty for local play
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	showHelp   bool
	audio      audio.Player
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a session model and resets the game. A zero seed is
// replaced with the current time.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   opts.ShowHelp,
		audio:      opts.Audio,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.fieldHeight(cfg.ScreenH))
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// fieldHeight reserves the bottom row for the help bar when shown.
func (m Model) fieldHeight(h int) int {
	if m.showHelp && h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.audio.Close()
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the screen buffer. The run continues; the game maps
// its fixed field onto whatever size the screen has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.fieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleEvent(ev core.Event) {
	if cue, ok := audio.CueFor(ev.Kind); ok {
		m.audio.Play(cue)
	}

	switch ev.Kind {
	case core.EventGameOver:
		m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
	case core.EventLevelUp:
		m.logger.Debug("level up", "level", ev.Value)
	default:
		m.logger.Debug("event", "kind", ev.Kind, "value", ev.Value)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys.ForState(m.gameState)))
	}
	return out
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
