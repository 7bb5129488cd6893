package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model that hosts a snake game.
type Model struct {
	game       *snake.Game
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	styles     Styles
	inputFrame core.InputFrame
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     DefaultStyles(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The grid is fixed; the size only decides whether it fits.
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one frame with the collected input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.FrameDuration())
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	needW, needH := RequiredSize(snap.Width, snap.Height)
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Window too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderBoard(snap, m.styles),
		RenderStatus(snap, m.game.Paused(), m.styles),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the game.
func Run(game *snake.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
