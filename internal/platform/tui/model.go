package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-catch/internal/core"
	"github.com/vovakirdan/cat-catch/internal/registry"
	"github.com/vovakirdan/cat-catch/internal/storage"
)

// Options tunes a game session.
type Options struct {
	// Player prefills the name prompt at game over.
	Player string

	// Logger receives simulation events (debug) and save failures (warn).
	// Nil discards everything.
	Logger *log.Logger

	// QuitOnBack ends the program when the player asks to go back.
	// Standalone runs set it; embedded sessions poll BackToMenu instead.
	QuitOnBack bool
}

type stage int

const (
	stagePlaying stage = iota
	stageNameEntry
	stageSaved
)

// resizer is implemented by games that survive a terminal resize.
type resizer interface {
	Resize(width, height int)
}

// GameModel runs one game: tick loop, input latch, score saving.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	latch      *AxisLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	seeded     bool

	stage     stage
	nameInput textinput.Model
	savedAs   string
	savedRank int
	saveErr   error
	prevBest  int
	hadBest   bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
// A zero seed picks a time based one for every round.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	seeded := cfg.Seed != 0
	if !seeded {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = storage.AnonymousName
	ti.CharLimit = storage.MaxNameLen
	ti.Width = storage.MaxNameLen + 1
	ti.Prompt = "Name: "

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		latch:      NewAxisLatch(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		seeded:     seeded,
		nameInput:  ti,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.stage {
		case stageNameEntry:
			return m.handleNameKey(msg)
		case stageSaved:
			return m.handleSavedKey(msg)
		default:
			return m.handleKey(msg)
		}

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.stage == stageNameEntry {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input while the game runs.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.IsStop(msg) {
		m.latch.Release()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action)
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.inputFrame.Set(core.ActionPause)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			return m.goBack()
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleNameKey edits the player name shown at game over.
func (m GameModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saveScore(m.nameInput.Value())
		m.nameInput.Blur()
		m.stage = stageSaved
		return m, nil
	case "esc":
		m.nameInput.Blur()
		m.stage = stageSaved
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleSavedKey handles the dialog shown after the name prompt.
func (m GameModel) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart, core.ActionConfirm:
		m.restart()
	case core.ActionBack, core.ActionPause:
		return m.goBack()
	}
	return m, nil
}

func (m GameModel) goBack() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.opts.QuitOnBack {
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the session running when the game supports it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	if m.stage != stagePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("sim event", "game", m.game.ID(), "event", ev, "score", m.gameState.Score)
	}

	m.inputFrame.Clear()

	if m.gameState.GameOver && !wasOver {
		m.latch.Release()
		if m.store != nil && m.gameState.Score > 0 {
			m.stage = stageNameEntry
			if strings.TrimSpace(m.opts.Player) != "" {
				m.nameInput.SetValue(storage.NormalizeName(m.opts.Player))
			}
			m.nameInput.CursorEnd()
			focus := m.nameInput.Focus()
			return m, tea.Batch(focus, tickCmd(m.config.TickRate))
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *GameModel) restart() {
	if !m.seeded {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.stage = stagePlaying
	m.savedAs = ""
	m.savedRank = 0
	m.saveErr = nil
	m.prevBest = 0
	m.hadBest = false
	m.latch.Release()
	m.inputFrame.Clear()
}

// saveScore writes the finished round to the leaderboard.
func (m *GameModel) saveScore(name string) {
	name = storage.NormalizeName(name)
	score := m.gameState.Score

	best, ok, err := m.store.PlayerBest(m.game.ID(), name)
	if err != nil {
		m.logger.Warn("could not read personal best", "game", m.game.ID(), "player", name, "error", err)
	}
	m.prevBest, m.hadBest = best, ok

	if _, err := m.store.SaveScore(m.game.ID(), name, score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "player", name, "error", err)
		m.saveErr = err
		return
	}
	m.savedAs = name

	rank, err := m.store.Rank(m.game.ID(), score)
	if err != nil {
		m.logger.Warn("could not rank score", "game", m.game.ID(), "error", err)
		return
	}
	m.savedRank = rank
}

// saveScreenshot saves the current screen to ~/.catch/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".catch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the game or the game over dialog.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.stage == stagePlaying {
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, m.dialogView())
}

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dialogHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m GameModel) dialogView() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("THE SKY IS CRYING"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Final score: %d\n\n", m.gameState.Score)

	switch m.stage {
	case stageNameEntry:
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(dialogHintStyle.Render("Enter: save  |  Esc: skip"))
	case stageSaved:
		switch {
		case m.saveErr != nil:
			b.WriteString("Could not save score.")
		case m.savedAs == "":
			b.WriteString("Score not saved.")
		case m.savedRank > 0:
			fmt.Fprintf(&b, "Saved as %s, rank #%d", m.savedAs, m.savedRank)
		default:
			fmt.Fprintf(&b, "Saved as %s", m.savedAs)
		}
		if m.savedAs != "" && m.saveErr == nil {
			b.WriteString("\n")
			b.WriteString(m.personalBestLine())
		}
		b.WriteString("\n\n")
		b.WriteString(dialogHintStyle.Render("R: play again  |  B: menu  |  Q: quit"))
	}

	return dialogStyle.Render(b.String())
}

// personalBestLine compares the saved score with the player's earlier best.
func (m GameModel) personalBestLine() string {
	switch {
	case !m.hadBest:
		return "First score on the board!"
	case m.gameState.Score > m.prevBest:
		return fmt.Sprintf("New personal best! (was %d)", m.prevBest)
	default:
		return fmt.Sprintf("Personal best: %d", m.prevBest)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in its own Bubble Tea program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	opts.QuitOnBack = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
