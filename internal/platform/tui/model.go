package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// hudRows is the status line above the world; the help line sits below.
const (
	hudRows  = 1
	helpRows = 1
)

// Model is the Bubble Tea model for one level.
type Model struct {
	level  platformer.LevelData
	cfg    config.PlatformerConfig
	world  *platformer.World
	logger *log.Logger

	screen  *core.Screen
	runtime core.RuntimeConfig
	step    *core.FixedStep
	held    *HeldKeys
	keys    KeyMap
	help    help.Model
	pulse   *Pulse

	last     time.Time
	facing   float64
	paused   bool
	quitting bool
	err      error
}

// NewModel builds the world for level and wraps it in a model.
func NewModel(level platformer.LevelData, cfg config.PlatformerConfig, rt core.RuntimeConfig, logger *log.Logger) (*Model, error) {
	world, err := platformer.BuildWorld(&level, cfg, platformer.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	h := help.New()
	h.ShowAll = false

	return &Model{
		level:   level,
		cfg:     cfg,
		world:   world,
		logger:  logger,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		runtime: rt,
		step:    core.NewFixedStep(cfg.World.TickRate),
		held:    NewHeldKeys(defaultHoldWindow),
		keys:    DefaultKeyMap(),
		help:    h,
		pulse:   NewPulse(1),
		facing:  1,
	}, nil
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	now := time.Now()
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.held.Release()
	case core.ActionRestart:
		m.restart()
	case core.ActionFire:
		if !m.paused {
			m.fireForward()
		}
	case core.ActionLeft:
		m.facing = -1
		m.held.Press(action, now)
	case core.ActionRight:
		m.facing = 1
		m.held.Press(action, now)
	case core.ActionJump:
		m.held.Press(action, now)
	}
	return m, nil
}

// handleMouse fires at the clicked cell.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	view := core.NewRect(0, hudRows, m.screen.Width(), m.viewRows())
	if !view.Contains(msg.X, msg.Y) {
		return m, nil
	}
	row := msg.Y - view.Y
	snap := m.world.Snapshot()
	cam := Follow(&snap, m.screen.Width(), m.viewRows())
	x, y := cam.ScreenToWorld(msg.X, row, snap.TileSize)
	m.world.FireAt(x, y)
	return m, nil
}

// handleTick drains elapsed time into whole simulation steps.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.last.IsZero() {
		m.last = now
	}
	elapsed := now.Sub(m.last)
	m.last = now

	m.pulse.Update(float32(elapsed.Seconds()))
	if m.paused {
		return m, tickCmd(m.runtime.TickRate)
	}

	input := ToInput(m.held.Frame(now))
	for n := m.step.Add(elapsed); n > 0; n-- {
		res := m.world.Tick(input)
		for _, ev := range res.Events {
			if ev.Kind == platformer.EventPlayerDeath {
				m.held.Release()
			}
		}
	}
	return m, tickCmd(m.runtime.TickRate)
}

// fireForward shoots horizontally in the direction last moved.
func (m *Model) fireForward() {
	p := m.world.Player()
	if p == nil {
		return
	}
	cx, cy := p.Box().Center()
	m.world.FireAt(cx+m.facing*m.world.Grid().TileSize()*10, cy)
}

// restart rebuilds the world from the level data.
func (m *Model) restart() {
	world, err := platformer.BuildWorld(&m.level, m.cfg, platformer.WithLogger(m.logger))
	if err != nil {
		m.err = err
		m.logger.Error("restart failed", "level", m.level.ID, "err", err)
		return
	}
	m.world = world
	m.held.Release()
	m.step = core.NewFixedStep(m.cfg.World.TickRate)
	m.paused = false
}

func (m *Model) viewRows() int {
	return max(0, m.screen.Height()-hudRows-helpRows)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	snap := m.world.Snapshot()
	viewH := m.viewRows()
	cam := Follow(&snap, m.screen.Width(), viewH)

	name := m.level.Name
	if name == "" {
		name = m.level.ID
	}
	DrawHUD(m.screen, 0, name, &snap, m.paused)
	DrawWorld(m.screen, &snap, cam, hudRows, viewH, m.pulse.Value())
	if m.err != nil {
		m.screen.DrawText(0, hudRows, m.err.Error(), core.ColorBrick)
	}

	out := RenderScreen(m.screen)
	if m.help.ShowAll {
		return out + "\n" + m.help.View(m.keys)
	}
	return out + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// World returns the running world.
func (m *Model) World() *platformer.World {
	return m.world
}

// Run starts the Bubble Tea program for level.
func Run(level platformer.LevelData, cfg config.PlatformerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(level, cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
