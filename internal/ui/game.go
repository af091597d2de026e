package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/SnakeDuel/internal/common"
	"github.com/mitchelldurbincs/SnakeDuel/internal/config"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/rules"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/states"
	"github.com/mitchelldurbincs/SnakeDuel/internal/ui/input"
	"github.com/mitchelldurbincs/SnakeDuel/internal/ui/renderer"
)

// statusBarHeight is the space above the board for the status lines
const statusBarHeight = 44

// UI configuration functions. They read the live config so a hot reload
// takes effect on the next frame.
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

func TileSize() int {
	return config.Get().UI.Game.TileSize
}

func TickInterval() int {
	return config.Get().UI.Game.TickInterval
}

// UIGame holds the game engine instance and UI-specific state
type UIGame struct {
	engine        *game.Engine
	boardRenderer *renderer.BoardRenderer
	input         *input.Handler
	defaultFont   font.Face
	logger        zerolog.Logger

	tickTimer     int
	reloadPalette atomic.Bool
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(engine *game.Engine, logger zerolog.Logger) (*UIGame, error) {
	if engine == nil {
		return nil, errors.New("ui: engine is required")
	}

	g := &UIGame{
		engine:      engine,
		defaultFont: basicfont.Face7x13,
		logger:      logger.With().Str("component", "UIGame").Logger(),
	}

	tileSize := TileSize()
	g.boardRenderer = renderer.NewBoardRenderer(tileSize, g.defaultFont, common.NewPalette(config.Get().Colors))
	g.input = input.NewHandler(tileSize)
	g.input.SetBoardOffset(0, statusBarHeight)

	return g, nil
}

// ReloadPalette asks the next frame to re-read the colours from the live
// config. Safe to call from the config watcher goroutine.
func (g *UIGame) ReloadPalette() {
	g.reloadPalette.Store(true)
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	g.input.Update()
	if g.input.QuitRequested() {
		return ebiten.Termination
	}

	if g.reloadPalette.Swap(false) {
		g.boardRenderer.SetPalette(common.NewPalette(config.Get().Colors))
	}

	ctx := context.Background()

	if g.input.RestartRequested() {
		if err := g.engine.Restart(ctx); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
		g.tickTimer = 0
		g.logger.Info().Str("game_id", g.engine.GameID()).Msg("Game restarted")
	}

	if g.input.PauseRequested() && !g.engine.IsFinished() {
		if err := g.engine.TogglePause(); err != nil {
			g.logger.Warn().Err(err).Msg("Pause toggle rejected")
		}
	}

	g.steer()

	if g.engine.Phase() != states.PhaseRunning {
		return nil
	}

	g.tickTimer++
	if g.tickTimer < TickInterval() {
		return nil
	}
	g.tickTimer = 0

	if err := g.engine.Step(ctx); err != nil && !errors.Is(err, core.ErrGameNotRunning) {
		return err
	}
	return nil
}

// steer forwards keyboard and mouse steering to the human snake
func (g *UIGame) steer() {
	dir, ok := g.input.Heading()
	if !ok {
		target, clicked := g.input.ClickedTile()
		if !clicked {
			return
		}
		human := g.engine.HumanSnake()
		if human == nil {
			return
		}
		head, alive := human.Head()
		if !alive {
			return
		}
		if dir, ok = rules.HeadingToward(head, target); !ok {
			return
		}
	}

	if err := g.engine.SetHumanHeading(dir); err != nil && !errors.Is(err, core.ErrGameNotRunning) {
		g.logger.Warn().Err(err).Msg("Heading rejected")
	}
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.boardRenderer.Palette().Background)

	gs := g.engine.GameState()
	g.boardRenderer.Draw(screen, gs, 0, statusBarHeight)

	humanLen, computerLen := 0, 0
	if gs.Human != nil {
		humanLen = gs.Human.Len()
	}
	if gs.Computer != nil {
		computerLen = gs.Computer.Len()
	}
	status := fmt.Sprintf("Tick: %d   You: %d   Computer: %d", gs.Tick, humanLen, computerLen)
	g.boardRenderer.DrawText(screen, status, 6, 16)
	g.boardRenderer.DrawText(screen, g.hint(gs), 6, 34)
}

// hint is the second status line
func (g *UIGame) hint(gs game.GameState) string {
	switch g.engine.Phase() {
	case states.PhasePaused:
		return "PAUSED - space to resume"
	case states.PhaseEnded:
		return "GAME OVER - R to restart"
	case states.PhaseError:
		return "ERROR - R to restart"
	}

	if gs.Board == nil || gs.Human == nil || gs.Human.IsEmpty() {
		return "Your snake is gone - R to restart"
	}
	legal := rules.LegalHeadings(gs.Board, gs.Human)
	if len(legal) == 0 {
		return "Boxed in!"
	}
	names := make([]string, len(legal))
	for i, d := range legal {
		names[i] = d.String()
	}
	return "Open: " + strings.Join(names, " ") + "   space pause  R restart"
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth(), ScreenHeight()
}
