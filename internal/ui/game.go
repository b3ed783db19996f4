package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/frontline/internal/common"
	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/game/states"
	"github.com/mitchelldurbincs/frontline/internal/ui/input"
	"github.com/mitchelldurbincs/frontline/internal/ui/renderer"
)

// statusFrames is how long a status message stays on screen.
const statusFrames = 120

// Options configures the window client.
type Options struct {
	Width           int
	Height          int
	LevelFile       string
	ShowCoordinates bool
}

// UIGame runs a Play session inside an ebiten window.
type UIGame struct {
	play          *game.Play
	boardRenderer *renderer.BoardRenderer
	inputHandler  *input.Handler
	editor        *Editor
	opts          Options
	logger        zerolog.Logger

	statusMessage string
	messageTimer  int
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(play *game.Play, opts Options, logger zerolog.Logger) *UIGame {
	logger = logger.With().Str("component", "UIGame").Logger()
	return &UIGame{
		play:          play,
		boardRenderer: renderer.NewBoardRenderer(basicfont.Face7x13),
		inputHandler:  input.NewHandler(nil),
		editor:        NewEditor(play, opts.LevelFile, logger),
		opts:          opts,
		logger:        logger,
	}
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	frame := g.inputHandler.Update()

	for _, cmd := range frame.Commands {
		if err := g.handleCommand(cmd); err != nil {
			return err
		}
	}

	if g.play.Phase() == states.PhaseEditing {
		if msg := g.editor.Update(frame); msg != "" {
			g.setStatus(msg)
		}
	} else {
		if frame.LeftPressed {
			g.play.MouseDown(frame.Cursor)
		}
		if frame.LeftReleased {
			if err := g.play.MouseUp(frame.Cursor); err != nil {
				g.setStatus(err.Error())
			}
		}
	}

	g.play.Update(1000 / ebiten.TPS())

	if g.messageTimer > 0 {
		g.messageTimer--
	}
	return nil
}

func (g *UIGame) handleCommand(cmd input.Command) error {
	if kind, ok := cmd.SelectedKind(); ok {
		g.play.Select(kind)
		g.setStatus(fmt.Sprintf("%s selected (%d AP)", kind, kind.Spec().PlaceCost))
		return nil
	}

	var err error
	switch cmd {
	case input.CommandQuit:
		g.logger.Info().Msg("Quit requested")
		return ebiten.Termination
	case input.CommandTogglePause:
		err = g.play.TogglePause()
	case input.CommandToggleEditor:
		err = g.play.ToggleEditor()
	case input.CommandRestart:
		if g.play.Phase() == states.PhaseOver {
			err = g.play.Restart()
		}
	}
	if err != nil {
		g.logger.Debug().Err(err).Msg("Command ignored")
	}
	return nil
}

func (g *UIGame) setStatus(msg string) {
	g.statusMessage = msg
	g.messageTimer = statusFrames
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	g.play.Draw(g.boardRenderer)
	g.boardRenderer.Flush(screen)

	g.drawFrontline(screen)
	g.drawHUD(screen)
}

func (g *UIGame) drawFrontline(screen *ebiten.Image) {
	b := g.play.Board()
	cfg := b.Config()
	// top edge of the last friendly row
	y := float32(cfg.VisibleRows-b.Frontline()-1)*float32(cfg.TileHeight) + float32(b.DrawOffset())
	g.boardRenderer.FillRect(screen, 0, y-1, float32(cfg.Columns*cfg.TileWidth), 2, common.FrontlineLineColor)
}

func (g *UIGame) drawHUD(screen *ebiten.Image) {
	b := g.play.Board()
	cfg := b.Config()
	cursor := g.inputHandler.Cursor()
	at := b.MousePosToTileCoords(cursor)

	switch g.play.Phase() {
	case states.PhasePaused:
		g.boardRenderer.Overlay(screen, common.OverlayColor)
		g.centerText(screen, "PAUSED - press P to resume", g.opts.Height/2)
	case states.PhaseEditing:
		if b.InView(at) {
			g.boardRenderer.Highlight(screen,
				float32(at.X*cfg.TileWidth),
				float32((cfg.VisibleRows-1-at.Y)*cfg.TileHeight),
				float32(cfg.TileWidth), float32(cfg.TileHeight),
				common.EditorCursorColor)
		}
		g.boardRenderer.Text(screen,
			fmt.Sprintf("EDITOR  row %d/%d  click: terrain  wheel: scroll  S: save  C: copy", b.BaseRow(), b.Rows()),
			5, g.opts.Height-8, common.HUDTextColor)
	case states.PhaseOver:
		ctx := g.play.Context()
		g.boardRenderer.Overlay(screen, common.OverlayColor)
		g.centerText(screen, "FRONTLINE OVERRUN", g.opts.Height/2-10)
		g.centerText(screen, fmt.Sprintf("rows %d  kills %d  - press R to restart", ctx.RowsAdvanced, ctx.Kills), g.opts.Height/2+10)
	default:
		if b.InView(at) && !b.EnemyTerritory(at) {
			g.boardRenderer.Highlight(screen,
				float32(at.X*cfg.TileWidth),
				float32((cfg.VisibleRows-1-at.Y)*cfg.TileHeight)+float32(b.DrawOffset()),
				float32(cfg.TileWidth), float32(cfg.TileHeight),
				common.SelectionColor)
		}
	}

	g.boardRenderer.Text(screen, g.play.HUD(), 5, 15, common.HUDTextColor)
	g.boardRenderer.Text(screen, "Unit: "+g.play.Selected().String(), 5, 30, common.HUDTextColor)
	if g.opts.ShowCoordinates {
		g.boardRenderer.Text(screen, fmt.Sprintf("tile %s  px %s", at, cursor), 5, 45, common.HUDTextColor)
	}
	if g.messageTimer > 0 {
		g.centerText(screen, g.statusMessage, 15)
	}
}

func (g *UIGame) centerText(screen *ebiten.Image, s string, y int) {
	x := (g.opts.Width - g.boardRenderer.TextWidth(s)) / 2
	g.boardRenderer.Text(screen, s, x, y, common.HUDTextColor)
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Width, g.opts.Height
}
