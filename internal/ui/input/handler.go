package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// Command is a keyboard action.
type Command int

const (
	CommandQuit Command = iota
	CommandSelectInfantry
	CommandSelectTank
	CommandSelectArtillery
	CommandSelectBomber
	CommandTogglePause
	CommandToggleEditor
	CommandRestart
	CommandSave
	CommandCopy
)

// Binding maps a key to a command.
type Binding struct {
	Key     ebiten.Key
	Command Command
}

// DefaultBindings is the standard keyboard layout.
var DefaultBindings = []Binding{
	{ebiten.KeyEscape, CommandQuit},
	{ebiten.Key1, CommandSelectInfantry},
	{ebiten.Key2, CommandSelectTank},
	{ebiten.Key3, CommandSelectArtillery},
	{ebiten.Key4, CommandSelectBomber},
	{ebiten.KeyP, CommandTogglePause},
	{ebiten.KeyE, CommandToggleEditor},
	{ebiten.KeyR, CommandRestart},
	{ebiten.KeyS, CommandSave},
	{ebiten.KeyC, CommandCopy},
}

// SelectedKind returns the unit kind a select command picks.
func (c Command) SelectedKind() (core.UnitKind, bool) {
	switch c {
	case CommandSelectInfantry:
		return core.Infantry, true
	case CommandSelectTank:
		return core.Tank, true
	case CommandSelectArtillery:
		return core.Artillery, true
	case CommandSelectBomber:
		return core.Bomber, true
	}
	return core.Infantry, false
}

// Frame is the input gathered during one tick.
type Frame struct {
	Cursor       core.Point
	LeftPressed  bool
	LeftReleased bool
	WheelY       float64
	Commands     []Command
}

type Handler struct {
	bindings []Binding
	frame    Frame
}

func NewHandler(bindings []Binding) *Handler {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Handler{bindings: bindings}
}

// Update polls ebiten for this tick's input. Call once per Game.Update.
func (h *Handler) Update() Frame {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	h.frame = Frame{
		Cursor:       core.Point{X: x, Y: y},
		LeftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		WheelY:       wy,
		Commands:     h.frame.Commands[:0],
	}
	for _, b := range h.bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			h.frame.Commands = append(h.frame.Commands, b.Command)
		}
	}
	return h.frame
}

// Cursor is the cursor position from the last Update.
func (h *Handler) Cursor() core.Point {
	return h.frame.Cursor
}
