package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// keyHeadings maps steering keys to headings. Arrows and WASD both work.
var keyHeadings = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowUp:    core.North,
	ebiten.KeyW:          core.North,
	ebiten.KeyArrowRight: core.East,
	ebiten.KeyD:          core.East,
	ebiten.KeyArrowDown:  core.South,
	ebiten.KeyS:          core.South,
	ebiten.KeyArrowLeft:  core.West,
	ebiten.KeyA:          core.West,
}

// Handler collects one frame of player input. Each request is consumed by
// the first read.
type Handler struct {
	// Mouse state
	mouseX, mouseY int

	// UI state
	tileSize     int
	boardOffsetX int
	boardOffsetY int

	// Pending requests
	heading    core.Direction
	hasHeading bool
	click      core.Coordinate
	hasClick   bool
	pause      bool
	restart    bool
	quit       bool
}

func NewHandler(tileSize int) *Handler {
	return &Handler{tileSize: tileSize}
}

// Update polls the keyboard and mouse for this frame
func (h *Handler) Update() {
	h.mouseX, h.mouseY = GetCursorPosition()

	if IsLeftClickJustPressed() {
		row, col := h.screenToTile(h.mouseX, h.mouseY)
		h.click = core.NewCoordinate(row, col)
		h.hasClick = true
	}

	h.handleKeyboard()
}

func (h *Handler) handleKeyboard() {
	// The last steering key pressed this frame wins
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if dir, ok := keyHeadings[key]; ok {
			h.heading = dir
			h.hasHeading = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.pause = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.restart = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.quit = true
	}
}

func (h *Handler) screenToTile(x, y int) (int, int) {
	col := (x - h.boardOffsetX) / h.tileSize
	row := (y - h.boardOffsetY) / h.tileSize
	if x < h.boardOffsetX {
		col = -1
	}
	if y < h.boardOffsetY {
		row = -1
	}
	return row, col
}

func (h *Handler) SetBoardOffset(x, y int) {
	h.boardOffsetX = x
	h.boardOffsetY = y
}

// Heading returns the steering key pressed since the last call
func (h *Handler) Heading() (core.Direction, bool) {
	dir, ok := h.heading, h.hasHeading
	h.hasHeading = false
	return dir, ok
}

// ClickedTile returns the board cell clicked since the last call. The cell
// may be off the board.
func (h *Handler) ClickedTile() (core.Coordinate, bool) {
	c, ok := h.click, h.hasClick
	h.hasClick = false
	return c, ok
}

func (h *Handler) PauseRequested() bool {
	p := h.pause
	h.pause = false
	return p
}

func (h *Handler) RestartRequested() bool {
	r := h.restart
	h.restart = false
	return r
}

func (h *Handler) QuitRequested() bool {
	return h.quit
}
