package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/SnakeDuel/internal/common"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// BoardRenderer draws the grid, food and both snakes
type BoardRenderer struct {
	tileSize    int
	defaultFont font.Face
	palette     common.Palette

	// tile is a white square tinted per cell through ColorScale
	tile *ebiten.Image
	food *ebiten.Image
	grid *ebiten.Image
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(tileSize int, f font.Face, palette common.Palette) *BoardRenderer {
	inner := tileSize - 1
	if inner < 1 {
		inner = 1
	}
	tile := ebiten.NewImage(inner, inner)
	tile.Fill(color.White)

	m := max(tileSize/2, 1)
	food := ebiten.NewImage(m, m)
	food.Fill(color.White)

	return &BoardRenderer{tileSize: tileSize, defaultFont: f, palette: palette, tile: tile, food: food}
}

// SetPalette swaps the colours used for subsequent frames
func (br *BoardRenderer) SetPalette(p common.Palette) {
	br.palette = p
}

// Palette returns the colours in use
func (br *BoardRenderer) Palette() common.Palette {
	return br.palette
}

// Draw renders the board at (offsetX, offsetY) on the supplied screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, gs game.GameState, offsetX, offsetY int) {
	board := gs.Board
	if board == nil {
		return
	}

	// Grid lines show through the one-pixel gap around each tile
	w, h := board.Cols*br.tileSize, board.Rows*br.tileSize
	if br.grid == nil || br.grid.Bounds().Dx() != w || br.grid.Bounds().Dy() != h {
		br.grid = ebiten.NewImage(w, h)
		br.grid.Fill(color.White)
	}
	br.fill(screen, br.grid, float64(offsetX), float64(offsetY), br.palette.GridLines)

	for idx, cell := range board.Cells() {
		c := board.Coord(idx)
		x := float64(offsetX + c.Col*br.tileSize)
		y := float64(offsetY + c.Row*br.tileSize)

		switch cell {
		case core.CellFood:
			br.fill(screen, br.tile, x, y, br.palette.Background)
			inset := float64(br.tileSize-br.food.Bounds().Dx()) / 2
			br.fill(screen, br.food, x+inset, y+inset, br.palette.Food)
		case core.CellSnake:
			// Coloured per owner below
		default:
			br.fill(screen, br.tile, x, y, br.palette.Background)
		}
	}

	for _, s := range []*core.Snake{gs.Human, gs.Computer} {
		if s == nil {
			continue
		}
		segs := s.Segments()
		for i, c := range segs {
			head := i == len(segs)-1
			x := float64(offsetX + c.Col*br.tileSize)
			y := float64(offsetY + c.Row*br.tileSize)
			br.fill(screen, br.tile, x, y, br.palette.SnakeColor(s.Kind, head))
		}
	}
}

// DrawText writes one line of text with its baseline at (x, y)
func (br *BoardRenderer) DrawText(screen *ebiten.Image, s string, x, y int) {
	if br.defaultFont == nil {
		return
	}
	text.Draw(screen, s, br.defaultFont, x, y, br.palette.Text)
}

func (br *BoardRenderer) fill(screen, img *ebiten.Image, x, y float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(img, op)
}
