package common

import (
	"image/color"

	"github.com/mitchelldurbincs/SnakeDuel/internal/config"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// HeadHighlight is how much lighter a head is drawn than its body
const HeadHighlight = 45

// Palette is the resolved colour scheme for the desktop client
type Palette struct {
	Background color.RGBA
	GridLines  color.RGBA
	Food       color.RGBA
	Text       color.RGBA
	Snakes     map[core.SnakeKind]color.RGBA
}

// NewPalette converts configured RGB triples into colours
func NewPalette(c config.ColorsConfig) Palette {
	return Palette{
		Background: RGB(c.Background),
		GridLines:  RGB(c.GridLines),
		Food:       RGB(c.Food),
		Text:       RGB(c.Text),
		Snakes: map[core.SnakeKind]color.RGBA{
			core.HumanSnake:    RGB(c.Human),
			core.ComputerSnake: RGB(c.Computer),
		},
	}
}

// SnakeColor returns the body colour for a snake, or the head colour when
// head is set
func (p Palette) SnakeColor(kind core.SnakeKind, head bool) color.RGBA {
	c, ok := p.Snakes[kind]
	if !ok {
		c = color.RGBA{120, 120, 120, 255}
	}
	if head {
		return ShiftColor(c, HeadHighlight)
	}
	return c
}

// RGB builds an opaque colour, clamping each channel to 0-255
func RGB(v [3]int) color.RGBA {
	return color.RGBA{clamp8(v[0]), clamp8(v[1]), clamp8(v[2]), 255}
}

// ShiftColor returns a lighter version of c
func ShiftColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		clamp8(int(c.R) + amount),
		clamp8(int(c.G) + amount),
		clamp8(int(c.B) + amount),
		c.A,
	}
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
