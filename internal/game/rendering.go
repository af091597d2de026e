package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Board symbols
const (
	OpenSymbol      = "·"
	FoodSymbol      = "*"
	HumanHeadSymbol = "H"
	HumanBodySymbol = "h"
	CompHeadSymbol  = "C"
	CompBodySymbol  = "c"
	SnakeSymbol     = "#"
)

var snakeColors = map[core.SnakeKind]string{
	core.HumanSnake:    ColorGreen,
	core.ComputerSnake: ColorRed,
}

// Render returns the board as text with ANSI colors for a terminal
func (e *Engine) Render() string {
	return e.render(true)
}

// RenderPlain returns the board as text without color codes
func (e *Engine) RenderPlain() string {
	return e.render(false)
}

type segmentMark struct {
	kind core.SnakeKind
	head bool
}

func (e *Engine) render(colored bool) string {
	board := e.gs.Board
	if board == nil {
		return "(no board)\n"
	}

	// Each cell takes a symbol, a space and up to ~10 bytes of ANSI codes
	var sb strings.Builder
	sb.Grow((board.Cols*13+8)*(board.Rows+4) + 128)

	marks := make(map[int]segmentMark)
	for _, s := range []*core.Snake{e.gs.Human, e.gs.Computer} {
		if s == nil {
			continue
		}
		segs := s.Segments()
		for i, c := range segs {
			marks[board.Idx(c.Row, c.Col)] = segmentMark{kind: s.Kind, head: i == len(segs)-1}
		}
	}

	// Header row
	sb.WriteString("    ")
	for col := 0; col < board.Cols; col++ {
		fmt.Fprintf(&sb, "%-2d", col%100)
	}
	sb.WriteString("\n")

	for row := 0; row < board.Rows; row++ {
		fmt.Fprintf(&sb, "%2d  ", row)
		for col := 0; col < board.Cols; col++ {
			cell, _ := board.CellAt(row, col)
			mark, owned := marks[board.Idx(row, col)]
			color, symbol := cellDisplay(cell, mark, owned)
			if colored {
				sb.WriteString(color)
				sb.WriteString(symbol)
				sb.WriteString(ColorReset)
			} else {
				sb.WriteString(symbol)
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	human, computer := 0, 0
	if e.gs.Human != nil {
		human = e.gs.Human.Len()
	}
	if e.gs.Computer != nil {
		computer = e.gs.Computer.Len()
	}
	fmt.Fprintf(&sb, "\ntick %d  human %d  computer %d  food %d\n", e.gs.Tick, human, computer, board.Count(core.CellFood))
	sb.WriteString(OpenSymbol + "=open " + FoodSymbol + "=food H/h=human C/c=computer\n")

	return sb.String()
}

// cellDisplay picks the color and symbol for one cell
func cellDisplay(cell core.Cell, mark segmentMark, owned bool) (string, string) {
	switch cell {
	case core.CellFood:
		return ColorYellow, FoodSymbol
	case core.CellSnake:
		if !owned {
			// Snake cell with no owning segment, only seen on hand-built boards
			return ColorWhite, SnakeSymbol
		}
		color := snakeColors[mark.kind]
		switch {
		case mark.kind == core.HumanSnake && mark.head:
			return color, HumanHeadSymbol
		case mark.kind == core.HumanSnake:
			return color, HumanBodySymbol
		case mark.head:
			return color, CompHeadSymbol
		default:
			return color, CompBodySymbol
		}
	}
	return ColorGray, OpenSymbol
}
