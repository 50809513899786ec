// Package render draws boards for the terminal, either as a plain ASCII
// grid or as shaded squares coloured with ANSI escapes.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// 256-colour palette entries for squares and pieces.
const (
	lightSquare = 194
	darkSquare  = 77
	whitePiece  = 231
	blackPiece  = 233
)

const gridLine = "+---+---+---+---+---+---+---+---+"

// Renderer writes boards to w according to a DisplayConfig.
type Renderer struct {
	w     io.Writer
	cfg   *config.DisplayConfig
	cells [2][2]*color.Color // [light square][white piece]
	label *color.Color
}

// NewRenderer creates a renderer. Colours are forced on or off by
// cfg.UseColour rather than guessed from the terminal.
func NewRenderer(w io.Writer, cfg *config.DisplayConfig) *Renderer {
	r := &Renderer{
		w:     w,
		cfg:   cfg,
		label: color.New(color.Bold),
	}
	for i, bg := range [2]int{darkSquare, lightSquare} {
		for j, fg := range [2]int{blackPiece, whitePiece} {
			r.cells[i][j] = cellColour(fg, bg)
		}
	}

	for _, c := range r.colours() {
		if cfg.UseColour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func cellColour(fg, bg int) *color.Color {
	return color.New(38, 5, color.Attribute(fg), 48, 5, color.Attribute(bg))
}

func (r *Renderer) colours() []*color.Color {
	return []*color.Color{r.cells[0][0], r.cells[0][1], r.cells[1][0], r.cells[1][1], r.label}
}

// Render writes board, rank 8 at the top.
func (r *Renderer) Render(board *chess.Board) error {
	var s string
	if r.cfg.UseColour {
		s = r.shaded(board)
	} else {
		s = r.grid(board)
	}
	_, err := io.WriteString(r.w, s)
	return err
}

// grid draws the board with ASCII rules between squares.
func (r *Renderer) grid(board *chess.Board) string {
	var sb strings.Builder
	margin := ""
	if r.cfg.Coordinates {
		margin = "   "
	}

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteString(margin + gridLine + "\n")
		if r.cfg.Coordinates {
			fmt.Fprintf(&sb, " %d ", rank+1)
		}
		sb.WriteByte('|')
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(&sb, " %s |", Glyph(board.Get(chess.Sq(file, rank)), r.cfg.Unicode))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(margin + gridLine + "\n")

	if r.cfg.Coordinates {
		sb.WriteString(margin)
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(&sb, "  %c ", 'A'+file)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// shaded draws each square as a coloured cell.
func (r *Renderer) shaded(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if r.cfg.Coordinates {
			sb.WriteString(r.label.Sprintf(" %d ", rank+1))
		}
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			light := (file+rank)%2 == 1
			sb.WriteString(r.cell(light, piece).Sprintf(" %s ", Glyph(piece, r.cfg.Unicode)))
		}
		sb.WriteByte('\n')
	}

	if r.cfg.Coordinates {
		sb.WriteString("   ")
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteString(r.label.Sprintf(" %c ", 'A'+file))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) cell(light bool, piece chess.Piece) *color.Color {
	i, j := 0, 0
	if light {
		i = 1
	}
	if piece.Colour == chess.White {
		j = 1
	}
	return r.cells[i][j]
}
