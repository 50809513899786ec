// Package game holds a playing session: a board plus the bookkeeping the
// board does not carry, with every move checked by the engine first.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is a board under play.
//
// ToMove records whose turn it would be but is never enforced: either
// colour may move at any time.
type Game struct {
	ID            string
	Board         *chess.Board
	ToMove        chess.Colour
	HalfmoveClock int
	MoveNumber    int
	Ply           int // moves played in this session

	cfg *config.Config
}

// New starts a game from cfg.Setup's position. The position must have
// exactly one king per side.
func New(cfg *config.Config) (*Game, error) {
	fen := cfg.Setup.FEN()
	pos, err := engine.ParsePosition(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "start position %q", fen)
	}
	if err := engine.ValidatePosition(pos.Board); err != nil {
		return nil, errors.Wrapf(err, "start position %q", fen)
	}

	g := &Game{
		ID:            uuid.NewString(),
		Board:         pos.Board,
		ToMove:        pos.ToMove,
		HalfmoveClock: pos.HalfmoveClock,
		MoveNumber:    pos.MoveNumber,
		cfg:           cfg,
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "game %s: started from %s\n", g.ID, g.FEN())
	}
	return g, nil
}

// Play checks move and, if legal, applies it. It returns the captured
// piece, or chess.Empty. On error the board is unchanged and the error is a
// *errors.MoveError wrapping one of ErrInvalidSquare, ErrSameSquare,
// ErrNoPiece or ErrIllegalMove.
func (g *Game) Play(move chess.Move) (chess.Piece, error) {
	if err := g.check(move); err != nil {
		if g.cfg.Verbosity > 1 {
			fmt.Fprintf(g.cfg.LogFile, "game %s: rejected %v: %v\n", g.ID, move, err)
		}
		return chess.Empty, err
	}

	mover := g.Board.Get(move.From)
	captured := engine.Apply(g.Board, move.From, move.To)

	g.Ply++
	if mover.Kind == chess.Pawn || !captured.IsEmpty() {
		g.HalfmoveClock = 0
	} else {
		g.HalfmoveClock++
	}
	if mover.Colour == chess.Black {
		g.MoveNumber++
	}
	g.ToMove = mover.Colour.Opposite()

	if g.cfg.Verbosity > 1 {
		if captured.IsEmpty() {
			fmt.Fprintf(g.cfg.LogFile, "game %s: ply %d %v %v\n", g.ID, g.Ply, mover, move)
		} else {
			fmt.Fprintf(g.cfg.LogFile, "game %s: ply %d %v %v takes %v\n", g.ID, g.Ply, mover, move, captured)
		}
	}
	return captured, nil
}

// check maps a rejected move to its sentinel.
func (g *Game) check(move chess.Move) error {
	var err error
	switch {
	case !move.From.Valid() || !move.To.Valid():
		err = errors.ErrInvalidSquare
	case move.From == move.To:
		err = errors.ErrSameSquare
	case g.Board.Get(move.From).IsEmpty():
		err = errors.ErrNoPiece
	case !engine.IsLegal(g.Board, move.From, move.To):
		err = errors.ErrIllegalMove
	default:
		return nil
	}
	return &errors.MoveError{Err: err, Ply: g.Ply + 1, Move: move.String()}
}

// FEN returns the current position as FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.Board, g.ToMove, g.HalfmoveClock, g.MoveNumber)
}

// LegalMoves returns the legal destinations of the piece on sq.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	return engine.LegalMoves(g.Board, sq)
}

// InCheck reports whether colour's king is attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	return engine.IsInCheck(g.Board, colour)
}
