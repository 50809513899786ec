package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// repl reads commands line by line and plays them on a game.
type repl struct {
	game     *game.Game
	cfg      *config.Config
	renderer *render.Renderer
	out      io.Writer

	played   int
	rejected int
}

func newREPL(g *game.Game, cfg *config.Config) *repl {
	return &repl{
		game:     g,
		cfg:      cfg,
		renderer: render.NewRenderer(cfg.OutputFile, cfg.Display),
		out:      cfg.OutputFile,
	}
}

// run draws the board and processes input until EOF.
func (r *repl) run(in io.Reader) error {
	if err := r.renderer.Render(r.game.Board); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.cfg.Display.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if err := r.handle(scanner.Text()); err != nil {
			return err
		}
	}
}

// handle processes one line. Only output failures are returned; bad input
// is reported to the user and the board is left as it was.
func (r *repl) handle(line string) error {
	cmd, err := notation.ParseCommand(line)
	if err != nil {
		r.rejected++
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return nil
	}

	switch cmd.Kind {
	case notation.NoCommand:
		return nil

	case notation.HelpCommand:
		printCommands(r.out)

	case notation.FENCommand:
		fmt.Fprintln(r.out, r.game.FEN())

	case notation.MovesCommand:
		var names []string
		for _, sq := range r.game.LegalMoves(cmd.Square) {
			names = append(names, notation.FormatSquare(sq))
		}
		if len(names) == 0 {
			fmt.Fprintf(r.out, "No legal moves from %s\n", notation.FormatSquare(cmd.Square))
		} else {
			fmt.Fprintf(r.out, "%s: %s\n", notation.FormatSquare(cmd.Square), strings.Join(names, " "))
		}

	case notation.MoveCommand:
		if _, err := r.game.Play(cmd.Move); err != nil {
			r.rejected++
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return nil
		}
		r.played++
		if err := r.renderer.Render(r.game.Board); err != nil {
			return err
		}
		if r.game.InCheck(r.game.ToMove) {
			fmt.Fprintf(r.out, "%v is in check\n", r.game.ToMove)
		}
	}
	return nil
}

func printCommands(w io.Writer) {
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  A2 A4      move the piece on A2 to A4\n")
	fmt.Fprintf(w, "  moves E2   list legal destinations of the piece on E2\n")
	fmt.Fprintf(w, "  fen        print the position as FEN\n")
	fmt.Fprintf(w, "  help       show this list\n")
}
