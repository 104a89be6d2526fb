package textboard

import (
	"fmt"
	"io"
	"log"

	"github.com/benbeisheim/chessmodel/internal/model"
)

// SelfPlay lets the move selector play both sides of g for at most plies
// moves, printing every position to w. It stops early on checkmate or when
// the side to move has no valid move, and returns the number of plies played.
func SelfPlay(w io.Writer, g *model.Game, plies int, r *Renderer) (int, error) {
	b := g.Board()
	if _, err := fmt.Fprintf(w, "%s%s\n", r.Board(b), Status(g)); err != nil {
		return 0, err
	}

	played := 0
	for played < plies && !g.IsComplete() {
		mover := g.CurrentPlayer()
		m, ok := g.SelectMove()
		if !ok {
			log.Printf("selfplay: %s has no valid move after %d plies", mover, played)
			_, err := fmt.Fprintf(w, "no valid move found for %s\n", mover)
			return played, err
		}
		played++

		b = g.Board()
		if _, err := fmt.Fprintf(w, "\n%d. %s %s\n%s%s\n", played, mover, m.Algebraic(), r.Board(b), Status(g)); err != nil {
			return played, err
		}
	}
	return played, nil
}
