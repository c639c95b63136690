// Package eval contains static position evaluation: material balance,
// mobility, and the checkmate/stalemate terminal scores. Evaluation is
// material + crude mobility only -- no positional tables, no pawn
// structure, no king safety.
package eval

import (
	"fmt"

	"github.com/herohde/chesspal/pkg/board"
)

// Score is a signed position or move score, White's perspective positive.
// It is a named int, not a semantic change from plain integer arithmetic --
// the wrapper exists for String/Crop/Unit the way the teacher's own
// pkg/board/score.go and pkg/eval/score.go carry a Score type alongside
// their raw integer math.
type Score int

// Checkmate and Stalemate are the terminal sentinels, from White's
// perspective. Checkmate favors the opponent of the side to move.
const (
	Checkmate Score = 9999
	Stalemate Score = 0

	MinScore Score = -Checkmate
	MaxScore Score = Checkmate

	mobilityWeight = 2
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	return Score(c.Unit())
}

// Crop crops a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Evaluate returns a score for b from White's perspective.
//
// If the side to move has no legal move and is in check, the position is
// checkmate: the score is -Checkmate if White is to move, +Checkmate if
// Black is to move. If the side to move has no legal move and is not in
// check, the position is stalemate: the score is 0. Otherwise the score is
// material balance plus 2x the side to move's legal move count, sign-flipped
// for Black.
func Evaluate(b *board.Board) Score {
	if !board.HasLegalMove(b) {
		if board.IsInCheck(b, b.CurrentPlayer()) {
			return Checkmate * -Unit(b.CurrentPlayer())
		}
		return Stalemate
	}

	material := materialScore(b)
	mobility := Score(mobilityWeight*len(board.GenerateLegalMoves(b))) * Unit(b.CurrentPlayer())
	return material + mobility
}

// materialScore sums the value of every piece on the board, positive for
// White and negative for Black.
func materialScore(b *board.Board) Score {
	var score Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := b.GetPiece(sq)
		if p.IsEmpty() {
			continue
		}
		score += Score(p.Kind.Value() * p.Color.Unit())
	}
	return score
}
