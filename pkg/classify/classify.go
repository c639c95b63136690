// Package classify grades a played move against the full legal-move set of
// the position it was played in, producing a human-facing badge and
// description plus running session statistics.
package classify

import (
	"fmt"
	"sort"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/herohde/chesspal/pkg/eval"
)

// Record is one graded move.
type Record struct {
	Move        board.Move
	Badge       Badge
	Description string
	Rank        int // 1-indexed position among before's legal moves, by descending score
	TotalMoves  int
	Centipawns  eval.Score // -(ScoreAfter-ScoreBefore): loss vs. the pre-move static score; 0 or negative is a gain

	ScoreBefore eval.Score
	ScoreAfter  eval.Score
	ScoreDiff   eval.Score

	IsCapture bool
	IsCheck   bool
}

func (r Record) String() string {
	return fmt.Sprintf("%v: %v (rank=%v/%v, %+dcp) -- %v", r.Move, r.Badge, r.Rank, r.TotalMoves, -r.Centipawns, r.Description)
}

// Classify grades m, a move played from before. The caller is responsible
// for having already validated that m is legal in before.
func Classify(before *board.Board, m board.Move) Record {
	scoreBefore := eval.Evaluate(before)

	after := before.Clone()
	after.ApplyMove(m)
	scoreAfter := -eval.Evaluate(after)

	scoreDiff := scoreAfter - scoreBefore
	centipawns := -scoreDiff

	legal := board.GenerateLegalMoves(before)
	rank, total := rankMove(before, legal, m)

	isCapture := !before.GetPiece(m.To).IsEmpty()
	isCheck := board.IsInCheck(after, after.CurrentPlayer())

	badge, description := grade(rank, total, centipawns, isCapture, isCheck)

	return Record{
		Move:        m,
		Badge:       badge,
		Description: description,
		Rank:        rank,
		TotalMoves:  total,
		Centipawns:  centipawns,
		ScoreBefore: scoreBefore,
		ScoreAfter:  scoreAfter,
		ScoreDiff:   scoreDiff,
		IsCapture:   isCapture,
		IsCheck:     isCheck,
	}
}

// rankMove scores every legal move of before by one-ply static evaluation
// from the mover's perspective, sorts descending, and returns m's 1-indexed
// position (or len(legal) if m is not among them) together with the total
// move count.
func rankMove(before *board.Board, legal []board.Move, m board.Move) (int, int) {
	type scored struct {
		move  board.Move
		score eval.Score
	}
	scores := make([]scored, len(legal))
	for i, mv := range legal {
		child := before.Clone()
		child.ApplyMove(mv)
		scores[i] = scored{move: mv, score: -eval.Evaluate(child)}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	for i, s := range scores {
		if s.move.Equals(m) {
			return i + 1, len(legal)
		}
	}
	return len(legal), len(legal)
}

// grade applies the classification table (first matching row wins) and the
// annotation rules, in that order.
func grade(rank, total int, centipawns eval.Score, isCapture, isCheck bool) (Badge, string) {
	var badge Badge
	var description string

	switch {
	case rank == 1 && total > 3 && (centipawns > 150 || (isCapture && centipawns > 50)):
		badge = Brilliant
		description = "luar-biasa gain"
	case rank == 1:
		badge = Best
		description = "best in position"
	case rank <= 2 && centipawns >= -15:
		badge = Great
		description = "very strong"
	case rank <= 3 && centipawns >= -35:
		badge = Good
		description = "good"
	case centipawns >= -80:
		badge = Inaccuracy
		description = fmt.Sprintf("slight loss (%d cp)", centipawns)
	case centipawns >= -200:
		badge = Mistake
		description = fmt.Sprintf("mistake (%d cp)", centipawns)
	default:
		badge = Blunder
		description = fmt.Sprintf("blunder (%d cp)", centipawns)
	}

	if isCapture && centipawns >= -50 {
		description += " [good capture]"
	} else if isCapture && centipawns < -100 {
		description += " [bad capture]"
	}
	if isCheck && centipawns >= -25 {
		description += " [effective check]"
	}
	if float64(rank) > 0.8*float64(total) {
		description += " [unusual choice]"
	}

	return badge, description
}
