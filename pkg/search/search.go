// Package search implements iterative-deepening alpha-beta search over
// pkg/board positions, scored by pkg/eval. Unlike the asynchronous
// Launcher/Handle search harnesses this package's teacher-generation design
// favored, a single call here runs synchronously to completion (or to the
// time budget) and returns its Result directly -- see DESIGN.md.
package search

import (
	"context"
	"time"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/herohde/chesspal/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

const (
	negInf eval.Score = -1 << 30
	posInf eval.Score = 1 << 30
)

// Search runs iterative deepening from depth 1 to opts.MaxDepth, each
// iteration a full-window alpha-beta from the root. White maximizes, Black
// minimizes. Returns the best move and score of the deepest depth whose root
// search produced a valid move; a depth cut short by the time budget counts
// if its root still returned a move.
func Search(ctx context.Context, b *board.Board, opts Options) Result {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	maxDepth := opts.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}
	timeLimit, hasTimeLimit := opts.TimeLimit.V()

	start := clock.Now()
	res := Result{BestMove: board.InvalidMove}

	for depth := 1; depth <= maxDepth; depth++ {
		if contextx.IsCancelled(ctx) {
			break
		}

		depthStart := clock.Now()
		s := &run{
			clock:        clock,
			start:        start,
			timeLimit:    timeLimit,
			hasTimeLimit: hasTimeLimit,
			traceEnabled: opts.TraceEnabled,
		}

		maximizing := b.CurrentPlayer() == board.White
		score, move := s.search(ctx, b, depth, negInf, posInf, maximizing, 0)

		res.Nodes += s.nodes
		if opts.TraceEnabled {
			res.Trace = append(res.Trace, s.trace...)
		}

		if move.IsValid() {
			res.BestMove = move
			res.Score = score
			res.Depth = depth
		}

		logw.Debugf(ctx, "search depth=%v nodes=%v score=%v move=%v", depth, s.nodes, score, move)

		if hasTimeLimit {
			if clock.Now().Sub(start) > timeLimit {
				break
			}
			if elapsed := clock.Now().Sub(depthStart); float64(elapsed) > 0.8*float64(timeLimit) {
				break
			}
		}
	}

	res.Elapsed = clock.Now().Sub(start)
	return res
}

// run carries the mutable state of one depth's alpha-beta pass.
type run struct {
	clock        Clock
	start        time.Time
	timeLimit    time.Duration
	hasTimeLimit bool
	traceEnabled bool

	nodes uint64
	trace []TraceEntry
}

func (s *run) search(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score, maximizing bool, plyFromRoot int) (eval.Score, board.Move) {
	if contextx.IsCancelled(ctx) {
		score := eval.Evaluate(b)
		s.emit(depth, plyFromRoot, maximizing, board.InvalidMove, score, alpha, beta, TimeCutoff)
		return score, board.InvalidMove
	}

	if s.hasTimeLimit && s.clock.Now().Sub(s.start) > s.timeLimit {
		score := eval.Evaluate(b)
		s.emit(depth, plyFromRoot, maximizing, board.InvalidMove, score, alpha, beta, TimeCutoff)
		return score, board.InvalidMove
	}

	if !board.HasLegalMove(b) {
		score := eval.Evaluate(b)
		s.emit(depth, plyFromRoot, maximizing, board.InvalidMove, score, alpha, beta, Terminal)
		return score, board.InvalidMove
	}
	if depth == 0 {
		score := eval.Evaluate(b)
		s.emit(depth, plyFromRoot, maximizing, board.InvalidMove, score, alpha, beta, Leaf)
		return score, board.InvalidMove
	}

	s.nodes++
	moves := board.OrderCapturesFirst(board.GenerateLegalMoves(b))

	best := board.InvalidMove
	if maximizing {
		value := negInf
		for _, m := range moves {
			child := b.Clone()
			child.ApplyMove(m)

			childScore, _ := s.search(ctx, child, depth-1, alpha, beta, false, plyFromRoot+1)
			if childScore > value {
				value = childScore
				best = m
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				s.emit(depth, plyFromRoot, maximizing, m, value, alpha, beta, BetaCutoff)
				break
			}
		}
		return value, best
	}

	value := posInf
	for _, m := range moves {
		child := b.Clone()
		child.ApplyMove(m)

		childScore, _ := s.search(ctx, child, depth-1, alpha, beta, true, plyFromRoot+1)
		if childScore < value {
			value = childScore
			best = m
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			s.emit(depth, plyFromRoot, maximizing, m, value, alpha, beta, AlphaCutoff)
			break
		}
	}
	return value, best
}

func (s *run) emit(depth, plyFromRoot int, maximizing bool, move board.Move, score, alpha, beta eval.Score, tag Tag) {
	if !s.traceEnabled {
		return
	}
	s.trace = append(s.trace, TraceEntry{
		Depth:       depth,
		PlyFromRoot: plyFromRoot,
		Maximizing:  maximizing,
		Move:        move,
		Score:       score,
		Alpha:       alpha,
		Beta:        beta,
		Tag:         tag,
	})
}
