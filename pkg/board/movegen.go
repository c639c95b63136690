package board

import "sort"

// knightOffsets are the eight knight deltas, indexed as target-from.
var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}

// bishopDirections and rookDirections are the sliding-piece ray deltas.
var bishopDirections = [4]int{-9, -7, 7, 9}
var rookDirections = [4]int{-8, -1, 1, 8}

// kingOffsets are the eight king unit deltas.
var kingOffsets = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}

// GenerateLegalMoves returns every move for the side to move that does not
// leave its own king in check. It generates pseudo-legal candidates per
// piece-kind geometry, then filters by cloning the board, applying each
// candidate structurally, and rejecting it if the mover's king is then in
// check. Legality checking clones the board fresh per candidate: O(moves x
// 64) per call, and accepted as such.
func GenerateLegalMoves(b *Board) []Move {
	turn := b.CurrentPlayer()

	var legal []Move
	for from := ZeroSquare; from < NumSquares; from++ {
		p := b.GetPiece(from)
		if p.IsEmpty() || p.Color != turn {
			continue
		}

		for _, m := range pseudoLegalMoves(b, from, p) {
			clone := b.Clone()
			clone.ApplyMove(m)
			if !IsInCheck(clone, turn) {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without materializing the full move list.
func HasLegalMove(b *Board) bool {
	turn := b.CurrentPlayer()

	for from := ZeroSquare; from < NumSquares; from++ {
		p := b.GetPiece(from)
		if p.IsEmpty() || p.Color != turn {
			continue
		}

		for _, m := range pseudoLegalMoves(b, from, p) {
			clone := b.Clone()
			clone.ApplyMove(m)
			if !IsInCheck(clone, turn) {
				return true
			}
		}
	}
	return false
}

// OrderCapturesFirst returns a copy of moves stably sorted with captures
// before quiet moves. Used by search for move ordering; does not mutate the
// input slice, to keep generator output reusable.
func OrderCapturesFirst(moves []Move) []Move {
	ordered := append([]Move(nil), moves...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].IsCapture && !ordered[j].IsCapture
	})
	return ordered
}

func pseudoLegalMoves(b *Board, from Square, p Piece) []Move {
	switch p.Kind {
	case Pawn:
		return pawnMoves(b, from, p)
	case Knight:
		return knightMoves(b, from, p)
	case Bishop:
		return slideMoves(b, from, p, bishopDirections[:])
	case Rook:
		return slideMoves(b, from, p, rookDirections[:])
	case Queen:
		moves := slideMoves(b, from, p, bishopDirections[:])
		return append(moves, slideMoves(b, from, p, rookDirections[:])...)
	case King:
		return kingMoves(b, from, p)
	default:
		return nil
	}
}

// pawnMoves: forward push to from+8*dir if empty; a further jump to
// from+16*dir when both the single push square and the starting rank are
// satisfied; diagonal captures to from+-1+8*dir when the target is enemy
// occupied. Promotion is not encoded: a pawn reaching its last rank is
// simply translated, remaining a pawn. The en passant target is not
// consulted.
func pawnMoves(b *Board, from Square, p Piece) []Move {
	dir := 1
	startRank := 1
	if p.Color == Black {
		dir = -1
		startRank = 6
	}

	var moves []Move

	oneStep := from + Square(8*dir)
	if oneStep.IsValid() && b.GetPiece(oneStep).IsEmpty() {
		moves = append(moves, Move{From: from, To: oneStep})

		if from.Rank() == startRank {
			twoStep := from + Square(16*dir)
			if twoStep.IsValid() && b.GetPiece(twoStep).IsEmpty() {
				moves = append(moves, Move{From: from, To: twoStep})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		file := from.File() + df
		if file < 0 || file > 7 {
			continue
		}
		to := from + Square(df+8*dir)
		if !to.IsValid() {
			continue
		}
		target := b.GetPiece(to)
		if !target.IsEmpty() && target.Color != p.Color {
			moves = append(moves, Move{From: from, To: to, IsCapture: true})
		}
	}

	return moves
}

// knightMoves rejects offsets that leave the board or wrap around a rank
// edge (guarded by the file-delta bound, since an 8-wide board makes a
// >2-file jump impossible for a legitimate knight move).
func knightMoves(b *Board, from Square, p Piece) []Move {
	var moves []Move
	for _, d := range knightOffsets {
		to := from + Square(d)
		if !to.IsValid() || abs(to.File()-from.File()) > 2 {
			continue
		}
		if m, ok := stepMove(b, from, to, p); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// kingMoves rejects offsets that leave the board or wrap around a rank edge.
// Castling is not generated.
func kingMoves(b *Board, from Square, p Piece) []Move {
	var moves []Move
	for _, d := range kingOffsets {
		to := from + Square(d)
		if !to.IsValid() || abs(to.File()-from.File()) > 1 {
			continue
		}
		if m, ok := stepMove(b, from, to, p); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// stepMove builds the move for a single-step (knight/king) target: an empty
// square or enemy piece is a candidate, an own piece is not.
func stepMove(b *Board, from, to Square, p Piece) (Move, bool) {
	target := b.GetPiece(to)
	if target.IsEmpty() {
		return Move{From: from, To: to}, true
	}
	if target.Color != p.Color {
		return Move{From: from, To: to, IsCapture: true}, true
	}
	return Move{}, false
}

// slideMoves extends each ray square by square, capturing then stopping on
// an enemy piece, stopping (without capture) on an own piece, and stopping
// at the board edge. For the +-1, +-7 and +-9 rays each step must move
// exactly one file, which prevents horizontal wraparound; the +-8 rays stop
// at the board's index bounds.
func slideMoves(b *Board, from Square, p Piece, directions []int) []Move {
	var moves []Move
	for _, dir := range directions {
		cur := from
		for {
			next := cur + Square(dir)
			if !next.IsValid() {
				break
			}
			if abs(dir) == 1 || abs(dir) == 9 || abs(dir) == 7 {
				if abs(next.File()-cur.File()) != 1 {
					break // would wrap across a rank boundary
				}
			}

			target := b.GetPiece(next)
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: next})
				cur = next
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, Move{From: from, To: next, IsCapture: true})
			}
			break
		}
	}
	return moves
}

