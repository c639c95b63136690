package board

// CanAttack reports whether a piece of kind/color equal to piece, if placed
// on from, threatens to, using pure piece-kind geometry (board occupancy is
// only consulted for sliding-piece path clearance).
func CanAttack(b *Board, from, to Square, piece Piece) bool {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	absDf, absDr := abs(df), abs(dr)

	switch piece.Kind {
	case Pawn:
		dir := 1
		if piece.Color == Black {
			dir = -1
		}
		return absDf == 1 && dr == dir

	case Knight:
		return (absDf == 1 && absDr == 2) || (absDf == 2 && absDr == 1)

	case Bishop:
		return absDf == absDr && absDf > 0 && IsPathClear(b, from, to)

	case Rook:
		return (df == 0 || dr == 0) && (absDf+absDr > 0) && IsPathClear(b, from, to)

	case Queen:
		return ((absDf == absDr && absDf > 0) || ((df == 0 || dr == 0) && absDf+absDr > 0)) && IsPathClear(b, from, to)

	case King:
		return maxInt(absDf, absDr) <= 1 && absDf+absDr > 0

	default:
		return false
	}
}

// IsPathClear walks one step at a time from from toward to along the signed
// unit vector between them, inclusive of from, exclusive of to, returning
// false on the first occupied intermediate square. A from==to call walks no
// intermediate squares and returns true.
func IsPathClear(b *Board, from, to Square) bool {
	stepFile := sign(to.File() - from.File())
	stepRank := sign(to.Rank() - from.Rank())
	step := Square(stepRank*8 + stepFile)

	for cur := from; cur != to; cur += step {
		if cur != from && !b.GetPiece(cur).IsEmpty() {
			return false
		}
	}
	return true
}

// IsSquareAttacked reports whether any piece of byColor attacks sq.
func IsSquareAttacked(b *Board, sq Square, byColor Color) bool {
	for from := ZeroSquare; from < NumSquares; from++ {
		p := b.GetPiece(from)
		if p.IsEmpty() || p.Color != byColor {
			continue
		}
		if CanAttack(b, from, sq, p) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether color's king is attacked by the opposing color.
func IsInCheck(b *Board, color Color) bool {
	return IsSquareAttacked(b, b.KingSquare(color), color.Opponent())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
