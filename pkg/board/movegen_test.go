package board_test

import (
	"testing"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPositionHas20LegalMoves(t *testing.T) {
	b := board.NewBoard()
	moves := board.GenerateLegalMoves(b)
	assert.Len(t, moves, 20)
	assert.True(t, board.HasLegalMove(b))
}

func TestLegalMoveEnumerationIsStable(t *testing.T) {
	b := board.NewBoard()
	first := board.GenerateLegalMoves(b)
	second := board.GenerateLegalMoves(b)
	assert.Equal(t, first, second)
}

func TestPawnOnStartingRankTwoPushes(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(board.NewSquare(4, 0), board.Piece{Kind: board.King, Color: board.White})
	b.SetPiece(board.NewSquare(4, 7), board.Piece{Kind: board.King, Color: board.Black})
	b.SetPiece(board.NewSquare(4, 1), board.Piece{Kind: board.Pawn, Color: board.White})
	b.SyncKingSquares()

	moves := board.GenerateLegalMoves(b)

	var pawnMoves []board.Move
	for _, m := range moves {
		if m.From == board.NewSquare(4, 1) {
			pawnMoves = append(pawnMoves, m)
		}
	}
	assert.Len(t, pawnMoves, 2)
}

func TestPawnBlockedEmitsNoPushes(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(board.NewSquare(4, 0), board.Piece{Kind: board.King, Color: board.White})
	b.SetPiece(board.NewSquare(4, 7), board.Piece{Kind: board.King, Color: board.Black})
	b.SetPiece(board.NewSquare(4, 1), board.Piece{Kind: board.Pawn, Color: board.White})
	b.SetPiece(board.NewSquare(4, 2), board.Piece{Kind: board.Pawn, Color: board.Black})
	b.SyncKingSquares()

	moves := board.GenerateLegalMoves(b)
	for _, m := range moves {
		assert.NotEqual(t, board.NewSquare(4, 1), m.From, "pawn should have no legal move")
	}
}

func TestKnightOnCornerEmitsExactlyTwoPseudoLegalMoves(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(board.NewSquare(4, 4), board.Piece{Kind: board.King, Color: board.White})
	b.SetPiece(board.NewSquare(4, 7), board.Piece{Kind: board.King, Color: board.Black})
	b.SetPiece(board.NewSquare(0, 0), board.Piece{Kind: board.Knight, Color: board.White})
	b.SyncKingSquares()

	moves := board.GenerateLegalMoves(b)

	var knightMoves []board.Move
	for _, m := range moves {
		if m.From == board.NewSquare(0, 0) {
			knightMoves = append(knightMoves, m)
		}
	}
	assert.Len(t, knightMoves, 2)
}

func TestOrderCapturesFirst(t *testing.T) {
	moves := []board.Move{
		{From: 1, To: 2},
		{From: 3, To: 4, IsCapture: true},
		{From: 5, To: 6},
		{From: 7, To: 8, IsCapture: true},
	}

	ordered := board.OrderCapturesFirst(moves)
	require.Len(t, ordered, 4)
	assert.True(t, ordered[0].IsCapture)
	assert.True(t, ordered[1].IsCapture)
	assert.False(t, ordered[2].IsCapture)
	assert.False(t, ordered[3].IsCapture)

	// Original slice order is untouched.
	assert.False(t, moves[0].IsCapture)
}

func TestApplyingLegalMoveLeavesMoverNotInCheck(t *testing.T) {
	b := board.NewBoard()
	for _, m := range board.GenerateLegalMoves(b) {
		clone := b.Clone()
		clone.ApplyMove(m)
		assert.False(t, board.IsInCheck(clone, board.White))
	}
}
