package board_test

import (
	"testing"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardInitialPosition(t *testing.T) {
	b := board.NewBoard()

	assert.Equal(t, board.White, b.CurrentPlayer())
	assert.Equal(t, board.NoSquare, b.EnPassant())
	assert.Equal(t, 0, b.HalfmoveClock())
	assert.Equal(t, 1, b.FullmoveNumber())
	for i := 0; i < 4; i++ {
		assert.True(t, b.CastlingRight(i))
	}

	backRank := []board.Kind{board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Bishop, board.Knight, board.Rook}
	for file, k := range backRank {
		white := b.GetPiece(board.NewSquare(file, 0))
		assert.Equal(t, k, white.Kind)
		assert.Equal(t, board.White, white.Color)

		black := b.GetPiece(board.NewSquare(file, 7))
		assert.Equal(t, k, black.Kind)
		assert.Equal(t, board.Black, black.Color)
	}
	for file := 0; file < 8; file++ {
		assert.Equal(t, board.Pawn, b.GetPiece(board.NewSquare(file, 1)).Kind)
		assert.Equal(t, board.Pawn, b.GetPiece(board.NewSquare(file, 6)).Kind)
	}

	assert.Equal(t, board.NewSquare(4, 0), b.KingSquare(board.White))
	assert.Equal(t, board.NewSquare(4, 7), b.KingSquare(board.Black))
}

func TestGetSetPieceOutOfRange(t *testing.T) {
	b := board.NewBoard()

	assert.True(t, b.GetPiece(board.Square(64)).IsEmpty())
	assert.True(t, b.GetPiece(board.Square(-1)).IsEmpty())

	b.SetPiece(board.Square(100), board.Piece{Kind: board.Queen, Color: board.White})
	assert.True(t, b.GetPiece(board.Square(100)).IsEmpty())
}

func TestApplyMoveStructuralOnly(t *testing.T) {
	b := board.NewBoard()

	e2 := board.NewSquare(4, 1)
	e4 := board.NewSquare(4, 3)

	b.ApplyMove(board.Move{From: e2, To: e4})

	assert.True(t, b.GetPiece(e2).IsEmpty())
	assert.Equal(t, board.Pawn, b.GetPiece(e4).Kind)
	assert.Equal(t, board.Black, b.CurrentPlayer())
	require.Len(t, b.History(), 1)
	assert.Equal(t, "e2e4", b.History()[0])

	// Castling rights, en passant target, and clocks are never touched.
	for i := 0; i < 4; i++ {
		assert.True(t, b.CastlingRight(i))
	}
	assert.Equal(t, board.NoSquare, b.EnPassant())
	assert.Equal(t, 0, b.HalfmoveClock())
}

func TestApplyMoveUpdatesKingSquareOnKingMove(t *testing.T) {
	b := board.NewBoard()
	b.SetPiece(board.NewSquare(4, 1), board.NoPiece) // clear e2 so the king has a path

	e1 := board.NewSquare(4, 0)
	e2 := board.NewSquare(4, 1)
	b.ApplyMove(board.Move{From: e1, To: e2})

	assert.Equal(t, e2, b.KingSquare(board.White))
}

func TestCloneIsIndependent(t *testing.T) {
	b := board.NewBoard()
	clone := b.Clone()

	e2 := board.NewSquare(4, 1)
	e4 := board.NewSquare(4, 3)
	clone.ApplyMove(board.Move{From: e2, To: e4})

	assert.True(t, b.GetPiece(e2).Kind == board.Pawn)
	assert.True(t, b.GetPiece(e4).IsEmpty())
	assert.Equal(t, board.White, b.CurrentPlayer())
}
