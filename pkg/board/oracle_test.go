package board_test

import (
	"testing"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/stretchr/testify/assert"
)

func emptyBoard() *board.Board {
	b := board.NewBoard()
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		b.SetPiece(sq, board.NoPiece)
	}
	return b
}

func TestCanAttackPawn(t *testing.T) {
	b := emptyBoard()
	white := board.Piece{Kind: board.Pawn, Color: board.White}

	from := board.NewSquare(4, 3) // e4
	assert.True(t, board.CanAttack(b, from, board.NewSquare(3, 4), white))  // d5
	assert.True(t, board.CanAttack(b, from, board.NewSquare(5, 4), white))  // f5
	assert.False(t, board.CanAttack(b, from, board.NewSquare(4, 4), white)) // forward push is not an attack
}

func TestCanAttackKnightCorner(t *testing.T) {
	b := emptyBoard()
	white := board.Piece{Kind: board.Knight, Color: board.White}

	a1 := board.NewSquare(0, 0)
	assert.True(t, board.CanAttack(b, a1, board.NewSquare(1, 2), white))
	assert.True(t, board.CanAttack(b, a1, board.NewSquare(2, 1), white))
	assert.False(t, board.CanAttack(b, a1, board.NewSquare(2, 2), white))
}

func TestIsPathClearBlocked(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(board.NewSquare(3, 3), board.Piece{Kind: board.Pawn, Color: board.White})

	assert.False(t, board.IsPathClear(b, board.NewSquare(0, 0), board.NewSquare(7, 7)))
}

func TestIsPathClearAdjacentAndIdentical(t *testing.T) {
	b := emptyBoard()

	from := board.NewSquare(3, 3)
	to := board.NewSquare(4, 4)
	assert.True(t, board.IsPathClear(b, from, to))
	assert.True(t, board.IsPathClear(b, from, from))
}

func TestBishopDoesNotWrapAtFileEdge(t *testing.T) {
	b := emptyBoard()
	white := board.Piece{Kind: board.Bishop, Color: board.White}

	from := board.NewSquare(2, 2) // c3
	assert.True(t, board.CanAttack(b, from, board.NewSquare(0, 0), white))  // a1, on the diagonal
	assert.False(t, board.CanAttack(b, from, board.NewSquare(7, 4), white)) // h5: where index +7 steps c3-b4-a5 would wrap
}

func TestIsInCheck(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(board.NewSquare(4, 0), board.Piece{Kind: board.King, Color: board.White})
	b.SetPiece(board.NewSquare(4, 7), board.Piece{Kind: board.Rook, Color: board.Black})
	b.SyncKingSquares()

	assert.True(t, board.IsInCheck(b, board.White))
}
