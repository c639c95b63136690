package board_test

import (
	"testing"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSquareRoundTrip(t *testing.T) {
	tests := []struct {
		file, rank rune
		sq         board.Square
	}{
		{'a', '1', board.NewSquare(0, 0)},
		{'h', '1', board.NewSquare(7, 0)},
		{'a', '8', board.NewSquare(0, 7)},
		{'h', '8', board.NewSquare(7, 7)},
		{'e', '4', board.NewSquare(4, 3)},
	}

	for _, tt := range tests {
		sq, ok := board.ParseSquare(tt.file, tt.rank)
		assert.True(t, ok)
		assert.Equal(t, tt.sq, sq)
		assert.Equal(t, string(tt.file)+string(tt.rank), sq.String())
	}
}

func TestSquareInvalid(t *testing.T) {
	_, ok := board.ParseSquare('i', '1')
	assert.False(t, ok)

	_, ok = board.ParseSquare('a', '9')
	assert.False(t, ok)

	assert.False(t, board.NoSquare.IsValid())
	assert.Equal(t, "-", board.NoSquare.String())
}

func TestSquareFileRank(t *testing.T) {
	sq := board.NewSquare(3, 5)
	assert.Equal(t, 3, sq.File())
	assert.Equal(t, 5, sq.Rank())
}
