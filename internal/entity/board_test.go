package entity

import (
	"testing"

	"github.com/rocketscienceinc/bigisle/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Empty square board", func(t *testing.T) {
		board, err := NewBoard(4)
		require.NoError(t, err)

		assert.Equal(t, 4, board.Size())
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				assert.True(t, board.At(row, col).IsEmpty())
			}
		}
	})

	t.Run("Invalid size", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			_, err := NewBoard(size)
			assert.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		}
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a textual layout
		board, err := ParseBoard(
			"RR.",
			".B ",
			"b.r",
		)
		require.NoError(t, err)

		// Then: marks map to owners and String normalises them
		assert.True(t, board.At(0, 0).IsOwnedBy(PlayerRed))
		assert.True(t, board.At(1, 1).IsOwnedBy(PlayerBlack))
		assert.True(t, board.At(1, 2).IsEmpty())
		assert.Equal(t, 3, board.Count(PlayerRed))
		assert.Equal(t, 2, board.Count(PlayerBlack))
		assert.Equal(t, "RR.\n.B.\nB.R\n", board.String())
	})

	t.Run("Ragged rows", func(t *testing.T) {
		_, err := ParseBoard("R.", "R")
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("Unknown mark", func(t *testing.T) {
		_, err := ParseBoard("RX", "..")
		assert.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("No rows", func(t *testing.T) {
		_, err := ParseBoard()
		assert.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
	})
}

func TestBoard_At(t *testing.T) {
	board, err := ParseBoard("RB", "BR")
	require.NoError(t, err)

	// Then: outside coordinates read as empty
	assert.False(t, board.Contains(-1, 0))
	assert.False(t, board.Contains(0, 2))
	assert.True(t, board.At(-1, 0).IsEmpty())
	assert.True(t, board.At(2, 2).IsEmpty())
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board, err := ParseBoard("R.", "..")
	require.NoError(t, err)
	clone := board.Clone()

	// When: the original changes
	board.set(1, 1, OwnedBy(PlayerBlack))

	// Then: the clone keeps the old contents
	assert.True(t, clone.At(1, 1).IsEmpty())
	assert.True(t, clone.At(0, 0).IsOwnedBy(PlayerRed))
}

func TestCell(t *testing.T) {
	t.Run("Zero value is empty", func(t *testing.T) {
		var cell Cell
		assert.True(t, cell.IsEmpty())
		assert.Equal(t, Empty, cell)

		_, ok := cell.Owner()
		assert.False(t, ok)
		assert.Equal(t, ".", cell.String())
	})

	t.Run("Owned", func(t *testing.T) {
		cell := OwnedBy(PlayerBlack)

		owner, ok := cell.Owner()
		require.True(t, ok)
		assert.Equal(t, PlayerBlack, owner)
		assert.True(t, cell.IsOwnedBy(PlayerBlack))
		assert.False(t, cell.IsOwnedBy(PlayerRed))
		assert.Equal(t, "B", cell.String())
	})

	t.Run("Invalid owner collapses to empty", func(t *testing.T) {
		assert.Equal(t, Empty, OwnedBy(Player(0)))
		assert.Equal(t, Empty, OwnedBy(Player(9)))
	})
}
