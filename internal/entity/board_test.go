package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineWinner(t *testing.T) {
	t.Run("Returns X for a completed row", func(t *testing.T) {
		// Given: a board where X holds the top row
		board := [BoardSize]string{
			SymbolX, SymbolX, SymbolX,
			SymbolO, SymbolO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: determining the winner
		winner := DetermineWinner(board)

		// Then: X wins
		assert.Equal(t, SymbolX, winner)
	})

	t.Run("Returns O for a completed column", func(t *testing.T) {
		// Given: a board where O holds the first column
		board := [BoardSize]string{
			SymbolO, SymbolX, SymbolX,
			SymbolO, SymbolX, EmptyCell,
			SymbolO, EmptyCell, EmptyCell,
		}

		// When: determining the winner
		winner := DetermineWinner(board)

		// Then: O wins
		assert.Equal(t, SymbolO, winner)
	})

	t.Run("Returns X for a completed diagonal", func(t *testing.T) {
		// Given: a board where X holds the main diagonal
		board := [BoardSize]string{
			SymbolX, SymbolO, SymbolO,
			EmptyCell, SymbolX, EmptyCell,
			EmptyCell, EmptyCell, SymbolX,
		}

		// When: determining the winner
		winner := DetermineWinner(board)

		// Then: X wins
		assert.Equal(t, SymbolX, winner)
	})

	t.Run("Returns EmptyCell when no line is complete", func(t *testing.T) {
		// Given: a board with no winning line
		board := [BoardSize]string{
			SymbolX, SymbolO, EmptyCell,
			EmptyCell, SymbolX, EmptyCell,
			EmptyCell, EmptyCell, SymbolO,
		}

		// When: determining the winner
		winner := DetermineWinner(board)

		// Then: there is no winner
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Returns EmptyCell for an empty board", func(t *testing.T) {
		// Given: an untouched board
		board := [BoardSize]string{}

		// When: determining the winner
		winner := DetermineWinner(board)

		// Then: there is no winner
		assert.Equal(t, EmptyCell, winner)
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Returns true when every cell is occupied", func(t *testing.T) {
		// Given: a full board without a winner
		board := [BoardSize]string{
			SymbolX, SymbolO, SymbolX,
			SymbolO, SymbolX, SymbolO,
			SymbolO, SymbolX, SymbolO,
		}

		// When: checking for a draw
		draw := IsDraw(board)

		// Then: the board is a draw
		assert.True(t, draw)
	})

	t.Run("Returns false while any cell is empty", func(t *testing.T) {
		// Given: a board with one free cell
		board := [BoardSize]string{
			SymbolX, SymbolO, SymbolX,
			SymbolO, SymbolX, SymbolO,
			SymbolO, SymbolX, EmptyCell,
		}

		// When: checking for a draw
		draw := IsDraw(board)

		// Then: the game can continue
		assert.False(t, draw)
	})
}

func TestOpponentOf(t *testing.T) {
	assert.Equal(t, SymbolO, OpponentOf(SymbolX))
	assert.Equal(t, SymbolX, OpponentOf(SymbolO))
}
