package entity

const (
	SymbolX = "X"
	SymbolO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// WinCombos - the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetermineWinner - returns the winning symbol, or EmptyCell if no line is complete.
func DetermineWinner(board [BoardSize]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsDraw - reports whether every cell is occupied.
func IsDraw(board [BoardSize]string) bool {
	for _, cell := range board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// OpponentOf - returns the other symbol.
func OpponentOf(symbol string) string {
	if symbol == SymbolX {
		return SymbolO
	}
	return SymbolX
}
