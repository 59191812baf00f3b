package engine

// Standard board dimensions. The outer ring is the semantic border (top and
// bottom rows belong to green, left and right columns to red); only the
// interior cells are ever written by gameplay.
const (
	BoardRows = 7
	BoardCols = 7
)

// IsInteriorCell reports whether (row, col) lies strictly inside the border
// ring of a rows x cols grid.
func IsInteriorCell(row, col, rows, cols int) bool {
	return row > 0 && row < rows-1 && col > 0 && col < cols-1
}

// NewEmptyBoard returns a rows x cols matrix of uncolored cells.
func NewEmptyBoard(rows, cols int) [][]string {
	board := make([][]string, rows)
	for i := range board {
		board[i] = make([]string, cols)
	}
	return board
}

func cloneBoard(board [][]string) [][]string {
	cp := make([][]string, len(board))
	for i, row := range board {
		cp[i] = make([]string, len(row))
		copy(cp[i], row)
	}
	return cp
}
