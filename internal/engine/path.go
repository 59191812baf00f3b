package engine

import "github.com/7rof/huroof/internal/models"

// Adjacency includes the four diagonals.
var directions = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

func floodFill(board [][]string, row, col int, color string, visited [][]bool) {
	rows, cols := len(board), len(board[0])
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return
	}
	if board[row][col] != color || visited[row][col] {
		return
	}
	visited[row][col] = true
	for _, d := range directions {
		floodFill(board, row+d[0], col+d[1], color, visited)
	}
}

// HasPath reports whether team has bridged its two borders: green connects the
// top interior row to the bottom one, red connects the left interior column to
// the right one, through same-colored cells with 8-directional adjacency.
func HasPath(board [][]string, team models.Team) bool {
	rows, cols := len(board), len(board[0])
	visited := make([][]bool, rows)
	for i := range visited {
		visited[i] = make([]bool, cols)
	}
	color := string(team)

	if team == models.TeamGreen {
		for col := 1; col < cols-1; col++ {
			if board[1][col] == color {
				floodFill(board, 1, col, color, visited)
			}
		}
		for col := 1; col < cols-1; col++ {
			if board[rows-2][col] == color && visited[rows-2][col] {
				return true
			}
		}
		return false
	}

	for row := 1; row < rows-1; row++ {
		if board[row][1] == color {
			floodFill(board, row, 1, color, visited)
		}
	}
	for row := 1; row < rows-1; row++ {
		if board[row][cols-2] == color && visited[row][cols-2] {
			return true
		}
	}
	return false
}

// sweepWinner checks the immediate line wins: a full interior column of green
// or a full interior row of red.
func sweepWinner(board [][]string) *models.Team {
	rows, cols := len(board), len(board[0])

	for col := 1; col < cols-1; col++ {
		full := true
		for row := 1; row < rows-1; row++ {
			if board[row][col] != models.CellGreen {
				full = false
				break
			}
		}
		if full {
			return teamPtr(models.TeamGreen)
		}
	}

	for row := 1; row < rows-1; row++ {
		full := true
		for col := 1; col < cols-1; col++ {
			if board[row][col] != models.CellRed {
				full = false
				break
			}
		}
		if full {
			return teamPtr(models.TeamRed)
		}
	}

	return nil
}

// CheckWin evaluates the win predicates in their fixed order: sweep lines
// first, then the green path, then the red path. The first match wins; nil
// means the game continues.
func CheckWin(board [][]string) *models.Team {
	if winner := sweepWinner(board); winner != nil {
		return winner
	}
	if HasPath(board, models.TeamGreen) {
		return teamPtr(models.TeamGreen)
	}
	if HasPath(board, models.TeamRed) {
		return teamPtr(models.TeamRed)
	}
	return nil
}

func teamPtr(t models.Team) *models.Team {
	return &t
}
