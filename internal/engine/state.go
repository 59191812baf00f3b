package engine

import "github.com/7rof/huroof/internal/models"

// TileResult is the outcome of one tile mutation. When Applied is false the
// input was rejected (border cell or bad value) and State/NextTeam echo the
// inputs unchanged.
type TileResult struct {
	State    models.GameState
	NextTeam models.Team
	Winner   *models.Team
	Applied  bool
}

// NewGameState returns the state of a fresh room: empty board, fresh letters,
// zero scores, no connection latches.
func NewGameState() models.GameState {
	return models.GameState{
		Board:   NewEmptyBoard(BoardRows, BoardCols),
		Letters: NewLetterGrid(BoardRows, BoardCols),
	}
}

// ApplyTile writes value into an interior cell and recomputes everything the
// mutation can affect: connection latches, scores, the winner, and whose turn
// is next. Scoring is edge-triggered on the latches, so a team is credited
// exactly once per distinct connection episode. The turn flips on every
// applied mutation whether or not a winner was produced.
//
// The evaluation is stateless over the whole board; rejecting mutations after
// a winner is recorded is the caller's job.
func ApplyTile(state models.GameState, currentTeam models.Team, row, col int, value string) TileResult {
	rejected := TileResult{State: state, NextTeam: currentTeam}

	rows, cols := len(state.Board), len(state.Board[0])
	if !IsInteriorCell(row, col, rows, cols) {
		return rejected
	}
	if value != models.CellEmpty && value != models.CellGreen && value != models.CellRed {
		return rejected
	}

	board := cloneBoard(state.Board)
	board[row][col] = value

	next := state
	next.Board = board

	if HasPath(board, models.TeamGreen) {
		if !state.GreenConnections {
			next.GreenScore++
		}
		next.GreenConnections = true
	} else {
		next.GreenConnections = false
	}

	if HasPath(board, models.TeamRed) {
		if !state.RedConnections {
			next.RedScore++
		}
		next.RedConnections = true
	} else {
		next.RedConnections = false
	}

	return TileResult{
		State:    next,
		NextTeam: currentTeam.Opponent(),
		Winner:   CheckWin(board),
		Applied:  true,
	}
}

// RoundReset clears the board and latches and deals new letters. Scores are
// preserved; the caller keeps the current team and clears the winner.
func RoundReset(state models.GameState) models.GameState {
	return models.GameState{
		Board:      NewEmptyBoard(BoardRows, BoardCols),
		Letters:    NewLetterGrid(BoardRows, BoardCols),
		GreenScore: state.GreenScore,
		RedScore:   state.RedScore,
	}
}

// FullReset starts the room over: everything RoundReset does plus zeroed
// scores. The caller forces the turn back to green and re-arms the buzzer.
func FullReset() models.GameState {
	return NewGameState()
}
