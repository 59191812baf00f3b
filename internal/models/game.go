package models

// Team identifies one of the two sides of a room.
type Team string

const (
	TeamGreen Team = "green"
	TeamRed   Team = "red"
)

// Valid reports whether t is one of the two playable teams.
func (t Team) Valid() bool {
	return t == TeamGreen || t == TeamRed
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamGreen {
		return TeamRed
	}
	return TeamGreen
}

// Board cell values. A cell is either uncolored or carries a team color.
const (
	CellEmpty = ""
	CellGreen = string(TeamGreen)
	CellRed   = string(TeamRed)
)

// GameState is the JSON document stored in the games.current_state column.
// Field names inside the document are camelCase; that is the shape every
// client reads and writes back wholesale.
type GameState struct {
	Board            [][]string `json:"board"`
	GreenScore       int        `json:"greenScore"`
	RedScore         int        `json:"redScore"`
	Letters          [][]string `json:"letters,omitempty"`
	GreenConnections bool       `json:"greenConnections"`
	RedConnections   bool       `json:"redConnections"`
}

// Game is the authoritative record for one room. Winner stays nil while the
// game is in progress and is terminal once set.
type Game struct {
	ID            string    `json:"id"`
	GreenTeamName string    `json:"green_team_name"`
	RedTeamName   string    `json:"red_team_name"`
	CurrentState  GameState `json:"current_state"`
	CurrentTeam   Team      `json:"current_team"`
	Winner        *Team     `json:"winner"`
}
