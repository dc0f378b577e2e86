package padelapi

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// Player is a registered competitor. Nick is the display identity used
// everywhere a player is shown or selected.
type Player struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Nick      string `json:"nick"`
}

// TrueSkill is a skill belief: a mean and an uncertainty, plus the
// scalar ranking score the service derives from them. The client never
// computes any of this, it only reads a fresh copy per fetch.
type TrueSkill struct {
	Mu      float64 `json:"mu"`
	Sigma   float64 `json:"sigma"`
	Ranking float64 `json:"ranking"`
}

type Record struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// ProgressPoint is an (x, score) pair, x being the game id at which the
// score applied.
type ProgressPoint [2]float64

// RankingEntry is one row of the rankings snapshot. The service sends
// entries already sorted by ranking, descending.
type RankingEntry struct {
	Name      string          `json:"Name"`
	TrueSkill TrueSkill       `json:"TrueSkill"`
	Record    Record          `json:"Record"`
	Progress  []ProgressPoint `json:"Progress"`
}

// Game is a played game. Player fields carry nicks; Player2 and Player4
// are null for singles games.
type Game struct {
	ID       int         `json:"id"`
	Date     time.Time   `json:"date"`
	Player1  string      `json:"player1"`
	Player2  null.String `json:"player2"`
	Player3  string      `json:"player3"`
	Player4  null.String `json:"player4"`
	Score1   int         `json:"score1"`
	Score2   int         `json:"score2"`
	GameType int         `json:"gametype"` // 1 when scored as americano
}

// GameSubmission is the add_game request body. Americano is derived at
// submission time and never stored client-side.
type GameSubmission struct {
	Player1   int `json:"player1"`
	Player2   int `json:"player2"`
	Player3   int `json:"player3"`
	Player4   int `json:"player4"`
	Score1    int `json:"score1"`
	Score2    int `json:"score2"`
	Americano int `json:"americano"`
}
