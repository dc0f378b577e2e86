package board

import (
	"fmt"
	"strconv"

	"github.com/birostris/PadelRanking/internal/util"
	"github.com/birostris/PadelRanking/pkg/padelapi"
)

// ValidationError is a pre-submission rejection of form input. It
// never reaches the network, and matches util.ErrPublic so the front
// can show it verbatim.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

func (e ValidationError) Is(v error) bool {
	switch v.(type) {
	case ValidationError, util.ErrPublic:
		return true
	default:
		return false
	}
}

// The original form seeded its fields with these placeholder texts, a
// field left at its placeholder counts as empty.
var placeholders = map[string]struct{}{
	"FirstName":   {},
	"LastName":    {},
	"DisplayName": {},
}

// PlayerForm is the raw add-player form input.
type PlayerForm struct {
	FirstName, LastName, Nick string
}

func (f PlayerForm) validate() error {
	for _, v := range []string{f.FirstName, f.LastName, f.Nick} {
		if _, isPlaceholder := placeholders[v]; v == "" || isPlaceholder {
			return ValidationError("need to fill all three names")
		}
	}

	return nil
}

// GameForm is the raw add-game form input, fields exactly as typed.
type GameForm struct {
	Player1, Player2, Player3, Player4 string
	Score1, Score2                     string
}

// americanoThreshold is the score above which a game is scored as an
// americano by the service.
const americanoThreshold = 7

// parse turns the form into a submission or explains why it can't:
// every field must be numeric, the four players pairwise distinct,
// scores non-negative and not both zero.
func (f GameForm) parse() (padelapi.GameSubmission, error) {
	players := [4]int{}
	for i, v := range []string{f.Player1, f.Player2, f.Player3, f.Player4} {
		id, err := strconv.Atoi(v)
		if err != nil {
			return padelapi.GameSubmission{}, ValidationError(
				fmt.Sprintf("player %d is not a valid player id", i+1),
			)
		}
		players[i] = id
	}

	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			if players[i] == players[j] {
				return padelapi.GameSubmission{}, ValidationError("need to have 4 different players")
			}
		}
	}

	score1, err := strconv.Atoi(f.Score1)
	if err != nil {
		return padelapi.GameSubmission{}, ValidationError("score 1 is not a number")
	}
	score2, err := strconv.Atoi(f.Score2)
	if err != nil {
		return padelapi.GameSubmission{}, ValidationError("score 2 is not a number")
	}

	if score1 < 0 || score2 < 0 {
		return padelapi.GameSubmission{}, ValidationError("scores can't be negative")
	}
	if score1+score2 == 0 {
		return padelapi.GameSubmission{}, ValidationError("at least one score must be set")
	}

	var americano int
	if score1 > americanoThreshold || score2 > americanoThreshold {
		americano = 1
	}

	return padelapi.GameSubmission{
		Player1: players[0], Player2: players[1],
		Player3: players[2], Player4: players[3],
		Score1: score1, Score2: score2,
		Americano: americano,
	}, nil
}

// DeleteForm is the raw delete-game form input. The password is only
// checked for presence, authorization is the server's call.
type DeleteForm struct {
	GameID   string
	Password string
}

func (f DeleteForm) parse() (int, string, error) {
	id, err := strconv.Atoi(f.GameID)
	if err != nil {
		return 0, "", ValidationError("game id is not a number")
	}

	if f.Password == "" {
		return 0, "", ValidationError("a password is needed")
	}

	return id, f.Password, nil
}
