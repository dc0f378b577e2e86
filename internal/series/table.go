package series

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/birostris/PadelRanking/pkg/padelapi"
	"gopkg.in/guregu/null.v4"
)

// StandingsRow is one display row of the standings table.
type StandingsRow struct {
	Position int
	Name     string
	Record   string // wins-draws-losses
	Ranking  string // ranking score, 3 decimals
}

// StandingsRows zips rank assignment with each entry's name, record and
// formatted ranking score.
func StandingsRows(entries []padelapi.RankingEntry) []StandingsRow {
	ranked := AssignRanks(entries)
	ret := make([]StandingsRow, len(ranked))

	for i, r := range ranked {
		record := r.Entry.Record
		ret[i] = StandingsRow{
			Position: r.Position,
			Name:     r.Entry.Name,
			Record:   fmt.Sprintf("%d-%d-%d", record.Wins, record.Draws, record.Losses),
			Ranking:  strconv.FormatFloat(r.Entry.TrueSkill.Ranking, 'f', 3, 64),
		}
	}

	return ret
}

// recentGamesCount caps the recent-games table.
const recentGamesCount = 12

// GamesRow is one display row of the recent-games table.
type GamesRow struct {
	ID    int
	Date  string
	Team1 string // "p1,p2", or just "p1" for singles
	Team2 string
	Score string // "s1-s2"
}

// DateFormatter renders a game date for display, the web layer injects
// the locale-aware implementation.
type DateFormatter func(time.Time) string

// GamesRows formats the most recent games, most-recent-first. The
// snapshot is assumed chronologically ascending, as served.
func GamesRows(games []padelapi.Game, formatDate DateFormatter) []GamesRow {
	ret := make([]GamesRow, 0, recentGamesCount)

	for i := len(games) - 1; i >= 0 && i >= len(games)-recentGamesCount; i-- {
		g := games[i]
		ret = append(ret, GamesRow{
			ID:    g.ID,
			Date:  formatDate(g.Date),
			Team1: teamLabel(g.Player1, g.Player2),
			Team2: teamLabel(g.Player3, g.Player4),
			Score: fmt.Sprintf("%d-%d", g.Score1, g.Score2),
		})
	}

	return ret
}

func teamLabel(a string, b null.String) string {
	if !b.Valid {
		return a
	}

	return a + "," + b.String
}

// noSlot marks an option that seeds no selection widget.
const noSlot = -1

// PlayerOption is one entry of the player-selection widgets.
type PlayerOption struct {
	ID   int
	Nick string
	// Slot is the 0-based selection widget this option pre-selects,
	// one distinct player per widget in nick order, or noSlot (-1).
	Slot int
}

// PlayerOptions sorts players by nick and seeds the four game form
// slots with the first four distinct players.
func PlayerOptions(players []padelapi.Player) []PlayerOption {
	sorted := make([]padelapi.Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Nick < sorted[j].Nick })

	ret := make([]PlayerOption, len(sorted))
	for i, p := range sorted {
		slot := noSlot
		if i < 4 {
			slot = i
		}

		ret[i] = PlayerOption{ID: p.ID, Nick: p.Nick, Slot: slot}
	}

	return ret
}
