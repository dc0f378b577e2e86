package series

import (
	"fmt"
	"testing"
	"time"

	"github.com/birostris/PadelRanking/pkg/padelapi"
	"gopkg.in/guregu/null.v4"
)

func TestStandingsRows(t *testing.T) {
	entries := []padelapi.RankingEntry{
		{
			Name:      "alice",
			TrueSkill: padelapi.TrueSkill{Ranking: 24.51239},
			Record:    padelapi.Record{Wins: 10, Draws: 2, Losses: 3},
		},
		{
			Name:      "bob",
			TrueSkill: padelapi.TrueSkill{Ranking: 24.51239},
			Record:    padelapi.Record{Wins: 5, Draws: 0, Losses: 8},
		},
		{
			Name:      "carol",
			TrueSkill: padelapi.TrueSkill{Ranking: 20.1},
		},
	}

	rows := StandingsRows(entries)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	expected := []StandingsRow{
		{1, "alice", "10-2-3", "24.512"},
		{1, "bob", "5-0-8", "24.512"},
		{3, "carol", "0-0-0", "20.100"},
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, expected[i], rows[i])
		}
	}
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func TestGamesRows(t *testing.T) {
	games := make([]padelapi.Game, 15)
	for i := range games {
		games[i] = padelapi.Game{
			ID:      i + 1,
			Date:    time.Date(2023, 6, 1+i, 18, 0, 0, 0, time.UTC),
			Player1: "a", Player2: null.StringFrom("b"),
			Player3: "c", Player4: null.StringFrom("d"),
			Score1: 6, Score2: i,
		}
	}

	rows := GamesRows(games, isoDate)
	if len(rows) != 12 {
		t.Fatalf("expected exactly 12 rows, got %d", len(rows))
	}

	// Most recent first: ids 15 down to 4.
	for i, row := range rows {
		expectedID := 15 - i
		if row.ID != expectedID {
			t.Errorf("row %d: expected game id %d, got %d", i, expectedID, row.ID)
		}
		if expectedScore := fmt.Sprintf("6-%d", expectedID-1); row.Score != expectedScore {
			t.Errorf("row %d: expected score %q, got %q", i, expectedScore, row.Score)
		}
	}

	if rows[0].Date != "2023-06-15" {
		t.Errorf("expected formatted date 2023-06-15, got %q", rows[0].Date)
	}
	if rows[0].Team1 != "a,b" || rows[0].Team2 != "c,d" {
		t.Errorf("unexpected team labels: %q, %q", rows[0].Team1, rows[0].Team2)
	}
}

func TestGamesRows_Short(t *testing.T) {
	games := []padelapi.Game{
		{ID: 1, Player1: "a", Player3: "b", Score1: 6, Score2: 2},
		{ID: 2, Player1: "b", Player3: "a", Score1: 1, Score2: 6},
	}

	rows := GamesRows(games, isoDate)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != 2 || rows[1].ID != 1 {
		t.Errorf("expected ids [2 1], got [%d %d]", rows[0].ID, rows[1].ID)
	}

	// Singles: no dangling comma for the missing partner.
	if rows[0].Team1 != "b" || rows[0].Team2 != "a" {
		t.Errorf("unexpected singles team labels: %q, %q", rows[0].Team1, rows[0].Team2)
	}
}

func TestPlayerOptions(t *testing.T) {
	players := []padelapi.Player{
		{ID: 3, Nick: "zoe"},
		{ID: 1, Nick: "ara"},
		{ID: 8, Nick: "mel"},
		{ID: 2, Nick: "bob"},
		{ID: 5, Nick: "kim"},
	}

	options := PlayerOptions(players)
	if len(options) != 5 {
		t.Fatalf("expected 5 options, got %d", len(options))
	}

	expected := []PlayerOption{
		{1, "ara", 0},
		{2, "bob", 1},
		{5, "kim", 2},
		{8, "mel", 3},
		{3, "zoe", -1},
	}
	for i := range expected {
		if options[i] != expected[i] {
			t.Errorf("option %d: expected %+v, got %+v", i, expected[i], options[i])
		}
	}

	// Input order must be left alone.
	if players[0].Nick != "zoe" {
		t.Error("PlayerOptions reordered its input")
	}
}
