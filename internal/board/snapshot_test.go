package board // nolint:testpackage

import (
	"context"
	"testing"

	"github.com/birostris/PadelRanking/pkg/padelapi"
	_ "github.com/mattn/go-sqlite3"
)

func newCachedBoard(t *testing.T) *Board {
	t.Helper()

	b, err := New(nil, ":memory:")
	if err != nil {
		t.Fatal(err)
	}

	// An in-memory DB exists per connection, keep a single one.
	b.db.SetMaxOpenConns(1)

	if _, err := b.db.Exec(`CREATE TABLE "Snapshot" (
		"ID" blob NOT NULL PRIMARY KEY,
		"Kind" text NOT NULL,
		"FetchedAt" integer NOT NULL,
		"Payload" blob NOT NULL
	)`); err != nil {
		t.Fatal(err)
	}

	return b
}

func TestRestoreFromCache(t *testing.T) {
	b := newCachedBoard(t)
	ctx := context.Background()

	players := []padelapi.Player{
		{ID: 1, FirstName: "Nadia", LastName: "Svensson", Nick: "nadia"},
		{ID: 2, FirstName: "Erik", LastName: "Lund", Nick: "erik"},
	}
	rankings := []padelapi.RankingEntry{
		{Name: "nadia", TrueSkill: padelapi.TrueSkill{Mu: 27, Sigma: 2, Ranking: 21}},
	}

	b.persist(ctx, snapshotPlayers, players)
	b.persist(ctx, snapshotRankings, rankings)

	// A cold board with the same cache comes back up with data.
	cold := &Board{db: b.db}
	if err := cold.RestoreFromCache(ctx); err != nil {
		t.Fatal(err)
	}

	if got := cold.Players(); len(got) != 2 || got[1].Nick != "erik" {
		t.Errorf("unexpected restored players: %+v", got)
	}

	got, filter := cold.Rankings()
	if len(got) != 1 || got[0].TrueSkill.Ranking != 21 {
		t.Errorf("unexpected restored rankings: %+v", got)
	}
	if filter != padelapi.FilterAll {
		t.Errorf("expected restored rankings to reset the filter, got %q", filter)
	}
}

func TestPersistReplacesPreviousSnapshot(t *testing.T) {
	b := newCachedBoard(t)
	ctx := context.Background()

	b.persist(ctx, snapshotPlayers, []padelapi.Player{{ID: 1, Nick: "nadia"}})
	b.persist(ctx, snapshotPlayers, []padelapi.Player{{ID: 2, Nick: "erik"}})

	var count int
	if err := b.db.Get(&count, `SELECT COUNT(*) FROM Snapshot`); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected a single cached row per kind, got %d", count)
	}

	var players []padelapi.Player
	ok, err := b.loadCached(ctx, snapshotPlayers, &players)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || len(players) != 1 || players[0].Nick != "erik" {
		t.Errorf("expected the latest snapshot, got %+v", players)
	}
}

func TestRestoreFromCacheKeepsFreshData(t *testing.T) {
	b := newCachedBoard(t)
	ctx := context.Background()

	b.persist(ctx, snapshotPlayers, []padelapi.Player{{ID: 1, Nick: "cached"}})

	warm := &Board{db: b.db, players: []padelapi.Player{{ID: 2, Nick: "synced"}}}
	if err := warm.RestoreFromCache(ctx); err != nil {
		t.Fatal(err)
	}

	if got := warm.Players(); len(got) != 1 || got[0].Nick != "synced" {
		t.Errorf("expected the synced snapshot to survive, got %+v", got)
	}
}
