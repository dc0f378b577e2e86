// Package board owns the client-side state of the ranking front: the
// three server snapshots (players, rankings, games), the sync
// operations that replace them, and the mutation commands that write
// through to the upstream service and resync.
package board

import (
	"fmt"
	"log"
	"sync"

	"github.com/birostris/PadelRanking/pkg/padelapi"
	"github.com/jmoiron/sqlx"
)

type Board struct {
	api *padelapi.Client
	db  *sqlx.DB // nil when the snapshot cache is disabled

	// Snapshots are replaced wholesale under this lock, never merged.
	mu       sync.RWMutex
	players  []padelapi.Player
	rankings []padelapi.RankingEntry
	games    []padelapi.Game
	filter   padelapi.Filter
}

// New creates a Board backed by the given API client. sqlDSN points at
// the local SQLite snapshot cache, an empty DSN disables caching.
func New(api *padelapi.Client, sqlDSN string) (*Board, error) {
	b := &Board{api: api}

	if sqlDSN == "" {
		log.Print("warning: snapshot cache disabled")
		return b, nil
	}

	// Columns are named exactly like their struct fields, one greppable
	// string across code and schema. Global, but only the Board touches
	// the DB.
	sqlx.NameMapper = func(v string) string { return v }

	db, err := sqlx.Connect("sqlite3", sqlDSN)
	if err != nil {
		return nil, fmt.Errorf("unable to open snapshot cache: %w", err)
	}
	b.db = db

	return b, nil
}

// Players returns the current players snapshot. The returned slice is
// shared, callers must not mutate it.
func (b *Board) Players() []padelapi.Player {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.players
}

// Rankings returns the current rankings snapshot and the filter it was
// fetched with.
func (b *Board) Rankings() ([]padelapi.RankingEntry, padelapi.Filter) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rankings, b.filter
}

// Games returns the current games snapshot, chronologically ascending.
func (b *Board) Games() []padelapi.Game {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.games
}
