package board

import (
	"context"
	"encoding/json"
	"log"

	"github.com/birostris/PadelRanking/internal/util"
	"github.com/birostris/PadelRanking/pkg/padelapi"
	jsonpatch "github.com/evanphx/json-patch"
)

// SyncPlayers fetches a fresh players snapshot and replaces the
// current one. On failure the previous snapshot is left untouched and
// the error is returned to be surfaced to the user.
func (b *Board) SyncPlayers(ctx context.Context) ([]padelapi.Player, error) {
	players, err := b.api.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.players = players
	b.mu.Unlock()

	b.persist(ctx, snapshotPlayers, players)

	return players, nil
}

// SyncRankings fetches a fresh rankings snapshot for the given filter
// and replaces the current one.
func (b *Board) SyncRankings(ctx context.Context, filter padelapi.Filter) ([]padelapi.RankingEntry, error) {
	rankings, err := b.api.GetRankings(ctx, filter)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	logRankingsDiff(b.rankings, rankings)
	b.rankings = rankings
	b.filter = filter
	b.mu.Unlock()

	if filter == padelapi.FilterAll {
		// Filtered snapshots are transient views, only the unfiltered
		// one is worth serving after a restart.
		b.persist(ctx, snapshotRankings, rankings)
	}

	return rankings, nil
}

// SyncGames fetches a fresh games snapshot and replaces the current
// one.
func (b *Board) SyncGames(ctx context.Context) ([]padelapi.Game, error) {
	games, err := b.api.GetGames(ctx)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.games = games
	b.mu.Unlock()

	b.persist(ctx, snapshotGames, games)

	return games, nil
}

// SyncAll performs the three syncs, keeping whatever succeeded.
func (b *Board) SyncAll(ctx context.Context) error {
	var errs []error

	if _, err := b.SyncRankings(ctx, b.currentFilter()); err != nil {
		errs = append(errs, err)
	}
	if _, err := b.SyncPlayers(ctx); err != nil {
		errs = append(errs, err)
	}
	if _, err := b.SyncGames(ctx); err != nil {
		errs = append(errs, err)
	}

	return util.ConcatErrors(errs)
}

func (b *Board) currentFilter() padelapi.Filter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filter
}

// logRankingsDiff logs what a resync changed, as a JSON merge patch.
// Caller holds the write lock.
func logRankingsDiff(old, fresh []padelapi.RankingEntry) {
	if len(old) == 0 {
		return
	}

	oldJSON, err := json.Marshal(old)
	if err != nil {
		return
	}
	freshJSON, err := json.Marshal(fresh)
	if err != nil {
		return
	}

	patch, err := jsonpatch.CreateMergePatch(oldJSON, freshJSON)
	if err != nil {
		log.Printf("warning: unable to diff rankings snapshots: %s", err)
		return
	}

	log.Printf("debug: rankings snapshot changed: %s", patch)
}
