package board

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/birostris/PadelRanking/internal/util"
	"github.com/birostris/PadelRanking/pkg/padelapi"
	"github.com/jmoiron/sqlx"
)

// snapshotKind selects one of the three cached snapshot slots.
type snapshotKind string

const (
	snapshotPlayers  snapshotKind = "players"
	snapshotRankings snapshotKind = "rankings"
	snapshotGames    snapshotKind = "games"
)

// persist stores the last good snapshot of a kind in the local cache,
// best-effort: a cache failure is logged, never surfaced, and does not
// invalidate the sync that produced the snapshot.
func (b *Board) persist(ctx context.Context, kind snapshotKind, payload interface{}) {
	if b.db == nil {
		return
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		log.Printf("warning: unable to marshal %s snapshot: %s", kind, err)
		return
	}

	blob, err := util.NewZLIBBlob(buf)
	if err != nil {
		log.Printf("warning: unable to compress %s snapshot: %s", kind, err)
		return
	}

	err = util.Transaction(ctx, b.db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`DELETE FROM Snapshot WHERE Kind = ?`, kind); err != nil {
			return err
		}

		query, args, err := squirrel.Insert("Snapshot").SetMap(squirrel.Eq{
			"ID":        util.NewUUIDAsBlob(),
			"Kind":      kind,
			"FetchedAt": util.TimeAsTimestamp(time.Now()),
			"Payload":   blob,
		}).ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(query, args...)
		return err
	})
	if err != nil {
		log.Printf("warning: unable to cache %s snapshot: %s", kind, err)
	}
}

func (b *Board) loadCached(ctx context.Context, kind snapshotKind, payload interface{}) (bool, error) {
	if b.db == nil {
		return false, nil
	}

	var row struct {
		FetchedAt util.TimeAsTimestamp
		Payload   util.ZLIBBlob
	}

	query := `SELECT FetchedAt, Payload FROM Snapshot WHERE Kind = ? LIMIT 1`
	if err := b.db.GetContext(ctx, &row, query, kind); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	buf, err := row.Payload.Uncompressed()
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(buf, payload); err != nil {
		return false, err
	}

	log.Printf("debug: loaded cached %s snapshot from %s", kind, row.FetchedAt.Time())

	return true, nil
}

// RestoreFromCache fills the cold in-memory snapshots from the local
// cache so the front has something to show when the upstream is down
// at startup. Fresh data always wins: slots that already hold a synced
// snapshot are skipped.
func (b *Board) RestoreFromCache(ctx context.Context) error {
	if b.db == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error

	if len(b.players) == 0 {
		var players []padelapi.Player
		if ok, err := b.loadCached(ctx, snapshotPlayers, &players); err != nil {
			errs = append(errs, err)
		} else if ok {
			b.players = players
		}
	}

	if len(b.rankings) == 0 {
		var rankings []padelapi.RankingEntry
		if ok, err := b.loadCached(ctx, snapshotRankings, &rankings); err != nil {
			errs = append(errs, err)
		} else if ok {
			b.rankings = rankings
			b.filter = padelapi.FilterAll
		}
	}

	if len(b.games) == 0 {
		var games []padelapi.Game
		if ok, err := b.loadCached(ctx, snapshotGames, &games); err != nil {
			errs = append(errs, err)
		} else if ok {
			b.games = games
		}
	}

	return util.ConcatErrors(errs)
}
