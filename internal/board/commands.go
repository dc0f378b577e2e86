package board

import (
	"context"
	"fmt"

	"github.com/birostris/PadelRanking/internal/util"
)

// Every command follows the same protocol: validate locally, submit,
// and on success resync the snapshots the mutation invalidated. A
// failed submission terminates the attempt, nothing is retried and no
// snapshot is touched.

// AddPlayer registers a new player and returns the server confirmation
// message.
func (b *Board) AddPlayer(ctx context.Context, form PlayerForm) (string, error) {
	if err := form.validate(); err != nil {
		return "", err
	}

	msg, err := b.api.AddPlayer(ctx, form.FirstName, form.LastName, form.Nick)
	if err != nil {
		return "", err
	}

	return msg, b.resync(ctx, true, false)
}

// AddGame records a played game and returns the server confirmation
// message. The americano flag is derived here, at submission time.
func (b *Board) AddGame(ctx context.Context, form GameForm) (string, error) {
	submission, err := form.parse()
	if err != nil {
		return "", err
	}

	msg, err := b.api.AddGame(ctx, submission)
	if err != nil {
		return "", err
	}

	return msg, b.resync(ctx, false, true)
}

// DeleteGame removes a game. A rejected password comes back from the
// service as a response error, it is not detectable client-side.
func (b *Board) DeleteGame(ctx context.Context, form DeleteForm) (string, error) {
	id, password, err := form.parse()
	if err != nil {
		return "", err
	}

	msg, err := b.api.DeleteGame(ctx, id, password)
	if err != nil {
		return "", err
	}

	return msg, b.resync(ctx, false, true)
}

// resync refreshes the snapshots a successful mutation invalidated.
// Rankings always move when players or games do.
func (b *Board) resync(ctx context.Context, players, games bool) error {
	var errs []error

	if players {
		if _, err := b.SyncPlayers(ctx); err != nil {
			errs = append(errs, fmt.Errorf("unable to refresh players: %w", err))
		}
	}
	if games {
		if _, err := b.SyncGames(ctx); err != nil {
			errs = append(errs, fmt.Errorf("unable to refresh games: %w", err))
		}
	}

	if _, err := b.SyncRankings(ctx, b.currentFilter()); err != nil {
		errs = append(errs, fmt.Errorf("unable to refresh rankings: %w", err))
	}

	return util.ConcatErrors(errs)
}
