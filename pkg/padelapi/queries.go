package padelapi

import (
	"context"
	"log"
	"net/url"
)

// Filter restricts which games the service takes into account when
// computing the rankings snapshot.
type Filter string

const (
	FilterAll     Filter = ""
	FilterSingles Filter = "singles"
	FilterDoubles Filter = "doubles"
)

// IsValid returns false for values the service does not understand.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterSingles, FilterDoubles:
		return true
	default:
		return false
	}
}

// GetPlayers fetches the players snapshot.
func (c *Client) GetPlayers(ctx context.Context) ([]Player, error) {
	log.Printf("debug: fetching players snapshot")

	var ret []Player
	if err := c.get(ctx, url.Values{"players": {"true"}}, &ret); err != nil {
		return nil, err
	}

	return ret, nil
}

// GetRankings fetches the rankings snapshot, restricted to the games
// matching the given filter.
func (c *Client) GetRankings(ctx context.Context, filter Filter) ([]RankingEntry, error) {
	log.Printf("debug: fetching rankings snapshot (filter: %q)", filter)

	q := url.Values{
		"rankings": {"true"},
		"filter":   {string(filter)},
	}

	var ret []RankingEntry
	if err := c.get(ctx, q, &ret); err != nil {
		return nil, err
	}

	return ret, nil
}

// GetGames fetches the games snapshot, ordered chronologically.
func (c *Client) GetGames(ctx context.Context) ([]Game, error) {
	log.Printf("debug: fetching games snapshot")

	var ret []Game
	if err := c.get(ctx, url.Values{"games": {"true"}}, &ret); err != nil {
		return nil, err
	}

	return ret, nil
}
