package padelapi

import (
	"context"
	"log"
)

// AddPlayer registers a new player and returns the server confirmation
// message. A non-unique nick is rejected by the service, not here.
func (c *Client) AddPlayer(ctx context.Context, firstName, lastName, nick string) (string, error) {
	log.Printf("debug: submitting player %q", nick)

	return c.post(ctx, "add_player", struct {
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Nick      string `json:"nick"`
	}{firstName, lastName, nick})
}

// AddGame records a played game and returns the server confirmation
// message.
func (c *Client) AddGame(ctx context.Context, game GameSubmission) (string, error) {
	log.Printf(
		"debug: submitting game %d-%d (americano: %d)",
		game.Score1, game.Score2, game.Americano,
	)

	return c.post(ctx, "add_game", game)
}

// DeleteGame removes a game by id. Authorization happens server-side, a
// rejected password comes back as a *ResponseError.
func (c *Client) DeleteGame(ctx context.Context, id int, password string) (string, error) {
	log.Printf("debug: submitting deletion of game %d", id)

	return c.post(ctx, "delete_game", struct {
		Password string `json:"pwd"`
		GameID   int    `json:"game_id"`
	}{password, id})
}
