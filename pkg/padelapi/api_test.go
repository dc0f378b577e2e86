package padelapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/birostris/PadelRanking/pkg/padelapi"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*padelapi.Client, func()) {
	t.Helper()

	server := httptest.NewServer(handler)
	client, err := padelapi.New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	return client, server.Close
}

func TestGetRankings_QueryAndDecode(t *testing.T) {
	var gotQuery map[string][]string

	client, done := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[
			{
				"Name": "ara",
				"TrueSkill": {"mu": 27.5, "sigma": 4.2, "ranking": 14.9},
				"Record": {"wins": 3, "draws": 1, "losses": 2},
				"Progress": [[0, 0.0], [1, 4.25]]
			}
		]`)
	})
	defer done()

	rankings, err := client.GetRankings(context.Background(), padelapi.FilterDoubles)
	if err != nil {
		t.Fatal(err)
	}

	if got := gotQuery["rankings"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("expected rankings=true, got %v", got)
	}
	if got := gotQuery["filter"]; len(got) != 1 || got[0] != "doubles" {
		t.Errorf("expected filter=doubles, got %v", got)
	}

	if len(rankings) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(rankings))
	}

	e := rankings[0]
	if e.Name != "ara" || e.TrueSkill.Mu != 27.5 || e.TrueSkill.Sigma != 4.2 || e.TrueSkill.Ranking != 14.9 {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Record.Wins != 3 || e.Record.Draws != 1 || e.Record.Losses != 2 {
		t.Errorf("unexpected record: %+v", e.Record)
	}
	if len(e.Progress) != 2 || e.Progress[1] != (padelapi.ProgressPoint{1, 4.25}) {
		t.Errorf("unexpected progress: %v", e.Progress)
	}
}

func TestGetGames_NullPartners(t *testing.T) {
	client, done := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("games") != "true" {
			t.Errorf("expected games=true, got %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `[
			{
				"id": 7, "date": "2023-06-14T18:30:00+00:00",
				"player1": "ara", "player2": null,
				"player3": "bosse", "player4": null,
				"score1": 6, "score2": 3, "gametype": 0
			}
		]`)
	})
	defer done()

	games, err := client.GetGames(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}

	g := games[0]
	if g.ID != 7 || g.Player1 != "ara" || g.Player3 != "bosse" {
		t.Errorf("unexpected game: %+v", g)
	}
	if g.Player2.Valid || g.Player4.Valid {
		t.Error("expected null partners on a singles game")
	}
	if g.Date.UTC().Format("2006-01-02 15:04") != "2023-06-14 18:30" {
		t.Errorf("unexpected date: %s", g.Date)
	}
}

func TestResponseError(t *testing.T) {
	client, done := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"success": 0, "message": "ERROR - Nick 'ara' is not unique"}`)
	})
	defer done()

	_, err := client.AddPlayer(context.Background(), "A", "Ra", "ara")

	var respErr *padelapi.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected a *ResponseError, got %v", err)
	}
	if respErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", respErr.StatusCode)
	}
	if respErr.Message != "ERROR - Nick 'ara' is not unique" {
		t.Errorf("server message lost: %q", respErr.Message)
	}
}

func TestResponseError_LegacySuccessFlag(t *testing.T) {
	// Old deployments answer failures with a 200 and success=0.
	client, done := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"success": 0, "message": "Could not add game - Players not unique"}`)
	})
	defer done()

	_, err := client.AddGame(context.Background(), padelapi.GameSubmission{})

	var respErr *padelapi.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected a *ResponseError, got %v", err)
	}
	if respErr.Message != "Could not add game - Players not unique" {
		t.Errorf("server message lost: %q", respErr.Message)
	}
}

func TestResponseError_MalformedPayload(t *testing.T) {
	client, done := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{not json`)
	})
	defer done()

	_, err := client.GetPlayers(context.Background())

	var respErr *padelapi.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected a *ResponseError, got %v", err)
	}
}

func TestTransportError(t *testing.T) {
	client, done := newClient(t, func(w http.ResponseWriter, _ *http.Request) {})
	done() // server is gone before the request goes out

	_, err := client.GetPlayers(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var respErr *padelapi.ResponseError
	if errors.As(err, &respErr) {
		t.Fatalf("expected a transport error, got a response error: %v", err)
	}
}

func TestFilterIsValid(t *testing.T) {
	for _, f := range []padelapi.Filter{padelapi.FilterAll, padelapi.FilterSingles, padelapi.FilterDoubles} {
		if !f.IsValid() {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if padelapi.Filter("mixed").IsValid() {
		t.Error("expected an unknown filter to be invalid")
	}
}
