package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/birostris/PadelRanking/internal/board"
	"github.com/birostris/PadelRanking/internal/util"
	"github.com/birostris/PadelRanking/pkg/padelapi"
)

// The three mutation forms all end the same way: back to the dashboard
// with the outcome in the query string, never a partial page.

func (s *Server) addPlayer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.error(w, r, err, http.StatusBadRequest)
		return
	}

	msg, err := s.board.AddPlayer(r.Context(), board.PlayerForm{
		FirstName: r.PostForm.Get("firstname"),
		LastName:  r.PostForm.Get("lastname"),
		Nick:      r.PostForm.Get("nick"),
	})

	s.redirectHome(w, r, msg, err)
}

func (s *Server) addGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.error(w, r, err, http.StatusBadRequest)
		return
	}

	msg, err := s.board.AddGame(r.Context(), board.GameForm{
		Player1: r.PostForm.Get("player1"),
		Player2: r.PostForm.Get("player2"),
		Player3: r.PostForm.Get("player3"),
		Player4: r.PostForm.Get("player4"),
		Score1:  r.PostForm.Get("score1"),
		Score2:  r.PostForm.Get("score2"),
	})

	s.redirectHome(w, r, msg, err)
}

func (s *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.error(w, r, err, http.StatusBadRequest)
		return
	}

	msg, err := s.board.DeleteGame(r.Context(), board.DeleteForm{
		GameID:   r.PostForm.Get("game_id"),
		Password: r.PostForm.Get("password"),
	})

	s.redirectHome(w, r, msg, err)
}

// redirectHome sends the user back to the dashboard carrying the
// command outcome. A command can both succeed and report an error when
// the mutation landed but a resync did not.
func (s *Server) redirectHome(w http.ResponseWriter, r *http.Request, msg string, err error) {
	q := url.Values{}
	if msg != "" {
		q.Set("flash", msg)
	}
	if err != nil {
		q.Set("error", displayable(err))
	}

	target := "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// displayable keeps user-safe error messages and swaps the rest for a
// generic one. Validation rejections and service answers are written
// for the user, transport and cache internals are not.
func displayable(err error) string {
	var responseErr *padelapi.ResponseError
	if errors.Is(err, util.ErrPublic("")) || errors.As(err, &responseErr) {
		return err.Error()
	}

	return "something went wrong, try again later"
}
