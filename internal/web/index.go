package web

import (
	"log"
	"net/http"

	"github.com/birostris/PadelRanking/internal/series"
	"github.com/birostris/PadelRanking/pkg/padelapi"
)

type dashboardTemplateData struct {
	Standings []series.StandingsRow
	Games     []series.GamesRow
	Options   []series.PlayerOption
	Filter    padelapi.Filter

	// One-shot messages carried over the post-command redirect.
	Flash    string
	FlashErr string
}

// index serves the dashboard from the board's current snapshots.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.error(w, r, nil, http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	data := dashboardTemplateData{
		Flash:    q.Get("flash"),
		FlashErr: q.Get("error"),
	}

	filter := padelapi.Filter(q.Get("filter"))
	if !filter.IsValid() {
		s.error(w, r, nil, http.StatusBadRequest)
		return
	}
	data.Filter = filter

	rankings, current := s.board.Rankings()
	if filter != current {
		// A filter switch needs a fresh snapshot; on failure the
		// previous one stays on display, with a message.
		fresh, err := s.board.SyncRankings(r.Context(), filter)
		if err != nil {
			log.Printf("warning: unable to refresh rankings: %s", err)
			data.FlashErr = displayable(err)
			data.Filter = current
		} else {
			rankings = fresh
		}
	}

	data.Standings = series.StandingsRows(rankings)
	data.Games = series.GamesRows(s.board.Games(), s.dateFormatter(localeFromRequest(r)))
	data.Options = series.PlayerOptions(s.board.Players())

	s.response(w, r, http.StatusOK, "index.html", data)
}
