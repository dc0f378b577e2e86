// Package web serves the ranking dashboard: standings, skill-belief
// and progress charts, recent games, and the add/delete forms, all
// rendered from the board's current snapshots.
package web

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/birostris/PadelRanking/internal/board"
	"github.com/birostris/PadelRanking/internal/config"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

type ctxKey int

const ctxKeyLocale ctxKey = iota

type Server struct {
	http    *http.Server
	board   *board.Board
	config  *config.Config
	baseDir string

	locales map[string]*gotext.Locale
	matcher language.Matcher

	tplMu sync.Mutex
	tpl   map[string]*template.Template
}

func NewServer(b *board.Board, c *config.Config, baseDir string) (*Server, error) {
	s := &Server{
		board:   b,
		config:  c,
		baseDir: baseDir,
		locales: loadLocales(baseDir),
		matcher: language.NewMatcher([]language.Tag{
			language.English, // first is the fallback
			language.Swedish,
		}),
	}

	tpl, err := s.loadTemplates(baseDir)
	if err != nil {
		return nil, err
	}
	s.tpl = tpl

	s.http = &http.Server{
		Addr:         c.ListenAddr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  10 * time.Second,
		Handler:      s.setupRouter(),
	}

	return s, nil
}

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(s.localizer)

	r.Get("/", s.index)
	r.Get("/charts/beliefs.svg", s.beliefsChart)
	r.Get("/charts/progress.svg", s.progressChart)

	r.Post("/players", s.addPlayer)
	r.Post("/games", s.addGame)
	r.Post("/games/delete", s.deleteGame)

	return r
}

func (s *Server) Serve(wg *sync.WaitGroup, done <-chan struct{}) {
	log.Println("info: starting HTTP server")
	wg.Add(1)
	defer wg.Done()

	go func() {
		err := s.http.ListenAndServe()
		if err == http.ErrServerClosed {
			log.Println("info: HTTP server closed")
			return
		}

		log.Fatalf("webserver crashed: %s", err)
	}()

	<-done
	if err := s.http.Close(); err != nil {
		log.Printf("warning: unable to close webserver: %s", err)
	}
}

// localizer picks the display language from the Accept-Language header
// and stores it in the request context.
func (s *Server) localizer(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
		if err != nil {
			tags = nil
		}

		tag, _, _ := s.matcher.Match(tags...)
		base, _ := tag.Base()

		h.ServeHTTP(w, r.WithContext(withLocale(r.Context(), base.String())))
	})
}

func localeFromRequest(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKeyLocale).(string); ok {
		return v
	}

	return "en"
}

func (s *Server) response(w http.ResponseWriter, r *http.Request, code int, layout string, data interface{}) {
	tpl, err := s.template(layout)
	if err != nil {
		s.error(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	if err := tpl.ExecuteTemplate(w, "base", struct {
		Locale string
		Data   interface{}
	}{localeFromRequest(r), data}); err != nil {
		log.Printf("error: unable to render template: %s", err)
	}
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, err error, code int) {
	if err != nil {
		log.Printf("error: %s", err)
	}

	http.Error(w, http.StatusText(code), code)
}

func (s *Server) cache(w http.ResponseWriter, scope string, d time.Duration) {
	w.Header().Set("Cache-Control", fmt.Sprintf("%s,max-age=%d", scope, d/time.Second))
}
