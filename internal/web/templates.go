package web

import (
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/russross/blackfriday/v2"
)

// supportedLocales are the languages we ship .po catalogs for. A
// missing catalog is fine, gotext falls back to the msgid.
var supportedLocales = []string{"en", "sv"}

func loadLocales(baseDir string) map[string]*gotext.Locale {
	ret := make(map[string]*gotext.Locale, len(supportedLocales))
	for _, lang := range supportedLocales {
		locale := gotext.NewLocale(filepath.Join(baseDir, "locales"), lang)
		locale.AddDomain("default")
		ret[lang] = locale
	}

	return ret
}

func withLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, locale)
}

func (s *Server) loadTemplates(baseDir string) (map[string]*template.Template, error) {
	layouts, err := filepath.Glob(filepath.Join(baseDir, "templates/layouts/*.html"))
	if err != nil {
		return nil, err
	}

	includes, err := filepath.Glob(filepath.Join(baseDir, "templates/includes/*.html"))
	if err != nil {
		return nil, err
	}

	ret := make(map[string]*template.Template, len(layouts))
	for _, layout := range layouts {
		tpl, err := template.New("").
			Funcs(s.getTemplateFuncMap()).
			ParseFiles(append(includes, layout)...)
		if err != nil {
			return nil, err
		}

		key := strings.TrimPrefix(layout, filepath.Join(baseDir, "templates/layouts")+"/")
		ret[key] = tpl
	}

	return ret, nil
}

// template returns a cached parsed layout, or reparses everything in
// dev mode.
func (s *Server) template(layout string) (*template.Template, error) {
	s.tplMu.Lock()
	defer s.tplMu.Unlock()

	if s.config.DevMode {
		tpl, err := s.loadTemplates(s.baseDir)
		if err != nil {
			return nil, err
		}
		s.tpl = tpl
	}

	tpl, ok := s.tpl[layout]
	if !ok {
		return nil, fmt.Errorf("no such layout: %s", layout)
	}

	return tpl, nil
}

func (s *Server) getTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t": func(locale string, str string) string {
			return s.locales[locale].Get(str)
		},

		"tf": func(locale string, str string, args ...interface{}) string {
			return fmt.Sprintf(s.locales[locale].Get(str), args...)
		},

		"tmd": func(locale, str string) template.HTML {
			return template.HTML(blackfriday.Run( // nolint:gosec
				[]byte(s.locales[locale].Get(str)),
			))
		},
	}
}

// dateFormatter returns the game-date renderer for a locale. The
// layout itself is a translatable string so each catalog can pick its
// own convention.
func (s *Server) dateFormatter(locale string) func(time.Time) string {
	layout := s.locales[locale].Get("2006-01-02")

	return func(t time.Time) string {
		return t.Local().Format(layout)
	}
}
