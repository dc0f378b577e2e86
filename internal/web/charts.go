package web

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/birostris/PadelRanking/internal/series"
	"github.com/wcharczuk/go-chart"
)

const emptySVG = `<svg xmlns="http://www.w3.org/2000/svg"/>`

// beliefsChart renders one density curve per player with a marker line
// at each ranking score, as SVG.
func (s *Server) beliefsChart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { log.Printf("info: rendered beliefs chart in %s", time.Since(start)) }()

	rankings, _ := s.board.Rankings()
	data, err := series.BeliefSeries(rankings)
	if err != nil {
		s.error(w, r, err, http.StatusInternalServerError)
		return
	}

	s.cache(w, "public", 1*time.Minute)
	w.Header().Set("Content-Type", "image/svg+xml")

	if len(data.Curves) == 0 {
		io.WriteString(w, emptySVG) // nolint:errcheck
		return
	}

	if err := beliefGraph(data).Render(chart.SVG, w); err != nil {
		log.Printf("error: unable to render chart: %s", err)
	}
}

// progressChart renders each player's score-over-games line, as SVG.
func (s *Server) progressChart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { log.Printf("info: rendered progress chart in %s", time.Since(start)) }()

	rankings, _ := s.board.Rankings()
	lines := series.ProgressSeries(rankings)

	s.cache(w, "public", 1*time.Minute)
	w.Header().Set("Content-Type", "image/svg+xml")

	if len(lines) == 0 {
		io.WriteString(w, emptySVG) // nolint:errcheck
		return
	}

	if err := progressGraph(lines).Render(chart.SVG, w); err != nil {
		log.Printf("error: unable to render chart: %s", err)
	}
}

func beliefGraph(data series.BeliefChart) chart.Chart {
	out := chart.Chart{
		Width:  900,
		Height: 400,
		Canvas: chart.Style{FillColor: chart.ColorTransparent},
		Background: chart.Style{
			FillColor: chart.ColorTransparent,
		},
	}

	var maxY float64
	for _, c := range data.Curves {
		for _, p := range c.Points {
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	// Input order decides both color and draw priority, the series
	// builder guarantees a stable order.
	for i, c := range data.Curves {
		xs, ys := xyValues(c.Points)
		color := chart.GetDefaultColor(i)
		out.Series = append(out.Series, chart.ContinuousSeries{
			Name:    c.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				Show:        true,
				StrokeColor: color,
				FillColor:   color.WithAlpha(64),
			},
		})
	}

	// Markers go last so they sit above every curve.
	for i, m := range data.Markers {
		color := chart.GetDefaultColor(i)
		out.Series = append(out.Series, chart.ContinuousSeries{
			XValues: []float64{m.X, m.X},
			YValues: []float64{0, maxY},
			Style: chart.Style{
				Show:        true,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
		out.Series = append(out.Series, chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{XValue: m.X, YValue: maxY, Label: m.Name},
			},
			Style: chart.Style{
				Show:        true,
				StrokeColor: color,
			},
		})
	}

	return out
}

func progressGraph(lines []series.Series) chart.Chart {
	out := chart.Chart{
		Width:  900,
		Height: 400,
		Canvas: chart.Style{FillColor: chart.ColorTransparent},
		Background: chart.Style{
			FillColor: chart.ColorTransparent,
		},
	}

	for i, l := range lines {
		xs, ys := xyValues(l.Points)
		out.Series = append(out.Series, chart.ContinuousSeries{
			Name:    l.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				Show:        true,
				StrokeColor: chart.GetDefaultColor(i),
			},
		})
	}

	return out
}

func xyValues(points []series.Point) ([]float64, []float64) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return xs, ys
}
