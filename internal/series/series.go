package series

import (
	"fmt"

	"github.com/birostris/PadelRanking/pkg/padelapi"
)

// Series is a named, ordered run of chart points. ZIndex is the draw
// priority and follows input order; color assignment downstream is
// positional too, so callers must hand over a stable, pre-sorted
// snapshot or players will swap colors between renders.
type Series struct {
	Name   string
	ZIndex int
	Points []Point
}

// Marker is a labeled vertical line at X, drawn above every curve.
type Marker struct {
	Name   string
	X      float64
	ZIndex int
}

// BeliefChart is the skill-belief chart data: one density curve per
// player plus a marker at each player's ranking score.
type BeliefChart struct {
	Curves  []Series
	Markers []Marker
}

// BeliefSeries builds the skill-belief chart from a rankings snapshot.
// It fails when any entry carries an unusable sigma, rather than
// silently dropping the player from the chart.
func BeliefSeries(entries []padelapi.RankingEntry) (BeliefChart, error) {
	ret := BeliefChart{
		Curves:  make([]Series, 0, len(entries)),
		Markers: make([]Marker, 0, len(entries)),
	}

	for i := range entries {
		skill := entries[i].TrueSkill
		points, err := SampleCurve(skill.Mu, skill.Sigma)
		if err != nil {
			return BeliefChart{}, fmt.Errorf("unable to sample curve for %s: %w", entries[i].Name, err)
		}

		ret.Curves = append(ret.Curves, Series{
			Name:   entries[i].Name,
			ZIndex: i,
			Points: points,
		})
		ret.Markers = append(ret.Markers, Marker{
			Name:   entries[i].Name,
			X:      skill.Ranking,
			ZIndex: len(entries) + 1,
		})
	}

	return ret, nil
}

// ProgressSeries builds one line per player straight from the recorded
// progress pairs, unmodified.
func ProgressSeries(entries []padelapi.RankingEntry) []Series {
	ret := make([]Series, 0, len(entries))

	for i := range entries {
		points := make([]Point, len(entries[i].Progress))
		for j, p := range entries[i].Progress {
			points[j] = Point{p[0], p[1]}
		}

		ret = append(ret, Series{
			Name:   entries[i].Name,
			ZIndex: i,
			Points: points,
		})
	}

	return ret
}
