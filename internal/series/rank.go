package series

import (
	"github.com/birostris/PadelRanking/pkg/padelapi"
)

// Ranked pairs a snapshot entry with its display position.
type Ranked struct {
	Position int
	Entry    padelapi.RankingEntry
}

// AssignRanks labels an already-sorted snapshot with competition-style
// positions: entries with the exact same ranking score share a
// position, and the next distinct entry gets its 1-based index, leaving
// gaps after ties. It never reorders its input.
func AssignRanks(entries []padelapi.RankingEntry) []Ranked {
	ret := make([]Ranked, len(entries))

	pos := 1
	for i := range entries {
		if i > 0 && entries[i].TrueSkill.Ranking != entries[i-1].TrueSkill.Ranking {
			pos = i + 1
		}

		ret[i] = Ranked{Position: pos, Entry: entries[i]}
	}

	return ret
}
