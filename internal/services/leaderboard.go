package services

import (
	"sort"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

// ScoreBand is the presentation bucket a score falls into. Purely visual;
// ranking never looks at it.
type ScoreBand string

const (
	BandHigh ScoreBand = "high"
	BandMid  ScoreBand = "mid"
	BandLow  ScoreBand = "low"
)

func BandFor(score int) ScoreBand {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMid
	default:
		return BandLow
	}
}

type LeaderboardEntry struct {
	Rank      int                    `json:"rank"`
	Candidate models.CandidateRecord `json:"candidate"`
	Band      ScoreBand              `json:"band"`
}

type ChartData struct {
	Labels []string    `json:"labels"`
	Scores []int       `json:"scores"`
	Bands  []ScoreBand `json:"bands"`
}

type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
	Chart   *ChartData         `json:"chart,omitempty"`
}

// ClampTopN bounds the operator-requested topN to [1, length].
func ClampTopN(topN, length int) int {
	if topN < 1 {
		topN = 1
	}
	if topN > length {
		topN = length
	}
	return topN
}

// BuildLeaderboard ranks candidates by score descending and keeps the top
// N. The sort is stable: equal scores keep their input order, so identical
// inputs always produce identical boards. An empty result yields an empty
// board with no chart.
func BuildLeaderboard(result models.AnalysisResult, topN int) Leaderboard {
	if len(result) == 0 {
		return Leaderboard{Entries: []LeaderboardEntry{}}
	}

	ranked := make(models.AnalysisResult, len(result))
	copy(ranked, result)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	ranked = ranked[:ClampTopN(topN, len(ranked))]

	entries := make([]LeaderboardEntry, len(ranked))
	chart := &ChartData{
		Labels: make([]string, len(ranked)),
		Scores: make([]int, len(ranked)),
		Bands:  make([]ScoreBand, len(ranked)),
	}

	for i, candidate := range ranked {
		band := BandFor(candidate.Score)
		entries[i] = LeaderboardEntry{
			Rank:      i + 1,
			Candidate: candidate,
			Band:      band,
		}
		chart.Labels[i] = candidate.Name
		chart.Scores[i] = candidate.Score
		chart.Bands[i] = band
	}

	return Leaderboard{Entries: entries, Chart: chart}
}
