package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

func candidate(name string, score int) models.CandidateRecord {
	return models.CandidateRecord{Name: name, Score: score}
}

func TestBuildLeaderboard_SortsByScoreDescending(t *testing.T) {
	result := models.AnalysisResult{
		candidate("Michael", 65),
		candidate("Alice", 92),
		candidate("Emma", 78),
	}

	board := BuildLeaderboard(result, 3)

	require.Len(t, board.Entries, 3)
	assert.Equal(t, "Alice", board.Entries[0].Candidate.Name)
	assert.Equal(t, "Emma", board.Entries[1].Candidate.Name)
	assert.Equal(t, "Michael", board.Entries[2].Candidate.Name)
	assert.Equal(t, []int{1, 2, 3}, []int{board.Entries[0].Rank, board.Entries[1].Rank, board.Entries[2].Rank})
}

func TestBuildLeaderboard_StableForEqualScores(t *testing.T) {
	result := models.AnalysisResult{
		candidate("First", 70),
		candidate("Second", 70),
		candidate("Third", 70),
	}

	board := BuildLeaderboard(result, 3)

	assert.Equal(t, "First", board.Entries[0].Candidate.Name)
	assert.Equal(t, "Second", board.Entries[1].Candidate.Name)
	assert.Equal(t, "Third", board.Entries[2].Candidate.Name)
}

func TestBuildLeaderboard_DoesNotMutateInput(t *testing.T) {
	result := models.AnalysisResult{
		candidate("Low", 10),
		candidate("High", 90),
	}

	BuildLeaderboard(result, 2)

	assert.Equal(t, "Low", result[0].Name)
	assert.Equal(t, "High", result[1].Name)
}

func TestClampTopN(t *testing.T) {
	assert.Equal(t, 1, ClampTopN(0, 5))
	assert.Equal(t, 1, ClampTopN(-3, 5))
	assert.Equal(t, 5, ClampTopN(99, 5))
	assert.Equal(t, 3, ClampTopN(3, 5))
}

func TestBuildLeaderboard_AppliesTopN(t *testing.T) {
	result := models.AnalysisResult{
		candidate("A", 10),
		candidate("B", 50),
		candidate("C", 90),
		candidate("D", 70),
		candidate("E", 30),
	}

	board := BuildLeaderboard(result, 2)

	require.Len(t, board.Entries, 2)
	assert.Equal(t, "C", board.Entries[0].Candidate.Name)
	assert.Equal(t, "D", board.Entries[1].Candidate.Name)
	require.NotNil(t, board.Chart)
	assert.Equal(t, []string{"C", "D"}, board.Chart.Labels)
	assert.Equal(t, []int{90, 70}, board.Chart.Scores)
}

func TestBuildLeaderboard_EmptyResultHasNoChart(t *testing.T) {
	board := BuildLeaderboard(models.AnalysisResult{}, 5)

	assert.Empty(t, board.Entries)
	assert.Nil(t, board.Chart)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandHigh, BandFor(100))
	assert.Equal(t, BandHigh, BandFor(80))
	assert.Equal(t, BandMid, BandFor(79))
	assert.Equal(t, BandMid, BandFor(60))
	assert.Equal(t, BandLow, BandFor(59))
	assert.Equal(t, BandLow, BandFor(0))
}
