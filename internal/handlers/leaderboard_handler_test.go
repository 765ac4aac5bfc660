package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kanishak333/PBL--HireEdge/internal/services"
)

func newLeaderboardApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/leaderboard", NewLeaderboardHandler().HandleLeaderboard)
	return app
}

func TestHandleLeaderboard_RanksAndClamps(t *testing.T) {
	app := newLeaderboardApp()

	payload := `{
	  "candidates": [
	    {"name": "Michael", "score": 65, "role": "Backend Developer"},
	    {"name": "Alice", "score": 92, "role": "Senior Frontend Dev"},
	    {"name": "Sarah", "score": 45, "role": "Frontend Junior"}
	  ],
	  "topN": 2
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var board services.Leaderboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	require.Len(t, board.Entries, 2)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, "Alice", board.Entries[0].Candidate.Name)
	assert.Equal(t, services.BandHigh, board.Entries[0].Band)
	assert.Equal(t, 2, board.Entries[1].Rank)
	assert.Equal(t, "Michael", board.Entries[1].Candidate.Name)
	assert.Equal(t, services.BandMid, board.Entries[1].Band)
}

func TestHandleLeaderboard_EmptyCandidates(t *testing.T) {
	app := newLeaderboardApp()

	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", strings.NewReader(`{"candidates": [], "topN": 5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var board services.Leaderboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	assert.Empty(t, board.Entries)
	assert.Nil(t, board.Chart)
}

func TestHandleLeaderboard_InvalidPayload(t *testing.T) {
	app := newLeaderboardApp()

	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
