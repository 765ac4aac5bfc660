package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
	"github.com/Kanishak333/PBL--HireEdge/internal/services"
)

type LeaderboardHandler struct{}

func NewLeaderboardHandler() *LeaderboardHandler {
	return &LeaderboardHandler{}
}

// HandleLeaderboard handles POST /api/leaderboard: the operator UI sends
// back the analysis array with its current top-N setting and receives the
// ranked entries plus chart aggregates.
func (h *LeaderboardHandler) HandleLeaderboard(c *fiber.Ctx) error {
	var req models.LeaderboardRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	return c.JSON(services.BuildLeaderboard(req.Candidates, req.TopN))
}
