package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/collabhq/collabhub/pkg/api/errors"
	"github.com/collabhq/collabhub/pkg/leaderboard"
)

// LeaderboardHandler serves the community leaderboards
type LeaderboardHandler struct {
	service *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(service *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// ListCollaborators godoc
// @Summary List top collaborators
// @Description Get collaborator profiles ordered by total earnings
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} leaderboard.CollaboratorProfile
// @Router /api/v1/leaderboard/collaborators [get]
func (h *LeaderboardHandler) ListCollaborators(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Collaborators())
}

// GetCollaborator godoc
// @Summary Get a collaborator profile
// @Description Get a single collaborator profile by ID
// @Tags Leaderboard
// @Produce json
// @Param id path string true "Collaborator ID"
// @Success 200 {object} leaderboard.CollaboratorProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/leaderboard/collaborators/{id} [get]
func (h *LeaderboardHandler) GetCollaborator(c echo.Context) error {
	profile, err := h.service.Collaborator(c.Param("id"))
	if err != nil {
		if errors.Is(err, leaderboard.ErrNotFound) {
			return apierrors.NotFoundError(c, "collaborator")
		}
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ListMerchants godoc
// @Summary List merchant leaderboard
// @Description Get merchants ordered by commissions given
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} leaderboard.MerchantEntry
// @Router /api/v1/leaderboard/merchants [get]
func (h *LeaderboardHandler) ListMerchants(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Merchants())
}

// ListDailyWinners godoc
// @Summary List today's winners
// @Description Get the daily winners rotation
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} leaderboard.DailyWinner
// @Router /api/v1/leaderboard/daily-winners [get]
func (h *LeaderboardHandler) ListDailyWinners(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.DailyWinners())
}
