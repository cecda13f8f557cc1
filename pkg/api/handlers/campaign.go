package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/collabhq/collabhub/pkg/api/errors"
	"github.com/collabhq/collabhub/pkg/campaign"
)

// CampaignHandler handles campaign catalog operations
type CampaignHandler struct {
	service *campaign.Service
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(service *campaign.Service) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// ListCampaigns godoc
// @Summary List available campaigns
// @Description Get the full campaign catalog
// @Tags Campaigns
// @Produce json
// @Success 200 {array} campaign.Campaign
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	campaigns := h.service.List(ctx)
	return c.JSON(http.StatusOK, campaigns)
}

// GetCampaign godoc
// @Summary Get a campaign
// @Description Get a single campaign by ID
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} campaign.Campaign
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	camp, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			return apierrors.NotFoundError(c, "campaign")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, camp)
}
