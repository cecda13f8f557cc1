package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/collabhq/collabhub/pkg/enrollment"
	"github.com/collabhq/collabhub/pkg/tier"
)

// TierHandler serves collaborator tier standing
type TierHandler struct {
	store *enrollment.Store
}

// NewTierHandler creates a new tier handler
func NewTierHandler(store *enrollment.Store) *TierHandler {
	return &TierHandler{store: store}
}

// TierStanding is the current collaborator tier plus progress to the next one
type TierStanding struct {
	Tier          tier.Tier     `json:"tier"`
	Label         string        `json:"label"`
	ApprovedCount int           `json:"approved_count"`
	NextTier      tier.Tier     `json:"next_tier,omitempty"`
	Progress      tier.Progress `json:"progress"`
}

// GetStanding godoc
// @Summary Get the collaborator's tier standing
// @Description Compute the tier from approved enrollments plus progress to the next tier
// @Tags Tiers
// @Produce json
// @Success 200 {object} handlers.TierStanding
// @Router /api/v1/tiers/me [get]
func (h *TierHandler) GetStanding(c echo.Context) error {
	count := h.store.ApprovedCount()
	current := tier.Compute(count)

	return c.JSON(http.StatusOK, TierStanding{
		Tier:          current,
		Label:         tier.Configs[current].Label,
		ApprovedCount: count,
		NextTier:      tier.Next(current),
		Progress:      tier.ProgressToNext(count),
	})
}

// GetProgress godoc
// @Summary Get tier progress for an approval count
// @Description Compute tier and progress for the given approved count; defaults to the current store count
// @Tags Tiers
// @Produce json
// @Param approved_count query int false "Approved enrollment count"
// @Success 200 {object} handlers.TierStanding
// @Router /api/v1/tiers/progress [get]
func (h *TierHandler) GetProgress(c echo.Context) error {
	count := h.store.ApprovedCount()
	if raw := c.QueryParam("approved_count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			count = n
		}
	}
	current := tier.Compute(count)

	return c.JSON(http.StatusOK, TierStanding{
		Tier:          current,
		Label:         tier.Configs[current].Label,
		ApprovedCount: count,
		NextTier:      tier.Next(current),
		Progress:      tier.ProgressToNext(count),
	})
}

// ListTiers godoc
// @Summary List tier definitions
// @Description Get all tiers in ascending order with their thresholds
// @Tags Tiers
// @Produce json
// @Success 200 {array} tier.Config
// @Router /api/v1/tiers [get]
func (h *TierHandler) ListTiers(c echo.Context) error {
	out := make([]tier.Config, 0, len(tier.Order))
	for _, t := range tier.Order {
		out = append(out, tier.Configs[t])
	}
	return c.JSON(http.StatusOK, out)
}
