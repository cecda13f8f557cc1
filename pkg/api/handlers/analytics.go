package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/collabhq/collabhub/pkg/analytics"
	"github.com/collabhq/collabhub/pkg/metrics"
)

// AnalyticsHandler serves the performance dashboard
type AnalyticsHandler struct {
	service *analytics.Service
	metrics *metrics.Metrics
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *analytics.Service, m *metrics.Metrics) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, metrics: m}
}

// GetReport godoc
// @Summary Get the analytics report
// @Description Aggregate conversions into time buckets, filtered by merchant and search text, with paginated recent conversions
// @Tags Analytics
// @Produce json
// @Param range query string false "Time range" Enums(daily, weekly, monthly, yearly) default(monthly)
// @Param merchant query string false "Merchant filter, 'all' for no filter"
// @Param q query string false "Free-text search over recent conversions"
// @Param page query int false "Page of recent conversions" default(1)
// @Success 200 {object} analytics.Report
// @Router /api/v1/analytics [get]
func (h *AnalyticsHandler) GetReport(c echo.Context) error {
	timeRange := analytics.ParseRange(c.QueryParam("range"))

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	report := h.service.Run(analytics.Query{
		Range:    timeRange,
		Merchant: c.QueryParam("merchant"),
		Search:   c.QueryParam("q"),
		Page:     page,
	})

	if h.metrics != nil {
		h.metrics.RecordAnalyticsQuery(string(timeRange))
	}
	return c.JSON(http.StatusOK, report)
}
