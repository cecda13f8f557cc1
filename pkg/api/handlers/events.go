package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/collabhq/collabhub/pkg/events"
)

// EventsHandler serves the S City events catalog
type EventsHandler struct {
	service *events.Service
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{service: service}
}

// ListEvents godoc
// @Summary List events
// @Description Get events filtered by category and a free-text query
// @Tags Events
// @Produce json
// @Param category query string false "Category filter, 'all' for no filter"
// @Param q query string false "Free-text search over title and category"
// @Success 200 {array} events.Event
// @Router /api/v1/events [get]
func (h *EventsHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.QueryParam("category"), c.QueryParam("q")))
}

// ListEventCategories godoc
// @Summary List event categories
// @Description Get the browsing categories with images
// @Tags Events
// @Produce json
// @Success 200 {array} events.Category
// @Router /api/v1/events/categories [get]
func (h *EventsHandler) ListEventCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Categories())
}

// ListEventFilters godoc
// @Summary List event date filters
// @Description Get the quick date filters shown alongside the listings
// @Tags Events
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/events/filters [get]
func (h *EventsHandler) ListEventFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, events.DateFilters)
}
