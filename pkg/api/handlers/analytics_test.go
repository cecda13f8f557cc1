package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhq/collabhub/pkg/analytics"
	"github.com/collabhq/collabhub/pkg/campaign"
	"github.com/collabhq/collabhub/pkg/enrollment"
)

func TestGetReport(t *testing.T) {
	e := echo.New()
	store := enrollment.NewStore()
	store.Add(&enrollment.Enrollment{
		ID:       "e1",
		Campaign: campaign.FallbackCampaigns[0],
		Status:   enrollment.StatusApproved,
		Clicks:   200,
		Orders:   20,
		Earnings: 120,
	})
	h := NewAnalyticsHandler(analytics.NewService(store, nil, nil), nil)

	run := func(query string) analytics.Report {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics"+query, nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.GetReport(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		var report analytics.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		return report
	}

	t.Run("Success - Default range is monthly with six buckets", func(t *testing.T) {
		report := run("")
		assert.Len(t, report.Data.DailyData, 6)
		assert.Equal(t, 1, report.Pagination.Page)
	})

	t.Run("Success - Range parameter selects the bucket layout", func(t *testing.T) {
		assert.Len(t, run("?range=daily").Data.DailyData, 7)
		assert.Len(t, run("?range=weekly").Data.DailyData, 4)
		assert.Len(t, run("?range=yearly").Data.DailyData, 5)
	})

	t.Run("Success - Invalid page falls back to one", func(t *testing.T) {
		report := run("?page=-3")
		assert.Equal(t, 1, report.Pagination.Page)
	})

	t.Run("Success - Merchant filter excludes other merchants", func(t *testing.T) {
		report := run("?range=yearly&merchant=No+Such+Merchant")
		assert.Zero(t, report.Data.TotalOrders)
	})
}
