package analytics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhq/collabhub/pkg/campaign"
	"github.com/collabhq/collabhub/pkg/enrollment"
	"github.com/collabhq/collabhub/pkg/metrics"
)

func setupAnalytics(t *testing.T) (*Service, *enrollment.Store) {
	store := enrollment.NewStore()
	return NewService(store, nil, nil), store
}

func TestPoolCaching(t *testing.T) {
	svc, store := setupAnalytics(t)

	t.Run("Success - Pool is rebuilt only when the store changes", func(t *testing.T) {
		e := approvedEnrollment("e1", 100, 10, 100)
		store.Add(&e)

		first := svc.Pool()
		require.Len(t, first, 10)

		// Same revision: the cached pool is returned as-is
		second := svc.Pool()
		assert.Equal(t, first[0].OrderID, second[0].OrderID)
		assert.Equal(t, first[0].Timestamp, second[0].Timestamp)

		// A store mutation invalidates the cache
		e2 := approvedEnrollment("e2", 50, 5, 25)
		store.Add(&e2)
		third := svc.Pool()
		assert.Len(t, third, 15)
	})
}

func TestPoolBuildCounter(t *testing.T) {
	store := enrollment.NewStore()
	m := metrics.New()
	svc := NewService(store, m, nil)

	e := approvedEnrollment("e1", 100, 10, 100)
	store.Add(&e)

	svc.Pool()
	svc.Pool()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ConversionPoolBuilds))

	e2 := approvedEnrollment("e2", 50, 5, 25)
	store.Add(&e2)
	svc.Pool()
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ConversionPoolBuilds))
}

func TestRun(t *testing.T) {
	svc, store := setupAnalytics(t)

	e := approvedEnrollment("e1", 260, 26, 130)
	store.Add(&e)

	t.Run("Success - Report carries data, pagination and merchants", func(t *testing.T) {
		report := svc.Run(Query{Range: RangeYearly, Merchant: MerchantAll, Page: 1})

		assert.Len(t, report.Data.DailyData, 5)
		assert.LessOrEqual(t, len(report.Data.RecentConversions), PageSize)
		assert.Equal(t, 1, report.Pagination.Page)
		assert.Equal(t, PageSize, report.Pagination.Limit)
		assert.NotEmpty(t, report.Pages)
		assert.Equal(t, []string{campaign.FallbackCampaigns[0].Merchant}, report.Merchants)
	})

	t.Run("Success - Page below one is clamped", func(t *testing.T) {
		report := svc.Run(Query{Range: RangeYearly, Page: 0})
		assert.Equal(t, 1, report.Pagination.Page)
	})

	t.Run("Success - Search narrows the conversion table only", func(t *testing.T) {
		report := svc.Run(Query{Range: RangeYearly, Search: "no-such-order", Page: 1})

		assert.Empty(t, report.Data.RecentConversions)
		assert.Zero(t, report.Pagination.Total)
		// Chart totals are computed before the search filter
		assert.Len(t, report.Data.DailyData, 5)
	})
}
