package analytics

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhq/collabhub/pkg/campaign"
	"github.com/collabhq/collabhub/pkg/enrollment"
)

func approvedEnrollment(id string, clicks, orders int, earnings float64) enrollment.Enrollment {
	c := campaign.FallbackCampaigns[0]
	return enrollment.Enrollment{
		ID:       id,
		Campaign: c,
		Status:   enrollment.StatusApproved,
		Clicks:   clicks,
		Orders:   orders,
		Earnings: earnings,
	}
}

func TestGenerateConversionPool(t *testing.T) {
	t.Run("Success - One record per order of each approved enrollment", func(t *testing.T) {
		pool := GenerateConversionPool([]enrollment.Enrollment{
			approvedEnrollment("e1", 200, 20, 100),
			approvedEnrollment("e2", 300, 15, 90),
		}, testNow)

		assert.Len(t, pool, 35)
	})

	t.Run("Success - Non-approved enrollments contribute nothing", func(t *testing.T) {
		e := approvedEnrollment("e1", 200, 20, 100)
		e.Status = enrollment.StatusUnderReview

		pool := GenerateConversionPool([]enrollment.Enrollment{e}, testNow)
		assert.Empty(t, pool)
	})

	t.Run("Success - Records are sorted most recent first", func(t *testing.T) {
		pool := GenerateConversionPool([]enrollment.Enrollment{
			approvedEnrollment("e1", 400, 40, 150),
		}, testNow)
		require.NotEmpty(t, pool)

		sorted := sort.SliceIsSorted(pool, func(i, j int) bool {
			return pool[i].Timestamp.After(pool[j].Timestamp)
		})
		assert.True(t, sorted)
	})

	t.Run("Success - Amounts jitter around earnings per order", func(t *testing.T) {
		pool := GenerateConversionPool([]enrollment.Enrollment{
			approvedEnrollment("e1", 100, 10, 100),
		}, testNow)
		require.Len(t, pool, 10)

		for _, r := range pool {
			assert.GreaterOrEqual(t, r.Amount, 8.0)
			assert.LessOrEqual(t, r.Amount, 12.0)
			assert.Equal(t, campaign.FallbackCampaigns[0].Merchant, r.Merchant)
			assert.Contains(t, r.OrderID, "ORD-")
			assert.Contains(t, []PaymentStatus{PaymentPaid, PaymentOpen, PaymentPending}, r.Status)
			assert.GreaterOrEqual(t, r.Clicks, 10)
			assert.LessOrEqual(t, r.Clicks, 12)
			assert.False(t, r.Timestamp.After(testNow))
		}
	})

	t.Run("Success - Zero orders yields no records", func(t *testing.T) {
		pool := GenerateConversionPool([]enrollment.Enrollment{
			approvedEnrollment("e1", 100, 0, 100),
		}, testNow)
		assert.Empty(t, pool)
	})
}

func TestDrawDaysAgo(t *testing.T) {
	// Distribution bounds, not shape: every draw must land inside the
	// 1080-day lookback.
	for i := 0; i < 500; i++ {
		d := drawDaysAgo()
		assert.GreaterOrEqual(t, d, 0)
		assert.Less(t, d, 1080)
	}
}
