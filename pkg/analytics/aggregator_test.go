package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func record(merchant string, daysAgo, clicks int, amount float64, status PaymentStatus) ConversionRecord {
	ts := testNow.Add(-time.Duration(daysAgo) * 24 * time.Hour)
	return ConversionRecord{
		Merchant:  merchant,
		Amount:    amount,
		Date:      displayDate(ts, testNow),
		OrderID:   "ORD-8821",
		Timestamp: ts,
		Status:    status,
		Clicks:    clicks,
	}
}

func TestParseRange(t *testing.T) {
	assert.Equal(t, RangeDaily, ParseRange("daily"))
	assert.Equal(t, RangeWeekly, ParseRange("weekly"))
	assert.Equal(t, RangeMonthly, ParseRange("monthly"))
	assert.Equal(t, RangeYearly, ParseRange("yearly"))
	assert.Equal(t, RangeMonthly, ParseRange(""))
	assert.Equal(t, RangeMonthly, ParseRange("hourly"))
}

func TestAggregateBucketCounts(t *testing.T) {
	t.Run("Success - Empty pool still yields full zero-filled buckets", func(t *testing.T) {
		for _, tr := range []TimeRange{RangeDaily, RangeWeekly, RangeMonthly, RangeYearly} {
			data := Aggregate(nil, MerchantAll, tr, testNow)

			require.Len(t, data.DailyData, tr.BucketCount(), string(tr))
			for _, p := range data.DailyData {
				assert.NotEmpty(t, p.Date)
				assert.Zero(t, p.Clicks)
				assert.Zero(t, p.Orders)
			}
			assert.Zero(t, data.TotalClicks)
			assert.Zero(t, data.TotalOrders)
			assert.Zero(t, data.ConversionRate)
		}
	})

	t.Run("Success - Buckets run oldest to newest", func(t *testing.T) {
		data := Aggregate(nil, MerchantAll, RangeDaily, testNow)
		require.Len(t, data.DailyData, 7)
		// newest bucket is today's weekday
		assert.Equal(t, testNow.Format("Mon"), data.DailyData[6].Date)

		data = Aggregate(nil, MerchantAll, RangeWeekly, testNow)
		assert.Equal(t, "Week 1", data.DailyData[0].Date)
		assert.Equal(t, "Week 4", data.DailyData[3].Date)

		data = Aggregate(nil, MerchantAll, RangeYearly, testNow)
		assert.Equal(t, "2022", data.DailyData[0].Date)
		assert.Equal(t, "2026", data.DailyData[4].Date)

		data = Aggregate(nil, MerchantAll, RangeMonthly, testNow)
		assert.Equal(t, "Oct", data.DailyData[0].Date)
		assert.Equal(t, "Mar", data.DailyData[5].Date)
	})
}

func TestAggregateTotals(t *testing.T) {
	pool := []ConversionRecord{
		record("Tea Time", 1, 10, 25.00, PaymentPaid),
		record("Tea Time", 2, 20, 30.00, PaymentPending),
		record("McDonalds", 3, 30, 45.00, PaymentOpen),
	}

	t.Run("Success - Totals and earnings partition by payment status", func(t *testing.T) {
		data := Aggregate(pool, MerchantAll, RangeDaily, testNow)

		assert.Equal(t, 60, data.TotalClicks)
		assert.Equal(t, 3, data.TotalOrders)
		assert.InDelta(t, 3.0/60.0*100, data.ConversionRate, 0.001)
		assert.InDelta(t, 25.00, data.AvailableEarnings, 0.001)
		assert.InDelta(t, 75.00, data.PendingEarnings, 0.001)
	})

	t.Run("Success - Merchant filter drops other merchants", func(t *testing.T) {
		data := Aggregate(pool, "Tea Time", RangeDaily, testNow)

		assert.Equal(t, 30, data.TotalClicks)
		assert.Equal(t, 2, data.TotalOrders)
		assert.Len(t, data.RecentConversions, 2)
	})

	t.Run("Success - 'all' disables the merchant filter", func(t *testing.T) {
		data := Aggregate(pool, MerchantAll, RangeDaily, testNow)
		assert.Equal(t, 3, data.TotalOrders)
	})

	t.Run("Success - Records outside the window are excluded", func(t *testing.T) {
		old := append(pool, record("Tea Time", 60, 100, 500.00, PaymentPaid))

		data := Aggregate(old, MerchantAll, RangeDaily, testNow)
		assert.Equal(t, 3, data.TotalOrders)

		data = Aggregate(old, MerchantAll, RangeMonthly, testNow)
		assert.Equal(t, 4, data.TotalOrders)
	})

	t.Run("Success - Zero clicks means zero conversion rate", func(t *testing.T) {
		zero := []ConversionRecord{record("Tea Time", 1, 0, 10.00, PaymentPaid)}

		data := Aggregate(zero, MerchantAll, RangeDaily, testNow)
		assert.Equal(t, 1, data.TotalOrders)
		assert.Zero(t, data.ConversionRate)
	})
}

func TestDisplayDate(t *testing.T) {
	t.Run("Success - Today and yesterday get relative labels", func(t *testing.T) {
		assert.Equal(t, "Today, 10:00 AM", displayDate(testNow.Add(-4*time.Hour-30*time.Minute), testNow))
		assert.Equal(t, "Yesterday, 2:30 PM", displayDate(testNow.Add(-24*time.Hour), testNow))
	})

	t.Run("Success - Older dates show month and day", func(t *testing.T) {
		assert.Equal(t, "Mar 10, 2:30 PM", displayDate(testNow.Add(-5*24*time.Hour), testNow))
	})
}
