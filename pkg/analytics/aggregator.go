package analytics

import (
	"fmt"
	"strconv"
	"time"
)

// TimeRange selects the lookback window and bucket layout for aggregation
type TimeRange string

const (
	RangeDaily   TimeRange = "daily"   // last 7 days, 7 weekday buckets
	RangeWeekly  TimeRange = "weekly"  // last 28 days, 4 week buckets
	RangeMonthly TimeRange = "monthly" // last 180 days, 6 month buckets
	RangeYearly  TimeRange = "yearly"  // last 5 years, 5 year buckets
)

// ParseRange maps a query string onto a TimeRange, defaulting to monthly
func ParseRange(s string) TimeRange {
	switch TimeRange(s) {
	case RangeDaily, RangeWeekly, RangeMonthly, RangeYearly:
		return TimeRange(s)
	default:
		return RangeMonthly
	}
}

// BucketCount returns the fixed number of chart buckets for the range
func (r TimeRange) BucketCount() int {
	switch r {
	case RangeDaily:
		return 7
	case RangeWeekly:
		return 4
	case RangeYearly:
		return 5
	default:
		return 6
	}
}

// DataPoint is one chart bucket: a label plus accumulated clicks and orders
type DataPoint struct {
	Date   string `json:"date"`
	Clicks int    `json:"clicks"`
	Orders int    `json:"orders"`
}

// Data is the aggregator output. Recomputed on every call, never mutated in
// place.
type Data struct {
	TotalClicks       int                `json:"total_clicks"`
	TotalOrders       int                `json:"total_orders"`
	ConversionRate    float64            `json:"conversion_rate"`
	PendingEarnings   float64            `json:"pending_earnings"`
	AvailableEarnings float64            `json:"available_earnings"`
	DailyData         []DataPoint        `json:"daily_data"`
	RecentConversions []ConversionRecord `json:"recent_conversions"`
}

// MerchantAll disables merchant filtering
const MerchantAll = "all"

// Aggregate filters the conversion pool by merchant and time range, buckets
// the survivors into the range's fixed chronological bucket sequence
// (oldest → newest, empty buckets zero-filled) and computes summary totals.
// Pure function of its inputs.
func Aggregate(pool []ConversionRecord, merchant string, timeRange TimeRange, now time.Time) Data {
	filtered := make([]ConversionRecord, 0, len(pool))
	cutoff := rangeCutoff(timeRange, now)
	for _, c := range pool {
		if merchant != "" && merchant != MerchantAll && c.Merchant != merchant {
			continue
		}
		if c.Timestamp.Before(cutoff) {
			continue
		}
		filtered = append(filtered, c)
	}

	labels, keyFn := bucketLayout(timeRange, now)
	index := make(map[string]int, len(labels))
	points := make([]DataPoint, len(labels))
	for i, label := range labels {
		index[label] = i
		points[i] = DataPoint{Date: label}
	}

	totalClicks := 0
	pendingEarnings := 0.0
	availableEarnings := 0.0
	for _, c := range filtered {
		totalClicks += c.Clicks
		if c.Status == PaymentPaid {
			availableEarnings += c.Amount
		} else {
			pendingEarnings += c.Amount
		}
		if i, ok := index[keyFn(c.Timestamp)]; ok {
			points[i].Clicks += c.Clicks
			points[i].Orders++
		}
	}

	totalOrders := len(filtered)
	conversionRate := 0.0
	if totalClicks > 0 {
		conversionRate = float64(totalOrders) / float64(totalClicks) * 100
	}

	return Data{
		TotalClicks:       totalClicks,
		TotalOrders:       totalOrders,
		ConversionRate:    conversionRate,
		PendingEarnings:   pendingEarnings,
		AvailableEarnings: availableEarnings,
		DailyData:         points,
		RecentConversions: filtered,
	}
}

// rangeCutoff returns the oldest timestamp kept for the range, anchored at
// the start of today
func rangeCutoff(timeRange TimeRange, now time.Time) time.Time {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch timeRange {
	case RangeDaily:
		return startOfToday.AddDate(0, 0, -7)
	case RangeWeekly:
		return startOfToday.AddDate(0, 0, -28)
	case RangeYearly:
		return startOfToday.AddDate(0, 0, -5*365)
	default:
		return startOfToday.AddDate(0, 0, -180)
	}
}

// bucketLayout produces the ordered bucket labels for the range plus the
// function mapping a record timestamp onto its bucket label
func bucketLayout(timeRange TimeRange, now time.Time) ([]string, func(time.Time) string) {
	count := timeRange.BucketCount()
	labels := make([]string, 0, count)

	switch timeRange {
	case RangeDaily:
		for i := count - 1; i >= 0; i-- {
			labels = append(labels, now.AddDate(0, 0, -i).Format("Mon"))
		}
		return labels, func(t time.Time) string { return t.Format("Mon") }

	case RangeWeekly:
		for i := count - 1; i >= 0; i-- {
			labels = append(labels, fmt.Sprintf("Week %d", count-i))
		}
		return labels, func(t time.Time) string {
			weeksAgo := int(now.Sub(t).Hours() / (24 * 7))
			if weeksAgo > count-1 {
				weeksAgo = count - 1
			}
			if weeksAgo < 0 {
				weeksAgo = 0
			}
			return fmt.Sprintf("Week %d", count-weeksAgo)
		}

	case RangeYearly:
		for i := count - 1; i >= 0; i-- {
			labels = append(labels, strconv.Itoa(now.AddDate(-i, 0, 0).Year()))
		}
		return labels, func(t time.Time) string { return strconv.Itoa(t.Year()) }

	default: // monthly
		// Anchor on the first of the month so end-of-month dates don't
		// skip a label when stepping back.
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		for i := count - 1; i >= 0; i-- {
			labels = append(labels, firstOfMonth.AddDate(0, -i, 0).Format("Jan"))
		}
		return labels, func(t time.Time) string { return t.Format("Jan") }
	}
}
