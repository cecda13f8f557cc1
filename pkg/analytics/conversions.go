package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/collabhq/collabhub/pkg/enrollment"
)

// PaymentStatus is the settlement state of a conversion
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOpen    PaymentStatus = "Open"
	PaymentPending PaymentStatus = "Pending"
)

var paymentStatuses = []PaymentStatus{PaymentPaid, PaymentOpen, PaymentPending}

// ConversionRecord is one simulated order attributed to an approved
// enrollment's campaign. Records are synthesized, never persisted; the
// Timestamp is authoritative for filtering, Date is the display string.
type ConversionRecord struct {
	Merchant  string        `json:"merchant"`
	Amount    float64       `json:"amount"`
	Date      string        `json:"date"`
	OrderID   string        `json:"order_id"`
	Timestamp time.Time     `json:"timestamp"`
	Status    PaymentStatus `json:"status"`
	Clicks    int           `json:"clicks"`
}

// GenerateConversionPool synthesizes one ConversionRecord per order of every
// approved enrollment, spreading timestamps over a multi-year lookback so
// each chart range has data: ~15% in the last 7 days, ~20% in days 8-30,
// ~30% in days 31-180, ~35% in days 181-1080. Per-record amount is the
// enrollment's earnings-per-order with a jitter factor in [0.8, 1.2].
func GenerateConversionPool(enrollments []enrollment.Enrollment, now time.Time) []ConversionRecord {
	var conversions []ConversionRecord

	for _, e := range enrollments {
		if e.Status != enrollment.StatusApproved {
			continue
		}

		orderCount := e.Orders
		earningsPerOrder := 0.0
		clicksPerOrder := 5
		if orderCount > 0 {
			earningsPerOrder = e.Earnings / float64(orderCount)
			clicksPerOrder = int(math.Ceil(float64(e.Clicks) / float64(orderCount)))
		}

		for i := 0; i < orderCount; i++ {
			daysAgo := drawDaysAgo()
			timestamp := now.Add(-time.Duration(daysAgo) * 24 * time.Hour)

			amount := earningsPerOrder * gofakeit.Float64Range(0.8, 1.2)
			amount = math.Round(amount*100) / 100

			conversions = append(conversions, ConversionRecord{
				Merchant:  e.Campaign.Merchant,
				Amount:    amount,
				Date:      displayDate(timestamp, now),
				OrderID:   fmt.Sprintf("ORD-%d", 8821-len(conversions)),
				Timestamp: timestamp,
				Status:    paymentStatuses[gofakeit.Number(0, len(paymentStatuses)-1)],
				Clicks:    clicksPerOrder + gofakeit.Number(0, 2),
			})
		}
	}

	// Most recent first
	sort.Slice(conversions, func(i, j int) bool {
		return conversions[i].Timestamp.After(conversions[j].Timestamp)
	})

	return conversions
}

// drawDaysAgo picks a lookback offset with the weighted split that keeps all
// four chart ranges populated
func drawDaysAgo() int {
	r := gofakeit.Float64Range(0, 1)
	switch {
	case r < 0.15:
		return gofakeit.Number(0, 6)
	case r < 0.35:
		return 7 + gofakeit.Number(0, 22)
	case r < 0.65:
		return 30 + gofakeit.Number(0, 149)
	default:
		return 180 + gofakeit.Number(0, 899)
	}
}

// displayDate renders the human-readable order date ("Today, 2:30 PM",
// "Yesterday, 11:15 AM", "Jan 14, 9:05 AM")
func displayDate(t, now time.Time) string {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.Add(-24 * time.Hour)

	clock := t.Format("3:04 PM")
	switch {
	case !t.Before(startOfToday):
		return "Today, " + clock
	case !t.Before(startOfYesterday):
		return "Yesterday, " + clock
	default:
		return t.Format("Jan 2") + ", " + clock
	}
}
