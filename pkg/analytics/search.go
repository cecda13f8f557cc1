package analytics

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// PageSize is the fixed conversions-table page size
const PageSize = 10

var fold = cases.Fold()

// Search returns the conversions matching a case-insensitive substring query
// over merchant, order id, display date, and stringified amount. An empty or
// whitespace query matches everything.
func Search(records []ConversionRecord, query string) []ConversionRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}

	q := fold.String(query)
	matched := make([]ConversionRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Merchant), q) ||
			strings.Contains(fold.String(r.OrderID), q) ||
			strings.Contains(fold.String(r.Date), q) ||
			strings.Contains(strconv.FormatFloat(r.Amount, 'f', -1, 64), q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Paginate slices one fixed-size page out of the record list. Pages are
// 1-based; an out-of-range page returns an empty slice.
func Paginate(records []ConversionRecord, page int) ([]ConversionRecord, int) {
	totalPages := (len(records) + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(records) {
		return []ConversionRecord{}, totalPages
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], totalPages
}

// PageNumbers renders the windowed page-control sequence. Up to 5 pages are
// listed in full; beyond that the sequence collapses around the current page
// with "..." gaps ("1 2 3 4 ... 20", "1 ... 9 10 11 ... 20",
// "1 ... 17 18 19 20").
func PageNumbers(totalPages, current int) []string {
	if totalPages <= 0 {
		return nil
	}

	var pages []string
	push := func(nums ...int) {
		for _, n := range nums {
			pages = append(pages, strconv.Itoa(n))
		}
	}

	if totalPages <= 5 {
		for i := 1; i <= totalPages; i++ {
			push(i)
		}
		return pages
	}

	switch {
	case current <= 3:
		push(1, 2, 3, 4)
		pages = append(pages, "...")
		push(totalPages)
	case current >= totalPages-2:
		push(1)
		pages = append(pages, "...")
		push(totalPages-3, totalPages-2, totalPages-1, totalPages)
	default:
		push(1)
		pages = append(pages, "...")
		push(current-1, current, current+1)
		pages = append(pages, "...")
		push(totalPages)
	}
	return pages
}
