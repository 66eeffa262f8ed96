package ranking

import (
	"sort"
	"strconv"
	"strings"
)

// ongoingYear is the sort key given to entries that have not ended yet.
const ongoingYear = 9999

// Dated is anything with a free-form end date such as "2021", "05/2022" or "Present".
type Dated interface {
	EndDate() string
}

// SortChronological orders entries in place with the most recent end date first.
// It is used for display only and keeps the input order among equal years.
func SortChronological[T Dated](entries []T) {
	sort.SliceStable(entries, func(i, j int) bool {
		return EndYear(entries[i].EndDate()) > EndYear(entries[j].EndDate())
	})
}

// EndYear extracts a sortable year from an end date. "Present" and "Current"
// map to 9999, otherwise the last four-digit number is used. Unparsable
// dates map to 0.
func EndYear(date string) int {
	date = strings.TrimSpace(date)
	switch strings.ToLower(date) {
	case "present", "current":
		return ongoingYear
	case "":
		return 0
	}

	fields := strings.FieldsFunc(date, func(r rune) bool {
		return r == ' ' || r == '-' || r == '/' || r == ','
	})
	for i := len(fields) - 1; i >= 0; i-- {
		if len(fields[i]) != 4 {
			continue
		}
		if year, err := strconv.Atoi(fields[i]); err == nil {
			return year
		}
	}

	if year, err := strconv.Atoi(date); err == nil {
		return year
	}
	return 0
}
