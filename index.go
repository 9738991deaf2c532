package easynews

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
)

// Index maps a publication date (YYYY-MM-DD) to the articles published on it.
type Index map[string][]*Article

// DateEntry is one date of the index together with its articles.
type DateEntry struct {
	Date     string
	Articles []*Article
}

// IndexService retrieves the news index.
type IndexService interface {
	// FetchIndex downloads and decodes the news index.
	// Returns EUNAVAILABLE if the index cannot be retrieved.
	FetchIndex(ctx context.Context) (Index, error)
}

// ParseIndex decodes the index document. The document root is a list of
// objects mapping dates to article lists; all objects are merged. Null
// article entries are dropped. Date keys are kept as sent and must be checked
// with ValidateDate before use.
func ParseIndex(data []byte) (Index, error) {
	var roots []map[string][]*Article
	if err := json.Unmarshal(data, &roots); err != nil {
		return nil, Errorf(EINVALID, "failed to decode news index: %v", err)
	}
	if len(roots) == 0 {
		return nil, Errorf(EINVALID, "news index is empty")
	}

	index := make(Index)
	for _, root := range roots {
		for date, articles := range root {
			for _, a := range articles {
				if a != nil {
					index[date] = append(index[date], a)
				}
			}
			if _, ok := index[date]; !ok {
				index[date] = []*Article{}
			}
		}
	}
	return index, nil
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate returns EINVALID unless date is formatted as YYYY-MM-DD.
func ValidateDate(date string) error {
	if !datePattern.MatchString(date) {
		return Errorf(EINVALID, "date %q must be formatted as YYYY-MM-DD", date)
	}
	return nil
}

// Selection chooses which dates of the index to process.
// Date takes precedence over Days; a zero Selection selects everything.
type Selection struct {
	// Days selects the chronologically last N dates.
	Days int

	// Date selects exactly one date (YYYY-MM-DD).
	Date string
}

// Validate returns an error if the selection contains invalid fields.
func (s Selection) Validate() error {
	if s.Days < 0 {
		return Errorf(EINVALID, "days must not be negative")
	}
	if s.Date != "" {
		return ValidateDate(s.Date)
	}
	return nil
}

// SelectDates returns the entries of the index matching the selection in
// ascending date order.
func SelectDates(index Index, sel Selection) []DateEntry {
	if sel.Date != "" {
		articles, ok := index[sel.Date]
		if !ok {
			return nil
		}
		return []DateEntry{{Date: sel.Date, Articles: articles}}
	}

	dates := make([]string, 0, len(index))
	for date := range index {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if sel.Days > 0 && sel.Days < len(dates) {
		dates = dates[len(dates)-sel.Days:]
	}

	entries := make([]DateEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, DateEntry{Date: date, Articles: index[date]})
	}
	return entries
}
