// Package query filters and orders job records. Functions never modify
// their input and always return a fresh slice.
package query

import (
	"slices"
	"strings"

	"job-mapper/internal/models"

	"golang.org/x/text/cases"
)

// Search returns the records whose title or location contains keyword,
// ignoring case. Order is preserved. A blank keyword matches nothing;
// callers are expected to reject it before searching.
func Search(records []models.JobRecord, keyword string) []models.JobRecord {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(keyword))

	result := []models.JobRecord{}
	if needle == "" {
		return result
	}
	for _, rec := range records {
		if strings.Contains(fold.String(rec.Title), needle) ||
			strings.Contains(fold.String(rec.Location), needle) {
			result = append(result, rec)
		}
	}
	return result
}

// SortByLocation orders records by location, trimmed and case-folded.
// The sort is stable.
func SortByLocation(records []models.JobRecord) []models.JobRecord {
	fold := cases.Fold()

	type keyed struct {
		key string
		rec models.JobRecord
	}
	items := make([]keyed, len(records))
	for i, rec := range records {
		items[i] = keyed{key: fold.String(strings.TrimSpace(rec.Location)), rec: rec}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	sorted := make([]models.JobRecord, len(items))
	for i, it := range items {
		sorted[i] = it.rec
	}
	return sorted
}
