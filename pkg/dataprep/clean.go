package dataprep

import (
	"math"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/data"
)

// isMissing reports whether a categorical cell is absent, using the
// markers the loader can produce for an empty CSV field.
func isMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// CleanMissing applies the per-column missing-value policy: rows without
// a neighbourhood_group or room_type are dropped, a missing
// reviews_per_month becomes 0 (no reviews, so zero per month), and every
// other column is left as loaded.
func CleanMissing(t data.Table) (data.Table, error) {
	out := make(data.Table, 0, len(t))
	for _, l := range t {
		if isMissing(l.NeighbourhoodGroup) || isMissing(l.RoomType) {
			continue
		}
		if math.IsNaN(l.ReviewsPerMonth) {
			l.ReviewsPerMonth = 0
		}
		out = append(out, l)
	}
	return out, nil
}
