package dataprep

import (
	"errors"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/data"
	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/stats"
)

// DropPriceOutliers removes rows whose price falls outside the Tukey
// fences computed over the incoming table. A single pass: the fences are
// not recomputed after removal.
func DropPriceOutliers(t data.Table) (data.Table, error) {
	if len(t) == 0 {
		return nil, errors.New("drop outliers: empty table")
	}
	lo, hi := stats.IQRBounds(t.Prices())
	out := make(data.Table, 0, len(t))
	for _, l := range t {
		if l.Price >= lo && l.Price <= hi {
			out = append(out, l)
		}
	}
	return out, nil
}
