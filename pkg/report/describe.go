package report

import (
	mstats "github.com/aclements/go-moremath/stats"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/data"
)

// ColumnSummary is one row of the descriptive-statistics report, matching
// the usual describe() layout: count, mean, std, min, quartiles, max.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes every numeric column of the table.
func Describe(t data.Table) []ColumnSummary {
	cols := t.NumericColumns()
	out := make([]ColumnSummary, 0, len(cols))
	for _, col := range cols {
		s := mstats.Sample{Xs: col.Values}
		s.Sort()
		min, max := s.Bounds()
		out = append(out, ColumnSummary{
			Column: col.Name,
			Count:  len(col.Values),
			Mean:   s.Mean(),
			Std:    s.StdDev(),
			Min:    min,
			Q25:    s.Quantile(0.25),
			Median: s.Quantile(0.5),
			Q75:    s.Quantile(0.75),
			Max:    max,
		})
	}
	return out
}
