package dataprep

import (
	"errors"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/data"
	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/stats"
)

// DeriveFeatures adds the price_zscore and price_bin columns. Both are
// computed over the table as it stands, before any outlier filtering;
// z-scores use the population standard deviation.
func DeriveFeatures(t data.Table) (data.Table, error) {
	if len(t) == 0 {
		return nil, errors.New("derive features: empty table")
	}
	prices := t.Prices()
	mean := stats.Mean(prices)
	std := stats.Std(prices)
	if std == 0 {
		return nil, errors.New("derive features: price has zero variance")
	}
	t1 := stats.Percentile(prices, 100.0/3.0)
	t2 := stats.Percentile(prices, 200.0/3.0)

	out := make(data.Table, len(t))
	copy(out, t)
	for i := range out {
		out[i].PriceZScore = (out[i].Price - mean) / std
		out[i].PriceBin = binFor(out[i].Price, t1, t2)
	}
	return out, nil
}

// binFor buckets a price into terciles using half-open intervals:
// low (-inf, t1], medium (t1, t2], high (t2, +inf).
func binFor(p, t1, t2 float64) string {
	switch {
	case p <= t1:
		return data.BinLow
	case p <= t2:
		return data.BinMedium
	default:
		return data.BinHigh
	}
}
