package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/stats"
)

// WriteSummaryCSV persists the descriptive-statistics report as a
// delimited file, one row per column.
func WriteSummaryCSV(path string, rows []ColumnSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Column,
			strconv.Itoa(r.Count),
			fmtFloat(r.Mean),
			fmtFloat(r.Std),
			fmtFloat(r.Min),
			fmtFloat(r.Q25),
			fmtFloat(r.Median),
			fmtFloat(r.Q75),
			fmtFloat(r.Max),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing row %s: %w", r.Column, err)
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteANOVA writes the hypothesis-test result in a fixed three-line
// format: a title line, the F statistic, and the p-value.
func WriteANOVA(path string, res stats.ANOVAResult) error {
	body := fmt.Sprintf(
		"One-way ANOVA results for price by neighbourhood_group\nF-statistic: %.3f\np-value: %.5f\n",
		res.F, res.P)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("writing anova results: %w", err)
	}
	return nil
}
