package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/data"
	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/dataprep"
	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/pipeline"
	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/plots"
	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/report"
	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/stats"
)

// Fixed input and output locations relative to the working directory.
const (
	inputCSV   = "AB_NYC_2019.csv"
	summaryCSV = "summary_statistics.csv"
	anovaTxt   = "anova_results.txt"
	figuresDir = "figures"
)

func main() {
	t, err := data.LoadCSV(inputCSV)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	fmt.Printf("Loaded %d listings from %s\n", len(t), inputCSV)

	pipe := pipeline.New(
		pipeline.StageFunc("clean missing values", dataprep.CleanMissing),
		pipeline.StageFunc("derive price features", dataprep.DeriveFeatures),
		pipeline.StageFunc("drop price outliers", dataprep.DropPriceOutliers),
	)
	cleaned, err := pipe.Run(t)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	if err := report.WriteSummaryCSV(summaryCSV, report.Describe(cleaned)); err != nil {
		log.Fatalf("Error writing summary statistics: %v", err)
	}
	fmt.Println("Summary statistics saved to:", summaryCSV)

	if err := os.MkdirAll(figuresDir, 0o755); err != nil {
		log.Fatalf("Error creating figures directory: %v", err)
	}
	if err := plots.PriceHistogram(cleaned.Prices(), filepath.Join(figuresDir, "price_histogram.png")); err != nil {
		log.Fatalf("Error rendering histogram: %v", err)
	}
	groups, groupPrices := cleaned.PricesByGroup()
	if err := plots.PriceBoxplot(groups, groupPrices, filepath.Join(figuresDir, "price_boxplot.png")); err != nil {
		log.Fatalf("Error rendering boxplot: %v", err)
	}
	barGroups, roomTypes, means := cleaned.MeanPriceByGroupRoom()
	if err := plots.AvgPriceBars(barGroups, roomTypes, means, filepath.Join(figuresDir, "avg_price_barplot.png")); err != nil {
		log.Fatalf("Error rendering bar chart: %v", err)
	}
	fmt.Println("Figures saved to:", figuresDir)

	res, err := stats.OneWayANOVA(groupPrices)
	if err != nil {
		log.Fatalf("ANOVA failed: %v", err)
	}
	if err := report.WriteANOVA(anovaTxt, res); err != nil {
		log.Fatalf("Error writing ANOVA results: %v", err)
	}
	fmt.Printf("One-way ANOVA: F=%.3f p=%.5g (saved to %s)\n", res.F, res.P, anovaTxt)
	fmt.Println("Analysis complete. Results saved to output files.")
}
